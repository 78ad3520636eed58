package entities

import "math"

// Vec is a point or direction in screen pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist2(o Vec) float64 { d := v.Sub(o); return d.X*d.X + d.Y*d.Y }
func (v Vec) IsZero() bool        { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Touching reports whether two circles overlap or touch.
func Touching(a Vec, ra float64, b Vec, rb float64) bool {
	r := ra + rb
	return a.Dist2(b) <= r*r
}
