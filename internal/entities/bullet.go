package entities

const BulletRadius = 3.0

type Bullet struct {
	Pos Vec
	Vel Vec // pixels per tick
	TTL int // ticks left
}

// Step moves the bullet one tick and reports whether it is still live.
func (b *Bullet) Step() bool {
	b.Pos = b.Pos.Add(b.Vel)
	b.TTL--
	return b.TTL > 0
}
