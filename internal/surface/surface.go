// Package surface abstracts the place the game is drawn: a desktop window
// or a canvas element in a browser page.
package surface

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrSurfaceNotFound = errors.New("surface not found")
	ErrNoContext       = errors.New("surface has no 2d context")
)

// Host resolves surfaces by identifier.
type Host interface {
	Surface(id string) (Surface, error)
}

// Surface is a sizable drawing area.
type Surface interface {
	SetSize(width, height int)
	Size() (width, height int)
	Context2D() (Context, error)
}

// Context is what a view draws through. Run blocks until the game ends.
type Context interface {
	Size() (width, height int)
	Run(game ebiten.Game) error
}
