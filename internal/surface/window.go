//go:build !js

package surface

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowID is the identifier the desktop window is registered under, so
// desktop and browser builds share one configuration.
const WindowID = "game-canvas"

type windowHost struct {
	window *window
}

// NewHost returns the desktop host with a single window surface.
func NewHost(title string) Host {
	return &windowHost{window: &window{title: title}}
}

func (h *windowHost) Surface(id string) (Surface, error) {
	if id != WindowID {
		return nil, fmt.Errorf("%w: %q (desktop window is %q)", ErrSurfaceNotFound, id, WindowID)
	}
	return h.window, nil
}

type window struct {
	title         string
	width, height int
}

func (w *window) SetSize(width, height int) {
	w.width, w.height = width, height
	ebiten.SetWindowSize(width, height)
}

func (w *window) Size() (int, int) {
	return w.width, w.height
}

func (w *window) Context2D() (Context, error) {
	if w.width <= 0 || w.height <= 0 {
		return nil, fmt.Errorf("%w: window size %dx%d", ErrNoContext, w.width, w.height)
	}
	return w, nil
}

func (w *window) Run(game ebiten.Game) error {
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}
