// Package bootstrap wires a drawing surface to a view and hands control to
// the view.
package bootstrap

import (
	"fmt"

	"github.com/rileyL6122428/rileyL6122428.github.io/internal/surface"
)

const (
	DefaultSurfaceID = "game-canvas"
	DefaultWidth     = 1192
	DefaultHeight    = 650
)

type Config struct {
	SurfaceID string
	Width     int
	Height    int
}

func DefaultConfig() Config {
	return Config{SurfaceID: DefaultSurfaceID, Width: DefaultWidth, Height: DefaultHeight}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SurfaceID == "" {
		c.SurfaceID = d.SurfaceID
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	return c
}

// View is a started-once game view.
type View interface {
	Start() error
}

// ViewFactory builds the view bound to a drawing context.
type ViewFactory func(ctx surface.Context, width, height int) (View, error)

// Run looks up the surface, fixes its size, acquires its 2D context,
// constructs the view once and starts it. Any failing step stops the
// sequence and is returned.
func Run(cfg Config, host surface.Host, newView ViewFactory) error {
	cfg = cfg.withDefaults()

	s, err := host.Surface(cfg.SurfaceID)
	if err != nil {
		return fmt.Errorf("bootstrap: lookup %q: %w", cfg.SurfaceID, err)
	}
	s.SetSize(cfg.Width, cfg.Height)

	ctx, err := s.Context2D()
	if err != nil {
		return fmt.Errorf("bootstrap: acquire context: %w", err)
	}

	width, height := s.Size()
	view, err := newView(ctx, width, height)
	if err != nil {
		return fmt.Errorf("bootstrap: construct view: %w", err)
	}
	return view.Start()
}
