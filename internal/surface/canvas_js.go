//go:build js && wasm

package surface

import (
	"fmt"
	"syscall/js"

	"github.com/hajimehoshi/ebiten/v2"
)

type documentHost struct {
	title string
	doc   js.Value
}

// NewHost returns a host that resolves canvas elements in the page.
func NewHost(title string) Host {
	return &documentHost{title: title, doc: js.Global().Get("document")}
}

func (h *documentHost) Surface(id string) (Surface, error) {
	el := h.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, fmt.Errorf("%w: no element with id %q", ErrSurfaceNotFound, id)
	}
	return &canvas{title: h.title, doc: h.doc, el: el}, nil
}

type canvas struct {
	title string
	doc   js.Value
	el    js.Value
}

func (c *canvas) SetSize(width, height int) {
	c.el.Set("width", width)
	c.el.Set("height", height)
	ebiten.SetWindowSize(width, height)
}

func (c *canvas) Size() (int, int) {
	return c.el.Get("width").Int(), c.el.Get("height").Int()
}

func (c *canvas) Context2D() (Context, error) {
	if c.el.Get("getContext").IsUndefined() {
		return nil, fmt.Errorf("%w: element is not a canvas", ErrNoContext)
	}
	ctx := c.el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, ErrNoContext
	}
	return c, nil
}

func (c *canvas) Run(game ebiten.Game) error {
	ebiten.SetWindowTitle(c.title)
	if err := c.adopt(); err != nil {
		return err
	}
	return ebiten.RunGame(game)
}

// adopt swaps ebiten's own canvas into the located element's place in the
// page. The new canvas takes over the element's id and size, so the game
// draws where the page asked for it.
func (c *canvas) adopt() error {
	var target js.Value
	list := c.doc.Call("getElementsByTagName", "canvas")
	for i := list.Length() - 1; i >= 0; i-- {
		if el := list.Index(i); !el.Equal(c.el) {
			target = el
			break
		}
	}
	if target.IsUndefined() {
		return fmt.Errorf("%w: ebiten canvas not in the page", ErrNoContext)
	}
	parent := c.el.Get("parentNode")
	if parent.IsNull() || parent.IsUndefined() {
		return fmt.Errorf("%w: element is detached", ErrSurfaceNotFound)
	}
	w, h := c.Size()
	id := c.el.Get("id")
	parent.Call("replaceChild", target, c.el)
	target.Set("id", id)
	style := target.Get("style")
	style.Set("width", fmt.Sprintf("%dpx", w))
	style.Set("height", fmt.Sprintf("%dpx", h))
	c.el = target
	return nil
}
