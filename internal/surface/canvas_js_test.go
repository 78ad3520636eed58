//go:build js && wasm

package surface

import (
	"errors"
	"syscall/js"
	"testing"
)

func newObject() js.Value { return js.Global().Get("Object").New() }

func fakeCanvas(id string, w, h int) js.Value {
	el := newObject()
	el.Set("id", id)
	el.Set("width", w)
	el.Set("height", h)
	el.Set("style", newObject())
	return el
}

// fakePage builds a document holding the page's canvas and ebiten's, both
// children of one parent that records replaceChild calls.
func fakePage(t *testing.T) (doc, page, engine js.Value, replaced *[]js.Value) {
	t.Helper()
	page = fakeCanvas("game-canvas", 1192, 650)
	engine = fakeCanvas("", 300, 150)

	var calls []js.Value
	replaced = &calls
	parent := newObject()
	replace := js.FuncOf(func(this js.Value, args []js.Value) any {
		calls = append(calls, args...)
		return nil
	})
	t.Cleanup(replace.Release)
	parent.Set("replaceChild", replace)
	page.Set("parentNode", parent)

	doc = newObject()
	byTag := js.FuncOf(func(this js.Value, args []js.Value) any {
		return js.Global().Get("Array").New(page, engine)
	})
	t.Cleanup(byTag.Release)
	doc.Set("getElementsByTagName", byTag)
	byID := js.FuncOf(func(this js.Value, args []js.Value) any {
		if args[0].String() == "game-canvas" {
			return page
		}
		return js.Null()
	})
	t.Cleanup(byID.Release)
	doc.Set("getElementById", byID)
	return doc, page, engine, replaced
}

func TestDocumentHostUnknownID(t *testing.T) {
	doc, _, _, _ := fakePage(t)
	h := &documentHost{doc: doc}
	if _, err := h.Surface("nope"); !errors.Is(err, ErrSurfaceNotFound) {
		t.Fatalf("expected ErrSurfaceNotFound, got %v", err)
	}
}

func TestAdoptPutsEngineCanvasInPlace(t *testing.T) {
	doc, page, engine, replaced := fakePage(t)
	h := &documentHost{doc: doc}
	s, err := h.Surface("game-canvas")
	if err != nil {
		t.Fatalf("surface: %v", err)
	}
	c := s.(*canvas)
	if err := c.adopt(); err != nil {
		t.Fatalf("adopt: %v", err)
	}

	if len(*replaced) != 2 || !(*replaced)[0].Equal(engine) || !(*replaced)[1].Equal(page) {
		t.Fatalf("expected replaceChild(engine, page), got %v", *replaced)
	}
	if got := engine.Get("id").String(); got != "game-canvas" {
		t.Fatalf("engine canvas id = %q, want game-canvas", got)
	}
	style := engine.Get("style")
	if style.Get("width").String() != "1192px" || style.Get("height").String() != "650px" {
		t.Fatalf("engine canvas style = %s x %s", style.Get("width").String(), style.Get("height").String())
	}
	if !c.el.Equal(engine) {
		t.Fatal("surface should now refer to the engine canvas")
	}
}

func TestAdoptWithoutEngineCanvas(t *testing.T) {
	page := fakeCanvas("game-canvas", 1192, 650)
	doc := newObject()
	byTag := js.FuncOf(func(this js.Value, args []js.Value) any {
		return js.Global().Get("Array").New(page)
	})
	t.Cleanup(byTag.Release)
	doc.Set("getElementsByTagName", byTag)

	c := &canvas{doc: doc, el: page}
	if err := c.adopt(); !errors.Is(err, ErrNoContext) {
		t.Fatalf("expected ErrNoContext, got %v", err)
	}
}
