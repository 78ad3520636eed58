package game

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rileyL6122428/rileyL6122428.github.io/internal/entities"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/scoreboard"
)

type fakeContext struct {
	ran []ebiten.Game
	err error
}

func (c *fakeContext) Size() (int, int) { return 1192, 650 }

func (c *fakeContext) Run(g ebiten.Game) error {
	c.ran = append(c.ran, g)
	return c.err
}

type fakeInput struct {
	move    entities.Vec
	cursor  entities.Vec
	firing  bool
	pressed map[ebiten.Key]bool
	chars   []rune
}

func (f *fakeInput) Movement() entities.Vec        { return f.move }
func (f *fakeInput) Cursor() entities.Vec          { return f.cursor }
func (f *fakeInput) Firing() bool                  { return f.firing }
func (f *fakeInput) JustPressed(k ebiten.Key) bool { return f.pressed[k] }
func (f *fakeInput) AppendChars(rs []rune) []rune {
	rs = append(rs, f.chars...)
	f.chars = nil
	return rs
}

// tap holds keys down for exactly one update.
func (f *fakeInput) tap(t *testing.T, g *View, keys ...ebiten.Key) error {
	t.Helper()
	f.pressed = map[ebiten.Key]bool{}
	for _, k := range keys {
		f.pressed[k] = true
	}
	err := g.Update()
	f.pressed = nil
	return err
}

func (f *fakeInput) typeText(t *testing.T, g *View, s string) {
	t.Helper()
	f.chars = []rune(s)
	if err := g.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func newTestView(t *testing.T) (*View, *fakeInput, *scoreboard.MemoryStore) {
	t.Helper()
	in := &fakeInput{}
	store := scoreboard.NewMemoryStore()
	g := NewView(&fakeContext{}, 1192, 650, Options{Input: in, Scores: store, Seed: 1})
	return g, in, store
}

// newPlayingView returns a view past name entry with spawning held off.
func newPlayingView(t *testing.T) (*View, *fakeInput, *scoreboard.MemoryStore) {
	t.Helper()
	g, in, store := newTestView(t)
	in.typeText(t, g, "Tester")
	if err := in.tap(t, g, ebiten.KeyEnter); err != nil {
		t.Fatalf("update: %v", err)
	}
	if g.enteringName {
		t.Fatal("expected name entry to be finished")
	}
	holdSpawns(g)
	return g, in, store
}

func holdSpawns(g *View) {
	g.nextSpawnTick = math.MaxInt32
}
