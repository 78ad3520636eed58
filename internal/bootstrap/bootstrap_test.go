package bootstrap

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyL6122428/rileyL6122428.github.io/internal/surface"
)

type fakeContext struct{ w, h int }

func (c *fakeContext) Size() (int, int)        { return c.w, c.h }
func (c *fakeContext) Run(g ebiten.Game) error { return nil }

type fakeSurface struct {
	width, height int
	ctx           *fakeContext
	ctxErr        error
	calls         []string
}

func (s *fakeSurface) SetSize(w, h int) {
	s.calls = append(s.calls, "size")
	s.width, s.height = w, h
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }

func (s *fakeSurface) Context2D() (surface.Context, error) {
	s.calls = append(s.calls, "context")
	if s.ctxErr != nil {
		return nil, s.ctxErr
	}
	s.ctx = &fakeContext{w: s.width, h: s.height}
	return s.ctx, nil
}

type fakeHost struct {
	surfaces map[string]*fakeSurface
}

func (h *fakeHost) Surface(id string) (surface.Surface, error) {
	s, ok := h.surfaces[id]
	if !ok {
		return nil, surface.ErrSurfaceNotFound
	}
	return s, nil
}

type fakeView struct {
	starts   int
	startErr error
	log      *[]string
}

func (v *fakeView) Start() error {
	v.starts++
	*v.log = append(*v.log, "start")
	return v.startErr
}

type recorder struct {
	calls  int
	ctx    surface.Context
	width  int
	height int
	view   *fakeView
	err    error
	log    []string
}

func (r *recorder) factory(ctx surface.Context, width, height int) (View, error) {
	r.calls++
	r.ctx, r.width, r.height = ctx, width, height
	r.log = append(r.log, "construct")
	if r.err != nil {
		return nil, r.err
	}
	r.view = &fakeView{log: &r.log}
	return r.view, nil
}

func newHost() (*fakeHost, *fakeSurface) {
	s := &fakeSurface{}
	return &fakeHost{surfaces: map[string]*fakeSurface{"game-canvas": s}}, s
}

func TestRunSizesSurface(t *testing.T) {
	host, s := newHost()
	rec := &recorder{}

	require.NoError(t, Run(DefaultConfig(), host, rec.factory))
	assert.Equal(t, 1192, s.width)
	assert.Equal(t, 650, s.height)
	assert.Equal(t, []string{"size", "context"}, s.calls)
}

func TestRunConstructsOnceWithContextAndSize(t *testing.T) {
	host, s := newHost()
	rec := &recorder{}

	require.NoError(t, Run(DefaultConfig(), host, rec.factory))
	assert.Equal(t, 1, rec.calls)
	assert.Same(t, s.ctx, rec.ctx)
	assert.Equal(t, 1192, rec.width)
	assert.Equal(t, 650, rec.height)
}

func TestRunStartsOnceAfterConstruction(t *testing.T) {
	host, _ := newHost()
	rec := &recorder{}

	require.NoError(t, Run(DefaultConfig(), host, rec.factory))
	require.NotNil(t, rec.view)
	assert.Equal(t, 1, rec.view.starts)
	assert.Equal(t, []string{"construct", "start"}, rec.log)
}

func TestRunZeroConfigUsesDefaults(t *testing.T) {
	host, s := newHost()
	rec := &recorder{}

	require.NoError(t, Run(Config{}, host, rec.factory))
	assert.Equal(t, 1192, s.width)
	assert.Equal(t, 650, s.height)
}

func TestRunMissingSurfaceFails(t *testing.T) {
	host := &fakeHost{surfaces: map[string]*fakeSurface{}}
	rec := &recorder{}

	err := Run(DefaultConfig(), host, rec.factory)
	require.Error(t, err)
	assert.ErrorIs(t, err, surface.ErrSurfaceNotFound)
	assert.Zero(t, rec.calls)
}

func TestRunContextFailureStops(t *testing.T) {
	host, s := newHost()
	s.ctxErr = surface.ErrNoContext
	rec := &recorder{}

	err := Run(DefaultConfig(), host, rec.factory)
	assert.ErrorIs(t, err, surface.ErrNoContext)
	assert.Zero(t, rec.calls)
}

func TestRunConstructionFailureDoesNotStart(t *testing.T) {
	host, _ := newHost()
	boom := errors.New("boom")
	rec := &recorder{err: boom}

	err := Run(DefaultConfig(), host, rec.factory)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"construct"}, rec.log)
}

func TestRunReturnsStartError(t *testing.T) {
	host, _ := newHost()
	boom := errors.New("loop died")
	rec := &recorder{}
	factory := func(ctx surface.Context, w, h int) (View, error) {
		v, err := rec.factory(ctx, w, h)
		v.(*fakeView).startErr = boom
		return v, err
	}

	assert.ErrorIs(t, Run(DefaultConfig(), host, factory), boom)
}
