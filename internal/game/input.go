package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rileyL6122428/rileyL6122428.github.io/internal/entities"
)

// Input is the per-tick view of the keyboard and mouse.
type Input interface {
	// Movement returns the raw direction held, each axis in -1..1.
	Movement() entities.Vec
	// Cursor is in logical screen pixels.
	Cursor() entities.Vec
	Firing() bool
	JustPressed(key ebiten.Key) bool
	AppendChars(runes []rune) []rune
}

type ebitenInput struct{}

func (ebitenInput) Movement() entities.Vec {
	var v entities.Vec
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.X++
	}
	return v
}

func (ebitenInput) Cursor() entities.Vec {
	x, y := ebiten.CursorPosition()
	return entities.Vec{X: float64(x), Y: float64(y)}
}

func (ebitenInput) Firing() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
}

func (ebitenInput) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (ebitenInput) AppendChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}
