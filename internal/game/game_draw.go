package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/rileyL6122428/rileyL6122428.github.io/internal/entities"
)

// basicfont.Face7x13 glyphs are 7 pixels wide.
const glyphWidth = 7

var (
	playerColor  = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	bulletColor  = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	healthBack   = color.RGBA{R: 80, G: 20, B: 20, A: 255}
	healthFront  = color.RGBA{R: 60, G: 200, B: 80, A: 255}
	overlayColor = color.RGBA{A: 170}
	titleColor   = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	hintColor    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	zombieColors = map[entities.ZombieKind]color.RGBA{
		entities.ZombieWalker: {R: 110, G: 150, B: 80, A: 255},
		entities.ZombieRunner: {R: 170, G: 190, B: 60, A: 255},
		entities.ZombieBrute:  {R: 90, G: 110, B: 60, A: 255},
	}
)

func (g *View) Draw(screen *ebiten.Image) {
	g.arena.Draw(screen)

	for _, b := range g.bullets {
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), entities.BulletRadius, bulletColor, true)
	}
	for _, z := range g.zombies {
		vector.DrawFilledCircle(screen, float32(z.Pos.X), float32(z.Pos.Y), float32(z.Radius()), zombieColors[z.Kind], true)
	}

	p := g.player
	hurtFlash := p.HurtCooldown > 0 && g.tickCounter%6 < 3
	if !hurtFlash {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), entities.PlayerRadius, playerColor, true)
	}
	tip := p.Pos.Add(p.Facing.Scale(entities.PlayerRadius + 8))
	vector.StrokeLine(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(tip.X), float32(tip.Y), 3, color.White, true)

	g.drawHUD(screen)

	switch {
	case g.enteringName:
		g.drawOverlay(screen)
		g.drawCentered(screen, "TALES OF ZOMBIES", g.height/2-30, titleColor)
		g.drawCentered(screen, "Enter name: "+g.playerName+"_", g.height/2, color.White)
		g.drawCentered(screen, "WASD move, mouse aim, click or Space to shoot", g.height/2+30, hintColor)
	case g.showingLeaderboard:
		g.drawLeaderboard(screen)
	case g.paused:
		g.drawOverlay(screen)
		g.drawCentered(screen, "Paused - press P to resume", g.height/2, color.White)
	case g.isIntermission():
		remaining := float64(g.intermissionUntilTick-g.tickCounter) / updatesPerSecond
		g.drawCentered(screen, fmt.Sprintf("Wave %d cleared! Next wave in %.1fs", g.wave, remaining), g.height/2-60, color.White)
	}
}

func (g *View) drawHUD(screen *ebiten.Image) {
	hiLabel := "High"
	if g.highScoreName != "" {
		hiLabel = fmt.Sprintf("High(%s)", g.highScoreName)
	}
	name := g.playerName
	if name == "" {
		name = "Player"
	}
	left := g.toSpawn + len(g.zombies)
	hud := fmt.Sprintf("%s  Score: %d  %s: %d  Wave: %d  Zombies: %d  FPS: %0.0f",
		name, g.score, hiLabel, g.highScore, g.wave, left, ebiten.ActualFPS())
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.White)

	const barW, barH = 200, 10
	x, y := float32(g.width-barW-8), float32(7)
	frac := float32(0)
	if g.player.MaxHealth > 0 {
		frac = float32(g.player.Health) / float32(g.player.MaxHealth)
	}
	vector.DrawFilledRect(screen, x, y, barW, barH, healthBack, false)
	vector.DrawFilledRect(screen, x, y, barW*frac, barH, healthFront, false)
}

func (g *View) drawLeaderboard(screen *ebiten.Image) {
	g.drawOverlay(screen)
	y := g.height/2 - 100
	if g.gameOver {
		g.drawCentered(screen, "YOU WERE EATEN", y-30, titleColor)
		g.drawCentered(screen, fmt.Sprintf("Score %d  Wave %d  Kills %d", g.score, g.wave, g.kills), y-14, color.White)
	}
	g.drawCentered(screen, "High Scores", y+10, color.RGBA{R: 255, G: 215, B: 0, A: 255})
	y += 24
	for i, r := range g.leaderboard {
		line := fmt.Sprintf("%2d. %-12s  %6d  wave %d", i+1, r.Name, r.Score, r.Wave)
		g.drawCentered(screen, line, y, color.White)
		y += 14
	}
	hint := "Press L to close, Q to quit"
	if g.gameOver {
		hint = "Press R to play again, Q to quit"
	}
	g.drawCentered(screen, hint, g.height-16, hintColor)
}

func (g *View) drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), overlayColor, false)
}

func (g *View) drawCentered(screen *ebiten.Image, s string, y int, c color.Color) {
	w := len(s) * glyphWidth
	text.Draw(screen, s, basicfont.Face7x13, (g.width-w)/2, y, c)
}
