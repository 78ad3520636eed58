package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rileyL6122428/rileyL6122428.github.io/internal/entities"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/scoreboard"
)

func TestGameDrawDoesNotPanic(t *testing.T) {
	g, _, _ := newTestView(t)
	screen := ebiten.NewImage(1192, 650)
	// Name prompt
	g.Draw(screen)

	g.enteringName = false
	g.playerName = "Tester"
	g.zombies = []*entities.Zombie{
		entities.NewZombie(entities.ZombieWalker, entities.Vec{X: 100, Y: 100}, 1),
		entities.NewZombie(entities.ZombieBrute, entities.Vec{X: 300, Y: 200}, 1),
	}
	g.bullets = []*entities.Bullet{{Pos: entities.Vec{X: 50, Y: 50}, TTL: 3}}
	g.Draw(screen)

	g.intermissionUntilTick = g.tickCounter + 60
	g.Draw(screen)

	g.paused = true
	g.Draw(screen)

	g.gameOver = true
	g.showingLeaderboard = true
	g.leaderboard = []scoreboard.Record{{Name: "Ash", Score: 10, Wave: 1}}
	g.Draw(screen)
}
