package game

import (
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/entities"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/logging"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/scoreboard"
)

func (g *View) isIntermission() bool {
	return g.intermissionUntilTick > g.tickCounter
}

func (g *View) startWave(n int) {
	g.wave = n
	g.toSpawn = g.tuning.WaveBaseZombies + g.tuning.WaveGrowth*(n-1)
	g.spawned = 0
	g.spawnOffset = g.rng.Intn(len(g.arena.SpawnPoints()))
	g.nextSpawnTick = g.tickCounter + g.spawnInterval()
	g.arena.RestockMedkits()
	g.log.Info(component, "wave started", logging.Fields{"wave": n, "zombies": g.toSpawn})
}

// spawnInterval shrinks with every wave down to a floor.
func (g *View) spawnInterval() int {
	floor := minSpawnInterval
	if g.tuning.SpawnIntervalTicks < floor {
		floor = g.tuning.SpawnIntervalTicks
	}
	iv := g.tuning.SpawnIntervalTicks - spawnIntervalStep*(g.wave-1)
	if iv < floor {
		iv = floor
	}
	return iv
}

// zombieSpeed is the per-tick base speed for the current wave.
func (g *View) zombieSpeed() float64 {
	return g.tuning.ZombieSpeed / updatesPerSecond * (1 + waveSpeedStep*float64(g.wave-1))
}

// kindFor picks the kind of the n-th zombie (from 0) of a wave. Brutes
// take precedence over runners.
func kindFor(n, wave int) entities.ZombieKind {
	switch {
	case wave >= 3 && n%5 == 4:
		return entities.ZombieBrute
	case wave >= 2 && n%3 == 2:
		return entities.ZombieRunner
	default:
		return entities.ZombieWalker
	}
}

func (g *View) updateSpawning() {
	if g.toSpawn <= 0 || g.tickCounter < g.nextSpawnTick {
		return
	}
	z := g.spawnZombie(kindFor(g.spawned, g.wave))
	g.zombies = append(g.zombies, z)
	g.spawned++
	g.toSpawn--
	g.nextSpawnTick = g.tickCounter + g.spawnInterval()
}

// spawnZombie cycles through the spawn tiles, skipping any too close to
// the player unless all of them are.
func (g *View) spawnZombie(kind entities.ZombieKind) *entities.Zombie {
	points := g.arena.SpawnPoints()
	first := (g.spawned + g.spawnOffset) % len(points)
	pos := points[first]
	for i := 0; i < len(points); i++ {
		p := points[(first+i)%len(points)]
		if p.Dist2(g.player.Pos) >= safeSpawnDistance*safeSpawnDistance {
			pos = p
			break
		}
	}
	return entities.NewZombie(kind, pos, g.zombieSpeed())
}

func (g *View) checkWaveCleared() {
	if g.toSpawn > 0 || len(g.zombies) > 0 || g.intermissionUntilTick != 0 {
		return
	}
	g.intermissionUntilTick = g.tickCounter + g.tuning.IntermissionTicks
	g.log.Info(component, "wave cleared", logging.Fields{"wave": g.wave, "score": g.score, "kills": g.kills})
}

func streakMultiplier(streak int) int {
	m := 1 + streak/streakStep
	if m > maxStreakMultiplier {
		m = maxStreakMultiplier
	}
	return m
}

// addScore updates the high score and persists it when surpassed.
func (g *View) addScore(points int) {
	g.score += points
	if g.score > g.highScore {
		g.highScore = g.score
		g.highScoreName = g.playerName
		g.saveScore()
	}
}

func (g *View) saveScore() {
	if g.playerName == "" {
		return
	}
	rec := scoreboard.Record{Name: g.playerName, Score: g.score, Wave: g.wave}
	if err := g.scores.Save(rec); err != nil {
		g.log.Error(component, "could not save score", err, logging.Fields{"score": g.score})
	}
}

func (g *View) openLeaderboard() {
	list, err := g.scores.Top(leaderboardSize)
	if err != nil {
		g.log.Error(component, "could not load leaderboard", err, nil)
	}
	g.leaderboard = list
	g.showingLeaderboard = true
}

func (g *View) endRun() {
	g.gameOver = true
	g.audio.PlayDeath()
	g.saveScore()
	g.log.Info(component, "run ended", logging.Fields{
		"player": g.playerName,
		"score":  g.score,
		"wave":   g.wave,
		"kills":  g.kills,
	})
	// Show leaderboard instead of continuing
	g.openLeaderboard()
}

func (g *View) restart() {
	g.player = entities.NewPlayer(g.arena.PlayerStart(), g.tuning.PlayerMaxHealth)
	g.zombies = nil
	g.bullets = nil
	g.score = 0
	g.kills = 0
	g.killStreak = 0
	g.gameOver = false
	g.paused = false
	g.showingLeaderboard = false
	g.intermissionUntilTick = 0
	g.startWave(1)
}
