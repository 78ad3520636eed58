package game

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rileyL6122428/rileyL6122428.github.io/internal/arena"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/config"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/entities"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/logging"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/scoreboard"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/surface"
)

const (
	component        = "game"
	updatesPerSecond = 60
	maxNameLen       = 12
	leaderboardSize  = 10

	zombieAttackTicks   = 45
	streakStep          = 5
	maxStreakMultiplier = 4
	spawnIntervalStep   = 2
	minSpawnInterval    = 10
	waveSpeedStep       = 0.05
	safeSpawnDistance   = 150.0
)

// Options are the collaborators of a View. Zero values get defaults, and
// a Tuning that fails validation is replaced by the defaults.
type Options struct {
	Logger *logging.Logger
	Scores scoreboard.Store
	Audio  *AudioManager
	Input  Input
	Seed   int64
	Tuning config.Tuning
}

// View is the game: an ebiten.Game bound to a drawing context.
type View struct {
	ctx           surface.Context
	width, height int
	tuning        config.Tuning
	log           *logging.Logger
	scores        scoreboard.Store
	audio         *AudioManager
	input         Input
	rng           *rand.Rand

	arena   *arena.Arena
	player  *entities.Player
	zombies []*entities.Zombie
	bullets []*entities.Bullet

	score              int
	highScore          int
	highScoreName      string
	playerName         string
	enteringName       bool
	showingLeaderboard bool
	leaderboard        []scoreboard.Record
	gameOver           bool
	fullscreen         bool
	paused             bool
	quit               bool

	tickCounter           int
	wave                  int
	toSpawn               int
	spawned               int
	spawnOffset           int
	nextSpawnTick         int
	intermissionUntilTick int
	killStreak            int
	kills                 int
}

// NewView builds the game for a width×height logical screen.
func NewView(ctx surface.Context, width, height int, opts Options) *View {
	g := &View{
		ctx:    ctx,
		width:  width,
		height: height,
		tuning: opts.Tuning,
		log:    opts.Logger,
		scores: opts.Scores,
		audio:  opts.Audio,
		input:  opts.Input,
	}
	if g.log == nil {
		g.log = logging.Nop()
	}
	if g.tuning == (config.Tuning{}) {
		g.tuning = config.DefaultTuning()
	} else if err := g.tuning.Validate(); err != nil {
		g.log.Warning(component, "invalid tuning, using defaults", logging.Fields{"error": err.Error()})
		g.tuning = config.DefaultTuning()
	}
	if g.scores == nil {
		g.scores = scoreboard.NewMemoryStore()
	}
	if g.audio == nil {
		g.audio = NewAudioManager("", false)
	}
	if g.input == nil {
		g.input = ebitenInput{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.arena = arena.NewDefaultArena(width, height)
	g.player = entities.NewPlayer(g.arena.PlayerStart(), g.tuning.PlayerMaxHealth)

	// Load persisted high score (with name if present)
	rec, err := g.scores.Best()
	if err != nil {
		g.log.Warning(component, "could not load high score", logging.Fields{"error": err.Error()})
	}
	if rec != nil {
		g.highScore = rec.Score
		g.highScoreName = rec.Name
	}
	g.enteringName = true
	g.startWave(1)
	return g
}

// Start hands the view to the drawing context's loop and blocks until the
// game ends.
func (g *View) Start() error {
	if g.ctx == nil {
		return errors.New("game: no drawing context")
	}
	g.log.Info(component, "starting", logging.Fields{"width": g.width, "height": g.height})
	err := g.ctx.Run(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *View) Update() error {
	// Advance global tick counter first so timers are robust
	g.tickCounter++
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	if g.showingLeaderboard || g.enteringName || g.paused {
		return nil
	}

	if g.intermissionUntilTick != 0 {
		if g.tickCounter < g.intermissionUntilTick {
			return nil
		}
		g.intermissionUntilTick = 0
		g.startWave(g.wave + 1)
	}

	g.player.Tick()
	g.updatePlayerMovement()
	g.updateFiring()
	g.updateBullets()
	g.updateSpawning()
	g.updateZombies()
	g.handleBulletHits()
	g.handleMedkitPickup()
	g.checkZombieContact()
	if g.gameOver {
		return nil
	}
	g.checkWaveCleared()
	return nil
}

func (g *View) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func (g *View) handleInput() {
	in := g.input
	// Name entry handling takes precedence
	if g.enteringName {
		for _, r := range in.AppendChars(nil) {
			if len([]rune(g.playerName)) >= maxNameLen {
				break
			}
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == ' ' || r == '_' || r == '-' {
				g.playerName += string(r)
			}
		}
		if in.JustPressed(ebiten.KeyBackspace) {
			rs := []rune(g.playerName)
			if len(rs) > 0 {
				g.playerName = string(rs[:len(rs)-1])
			}
		}
		if in.JustPressed(ebiten.KeyEnter) || in.JustPressed(ebiten.KeyKPEnter) {
			if strings.TrimSpace(g.playerName) != "" {
				g.playerName = strings.TrimSpace(g.playerName)
				g.enteringName = false
				g.log.Info(component, "run started", logging.Fields{"player": g.playerName})
			}
		}
		// Letters are part of the name, so only Escape quits here
		if in.JustPressed(ebiten.KeyEscape) {
			g.quit = true
		}
		return
	}

	if in.JustPressed(ebiten.KeyF) {
		g.toggleFullscreen()
	}
	if in.JustPressed(ebiten.KeyP) && !g.gameOver {
		g.paused = !g.paused
	}
	if in.JustPressed(ebiten.KeyL) && !g.gameOver {
		if g.showingLeaderboard {
			g.showingLeaderboard = false
		} else {
			g.openLeaderboard()
		}
	}
	if in.JustPressed(ebiten.KeyR) && g.gameOver {
		g.restart()
		return
	}
	// Quit with 'Q': show the leaderboard first, exit on the second press
	if in.JustPressed(ebiten.KeyQ) {
		g.saveScore()
		if g.showingLeaderboard {
			g.quit = true
		} else {
			g.openLeaderboard()
		}
	}
}

func (g *View) toggleFullscreen() {
	g.fullscreen = !g.fullscreen
	ebiten.SetFullscreen(g.fullscreen)
}
