package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rileyL6122428/rileyL6122428.github.io/internal/bootstrap"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/logging"
)

const (
	DefaultSurfaceID = bootstrap.DefaultSurfaceID
	DefaultWidth     = bootstrap.DefaultWidth
	DefaultHeight    = bootstrap.DefaultHeight
	DefaultTitle     = "Tales of Zombies"

	dataDirName = "talesofzombies"
)

// Config is everything the command needs before the game loop starts.
type Config struct {
	SurfaceID string
	Width     int
	Height    int
	Title     string

	// DataDir holds score files and the sqlite database. It is empty when
	// no directory could be resolved, with the reason in DataDirErr.
	DataDir      string
	DataDirErr   error
	ScoreStore   string
	AudioEnabled bool
	SoundsDir    string
	LogLevel     zerolog.Level

	Tuning Tuning
}

// Tuning holds the gameplay numbers. Speeds are pixels per second,
// durations are update ticks (60 per second).
type Tuning struct {
	PlayerSpeed         float64 `json:"player_speed"`
	PlayerMaxHealth     int     `json:"player_max_health"`
	HurtCooldownTicks   int     `json:"hurt_cooldown_ticks"`
	FireCooldownTicks   int     `json:"fire_cooldown_ticks"`
	BulletSpeed         float64 `json:"bullet_speed"`
	BulletDamage        int     `json:"bullet_damage"`
	BulletLifetimeTicks int     `json:"bullet_lifetime_ticks"`
	ZombieSpeed         float64 `json:"zombie_speed"`
	WaveBaseZombies     int     `json:"wave_base_zombies"`
	WaveGrowth          int     `json:"wave_growth"`
	SpawnIntervalTicks  int     `json:"spawn_interval_ticks"`
	IntermissionTicks   int     `json:"intermission_ticks"`
	MedkitHeal          int     `json:"medkit_heal"`
}

func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:         180,
		PlayerMaxHealth:     100,
		HurtCooldownTicks:   30,
		FireCooldownTicks:   10,
		BulletSpeed:         600,
		BulletDamage:        1,
		BulletLifetimeTicks: 90,
		ZombieSpeed:         70,
		WaveBaseZombies:     6,
		WaveGrowth:          3,
		SpawnIntervalTicks:  45,
		IntermissionTicks:   180,
		MedkitHeal:          25,
	}
}

// Validate reports the first field that would break the game loop.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		ok   bool
	}{
		{"player_speed", t.PlayerSpeed > 0},
		{"player_max_health", t.PlayerMaxHealth > 0},
		{"fire_cooldown_ticks", t.FireCooldownTicks > 0},
		{"bullet_speed", t.BulletSpeed > 0},
		{"bullet_damage", t.BulletDamage > 0},
		{"bullet_lifetime_ticks", t.BulletLifetimeTicks > 0},
		{"zombie_speed", t.ZombieSpeed > 0},
		{"wave_base_zombies", t.WaveBaseZombies > 0},
		{"spawn_interval_ticks", t.SpawnIntervalTicks > 0},
	}
	for _, p := range positive {
		if !p.ok {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}
	if t.WaveGrowth < 0 || t.HurtCooldownTicks < 0 || t.IntermissionTicks < 0 || t.MedkitHeal < 0 {
		return fmt.Errorf("wave_growth, hurt_cooldown_ticks, intermission_ticks and medkit_heal must not be negative")
	}
	return nil
}

func Default() Config {
	return Config{
		SurfaceID:  DefaultSurfaceID,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Title:      DefaultTitle,
		ScoreStore: "file",
		SoundsDir:  "assets/sounds",
		LogLevel:   zerolog.InfoLevel,
		Tuning:     DefaultTuning(),
	}
}

// FromEnv starts from Default and applies the ZOMBIES_* variables.
// Audio is disabled unless ZOMBIES_ENABLE_AUDIO=1.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv("ZOMBIES_SURFACE_ID"); v != "" {
		cfg.SurfaceID = v
	}
	var err error
	if cfg.Width, err = intEnv("ZOMBIES_WIDTH", cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = intEnv("ZOMBIES_HEIGHT", cfg.Height); err != nil {
		return cfg, err
	}

	// Browsers have no home or writable disk; scores then live in memory
	if dir, err := dataDir(); err != nil {
		cfg.DataDirErr = fmt.Errorf("resolve data dir: %w", err)
	} else {
		cfg.DataDir = dir
	}

	if v := os.Getenv("ZOMBIES_SCORE_STORE"); v != "" {
		cfg.ScoreStore = strings.ToLower(strings.TrimSpace(v))
	}
	cfg.AudioEnabled = os.Getenv("ZOMBIES_ENABLE_AUDIO") == "1" && os.Getenv("ZOMBIES_DISABLE_AUDIO") != "1"
	if v := os.Getenv("ZOMBIES_SOUNDS_DIR"); v != "" {
		cfg.SoundsDir = v
	}

	level, err := logging.ParseLevel(os.Getenv("ZOMBIES_LOG_LEVEL"))
	if err != nil {
		return cfg, fmt.Errorf("ZOMBIES_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if path := os.Getenv("ZOMBIES_TUNING"); path != "" {
		t, err := LoadTuning(path, cfg.Tuning)
		if err != nil {
			return cfg, err
		}
		cfg.Tuning = t
	}
	return cfg, nil
}

// LoadTuning overlays the JSON file at path onto base. Keys missing from
// the file keep the base value.
func LoadTuning(path string, base Tuning) (Tuning, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	t := base
	if err := json.Unmarshal(b, &t); err != nil {
		return base, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return base, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	if n <= 0 {
		return def, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

// dataDir uses ZOMBIES_CONFIG_DIR as-is when set, otherwise
// UserConfigDir()/talesofzombies. The directory is created.
func dataDir() (string, error) {
	if env := os.Getenv("ZOMBIES_CONFIG_DIR"); env != "" {
		if err := os.MkdirAll(env, 0o755); err != nil {
			return "", err
		}
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, dataDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
