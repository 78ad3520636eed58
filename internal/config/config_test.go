package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyL6122428/rileyL6122428.github.io/internal/bootstrap"
)

func TestDefaultMatchesCanvas(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "game-canvas", cfg.SurfaceID)
	assert.Equal(t, 1192, cfg.Width)
	assert.Equal(t, 650, cfg.Height)
	assert.NoError(t, cfg.Tuning.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZOMBIES_CONFIG_DIR", dir)
	t.Setenv("ZOMBIES_SURFACE_ID", "other-canvas")
	t.Setenv("ZOMBIES_WIDTH", "800")
	t.Setenv("ZOMBIES_HEIGHT", "600")
	t.Setenv("ZOMBIES_SCORE_STORE", " SQLite ")
	t.Setenv("ZOMBIES_ENABLE_AUDIO", "1")
	t.Setenv("ZOMBIES_LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "other-canvas", cfg.SurfaceID)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.ScoreStore)
	assert.True(t, cfg.AudioEnabled)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestFromEnvAudioDisabledWins(t *testing.T) {
	t.Setenv("ZOMBIES_CONFIG_DIR", t.TempDir())
	t.Setenv("ZOMBIES_ENABLE_AUDIO", "1")
	t.Setenv("ZOMBIES_DISABLE_AUDIO", "1")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.AudioEnabled)
}

func TestFromEnvRejectsBadSize(t *testing.T) {
	t.Setenv("ZOMBIES_CONFIG_DIR", t.TempDir())
	t.Setenv("ZOMBIES_WIDTH", "wide")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("ZOMBIES_WIDTH", "-5")
	_, err = FromEnv()
	assert.Error(t, err)
}

func TestFromEnvRejectsBadLogLevel(t *testing.T) {
	t.Setenv("ZOMBIES_CONFIG_DIR", t.TempDir())
	t.Setenv("ZOMBIES_LOG_LEVEL", "shouty")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoadTuningPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"player_speed": 250, "wave_growth": 5}`), 0o644))

	got, err := LoadTuning(path, DefaultTuning())
	require.NoError(t, err)
	assert.Equal(t, 250.0, got.PlayerSpeed)
	assert.Equal(t, 5, got.WaveGrowth)
	assert.Equal(t, DefaultTuning().BulletSpeed, got.BulletSpeed)
}

func TestLoadTuningRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"bullet_speed": 0}`), 0o644))
	_, err := LoadTuning(bad, DefaultTuning())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bullet_speed")
	assert.Contains(t, err.Error(), bad)

	garbled := filepath.Join(dir, "garbled.json")
	require.NoError(t, os.WriteFile(garbled, []byte(`{`), 0o644))
	_, err = LoadTuning(garbled, DefaultTuning())
	assert.Error(t, err)

	_, err = LoadTuning(filepath.Join(dir, "missing.json"), DefaultTuning())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromEnvLoadsTuningFile(t *testing.T) {
	t.Setenv("ZOMBIES_CONFIG_DIR", t.TempDir())
	path := filepath.Join(t.TempDir(), "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"medkit_heal": 40}`), 0o644))
	t.Setenv("ZOMBIES_TUNING", path)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Tuning.MedkitHeal)
}

func TestFromEnvWithoutHomeKeepsGoing(t *testing.T) {
	t.Setenv("ZOMBIES_CONFIG_DIR", "")
	t.Setenv("HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("AppData", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.DataDir)
	assert.Error(t, cfg.DataDirErr)
	assert.Equal(t, DefaultSurfaceID, cfg.SurfaceID)
}

func TestFromEnvUnwritableDataDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	t.Setenv("ZOMBIES_CONFIG_DIR", filepath.Join(blocker, "scores"))

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.DataDir)
	assert.Error(t, cfg.DataDirErr)
}

func TestDefaultsShareBootstrapValues(t *testing.T) {
	d := bootstrap.DefaultConfig()
	cfg := Default()
	assert.Equal(t, d.SurfaceID, cfg.SurfaceID)
	assert.Equal(t, d.Width, cfg.Width)
	assert.Equal(t, d.Height, cfg.Height)
}
