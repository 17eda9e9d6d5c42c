package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-gamekit/internal/config"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Server.Port)
	assert.Equal(t, "Resources/Json/audioListData.json", cfg.Audio.SoundListPath)
	assert.Equal(t, "StreamingAssets/Audio", cfg.Audio.SoundDir)
	assert.Equal(t, 5*time.Minute, cfg.Audio.CacheTTL)
	assert.False(t, cfg.Audio.Watch)
	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, config.DriverMemory, cfg.Mixer.Driver)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 6000
audio:
  cache_ttl: 30s
  watch: true
storage:
  driver: sqlite
  sqlite_path: /tmp/saves.db
player:
  id: hero
log:
  level: debug
`), 0o600))

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Audio.CacheTTL)
	assert.True(t, cfg.Audio.Watch)
	assert.Equal(t, config.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/saves.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "hero", cfg.Player.ID)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mixer:\n  driver: memory\n"), 0o600))

	t.Setenv("GAMEKIT_MIXER_DRIVER", "redis")
	t.Setenv("GAMEKIT_STORAGE_REDIS_ADDR", "cache:6380")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, config.DriverRedis, cfg.Mixer.Driver)
	assert.Equal(t, "cache:6380", cfg.Storage.RedisAddr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *config.Config {
		cfg, err := config.Load(config.New(), "")
		require.NoError(t, err)
		return cfg
	}

	testCases := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{"bad port", func(c *config.Config) { c.Server.Port = 0 }, "server.port: must be between 1 and 65535"},
		{"unknown storage", func(c *config.Config) { c.Storage.Driver = "mongo" }, "storage.driver: must be one of"},
		{"unknown mixer", func(c *config.Config) { c.Mixer.Driver = "sqlite" }, "mixer.driver: must be one of"},
		{"redis without addr", func(c *config.Config) {
			c.Storage.Driver = config.DriverRedis
			c.Storage.RedisAddr = ""
		}, "storage.redis_addr: is required"},
		{"sqlite without path", func(c *config.Config) {
			c.Storage.Driver = config.DriverSQLite
			c.Storage.SQLitePath = ""
		}, "storage.sqlite_path: is required"},
		{"negative ttl", func(c *config.Config) { c.Audio.CacheTTL = -time.Second }, "audio.cache_ttl"},
		{"no player", func(c *config.Config) { c.Player.ID = " " }, "player.id: is required"},
		{"bad log level", func(c *config.Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid(t)
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
