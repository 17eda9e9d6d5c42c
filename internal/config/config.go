// Package config loads gamekit server settings from defaults, an optional YAML
// file, GAMEKIT_ environment variables and command flags.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
)

// Storage drivers
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

// EnvPrefix is prepended to every environment key
const EnvPrefix = "GAMEKIT"

// Config is the full server configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Storage StorageConfig `mapstructure:"storage"`
	Mixer   MixerConfig   `mapstructure:"mixer"`
	Player  PlayerConfig  `mapstructure:"player"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AudioConfig struct {
	SoundListPath string        `mapstructure:"sound_list_path"`
	SoundDir      string        `mapstructure:"sound_dir"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	Watch         bool          `mapstructure:"watch"`
}

type StorageConfig struct {
	Driver     string `mapstructure:"driver"`
	RedisAddr  string `mapstructure:"redis_addr"` // host:port or redis:// URL
	SQLitePath string `mapstructure:"sqlite_path"`
}

// MixerConfig selects where volume levels live. The redis driver shares storage.redis_addr.
type MixerConfig struct {
	Driver string `mapstructure:"driver"`
}

type PlayerConfig struct {
	ID string `mapstructure:"id"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// New returns a viper instance with defaults and environment binding
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.port", 50051)
	v.SetDefault("audio.sound_list_path", "Resources/Json/audioListData.json")
	v.SetDefault("audio.sound_dir", "StreamingAssets/Audio")
	v.SetDefault("audio.cache_ttl", 5*time.Minute)
	v.SetDefault("audio.watch", false)
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.sqlite_path", "gamekit.db")
	v.SetDefault("mixer.driver", DriverMemory)
	v.SetDefault("player.id", "player-1")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file into v and decodes the result
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file "+path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	errors.ValidateRequired("audio.sound_list_path", c.Audio.SoundListPath, vb)
	errors.ValidateRequired("audio.sound_dir", c.Audio.SoundDir, vb)
	if c.Audio.CacheTTL < 0 {
		vb.Fieldf("audio.cache_ttl", "must not be negative, got %s", c.Audio.CacheTTL)
	}

	errors.ValidateEnum("storage.driver", c.Storage.Driver, []string{DriverMemory, DriverRedis, DriverSQLite}, vb)
	errors.ValidateEnum("mixer.driver", c.Mixer.Driver, []string{DriverMemory, DriverRedis}, vb)
	if c.Storage.Driver == DriverRedis || c.Mixer.Driver == DriverRedis {
		errors.ValidateRequired("storage.redis_addr", c.Storage.RedisAddr, vb)
	}
	if c.Storage.Driver == DriverSQLite {
		errors.ValidateRequired("storage.sqlite_path", c.Storage.SQLitePath, vb)
	}

	errors.ValidateRequired("player.id", c.Player.ID, vb)
	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}, vb)

	return vb.Build()
}

// SlogLevel maps log.level onto a slog level
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
