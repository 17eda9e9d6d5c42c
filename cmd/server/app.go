package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-gamekit/internal/clients/mixer"
	"github.com/KirkDiggler/rpg-gamekit/internal/config"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	"github.com/KirkDiggler/rpg-gamekit/internal/handlers/bus"
	"github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/audio"
	"github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-gamekit/internal/redis"
	inventoryrepo "github.com/KirkDiggler/rpg-gamekit/internal/repositories/inventory"
	"github.com/KirkDiggler/rpg-gamekit/internal/services/savemanager"
)

// app holds the wired services for one server process
type app struct {
	audio     audio.Service
	inventory inventory.Service
	eventBus  events.EventBus
	router    *bus.Router

	closers []func() error
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{eventBus: events.NewBus()}

	var redisClient redis.Client
	if cfg.Storage.Driver == config.DriverRedis || cfg.Mixer.Driver == config.DriverRedis {
		client, err := redis.NewClient(cfg.Storage.RedisAddr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		redisClient = client
		a.closers = append(a.closers, client.Close)
	}

	repo, err := a.newRepository(cfg, redisClient)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	mix, err := newMixer(cfg, redisClient)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	clipSource, soundDir := clipSourceFor(cfg.Audio.SoundDir)
	a.audio, err = audio.New(&audio.Config{
		Mixer:         mix,
		ClipSource:    clipSource,
		SoundListPath: cfg.Audio.SoundListPath,
		SoundDir:      soundDir,
		CacheTTL:      cfg.Audio.CacheTTL,
	})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create audio manager")
	}

	saveManager, err := savemanager.New(&savemanager.Config{
		Repository: repo,
		PlayerID:   cfg.Player.ID,
	})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create save manager")
	}

	a.inventory, err = inventory.New(&inventory.Config{
		SaveManager: saveManager,
		PlayerID:    cfg.Player.ID,
		EventBus:    a.eventBus,
	})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create inventory")
	}

	a.router, err = bus.New(&bus.Config{
		EventBus:         a.eventBus,
		AudioService:     a.audio,
		InventoryService: a.inventory,
	})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to subscribe event router")
	}
	a.closers = append(a.closers, a.router.Close)

	return a, nil
}

func (a *app) newRepository(cfg *config.Config, client redis.Client) (inventoryrepo.Repository, error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		return inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: client})
	case config.DriverSQLite:
		repo, err := inventoryrepo.OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil
	default:
		return inventoryrepo.NewInMemory(), nil
	}
}

func newMixer(cfg *config.Config, client redis.Client) (mixer.Mixer, error) {
	if cfg.Mixer.Driver == config.DriverRedis {
		return mixer.NewRedis(&mixer.RedisConfig{Client: client})
	}
	return mixer.NewInMemory(), nil
}

// clipSourceFor roots the clip file system so soundDir is a valid fs path
func clipSourceFor(soundDir string) (fs.FS, string) {
	clean := filepath.ToSlash(filepath.Clean(soundDir))
	if filepath.IsAbs(soundDir) {
		return os.DirFS("/"), strings.TrimPrefix(clean, "/")
	}
	return os.DirFS("."), clean
}

// start loads the catalog and the saved inventory. Neither failure stops the server.
func (a *app) start(ctx context.Context) {
	if err := a.audio.Start(ctx); err != nil {
		slog.WarnContext(ctx, "audio manager started without a sound list",
			"component", "audio",
			"error", err)
	}

	if _, err := a.inventory.LoadInventory(ctx); err != nil {
		slog.WarnContext(ctx, "inventory started empty",
			"component", "inventory",
			"error", err)
	}
}

// Close releases resources in reverse order of acquisition
func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
