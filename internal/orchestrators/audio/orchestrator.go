// Package audio implements the audio manager: the sound catalog, clip loading and
// volume control through the mixer.
package audio

//go:generate mockgen -destination=mock/mock_service.go -package=audiomock github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/audio Service

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/KirkDiggler/rpg-gamekit/internal/clients/mixer"
	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	"github.com/KirkDiggler/rpg-gamekit/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-gamekit/internal/pkg/idgen"
)

const (
	// DefaultSoundListPath is where the sound list lives relative to the game root
	DefaultSoundListPath = "Resources/Json/audioListData.json"

	// DefaultSoundDir is the root of the per-category clip folders
	DefaultSoundDir = "StreamingAssets/Audio"

	// DefaultCacheTTL is how long an on-use clip stays loaded
	DefaultCacheTTL = 5 * time.Minute

	// DefaultVolume is what an unset mixer parameter reads as, in dB
	DefaultVolume float32 = 0
)

// Service defines the audio manager operations
type Service interface {
	// Catalog
	LoadListFromFile(ctx context.Context, path string) error
	LoadListFromJSON(ctx context.Context, data []byte) error
	AddSound(ctx context.Context, category entities.SoundCategory, name string, highPriority bool) error
	UpsertSound(ctx context.Context, category entities.SoundCategory, name string, highPriority bool) (entities.UpsertResult, error)
	FindSound(ctx context.Context, category entities.SoundCategory, name string) (bool, error)
	RemoveSound(ctx context.Context, category entities.SoundCategory, name string) error
	ListSounds(ctx context.Context, category entities.SoundCategory) ([]entities.SoundEntry, error)
	Catalog(ctx context.Context) *entities.Catalog

	// Clips
	LoadSound(ctx context.Context, category entities.SoundCategory, name string) (*entities.Clip, error)
	PreloadPriority(ctx context.Context) (int, error)

	// Playback
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)
	Stop(ctx context.Context, playbackID string) (*StopOutput, error)
	IsPlaying(ctx context.Context, playbackID string) bool
	StopAll(ctx context.Context) int

	// Volume
	ChangeVolume(ctx context.Context, channel entities.VolumeChannel, level float32) error
	SeeVolume(ctx context.Context, channel entities.VolumeChannel) (float32, error)

	// Lifecycle
	Start(ctx context.Context) error
	Watch(ctx context.Context) error
}

// Config holds the dependencies for the audio manager
type Config struct {
	Mixer mixer.Mixer

	// ClipSource resolves clip paths; defaults to the working directory
	ClipSource fs.FS
	// ListSource, when set, is where LoadListFromFile reads the sound list.
	// Otherwise the list is read from the OS path, which Watch also needs.
	ListSource    fs.FS
	SoundListPath string
	SoundDir      string
	CacheTTL      time.Duration

	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Mixer == nil {
		vb.RequiredField("Mixer")
	}
	if c.CacheTTL < 0 {
		vb.Fieldf("CacheTTL", "must not be negative, got %s", c.CacheTTL)
	}

	return vb.Build()
}

type orchestrator struct {
	mixer         mixer.Mixer
	clipSource    fs.FS
	listSource    fs.FS
	soundListPath string
	soundDir      string
	cacheTTL      time.Duration
	idGen         idgen.Generator
	clock         clock.Clock

	mu      sync.RWMutex
	catalog *entities.Catalog

	clips *cache.Cache

	playMu    sync.Mutex
	playbacks map[string]*entities.Playback
}

// New creates an audio manager with an empty catalog
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		mixer:         cfg.Mixer,
		clipSource:    cfg.ClipSource,
		listSource:    cfg.ListSource,
		soundListPath: cfg.SoundListPath,
		soundDir:      cfg.SoundDir,
		cacheTTL:      cfg.CacheTTL,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
		catalog:       entities.NewCatalog(),
		playbacks:     make(map[string]*entities.Playback),
	}
	if o.clipSource == nil {
		o.clipSource = os.DirFS(".")
	}
	if o.soundListPath == "" {
		o.soundListPath = DefaultSoundListPath
	}
	if o.soundDir == "" {
		o.soundDir = DefaultSoundDir
	}
	if o.cacheTTL == 0 {
		o.cacheTTL = DefaultCacheTTL
	}
	if o.idGen == nil {
		o.idGen = idgen.NewUUID("playback")
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	o.clips = cache.New(o.cacheTTL, 2*o.cacheTTL)

	return o, nil
}

func (o *orchestrator) LoadListFromFile(ctx context.Context, path string) error {
	if path == "" {
		path = o.soundListPath
	}

	data, err := o.readList(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.ErrorContext(ctx, "file does not exist",
				"component", "audio",
				"path", path)
			return errors.NotFoundf("file does not exist: %s", path).
				WithMeta("path", path)
		}
		return errors.Wrapf(err, "failed to read sound list %s", path)
	}

	return o.LoadListFromJSON(ctx, data)
}

func (o *orchestrator) readList(path string) ([]byte, error) {
	if o.listSource != nil {
		return fs.ReadFile(o.listSource, path)
	}
	return os.ReadFile(path)
}

func (o *orchestrator) LoadListFromJSON(ctx context.Context, data []byte) error {
	catalog, err := ParseCatalog(data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load sound list",
			"component", "audio",
			"error", err)
		return err
	}

	o.mu.Lock()
	o.catalog = catalog
	o.clips.Flush()
	o.mu.Unlock()

	slog.InfoContext(ctx, "JSON file loaded",
		"component", "audio",
		"sounds", catalog.Len(""),
		"priority", len(catalog.Priority()))
	return nil
}

func (o *orchestrator) AddSound(ctx context.Context, category entities.SoundCategory, name string, highPriority bool) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.catalog.Add(category, name, highPriority); err != nil {
		slog.WarnContext(ctx, "sound not added",
			"component", "audio",
			"category", category,
			"name", name,
			"error", err)
		return err
	}

	slog.DebugContext(ctx, "sound added",
		"component", "audio",
		"category", category,
		"name", name,
		"high_priority", highPriority)
	return nil
}

func (o *orchestrator) UpsertSound(ctx context.Context, category entities.SoundCategory, name string, highPriority bool) (entities.UpsertResult, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	result, err := o.catalog.Upsert(category, name, highPriority)
	if err != nil {
		return 0, err
	}

	// A cached clip carries the old priority
	o.clips.Delete(clipKey(category, name))

	slog.DebugContext(ctx, "sound upserted",
		"component", "audio",
		"category", category,
		"name", name,
		"result", result.String())
	return result, nil
}

func (o *orchestrator) FindSound(_ context.Context, category entities.SoundCategory, name string) (bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.catalog.Find(category, name)
}

func (o *orchestrator) RemoveSound(ctx context.Context, category entities.SoundCategory, name string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.catalog.Remove(category, name); err != nil {
		return err
	}
	o.clips.Delete(clipKey(category, name))

	slog.DebugContext(ctx, "sound removed",
		"component", "audio",
		"category", category,
		"name", name)
	return nil
}

func (o *orchestrator) ListSounds(_ context.Context, category entities.SoundCategory) ([]entities.SoundEntry, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.catalog.Entries(category)
}

// Catalog returns a copy of the current catalog
func (o *orchestrator) Catalog(_ context.Context) *entities.Catalog {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.catalog.Clone()
}

func (o *orchestrator) ChangeVolume(ctx context.Context, channel entities.VolumeChannel, level float32) error {
	channel, ok := entities.ParseVolumeChannel(string(channel))
	if !ok {
		return errors.InvalidArgumentf("no mixer group named %s", channel).
			WithMeta("channel", string(channel))
	}

	if channel == entities.VolumeReset {
		for _, c := range entities.VolumeChannels {
			param, _ := c.MixerParam()
			if err := o.mixer.ClearFloat(ctx, param); err != nil {
				return errors.Wrapf(err, "failed to clear %s", param)
			}
		}
		slog.InfoContext(ctx, "volume reset",
			"component", "audio")
		return nil
	}

	param, _ := channel.MixerParam()
	if err := o.mixer.SetFloat(ctx, param, level); err != nil {
		return errors.Wrapf(err, "failed to set %s", param)
	}

	slog.InfoContext(ctx, "volume changed",
		"component", "audio",
		"channel", channel,
		"level", level)
	return nil
}

func (o *orchestrator) SeeVolume(ctx context.Context, channel entities.VolumeChannel) (float32, error) {
	parsed, ok := entities.ParseVolumeChannel(string(channel))
	if !ok || parsed == entities.VolumeReset {
		return 0, errors.InvalidArgumentf("no readable mixer group named %s", channel).
			WithMeta("channel", string(channel))
	}

	param, _ := parsed.MixerParam()
	level, set, err := o.mixer.GetFloat(ctx, param)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read %s", param)
	}
	if !set {
		return DefaultVolume, nil
	}
	return level, nil
}

func (o *orchestrator) Start(ctx context.Context) error {
	if err := o.LoadListFromFile(ctx, o.soundListPath); err != nil {
		return err
	}

	loaded, err := o.PreloadPriority(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to preload priority sounds",
			"component", "audio",
			"error", err)
		return err
	}

	slog.InfoContext(ctx, "audio manager started",
		"component", "audio",
		"preloaded", loaded)
	return nil
}
