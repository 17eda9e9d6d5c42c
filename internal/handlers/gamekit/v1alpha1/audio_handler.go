package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	"github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/audio"
)

// AudioHandlerConfig holds dependencies for the audio handler
type AudioHandlerConfig struct {
	AudioService audio.Service
}

// Validate ensures all required dependencies are present
func (c *AudioHandlerConfig) Validate() error {
	if c == nil || c.AudioService == nil {
		return errors.InvalidArgument("audio service is required")
	}
	return nil
}

// AudioHandler implements the audio gRPC service
type AudioHandler struct {
	audioService audio.Service
}

var _ AudioServiceServer = (*AudioHandler)(nil)

// NewAudioHandler creates a new audio handler with the given configuration
func NewAudioHandler(cfg *AudioHandlerConfig) (*AudioHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &AudioHandler{
		audioService: cfg.AudioService,
	}, nil
}

// ChangeVolume sets a mixer group level, or clears every group for "reset"
func (h *AudioHandler) ChangeVolume(ctx context.Context, req *ChangeVolumeRequest) (*ChangeVolumeResponse, error) {
	if req.Channel == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("channel is required"))
	}

	if err := h.audioService.ChangeVolume(ctx, entities.VolumeChannel(req.Channel), req.Level); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ChangeVolumeResponse{}, nil
}

// SeeVolume reads a mixer group level
func (h *AudioHandler) SeeVolume(ctx context.Context, req *SeeVolumeRequest) (*SeeVolumeResponse, error) {
	if req.Channel == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("channel is required"))
	}

	level, err := h.audioService.SeeVolume(ctx, entities.VolumeChannel(req.Channel))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SeeVolumeResponse{
		Channel: req.Channel,
		Level:   level,
	}, nil
}

func (h *AudioHandler) FindSound(ctx context.Context, req *FindSoundRequest) (*FindSoundResponse, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	found, err := h.audioService.FindSound(ctx, category, req.Name)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &FindSoundResponse{Found: found}, nil
}

func (h *AudioHandler) AddSound(ctx context.Context, req *AddSoundRequest) (*AddSoundResponse, error) {
	category, err := parseSound(req.Sound)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if err := h.audioService.AddSound(ctx, category, req.Sound.Name, req.Sound.HighPriority); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AddSoundResponse{
		Sound: &Sound{Category: string(category), Name: req.Sound.Name, HighPriority: req.Sound.HighPriority},
	}, nil
}

func (h *AudioHandler) UpsertSound(ctx context.Context, req *UpsertSoundRequest) (*UpsertSoundResponse, error) {
	category, err := parseSound(req.Sound)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	result, err := h.audioService.UpsertSound(ctx, category, req.Sound.Name, req.Sound.HighPriority)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpsertSoundResponse{
		Sound:  &Sound{Category: string(category), Name: req.Sound.Name, HighPriority: req.Sound.HighPriority},
		Result: result.String(),
	}, nil
}

func (h *AudioHandler) RemoveSound(ctx context.Context, req *RemoveSoundRequest) (*RemoveSoundResponse, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if err := h.audioService.RemoveSound(ctx, category, req.Name); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RemoveSoundResponse{}, nil
}

// ListSounds returns one category, or every category in document order
func (h *AudioHandler) ListSounds(ctx context.Context, req *ListSoundsRequest) (*ListSoundsResponse, error) {
	categories := entities.SoundCategories
	if req.Category != "" {
		category, err := parseCategory(req.Category)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		categories = []entities.SoundCategory{category}
	}

	sounds := make([]*Sound, 0)
	for _, category := range categories {
		entries, err := h.audioService.ListSounds(ctx, category)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		for _, e := range entries {
			sounds = append(sounds, convertSoundEntry(e))
		}
	}

	return &ListSoundsResponse{Sounds: sounds}, nil
}

func (h *AudioHandler) LoadSound(ctx context.Context, req *LoadSoundRequest) (*LoadSoundResponse, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	clip, err := h.audioService.LoadSound(ctx, category, req.Name)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LoadSoundResponse{Clip: convertClip(clip)}, nil
}

func (h *AudioHandler) Play(ctx context.Context, req *PlayRequest) (*PlayResponse, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.audioService.Play(ctx, &audio.PlayInput{
		Category: category,
		Name:     req.Name,
		Loop:     req.Loop,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &PlayResponse{
		PlaybackID: out.Playback.ID,
		Clip:       convertClip(out.Playback.Clip),
	}, nil
}

func (h *AudioHandler) Stop(ctx context.Context, req *StopRequest) (*StopResponse, error) {
	if req.PlaybackID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("playback_id is required"))
	}

	if _, err := h.audioService.Stop(ctx, req.PlaybackID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StopResponse{}, nil
}

func (h *AudioHandler) StopAll(ctx context.Context, _ *StopAllRequest) (*StopAllResponse, error) {
	stopped := h.audioService.StopAll(ctx)
	return &StopAllResponse{Stopped: int32(stopped)}, nil
}

// ReloadCatalog re-reads the sound list from disk
func (h *AudioHandler) ReloadCatalog(ctx context.Context, req *ReloadCatalogRequest) (*ReloadCatalogResponse, error) {
	if err := h.audioService.LoadListFromFile(ctx, req.Path); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	catalog := h.audioService.Catalog(ctx)
	return &ReloadCatalogResponse{Sounds: int32(catalog.Len(""))}, nil
}

func parseCategory(name string) (entities.SoundCategory, error) {
	if name == "" {
		return "", errors.InvalidArgument("category is required")
	}
	category, ok := entities.ParseSoundCategory(name)
	if !ok {
		return "", errors.InvalidArgumentf("unknown sound category %s", name).
			WithMeta("category", name)
	}
	return category, nil
}

func parseSound(sound *Sound) (entities.SoundCategory, error) {
	if sound == nil {
		return "", errors.InvalidArgument("sound is required")
	}
	if sound.Name == "" {
		return "", errors.InvalidArgument("sound name is required")
	}
	return parseCategory(sound.Category)
}

func convertSoundEntry(e entities.SoundEntry) *Sound {
	return &Sound{
		Category:     string(e.Category),
		Name:         e.Name,
		HighPriority: e.HighPriority,
	}
}

func convertClip(c *entities.Clip) *Clip {
	if c == nil {
		return nil
	}
	return &Clip{
		Category:     string(c.Category),
		Name:         c.Name,
		Path:         c.Path,
		Size:         c.Size,
		HighPriority: c.HighPriority,
		LoadedAt:     c.LoadedAt.Unix(),
	}
}
