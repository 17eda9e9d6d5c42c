package audio

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
)

// Play loads the clip and registers a playback handle for it.
// A handle stays live until Stop or StopAll.
func (o *orchestrator) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	clip, err := o.LoadSound(ctx, input.Category, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to play %s", input.Name)
	}

	playback := &entities.Playback{
		ID:        o.idGen.Generate(),
		Clip:      clip,
		Loop:      input.Loop,
		StartedAt: o.clock.Now(),
	}

	o.playMu.Lock()
	o.playbacks[playback.ID] = playback
	o.playMu.Unlock()

	slog.InfoContext(ctx, "clip playing",
		"component", "audio",
		"playback_id", playback.ID,
		"path", clip.Path,
		"loop", playback.Loop)
	return &PlayOutput{Playback: playback}, nil
}

func (o *orchestrator) Stop(ctx context.Context, playbackID string) (*StopOutput, error) {
	o.playMu.Lock()
	playback, ok := o.playbacks[playbackID]
	delete(o.playbacks, playbackID)
	o.playMu.Unlock()

	if !ok {
		return nil, errors.NotFoundf("playback %s not found", playbackID).
			WithMeta("playback_id", playbackID)
	}

	slog.InfoContext(ctx, "clip stopped",
		"component", "audio",
		"playback_id", playbackID)
	return &StopOutput{Playback: playback}, nil
}

func (o *orchestrator) IsPlaying(_ context.Context, playbackID string) bool {
	o.playMu.Lock()
	defer o.playMu.Unlock()

	_, ok := o.playbacks[playbackID]
	return ok
}

// StopAll clears every playback handle and returns how many there were
func (o *orchestrator) StopAll(ctx context.Context) int {
	o.playMu.Lock()
	stopped := len(o.playbacks)
	o.playbacks = make(map[string]*entities.Playback)
	o.playMu.Unlock()

	if stopped > 0 {
		slog.InfoContext(ctx, "all clips stopped",
			"component", "audio",
			"count", stopped)
	}
	return stopped
}
