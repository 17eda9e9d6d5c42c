package audio

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
)

// Watch reloads the sound list whenever it changes on disk, until ctx is done.
// A reload that fails keeps the previous catalog.
func (o *orchestrator) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer func() {
		_ = watcher.Close()
	}()

	target := filepath.Clean(o.soundListPath)

	// Editors usually replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "failed to watch %s", target)
	}

	slog.InfoContext(ctx, "watching sound list",
		"component", "audio",
		"path", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			o.reload(ctx)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.WarnContext(ctx, "sound list watcher error",
				"component", "audio",
				"error", werr)
		}
	}
}

func (o *orchestrator) reload(ctx context.Context) {
	if err := o.LoadListFromFile(ctx, o.soundListPath); err != nil {
		slog.WarnContext(ctx, "sound list reload failed, keeping previous catalog",
			"component", "audio",
			"error", err)
		return
	}
	if _, err := o.PreloadPriority(ctx); err != nil {
		slog.WarnContext(ctx, "priority preload after reload failed",
			"component", "audio",
			"error", err)
	}
}
