package audio

import (
	"context"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/patrickmn/go-cache"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
)

func clipKey(category entities.SoundCategory, name string) string {
	return string(category) + "/" + name
}

// ClipPath returns where a catalog entry's file lives under soundDir
func ClipPath(soundDir string, category entities.SoundCategory, name string) string {
	return path.Join(soundDir, category.Dir(), name)
}

// LoadSound resolves a catalog entry to its clip file. High-priority clips stay
// cached until the catalog is reloaded; the rest expire after the cache TTL.
func (o *orchestrator) LoadSound(ctx context.Context, category entities.SoundCategory, name string) (*entities.Clip, error) {
	key := clipKey(category, name)

	// Catalog changes invalidate the cache under the write lock, so a clip
	// read or stored under the read lock matches the entry seen with it.
	o.mu.RLock()
	entry, err := o.catalog.Get(category, name)
	if err == nil {
		if cached, ok := o.clips.Get(key); ok {
			o.mu.RUnlock()
			return cached.(*entities.Clip), nil
		}
	}
	o.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	clipPath := ClipPath(o.soundDir, category, name)
	if !fs.ValidPath(clipPath) || !strings.HasPrefix(clipPath, path.Join(o.soundDir, category.Dir())+"/") {
		return nil, errors.InvalidArgumentf("invalid clip path %s", clipPath).
			WithMeta("path", clipPath)
	}

	info, err := fs.Stat(o.clipSource, clipPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("clip file %s does not exist", clipPath).
				WithMeta("category", string(category)).
				WithMeta("name", name).
				WithMeta("path", clipPath)
		}
		return nil, errors.Wrapf(err, "failed to stat clip %s", clipPath)
	}
	if info.IsDir() {
		return nil, errors.InvalidArgumentf("clip path %s is a directory", clipPath)
	}

	clip := &entities.Clip{
		Category:     category,
		Name:         name,
		Path:         clipPath,
		Size:         info.Size(),
		HighPriority: entry.HighPriority,
		LoadedAt:     o.clock.Now(),
	}

	ttl := cache.DefaultExpiration
	if entry.HighPriority {
		ttl = cache.NoExpiration
	}

	o.mu.RLock()
	if current, err := o.catalog.Get(category, name); err == nil && current == entry {
		o.clips.Set(key, clip, ttl)
	}
	o.mu.RUnlock()

	slog.DebugContext(ctx, "clip loaded",
		"component", "audio",
		"path", clipPath,
		"size", humanize.Bytes(uint64(clip.Size)),
		"high_priority", clip.HighPriority)
	return clip, nil
}

// PreloadPriority loads every high-priority clip. Missing files are logged and skipped.
func (o *orchestrator) PreloadPriority(ctx context.Context) (int, error) {
	o.mu.RLock()
	entries := o.catalog.Priority()
	o.mu.RUnlock()

	loaded := 0
	var total int64
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return loaded, errors.Wrap(err, "preload canceled")
		}

		clip, err := o.LoadSound(ctx, entry.Category, entry.Name)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "priority clip missing",
					"component", "audio",
					"category", entry.Category,
					"name", entry.Name)
				continue
			}
			return loaded, err
		}
		loaded++
		total += clip.Size
	}

	slog.InfoContext(ctx, "priority clips preloaded",
		"component", "audio",
		"count", loaded,
		"skipped", len(entries)-loaded,
		"size", humanize.Bytes(uint64(total)))
	return loaded, nil
}
