// Package bus dispatches event-visible operations published on the rpg-toolkit
// event bus to the audio and inventory orchestrators.
package bus

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	"github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/audio"
	"github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/inventory"
)

// Event types the router answers
const (
	EventChangeVolume  = "audio.change_volume"
	EventLoadInventory = "inventory.load"
	EventSaveInventory = "inventory.save"
)

// Context keys for EventChangeVolume
const (
	ContextKeyChannel = "channel"
	ContextKeyLevel   = "level"
)

// Config holds dependencies for the router
type Config struct {
	EventBus         events.EventBus
	AudioService     audio.Service
	InventoryService inventory.Service
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.AudioService == nil {
		vb.RequiredField("AudioService")
	}
	if c.InventoryService == nil {
		vb.RequiredField("InventoryService")
	}
	return vb.Build()
}

// Router owns the bus subscriptions
type Router struct {
	bus              events.EventBus
	audioService     audio.Service
	inventoryService inventory.Service
	subscriptions    []string
}

// New subscribes the router to its event types
func New(cfg *Config) (*Router, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	r := &Router{
		bus:              cfg.EventBus,
		audioService:     cfg.AudioService,
		inventoryService: cfg.InventoryService,
	}
	r.subscriptions = []string{
		r.bus.SubscribeFunc(EventChangeVolume, 0, r.handleChangeVolume),
		r.bus.SubscribeFunc(EventLoadInventory, 0, r.handleLoadInventory),
		r.bus.SubscribeFunc(EventSaveInventory, 0, r.handleSaveInventory),
	}

	return r, nil
}

// Close removes every subscription
func (r *Router) Close() error {
	for _, id := range r.subscriptions {
		if err := r.bus.Unsubscribe(id); err != nil {
			return errors.Wrapf(err, "failed to unsubscribe %s", id)
		}
	}
	r.subscriptions = nil
	return nil
}

// NewChangeVolumeEvent builds an EventChangeVolume request
func NewChangeVolumeEvent(source core.Entity, channel entities.VolumeChannel, level float32) events.Event {
	event := events.NewGameEvent(EventChangeVolume, source, nil)
	event.Context().Set(ContextKeyChannel, string(channel))
	event.Context().Set(ContextKeyLevel, level)
	return event
}

func (r *Router) handleChangeVolume(ctx context.Context, event events.Event) error {
	raw, _ := event.Context().Get(ContextKeyChannel)
	channel, ok := asString(raw)
	if !ok || channel == "" {
		return errors.InvalidArgument("change volume event has no channel")
	}

	var level float32
	if rawLevel, present := event.Context().Get(ContextKeyLevel); present {
		level, ok = asFloat32(rawLevel)
		if !ok {
			return errors.InvalidArgumentf("change volume level %v is not a number", rawLevel)
		}
	}

	if err := r.audioService.ChangeVolume(ctx, entities.VolumeChannel(channel), level); err != nil {
		slog.WarnContext(ctx, "change volume event failed",
			"component", "audio",
			"channel", channel,
			"error", err)
		return err
	}
	return nil
}

func (r *Router) handleLoadInventory(ctx context.Context, _ events.Event) error {
	_, err := r.inventoryService.LoadInventory(ctx)
	return err
}

func (r *Router) handleSaveInventory(ctx context.Context, _ events.Event) error {
	_, err := r.inventoryService.SaveInventory(ctx)
	return err
}

func asString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case entities.VolumeChannel:
		return string(val), true
	default:
		return "", false
	}
}

func asFloat32(v any) (float32, bool) {
	switch val := v.(type) {
	case float32:
		return val, true
	case float64:
		return float32(val), true
	case int:
		return float32(val), true
	case int32:
		return float32(val), true
	case int64:
		return float32(val), true
	default:
		return 0, false
	}
}
