// Package inventory implements the player inventory orchestrator
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/inventory Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	"github.com/KirkDiggler/rpg-gamekit/internal/services/savemanager"
)

// Service defines the inventory operations for one player
type Service interface {
	FindItemIndex(name string) int
	AddItem(ctx context.Context, item entities.InventoryItem) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, item entities.InventoryItem) (*RemoveItemOutput, error)
	Items() []entities.InventoryItem
	Amount(name string) int32

	// LoadInventory replaces the list with the saved one; on error the list is kept
	LoadInventory(ctx context.Context) (*LoadInventoryOutput, error)
	SaveInventory(ctx context.Context) (*SaveInventoryOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	SaveManager savemanager.Service
	PlayerID    string

	// EventBus is optional
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.SaveManager == nil {
		vb.RequiredField("SaveManager")
	}
	errors.ValidateRequired("PlayerID", c.PlayerID, vb)

	return vb.Build()
}

type orchestrator struct {
	saveManager savemanager.Service
	eventBus    events.EventBus
	player      *entities.Player

	mu        sync.RWMutex
	inventory *entities.Inventory
}

// New creates an inventory orchestrator with an empty inventory
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	empty, _ := entities.NewInventory(nil)
	return &orchestrator{
		saveManager: cfg.SaveManager,
		eventBus:    cfg.EventBus,
		player:      &entities.Player{ID: cfg.PlayerID},
		inventory:   empty,
	}, nil
}

func (o *orchestrator) FindItemIndex(name string) int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.inventory.FindIndex(name)
}

func (o *orchestrator) AddItem(ctx context.Context, item entities.InventoryItem) (*AddItemOutput, error) {
	o.mu.Lock()
	added, err := o.inventory.Add(item)
	held := o.inventory.Amount(item.Name)
	o.mu.Unlock()
	if err != nil {
		slog.WarnContext(ctx, "item not added",
			"component", "inventory",
			"player_id", o.player.ID,
			"item", item.Name,
			"amount", item.Amount,
			"error", err)
		return nil, err
	}

	result := AddResultMerged
	if added {
		result = AddResultAdded
	}

	slog.InfoContext(ctx, item.Name+" has been added",
		"component", "inventory",
		"player_id", o.player.ID,
		"amount", item.Amount,
		"held", held,
		"result", string(result))

	o.publish(ctx, EventItemAdded, map[string]any{
		ContextKeyItem:   item.Name,
		ContextKeyAmount: item.Amount,
		ContextKeyHeld:   held,
	})

	return &AddItemOutput{
		Item:   entities.InventoryItem{Name: item.Name, Amount: held},
		Result: result,
	}, nil
}

func (o *orchestrator) RemoveItem(ctx context.Context, item entities.InventoryItem) (*RemoveItemOutput, error) {
	o.mu.Lock()
	remaining, err := o.inventory.Remove(item)
	o.mu.Unlock()
	if err != nil {
		slog.WarnContext(ctx, "item not removed",
			"component", "inventory",
			"player_id", o.player.ID,
			"item", item.Name,
			"amount", item.Amount,
			"error", err)
		return nil, err
	}

	slog.InfoContext(ctx, item.Name+" has been removed",
		"component", "inventory",
		"player_id", o.player.ID,
		"amount", item.Amount,
		"held", remaining)

	o.publish(ctx, EventItemRemoved, map[string]any{
		ContextKeyItem:   item.Name,
		ContextKeyAmount: item.Amount,
		ContextKeyHeld:   remaining,
	})

	return &RemoveItemOutput{
		Item: entities.InventoryItem{Name: item.Name, Amount: remaining},
	}, nil
}

func (o *orchestrator) Items() []entities.InventoryItem {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.inventory.Items()
}

func (o *orchestrator) Amount(name string) int32 {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.inventory.Amount(name)
}

func (o *orchestrator) LoadInventory(ctx context.Context) (*LoadInventoryOutput, error) {
	saved, err := o.saveManager.LoadPlayerInventory(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load inventory",
			"component", "inventory",
			"player_id", o.player.ID,
			"error", err)
		return nil, errors.Wrap(err, "failed to load inventory")
	}

	loaded, err := entities.NewInventory(saved)
	if err != nil {
		slog.ErrorContext(ctx, "saved inventory is corrupt",
			"component", "inventory",
			"player_id", o.player.ID,
			"error", err)
		return nil, errors.Wrap(err, "failed to load inventory")
	}

	o.mu.Lock()
	o.inventory = loaded
	o.mu.Unlock()

	items := loaded.Items()
	slog.InfoContext(ctx, "inventory loaded",
		"component", "inventory",
		"player_id", o.player.ID,
		"stacks", len(items))

	o.publish(ctx, EventLoaded, map[string]any{
		ContextKeyCount: len(items),
	})

	return &LoadInventoryOutput{Items: items}, nil
}

func (o *orchestrator) SaveInventory(ctx context.Context) (*SaveInventoryOutput, error) {
	items := o.Items()

	if err := o.saveManager.SavePlayerInventory(ctx, items); err != nil {
		slog.ErrorContext(ctx, "failed to save inventory",
			"component", "inventory",
			"player_id", o.player.ID,
			"error", err)
		return nil, errors.Wrap(err, "failed to save inventory")
	}

	slog.InfoContext(ctx, "inventory saved",
		"component", "inventory",
		"player_id", o.player.ID,
		"stacks", len(items))

	o.publish(ctx, EventSaved, map[string]any{
		ContextKeyCount: len(items),
	})

	return &SaveInventoryOutput{Count: len(items)}, nil
}

// publish is best effort; a failing subscriber never undoes the change
func (o *orchestrator) publish(ctx context.Context, eventType string, data map[string]any) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, o.player, nil)
	for key, value := range data {
		event.Context().Set(key, value)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "inventory event handler failed",
			"component", "inventory",
			"event", eventType,
			"error", err)
	}
}
