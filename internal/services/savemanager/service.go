// Package savemanager adapts the inventory repository into the per-player save/load
// service the inventory orchestrator consumes.
package savemanager

//go:generate mockgen -destination=mock/mock_service.go -package=savemanagermock github.com/KirkDiggler/rpg-gamekit/internal/services/savemanager Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	"github.com/KirkDiggler/rpg-gamekit/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-gamekit/internal/repositories/inventory"
)

// Service loads and saves one player's inventory
type Service interface {
	// LoadPlayerInventory returns the saved stacks, or an empty list if the player never saved
	LoadPlayerInventory(ctx context.Context) ([]entities.InventoryItem, error)

	// SavePlayerInventory replaces the saved stacks
	SavePlayerInventory(ctx context.Context, items []entities.InventoryItem) error
}

// Config holds the dependencies for the save manager
type Config struct {
	Repository inventory.Repository
	PlayerID   string
	Clock      clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	errors.ValidateRequired("PlayerID", c.PlayerID, vb)

	return vb.Build()
}

type service struct {
	repo     inventory.Repository
	playerID string
	clock    clock.Clock
}

// New creates a save manager for one player
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &service{
		repo:     cfg.Repository,
		playerID: cfg.PlayerID,
		clock:    clk,
	}, nil
}

func (s *service) LoadPlayerInventory(ctx context.Context) ([]entities.InventoryItem, error) {
	out, err := s.repo.Get(ctx, inventory.GetInput{PlayerID: s.playerID})
	if err != nil {
		if errors.IsNotFound(err) {
			slog.DebugContext(ctx, "no saved inventory, starting empty",
				"component", "inventory",
				"player_id", s.playerID)
			return []entities.InventoryItem{}, nil
		}
		return nil, errors.Wrapf(err, "failed to load inventory for player %s", s.playerID)
	}

	return out.Data.Items, nil
}

func (s *service) SavePlayerInventory(ctx context.Context, items []entities.InventoryItem) error {
	_, err := s.repo.Save(ctx, inventory.SaveInput{
		PlayerID: s.playerID,
		Items:    items,
		SavedAt:  s.clock.Now(),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to save inventory for player %s", s.playerID)
	}

	return nil
}
