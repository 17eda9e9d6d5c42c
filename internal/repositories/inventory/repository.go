// Package inventory provides the persistence interface for saved player inventories
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/rpg-gamekit/internal/repositories/inventory Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
)

// Repository stores one inventory snapshot per player
type Repository interface {
	// Get retrieves the saved inventory for a player
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.NotFound if the player has never saved
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the saved inventory for a player
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the saved inventory for a player
	// Returns errors.NotFound if the player has never saved
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// InventoryData is one saved snapshot
type InventoryData struct {
	PlayerID string                   `json:"player_id"`
	Items    []entities.InventoryItem `json:"items"`
	SavedAt  time.Time                `json:"saved_at"`
}

// GetInput defines the input for getting a saved inventory
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a saved inventory
type GetOutput struct {
	Data *InventoryData
}

// SaveInput defines the input for saving an inventory
type SaveInput struct {
	PlayerID string
	Items    []entities.InventoryItem
	SavedAt  time.Time
}

// SaveOutput defines the output for saving an inventory
type SaveOutput struct {
	Data *InventoryData
}

// DeleteInput defines the input for deleting a saved inventory
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput defines the output for deleting a saved inventory
type DeleteOutput struct{}

const (
	errPlayerIDEmpty = "player ID cannot be empty"
)

func copyItems(items []entities.InventoryItem) []entities.InventoryItem {
	out := make([]entities.InventoryItem, len(items))
	copy(out, items)
	return out
}
