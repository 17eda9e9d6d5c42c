package inventory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*InventoryData
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*InventoryData),
	}
}

// Get retrieves a saved inventory
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.store[input.PlayerID]
	if !exists {
		return nil, errors.NotFoundf("inventory for player %s not found", input.PlayerID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{
		Data: &InventoryData{
			PlayerID: data.PlayerID,
			Items:    copyItems(data.Items),
			SavedAt:  data.SavedAt,
		},
	}, nil
}

// Save stores a snapshot
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data := &InventoryData{
		PlayerID: input.PlayerID,
		Items:    copyItems(input.Items),
		SavedAt:  input.SavedAt,
	}

	r.mu.Lock()
	r.store[input.PlayerID] = data
	r.mu.Unlock()

	return &SaveOutput{Data: data}, nil
}

// Delete removes a snapshot
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.PlayerID]; !exists {
		return nil, errors.NotFoundf("inventory for player %s not found", input.PlayerID)
	}
	delete(r.store, input.PlayerID)

	return &DeleteOutput{}, nil
}

var _ Repository = (*InMemoryRepository)(nil)
