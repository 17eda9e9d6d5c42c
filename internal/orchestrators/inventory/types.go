package inventory

import (
	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
)

// Event types published on the bus after a successful change
const (
	EventItemAdded   = "inventory.item_added"
	EventItemRemoved = "inventory.item_removed"
	EventLoaded      = "inventory.loaded"
	EventSaved       = "inventory.saved"
)

// Event context keys
const (
	ContextKeyItem   = "item"
	ContextKeyAmount = "amount"
	ContextKeyHeld   = "held"
	ContextKeyCount  = "count"
)

// AddResult reports how an item landed in the inventory
type AddResult string

// Add results
const (
	AddResultAdded  AddResult = "added"
	AddResultMerged AddResult = "merged"
)

// AddItemOutput defines the response for adding an item
type AddItemOutput struct {
	// Item is the stack after the add
	Item   entities.InventoryItem
	Result AddResult
}

// RemoveItemOutput defines the response for removing an item
type RemoveItemOutput struct {
	// Item is the stack after the removal; it may hold zero
	Item entities.InventoryItem
}

// LoadInventoryOutput defines the response for loading the saved inventory
type LoadInventoryOutput struct {
	Items []entities.InventoryItem
}

// SaveInventoryOutput defines the response for saving the inventory
type SaveInventoryOutput struct {
	Count int
}
