package entities

import (
	"math"
	"strings"

	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
)

// InventoryItem is a named stack of identical possessions
type InventoryItem struct {
	Name   string `json:"name"`
	Amount int32  `json:"amount"`
}

// Inventory is an ordered list of stacks, unique by name.
// A stack emptied by removal stays in the list with amount zero.
type Inventory struct {
	items []InventoryItem
}

// NewInventory builds an inventory from saved stacks. Repeated names are merged
// into the first occurrence; a negative amount means the save is corrupt.
func NewInventory(items []InventoryItem) (*Inventory, error) {
	inv := &Inventory{items: make([]InventoryItem, 0, len(items))}
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, errors.DataLossf("saved item %d has no name", i)
		}
		if item.Amount < 0 {
			return nil, errors.DataLossf("saved item %s has negative amount %d", item.Name, item.Amount).
				WithMeta("item", item.Name)
		}
		if idx := inv.FindIndex(item.Name); idx >= 0 {
			if item.Amount > math.MaxInt32-inv.items[idx].Amount {
				return nil, errors.DataLossf("saved stacks of %s overflow the stack limit", item.Name).
					WithMeta("item", item.Name)
			}
			inv.items[idx].Amount += item.Amount
			continue
		}
		inv.items = append(inv.items, item)
	}
	return inv, nil
}

// FindIndex returns the position of the named stack, or -1
func (inv *Inventory) FindIndex(name string) int {
	for index := range inv.items {
		if inv.items[index].Name == name {
			return index
		}
	}
	return -1
}

// Add merges item into its stack or appends a new stack. It reports whether a new stack was created.
func (inv *Inventory) Add(item InventoryItem) (added bool, err error) {
	if err := validateItem(item); err != nil {
		return false, err
	}

	index := inv.FindIndex(item.Name)
	if index == -1 {
		inv.items = append(inv.items, item)
		return true, nil
	}

	held := inv.items[index].Amount
	if item.Amount > math.MaxInt32-held {
		return false, errors.FailedPreconditionf("cannot add %d %s, stack holds %d of at most %d",
			item.Amount, item.Name, held, int32(math.MaxInt32)).
			WithMeta("item", item.Name).
			WithMeta("held", held).
			WithMeta("requested", item.Amount)
	}

	inv.items[index].Amount = held + item.Amount
	return false, nil
}

// Remove subtracts item.Amount from its stack and returns what remains.
// Nothing changes unless the removal succeeds.
func (inv *Inventory) Remove(item InventoryItem) (int32, error) {
	if err := validateItem(item); err != nil {
		return 0, err
	}

	index := inv.FindIndex(item.Name)
	if index == -1 {
		return 0, errors.NotFoundf("item %s not in inventory", item.Name).
			WithMeta("item", item.Name)
	}

	held := inv.items[index].Amount
	if item.Amount > held {
		return held, errors.FailedPreconditionf("cannot remove %d %s, only %d held", item.Amount, item.Name, held).
			WithMeta("item", item.Name).
			WithMeta("held", held).
			WithMeta("requested", item.Amount)
	}

	inv.items[index].Amount = held - item.Amount
	return inv.items[index].Amount, nil
}

// Amount returns how many of name are held
func (inv *Inventory) Amount(name string) int32 {
	if index := inv.FindIndex(name); index >= 0 {
		return inv.items[index].Amount
	}
	return 0
}

// Items returns a copy of the stacks in order
func (inv *Inventory) Items() []InventoryItem {
	out := make([]InventoryItem, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of stacks
func (inv *Inventory) Len() int {
	return len(inv.items)
}

func validateItem(item InventoryItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return errors.InvalidArgument("item name cannot be empty")
	}
	if item.Amount < 1 {
		return errors.InvalidArgumentf("invalid amount %d for %s, must be at least 1", item.Amount, item.Name).
			WithMeta("item", item.Name).
			WithMeta("amount", item.Amount)
	}
	return nil
}
