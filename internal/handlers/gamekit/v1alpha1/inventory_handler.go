package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	"github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/inventory"
)

// InventoryHandlerConfig holds dependencies for the inventory handler
type InventoryHandlerConfig struct {
	InventoryService inventory.Service
}

// Validate ensures all required dependencies are present
func (c *InventoryHandlerConfig) Validate() error {
	if c == nil || c.InventoryService == nil {
		return errors.InvalidArgument("inventory service is required")
	}
	return nil
}

// InventoryHandler implements the inventory gRPC service
type InventoryHandler struct {
	inventoryService inventory.Service
}

var _ InventoryServiceServer = (*InventoryHandler)(nil)

// NewInventoryHandler creates a new inventory handler with the given configuration
func NewInventoryHandler(cfg *InventoryHandlerConfig) (*InventoryHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &InventoryHandler{
		inventoryService: cfg.InventoryService,
	}, nil
}

func (h *InventoryHandler) AddItem(ctx context.Context, req *AddItemRequest) (*AddItemResponse, error) {
	item, err := parseItem(req.Item)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.inventoryService.AddItem(ctx, item)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AddItemResponse{
		Item:   convertItem(out.Item),
		Result: string(out.Result),
	}, nil
}

func (h *InventoryHandler) RemoveItem(ctx context.Context, req *RemoveItemRequest) (*RemoveItemResponse, error) {
	item, err := parseItem(req.Item)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.inventoryService.RemoveItem(ctx, item)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RemoveItemResponse{Item: convertItem(out.Item)}, nil
}

func (h *InventoryHandler) ListItems(_ context.Context, _ *ListItemsRequest) (*ListItemsResponse, error) {
	return &ListItemsResponse{Items: convertItems(h.inventoryService.Items())}, nil
}

func (h *InventoryHandler) SaveInventory(ctx context.Context, _ *SaveInventoryRequest) (*SaveInventoryResponse, error) {
	out, err := h.inventoryService.SaveInventory(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SaveInventoryResponse{Count: int32(out.Count)}, nil
}

func (h *InventoryHandler) LoadInventory(ctx context.Context, _ *LoadInventoryRequest) (*LoadInventoryResponse, error) {
	out, err := h.inventoryService.LoadInventory(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LoadInventoryResponse{Items: convertItems(out.Items)}, nil
}

func parseItem(item *Item) (entities.InventoryItem, error) {
	if item == nil {
		return entities.InventoryItem{}, errors.InvalidArgument("item is required")
	}
	if item.Name == "" {
		return entities.InventoryItem{}, errors.InvalidArgument("item name is required")
	}
	return entities.InventoryItem{Name: item.Name, Amount: item.Amount}, nil
}

func convertItem(item entities.InventoryItem) *Item {
	return &Item{Name: item.Name, Amount: item.Amount}
}

func convertItems(items []entities.InventoryItem) []*Item {
	out := make([]*Item, 0, len(items))
	for _, item := range items {
		out = append(out, convertItem(item))
	}
	return out
}
