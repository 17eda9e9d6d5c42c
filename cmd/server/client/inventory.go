package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gamekit/internal/handlers/gamekit/v1alpha1"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage the player inventory",
}

var inventoryAddCmd = &cobra.Command{
	Use:   "add [name] [amount]",
	Short: "Add items, merging into an existing stack",
	Args:  cobra.ExactArgs(2),
	RunE:  addItem,
}

var inventoryRemoveCmd = &cobra.Command{
	Use:   "remove [name] [amount]",
	Short: "Remove items from a stack",
	Args:  cobra.ExactArgs(2),
	RunE:  removeItem,
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stacks in order",
	Args:  cobra.NoArgs,
	RunE:  listItems,
}

var inventorySaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the inventory through the save manager",
	Args:  cobra.NoArgs,
	RunE:  saveInventory,
}

var inventoryLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Replace the inventory with the saved one",
	Args:  cobra.NoArgs,
	RunE:  loadInventory,
}

func init() {
	inventoryCmd.AddCommand(inventoryAddCmd)
	inventoryCmd.AddCommand(inventoryRemoveCmd)
	inventoryCmd.AddCommand(inventoryListCmd)
	inventoryCmd.AddCommand(inventorySaveCmd)
	inventoryCmd.AddCommand(inventoryLoadCmd)
}

func withInventoryClient(fn func(ctx context.Context, client *v1alpha1.InventoryServiceClient) error) error {
	client, cleanup, err := createInventoryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}

func parseItemArgs(args []string) (*v1alpha1.Item, error) {
	amount, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", args[1], err)
	}
	return &v1alpha1.Item{Name: args[0], Amount: int32(amount)}, nil
}

func addItem(cmd *cobra.Command, args []string) error {
	item, err := parseItemArgs(args)
	if err != nil {
		return err
	}

	return withInventoryClient(func(ctx context.Context, client *v1alpha1.InventoryServiceClient) error {
		resp, err := client.AddItem(ctx, &v1alpha1.AddItemRequest{Item: item})
		if err != nil {
			return fmt.Errorf("failed to add item: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s has been %s, now %d\n", resp.Item.Name, resp.Result, resp.Item.Amount)
		return nil
	})
}

func removeItem(cmd *cobra.Command, args []string) error {
	item, err := parseItemArgs(args)
	if err != nil {
		return err
	}

	return withInventoryClient(func(ctx context.Context, client *v1alpha1.InventoryServiceClient) error {
		resp, err := client.RemoveItem(ctx, &v1alpha1.RemoveItemRequest{Item: item})
		if err != nil {
			return fmt.Errorf("failed to remove item: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s has been removed, %d left\n", resp.Item.Name, resp.Item.Amount)
		return nil
	})
}

func printItems(cmd *cobra.Command, items []*v1alpha1.Item) {
	out := cmd.OutOrStdout()
	for _, item := range items {
		fmt.Fprintf(out, "%-24s %d\n", item.Name, item.Amount)
	}
	fmt.Fprintf(out, "%d stacks\n", len(items))
}

func listItems(cmd *cobra.Command, _ []string) error {
	return withInventoryClient(func(ctx context.Context, client *v1alpha1.InventoryServiceClient) error {
		resp, err := client.ListItems(ctx, &v1alpha1.ListItemsRequest{})
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}

		printItems(cmd, resp.Items)
		return nil
	})
}

func saveInventory(cmd *cobra.Command, _ []string) error {
	return withInventoryClient(func(ctx context.Context, client *v1alpha1.InventoryServiceClient) error {
		resp, err := client.SaveInventory(ctx, &v1alpha1.SaveInventoryRequest{})
		if err != nil {
			return fmt.Errorf("failed to save inventory: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "saved %d stacks\n", resp.Count)
		return nil
	})
}

func loadInventory(cmd *cobra.Command, _ []string) error {
	return withInventoryClient(func(ctx context.Context, client *v1alpha1.InventoryServiceClient) error {
		resp, err := client.LoadInventory(ctx, &v1alpha1.LoadInventoryRequest{})
		if err != nil {
			return fmt.Errorf("failed to load inventory: %w", err)
		}

		printItems(cmd, resp.Items)
		return nil
	})
}
