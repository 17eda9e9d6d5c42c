package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-gamekit/internal/redis"
	"github.com/KirkDiggler/rpg-gamekit/internal/repositories/inventory"
)

// Scans saved inventories in Redis and offers to delete the ones the server would refuse to load.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redisclient.NewClient(redisURL, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	repo, err := inventory.NewRedis(&inventory.RedisConfig{Client: client})
	if err != nil {
		log.Fatal("Failed to create repository:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted inventory saves...")

	prefix := inventory.GetKey("")
	iter := client.Scan(ctx, 0, prefix+"*", 0).Iterator()

	var corrupted []string
	var checkedCount int

	for iter.Next(ctx) {
		playerID := strings.TrimPrefix(iter.Val(), prefix)
		checkedCount++

		out, err := repo.Get(ctx, inventory.GetInput{PlayerID: playerID})
		if err != nil {
			if errors.IsDataLoss(err) {
				fmt.Printf("✗ Unreadable save for %s: %v\n", playerID, err)
				corrupted = append(corrupted, playerID)
			} else {
				fmt.Printf("Error reading %s: %v\n", playerID, err)
			}
			continue
		}

		if _, err := entities.NewInventory(out.Data.Items); err != nil {
			fmt.Printf("✗ Invalid stacks for %s: %v\n", playerID, err)
			corrupted = append(corrupted, playerID)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d saves, found %d corrupted\n", checkedCount, len(corrupted))

	if len(corrupted) == 0 {
		fmt.Println("No corrupted saves found!")
		return
	}

	fmt.Println("\nCorrupted saves:")
	for _, playerID := range corrupted {
		fmt.Printf("  - %s\n", playerID)
	}

	fmt.Print("\nDo you want to DELETE these saves? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, playerID := range corrupted {
		if _, err := repo.Delete(ctx, inventory.DeleteInput{PlayerID: playerID}); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", playerID, err)
		} else {
			fmt.Printf("Deleted %s\n", playerID)
		}
	}
	fmt.Println("\nCleanup complete!")
}
