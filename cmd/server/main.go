// Package main is the entry point for the gamekit gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gamekit/cmd/server/client"
	"github.com/KirkDiggler/rpg-gamekit/internal/config"
)

var (
	configPath string
	settings   = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "gamekit",
	Short: "Game audio and inventory service",
	Long:  `gamekit serves a sound catalog with mixer volume control and a saved player inventory over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
