package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/audio"
)

var exportOut string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Work with sound list files offline",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a sound list and print per-category counts",
	Args:  cobra.ExactArgs(1),
	RunE:  validateCatalog,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Rewrite a sound list with sorted entries and every category present",
	Args:  cobra.ExactArgs(1),
	RunE:  exportCatalog,
}

func init() {
	catalogExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to a file instead of stdout")

	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}

func readCatalog(path string) (*entities.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	catalog, err := audio.ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

func validateCatalog(cmd *cobra.Command, args []string) error {
	catalog, err := readCatalog(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, category := range entities.SoundCategories {
		fmt.Fprintf(out, "%-9s %d\n", category, catalog.Len(category))
	}
	fmt.Fprintf(out, "%d sounds, %d high priority\n", catalog.Len(""), len(catalog.Priority()))
	return nil
}

func exportCatalog(cmd *cobra.Command, args []string) error {
	catalog, err := readCatalog(args[0])
	if err != nil {
		return err
	}

	data, err := audio.MarshalCatalog(catalog)
	if err != nil {
		return err
	}

	if exportOut == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}
	return nil
}
