package client

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gamekit/internal/handlers/gamekit/v1alpha1"
)

var (
	playLoop     bool
	highPriority bool
)

var soundCmd = &cobra.Command{
	Use:   "sound",
	Short: "Query and edit the sound catalog",
}

var soundFindCmd = &cobra.Command{
	Use:   "find [category] [name]",
	Short: "Check whether a sound is in the catalog",
	Args:  cobra.ExactArgs(2),
	RunE:  findSound,
}

var soundListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List catalog entries, optionally for one category",
	Args:  cobra.MaximumNArgs(1),
	RunE:  listSounds,
}

var soundAddCmd = &cobra.Command{
	Use:   "add [category] [name]",
	Short: "Add a sound to the catalog",
	Args:  cobra.ExactArgs(2),
	RunE:  addSound,
}

var soundLoadCmd = &cobra.Command{
	Use:   "load [category] [name]",
	Short: "Resolve a sound to its clip file",
	Args:  cobra.ExactArgs(2),
	RunE:  loadSound,
}

var soundPlayCmd = &cobra.Command{
	Use:   "play [category] [name]",
	Short: "Start a clip and print its playback id",
	Args:  cobra.ExactArgs(2),
	RunE:  playSound,
}

var soundStopCmd = &cobra.Command{
	Use:   "stop [playback-id]",
	Short: "Stop a playing clip",
	Args:  cobra.ExactArgs(1),
	RunE:  stopSound,
}

var soundReloadCmd = &cobra.Command{
	Use:   "reload [path]",
	Short: "Reload the sound list on the server",
	Args:  cobra.MaximumNArgs(1),
	RunE:  reloadCatalog,
}

func init() {
	soundPlayCmd.Flags().BoolVar(&playLoop, "loop", false, "Loop the clip")
	soundAddCmd.Flags().BoolVar(&highPriority, "priority", false, "Load the clip at game start")

	soundCmd.AddCommand(soundFindCmd)
	soundCmd.AddCommand(soundListCmd)
	soundCmd.AddCommand(soundAddCmd)
	soundCmd.AddCommand(soundLoadCmd)
	soundCmd.AddCommand(soundPlayCmd)
	soundCmd.AddCommand(soundStopCmd)
	soundCmd.AddCommand(soundReloadCmd)
}

func withAudioClient(fn func(ctx context.Context, client *v1alpha1.AudioServiceClient) error) error {
	client, cleanup, err := createAudioClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}

func findSound(cmd *cobra.Command, args []string) error {
	return withAudioClient(func(ctx context.Context, client *v1alpha1.AudioServiceClient) error {
		resp, err := client.FindSound(ctx, &v1alpha1.FindSoundRequest{Category: args[0], Name: args[1]})
		if err != nil {
			return fmt.Errorf("failed to find sound: %w", err)
		}

		if resp.Found {
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s is in the catalog\n", args[0], args[1])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s is not in the catalog\n", args[0], args[1])
		}
		return nil
	})
}

func listSounds(cmd *cobra.Command, args []string) error {
	req := &v1alpha1.ListSoundsRequest{}
	if len(args) == 1 {
		req.Category = args[0]
	}

	return withAudioClient(func(ctx context.Context, client *v1alpha1.AudioServiceClient) error {
		resp, err := client.ListSounds(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to list sounds: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, s := range resp.Sounds {
			marker := ""
			if s.HighPriority {
				marker = " (priority)"
			}
			fmt.Fprintf(out, "%-9s %s%s\n", s.Category, s.Name, marker)
		}
		fmt.Fprintf(out, "%d sounds\n", len(resp.Sounds))
		return nil
	})
}

func addSound(cmd *cobra.Command, args []string) error {
	return withAudioClient(func(ctx context.Context, client *v1alpha1.AudioServiceClient) error {
		_, err := client.AddSound(ctx, &v1alpha1.AddSoundRequest{
			Sound: &v1alpha1.Sound{Category: args[0], Name: args[1], HighPriority: highPriority},
		})
		if err != nil {
			return fmt.Errorf("failed to add sound: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "added %s/%s\n", args[0], args[1])
		return nil
	})
}

func loadSound(cmd *cobra.Command, args []string) error {
	return withAudioClient(func(ctx context.Context, client *v1alpha1.AudioServiceClient) error {
		resp, err := client.LoadSound(ctx, &v1alpha1.LoadSoundRequest{Category: args[0], Name: args[1]})
		if err != nil {
			return fmt.Errorf("failed to load sound: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", resp.Clip.Path, humanize.Bytes(uint64(resp.Clip.Size)))
		return nil
	})
}

func playSound(cmd *cobra.Command, args []string) error {
	return withAudioClient(func(ctx context.Context, client *v1alpha1.AudioServiceClient) error {
		resp, err := client.Play(ctx, &v1alpha1.PlayRequest{Category: args[0], Name: args[1], Loop: playLoop})
		if err != nil {
			return fmt.Errorf("failed to play sound: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "playing %s as %s\n", resp.Clip.Path, resp.PlaybackID)
		return nil
	})
}

func stopSound(cmd *cobra.Command, args []string) error {
	return withAudioClient(func(ctx context.Context, client *v1alpha1.AudioServiceClient) error {
		if _, err := client.Stop(ctx, &v1alpha1.StopRequest{PlaybackID: args[0]}); err != nil {
			return fmt.Errorf("failed to stop sound: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "stopped %s\n", args[0])
		return nil
	})
}

func reloadCatalog(cmd *cobra.Command, args []string) error {
	req := &v1alpha1.ReloadCatalogRequest{}
	if len(args) == 1 {
		req.Path = args[0]
	}

	return withAudioClient(func(ctx context.Context, client *v1alpha1.AudioServiceClient) error {
		resp, err := client.ReloadCatalog(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to reload catalog: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "catalog reloaded with %d sounds\n", resp.Sounds)
		return nil
	})
}
