package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gamekit/internal/handlers/gamekit/v1alpha1"
)

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Read and change mixer group levels",
}

var volumeSetCmd = &cobra.Command{
	Use:   "set [channel] [level]",
	Short: "Set a mixer group level in dB",
	Long: `Set a mixer group level. Channels are master, ambiance, effect, music and voice.
Use "reset" as the channel to clear every group back to the mixer default.

  volume set music -12
  volume set reset`,
	Args: cobra.RangeArgs(1, 2),
	RunE: setVolume,
}

var volumeGetCmd = &cobra.Command{
	Use:   "get [channel]",
	Short: "Read a mixer group level in dB",
	Args:  cobra.ExactArgs(1),
	RunE:  getVolume,
}

func init() {
	volumeCmd.AddCommand(volumeSetCmd)
	volumeCmd.AddCommand(volumeGetCmd)
}

func setVolume(cmd *cobra.Command, args []string) error {
	req := &v1alpha1.ChangeVolumeRequest{Channel: args[0]}
	if len(args) == 2 {
		level, err := strconv.ParseFloat(args[1], 32)
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[1], err)
		}
		req.Level = float32(level)
	} else if args[0] != "reset" {
		return fmt.Errorf("a level is required for channel %s", args[0])
	}

	client, cleanup, err := createAudioClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.ChangeVolume(ctx, req); err != nil {
		return fmt.Errorf("failed to change volume: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s volume set\n", args[0])
	return nil
}

func getVolume(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAudioClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SeeVolume(ctx, &v1alpha1.SeeVolumeRequest{Channel: args[0]})
	if err != nil {
		return fmt.Errorf("failed to read volume: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %g dB\n", resp.Channel, resp.Level)
	return nil
}
