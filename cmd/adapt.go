package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt <content-id> <target-difficulty>",
	Short: "Rewrite content at a different difficulty level",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid target difficulty %q: %w", args[1], err)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		result := a.Adapter.Adapt(context.Background(), args[0], target)

		fmt.Printf("Title:       %s\n", result.Title)
		fmt.Printf("Description: %s\n", result.Description)
		fmt.Printf("Difficulty:  %d -> %d\n", result.OriginalDifficulty, result.TargetDifficulty)
		fmt.Printf("Adapted:     %v\n", result.Adapted)
		if result.Err != nil {
			fmt.Printf("Warning:     %v\n", result.Err)
		}
		return nil
	},
}
