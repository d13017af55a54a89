package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var difficultyCmd = &cobra.Command{
	Use:   "difficulty <user-id>",
	Short: "Show the recommended difficulty level for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		level := a.Estimator.Recommended(context.Background(), args[0])
		fmt.Printf("Recommended difficulty: %d/5\n", level)
		return nil
	},
}
