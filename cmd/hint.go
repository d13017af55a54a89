package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsangels/aiengine/internal/generate"
)

var hintCmd = &cobra.Command{
	Use:   "hint <challenge-id>",
	Short: "Generate a hint for a coding challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		attempt, _ := cmd.Flags().GetString("attempt")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		text := a.Generator.Hint(context.Background(), generate.HintRequest{
			ChallengeID: args[0],
			UserAttempt: attempt,
			Level:       level,
		})
		fmt.Println(text)
		return nil
	},
}

func init() {
	hintCmd.Flags().IntP("level", "l", 1, "Hint level (1=subtle, 3=specific)")
	hintCmd.Flags().String("attempt", "", "User's current code attempt for a personalized hint")
}
