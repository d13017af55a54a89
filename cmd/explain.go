package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsangels/aiengine/internal/generate"
)

var explainCmd = &cobra.Command{
	Use:   "explain <concept>",
	Short: "Generate a themed explanation of a programming concept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, _ := cmd.Flags().GetString("theme")
		ageGroup, _ := cmd.Flags().GetString("age-group")
		base, _ := cmd.Flags().GetString("base")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		text := a.Generator.ThemedExplanation(context.Background(), generate.ExplanationRequest{
			Concept:         args[0],
			Theme:           theme,
			AgeGroup:        ageGroup,
			BaseExplanation: base,
		})
		fmt.Println(text)
		return nil
	},
}

func init() {
	explainCmd.Flags().String("theme", "general", "Explanation theme (e.g. space, princess, nature)")
	explainCmd.Flags().String("age-group", "", "Target age group (e.g. \"Kids 5-8\")")
	explainCmd.Flags().String("base", "", "Base explanation to enhance")
}
