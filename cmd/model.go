package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsangels/aiengine/internal/llm"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Show the configured generation backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}

		provider, err := llm.NewProvider(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}

		info := llm.Describe(cfg, provider)
		fmt.Printf("Provider: %s\n", info.Provider)
		fmt.Printf("Model:    %s\n", info.Model)
		if info.Mock {
			fmt.Println("Running with the mock backend; responses are canned.")
		}
		return nil
	},
}
