package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dsangels/aiengine/internal/app"
)

var rootCmd = &cobra.Command{
	Use:          "aiengine",
	Short:        "Adaptive learning engine for DSAngels",
	Long:         "DSAngels AI engine: personalized recommendations, difficulty adaptation, themed explanations, hints, and chat for young coders.",
	SilenceUsage: true,
}

func Execute() error {
	// Missing .env is fine; configuration falls back to the process env.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Database path or DSN (overrides DSANGELS_DB env var)")
	rootCmd.PersistentFlags().String("curated", "", "Curated content directory (overrides DSANGELS_CURATED_DIR env var)")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(adaptCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(difficultyCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(versionCmd)
}

// openApp builds the engine from flags and environment. Callers must
// Close the returned App.
func openApp(cmd *cobra.Command) (*app.App, error) {
	log, err := app.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, _ := cmd.Flags().GetString("db")
	curatedDir, _ := cmd.Flags().GetString("curated")

	return app.New(context.Background(), app.Options{
		DBPath:     dbPath,
		CuratedDir: curatedDir,
	}, log)
}
