package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsangels/aiengine/internal/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <user-id>",
	Short: "List personalized content recommendations for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		contentType, _ := cmd.Flags().GetString("type")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		recs := a.Recommender.Recommend(context.Background(), args[0], count, store.ContentType(contentType))
		if len(recs) == 0 {
			fmt.Println("No recommendations available.")
			return nil
		}

		fmt.Printf("%-38s  %-10s  %-4s  %-5s  %s\n", "Content", "Type", "Diff", "Score", "Title")
		for _, r := range recs {
			fmt.Printf("%-38s  %-10s  %-4d  %-5d  %s\n",
				r.ContentID, r.ContentType, r.Difficulty, r.RelevanceScore, r.Title)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().IntP("count", "n", 5, "Number of recommendations")
	recommendCmd.Flags().StringP("type", "t", "", "Filter by content type (lesson, challenge, tutorial, quiz)")
}
