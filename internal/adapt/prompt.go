package adapt

import (
	"fmt"
	"strings"

	"github.com/dsangels/aiengine/internal/store"
)

func buildAdaptPrompt(content *store.ContentItem, target int) string {
	direction := "more challenging"
	if target < content.DifficultyBase {
		direction = "simpler"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Original content: %s\n", content.Title))
	b.WriteString(fmt.Sprintf("Description: %s\n", content.Description))
	b.WriteString(fmt.Sprintf("Current difficulty level: %d (out of 5)\n\n", content.DifficultyBase))
	b.WriteString(fmt.Sprintf("Please adapt this content to make it %s, at a difficulty level of %d out of 5.\n", direction, target))
	b.WriteString("Preserve the main learning objectives but adjust the complexity accordingly.\n")
	b.WriteString("Respond in JSON format like this:\n")
	b.WriteString(`{"title": "adapted title", "description": "adapted description"}`)
	return b.String()
}
