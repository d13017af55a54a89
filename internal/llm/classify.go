package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// jsonObjectRe finds the first JSON object embedded in free-form text.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// classifyViaPrompt performs zero-shot classification through a provider's
// GenerateText. Transport failures propagate as errors; a reply without a
// usable JSON object degrades to an equal-probability distribution.
func classifyViaPrompt(ctx context.Context, p Provider, content string, categories []string) (map[string]float64, error) {
	text, err := p.GenerateText(ctx, GenerateRequest{
		Prompt:      classifyPrompt(content, categories),
		MaxTokens:   100,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, err
	}

	scores, err := parseClassification(text)
	if err != nil {
		return EqualDistribution(categories), nil
	}
	return scores, nil
}

func classifyPrompt(content string, categories []string) string {
	var b strings.Builder
	b.WriteString("Classify the following content into one of these categories: ")
	b.WriteString(strings.Join(categories, ", "))
	b.WriteString("\n\nContent: ")
	b.WriteString(content)
	b.WriteString("\n\nRespond with a JSON object containing the category as the key and confidence score (0-1) as the value.\n")
	b.WriteString(`Example: {"category_name": 0.8}`)
	return b.String()
}

// parseClassification extracts a category→score mapping from generated text.
func parseClassification(text string) (map[string]float64, error) {
	match := jsonObjectRe.FindString(text)
	if match == "" {
		return nil, &ErrParse{Content: text, Err: fmt.Errorf("no JSON object in classification reply")}
	}

	var scores map[string]float64
	if err := json.Unmarshal([]byte(match), &scores); err != nil {
		return nil, &ErrParse{Content: text, Err: fmt.Errorf("decode classification: %w", err)}
	}
	if len(scores) == 0 {
		return nil, &ErrParse{Content: text, Err: fmt.Errorf("empty classification object")}
	}
	return scores, nil
}

// EqualDistribution assigns each category the same confidence, summing to 1.
func EqualDistribution(categories []string) map[string]float64 {
	out := make(map[string]float64, len(categories))
	for _, c := range categories {
		out[c] = 1.0 / float64(len(categories))
	}
	return out
}

// ZeroDistribution assigns each category zero confidence.
func ZeroDistribution(categories []string) map[string]float64 {
	out := make(map[string]float64, len(categories))
	for _, c := range categories {
		out[c] = 0.0
	}
	return out
}
