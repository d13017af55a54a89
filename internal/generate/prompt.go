package generate

import (
	"fmt"
	"strings"

	"github.com/dsangels/aiengine/internal/store"
)

func buildExplanationPrompt(req ExplanationRequest) string {
	var b strings.Builder

	ageContext := ""
	if req.AgeGroup != "" {
		ageContext = fmt.Sprintf(" for %s", req.AgeGroup)
	}

	fmt.Fprintf(&b, "Please explain the programming concept of '%s' using a %s theme%s.\n", req.Concept, req.Theme, ageContext)
	fmt.Fprintf(&b, "Make it engaging, visual, and easy to understand.\n")
	fmt.Fprintf(&b, "Use metaphors related to %s to make the concept relatable.\n", req.Theme)

	if req.BaseExplanation != "" {
		fmt.Fprintf(&b, "\nHere's a basic explanation to enhance: %s\n", req.BaseExplanation)
	}

	return b.String()
}

func buildPersonalizedHintPrompt(ch *store.ChallengeItem, attempt string, level int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem: %s\n\n", ch.ProblemStatement)
	fmt.Fprintf(&b, "Expected Output: %s\n\n", ch.ExpectedOutput)
	fmt.Fprintf(&b, "User's current code attempt:\n%s\n\n", attempt)
	fmt.Fprintf(&b, "Provide a hint at level %d (1=subtle, 3=more specific) to help the user solve this problem.\n", level)
	fmt.Fprintf(&b, "Don't give the direct answer, just guide them in the right direction.\n")

	return b.String()
}

func buildHintPrompt(ch *store.ChallengeItem, level int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem: %s\n\n", ch.ProblemStatement)
	fmt.Fprintf(&b, "Provide a hint at level %d (1=subtle, 3=more specific) to help solve this problem.\n", level)
	fmt.Fprintf(&b, "Don't give the direct answer, just guide the user in the right direction.\n")

	return b.String()
}
