// Package chat implements the Mowgli companion: an age-aware chat
// assistant that answers learner questions in a tone matched to their
// age band.
package chat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dsangels/aiengine/internal/llm"
)

// historyWindow bounds how many prior messages are fed back as context.
const historyWindow = 5

// FallbackReply is returned when the backend cannot answer.
const FallbackReply = "I'm having trouble thinking right now. Let's chat again in a moment!"

// Message is one turn of conversation.
type Message struct {
	FromUser bool
	Text     string
}

// Request carries the user's message plus the context used to shape the
// reply: display name, age band, and recent history.
type Request struct {
	Message      string
	DisplayName  string
	AgeGroupName string
	AgeRange     string
	History      []Message
}

// Reply is the assistant's answer. Degraded replies carry a static
// fallback message and the underlying error.
type Reply struct {
	Message  string
	Degraded bool
	Err      error
}

// Service generates chat replies through the generation backend.
type Service struct {
	client *llm.Client
	log    *zap.Logger
}

func NewService(client *llm.Client, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{client: client, log: log}
}

// Respond answers the user's message. Backend failures degrade to a
// static reply rather than an error.
func (s *Service) Respond(ctx context.Context, req Request) Reply {
	res := s.client.Text(ctx, llm.GenerateRequest{
		Prompt:      buildChatPrompt(req),
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if res.Degraded {
		s.log.Warn("chat reply degraded", zap.Error(res.Err))
		return Reply{Message: FallbackReply, Degraded: true, Err: res.Err}
	}
	return Reply{Message: res.Text}
}

// tone and explanation style per age band. Bands outside the two
// younger ranges get the mature register.
func toneFor(ageRange string) (tone, style string) {
	switch {
	case strings.Contains(ageRange, "8-10"):
		return "very friendly, simple vocabulary, enthusiastic, uses emojis, encouraging",
			"using very simple analogies like comparing code to recipes or building blocks"
	case strings.Contains(ageRange, "11-13"):
		return "friendly, slightly more mature vocabulary, encouraging, occasional emoji",
			"using relatable analogies like social media, games, or hobbies"
	default:
		return "friendly but more mature, conversational, encouraging",
			"using more precise technical terms but still with helpful analogies"
	}
}

func buildChatPrompt(req Request) string {
	username := req.DisplayName
	if username == "" {
		username = "friend"
	}
	ageGroup := req.AgeGroupName
	if ageGroup == "" {
		ageGroup = "General"
	}
	ageRange := req.AgeRange
	if ageRange == "" {
		ageRange = "8-18"
	}

	history := req.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	var historyText strings.Builder
	for _, m := range history {
		if m.FromUser {
			fmt.Fprintf(&historyText, "User: %s\n", m.Text)
		} else {
			fmt.Fprintf(&historyText, "Mowgli: %s\n", m.Text)
		}
	}

	tone, style := toneFor(ageRange)

	var b strings.Builder
	fmt.Fprintf(&b, "You are Mowgli, a friendly AI tech guide for the DSAngels platform, which helps young girls learn coding and tech skills.\n")
	fmt.Fprintf(&b, "You're chatting with %s, who is in the %s age group (%s years old).\n\n", username, ageGroup, ageRange)
	fmt.Fprintf(&b, "Your personality:\n")
	fmt.Fprintf(&b, "- You are friendly, supportive, and encouraging\n")
	fmt.Fprintf(&b, "- You speak in a %s tone\n", tone)
	fmt.Fprintf(&b, "- You explain technical concepts %s\n", style)
	fmt.Fprintf(&b, "- You promote coding, tech careers, and female role models in technology\n")
	fmt.Fprintf(&b, "- You never use inappropriate language or discuss inappropriate topics\n")
	fmt.Fprintf(&b, "- You keep your answers concise and helpful for young learners\n\n")
	fmt.Fprintf(&b, "Recent chat history:\n%s\n", historyText.String())
	fmt.Fprintf(&b, "User: %s\nMowgli:", req.Message)
	return b.String()
}
