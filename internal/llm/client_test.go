package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestClient_TextSuccess(t *testing.T) {
	mock := NewMockProvider(MockReply{Text: "generated text"})
	client := NewClient(mock, nil, time.Second)

	res := client.Text(context.Background(), GenerateRequest{Prompt: "p"})
	if res.Degraded {
		t.Error("expected non-degraded result")
	}
	if res.Err != nil {
		t.Errorf("expected nil error, got %v", res.Err)
	}
	if res.Text != "generated text" {
		t.Errorf("expected generated text, got %q", res.Text)
	}
}

func TestClient_TextDegradesOnFailure(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: &ErrGeneration{Provider: "mock", Err: errors.New("transport")}})
	client := NewClient(mock, nil, time.Second)

	res := client.Text(context.Background(), GenerateRequest{Prompt: "p"})
	if !res.Degraded {
		t.Error("expected degraded result")
	}
	if res.Text != FallbackText {
		t.Errorf("expected fallback text, got %q", res.Text)
	}
	var gen *ErrGeneration
	if !errors.As(res.Err, &gen) {
		t.Errorf("expected contained ErrGeneration, got %T", res.Err)
	}
}

func TestClient_ClassifyDegradesToZeros(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: &ErrGeneration{Provider: "mock", Err: errors.New("down")}})

	// Route Classify through the prompting path so the canned error fires.
	client := NewClient(promptClassifier{mock}, nil, time.Second)

	res := client.Classify(context.Background(), "content", []string{"a", "b"})
	if !res.Degraded {
		t.Error("expected degraded result")
	}
	if res.Scores["a"] != 0 || res.Scores["b"] != 0 {
		t.Errorf("expected zero distribution, got %v", res.Scores)
	}
}

func TestClient_ClassifySuccess(t *testing.T) {
	mock := NewMockProvider(MockReply{Text: `{"a": 0.7, "b": 0.3}`})
	client := NewClient(promptClassifier{mock}, nil, time.Second)

	res := client.Classify(context.Background(), "content", []string{"a", "b"})
	if res.Degraded {
		t.Error("expected non-degraded result")
	}
	if res.Scores["a"] != 0.7 {
		t.Errorf("expected 0.7, got %v", res.Scores["a"])
	}
}

// promptClassifier forces Classify through classifyViaPrompt so tests can
// control its behavior via canned GenerateText replies.
type promptClassifier struct {
	*MockProvider
}

func (p promptClassifier) Classify(ctx context.Context, content string, categories []string) (map[string]float64, error) {
	return classifyViaPrompt(ctx, p.MockProvider, content, categories)
}
