package llm

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestParseClassification_ValidJSON(t *testing.T) {
	scores, err := parseClassification(`{"loops": 0.8, "variables": 0.2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores["loops"] != 0.8 {
		t.Errorf("expected 0.8 for loops, got %v", scores["loops"])
	}
	if scores["variables"] != 0.2 {
		t.Errorf("expected 0.2 for variables, got %v", scores["variables"])
	}
}

func TestParseClassification_JSONEmbeddedInProse(t *testing.T) {
	text := "Sure! Here is the classification:\n{\"recursion\": 0.9}\nHope that helps."
	scores, err := parseClassification(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores["recursion"] != 0.9 {
		t.Errorf("expected 0.9, got %v", scores["recursion"])
	}
}

func TestParseClassification_NoJSON(t *testing.T) {
	_, err := parseClassification("I cannot classify this content.")
	var parse *ErrParse
	if !errors.As(err, &parse) {
		t.Fatalf("expected ErrParse, got %T", err)
	}
}

func TestParseClassification_MalformedJSON(t *testing.T) {
	_, err := parseClassification(`{"loops": "very likely"}`)
	if err == nil {
		t.Fatal("expected error for non-numeric scores")
	}
}

func TestClassifyViaPrompt_UnparseableReplyGivesEqualDistribution(t *testing.T) {
	mock := NewMockProvider(MockReply{Text: "no json here"})

	scores, err := classifyViaPrompt(context.Background(), mock, "content", []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores["a"] != 0.5 || scores["b"] != 0.5 {
		t.Errorf("expected equal distribution, got %v", scores)
	}
}

func TestClassifyViaPrompt_TransportErrorPropagates(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: &ErrGeneration{Provider: "mock", Err: errors.New("down")}})

	_, err := classifyViaPrompt(context.Background(), mock, "content", []string{"a", "b"})
	if err == nil {
		t.Fatal("expected transport error to propagate to the facade")
	}
}

func TestDistributions(t *testing.T) {
	cats := []string{"x", "y", "z"}

	eq := EqualDistribution(cats)
	var sum float64
	for _, v := range eq {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("equal distribution should sum to 1, got %v", sum)
	}

	zero := ZeroDistribution(cats)
	for c, v := range zero {
		if v != 0 {
			t.Errorf("expected 0 for %q, got %v", c, v)
		}
	}
	if len(zero) != 3 {
		t.Errorf("expected 3 categories, got %d", len(zero))
	}
}
