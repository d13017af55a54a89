package generate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dsangels/aiengine/internal/cache"
	"github.com/dsangels/aiengine/internal/curated"
	"github.com/dsangels/aiengine/internal/llm"
	"github.com/dsangels/aiengine/internal/store"
)

type fakeCatalog struct {
	challenges map[string]*store.ChallengeItem
}

func (f *fakeCatalog) ContentByID(_ context.Context, id string) (*store.ContentItem, error) {
	return nil, &store.ErrNotFound{Kind: "content", ID: id}
}

func (f *fakeCatalog) ChallengeByID(_ context.Context, id string) (*store.ChallengeItem, error) {
	if c, ok := f.challenges[id]; ok {
		return c, nil
	}
	return nil, &store.ErrNotFound{Kind: "challenge", ID: id}
}

func (f *fakeCatalog) ContentsByAgeGroup(_ context.Context, _ string, _ store.ContentType) ([]store.ContentItem, error) {
	return nil, nil
}

func newTestGenerator(t *testing.T, mock *llm.MockProvider) (*Generator, *curated.Store) {
	t.Helper()
	cur := curated.NewStore(t.TempDir(), nil)
	client := llm.NewClient(mock, nil, time.Second)
	catalog := &fakeCatalog{challenges: map[string]*store.ChallengeItem{
		"ch-1": {
			ID:               "ch-1",
			ProblemStatement: "Print the numbers 1 to 10.",
			ExpectedOutput:   "1 2 3 4 5 6 7 8 9 10",
		},
	}}
	return NewGenerator(catalog, cache.NewMemory(), cur, client, nil), cur
}

func TestThemedExplanation_CuratedWinsOverBackend(t *testing.T) {
	// A failing backend proves curated content short-circuits generation.
	mock := llm.NewMockProvider(llm.MockReply{Err: errors.New("down")})
	gen, cur := newTestGenerator(t, mock)

	if !cur.AddExplanation("loops", "space", "Kids 5-8", "Loops are like orbits around a planet.") {
		t.Fatal("AddExplanation failed")
	}

	got := gen.ThemedExplanation(context.Background(), ExplanationRequest{
		Concept:  "loops",
		Theme:    "space",
		AgeGroup: "Kids 5-8",
	})

	if got != "Loops are like orbits around a planet." {
		t.Errorf("expected curated text, got %q", got)
	}
	if mock.CallCount() != 0 {
		t.Errorf("backend must not be invoked, got %d calls", mock.CallCount())
	}
}

func TestThemedExplanation_GeneratedAndCached(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Text: "Variables are like labeled jars."})
	gen, _ := newTestGenerator(t, mock)
	req := ExplanationRequest{Concept: "variables", Theme: "nature"}

	first := gen.ThemedExplanation(context.Background(), req)
	second := gen.ThemedExplanation(context.Background(), req)

	if first != "Variables are like labeled jars." || first != second {
		t.Errorf("expected identical generated text, got %q / %q", first, second)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 backend call, got %d", mock.CallCount())
	}
}

func TestThemedExplanation_DefaultTheme(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Text: "ok"})
	gen, _ := newTestGenerator(t, mock)

	gen.ThemedExplanation(context.Background(), ExplanationRequest{Concept: "recursion"})

	calls := mock.Calls
	if len(calls) != 1 {
		t.Fatalf("expected 1 backend call, got %d", len(calls))
	}
	if want := "using a general theme"; !strings.Contains(calls[0].Prompt, want) {
		t.Errorf("prompt missing %q:\n%s", want, calls[0].Prompt)
	}
}

func TestThemedExplanation_DegradesToBaseExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Err: errors.New("down")})
	gen, _ := newTestGenerator(t, mock)

	got := gen.ThemedExplanation(context.Background(), ExplanationRequest{
		Concept:         "functions",
		Theme:           "princess",
		BaseExplanation: "A function is a reusable recipe.",
	})

	if got != "A function is a reusable recipe." {
		t.Errorf("expected base explanation fallback, got %q", got)
	}
}

func TestThemedExplanation_DegradesToApology(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Err: errors.New("down")})
	gen, _ := newTestGenerator(t, mock)

	got := gen.ThemedExplanation(context.Background(), ExplanationRequest{
		Concept: "functions",
		Theme:   "princess",
	})

	want := "Sorry, I couldn't generate a princess-themed explanation for functions right now."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHint_CuratedWins(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Err: errors.New("down")})
	gen, cur := newTestGenerator(t, mock)

	if !cur.AddHint("ch-1", 1, "Start with a loop.") {
		t.Fatal("AddHint failed")
	}

	got := gen.Hint(context.Background(), HintRequest{ChallengeID: "ch-1", Level: 1})

	if got != "Start with a loop." {
		t.Errorf("expected curated hint, got %q", got)
	}
	if mock.CallCount() != 0 {
		t.Errorf("backend must not be invoked, got %d calls", mock.CallCount())
	}
}

func TestHint_GenericCached(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Text: "Think about counting."})
	gen, _ := newTestGenerator(t, mock)
	req := HintRequest{ChallengeID: "ch-1", Level: 2}

	first := gen.Hint(context.Background(), req)
	second := gen.Hint(context.Background(), req)

	if first != "Think about counting." || first != second {
		t.Errorf("expected identical hints, got %q / %q", first, second)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 backend call, got %d", mock.CallCount())
	}
}

func TestHint_PersonalizedBypassesCache(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Text: "Check your loop bound."},
		llm.MockReply{Text: "Check your loop bound again."},
	)
	gen, _ := newTestGenerator(t, mock)
	req := HintRequest{ChallengeID: "ch-1", UserAttempt: "for i in range(9): print(i)", Level: 1}

	first := gen.Hint(context.Background(), req)
	second := gen.Hint(context.Background(), req)

	if first != "Check your loop bound." || second != "Check your loop bound again." {
		t.Errorf("expected fresh generation per call, got %q / %q", first, second)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 backend calls, got %d", mock.CallCount())
	}
	if want := "for i in range(9)"; !strings.Contains(mock.Calls[0].Prompt, want) {
		t.Errorf("personalized prompt missing attempt:\n%s", mock.Calls[0].Prompt)
	}
}

func TestHint_PersonalizedFailureFallsToGeneric(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Err: errors.New("down")},
		llm.MockReply{Text: "Generic: try a loop."},
	)
	gen, _ := newTestGenerator(t, mock)

	got := gen.Hint(context.Background(), HintRequest{ChallengeID: "ch-1", UserAttempt: "x", Level: 1})

	if got != "Generic: try a loop." {
		t.Errorf("expected generic fallback, got %q", got)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 backend calls, got %d", mock.CallCount())
	}
}

func TestHint_AllPathsFailed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Err: errors.New("down")})
	gen, _ := newTestGenerator(t, mock)

	got := gen.Hint(context.Background(), HintRequest{ChallengeID: "ch-1", Level: 1})

	if got != FallbackHint {
		t.Errorf("expected fallback hint, got %q", got)
	}
}

func TestHint_UnknownChallenge(t *testing.T) {
	mock := llm.NewMockProvider()
	gen, _ := newTestGenerator(t, mock)

	got := gen.Hint(context.Background(), HintRequest{ChallengeID: "missing", Level: 1})

	if got != FallbackHint {
		t.Errorf("expected fallback hint, got %q", got)
	}
	if mock.CallCount() != 0 {
		t.Errorf("backend must not be invoked, got %d calls", mock.CallCount())
	}
}

