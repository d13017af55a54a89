package curated

import (
	"sync"
	"testing"
)

func TestStore_MissingDirIsEmpty(t *testing.T) {
	s := NewStore(t.TempDir()+"/never-created", nil)

	if _, ok := s.LookupExplanation("loops", "space", ""); ok {
		t.Error("expected no curated explanation from an absent store")
	}
	if _, ok := s.LookupHint("ch-1", 1); ok {
		t.Error("expected no curated hint from an absent store")
	}
}

func TestStore_ExplanationRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	if !s.AddExplanation("loops", "space", "Kids 8-10", "Loops are like orbits.") {
		t.Fatal("add explanation failed")
	}

	got, ok := s.LookupExplanation("loops", "space", "Kids 8-10")
	if !ok || got != "Loops are like orbits." {
		t.Fatalf("expected curated explanation, got %q ok=%v", got, ok)
	}

	// Concept matching is case-insensitive.
	if _, ok := s.LookupExplanation("LOOPS", "space", "Kids 8-10"); !ok {
		t.Error("expected case-insensitive concept match")
	}

	// An empty age group matches any entry for concept and theme.
	if _, ok := s.LookupExplanation("loops", "space", ""); !ok {
		t.Error("expected wildcard age-group match")
	}

	// Wrong theme misses.
	if _, ok := s.LookupExplanation("loops", "nature", "Kids 8-10"); ok {
		t.Error("expected miss for different theme")
	}
}

func TestStore_ExplanationPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first := NewStore(dir, nil)
	if !first.AddExplanation("recursion", "nature", "Teens 13-16", "Like a tree of branches.") {
		t.Fatal("add failed")
	}

	second := NewStore(dir, nil)
	got, ok := second.LookupExplanation("recursion", "nature", "Teens 13-16")
	if !ok || got != "Like a tree of branches." {
		t.Fatalf("expected persisted explanation, got %q ok=%v", got, ok)
	}
}

func TestStore_HintLevelsAndOverwrite(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	if !s.AddHint("ch-1", 1, "subtle nudge") {
		t.Fatal("add hint failed")
	}
	if !s.AddHint("ch-1", 3, "spell it out") {
		t.Fatal("add hint failed")
	}

	got, ok := s.LookupHint("ch-1", 1)
	if !ok || got != "subtle nudge" {
		t.Fatalf("expected level-1 hint, got %q", got)
	}
	if _, ok := s.LookupHint("ch-1", 2); ok {
		t.Error("expected miss for unset level")
	}

	// Re-adding a level overwrites it.
	s.AddHint("ch-1", 1, "updated nudge")
	got, _ = s.LookupHint("ch-1", 1)
	if got != "updated nudge" {
		t.Errorf("expected overwrite, got %q", got)
	}
}

func TestStore_ConcurrentWritersDoNotLoseUpdates(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.AddHint("ch-1", n+1, "hint")
		}(i)
	}
	wg.Wait()

	for level := 1; level <= 8; level++ {
		if _, ok := s.LookupHint("ch-1", level); !ok {
			t.Errorf("hint for level %d was lost", level)
		}
	}
}
