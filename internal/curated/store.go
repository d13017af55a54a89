// Package curated holds pre-authored explanations and hints. Curated
// entries always take precedence over generation; a missing store means
// "no curated content", never an error.
package curated

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	explanationsFile = "explanations.json"
	hintsFile        = "hints.json"
)

// Explanation is a pre-authored themed explanation.
type Explanation struct {
	Concept     string `json:"concept"`
	Theme       string `json:"theme"`
	AgeGroup    string `json:"age_group"`
	Explanation string `json:"explanation"`
}

type explanationsDoc struct {
	Explanations []Explanation `json:"explanations"`
}

// hintsDoc maps challenge ID → hint level → hint text.
type hintsDoc map[string]map[string]string

// Store reads and writes the two curated collections as whole JSON
// documents under dir. Each collection has its own lock so concurrent
// writers cannot lose updates within a collection.
type Store struct {
	dir string
	log *zap.Logger

	expMu  sync.Mutex
	hintMu sync.Mutex
}

// NewStore creates a Store rooted at dir. Files are created lazily on
// first write; absent files read as empty collections.
func NewStore(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, log: log}
}

// LookupExplanation returns the curated explanation for (concept, theme,
// ageGroup), matching concept case-insensitively. An empty ageGroup
// matches any entry for the concept and theme.
func (s *Store) LookupExplanation(concept, theme, ageGroup string) (string, bool) {
	s.expMu.Lock()
	defer s.expMu.Unlock()

	doc := s.loadExplanations()
	for _, e := range doc.Explanations {
		if !strings.EqualFold(e.Concept, concept) || e.Theme != theme {
			continue
		}
		if ageGroup == "" || e.AgeGroup == ageGroup {
			return e.Explanation, true
		}
	}
	return "", false
}

// LookupHint returns the curated hint for a challenge at the given level.
func (s *Store) LookupHint(challengeID string, level int) (string, bool) {
	s.hintMu.Lock()
	defer s.hintMu.Unlock()

	doc := s.loadHints()
	levels, ok := doc[challengeID]
	if !ok {
		return "", false
	}
	text, ok := levels[fmt.Sprintf("%d", level)]
	return text, ok && text != ""
}

// AddExplanation appends a curated explanation and persists synchronously.
// Returns false on persistence failure, which is logged rather than raised.
func (s *Store) AddExplanation(concept, theme, ageGroup, explanation string) bool {
	s.expMu.Lock()
	defer s.expMu.Unlock()

	doc := s.loadExplanations()
	doc.Explanations = append(doc.Explanations, Explanation{
		Concept:     concept,
		Theme:       theme,
		AgeGroup:    ageGroup,
		Explanation: explanation,
	})

	if err := s.writeDoc(explanationsFile, doc); err != nil {
		s.log.Error("persist curated explanation failed", zap.String("concept", concept), zap.Error(err))
		return false
	}
	return true
}

// AddHint sets the hint for (challengeID, level), overwriting any existing
// one, and persists synchronously. Returns false on persistence failure.
func (s *Store) AddHint(challengeID string, level int, text string) bool {
	s.hintMu.Lock()
	defer s.hintMu.Unlock()

	doc := s.loadHints()
	if doc[challengeID] == nil {
		doc[challengeID] = make(map[string]string)
	}
	doc[challengeID][fmt.Sprintf("%d", level)] = text

	if err := s.writeDoc(hintsFile, doc); err != nil {
		s.log.Error("persist curated hint failed", zap.String("challenge", challengeID), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) loadExplanations() explanationsDoc {
	var doc explanationsDoc
	if err := s.readDoc(explanationsFile, &doc); err != nil {
		s.log.Warn("load curated explanations failed, treating as empty", zap.Error(err))
	}
	if doc.Explanations == nil {
		doc.Explanations = []Explanation{}
	}
	return doc
}

func (s *Store) loadHints() hintsDoc {
	doc := make(hintsDoc)
	if err := s.readDoc(hintsFile, &doc); err != nil {
		s.log.Warn("load curated hints failed, treating as empty", zap.Error(err))
	}
	return doc
}

func (s *Store) readDoc(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// writeDoc replaces the whole document atomically via temp-file rename.
func (s *Store) writeDoc(name string, doc any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create curated dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
