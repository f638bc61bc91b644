// Package taxonomy provides the static reference table of canonical skills,
// grouped by category with synonym lists. A Taxonomy is built once at startup,
// validated, and immutable afterwards; it is injected into the components that
// need it rather than held as ambient global state, so concurrent analyses
// (and parallel tests) can each carry their own instance.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one canonical skill with its category and synonym list.
type Entry struct {
	CanonicalName string   `json:"name"`
	Category      string   `json:"category"`
	Synonyms      []string `json:"synonyms,omitempty"`
}

// Taxonomy is an immutable skill reference table with case-insensitive
// phrase lookup.
type Taxonomy struct {
	entries     []Entry
	byPhrase    map[string]string // lowered canonical name or synonym -> canonical name
	byCanonical map[string]Entry
}

// ValidationError reports a structural problem in taxonomy data.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("taxonomy validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("taxonomy validation error: %s", e.Message)
}

// New builds a Taxonomy from entries, enforcing the core invariants:
// at least one entry, canonical names globally unique across categories,
// and every synonym mapping to exactly one canonical name.
func New(entries []Entry) (*Taxonomy, error) {
	if len(entries) == 0 {
		return nil, &ValidationError{Message: "taxonomy is empty"}
	}

	t := &Taxonomy{
		entries:     make([]Entry, 0, len(entries)),
		byPhrase:    make(map[string]string),
		byCanonical: make(map[string]Entry),
	}

	for i, entry := range entries {
		name := strings.TrimSpace(entry.CanonicalName)
		if name == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("entries[%d].name", i),
				Message: "canonical name is empty",
			}
		}
		if strings.TrimSpace(entry.Category) == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("entries[%d].category", i),
				Message: fmt.Sprintf("category is empty for %q", name),
			}
		}

		lowered := strings.ToLower(name)
		if existing, ok := t.byPhrase[lowered]; ok {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("entries[%d].name", i),
				Message: fmt.Sprintf("%q already maps to %q", name, existing),
			}
		}
		t.byPhrase[lowered] = name

		kept := Entry{CanonicalName: name, Category: entry.Category}
		for _, syn := range entry.Synonyms {
			synLowered := strings.ToLower(strings.TrimSpace(syn))
			if synLowered == "" || synLowered == lowered {
				continue
			}
			if existing, ok := t.byPhrase[synLowered]; ok && existing != name {
				return nil, &ValidationError{
					Field:   fmt.Sprintf("entries[%d].synonyms", i),
					Message: fmt.Sprintf("synonym %q already maps to %q", syn, existing),
				}
			}
			t.byPhrase[synLowered] = name
			kept.Synonyms = append(kept.Synonyms, synLowered)
		}

		t.byCanonical[lowered] = kept
		t.entries = append(t.entries, kept)
	}

	return t, nil
}

// Canonicalize resolves a skill mention (canonical name or synonym, any case)
// to its canonical name. The second return is false for unknown phrases.
func (t *Taxonomy) Canonicalize(phrase string) (string, bool) {
	canonical, ok := t.byPhrase[strings.ToLower(strings.TrimSpace(phrase))]
	return canonical, ok
}

// Category returns the category of a canonical skill or synonym.
func (t *Taxonomy) Category(phrase string) (string, bool) {
	canonical, ok := t.Canonicalize(phrase)
	if !ok {
		return "", false
	}
	entry, ok := t.byCanonical[strings.ToLower(canonical)]
	if !ok {
		return "", false
	}
	return entry.Category, true
}

// Phrases returns every recognizable phrase (canonical names and synonyms),
// lowercased and sorted. This is the pattern source for the phrase matcher.
func (t *Taxonomy) Phrases() []string {
	out := make([]string, 0, len(t.byPhrase))
	for phrase := range t.byPhrase {
		out = append(out, phrase)
	}
	sort.Strings(out)
	return out
}

// Entries returns a copy of the validated entries.
func (t *Taxonomy) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of canonical skills.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}
