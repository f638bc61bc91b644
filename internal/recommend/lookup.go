// Package recommend maps missing skills to human-readable development
// suggestions. The primary path is a pure lookup in a static local dataset;
// an LLM collaborator can enrich results but is never required.
package recommend

import (
	"errors"
	"fmt"

	"github.com/jonathan/smartmatch/internal/taxonomy"
	"github.com/jonathan/smartmatch/internal/types"
)

// ErrNotFound reports that no recommendation exists for a skill. The library
// signals absence rather than fabricating advice.
var ErrNotFound = errors.New("no recommendation for skill")

// Library looks up development recommendations by canonical skill name.
// It is immutable after construction and safe for concurrent use.
type Library struct {
	tax     *taxonomy.Taxonomy
	entries map[string]types.Recommendation
}

// NewLibrary builds a Library over the built-in dataset, canonicalizing
// lookups through the given taxonomy.
func NewLibrary(tax *taxonomy.Taxonomy) *Library {
	return NewLibraryWithEntries(tax, defaultEntries)
}

// NewLibraryWithEntries builds a Library over a custom dataset keyed by
// canonical skill name.
func NewLibraryWithEntries(tax *taxonomy.Taxonomy, entries map[string]types.Recommendation) *Library {
	return &Library{tax: tax, entries: entries}
}

// Lookup resolves a skill mention (any case, synonyms allowed) and returns
// its recommendation. Returns ErrNotFound when the dataset has no entry; the
// result is a pure function of the skill name and the static dataset.
func (l *Library) Lookup(skill string) (types.Recommendation, error) {
	name := skill
	if canonical, ok := l.tax.Canonicalize(skill); ok {
		name = canonical
	}

	entry, ok := l.entries[name]
	if !ok {
		return types.Recommendation{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	entry.Skill = name
	return entry, nil
}

// LookupAll enumerates recommendations for every skill in the missing set,
// in sorted order. The second return lists skills with no dataset entry.
func (l *Library) LookupAll(missing types.SkillSet) ([]types.Recommendation, []string) {
	var found []types.Recommendation
	var unknown []string
	for _, skill := range missing.Sorted() {
		entry, err := l.Lookup(skill)
		if err != nil {
			unknown = append(unknown, skill)
			continue
		}
		found = append(found, entry)
	}
	return found, unknown
}
