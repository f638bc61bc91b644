// Package matching extracts canonical skill mentions from free text using a
// single compiled multi-pattern matcher over the taxonomy, optionally crossed
// with an external entity recognizer to pick up mentions the lexical pass
// would treat as ordinary words.
package matching

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/smartmatch/internal/taxonomy"
	"github.com/jonathan/smartmatch/internal/types"
)

// PhraseMatcher recognizes taxonomy phrases in arbitrary text. The matcher
// compiles every canonical name and synonym into one alternation regexp at
// construction, so extraction is a single linear pass over the input
// regardless of taxonomy size.
type PhraseMatcher struct {
	tax *taxonomy.Taxonomy
	re  *regexp.Regexp
}

// NewPhraseMatcher builds the matcher for a taxonomy. Phrases are ordered
// longest-first inside the alternation so that at a shared start position the
// longer phrase wins ("javascript" before "java").
func NewPhraseMatcher(tax *taxonomy.Taxonomy) (*PhraseMatcher, error) {
	phrases := tax.Phrases()
	if len(phrases) == 0 {
		return nil, fmt.Errorf("taxonomy has no phrases to match")
	}

	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})

	quoted := make([]string, len(phrases))
	for i, phrase := range phrases {
		quoted[i] = regexp.QuoteMeta(phrase)
	}

	// Word boundaries are verified manually around each match: \b misbehaves
	// for phrases ending in non-word runes ("c++", "c#", "node.js").
	re, err := regexp.Compile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile phrase matcher: %w", err)
	}

	return &PhraseMatcher{tax: tax, re: re}, nil
}

// Extract returns the canonical skills mentioned in text. Matching is
// case-insensitive, tolerant of surrounding punctuation, and respects token
// boundaries ("java" never fires inside "javascript"). Empty text yields an
// empty set.
func (m *PhraseMatcher) Extract(text string) types.SkillSet {
	found := make(types.SkillSet)
	if strings.TrimSpace(text) == "" {
		return found
	}

	for _, loc := range m.re.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if !boundaryBefore(text, start) || !boundaryAfter(text, end) {
			continue
		}
		if canonical, ok := m.tax.Canonicalize(text[start:end]); ok {
			found.Add(canonical)
		}
	}
	return found
}

// boundaryBefore reports whether the rune preceding index i (if any) breaks a
// token, so a match at i starts on a token boundary.
func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// boundaryAfter reports whether the rune at index i (if any) breaks a token.
func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
