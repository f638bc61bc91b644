// Package parsing turns raw extracted document text into categorized,
// ordered content lines using a deterministic heuristic cascade. It performs
// no I/O and holds no mutable state, so a single parser is safe for
// concurrent use.
package parsing

import (
	"strings"

	"github.com/jonathan/smartmatch/internal/types"
)

// maxLinesPerCategory caps each category to bound downstream cost; the
// earliest-seen lines are retained.
const maxLinesPerCategory = 15

// SectionParser categorizes document lines through a fixed-priority rule
// cascade. Construct once with NewSectionParser and reuse.
type SectionParser struct {
	rules []classifierRule
}

// NewSectionParser builds a parser with the standard rule cascade.
func NewSectionParser() *SectionParser {
	return &SectionParser{rules: classifierRules()}
}

// Parse turns raw text into an ordered sequence of categorized lines.
// Empty or whitespace-only input yields an empty document, not an error.
// Section headers and name lines are recognized and discarded; every retained
// line lands in exactly one category.
func (p *SectionParser) Parse(raw string) *types.ParsedDocument {
	doc := &types.ParsedDocument{}

	lines := PrepareLines(raw)
	for i, line := range lines {
		c := lineContext{text: line, lower: strings.ToLower(line), index: i}

		category, matched := p.classify(c)
		if !matched || category == categoryDiscard {
			continue
		}
		doc.Ordered = append(doc.Ordered, types.Line{Category: category, Text: line})
	}

	return p.clean(doc)
}

// classify runs the cascade; the first matching rule wins.
func (p *SectionParser) classify(c lineContext) (types.SectionCategory, bool) {
	for _, rule := range p.rules {
		if rule.matches(c) {
			return rule.category, true
		}
	}
	return categoryDiscard, false
}

// clean re-scans the parsed document, dropping any line that still equals a
// header-vocabulary phrase (headers can appear mid-block in multi-column
// layouts) and capping every category at maxLinesPerCategory.
func (p *SectionParser) clean(doc *types.ParsedDocument) *types.ParsedDocument {
	counts := make(map[types.SectionCategory]int)
	cleaned := &types.ParsedDocument{}

	for _, line := range doc.Ordered {
		if isHeaderVocabulary(strings.ToLower(line.Text)) {
			continue
		}
		if counts[line.Category] >= maxLinesPerCategory {
			continue
		}
		counts[line.Category]++
		cleaned.Ordered = append(cleaned.Ordered, line)
	}

	return cleaned
}
