package matching

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/smartmatch/internal/types"
)

// Span is a text span tagged with a coarse label by an entity recognizer.
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityRecognizer tags spans of text with coarse labels such as
// organization/product/skill. Any implementation satisfying this shape is
// interchangeable; production wiring picks a concrete model at startup and
// tests substitute deterministic stubs.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]Span, error)
}

// RecognizerFunc adapts a plain function to the EntityRecognizer interface.
type RecognizerFunc func(ctx context.Context, text string) ([]Span, error)

// Recognize calls f.
func (f RecognizerFunc) Recognize(ctx context.Context, text string) ([]Span, error) {
	return f(ctx, text)
}

// recognizerLabels are the coarse labels worth cross-checking against the
// taxonomy. Entities with other labels (people, places, dates) are ignored.
var recognizerLabels = map[string]bool{
	"SKILL":   true,
	"ORG":     true,
	"PRODUCT": true,
}

// ExtractWithRecognizer unions the lexical taxonomy pass with
// recognizer-tagged spans whose text exactly equals a taxonomy phrase. The
// intersection step suppresses false positives such as company names being
// mistaken for skills. A recognizer failure is reported as
// types.ErrCapabilityUnavailable; callers can degrade to Extract, which
// needs no external capability.
func (m *PhraseMatcher) ExtractWithRecognizer(ctx context.Context, text string, rec EntityRecognizer) (types.SkillSet, error) {
	if rec == nil {
		return nil, fmt.Errorf("entity recognizer not configured: %w", types.ErrCapabilityUnavailable)
	}

	found := m.Extract(text)
	if strings.TrimSpace(text) == "" {
		return found, nil
	}

	spans, err := rec.Recognize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("entity recognition failed: %w: %w", types.ErrCapabilityUnavailable, err)
	}

	for _, span := range spans {
		if !recognizerLabels[strings.ToUpper(span.Label)] {
			continue
		}
		if canonical, ok := m.tax.Canonicalize(span.Text); ok {
			found.Add(canonical)
		}
	}
	return found, nil
}
