package llm

import (
	"context"
	"encoding/json"

	"github.com/jonathan/smartmatch/internal/matching"
	"github.com/jonathan/smartmatch/internal/prompts"
)

// Recognizer implements entity recognition over an LLM client. It asks the
// model to label skill, organization, and product mentions in free text.
type Recognizer struct {
	client Client
	tier   ModelTier
}

// NewRecognizer creates a recognizer backed by the given client. The lite
// tier is the default since labeling is a cheap extraction task.
func NewRecognizer(client Client) *Recognizer {
	return &Recognizer{client: client, tier: TierLite}
}

// WithTier returns a copy of the recognizer using a different model tier.
func (r *Recognizer) WithTier(tier ModelTier) *Recognizer {
	return &Recognizer{client: r.client, tier: tier}
}

// Recognize asks the model to label entities in the text and parses the
// JSON array it returns.
func (r *Recognizer) Recognize(ctx context.Context, text string) ([]matching.Span, error) {
	template, err := prompts.Get("analysis.json", "recognize_entities")
	if err != nil {
		return nil, &ParseError{Message: "failed to load recognition prompt", Cause: err}
	}

	prompt := prompts.Format(template, map[string]string{"Text": text})

	raw, err := r.client.GenerateJSON(ctx, prompt, r.tier)
	if err != nil {
		return nil, err
	}

	var spans []matching.Span
	if err := json.Unmarshal([]byte(raw), &spans); err != nil {
		return nil, &ParseError{Message: "failed to parse recognition response", Cause: err}
	}

	// Drop entries the model returned without text.
	out := spans[:0]
	for _, s := range spans {
		if s.Text != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
