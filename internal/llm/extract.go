package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/smartmatch/internal/prompts"
	"github.com/jonathan/smartmatch/internal/taxonomy"
	"github.com/jonathan/smartmatch/internal/types"
)

// SkillExtractor pulls skill names out of free text with an LLM. It is a
// complement to the deterministic phrase matcher: the model can surface
// skills phrased in ways the taxonomy synonyms do not anticipate.
type SkillExtractor struct {
	client Client
	tax    *taxonomy.Taxonomy
	tier   ModelTier
}

// NewSkillExtractor creates an extractor backed by the given client and
// taxonomy. Skills the model reports are normalized against the taxonomy
// when possible; unknown skills are kept lowercased as-is.
func NewSkillExtractor(client Client, tax *taxonomy.Taxonomy) *SkillExtractor {
	return &SkillExtractor{client: client, tax: tax, tier: TierStandard}
}

// Extract asks the model to list the skills present in the document.
func (e *SkillExtractor) Extract(ctx context.Context, text string) (types.SkillSet, error) {
	template, err := prompts.Get("analysis.json", "extract_skills")
	if err != nil {
		return nil, &ParseError{Message: "failed to load extraction prompt", Cause: err}
	}

	prompt := prompts.Format(template, map[string]string{"Text": text})

	raw, err := e.client.GenerateJSON(ctx, prompt, e.tier)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, &ParseError{Message: "failed to parse extraction response", Cause: err}
	}

	skills := types.NewSkillSet()
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if canonical, ok := e.tax.Canonicalize(name); ok {
			skills.Add(canonical)
			continue
		}
		skills.Add(strings.ToLower(name))
	}
	return skills, nil
}
