package recommend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/smartmatch/internal/llm"
	"github.com/jonathan/smartmatch/internal/prompts"
	"github.com/jonathan/smartmatch/internal/types"
)

// Enricher generates recommendations for skills the curated library does not
// cover, using an LLM to write the description and pick a learning resource.
type Enricher struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewEnricher creates an enricher backed by the given client.
func NewEnricher(client llm.Client) *Enricher {
	return &Enricher{client: client, tier: llm.TierStandard}
}

// enrichResponse is the JSON shape the enrichment prompt asks for.
type enrichResponse struct {
	Description      string `json:"description"`
	LearningResource string `json:"learning_resource"`
	Priority         string `json:"priority"`
}

// Enrich generates a recommendation for a skill missing from the library.
// jobContext is a short excerpt of the job description so the model can
// judge how central the skill is. Failures are reported as capability
// errors so callers can degrade to library-only output.
func (e *Enricher) Enrich(ctx context.Context, skill, jobContext string) (types.Recommendation, error) {
	if e.client == nil {
		return types.Recommendation{}, fmt.Errorf("recommendation enrichment: %w: no client configured", types.ErrCapabilityUnavailable)
	}

	template, err := prompts.Get("analysis.json", "enrich_recommendation")
	if err != nil {
		return types.Recommendation{}, fmt.Errorf("recommendation enrichment: %w", err)
	}

	prompt := prompts.Format(template, map[string]string{
		"Skill":      skill,
		"JobContext": jobContext,
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, e.tier)
	if err != nil {
		return types.Recommendation{}, fmt.Errorf("recommendation enrichment: %w: %w", types.ErrCapabilityUnavailable, err)
	}

	var resp enrichResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return types.Recommendation{}, fmt.Errorf("recommendation enrichment: %w: %w", types.ErrCapabilityUnavailable, err)
	}
	if resp.Description == "" {
		return types.Recommendation{}, fmt.Errorf("recommendation enrichment: %w: empty description in response", types.ErrCapabilityUnavailable)
	}

	priority := resp.Priority
	if priority == "" {
		priority = "Medium"
	}

	return types.Recommendation{
		Skill:            skill,
		Description:      resp.Description,
		LearningResource: resp.LearningResource,
		Priority:         priority,
		Enriched:         true,
	}, nil
}
