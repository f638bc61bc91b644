//nolint:revive // types is a standard Go package name pattern
package types

// MatchReport is the result of comparing a candidate skill set against a job
// requirement skill set. Matched and Missing partition the job set; Extra is
// what the candidate has beyond the job's requirements.
type MatchReport struct {
	Matched SkillSet `json:"matched"`
	Missing SkillSet `json:"missing"`
	Extra   SkillSet `json:"extra"`

	// SimilarityScore is the embedding cosine similarity of the two documents,
	// clipped into [0,1]. Zero when computed in degraded (set-only) mode.
	SimilarityScore float64 `json:"similarity_score"`
	// CoveragePct is 100 * |matched| / |job skills|, or 0 for an empty job set.
	CoveragePct float64 `json:"coverage_pct"`
	// CompositeScore is the weighted blend of similarity and coverage in [0,100].
	CompositeScore float64 `json:"composite_score"`
	// Band is the caller-facing label for the composite score ("strong",
	// "moderate", "weak").
	Band string `json:"band,omitempty"`
}

// Recommendation is a human-readable suggestion for closing a skill gap.
type Recommendation struct {
	Skill            string `json:"skill"`
	Description      string `json:"description"`
	LearningResource string `json:"learning_resource,omitempty"`
	Priority         string `json:"priority,omitempty"`
	// Enriched reports whether the content was LLM-generated rather than
	// taken from the static dataset.
	Enriched bool `json:"enriched,omitempty"`
}
