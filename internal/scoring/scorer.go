// Package scoring combines embedding similarity with skill-set overlap to
// produce a composite recommendation score and a gap breakdown.
package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/smartmatch/internal/types"
)

// Weights blend the similarity and coverage terms of the composite score.
// Coverage dominates by default because it is the more literal, auditable
// signal; similarity provides a smoothing contextual adjustment.
type Weights struct {
	Similarity float64 `json:"similarity"`
	Coverage   float64 `json:"coverage"`
}

// DefaultWeights returns the standard blend.
func DefaultWeights() Weights {
	return Weights{Similarity: 0.3, Coverage: 0.7}
}

// Validate checks each weight is within [0,1] and at least one is positive.
func (w Weights) Validate() error {
	if w.Similarity < 0 || w.Similarity > 1 {
		return fmt.Errorf("similarity weight %.2f outside [0,1]", w.Similarity)
	}
	if w.Coverage < 0 || w.Coverage > 1 {
		return fmt.Errorf("coverage weight %.2f outside [0,1]", w.Coverage)
	}
	if w.Similarity == 0 && w.Coverage == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}

// Bands hold the composite-score thresholds for caller-facing labels.
// Thresholds are configuration, not part of the numeric contract.
type Bands struct {
	Strong   float64 `json:"strong"`
	Moderate float64 `json:"moderate"`
}

// Band labels.
const (
	BandStrong   = "strong"
	BandModerate = "moderate"
	BandWeak     = "weak"
)

// DefaultBands returns the standard thresholds.
func DefaultBands() Bands {
	return Bands{Strong: 75, Moderate: 50}
}

// Validate checks thresholds are within [0,100] and properly ordered.
func (b Bands) Validate() error {
	if b.Strong < 0 || b.Strong > 100 || b.Moderate < 0 || b.Moderate > 100 {
		return fmt.Errorf("band thresholds must be within [0,100]")
	}
	if b.Moderate >= b.Strong {
		return fmt.Errorf("moderate threshold %.1f must be below strong threshold %.1f", b.Moderate, b.Strong)
	}
	return nil
}

// Scorer produces MatchReports from two skill sets and two raw texts.
// Construction fails fast on invalid configuration; a Scorer never errors
// mid-request for configuration reasons.
type Scorer struct {
	embedder Embedder
	weights  Weights
	bands    Bands
}

// NewScorer builds a scorer. The embedder may be nil, in which case only
// ScoreSets is available and Score reports the capability as unavailable.
func NewScorer(embedder Embedder, weights Weights, bands Bands) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	if err := bands.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bands: %w", err)
	}
	return &Scorer{embedder: embedder, weights: weights, bands: bands}, nil
}

// Score computes the full match report: set algebra, embedding similarity,
// coverage, and the composite blend. An embedding failure surfaces as
// types.ErrCapabilityUnavailable so callers can decide to retry, degrade to
// ScoreSets, or abort; it is never silently folded into a misleading score.
func (s *Scorer) Score(ctx context.Context, resumeText, jobText string, resumeSkills, jobSkills types.SkillSet) (*types.MatchReport, error) {
	similarity, err := s.similarity(ctx, resumeText, jobText)
	if err != nil {
		return nil, err
	}

	report := s.ScoreSets(resumeSkills, jobSkills)
	report.SimilarityScore = similarity
	report.CompositeScore = s.composite(similarity, report.CoveragePct)
	report.Band = s.Band(report.CompositeScore)
	return report, nil
}

// ScoreSets computes the set-overlap portion of the report with similarity
// treated as 0. It is pure and needs no external capability; callers use it
// as the degraded path when the embedder is unavailable.
func (s *Scorer) ScoreSets(resumeSkills, jobSkills types.SkillSet) *types.MatchReport {
	matched := resumeSkills.Intersect(jobSkills)
	missing := jobSkills.Difference(resumeSkills)
	extra := resumeSkills.Difference(jobSkills)

	coverage := 0.0
	if jobSkills.Len() > 0 {
		coverage = 100 * float64(matched.Len()) / float64(jobSkills.Len())
	}

	report := &types.MatchReport{
		Matched:         matched,
		Missing:         missing,
		Extra:           extra,
		SimilarityScore: 0,
		CoveragePct:     coverage,
	}
	report.CompositeScore = s.composite(0, coverage)
	report.Band = s.Band(report.CompositeScore)
	return report
}

// Band maps a composite score to its caller-facing label.
func (s *Scorer) Band(composite float64) string {
	switch {
	case composite >= s.bands.Strong:
		return BandStrong
	case composite >= s.bands.Moderate:
		return BandModerate
	default:
		return BandWeak
	}
}

// similarity embeds both texts and returns their cosine similarity clipped
// into [0,1]. Empty text on either side scores 0 without an embedding call.
func (s *Scorer) similarity(ctx context.Context, resumeText, jobText string) (float64, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return 0, nil
	}
	if s.embedder == nil {
		return 0, fmt.Errorf("embedding model not configured: %w", types.ErrCapabilityUnavailable)
	}

	resumeVec, err := s.embedder.Embed(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("failed to embed resume text: %w: %w", types.ErrCapabilityUnavailable, err)
	}
	jobVec, err := s.embedder.Embed(ctx, jobText)
	if err != nil {
		return 0, fmt.Errorf("failed to embed job text: %w: %w", types.ErrCapabilityUnavailable, err)
	}

	// Negative cosine values are possible but rare for natural-language
	// embeddings; floor at 0 so the similarity term never drags the
	// composite below the coverage evidence.
	return clip(Cosine(resumeVec, jobVec), 0, 1), nil
}

// composite blends similarity and coverage into the [0,100] recommendation
// score.
func (s *Scorer) composite(similarity, coveragePct float64) float64 {
	return clip(similarity*100*s.weights.Similarity+coveragePct*s.weights.Coverage, 0, 100)
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
