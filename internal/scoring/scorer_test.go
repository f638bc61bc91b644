package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smartmatch/internal/types"
)

// stubEmbedder returns a fixed vector per distinct text so tests can control
// the similarity term exactly.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors[text], nil
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
	assert.NoError(t, Weights{Similarity: 1, Coverage: 0}.Validate())
	assert.Error(t, Weights{Similarity: -0.1, Coverage: 0.5}.Validate())
	assert.Error(t, Weights{Similarity: 0.5, Coverage: 1.2}.Validate())
	assert.Error(t, Weights{}.Validate())
}

func TestBandsValidate(t *testing.T) {
	assert.NoError(t, DefaultBands().Validate())
	assert.Error(t, Bands{Strong: 120, Moderate: 50}.Validate())
	assert.Error(t, Bands{Strong: 50, Moderate: 75}.Validate())
	assert.Error(t, Bands{Strong: 60, Moderate: 60}.Validate())
}

func TestNewScorer_RejectsInvalidConfig(t *testing.T) {
	_, err := NewScorer(nil, Weights{Similarity: 2}, DefaultBands())
	assert.ErrorContains(t, err, "invalid weights")

	_, err = NewScorer(nil, DefaultWeights(), Bands{Strong: 40, Moderate: 60})
	assert.ErrorContains(t, err, "invalid bands")
}

func TestScoreSets(t *testing.T) {
	s, err := NewScorer(nil, DefaultWeights(), DefaultBands())
	require.NoError(t, err)

	resume := types.NewSkillSet("Python", "SQL", "Communication")
	job := types.NewSkillSet("Python", "SQL", "Docker")

	report := s.ScoreSets(resume, job)

	assert.True(t, report.Matched.Equal(types.NewSkillSet("Python", "SQL")))
	assert.True(t, report.Missing.Equal(types.NewSkillSet("Docker")))
	assert.True(t, report.Extra.Equal(types.NewSkillSet("Communication")))

	// Matched and missing partition the job set.
	assert.True(t, report.Matched.Union(report.Missing).Equal(job))
	assert.Zero(t, report.Matched.Intersect(report.Missing).Len())

	assert.InDelta(t, 66.67, report.CoveragePct, 0.01)
	assert.Zero(t, report.SimilarityScore)
	assert.InDelta(t, 0.7*66.67, report.CompositeScore, 0.01)
	assert.Equal(t, BandWeak, report.Band)
}

func TestScoreSets_CoverageMonotonic(t *testing.T) {
	s, err := NewScorer(nil, DefaultWeights(), DefaultBands())
	require.NoError(t, err)

	job := types.NewSkillSet("Python", "SQL", "Docker", "AWS")
	smaller := types.NewSkillSet("Python")
	larger := smaller.Union(types.NewSkillSet("SQL", "Git"))

	assert.LessOrEqual(t,
		s.ScoreSets(smaller, job).CoveragePct,
		s.ScoreSets(larger, job).CoveragePct)
}

func TestScoreSets_EmptyJob(t *testing.T) {
	s, err := NewScorer(nil, DefaultWeights(), DefaultBands())
	require.NoError(t, err)

	report := s.ScoreSets(types.NewSkillSet("Python"), types.NewSkillSet())
	assert.Zero(t, report.CoveragePct)
	assert.Zero(t, report.CompositeScore)
	assert.Equal(t, BandWeak, report.Band)
}

func TestScore_BlendsSimilarityAndCoverage(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float32{
		"resume text": {1, 0},
		"job text":    {1, 0},
	}}
	s, err := NewScorer(emb, DefaultWeights(), DefaultBands())
	require.NoError(t, err)

	resume := types.NewSkillSet("Python", "SQL")
	job := types.NewSkillSet("Python", "SQL")

	report, err := s.Score(context.Background(), "resume text", "job text", resume, job)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, report.SimilarityScore, 1e-9)
	assert.InDelta(t, 100, report.CoveragePct, 1e-9)
	assert.InDelta(t, 100, report.CompositeScore, 1e-9)
	assert.Equal(t, BandStrong, report.Band)
}

func TestScore_NegativeSimilarityFlooredAtZero(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float32{
		"resume text": {1, 0},
		"job text":    {-1, 0},
	}}
	s, err := NewScorer(emb, DefaultWeights(), DefaultBands())
	require.NoError(t, err)

	report, err := s.Score(context.Background(), "resume text", "job text",
		types.NewSkillSet("Python"), types.NewSkillSet("Python"))
	require.NoError(t, err)

	assert.Zero(t, report.SimilarityScore)
	assert.InDelta(t, 70, report.CompositeScore, 1e-9)
}

func TestScore_EmptyTextSkipsEmbedding(t *testing.T) {
	emb := &stubEmbedder{err: errors.New("should not be called")}
	s, err := NewScorer(emb, DefaultWeights(), DefaultBands())
	require.NoError(t, err)

	report, err := s.Score(context.Background(), "", "job text",
		types.NewSkillSet(), types.NewSkillSet("Python"))
	require.NoError(t, err)
	assert.Zero(t, report.SimilarityScore)
}

func TestScore_NilEmbedder(t *testing.T) {
	s, err := NewScorer(nil, DefaultWeights(), DefaultBands())
	require.NoError(t, err)

	_, err = s.Score(context.Background(), "resume text", "job text",
		types.NewSkillSet("Python"), types.NewSkillSet("Python"))
	assert.ErrorIs(t, err, types.ErrCapabilityUnavailable)
}

func TestScore_EmbedderFailure(t *testing.T) {
	embErr := errors.New("quota exceeded")
	s, err := NewScorer(&stubEmbedder{err: embErr}, DefaultWeights(), DefaultBands())
	require.NoError(t, err)

	_, err = s.Score(context.Background(), "resume text", "job text",
		types.NewSkillSet("Python"), types.NewSkillSet("Python"))
	assert.ErrorIs(t, err, types.ErrCapabilityUnavailable)
	assert.ErrorIs(t, err, embErr)
}

func TestBand_Thresholds(t *testing.T) {
	s, err := NewScorer(nil, DefaultWeights(), DefaultBands())
	require.NoError(t, err)

	assert.Equal(t, BandStrong, s.Band(75))
	assert.Equal(t, BandStrong, s.Band(100))
	assert.Equal(t, BandModerate, s.Band(74.9))
	assert.Equal(t, BandModerate, s.Band(50))
	assert.Equal(t, BandWeak, s.Band(49.9))
	assert.Equal(t, BandWeak, s.Band(0))
}

func TestComposite_Clamped(t *testing.T) {
	s, err := NewScorer(nil, Weights{Similarity: 1, Coverage: 1}, DefaultBands())
	require.NoError(t, err)

	// Both weights at 1 can push the raw blend past 100.
	assert.InDelta(t, 100, s.composite(1, 100), 1e-9)
}
