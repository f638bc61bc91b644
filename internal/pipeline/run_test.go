package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smartmatch/internal/matching"
	"github.com/jonathan/smartmatch/internal/scoring"
	"github.com/jonathan/smartmatch/internal/types"
)

const sampleResume = `John Smith
john.smith@email.com | 555-123-4567
linkedin.com/in/johnsmith

SKILLS
Python, SQL, Communication

EXPERIENCE
Software Engineer at DataCorp
2019 - 2023
Built reporting dashboards using Python and SQL

EDUCATION
B.S. Computer Science, State University
`

const sampleJob = `Data Engineer

We are looking for a data engineer to join our platform team.

Requirements:
- Strong Python programming skills
- Advanced SQL for analytics workloads
- Experience deploying services with Docker
`

type stubEmbedder struct {
	vec []float32
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return s.vec, nil
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_EndToEnd(t *testing.T) {
	opts := RunOptions{
		ResumePath: writeDoc(t, "resume.txt", sampleResume),
		JobPath:    writeDoc(t, "job.txt", sampleJob),
		Weights:    scoring.DefaultWeights(),
		Bands:      scoring.DefaultBands(),
		Embedder:   &stubEmbedder{vec: []float32{0.5, 0.5, 0.5}},
	}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.True(t, result.ResumeSkills.Has("Python"))
	assert.True(t, result.ResumeSkills.Has("SQL"))
	assert.True(t, result.JobSkills.Has("Docker"))

	report := result.Report
	require.NotNil(t, report)
	assert.True(t, report.Matched.Has("Python"))
	assert.True(t, report.Matched.Has("SQL"))
	assert.True(t, report.Missing.Has("Docker"))
	assert.False(t, report.Missing.Has("Python"))
	assert.InDelta(t, 66.7, report.CoveragePct, 0.1)

	// Identical stub vectors give similarity 1.0
	assert.InDelta(t, 1.0, report.SimilarityScore, 1e-9)
	assert.False(t, result.Degraded)

	// Docker has a curated recommendation
	require.NotEmpty(t, result.Recommendations)
	found := false
	for _, rec := range result.Recommendations {
		if rec.Skill == "Docker" {
			found = true
			assert.NotEmpty(t, rec.Description)
			assert.False(t, rec.Enriched)
		}
	}
	assert.True(t, found)
	assert.Empty(t, result.UnknownGaps)
}

func TestRun_DegradesWithoutEmbedder(t *testing.T) {
	opts := RunOptions{
		ResumePath: writeDoc(t, "resume.txt", sampleResume),
		JobPath:    writeDoc(t, "job.txt", sampleJob),
		Weights:    scoring.DefaultWeights(),
		Bands:      scoring.DefaultBands(),
	}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Equal(t, 0.0, result.Report.SimilarityScore)
	assert.InDelta(t, 66.7, result.Report.CoveragePct, 0.1)
	// Composite is coverage-only: 66.7 * 0.7
	assert.InDelta(t, 46.7, result.Report.CompositeScore, 0.1)
}

func TestRun_RecognizerUnionsEntities(t *testing.T) {
	recognizer := matching.RecognizerFunc(func(_ context.Context, _ string) ([]matching.Span, error) {
		return []matching.Span{{Text: "kubernetes", Label: "SKILL"}}, nil
	})

	opts := RunOptions{
		ResumePath: writeDoc(t, "resume.txt", sampleResume),
		JobPath:    writeDoc(t, "job.txt", sampleJob),
		Weights:    scoring.DefaultWeights(),
		Bands:      scoring.DefaultBands(),
		Embedder:   &stubEmbedder{vec: []float32{1, 0}},
		Recognizer: recognizer,
	}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	// Recognizer output is canonicalized and unioned into both sides
	assert.True(t, result.ResumeSkills.Has("Kubernetes"))
	assert.True(t, result.JobSkills.Has("Kubernetes"))
}

func TestRun_ExtractorSupplementsSkills(t *testing.T) {
	extractor := ExtractFunc(func(_ context.Context, _ string) (types.SkillSet, error) {
		return types.NewSkillSet("Terraform"), nil
	})

	opts := RunOptions{
		ResumePath: writeDoc(t, "resume.txt", sampleResume),
		JobPath:    writeDoc(t, "job.txt", sampleJob),
		Weights:    scoring.DefaultWeights(),
		Bands:      scoring.DefaultBands(),
		Embedder:   &stubEmbedder{vec: []float32{1, 0}},
		Extractor:  extractor,
	}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	// Model-extracted skills are unioned with the lexical pass on both sides
	assert.True(t, result.ResumeSkills.Has("Terraform"))
	assert.True(t, result.JobSkills.Has("Terraform"))
	assert.True(t, result.ResumeSkills.Has("Python"))
}

func TestRun_ExtractorFailureDegradesToLexical(t *testing.T) {
	extractor := ExtractFunc(func(_ context.Context, _ string) (types.SkillSet, error) {
		return nil, errors.New("model overloaded")
	})

	opts := RunOptions{
		ResumePath: writeDoc(t, "resume.txt", sampleResume),
		JobPath:    writeDoc(t, "job.txt", sampleJob),
		Weights:    scoring.DefaultWeights(),
		Bands:      scoring.DefaultBands(),
		Embedder:   &stubEmbedder{vec: []float32{1, 0}},
		Extractor:  extractor,
	}

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.True(t, result.ResumeSkills.Has("Python"))
	assert.True(t, result.JobSkills.Has("Docker"))
	assert.InDelta(t, 66.7, result.Report.CoveragePct, 0.1)
}

func TestRun_MissingResumeFile(t *testing.T) {
	opts := RunOptions{
		ResumePath: filepath.Join(t.TempDir(), "missing.txt"),
		JobPath:    writeDoc(t, "job.txt", sampleJob),
		Weights:    scoring.DefaultWeights(),
		Bands:      scoring.DefaultBands(),
	}

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume ingestion failed")
}

func TestRun_InvalidWeights(t *testing.T) {
	opts := RunOptions{
		ResumePath: writeDoc(t, "resume.txt", sampleResume),
		JobPath:    writeDoc(t, "job.txt", sampleJob),
		Weights:    scoring.Weights{Similarity: 2, Coverage: 0.5},
		Bands:      scoring.DefaultBands(),
	}

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scorer build failed")
}
