package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillSet_AddAndHas(t *testing.T) {
	s := NewSkillSet()
	s.Add("Python")
	s.Add("")
	s.Add("Python")

	assert.True(t, s.Has("Python"))
	assert.False(t, s.Has("python")) // membership is exact
	assert.False(t, s.Has(""))
	assert.Equal(t, 1, s.Len())
}

func TestSkillSet_Sorted(t *testing.T) {
	s := NewSkillSet("SQL", "Docker", "Python")
	assert.Equal(t, []string{"Docker", "Python", "SQL"}, s.Sorted())
}

func TestSkillSet_SetAlgebra(t *testing.T) {
	resume := NewSkillSet("Python", "SQL", "Communication")
	job := NewSkillSet("Python", "SQL", "Docker")

	matched := resume.Intersect(job)
	missing := job.Difference(resume)
	extra := resume.Difference(job)

	assert.True(t, matched.Equal(NewSkillSet("Python", "SQL")))
	assert.True(t, missing.Equal(NewSkillSet("Docker")))
	assert.True(t, extra.Equal(NewSkillSet("Communication")))

	// matched and missing partition the job set
	assert.True(t, matched.Union(missing).Equal(job))
	assert.Equal(t, 0, matched.Intersect(missing).Len())
}

func TestSkillSet_EmptyOperands(t *testing.T) {
	empty := NewSkillSet()
	s := NewSkillSet("Python")

	assert.Equal(t, 0, empty.Intersect(s).Len())
	assert.Equal(t, 0, empty.Difference(s).Len())
	assert.True(t, s.Union(empty).Equal(s))
	assert.True(t, empty.Equal(NewSkillSet()))
	assert.False(t, empty.Equal(s))
}

func TestSkillSet_OperationsDoNotMutate(t *testing.T) {
	a := NewSkillSet("Python", "SQL")
	b := NewSkillSet("SQL")

	_ = a.Intersect(b)
	_ = a.Difference(b)
	_ = a.Union(b)

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1, b.Len())
}

func TestSkillSet_JSON(t *testing.T) {
	s := NewSkillSet("SQL", "Python")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	// Marshals as a sorted array
	assert.JSONEq(t, `["Python","SQL"]`, string(data))

	var decoded SkillSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, s.Equal(decoded))
}

func TestSkillSet_JSONRoundTripInReport(t *testing.T) {
	report := MatchReport{
		Matched:        NewSkillSet("Python"),
		Missing:        NewSkillSet("Docker"),
		Extra:          NewSkillSet(),
		CoveragePct:    50,
		CompositeScore: 35,
		Band:           "weak",
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded MatchReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Matched.Has("Python"))
	assert.True(t, decoded.Missing.Has("Docker"))
	assert.Equal(t, "weak", decoded.Band)
}
