package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	for _, key := range []string{"recognize_entities", "extract_skills", "enrich_recommendation"} {
		t.Run(key, func(t *testing.T) {
			prompt, err := Get("analysis.json", key)
			require.NoError(t, err)
			assert.NotEmpty(t, prompt)
		})
	}

	t.Run("missing key", func(t *testing.T) {
		_, err := Get("analysis.json", "nonexistent_key")
		assert.ErrorContains(t, err, "nonexistent_key")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Get("nonexistent.json", "any_key")
		assert.ErrorContains(t, err, "nonexistent.json")
	})
}

func TestGet_TemplatesCarryPlaceholders(t *testing.T) {
	for key, placeholder := range map[string]string{
		"recognize_entities":    "{{.Text}}",
		"extract_skills":        "{{.Text}}",
		"enrich_recommendation": "{{.Skill}}",
	} {
		prompt, err := Get("analysis.json", key)
		require.NoError(t, err)
		assert.Contains(t, prompt, placeholder, "key %s", key)
	}
}

func TestFormat(t *testing.T) {
	template := "Analyze {{.Text}} for {{.Skill}} mentions of {{.Text}}"
	result := Format(template, map[string]string{
		"Text":  "the document",
		"Skill": "Python",
	})
	assert.Equal(t, "Analyze the document for Python mentions of the document", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("Value: {{.Missing}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Value: {{.Missing}}", result)
}

func TestMustGet(t *testing.T) {
	assert.NotPanics(t, func() {
		MustGet("analysis.json", "extract_skills")
	})
	assert.Panics(t, func() {
		MustGet("analysis.json", "nonexistent_key")
	})
}

func TestList(t *testing.T) {
	keys, err := List("analysis.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "recognize_entities")
	assert.Contains(t, keys, "extract_skills")
	assert.Contains(t, keys, "enrich_recommendation")
}

func TestGet_StableAcrossCalls(t *testing.T) {
	first, err := Get("analysis.json", "extract_skills")
	require.NoError(t, err)
	second, err := Get("analysis.json", "extract_skills")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
