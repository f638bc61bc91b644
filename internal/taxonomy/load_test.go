package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTaxonomyJSON = `{
	"categories": [
		{
			"name": "Programming Languages",
			"skills": [
				{"name": "Rust"},
				{"name": "TypeScript", "synonyms": ["ts"]}
			]
		},
		{
			"name": "Databases",
			"skills": [
				{"name": "ClickHouse"}
			]
		}
	]
}`

func TestLoadBytes_Valid(t *testing.T) {
	tax, err := LoadBytes([]byte(validTaxonomyJSON))
	require.NoError(t, err)

	assert.Equal(t, 3, tax.Len())

	canonical, ok := tax.Canonicalize("ts")
	require.True(t, ok)
	assert.Equal(t, "TypeScript", canonical)

	category, ok := tax.Category("clickhouse")
	require.True(t, ok)
	assert.Equal(t, "Databases", category)
}

func TestLoadBytes_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not JSON", `{categories`},
		{"missing categories", `{}`},
		{"empty categories", `{"categories": []}`},
		{"category without name", `{"categories": [{"skills": [{"name": "Go"}]}]}`},
		{"skill without name", `{"categories": [{"name": "Languages", "skills": [{"synonyms": ["x"]}]}]}`},
		{"empty skills", `{"categories": [{"name": "Languages", "skills": []}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadBytes_DuplicateRejectedAfterSchema(t *testing.T) {
	data := `{
		"categories": [
			{"name": "A", "skills": [{"name": "Spark"}]},
			{"name": "B", "skills": [{"name": "spark"}]}
		]
	}`

	_, err := LoadBytes([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already maps")
}

func TestLoadFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "taxonomy.json")
		require.NoError(t, os.WriteFile(path, []byte(validTaxonomyJSON), 0o644))

		tax, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 3, tax.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
