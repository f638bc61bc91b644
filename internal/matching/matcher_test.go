package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smartmatch/internal/taxonomy"
)

func testTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.New([]taxonomy.Entry{
		{CanonicalName: "Python", Category: "languages"},
		{CanonicalName: "Java", Category: "languages"},
		{CanonicalName: "JavaScript", Category: "languages", Synonyms: []string{"js"}},
		{CanonicalName: "C++", Category: "languages", Synonyms: []string{"cpp"}},
		{CanonicalName: "C#", Category: "languages"},
		{CanonicalName: "Node.js", Category: "frameworks", Synonyms: []string{"node"}},
		{CanonicalName: "Kubernetes", Category: "infrastructure", Synonyms: []string{"k8s"}},
	})
	require.NoError(t, err)
	return tax
}

func TestNewPhraseMatcher_SingleEntry(t *testing.T) {
	tax, err := taxonomy.New([]taxonomy.Entry{{CanonicalName: "Go", Category: "languages"}})
	require.NoError(t, err)
	_, err = NewPhraseMatcher(tax)
	assert.NoError(t, err)
}

func TestExtract_CaseInsensitive(t *testing.T) {
	m, err := NewPhraseMatcher(testTaxonomy(t))
	require.NoError(t, err)

	for _, text := range []string{"Python", "python", "PYTHON", "PyThOn"} {
		skills := m.Extract("Experience with " + text + " required")
		assert.True(t, skills.Has("Python"), "input %q", text)
		assert.Equal(t, 1, skills.Len())
	}
}

func TestExtract_LongerPhraseWins(t *testing.T) {
	m, err := NewPhraseMatcher(testTaxonomy(t))
	require.NoError(t, err)

	skills := m.Extract("We use JavaScript heavily")
	assert.True(t, skills.Has("JavaScript"))
	assert.False(t, skills.Has("Java"), "java must not fire inside javascript")

	skills = m.Extract("Java and JavaScript are different")
	assert.True(t, skills.Has("Java"))
	assert.True(t, skills.Has("JavaScript"))
}

func TestExtract_NonWordPhrases(t *testing.T) {
	m, err := NewPhraseMatcher(testTaxonomy(t))
	require.NoError(t, err)

	skills := m.Extract("Strong C++ and C# background, plus Node.js services")
	assert.True(t, skills.Has("C++"))
	assert.True(t, skills.Has("C#"))
	assert.True(t, skills.Has("Node.js"))
}

func TestExtract_TokenBoundaries(t *testing.T) {
	m, err := NewPhraseMatcher(testTaxonomy(t))
	require.NoError(t, err)

	t.Run("no match inside a longer token", func(t *testing.T) {
		assert.Zero(t, m.Extract("micropythonic conventions").Len())
		assert.Zero(t, m.Extract("nodes in the graph").Len())
	})

	t.Run("punctuation counts as a boundary", func(t *testing.T) {
		skills := m.Extract("(python), [java]; k8s!")
		assert.True(t, skills.Has("Python"))
		assert.True(t, skills.Has("Java"))
		assert.True(t, skills.Has("Kubernetes"))
	})
}

func TestExtract_SynonymsCanonicalize(t *testing.T) {
	m, err := NewPhraseMatcher(testTaxonomy(t))
	require.NoError(t, err)

	skills := m.Extract("Deployed js workloads on k8s with node tooling")
	assert.True(t, skills.Has("JavaScript"))
	assert.True(t, skills.Has("Kubernetes"))
	assert.True(t, skills.Has("Node.js"))
	assert.Equal(t, 3, skills.Len())
}

func TestExtract_EmptyText(t *testing.T) {
	m, err := NewPhraseMatcher(testTaxonomy(t))
	require.NoError(t, err)

	assert.Zero(t, m.Extract("").Len())
	assert.Zero(t, m.Extract("   \n\t").Len())
}

func TestExtract_RepeatedMentionsDeduplicated(t *testing.T) {
	m, err := NewPhraseMatcher(testTaxonomy(t))
	require.NoError(t, err)

	skills := m.Extract("Python, python, and more Python")
	assert.Equal(t, 1, skills.Len())
}
