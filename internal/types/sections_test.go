package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleDoc() *ParsedDocument {
	return &ParsedDocument{Ordered: []Line{
		{Category: CategoryContact, Text: "john@example.com"},
		{Category: CategorySkills, Text: "Python, SQL"},
		{Category: CategoryExperience, Text: "Software Engineer at Acme"},
		{Category: CategorySkills, Text: "Docker"},
	}}
}

func TestParsedDocument_Lines(t *testing.T) {
	doc := sampleDoc()

	assert.Equal(t, []string{"Python, SQL", "Docker"}, doc.Lines(CategorySkills))
	assert.Equal(t, []string{"john@example.com"}, doc.Lines(CategoryContact))
	assert.Empty(t, doc.Lines(CategoryEducation))
}

func TestParsedDocument_Sections(t *testing.T) {
	sections := sampleDoc().Sections()

	assert.Len(t, sections[CategorySkills], 2)
	assert.Len(t, sections[CategoryContact], 1)
	_, hasEducation := sections[CategoryEducation]
	assert.False(t, hasEducation)
}

func TestParsedDocument_Text(t *testing.T) {
	doc := sampleDoc()

	all := doc.Text()
	assert.Contains(t, all, "john@example.com")
	assert.Contains(t, all, "Docker")

	skillsOnly := doc.Text(CategorySkills)
	assert.Contains(t, skillsOnly, "Python, SQL")
	assert.Contains(t, skillsOnly, "Docker")
	assert.NotContains(t, skillsOnly, "john@example.com")
}

func TestParsedDocument_Len(t *testing.T) {
	assert.Equal(t, 4, sampleDoc().Len())
	assert.Equal(t, 0, (&ParsedDocument{}).Len())
}

func TestAllCategories_Closed(t *testing.T) {
	cats := AllCategories()
	assert.Len(t, cats, 6)
	assert.Contains(t, cats, CategoryContact)
	assert.Contains(t, cats, CategoryOther)
}
