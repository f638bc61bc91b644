// Package types provides type definitions for structured data used throughout the smartmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionCategory labels a line of document content with the section it belongs to.
type SectionCategory string

// Section categories form a fixed, closed set. A line belongs to exactly one category.
const (
	CategoryContact    SectionCategory = "contact"
	CategorySummary    SectionCategory = "summary"
	CategorySkills     SectionCategory = "skills"
	CategoryExperience SectionCategory = "experience"
	CategoryEducation  SectionCategory = "education"
	CategoryOther      SectionCategory = "other"
)

// AllCategories returns the closed set of section categories in a stable order.
func AllCategories() []SectionCategory {
	return []SectionCategory{
		CategoryContact,
		CategorySummary,
		CategorySkills,
		CategoryExperience,
		CategoryEducation,
		CategoryOther,
	}
}

// Line is a single line of document content with its assigned category.
type Line struct {
	Category SectionCategory `json:"category"`
	Text     string          `json:"text"`
}

// ParsedDocument holds the output of section parsing: every retained line in
// document order. Section headers are never retained as content lines.
type ParsedDocument struct {
	Ordered []Line `json:"ordered"`
}

// Lines returns the text of every line in the given category, in document order.
func (d *ParsedDocument) Lines(category SectionCategory) []string {
	var out []string
	for _, line := range d.Ordered {
		if line.Category == category {
			out = append(out, line.Text)
		}
	}
	return out
}

// Sections returns a per-category grouping view of the ordered content.
func (d *ParsedDocument) Sections() map[SectionCategory][]string {
	sections := make(map[SectionCategory][]string)
	for _, line := range d.Ordered {
		sections[line.Category] = append(sections[line.Category], line.Text)
	}
	return sections
}

// Text joins the lines of the given categories (all categories if none given)
// into a single newline-separated string, preserving document order.
func (d *ParsedDocument) Text(categories ...SectionCategory) string {
	wanted := make(map[SectionCategory]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	out := ""
	for _, line := range d.Ordered {
		if len(categories) > 0 && !wanted[line.Category] {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += line.Text
	}
	return out
}

// Len returns the number of retained lines across all categories.
func (d *ParsedDocument) Len() int {
	return len(d.Ordered)
}
