// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/smartmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSections outputs a summary of the classified resume sections.
func (p *Printer) PrintSections(doc *types.ParsedDocument) {
	if doc == nil || doc.Len() == 0 {
		return
	}

	var sb strings.Builder
	for _, cat := range types.AllCategories() {
		lines := doc.Lines(cat)
		if len(lines) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s (%d lines):\n", cat, len(lines)))
		count := min(len(lines), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", lines[i]))
		}
		if len(lines) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(lines)-3))
		}
	}

	p.printBox("RESUME SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillSets outputs the skill sets extracted from both documents.
func (p *Printer) PrintSkillSets(resumeSkills, jobSkills types.SkillSet) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Resume skills (%d):\n", resumeSkills.Len()))
	writeSkillList(&sb, resumeSkills)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Job skills (%d):\n", jobSkills.Len()))
	writeSkillList(&sb, jobSkills)

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchReport outputs the scored comparison of resume and job.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Composite:  %.1f / 100 (%s)\n", report.CompositeScore, report.Band))
	sb.WriteString(fmt.Sprintf("Similarity: %.3f\n", report.SimilarityScore))
	sb.WriteString(fmt.Sprintf("Coverage:   %.1f%%\n", report.CoveragePct))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Matched (%d):\n", report.Matched.Len()))
	writeSkillList(&sb, report.Matched)
	sb.WriteString(fmt.Sprintf("Missing (%d):\n", report.Missing.Len()))
	writeSkillList(&sb, report.Missing)
	sb.WriteString(fmt.Sprintf("Extra (%d):\n", report.Extra.Len()))
	writeSkillList(&sb, report.Extra)

	p.printBox("MATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the gap recommendations.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		sb.WriteString(fmt.Sprintf("• %s [%s]\n", rec.Skill, rec.Priority))
		if rec.LearningResource != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", rec.LearningResource))
		}
	}
	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(recs)-maxItemsToShow))
	}

	p.printBox("GAP RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// writeSkillList appends a sorted, truncated bullet list of skills.
func writeSkillList(sb *strings.Builder, skills types.SkillSet) {
	sorted := skills.Sorted()
	count := min(len(sorted), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", sorted[i]))
	}
	if len(sorted) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(sorted)-maxItemsToShow))
	}
}
