package parsing

import (
	"regexp"
	"strings"
)

var (
	// bulletGlyphRe covers the decorative bullet glyphs PDF extraction
	// produces; all are normalized to a single bullet character.
	bulletGlyphRe = regexp.MustCompile(`[•·▪▫◦‣⁃]`)
	// spaceRunRe matches runs of 3+ spaces, which in extracted text usually
	// mark column breaks rather than word spacing.
	spaceRunRe = regexp.MustCompile(` {3,}`)
	// decorationOnlyRe matches lines consisting solely of bullet/dash noise.
	decorationOnlyRe = regexp.MustCompile(`^[•\-–—*+\s]*$`)
)

// minContentChars is the minimum number of non-space characters a line must
// carry to be considered content.
const minContentChars = 3

// PrepareLines normalizes raw extracted text into trimmed candidate lines.
// Pipe separators and wide space runs become line breaks, bullet glyph
// variants collapse to a single bullet, and lines that are too short or pure
// decoration are dropped. The result is deterministic for identical input.
func PrepareLines(raw string) []string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "|", "\n")
	text = bulletGlyphRe.ReplaceAllString(text, "•")
	text = spaceRunRe.ReplaceAllString(text, "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if nonSpaceLen(line) < minContentChars {
			continue
		}
		if decorationOnlyRe.MatchString(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// nonSpaceLen counts the non-whitespace characters in a line.
func nonSpaceLen(s string) int {
	count := 0
	for _, r := range s {
		if r != ' ' && r != '\t' {
			count++
		}
	}
	return count
}

// stripDecorations removes leading/trailing bullet, dash, colon, and space
// characters so decorated section headers still match the header vocabulary.
func stripDecorations(s string) string {
	return strings.Trim(s, "•-–—*+:# \t")
}
