package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareLines(t *testing.T) {
	t.Run("splits on newlines and trims", func(t *testing.T) {
		lines := PrepareLines("first line here\n  second line here  \n")
		assert.Equal(t, []string{"first line here", "second line here"}, lines)
	})

	t.Run("treats pipes as line breaks", func(t *testing.T) {
		lines := PrepareLines("Email: a@b.com | Phone: 555-123-4567")
		assert.Equal(t, []string{"Email: a@b.com", "Phone: 555-123-4567"}, lines)
	})

	t.Run("treats wide space runs as column breaks", func(t *testing.T) {
		lines := PrepareLines("Data Analyst     Acme Corp")
		assert.Equal(t, []string{"Data Analyst", "Acme Corp"}, lines)
	})

	t.Run("normalizes bullet glyph variants", func(t *testing.T) {
		lines := PrepareLines("▪ built dashboards\n‣ automated reports")
		assert.Equal(t, []string{"• built dashboards", "• automated reports"}, lines)
	})

	t.Run("normalizes CRLF", func(t *testing.T) {
		lines := PrepareLines("line one\r\nline two")
		assert.Equal(t, []string{"line one", "line two"}, lines)
	})

	t.Run("drops short and decoration-only lines", func(t *testing.T) {
		lines := PrepareLines("ab\n---\n• - •\nreal content line")
		assert.Equal(t, []string{"real content line"}, lines)
	})

	t.Run("empty input yields no lines", func(t *testing.T) {
		assert.Empty(t, PrepareLines(""))
		assert.Empty(t, PrepareLines("   \n\n  "))
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		raw := "Skills     Python • SQL\nbuilt pipelines | led reviews"
		assert.Equal(t, PrepareLines(raw), PrepareLines(raw))
	})
}

func TestStripDecorations(t *testing.T) {
	assert.Equal(t, "skills", stripDecorations("## skills ##"))
	assert.Equal(t, "education", stripDecorations("• education:"))
	assert.Equal(t, "experience", stripDecorations("-- experience --"))
	assert.Equal(t, "plain", stripDecorations("plain"))
}
