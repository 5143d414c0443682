package highlighter

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinSpans(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Value)
	}
	return sb.String()
}

func TestSpansCoverEachLine(t *testing.T) {
	lines := []string{"# Notes", "", "- met on 2024-03-07 ✓", "```go", "x := 1", "```"}
	h := New("markdown", "monokai")
	h.Update(lines)

	for row, line := range lines {
		spans := h.Spans(row)
		assert.Equal(t, line, joinSpans(spans), "row %d", row)

		col := 0
		for _, s := range spans {
			assert.Equal(t, col, s.StartCol, "row %d", row)
			assert.Equal(t, s.StartCol+len([]rune(s.Value)), s.EndCol)
			col = s.EndCol
		}
	}
}

func TestHeadingIsStyled(t *testing.T) {
	h := New("markdown", "monokai")
	h.Update([]string{"# Title"})

	spans := h.Spans(0)
	require.NotEmpty(t, spans)
	assert.Equal(t, chroma.GenericHeading, spans[0].Type)
}

func TestHeadingAfterOtherLines(t *testing.T) {
	h := New("markdown", "monokai")
	h.Update([]string{"intro", "", "## Done"})

	spans := h.Spans(2)
	require.NotEmpty(t, spans)
	assert.Equal(t, chroma.GenericSubheading, spans[0].Type)
	assert.Equal(t, "## Done", joinSpans(spans))
	assert.Empty(t, h.Spans(3), "no row past the last line")
}

func TestUpdateRetokenizesOnChange(t *testing.T) {
	h := New("markdown", "monokai")

	h.Update([]string{"plain"})
	assert.Equal(t, "plain", joinSpans(h.Spans(0)))

	h.Update([]string{"plain", "second"})
	assert.Equal(t, "second", joinSpans(h.Spans(1)))
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	h := New("no-such-language", "no-such-theme")
	h.Update([]string{"just text"})

	assert.Equal(t, "just text", joinSpans(h.Spans(0)))
	assert.NotPanics(t, func() { h.StyleAt(0, 2) })
}

func TestEmptyContent(t *testing.T) {
	h := New("markdown", "monokai")
	h.Update([]string{""})

	assert.Empty(t, h.Spans(0))
	assert.Empty(t, h.Spans(5))
}
