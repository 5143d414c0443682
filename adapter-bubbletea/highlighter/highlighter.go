// Package highlighter maps chroma tokens onto lipgloss styles, line by line.
package highlighter

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter tokenizes a whole document and serves styled spans per line.
type Highlighter struct {
	lexer      chroma.Lexer
	style      *chroma.Style
	source     string
	cache      map[int][]Span
	styleCache map[chroma.TokenType]lipgloss.Style
	mu         sync.RWMutex
}

// Span is a token with its rune columns in the logical line.
type Span struct {
	Type     chroma.TokenType
	Value    string
	StartCol int
	EndCol   int
}

// New creates a highlighter for language using the chroma theme.
// Unknown languages fall back to plain text, unknown themes to chroma's fallback.
func New(language string, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(theme),
		cache:      make(map[int][]Span),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Update retokenizes when lines differ from the last tokenized content.
// Multi-line constructs such as fenced code blocks need the whole document.
func (h *Highlighter) Update(lines []string) {
	content := strings.Join(lines, "\n")

	h.mu.RLock()
	unchanged := content == h.source && len(h.cache) > 0
	h.mu.RUnlock()
	if unchanged {
		return
	}

	h.tokenize(content)
}

func (h *Highlighter) tokenize(content string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.source = content
	h.cache = map[int][]Span{0: nil}

	if content == "" {
		return
	}

	// Line-oriented rules such as markdown headings need the final newline.
	// The empty row it opens never gets a span.
	iterator, err := h.lexer.Tokenise(nil, content+"\n")
	if err != nil {
		return
	}

	row, col := 0, 0
	add := func(t chroma.TokenType, value string) {
		n := len([]rune(value))
		h.cache[row] = append(h.cache[row], Span{Type: t, Value: value, StartCol: col, EndCol: col + n})
		col += n
	}

	for _, token := range iterator.Tokens() {
		value := token.Value
		for {
			before, after, found := strings.Cut(value, "\n")
			if before != "" {
				add(token.Type, before)
			}
			if !found {
				break
			}
			row++
			col = 0
			value = after
		}
	}
}

// Spans returns the styled spans of row, or nil if the row has none.
func (h *Highlighter) Spans(row int) []Span {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cache[row]
}

// StyleAt returns the style of the token covering col in row.
func (h *Highlighter) StyleAt(row, col int) lipgloss.Style {
	for _, span := range h.Spans(row) {
		if col >= span.StartCol && col < span.EndCol {
			return h.Style(span.Type)
		}
	}
	return lipgloss.NewStyle()
}

// Style converts a chroma token type to a lipgloss style.
func (h *Highlighter) Style(tokenType chroma.TokenType) lipgloss.Style {
	h.mu.RLock()
	style, ok := h.styleCache[tokenType]
	h.mu.RUnlock()
	if ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style = lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.mu.Lock()
	h.styleCache[tokenType] = style
	h.mu.Unlock()

	return style
}
