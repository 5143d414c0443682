package adapter_bubbletea

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"
)

// viewportHeight is the number of buffer lines shown above the status and
// command lines.
func (m *Model) viewportHeight() int {
	return max(m.screen.height-2, 1)
}

// scrollToCaret keeps the caret row inside the viewport.
func (m *Model) scrollToCaret() {
	row := m.buffer.Caret().Row
	height := m.viewportHeight()

	if row < m.topLine {
		m.topLine = row
	} else if row >= m.topLine+height {
		m.topLine = row - height + 1
	}

	maxTop := max(m.buffer.LineCount()-height, 0)
	m.topLine = min(max(m.topLine, 0), maxTop)
}

func (m *Model) lineNumberWidth() int {
	if !m.showLineNumber {
		return 0
	}
	digits := len(strconv.Itoa(max(1, m.buffer.LineCount())))
	return min(max(4, digits)+1, 10)
}

func (m *Model) render() string {
	if m.screen.width <= 0 || m.screen.height <= 0 {
		return ""
	}

	lines := m.buffer.Lines()
	if m.highlighter != nil {
		m.highlighter.Update(lines)
	}

	caret := m.buffer.Caret()
	numWidth := m.lineNumberWidth()
	height := m.viewportHeight()

	var sb strings.Builder
	for i := range height {
		row := m.topLine + i
		if i > 0 {
			sb.WriteByte('\n')
		}
		if row >= len(lines) {
			continue
		}

		if numWidth > 0 {
			style := m.theme.LineNumberStyle
			if row == caret.Row {
				style = m.theme.CurrentLineNumberStyle
			}
			sb.WriteString(style.Width(numWidth - 1).Render(strconv.Itoa(row+1)))
			sb.WriteByte(' ')
		}

		if m.buffer.IsEmpty() && m.placeholder != "" {
			sb.WriteString(m.theme.CursorStyle.Render(" "))
			sb.WriteString(m.theme.PlaceholderStyle.Render(m.placeholder))
			continue
		}

		caretCol := -1
		if row == caret.Row && m.buffer.Focused() {
			caretCol = caret.Col
		}
		sb.WriteString(m.renderLine(row, lines[row], caretCol, m.screen.width-numWidth))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		sb.String(),
		m.statusLine(),
		m.commandLine(),
	)
}

// renderLine styles one line grapheme by grapheme, up to width cells.
// The grapheme starting at caretCol gets the cursor style; a caret past the
// end of the line is drawn as a styled blank cell.
func (m *Model) renderLine(row int, line string, caretCol int, width int) string {
	var sb strings.Builder

	col, used := 0, 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster string
		var cells int
		cluster, rest, cells, state = uniseg.FirstGraphemeClusterInString(rest, state)

		if used+cells > width {
			return sb.String()
		}

		switch {
		case col == caretCol:
			sb.WriteString(m.theme.CursorStyle.Render(cluster))
		case m.highlighter != nil:
			sb.WriteString(m.highlighter.StyleAt(row, col).Render(cluster))
		default:
			sb.WriteString(cluster)
		}

		col += len([]rune(cluster))
		used += cells
	}

	if caretCol >= col && used < width {
		sb.WriteString(m.theme.CursorStyle.Render(" "))
	}

	return sb.String()
}

// displayColumn is the 1-based terminal column of pos, counting wide
// graphemes as two cells.
func displayColumn(line string, col int) int {
	runes := []rune(line)
	col = min(max(col, 0), len(runes))
	return uniseg.StringWidth(string(runes[:col])) + 1
}

func (m *Model) statusLine() string {
	caret := m.buffer.Caret()
	line, _ := m.buffer.LineText(caret.Row)

	left := m.theme.HintStyle.Render(" " + m.bindingHints() + " ")
	if m.buffer.IsModified() {
		left += m.theme.ModifiedStyle.Render(" [+]")
	}

	info := fmt.Sprintf(" %d/%d ", caret.Row+1, displayColumn(line, caret.Col))
	gap := max(0, m.screen.width-lipgloss.Width(left)-lipgloss.Width(info))

	return left + m.theme.StatusLineStyle.Render(strings.Repeat(" ", gap)+info)
}

// bindingHints lists the active chords, e.g. "ctrl+shift+1 timestamp".
func (m *Model) bindingHints() string {
	if m.keymap == nil || !m.gate.Ready() {
		return "waiting for editor"
	}

	hints := make([]string, 0, len(m.keymap.Controllers()))
	for _, c := range m.keymap.Controllers() {
		hints = append(hints, c.Chord().String()+" "+c.Name())
	}
	if len(hints) == 0 {
		return "no bindings"
	}
	return strings.Join(hints, " · ")
}

func (m *Model) commandLine() string {
	var line string
	switch {
	case m.err != nil:
		line = m.theme.ErrorStyle.Render(m.err.Error())
	case m.message != "":
		line = m.theme.MessageStyle.Render(m.message)
	}

	if pad := m.screen.width - lipgloss.Width(line); pad > 0 {
		line += m.theme.CommandLineStyle.Render(strings.Repeat(" ", pad))
	}
	return line
}
