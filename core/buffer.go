package core

import (
	"fmt"
	"strings"
)

// Buffer is the in-module host editor: a rune line buffer with a caret,
// focus state and a journal of applied changes.
type Buffer interface {
	Editor

	// Content access
	Lines() []string           // Get lines as strings
	LineCount() int            // Get number of lines
	LineRuneCount(row int) int // Get rune count for a line
	Content() string           // Get entire buffer content as a string
	SavedContent() string      // Content as of the last SaveContent
	SetContent(content []byte) // Replace content, reset caret and journal
	SaveContent()              // Mark the current content as saved
	IsModified() bool          // Check if content differs from the saved one
	IsEmpty() bool             // Check if buffer is a single empty line

	// Modification
	InsertRunesAt(row, col int, runes []rune) error // Insert runes (handles newlines)
	DeleteRunesAt(row, col int, count int) error    // Delete runes (handles newlines)

	// Caret movement
	MoveLeft() error
	MoveRight() error
	MoveUp() error
	MoveDown() error
	MoveToLineStart()
	MoveToLineEnd()

	// Focus
	Focused() bool
	Blur()

	// Changes returns the journal, oldest first.
	Changes() []Change
}

// textBuffer implementation using runes for better unicode handling
type textBuffer struct {
	lines        [][]rune // Store lines as slices of runes
	cursor       Cursor
	focused      bool
	savedContent string
	changes      []Change
	maxChanges   int
}

// NewBuffer creates a new empty buffer
func NewBuffer() Buffer {
	return &textBuffer{
		lines:      [][]rune{{}}, // Start with one empty line
		maxChanges: 1000,
	}
}

// NewBufferFromBytes creates a buffer holding content, marked as saved.
func NewBufferFromBytes(content []byte) Buffer {
	b := NewBuffer()
	b.SetContent(content)
	b.SaveContent()
	return b
}

func (b *textBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

func (b *textBuffer) SetContent(content []byte) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	parts := strings.Split(text, "\n")

	b.lines = make([][]rune, len(parts))
	for i, p := range parts {
		b.lines[i] = []rune(p)
	}

	b.cursor = Cursor{}
	b.changes = nil
}

func (b *textBuffer) Lines() []string {
	linesStr := make([]string, len(b.lines))
	for i, r := range b.lines {
		linesStr[i] = string(r)
	}
	return linesStr
}

func (b *textBuffer) LineCount() int {
	return len(b.lines)
}

func (b *textBuffer) LineRuneCount(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// Content returns the entire buffer content as a string
func (b *textBuffer) Content() string {
	return strings.Join(b.Lines(), "\n")
}

func (b *textBuffer) SavedContent() string {
	return b.savedContent
}

func (b *textBuffer) SaveContent() {
	b.savedContent = b.Content()
}

func (b *textBuffer) IsModified() bool {
	return b.savedContent != b.Content()
}

// --- Editor capability ---

func (b *textBuffer) Caret() Position {
	return b.cursor.Position
}

func (b *textBuffer) LineText(row int) (string, error) {
	if row < 0 || row >= len(b.lines) {
		return "", fmt.Errorf("LineText: %w: row %d out of bounds [0, %d)", ErrInvalidPosition, row, len(b.lines))
	}
	return string(b.lines[row]), nil
}

// ReplaceRange replaces [from, to) with text and journals it as one change.
func (b *textBuffer) ReplaceRange(text string, from, to Position) error {
	if err := b.checkPosition("ReplaceRange", from); err != nil {
		return err
	}
	if err := b.checkPosition("ReplaceRange", to); err != nil {
		return err
	}
	if to.Row < from.Row || (to.Row == from.Row && to.Col < from.Col) {
		return fmt.Errorf("ReplaceRange: %w: end %v before start %v", ErrInvalidPosition, to, from)
	}

	caret := b.cursor.Position
	before := b.textRange(from, to)
	b.deleteRange(from, to)
	end := b.insertText(from, []rune(text))

	b.record(Change{
		Kind:        ReplaceChange,
		Start:       from,
		End:         end,
		Before:      before,
		After:       text,
		CaretBefore: caret,
	})

	return nil
}

// SetCaret sets the caret position, clamping it into the buffer.
func (b *textBuffer) SetCaret(pos Position) error {
	b.cursor.Position = b.clamp(pos)
	b.cursor.Preferred = b.cursor.Position.Col
	return nil
}

func (b *textBuffer) Focus() {
	b.focused = true
}

func (b *textBuffer) Focused() bool {
	return b.focused
}

func (b *textBuffer) Blur() {
	b.focused = false
}

func (b *textBuffer) Changes() []Change {
	return b.changes
}

// --- Buffer Modification ---

// InsertRunesAt inserts runes at the specified position. Handles newlines correctly.
func (b *textBuffer) InsertRunesAt(row, col int, runes []rune) error {
	at := Position{Row: row, Col: col}
	if err := b.checkPosition("InsertRunesAt", at); err != nil {
		return err
	}

	caret := b.cursor.Position
	end := b.insertText(at, runes)
	b.record(Change{
		Kind:        InsertChange,
		Start:       at,
		End:         end,
		After:       string(runes),
		CaretBefore: caret,
	})

	return nil
}

// DeleteRunesAt deletes count runes starting at the specified position.
// A line break counts as one rune, so deleting past the end of a line
// merges it with the next one.
func (b *textBuffer) DeleteRunesAt(row, col int, count int) error {
	if count <= 0 {
		return nil // Nothing to delete
	}

	from := Position{Row: row, Col: col}
	if err := b.checkPosition("DeleteRunesAt", from); err != nil {
		return err
	}

	to := from
	for remaining := count; remaining > 0; {
		available := len(b.lines[to.Row]) - to.Col
		if remaining <= available {
			to.Col += remaining
			break
		}
		if to.Row == len(b.lines)-1 {
			// Deletion runs past the end of the buffer
			to.Col = len(b.lines[to.Row])
			break
		}
		remaining -= available + 1 // +1 for the line break
		to = Position{Row: to.Row + 1, Col: 0}
	}

	caret := b.cursor.Position
	before := b.textRange(from, to)
	b.deleteRange(from, to)
	b.record(Change{
		Kind:        DeleteChange,
		Start:       from,
		End:         to,
		Before:      before,
		CaretBefore: caret,
	})

	return nil
}

func (b *textBuffer) checkPosition(op string, pos Position) error {
	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return fmt.Errorf("%s: %w: row %d out of bounds [0, %d)", op, ErrInvalidPosition, pos.Row, len(b.lines))
	}
	if lineLen := len(b.lines[pos.Row]); pos.Col < 0 || pos.Col > lineLen {
		return fmt.Errorf("%s: %w: col %d out of bounds [0, %d]", op, ErrInvalidPosition, pos.Col, lineLen)
	}
	return nil
}

// textRange returns the text in [from, to), line breaks included.
func (b *textBuffer) textRange(from, to Position) string {
	if from.Row == to.Row {
		return string(b.lines[from.Row][from.Col:to.Col])
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[from.Row][from.Col:]))
	for r := from.Row + 1; r < to.Row; r++ {
		sb.WriteRune('\n')
		sb.WriteString(string(b.lines[r]))
	}
	sb.WriteRune('\n')
	sb.WriteString(string(b.lines[to.Row][:to.Col]))

	return sb.String()
}

// deleteRange removes [from, to), joining the boundary lines.
func (b *textBuffer) deleteRange(from, to Position) {
	head := b.lines[from.Row][:from.Col]
	tail := b.lines[to.Row][to.Col:]

	merged := make([]rune, 0, len(head)+len(tail))
	merged = append(merged, head...)
	merged = append(merged, tail...)

	lines := make([][]rune, 0, len(b.lines)-(to.Row-from.Row))
	lines = append(lines, b.lines[:from.Row]...)
	lines = append(lines, merged)
	lines = append(lines, b.lines[to.Row+1:]...)
	b.lines = lines
}

// insertText inserts runes at pos and returns the position right after them.
func (b *textBuffer) insertText(pos Position, runes []rune) Position {
	line := b.lines[pos.Row]
	parts := strings.Split(string(runes), "\n")

	if len(parts) == 1 {
		// Simple insertion within the line (no newlines)
		newLine := make([]rune, 0, len(line)+len(runes))
		newLine = append(newLine, line[:pos.Col]...)
		newLine = append(newLine, runes...)
		newLine = append(newLine, line[pos.Col:]...)
		b.lines[pos.Row] = newLine
		return Position{Row: pos.Row, Col: pos.Col + len(runes)}
	}

	head := line[:pos.Col]
	tail := line[pos.Col:]

	newLines := make([][]rune, len(parts))
	newLines[0] = append(append([]rune{}, head...), []rune(parts[0])...)
	for i := 1; i < len(parts); i++ {
		newLines[i] = []rune(parts[i])
	}
	last := len(parts) - 1
	endCol := len(newLines[last])
	newLines[last] = append(newLines[last], tail...)

	lines := make([][]rune, 0, len(b.lines)+last)
	lines = append(lines, b.lines[:pos.Row]...)
	lines = append(lines, newLines...)
	lines = append(lines, b.lines[pos.Row+1:]...)
	b.lines = lines

	return Position{Row: pos.Row + last, Col: endCol}
}

func (b *textBuffer) clamp(pos Position) Position {
	pos.Row = min(max(pos.Row, 0), max(len(b.lines)-1, 0))
	pos.Col = min(max(pos.Col, 0), b.LineRuneCount(pos.Row))
	return pos
}

func (b *textBuffer) record(c Change) {
	b.changes = append(b.changes, c)
	if len(b.changes) > b.maxChanges {
		b.changes = b.changes[len(b.changes)-b.maxChanges:]
	}
}
