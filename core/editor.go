package core

import "fmt"

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (rune offset in the line)
}

// Editor is the host editor capability the inserter drives.
// Hosts implement it over their own document model; Buffer is the
// in-module implementation.
type Editor interface {
	// Caret returns the current insertion point.
	Caret() Position
	// LineText returns the full text of row, without the line break.
	LineText(row int) (string, error)
	// ReplaceRange replaces the text between from and to (exclusive) with text.
	ReplaceRange(text string, from, to Position) error
	// SetCaret moves the insertion point.
	SetCaret(pos Position) error
	// Focus gives input focus back to the editor.
	Focus()
}

// Snapshot is the caret line state read right before an insertion.
type Snapshot struct {
	Row  int
	Line string
	Col  int
}

// CaretEdit is a whole-line replacement plus the caret column to restore.
type CaretEdit struct {
	Row     int
	OldLine string
	NewLine string
	NewCol  int
}

// ReadSnapshot reads the caret and its line from ed.
//
// A nil editor, a failing LineText, or an editor that panics while being read
// (e.g. a typed nil pointer behind the interface) all yield
// ErrEditorUnavailable.
func ReadSnapshot(ed Editor) (snap Snapshot, err error) {
	if ed == nil {
		return Snapshot{}, ErrEditorUnavailable
	}

	defer func() {
		if r := recover(); r != nil {
			snap = Snapshot{}
			err = &Error{
				id:  ErrEditorUnavailableId,
				err: fmt.Errorf("%w: %v", ErrEditorUnavailable, r),
			}
		}
	}()

	caret := ed.Caret()
	line, err := ed.LineText(caret.Row)
	if err != nil {
		return Snapshot{}, &Error{
			id:  ErrEditorUnavailableId,
			err: fmt.Errorf("%w: line %d: %w", ErrEditorUnavailable, caret.Row, err),
		}
	}

	return Snapshot{Row: caret.Row, Line: line, Col: caret.Col}, nil
}

// Splice inserts text at the snapshot's caret. Col is clamped to the line.
func Splice(snap Snapshot, text string) CaretEdit {
	line := []rune(snap.Line)
	col := min(max(snap.Col, 0), len(line))

	newLine := make([]rune, 0, len(line)+len(text))
	newLine = append(newLine, line[:col]...)
	newLine = append(newLine, []rune(text)...)
	newLine = append(newLine, line[col:]...)

	return CaretEdit{
		Row:     snap.Row,
		OldLine: snap.Line,
		NewLine: string(newLine),
		NewCol:  col + len([]rune(text)),
	}
}
