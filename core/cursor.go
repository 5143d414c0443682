package core

// Cursor represents the caret for editing operations
type Cursor struct {
	Position  Position // Current position (row, column)
	Preferred int      // Preferred column for vertical movement (sticky column)
}

// MoveLeft moves the caret one rune left, wrapping to the end of the previous line.
func (b *textBuffer) MoveLeft() error {
	pos := b.cursor.Position
	switch {
	case pos.Col > 0:
		pos.Col--
	case pos.Row > 0:
		pos.Row--
		pos.Col = b.LineRuneCount(pos.Row)
	default:
		return ErrStartOfBuffer
	}

	b.cursor = Cursor{Position: pos, Preferred: pos.Col}
	return nil
}

// MoveRight moves the caret one rune right, wrapping to the start of the next line.
func (b *textBuffer) MoveRight() error {
	pos := b.cursor.Position
	switch {
	case pos.Col < b.LineRuneCount(pos.Row):
		pos.Col++
	case pos.Row < len(b.lines)-1:
		pos.Row++
		pos.Col = 0
	default:
		return ErrEndOfBuffer
	}

	b.cursor = Cursor{Position: pos, Preferred: pos.Col}
	return nil
}

// MoveUp moves the caret one line up, keeping the preferred column when the
// line is long enough.
func (b *textBuffer) MoveUp() error {
	if b.cursor.Position.Row <= 0 {
		return ErrStartOfBuffer
	}
	b.moveVertical(-1)
	return nil
}

// MoveDown moves the caret one line down, keeping the preferred column when
// the line is long enough.
func (b *textBuffer) MoveDown() error {
	if b.cursor.Position.Row >= len(b.lines)-1 {
		return ErrEndOfBuffer
	}
	b.moveVertical(1)
	return nil
}

func (b *textBuffer) moveVertical(delta int) {
	row := b.cursor.Position.Row + delta
	col := min(b.cursor.Preferred, b.LineRuneCount(row))
	b.cursor.Position = Position{Row: row, Col: col}
}

func (b *textBuffer) MoveToLineStart() {
	b.cursor.Position.Col = 0
	b.cursor.Preferred = 0
}

func (b *textBuffer) MoveToLineEnd() {
	b.cursor.Position.Col = b.LineRuneCount(b.cursor.Position.Row)
	b.cursor.Preferred = b.cursor.Position.Col
}
