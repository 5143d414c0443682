package core

// ApplyKey applies a plain editing key to buffer: printable runes, enter,
// tab, backspace, delete and caret movement. It reports whether the key was
// an editing key. Keys with ctrl, alt or meta held are never text.
func ApplyKey(buffer Buffer, key KeyEvent) (bool, error) {
	pos := buffer.Caret()
	row, col := pos.Row, pos.Col

	switch key.Key {
	case KeyBackspace:
		if col > 0 {
			// Delete character before cursor
			if err := buffer.DeleteRunesAt(row, col-1, 1); err != nil {
				return true, err
			}
			return true, buffer.SetCaret(Position{Row: row, Col: col - 1})
		}
		if row > 0 {
			// At beginning of line, merge with previous line
			prevLineLen := buffer.LineRuneCount(row - 1)
			if err := buffer.DeleteRunesAt(row-1, prevLineLen, 1); err != nil {
				return true, err
			}
			return true, buffer.SetCaret(Position{Row: row - 1, Col: prevLineLen})
		}
		return true, nil

	case KeyDelete:
		return true, buffer.DeleteRunesAt(row, col, 1)

	case KeyEnter:
		if err := buffer.InsertRunesAt(row, col, []rune{'\n'}); err != nil {
			return true, err
		}
		return true, buffer.SetCaret(Position{Row: row + 1, Col: 0})

	case KeyTab:
		return true, insertRune(buffer, row, col, '\t')

	case KeySpace:
		return true, insertRune(buffer, row, col, ' ')

	case KeyLeft:
		buffer.MoveLeft()
		return true, nil

	case KeyRight:
		buffer.MoveRight()
		return true, nil

	case KeyUp:
		buffer.MoveUp()
		return true, nil

	case KeyDown:
		buffer.MoveDown()
		return true, nil

	case KeyHome:
		buffer.MoveToLineStart()
		return true, nil

	case KeyEnd:
		buffer.MoveToLineEnd()
		return true, nil
	}

	if key.Rune == 0 || key.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0 {
		// Ignore unknown special keys and shortcuts
		return false, nil
	}

	return true, insertRune(buffer, row, col, key.Rune)
}

func insertRune(buffer Buffer, row, col int, r rune) error {
	if err := buffer.InsertRunesAt(row, col, []rune{r}); err != nil {
		return err
	}
	return buffer.SetCaret(Position{Row: row, Col: col + 1})
}
