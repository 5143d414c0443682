package core

import (
	"fmt"
	"log/slog"
	"time"
)

// Inserter splices a stamp into the caret line of an editor.
type Inserter struct {
	stamp   Stamp
	clock   func() time.Time
	logger  *slog.Logger
	signals chan<- Signal
}

func NewInserter(stamp Stamp, opts ...Option) *Inserter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Inserter{
		stamp:   stamp,
		clock:   o.clock,
		logger:  o.logger,
		signals: o.signals,
	}
}

// Insert writes the stamp for the current time at ed's caret.
//
// The caret line is replaced as a whole (column 0 to its old length) so the
// host records one line edit, then the caret is put right after the stamp
// and focus goes back to the editor. A missing editor or unreadable caret
// line returns ErrEditorUnavailable with nothing changed. Failures of the
// replace or caret calls are returned wrapped in ErrHostAPI.
func (in *Inserter) Insert(ed Editor) (CaretEdit, error) {
	snap, err := ReadSnapshot(ed)
	if err != nil {
		in.logger.Error("editor not found", "err", err)
		return CaretEdit{}, err
	}

	text := in.stamp(in.clock())
	edit := Splice(snap, text)

	from := Position{Row: edit.Row, Col: 0}
	to := Position{Row: edit.Row, Col: len([]rune(edit.OldLine))}
	if err := ed.ReplaceRange(edit.NewLine, from, to); err != nil {
		return edit, &Error{
			id:  ErrHostAPIId,
			err: fmt.Errorf("%w: replace line %d: %w", ErrHostAPI, edit.Row, err),
		}
	}

	if err := ed.SetCaret(Position{Row: edit.Row, Col: edit.NewCol}); err != nil {
		return edit, &Error{
			id:  ErrHostAPIId,
			err: fmt.Errorf("%w: set caret: %w", ErrHostAPI, err),
		}
	}

	ed.Focus()

	in.logger.Info("timestamp inserted", "stamp", text, "row", edit.Row, "col", edit.NewCol)
	dispatchMessage(in.signals, StampInsertedMessage, text)

	return edit, nil
}
