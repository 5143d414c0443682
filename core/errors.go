package core

import "errors"

var (
	ErrInvalidChord      = errors.New("invalid chord")
	ErrInvalidVariant    = errors.New("invalid stamp variant")
	ErrEmptyFormat       = errors.New("empty date format")
	ErrEditorUnavailable = errors.New("editor unavailable")
	ErrHostAPI           = errors.New("host editor call failed")
	ErrInvalidPosition   = errors.New("invalid position")
	ErrGateDisconnected  = errors.New("ready gate disconnected")
	ErrStartOfBuffer     = errors.New("start of buffer")
	ErrEndOfBuffer       = errors.New("end of buffer")
)

type ErrorId int

const (
	ErrInvalidChordId ErrorId = iota
	ErrInvalidVariantId
	ErrEmptyFormatId
	ErrEditorUnavailableId
	ErrHostAPIId
	ErrInvalidPositionId
	ErrGateDisconnectedId
	ErrStartOfBufferId
	ErrEndOfBufferId
)

// Error pairs an error with the id consumers switch on.
type Error struct {
	id  ErrorId
	err error
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func (e *Error) ID() ErrorId { return e.id }
