package core

type Signal any

// MessageSignal carries a success notification, e.g. an inserted stamp.
type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

// ReadySignal is sent once when a keymap gets attached to its editor.
type ReadySignal struct {
	bindings int
}

func (r ReadySignal) Value() int {
	return r.bindings
}

// NewSignals returns a buffered channel for keymap notifications.
func NewSignals() chan Signal {
	return make(chan Signal, 100)
}

func dispatchSignal(ch chan<- Signal, signal Signal) {
	if ch == nil {
		return
	}
	select {
	case ch <- signal:
	default: // Ignore if the channel is full
	}
}
