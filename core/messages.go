package core

import "log"

var (
	EmptyMessage         = ""
	StampInsertedMessage = "stamp inserted"
)

func dispatchMessage(ch chan<- Signal, args ...string) {
	if ch == nil {
		return
	}
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	select {
	case ch <- MessageSignal{id, value}:
	default:
		log.Println("Channel is full, unable to send message signal")
	}
}
