package adapter_tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ionut-t/stamper/core"
)

// Bridge feeds tcell events to a stamp keymap. Hosts built directly on a
// tcell screen call HandleEvent from their PollEvent loop before doing their
// own key handling.
type Bridge struct {
	keymap *core.Keymap
	gate   *core.ReadyGate
}

// NewBridge binds keymap to gate. gate may be nil when the keymap is already
// bound elsewhere.
func NewBridge(keymap *core.Keymap, gate *core.ReadyGate) *Bridge {
	if gate != nil {
		keymap.Bind(gate)
	}
	return &Bridge{keymap: keymap, gate: gate}
}

// HandleEvent observes the ready gate and offers key events to the keymap.
// It reports whether a controller consumed the event.
func (b *Bridge) HandleEvent(ev tcell.Event) (bool, error) {
	if b.gate != nil {
		b.gate.Observe()
	}

	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false, nil
	}
	return b.keymap.HandleKey(ConvertKey(key))
}

// Close detaches the keymap and stops observing.
func (b *Bridge) Close() {
	b.keymap.Dispose()
	if b.gate != nil {
		b.gate.Disconnect()
	}
}
