package adapter_tcell

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/stamper/core"
)

type harness struct {
	buffer core.Buffer
	bridge *Bridge
	ready  bool
}

func newHarness(t *testing.T, content string) *harness {
	t.Helper()

	h := &harness{buffer: core.NewBufferFromBytes([]byte(content))}
	gate := core.NewReadyGate(func() (core.Editor, bool) { return h.buffer, h.ready })

	km := core.NewKeymap(
		core.WithSignals(core.NewSignals()),
		core.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		core.WithClock(func() time.Time { return time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC) }),
	)
	stamp, err := core.NewStamp(core.PlainVariant, "%Y-%m-%d")
	require.NoError(t, err)
	_, err = km.Add("date", "ctrl+shift+1", stamp)
	require.NoError(t, err)

	h.bridge = NewBridge(km, gate)
	return h
}

var chordEvent = tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModCtrl|tcell.ModShift)

func TestBridgeWaitsForReadyGate(t *testing.T) {
	h := newHarness(t, "log: ")
	require.NoError(t, h.buffer.SetCaret(core.Position{Col: 5}))

	handled, err := h.bridge.HandleEvent(chordEvent)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Equal(t, "log: ", h.buffer.Content())

	h.ready = true
	handled, err = h.bridge.HandleEvent(tcell.NewEventResize(80, 24))
	require.NoError(t, err)
	assert.False(t, handled)

	handled, err = h.bridge.HandleEvent(chordEvent)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "log: 2024-03-10", h.buffer.Content())
}

func TestBridgePassesOtherKeys(t *testing.T) {
	h := newHarness(t, "")
	h.ready = true

	handled, err := h.bridge.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModCtrl))
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Empty(t, h.buffer.Content())
}

func TestBridgeClose(t *testing.T) {
	h := newHarness(t, "")
	h.ready = true
	h.bridge.Close()

	handled, err := h.bridge.HandleEvent(chordEvent)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Empty(t, h.buffer.Content())
}
