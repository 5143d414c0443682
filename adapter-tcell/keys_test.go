package adapter_tcell

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ionut-t/stamper/core"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.KeyEvent
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), core.KeyEvent{Rune: 'a'}},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), core.KeyEvent{Rune: 'A'}},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModCtrl), core.KeyEvent{Rune: 's', Modifiers: core.ModCtrl}},
		{"ctrl key code", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), core.KeyEvent{Rune: 'w', Modifiers: core.ModCtrl}},
		{"ctrl shift digit", tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModCtrl|tcell.ModShift), core.KeyEvent{Rune: '1', Modifiers: core.ModCtrl | core.ModShift}},
		{"ctrl alt", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModCtrl|tcell.ModAlt), core.KeyEvent{Rune: 'w', Modifiers: core.ModCtrl | core.ModAlt}},
		{"meta", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModMeta), core.KeyEvent{Rune: 'k', Modifiers: core.ModMeta}},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.KeyEvent{Key: core.KeySpace, Rune: ' '}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.KeyEvent{Key: core.KeyEnter}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), core.KeyEvent{Key: core.KeyTab, Rune: '\t'}},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), core.KeyEvent{Key: core.KeyBackspace}},
		{"arrow with shift", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), core.KeyEvent{Key: core.KeyLeft, Modifiers: core.ModShift}},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), core.KeyEvent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertKey(tt.ev))
		})
	}
}
