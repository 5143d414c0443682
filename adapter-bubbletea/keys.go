package adapter_bubbletea

import (
	"unicode"
	"unicode/utf8"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/ionut-t/stamper/core"
)

// KeyMap holds the host commands. Chords from the stamp keymap take
// precedence over these.
type KeyMap struct {
	Save key.Binding
	Quit key.Binding
}

var DefaultKeyMap = KeyMap{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q", "ctrl+c"),
		key.WithHelp("ctrl+q", "quit"),
	),
}

// convertBubbleKey converts a bubbletea key press to a core.KeyEvent.
//
// With ctrl, alt or meta held the rune is the unshifted base key, so
// ctrl+shift+1 arrives as '1' and not '!'. Otherwise it is the typed text.
func convertBubbleKey(msg tea.KeyPressMsg) core.KeyEvent {
	k := msg.Key()
	ev := core.KeyEvent{}

	if k.Mod.Contains(tea.ModCtrl) {
		ev.Modifiers |= core.ModCtrl
	}
	if k.Mod.Contains(tea.ModAlt) {
		ev.Modifiers |= core.ModAlt
	}
	if k.Mod.Contains(tea.ModShift) {
		ev.Modifiers |= core.ModShift
	}
	if k.Mod.Contains(tea.ModMeta) || k.Mod.Contains(tea.ModSuper) {
		ev.Modifiers |= core.ModMeta
	}

	switch k.Code {
	case tea.KeyEnter:
		ev.Key = core.KeyEnter
	case tea.KeySpace:
		ev.Key = core.KeySpace
		ev.Rune = ' '
	case tea.KeyEscape:
		ev.Key = core.KeyEscape
	case tea.KeyBackspace:
		ev.Key = core.KeyBackspace
	case tea.KeyTab:
		ev.Key = core.KeyTab
		ev.Rune = '\t'
	case tea.KeyUp:
		ev.Key = core.KeyUp
	case tea.KeyDown:
		ev.Key = core.KeyDown
	case tea.KeyLeft:
		ev.Key = core.KeyLeft
	case tea.KeyRight:
		ev.Key = core.KeyRight
	case tea.KeyHome:
		ev.Key = core.KeyHome
	case tea.KeyEnd:
		ev.Key = core.KeyEnd
	case tea.KeyPgUp:
		ev.Key = core.KeyPageUp
	case tea.KeyPgDown:
		ev.Key = core.KeyPageDown
	case tea.KeyDelete:
		ev.Key = core.KeyDelete
	case tea.KeyInsert:
		ev.Key = core.KeyInsert
	default:
		ev.Rune = keyRune(k, ev.Modifiers)
	}

	return ev
}

func keyRune(k tea.Key, mods core.KeyModifiers) rune {
	shortcut := mods&(core.ModCtrl|core.ModAlt|core.ModMeta) != 0

	if !shortcut && k.Text != "" {
		r, _ := utf8.DecodeRuneInString(k.Text)
		return r
	}
	if unicode.IsPrint(k.Code) {
		return k.Code
	}
	return 0
}
