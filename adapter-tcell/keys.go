package adapter_tcell

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/ionut-t/stamper/core"
)

// ConvertKey converts a tcell key event to a core.KeyEvent.
//
// tcell reports plain ctrl+letter presses as KeyCtrlA..KeyCtrlZ; these come
// back as the lower-case letter with ModCtrl so they match "ctrl+<letter>"
// chords.
func ConvertKey(ev *tcell.EventKey) core.KeyEvent {
	out := core.KeyEvent{Modifiers: convertMod(ev.Modifiers())}

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		out.Rune = ev.Rune()
		if out.Rune == ' ' {
			out.Key = core.KeySpace
		}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		out.Rune = 'a' + rune(k-tcell.KeyCtrlA)
		out.Modifiers |= core.ModCtrl
	case k == tcell.KeyCtrlSpace:
		out.Key = core.KeySpace
		out.Rune = ' '
		out.Modifiers |= core.ModCtrl
	default:
		out.Key = convertKeyCode(k)
		if out.Key == core.KeyTab {
			out.Rune = '\t'
		}
	}

	if out.Key == core.KeyUnknown && !unicode.IsPrint(out.Rune) {
		out.Rune = 0
	}

	return out
}

func convertKeyCode(k tcell.Key) core.KeyCode {
	switch k {
	case tcell.KeyEnter:
		return core.KeyEnter
	case tcell.KeyTab:
		return core.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KeyBackspace
	case tcell.KeyEscape:
		return core.KeyEscape
	case tcell.KeyUp:
		return core.KeyUp
	case tcell.KeyDown:
		return core.KeyDown
	case tcell.KeyLeft:
		return core.KeyLeft
	case tcell.KeyRight:
		return core.KeyRight
	case tcell.KeyHome:
		return core.KeyHome
	case tcell.KeyEnd:
		return core.KeyEnd
	case tcell.KeyPgUp:
		return core.KeyPageUp
	case tcell.KeyPgDn:
		return core.KeyPageDown
	case tcell.KeyDelete:
		return core.KeyDelete
	case tcell.KeyInsert:
		return core.KeyInsert
	default:
		return core.KeyUnknown
	}
}

func convertMod(m tcell.ModMask) core.KeyModifiers {
	var result core.KeyModifiers
	if m&tcell.ModShift != 0 {
		result |= core.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= core.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= core.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= core.ModMeta
	}
	return result
}
