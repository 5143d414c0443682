package core

import (
	"fmt"
	"strings"
	"unicode"
)

// --- KeyCode, KeyModifiers, Key ---

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Editing keys
	KeyDelete
	KeyInsert
)

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyEscape:    "escape",
	KeySpace:     "space",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
}

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
	ModMeta // Cmd on macOS, Super/Win elsewhere
)

// Has reports whether all bits of mod are set.
func (m KeyModifiers) Has(mod KeyModifiers) bool {
	return m&mod == mod
}

// KeyEvent represents a keyboard input event
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

// Name returns the primary key identifier, lower-cased.
// Special keys use their name ("enter", "space"), character keys their rune.
func (k KeyEvent) Name() string {
	if k.Key != KeyUnknown {
		if name, ok := keyNames[k.Key]; ok {
			return name
		}
	}
	if k.Rune != 0 {
		return string(unicode.ToLower(k.Rune))
	}
	return ""
}

// String returns a string representation of a Key
func (k KeyEvent) String() string {
	var parts []string

	if k.Modifiers.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if k.Modifiers.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if k.Modifiers.Has(ModMeta) {
		parts = append(parts, "Meta")
	}

	switch {
	case k.Key != KeyUnknown:
		if name, ok := keyNames[k.Key]; ok {
			parts = append(parts, strings.ToUpper(name[:1])+name[1:])
		} else {
			parts = append(parts, fmt.Sprintf("SpecialKey(%d)", k.Key))
		}
	case k.Rune != 0:
		parts = append(parts, string(k.Rune))
	default:
		parts = append(parts, "Unknown")
	}

	return strings.Join(parts, "+")
}
