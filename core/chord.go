package core

import (
	"fmt"
	"slices"
	"strings"
)

// Chord is a primary key plus the exact set of modifiers that must be held.
type Chord struct {
	Key   string
	Ctrl  bool
	Shift bool
	Alt   bool
	Meta  bool

	// Ignored lists modifier tokens that were not recognized and dropped.
	Ignored []string
}

var chordModifiers = []string{"ctrl", "shift", "alt", "meta"}

// ParseChord parses a chord like "ctrl+shift+1".
//
// The text is lower-cased and split on "+". The last token is the key and
// the others are tested for ctrl, shift, alt and meta. Anything else is
// dropped without error and reported in Ignored, so "cmd+x" parses as a bare
// "x". A key token of only blanks is the space bar ("ctrl+ " is
// "ctrl+space"). The only failure is an empty key token.
func ParseChord(text string) (Chord, error) {
	tokens := strings.Split(strings.ToLower(text), "+")

	key := tokens[len(tokens)-1]
	if key == "" {
		return Chord{}, fmt.Errorf("%w: no key in %q", ErrInvalidChord, text)
	}
	if key = strings.TrimSpace(key); key == "" {
		key = "space"
	}

	mods := tokens[:len(tokens)-1]
	for i := range mods {
		mods[i] = strings.TrimSpace(mods[i])
	}

	chord := Chord{
		Key:   key,
		Ctrl:  slices.Contains(mods, "ctrl"),
		Shift: slices.Contains(mods, "shift"),
		Alt:   slices.Contains(mods, "alt"),
		Meta:  slices.Contains(mods, "meta"),
	}

	for _, m := range mods {
		if !slices.Contains(chordModifiers, m) {
			chord.Ignored = append(chord.Ignored, m)
		}
	}

	return chord, nil
}

// MustParseChord is like ParseChord but panics on error.
func MustParseChord(text string) Chord {
	c, err := ParseChord(text)
	if err != nil {
		panic(err)
	}
	return c
}

// Matches reports whether ev is this chord. Modifiers must match exactly:
// a ctrl-only chord does not fire while shift is also held.
func (c Chord) Matches(ev KeyEvent) bool {
	return strings.ToLower(ev.Name()) == c.Key &&
		ev.Modifiers.Has(ModCtrl) == c.Ctrl &&
		ev.Modifiers.Has(ModShift) == c.Shift &&
		ev.Modifiers.Has(ModAlt) == c.Alt &&
		ev.Modifiers.Has(ModMeta) == c.Meta
}

// Modifiers returns the chord's modifier set as event flags.
func (c Chord) Modifiers() KeyModifiers {
	var mods KeyModifiers
	if c.Ctrl {
		mods |= ModCtrl
	}
	if c.Shift {
		mods |= ModShift
	}
	if c.Alt {
		mods |= ModAlt
	}
	if c.Meta {
		mods |= ModMeta
	}
	return mods
}

func (c Chord) String() string {
	var parts []string
	if c.Ctrl {
		parts = append(parts, "ctrl")
	}
	if c.Shift {
		parts = append(parts, "shift")
	}
	if c.Alt {
		parts = append(parts, "alt")
	}
	if c.Meta {
		parts = append(parts, "meta")
	}
	return strings.Join(append(parts, c.Key), "+")
}
