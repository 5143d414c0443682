package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		text string
		want Chord
	}{
		{"ctrl+shift+1", Chord{Key: "1", Ctrl: true, Shift: true}},
		{"ctrl+alt+w", Chord{Key: "w", Ctrl: true, Alt: true}},
		{"Ctrl+Shift+T", Chord{Key: "t", Ctrl: true, Shift: true}},
		{"meta+k", Chord{Key: "k", Meta: true}},
		{"x", Chord{Key: "x"}},
		{"ctrl + s", Chord{Key: "s", Ctrl: true}},
		{"ctrl+enter", Chord{Key: "enter", Ctrl: true}},
		{"ctrl+ ", Chord{Key: "space", Ctrl: true}},
		{" ", Chord{Key: "space"}},
		{"alt+space", Chord{Key: "space", Alt: true}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseChord(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChordIgnoresUnknownModifiers(t *testing.T) {
	got, err := ParseChord("cmd+hyper+ctrl+x")
	require.NoError(t, err)

	assert.Equal(t, "x", got.Key)
	assert.True(t, got.Ctrl)
	assert.False(t, got.Meta, "cmd is not an alias for meta")
	assert.Equal(t, []string{"cmd", "hyper"}, got.Ignored)
}

func TestParseChordWithoutKey(t *testing.T) {
	for _, text := range []string{"", "ctrl+", "ctrl+shift+", "+", "ctrl++"} {
		_, err := ParseChord(text)
		assert.ErrorIs(t, err, ErrInvalidChord, "text %q", text)
	}
}

func TestChordBlankKeyIsSpace(t *testing.T) {
	chord := MustParseChord("ctrl+ ")

	assert.True(t, chord.Matches(KeyEvent{Key: KeySpace, Rune: ' ', Modifiers: ModCtrl}))
	assert.False(t, chord.Matches(KeyEvent{Key: KeySpace, Rune: ' '}))
	assert.Equal(t, "ctrl+space", chord.String())
}

func TestChordString(t *testing.T) {
	assert.Equal(t, "ctrl+shift+1", MustParseChord("shift+ctrl+1").String())
	assert.Equal(t, "alt+meta+w", MustParseChord("meta+alt+W").String())
	assert.Equal(t, ModCtrl|ModShift, MustParseChord("ctrl+shift+1").Modifiers())
}

func TestChordMatches(t *testing.T) {
	chord := MustParseChord("ctrl+shift+1")

	assert.True(t, chord.Matches(KeyEvent{Rune: '1', Modifiers: ModCtrl | ModShift}))
	assert.False(t, chord.Matches(KeyEvent{Rune: '2', Modifiers: ModCtrl | ModShift}))
	assert.False(t, chord.Matches(KeyEvent{Rune: '1', Modifiers: ModCtrl}))
	assert.False(t, chord.Matches(KeyEvent{Rune: '1'}))
}

func TestChordMatchesIsCaseInsensitive(t *testing.T) {
	chord := MustParseChord("ctrl+alt+w")

	assert.True(t, chord.Matches(KeyEvent{Rune: 'w', Modifiers: ModCtrl | ModAlt}))
	assert.True(t, chord.Matches(KeyEvent{Rune: 'W', Modifiers: ModCtrl | ModAlt}))
}

func TestChordMatchesSpecialKeys(t *testing.T) {
	chord := MustParseChord("ctrl+enter")

	assert.True(t, chord.Matches(KeyEvent{Key: KeyEnter, Modifiers: ModCtrl}))
	assert.False(t, chord.Matches(KeyEvent{Key: KeyTab, Modifiers: ModCtrl}))
}

// Flipping any single modifier of a matching event must break the match.
func TestChordMatchesExactModifierSet(t *testing.T) {
	chords := []string{"w", "ctrl+w", "ctrl+shift+w", "ctrl+alt+w", "alt+meta+w", "ctrl+shift+alt+meta+w"}
	flags := []KeyModifiers{ModCtrl, ModShift, ModAlt, ModMeta}

	for _, text := range chords {
		chord := MustParseChord(text)
		ev := KeyEvent{Rune: 'w', Modifiers: chord.Modifiers()}
		require.True(t, chord.Matches(ev), text)

		for _, flag := range flags {
			flipped := ev
			flipped.Modifiers ^= flag
			assert.False(t, chord.Matches(flipped), "%s with %s", text, flipped)
		}

		other := ev
		other.Rune = 'q'
		assert.False(t, chord.Matches(other), text)
	}
}

func TestKeyEventName(t *testing.T) {
	assert.Equal(t, "a", KeyEvent{Rune: 'A'}.Name())
	assert.Equal(t, "1", KeyEvent{Rune: '1', Modifiers: ModShift}.Name())
	assert.Equal(t, "space", KeyEvent{Key: KeySpace, Rune: ' '}.Name())
	assert.Equal(t, "pagedown", KeyEvent{Key: KeyPageDown}.Name())
	assert.Equal(t, "", KeyEvent{}.Name())
}

func TestKeyEventString(t *testing.T) {
	assert.Equal(t, "Ctrl+Shift+1", KeyEvent{Rune: '1', Modifiers: ModCtrl | ModShift}.String())
	assert.Equal(t, "Alt+Meta+Enter", KeyEvent{Key: KeyEnter, Modifiers: ModAlt | ModMeta}.String())
	assert.Equal(t, "Unknown", KeyEvent{}.String())
}
