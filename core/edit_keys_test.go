package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeKeys(t *testing.T, buf Buffer, keys ...KeyEvent) {
	t.Helper()
	for _, k := range keys {
		_, err := ApplyKey(buf, k)
		require.NoError(t, err, k.String())
	}
}

func runes(s string) []KeyEvent {
	keys := make([]KeyEvent, 0, len(s))
	for _, r := range s {
		keys = append(keys, KeyEvent{Rune: r})
	}
	return keys
}

func TestApplyKeyTyping(t *testing.T) {
	buf := NewBuffer()

	typeKeys(t, buf, runes("hi")...)
	typeKeys(t, buf, KeyEvent{Key: KeySpace, Rune: ' '}, KeyEvent{Key: KeyTab})
	typeKeys(t, buf, KeyEvent{Key: KeyEnter})
	typeKeys(t, buf, runes("ok")...)

	assert.Equal(t, "hi \t\nok", buf.Content())
	assert.Equal(t, Position{Row: 1, Col: 2}, buf.Caret())
}

func TestApplyKeyBackspaceMergesLines(t *testing.T) {
	buf := NewBufferFromBytes([]byte("ab\ncd"))
	require.NoError(t, buf.SetCaret(Position{Row: 1}))

	typeKeys(t, buf, KeyEvent{Key: KeyBackspace})
	assert.Equal(t, "abcd", buf.Content())
	assert.Equal(t, Position{Col: 2}, buf.Caret())

	typeKeys(t, buf, KeyEvent{Key: KeyBackspace})
	assert.Equal(t, "acd", buf.Content())

	require.NoError(t, buf.SetCaret(Position{}))
	typeKeys(t, buf, KeyEvent{Key: KeyBackspace})
	assert.Equal(t, "acd", buf.Content())
}

func TestApplyKeyDelete(t *testing.T) {
	buf := NewBufferFromBytes([]byte("ab\ncd"))
	require.NoError(t, buf.SetCaret(Position{Col: 2}))

	typeKeys(t, buf, KeyEvent{Key: KeyDelete})
	assert.Equal(t, "abcd", buf.Content())
}

func TestApplyKeyMovement(t *testing.T) {
	buf := NewBufferFromBytes([]byte("abc\nde"))

	typeKeys(t, buf, KeyEvent{Key: KeyEnd}, KeyEvent{Key: KeyDown})
	assert.Equal(t, Position{Row: 1, Col: 2}, buf.Caret())

	typeKeys(t, buf, KeyEvent{Key: KeyHome}, KeyEvent{Key: KeyLeft})
	assert.Equal(t, Position{Row: 0, Col: 3}, buf.Caret())

	typeKeys(t, buf, KeyEvent{Key: KeyRight}, KeyEvent{Key: KeyUp})
	assert.Equal(t, Position{Row: 0, Col: 0}, buf.Caret())

	// Movement at the buffer edges is not an error.
	typeKeys(t, buf, KeyEvent{Key: KeyUp}, KeyEvent{Key: KeyLeft})
}

func TestApplyKeyIgnoresShortcuts(t *testing.T) {
	buf := NewBuffer()

	for _, k := range []KeyEvent{
		{Rune: 's', Modifiers: ModCtrl},
		{Rune: '1', Modifiers: ModCtrl | ModShift},
		{Rune: 'w', Modifiers: ModAlt},
		{Rune: 'k', Modifiers: ModMeta},
		{Key: KeyEscape},
		{},
	} {
		handled, err := ApplyKey(buf, k)
		require.NoError(t, err)
		assert.False(t, handled, k.String())
	}

	handled, err := ApplyKey(buf, KeyEvent{Rune: '!', Modifiers: ModShift})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "!", buf.Content())
}
