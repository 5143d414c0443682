package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderLoad(t *testing.T) {
	path := writeFile(t, "config.toml", `log_level = "debug"`)

	l := NewLoader(path)
	assert.Nil(t, l.Config())

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Same(t, cfg, l.Config())
	assert.Equal(t, path, l.Path())
}

func TestLoaderLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, "config.toml", `
[[bindings]]
name = "broken"
chord = "ctrl+"
format = "%Y"
`)

	_, err := NewLoader(path).Load()

	assert.ErrorContains(t, err, "validation failed")
}

func TestLoaderWatch(t *testing.T) {
	path := writeFile(t, "config.toml", `log_level = "info"`)

	l := NewLoader(path)
	_, err := l.Load()
	require.NoError(t, err)

	changed := make(chan *Config, 4)
	l.OnChange(func(cfg *Config) { changed <- cfg })

	require.NoError(t, l.Watch())
	t.Cleanup(func() { _ = l.Close() })

	require.NoError(t, os.WriteFile(path, []byte(`log_level = "debug"`), 0o644))

	select {
	case cfg := <-changed:
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "debug", l.Config().LogLevel)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not picked up")
	}
}

func TestLoaderWatchKeepsConfigOnInvalidReload(t *testing.T) {
	path := writeFile(t, "config.toml", `log_level = "info"`)

	l := NewLoader(path)
	_, err := l.Load()
	require.NoError(t, err)
	require.NoError(t, l.Watch())
	t.Cleanup(func() { _ = l.Close() })

	invalid := []byte(`
[[bindings]]
name = "date"
chord = "ctrl+"
format = "%Y"
`)
	require.NoError(t, os.WriteFile(path, invalid, 0o644))

	select {
	case err := <-l.Errors():
		assert.ErrorContains(t, err, "validate new config")
	case <-time.After(5 * time.Second):
		t.Fatal("expected a reload error")
	}

	assert.Equal(t, "info", l.Config().LogLevel)
}

func TestLoaderIgnoresOtherFiles(t *testing.T) {
	path := writeFile(t, "config.toml", `log_level = "info"`)

	l := NewLoader(path)
	_, err := l.Load()
	require.NoError(t, err)

	changed := make(chan *Config, 1)
	l.OnChange(func(cfg *Config) { changed <- cfg })
	require.NoError(t, l.Watch())
	t.Cleanup(func() { _ = l.Close() })

	other := filepath.Join(filepath.Dir(path), "notes.md")
	require.NoError(t, os.WriteFile(other, []byte("# hi"), 0o644))

	select {
	case <-changed:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(3 * debounceDelay):
	}
}

func TestLoaderClose(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, l.Close(), "closing an unwatched loader")

	l = NewLoader(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, l.Watch())
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	assert.Error(t, l.Watch(), "watching a closed loader")
}

func TestLoaderCloseEndsErrors(t *testing.T) {
	path := writeFile(t, "config.toml", `log_level = "info"`)

	l := NewLoader(path)
	_, err := l.Load()
	require.NoError(t, err)
	require.NoError(t, l.Watch())

	drained := make(chan struct{})
	go func() {
		for range l.Errors() {
		}
		close(drained)
	}()

	require.NoError(t, os.WriteFile(path, []byte(`log_level = "debug"`), 0o644))
	require.NoError(t, l.Close())

	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		t.Fatal("Errors was not closed by Close")
	}
}
