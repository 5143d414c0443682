package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	editor "github.com/ionut-t/stamper/adapter-bubbletea"
	"github.com/ionut-t/stamper/config"
	"github.com/ionut-t/stamper/core"
)

const messageDuration = 3 * time.Second

var errNoFile = errors.New("no file to save to, start with -file")

// configErrorMsg carries a failed configuration reload.
type configErrorMsg struct {
	err error
}

type Model struct {
	editor editor.Model
	file   string
	logger *slog.Logger
}

func (m Model) Init() tea.Cmd {
	return m.editor.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editor.SaveMsg:
		cmd := m.save(msg)
		return m, cmd

	case configErrorMsg:
		cmd := m.editor.DispatchError(msg.err, messageDuration)
		return m, cmd
	}

	editorModel, cmd := m.editor.Update(msg)
	m.editor = editorModel.(editor.Model)

	return m, cmd
}

func (m *Model) save(msg editor.SaveMsg) tea.Cmd {
	if msg.Path == "" {
		return m.editor.DispatchError(errNoFile, messageDuration)
	}

	path, err := expandHome(msg.Path)
	if err != nil {
		return m.editor.DispatchError(err, messageDuration)
	}

	if err := os.WriteFile(path, []byte(msg.Content), 0o644); err != nil {
		m.logger.Error("save failed", "path", path, "err", err)
		return m.editor.DispatchError(err, messageDuration)
	}

	m.editor.MarkSaved()
	m.logger.Info("file saved", "path", path, "bytes", len(msg.Content))
	return m.editor.DispatchMessage(fmt.Sprintf("file saved to %s", msg.Path), messageDuration)
}

func (m Model) View() tea.View {
	return m.editor.View()
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}

// newModel builds the editor for file with the loader's current bindings.
func newModel(loader *config.Loader, file string, logger *slog.Logger) (Model, error) {
	var content []byte
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Model{}, fmt.Errorf("read %s: %w", file, err)
		}
		content = data
	}

	opts := []editor.Option{editor.WithLogger(logger), editor.WithPath(file)}
	if ext := strings.TrimPrefix(filepath.Ext(file), "."); ext != "" && ext != "md" {
		opts = append(opts, editor.WithLanguage(ext, "monokai"))
	}

	ed := editor.New(content, opts...)
	ed.SetPlaceholder("press a chord to insert a stamp")

	km, err := loader.Config().Keymap(core.WithSignals(ed.Signals()), core.WithLogger(logger))
	if err != nil {
		return Model{}, err
	}
	ed.SetKeymap(km)

	return Model{editor: ed, file: file, logger: logger}, nil
}

func runEditor(loader *config.Loader, file string, logger *slog.Logger) error {
	m, err := newModel(loader, file, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)

	signals := m.editor.Signals()
	loader.OnChange(func(cfg *config.Config) {
		km, err := cfg.Keymap(core.WithSignals(signals), core.WithLogger(logger))
		if err != nil {
			logger.Error("reloaded bindings rejected", "err", err)
			p.Send(configErrorMsg{err: err})
			return
		}
		logger.Info("bindings reloaded", "count", len(cfg.Bindings))
		p.Send(editor.KeymapMsg{Keymap: km})
	})

	if err := loader.Watch(); err != nil {
		logger.Warn("config hot reload disabled", "path", loader.Path(), "err", err)
	} else {
		defer loader.Close()
		go func() {
			for err := range loader.Errors() {
				logger.Warn("config reload failed", "err", err)
				p.Send(configErrorMsg{err: err})
			}
		}()
	}

	_, err = p.Run()
	return err
}
