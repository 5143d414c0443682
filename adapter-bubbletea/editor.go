package adapter_bubbletea

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ionut-t/stamper/adapter-bubbletea/highlighter"
	"github.com/ionut-t/stamper/core"
)

type Theme struct {
	StatusLineStyle        lipgloss.Style
	CommandLineStyle       lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	CursorStyle            lipgloss.Style
	PlaceholderStyle       lipgloss.Style
	HintStyle              lipgloss.Style
	ModifiedStyle          lipgloss.Style
}

var DefaultTheme = Theme{
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	CommandLineStyle:       lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(4).Align(lipgloss.Right),
	CursorStyle:            lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	PlaceholderStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	HintStyle:              lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	ModifiedStyle:          lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("220")),
}

const messageDuration = 3 * time.Second

// screen is shared by the model copies bubbletea passes around, so the
// ready gate probe sees the latest terminal size.
type screen struct {
	width  int
	height int
}

type Model struct {
	buffer         core.Buffer
	gate           *core.ReadyGate
	keymap         *core.Keymap
	signals        chan core.Signal
	logger         *slog.Logger
	keys           KeyMap
	theme          Theme
	highlighter    *highlighter.Highlighter
	screen         *screen
	topLine        int
	placeholder    string
	path           string
	message        string
	err            error
	clearMsgCancel context.CancelFunc
	showLineNumber bool
}

// StampMsg reports a stamp inserted by one of the keymap's controllers.
type StampMsg struct {
	Text string
}

// ReadyMsg is sent once, when the keymap gets attached to the buffer.
type ReadyMsg struct {
	Bindings int
}

type ErrorMsg struct {
	ID    core.ErrorId
	Error error
}

// SaveMsg asks the consumer to persist Content.
type SaveMsg struct {
	Path    string
	Content string
}

// KeymapMsg swaps the active keymap, e.g. after a configuration reload.
type KeymapMsg struct {
	Keymap *core.Keymap
}

type QuitMsg struct{}

type clearMsg struct{}

// signalMsg wraps a core signal the model has no dedicated message for.
type signalMsg struct{}

type Option func(*Model)

// WithLogger sets the logger used for host diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithPath records the file the buffer was loaded from. It is passed back in SaveMsg.
func WithPath(path string) Option {
	return func(m *Model) { m.path = path }
}

// WithLanguage enables chroma highlighting for language with the given theme.
func WithLanguage(language, theme string) Option {
	return func(m *Model) {
		if language == "" {
			m.highlighter = nil
			return
		}
		m.highlighter = highlighter.New(language, theme)
	}
}

// WithKeyMap overrides the host command bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// New returns an editor model over content. The stamp keymap stays detached
// until the terminal size is known; see SetKeymap.
func New(content []byte, opts ...Option) Model {
	buffer := core.NewBufferFromBytes(content)
	buffer.Focus()

	scr := &screen{}

	m := Model{
		buffer:         buffer,
		signals:        core.NewSignals(),
		logger:         slog.Default(),
		keys:           DefaultKeyMap,
		theme:          DefaultTheme,
		highlighter:    highlighter.New("markdown", "monokai"),
		screen:         scr,
		showLineNumber: true,
	}

	m.gate = core.NewReadyGate(func() (core.Editor, bool) {
		return buffer, scr.width > 0 && scr.height > 0
	})

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Signals is the channel keymaps built for this model must send on, via
// core.WithSignals.
func (m *Model) Signals() chan<- core.Signal {
	return m.signals
}

// SetKeymap makes km the active keymap and disposes the previous one.
// km is attached as soon as the editor is ready, immediately if it already is.
func (m *Model) SetKeymap(km *core.Keymap) {
	if m.keymap != nil {
		m.keymap.Dispose()
	}
	m.keymap = km
	if km != nil {
		km.Bind(m.gate)
	}
}

// Keymap returns the active keymap.
func (m *Model) Keymap() *core.Keymap {
	return m.keymap
}

// Buffer returns the edited buffer.
func (m *Model) Buffer() core.Buffer {
	return m.buffer
}

// Ready reports whether the keymap has been attached.
func (m *Model) Ready() bool {
	return m.gate.Ready()
}

// SetSize sets the terminal size. The first non-zero size readies the editor
// on the next Update.
func (m *Model) SetSize(width, height int) {
	m.screen.width = width
	m.screen.height = height
	m.scrollToCaret()
}

func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

func (m *Model) SetPlaceholder(placeholder string) {
	m.placeholder = placeholder
}

// HideLineNumbers controls whether to show line numbers.
func (m *Model) HideLineNumbers(hide bool) {
	m.showLineNumber = !hide
}

// Message returns the text shown in the command line: the current error if
// there is one, otherwise the current message.
func (m *Model) Message() string {
	if m.err != nil {
		return m.err.Error()
	}
	return m.message
}

// MarkSaved records the current content as saved, e.g. after handling SaveMsg.
func (m *Model) MarkSaved() {
	m.buffer.SaveContent()
}

// DispatchMessage shows message in the command line for duration.
func (m *Model) DispatchMessage(message string, duration time.Duration) tea.Cmd {
	m.message = message
	m.err = nil

	return m.dispatchClearMsg(duration)
}

// DispatchError shows err in the command line for duration.
func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.err = err
	m.message = ""

	return m.dispatchClearMsg(duration)
}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

func (m Model) Init() tea.Cmd {
	return m.listenForSignals()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))

	case KeymapMsg:
		m.SetKeymap(msg.Keymap)
		cmds = append(cmds, m.DispatchMessage("bindings reloaded", messageDuration))

	case StampMsg:
		cmds = append(cmds, m.DispatchMessage("inserted "+msg.Text, messageDuration), m.listenForSignals())

	case ReadyMsg:
		m.logger.Debug("stamp keymap attached", "bindings", msg.Bindings)
		cmds = append(cmds, m.listenForSignals())

	case signalMsg:
		cmds = append(cmds, m.listenForSignals())

	case ErrorMsg:
		cmds = append(cmds, m.DispatchError(msg.Error, messageDuration))

	case clearMsg:
		m.message = ""
		m.err = nil

	case QuitMsg:
		return m, tea.Quit
	}

	m.gate.Observe()

	return m, tea.Batch(cmds...)
}

// handleKey offers the key to the stamp keymap first, then to the host
// commands, then to plain editing.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	ev := convertBubbleKey(msg)

	if m.keymap != nil {
		handled, err := m.keymap.HandleKey(ev)
		if err != nil {
			m.logger.Error("stamp insertion failed", "key", ev.String(), "err", err)
			return errorCmd(err)
		}
		if handled {
			m.scrollToCaret()
			return nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		content := m.buffer.Content()
		path := m.path
		return func() tea.Msg {
			return SaveMsg{Path: path, Content: content}
		}

	case key.Matches(msg, m.keys.Quit):
		return func() tea.Msg { return QuitMsg{} }
	}

	if _, err := core.ApplyKey(m.buffer, ev); err != nil {
		return errorCmd(err)
	}
	m.scrollToCaret()

	return nil
}

func errorCmd(err error) tea.Cmd {
	id := core.ErrHostAPIId
	var coreErr *core.Error
	if errors.As(err, &coreErr) {
		id = coreErr.ID()
	}
	return func() tea.Msg {
		return ErrorMsg{ID: id, Error: err}
	}
}

// listenForSignals turns the next keymap signal into a message.
func (m *Model) listenForSignals() tea.Cmd {
	signals := m.signals
	return func() tea.Msg {
		switch signal := (<-signals).(type) {
		case core.MessageSignal:
			id, text := signal.Value()
			if id == core.StampInsertedMessage {
				return StampMsg{Text: text}
			}
		case core.ReadySignal:
			return ReadyMsg{Bindings: signal.Value()}
		}
		return signalMsg{}
	}
}

func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}
