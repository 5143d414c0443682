package core

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Option func(*options)

type options struct {
	clock   func() time.Time
	logger  *slog.Logger
	signals chan<- Signal
}

func defaultOptions() options {
	return options{
		clock:  time.Now,
		logger: slog.Default(),
	}
}

// WithClock sets the reference time source. Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithLogger sets the diagnostics logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithSignals sets the channel success notifications are sent on.
// Sends never block; without a channel notifications are only logged.
func WithSignals(signals chan<- Signal) Option {
	return func(o *options) { o.signals = signals }
}

// Controller owns one chord and the single key handler bound to it.
// It ignores every event until a ReadyGate attaches it to an editor and
// after Dispose.
type Controller struct {
	id       string
	name     string
	chord    Chord
	inserter *Inserter
	logger   *slog.Logger

	mu       sync.Mutex
	editor   Editor
	attached bool
	disposed bool
}

// NewController parses chordText and returns a detached controller.
// A chord without a key token fails here with ErrInvalidChord.
func NewController(name, chordText string, stamp Stamp, opts ...Option) (*Controller, error) {
	chord, err := ParseChord(chordText)
	if err != nil {
		return nil, &Error{id: ErrInvalidChordId, err: err}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.NewString()
	logger := o.logger.With("controller", name, "id", id, "chord", chord.String())
	if len(chord.Ignored) > 0 {
		logger.Warn("ignoring unknown chord modifiers", "tokens", chord.Ignored)
	}

	inserter := NewInserter(stamp, opts...)
	inserter.logger = logger

	return &Controller{
		id:       id,
		name:     name,
		chord:    chord,
		inserter: inserter,
		logger:   logger,
	}, nil
}

func (c *Controller) ID() string   { return c.id }
func (c *Controller) Name() string { return c.name }
func (c *Controller) Chord() Chord { return c.chord }

// Attached reports whether the controller currently handles keys.
func (c *Controller) Attached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attached && !c.disposed
}

// Attach starts handling keys against ed. Attaching a disposed controller
// does nothing.
func (c *Controller) Attach(ed Editor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.editor = ed
	c.attached = true
	c.logger.Debug("key handler attached")
}

// Bind attaches the controller when gate fires.
func (c *Controller) Bind(gate *ReadyGate) {
	gate.OnReady(c.Attach)
}

// HandleKey inserts the stamp if ev matches the chord. handled reports
// whether the event was consumed and should not reach the editor.
//
// An unavailable editor is logged and swallowed. Host call failures are
// returned to the caller.
func (c *Controller) HandleKey(ev KeyEvent) (handled bool, err error) {
	c.mu.Lock()
	active := c.attached && !c.disposed
	ed := c.editor
	c.mu.Unlock()

	if !active || !c.chord.Matches(ev) {
		return false, nil
	}

	c.logger.Debug("chord matched", "event", ev.String())

	if _, err := c.inserter.Insert(ed); err != nil {
		if errors.Is(err, ErrEditorUnavailable) {
			return true, nil
		}
		return true, err
	}

	return true, nil
}

// Dispose detaches the controller permanently.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disposed = true
	c.attached = false
	c.editor = nil
}
