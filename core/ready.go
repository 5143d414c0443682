package core

import (
	"context"
	"sync"
	"time"
)

// ReadyGate fires once, the first time its probe finds the editor.
//
// Hosts call Observe whenever their content changes. Once the probe succeeds
// the OnReady callbacks run, Done is closed and the gate stops observing for
// good; later Observe calls are no-ops.
type ReadyGate struct {
	probe func() (Editor, bool)

	mu        sync.Mutex
	editor    Editor
	fired     bool
	stopped   bool
	callbacks []func(Editor)
	done      chan struct{}
	stop      chan struct{}
}

func NewReadyGate(probe func() (Editor, bool)) *ReadyGate {
	return &ReadyGate{
		probe: probe,
		done:  make(chan struct{}),
		stop:  make(chan struct{}),
	}
}

// Observe runs the probe unless the gate has already fired or disconnected.
// It reports whether the gate is fired after the call.
func (g *ReadyGate) Observe() bool {
	g.mu.Lock()
	if g.fired || g.stopped {
		fired := g.fired
		g.mu.Unlock()
		return fired
	}

	ed, ok := g.probe()
	if !ok || ed == nil {
		g.mu.Unlock()
		return false
	}

	g.editor = ed
	g.fired = true
	g.stopped = true
	callbacks := g.callbacks
	g.callbacks = nil
	close(g.done)
	close(g.stop)
	g.mu.Unlock()

	for _, cb := range callbacks {
		cb(ed)
	}

	return true
}

// OnReady registers cb. It runs immediately if the gate already fired.
func (g *ReadyGate) OnReady(cb func(Editor)) {
	g.mu.Lock()
	if g.fired {
		ed := g.editor
		g.mu.Unlock()
		cb(ed)
		return
	}
	g.callbacks = append(g.callbacks, cb)
	g.mu.Unlock()
}

// Disconnect stops observing without firing. Pending callbacks are dropped.
func (g *ReadyGate) Disconnect() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return
	}
	g.stopped = true
	g.callbacks = nil
	close(g.stop)
}

// Ready reports whether the gate has fired.
func (g *ReadyGate) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fired
}

// Done is closed when the gate fires.
func (g *ReadyGate) Done() <-chan struct{} {
	return g.done
}

// Wait blocks until the gate fires, is disconnected, or ctx is done.
func (g *ReadyGate) Wait(ctx context.Context) (Editor, error) {
	select {
	case <-g.done:
		g.mu.Lock()
		defer g.mu.Unlock()
		return g.editor, nil
	case <-g.stop:
		// stop is also closed on fire; prefer done if both are ready.
		select {
		case <-g.done:
			g.mu.Lock()
			defer g.mu.Unlock()
			return g.editor, nil
		default:
			return nil, ErrGateDisconnected
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Poll calls Observe every interval until the gate fires or stops, or ctx
// is done. Use it for hosts that have no change notifications of their own.
func (g *ReadyGate) Poll(ctx context.Context, interval time.Duration) (Editor, error) {
	if g.Observe() {
		return g.Wait(ctx)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if g.Observe() {
				return g.Wait(ctx)
			}
		case <-g.stop:
			return g.Wait(ctx)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
