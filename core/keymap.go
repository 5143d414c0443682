package core

// Keymap is an ordered set of independent controllers, one per chord.
type Keymap struct {
	controllers []*Controller
	opts        []Option
	signals     chan<- Signal
}

// NewKeymap returns an empty keymap. opts are applied to every controller
// added with Add.
func NewKeymap(opts ...Option) *Keymap {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Keymap{
		opts:    opts,
		signals: o.signals,
	}
}

// Add creates a controller for chordText and appends it.
func (k *Keymap) Add(name, chordText string, stamp Stamp) (*Controller, error) {
	c, err := NewController(name, chordText, stamp, k.opts...)
	if err != nil {
		return nil, err
	}
	k.controllers = append(k.controllers, c)
	return c, nil
}

func (k *Keymap) Controllers() []*Controller {
	return k.controllers
}

// Bind attaches every controller when gate fires and announces it once.
func (k *Keymap) Bind(gate *ReadyGate) {
	for _, c := range k.controllers {
		c.Bind(gate)
	}
	gate.OnReady(func(Editor) {
		dispatchSignal(k.signals, ReadySignal{bindings: len(k.controllers)})
	})
}

// HandleKey offers ev to each controller in order and stops at the first
// one that consumes it.
func (k *Keymap) HandleKey(ev KeyEvent) (bool, error) {
	for _, c := range k.controllers {
		handled, err := c.HandleKey(ev)
		if handled || err != nil {
			return handled, err
		}
	}
	return false, nil
}

// Dispose detaches every controller.
func (k *Keymap) Dispose() {
	for _, c := range k.controllers {
		c.Dispose()
	}
}
