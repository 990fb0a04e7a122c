package nav

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Actions understood by the dispatcher. Bindings map raw key names onto
// these; anything else a key does (app chrome, quit, help) stays in the UI.
const (
	ActionMoveUp    = "move-up"
	ActionMoveDown  = "move-down"
	ActionMoveLeft  = "move-left"
	ActionMoveRight = "move-right"
	ActionSelect    = "select"
	ActionBack      = "back"
)

// Binding attaches one or more key names to a dispatcher action.
type Binding struct {
	Keys   []string
	Action string
}

// DefaultBindings is the stock remote-control mapping.
func DefaultBindings() []Binding {
	return []Binding{
		{Keys: []string{"up"}, Action: ActionMoveUp},
		{Keys: []string{"down"}, Action: ActionMoveDown},
		{Keys: []string{"left"}, Action: ActionMoveLeft},
		{Keys: []string{"right"}, Action: ActionMoveRight},
		{Keys: []string{"enter"}, Action: ActionSelect},
		{Keys: []string{"esc", "backspace"}, Action: ActionBack},
	}
}

// Dispatcher turns raw key signals into engine calls, strictly serialized in
// arrival order. A key arriving while another is still being processed (an
// action handler feeding keys back in) is queued, never nested, so each
// movement runs read-decide-mutate-notify to completion before the next.
type Dispatcher struct {
	engine  *Engine
	actions map[string]string // normalized key -> action

	queue      []string
	processing bool

	// OnViewChange is called when a back action resolves to a different
	// view; the UI switches its route and the engine restores focus there.
	OnViewChange func(viewKey string)

	// OnTrapRelease is called when a back action dismisses an active focus
	// trap instead of walking history, so the UI can tear down its overlay.
	OnTrapRelease func()
}

// NewDispatcher builds a dispatcher over engine with the given bindings
// (nil means DefaultBindings).
func NewDispatcher(engine *Engine, bindings []Binding) *Dispatcher {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	d := &Dispatcher{engine: engine, actions: make(map[string]string)}
	for _, b := range bindings {
		for _, k := range b.Keys {
			d.actions[normalizeKey(k)] = b.Action
		}
	}
	return d
}

// HandleKey dispatches a bubbletea key message. It reports whether the key
// was bound, so the UI can fall through to its own chrome bindings.
func (d *Dispatcher) HandleKey(msg tea.KeyMsg) bool {
	return d.Dispatch(msg.String())
}

// Dispatch enqueues a raw key name and drains the queue in order.
func (d *Dispatcher) Dispatch(key string) bool {
	action, ok := d.actions[normalizeKey(key)]
	if !ok {
		return false
	}
	d.queue = append(d.queue, action)
	if d.processing {
		return true
	}
	d.processing = true
	defer func() { d.processing = false }()
	for len(d.queue) > 0 {
		next := d.queue[0]
		d.queue = d.queue[1:]
		d.apply(next)
	}
	return true
}

func (d *Dispatcher) apply(action string) {
	switch action {
	case ActionMoveUp:
		d.engine.MoveFocus(DirUp)
	case ActionMoveDown:
		d.engine.MoveFocus(DirDown)
	case ActionMoveLeft:
		d.engine.MoveFocus(DirLeft)
	case ActionMoveRight:
		d.engine.MoveFocus(DirRight)
	case ActionSelect:
		d.engine.ActivateCurrent()
	case ActionBack:
		if d.engine.State() == StateTrapped {
			d.engine.ReleaseFocus()
			if d.OnTrapRelease != nil {
				d.OnTrapRelease()
			}
			return
		}
		if view, ok := d.engine.GoBack(); ok {
			if d.OnViewChange != nil {
				d.OnViewChange(view)
			}
			d.engine.SetActiveView(view)
		}
	}
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
