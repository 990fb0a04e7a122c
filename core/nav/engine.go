package nav

import (
	"log/slog"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// State is the engine's coarse mode, derived from current focus and trap.
type State int

const (
	StateIdle State = iota
	StateFocused
	StateTrapped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFocused:
		return "focused"
	case StateTrapped:
		return "trapped"
	default:
		return "unknown"
	}
}

// Subscriber is notified after every focus change with the previous and new
// focus ids. Either may be empty.
type Subscriber func(prev, curr string)

// DefaultRestoreWait bounds how long a deferred focus restoration waits for
// its target element to register before falling back.
const DefaultRestoreWait = 500 * time.Millisecond

// Options configures an Engine. The zero value is usable: no grace window,
// default history limit and restore wait, slog default logger, real clock.
type Options struct {
	GraceWindow  time.Duration
	HistoryLimit int
	RestoreWait  time.Duration
	Logger       *slog.Logger
	Clock        func() time.Time
}

type pendingRestore struct {
	focusID  string
	deadline time.Time // zero until the view becomes active
}

// Engine is the directional focus navigation engine: the single source of
// truth for which element has focus. It owns the registry, the group table,
// the trap, and the history; external code mutates them only through this
// API. All methods are synchronous and must be called from one goroutine
// (the UI event loop); key events are serialized upstream by the Dispatcher.
//
// Every method degrades to a logged no-op on invalid input. Nothing here
// panics or returns an error into input handling: the UI only ever observes
// "focus changed" or "focus unchanged".
type Engine struct {
	reg     *Registry
	groups  *Groups
	history *History

	current    string
	activeView string
	trap       *trap

	restores    map[string]pendingRestore
	restoreWait time.Duration

	subs     map[string]Subscriber
	subOrder []string

	logger *slog.Logger
	now    func() time.Time
}

// NewEngine constructs the one engine instance for a running application.
func NewEngine(opts Options) *Engine {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	wait := opts.RestoreWait
	if wait <= 0 {
		wait = DefaultRestoreWait
	}
	e := &Engine{
		reg:         NewRegistry(opts.GraceWindow, now),
		groups:      NewGroups(),
		history:     NewHistory(opts.HistoryLimit),
		restores:    make(map[string]pendingRestore),
		restoreWait: wait,
		subs:        make(map[string]Subscriber),
		logger:      logger,
		now:         now,
	}
	e.reg.onRemoved = e.handleRemoved
	e.reg.onRegistered = e.handleRegistered
	return e
}

// Register adds or updates a focusable element. If the element was already
// focused, focus is preserved across the metadata update.
func (e *Engine) Register(el Element) {
	e.flush()
	e.reg.Register(el)
}

// Unregister schedules removal of id, subject to the registry grace window.
func (e *Engine) Unregister(id string) {
	e.flush()
	e.reg.Unregister(id)
	e.flush()
}

// RegisterGroup declares a group over already-registered elements. Member
// ids that are not registered are kept in the order (they may register
// shortly after, e.g. during a mount); movement checks registration anyway.
func (e *Engine) RegisterGroup(id string, memberIDs []string, layout Layout, wrap bool) {
	e.flush()
	e.groups.Register(id, memberIDs, layout, wrap)
}

// UnregisterGroup removes a group; its members stay registered.
func (e *Engine) UnregisterGroup(id string) {
	e.flush()
	e.groups.Unregister(id)
}

// Subscribe registers a focus-change callback and returns a token for
// Unsubscribe. Callbacks fire in subscription order.
func (e *Engine) Subscribe(fn Subscriber) string {
	token := uuid.NewString()
	e.subs[token] = fn
	e.subOrder = append(e.subOrder, token)
	return token
}

// Unsubscribe removes the subscription identified by token.
func (e *Engine) Unsubscribe(token string) {
	if _, ok := e.subs[token]; !ok {
		return
	}
	delete(e.subs, token)
	for i, t := range e.subOrder {
		if t == token {
			e.subOrder = append(e.subOrder[:i], e.subOrder[i+1:]...)
			break
		}
	}
}

// CurrentFocusID returns the focused element id, or "" when idle.
func (e *Engine) CurrentFocusID() string { return e.current }

// State reports the engine's current mode.
func (e *Engine) State() State {
	switch {
	case e.trap != nil:
		return StateTrapped
	case e.current != "":
		return StateFocused
	default:
		return StateIdle
	}
}

// History returns focus history entries, most recent first.
func (e *Engine) History() []HistoryEntry { return e.history.Entries() }

// ActiveView returns the view key the UI last reported active.
func (e *Engine) ActiveView() string { return e.activeView }

// SetActiveView tells the engine which view is on screen. History entries
// record against this key, and a pending back-restoration for the view is
// completed (immediately if the target is registered, otherwise deferred
// until it registers, bounded by the restore wait).
func (e *Engine) SetActiveView(view string) {
	e.flush()
	e.activeView = view
	pr, ok := e.restores[view]
	if !ok {
		return
	}
	if e.reg.Has(pr.focusID) {
		delete(e.restores, view)
		e.setFocus(pr.focusID)
		return
	}
	pr.deadline = e.now().Add(e.restoreWait)
	e.restores[view] = pr
}

// SetFocus moves focus to id. Unknown ids are a logged no-op.
func (e *Engine) SetFocus(id string) {
	e.flush()
	e.setFocus(id)
}

func (e *Engine) setFocus(id string) {
	el, ok := e.reg.Get(id)
	if !ok {
		e.logger.Debug("nav: setFocus on unregistered id",
			"id", id, "suggestion", e.nearestID(id))
		return
	}
	prev := e.current
	if prev == id {
		return
	}
	e.current = id
	if prev != "" {
		if prevEl, ok := e.reg.Get(prev); ok && prevEl.OnBlur != nil {
			prevEl.OnBlur()
		}
	}
	if el.OnFocus != nil {
		el.OnFocus()
	}
	e.history.Record(e.activeView, id, e.now())
	e.groups.Remember(id)
	e.notify(prev, id)
}

// FocusGroup focuses a group's remembered member (or its first member),
// used when navigating into a region without naming an item.
func (e *Engine) FocusGroup(groupID string) {
	e.flush()
	g, ok := e.groups.Get(groupID)
	if !ok {
		e.logger.Debug("nav: focusGroup on unknown group", "group", groupID)
		return
	}
	if id, ok := g.DefaultMember(); ok {
		e.setFocus(id)
		return
	}
	e.logger.Debug("nav: focusGroup on empty group", "group", groupID)
}

// MoveFocus resolves and applies one directional movement:
// trap recovery, then explicit neighbor, then group implicit neighbor, then
// spatial resolution. "No candidate" leaves focus unchanged; that is a valid
// terminal outcome, not an error.
func (e *Engine) MoveFocus(dir Direction) {
	e.flush()
	if e.current == "" {
		// nothing focused yet: land on the registry default
		if id, ok := e.reg.First(); ok {
			e.logger.Debug("nav: move with no focus, using default", "dir", dir.String(), "id", id)
			e.setFocus(id)
		} else {
			e.logger.Debug("nav: move on empty registry", "dir", dir.String())
		}
		return
	}
	if e.trap != nil && !e.trap.contains(e.current) {
		// recovery: focus escaped the trap somehow, pull it back
		if id, ok := e.trapDefault(); ok {
			e.logger.Warn("nav: focus outside trap, recovering", "trap", e.trap.rootID, "focus", e.current)
			e.setFocus(id)
		}
		return
	}
	el, ok := e.reg.Get(e.current)
	if !ok {
		// should be unreachable: removal reassigns focus
		e.logger.Warn("nav: focused id missing from registry", "id", e.current)
		e.current = ""
		return
	}
	if next := el.Neighbors.Get(dir); next != "" && e.allowed(next) {
		e.setFocus(next)
		return
	}
	if next, ok := e.groups.Neighbor(e.current, dir); ok && e.allowed(next) {
		e.setFocus(next)
		return
	}
	from := Rect{}
	if el.Geometry != nil {
		from = el.Geometry()
	}
	if next, ok := Resolve(from, dir, e.candidates()); ok {
		e.setFocus(next)
		return
	}
	e.logger.Debug("nav: no candidate in direction", "from", e.current, "dir", dir.String())
}

// allowed reports whether id is a legal focus target right now.
func (e *Engine) allowed(id string) bool {
	if !e.reg.Has(id) {
		return false
	}
	if e.trap != nil && !e.trap.contains(id) {
		return false
	}
	return true
}

// candidates snapshots the registry (or the trap member set) for the spatial
// resolver, excluding the current element and anything without geometry.
func (e *Engine) candidates() []Candidate {
	snap := e.reg.Snapshot()
	out := make([]Candidate, 0, len(snap))
	for _, el := range snap {
		if el.ID == e.current || el.Geometry == nil {
			continue
		}
		if e.trap != nil && !e.trap.contains(el.ID) {
			continue
		}
		out = append(out, Candidate{ID: el.ID, Rect: el.Geometry()})
	}
	return out
}

// ActivateCurrent invokes the focused element's bound action. The engine
// does not distinguish element kinds; whatever the action does is the UI
// layer's business.
func (e *Engine) ActivateCurrent() {
	e.flush()
	if e.current == "" {
		e.logger.Debug("nav: activate with no focus")
		return
	}
	el, ok := e.reg.Get(e.current)
	if !ok {
		e.logger.Debug("nav: activate on unregistered id", "id", e.current)
		return
	}
	if el.Action == nil {
		e.logger.Debug("nav: focused element has no action", "id", e.current)
		return
	}
	el.Action()
}

// GoBack pops the most recent history entry for a view other than the
// active one and returns that view key so the caller can switch to it. The
// entry's focus id is restored once the view is active (SetActiveView),
// deferring until the element registers if needed. When no other view has
// history, the active view's own remembered focus is reapplied.
func (e *Engine) GoBack() (viewKey string, ok bool) {
	e.flush()
	entry, found := e.history.PopLatestOther(e.activeView)
	if !found {
		if own, ok := e.history.Peek(e.activeView); ok {
			e.setFocus(own.FocusID)
		} else {
			e.logger.Debug("nav: back with no history", "view", e.activeView)
		}
		return "", false
	}
	e.restores[entry.ViewKey] = pendingRestore{focusID: entry.FocusID}
	return entry.ViewKey, true
}

// TrapFocus constrains navigation to rootID's member set. A group id traps
// its members; an element id traps its group's members, or just itself when
// ungrouped. Entering focuses the trap's default member. An unknown root is
// a logged no-op and no trap is entered.
func (e *Engine) TrapFocus(rootID string) {
	e.flush()
	var members []string
	if g, ok := e.groups.Get(rootID); ok {
		members = g.Members()
	} else if el, ok := e.reg.Get(rootID); ok {
		if g, ok := e.groups.GroupOf(el.ID); ok {
			members = g.Members()
		} else {
			members = []string{rootID}
		}
	} else {
		e.logger.Debug("nav: trap on unregistered root", "root", rootID, "suggestion", e.nearestID(rootID))
		return
	}
	e.trap = newTrap(rootID, members, e.current)
	if id, ok := e.trapDefault(); ok {
		e.setFocus(id)
	}
}

// ReleaseFocus clears the trap and restores the focus held when the trap
// was entered, when that element still exists.
func (e *Engine) ReleaseFocus() {
	e.flush()
	if e.trap == nil {
		e.logger.Debug("nav: release with no trap")
		return
	}
	prev := e.trap.prevFocus
	e.trap = nil
	if prev != "" && e.reg.Has(prev) {
		e.setFocus(prev)
	}
}

// trapDefault picks the entry focus for the active trap: the root group's
// remembered member, the root element itself, or the first trapped member.
func (e *Engine) trapDefault() (string, bool) {
	if e.trap == nil {
		return "", false
	}
	if g, ok := e.groups.Get(e.trap.rootID); ok {
		if id, ok := g.DefaultMember(); ok && e.trap.contains(id) && e.reg.Has(id) {
			return id, true
		}
	}
	if e.reg.Has(e.trap.rootID) && e.trap.contains(e.trap.rootID) {
		return e.trap.rootID, true
	}
	if id, ok := e.trap.first(); ok && e.reg.Has(id) {
		return id, true
	}
	return "", false
}

// Flush applies expired grace-window removals and deferred-restore deadlines.
// The UI calls this on a timer tick (and every operation calls it
// implicitly), so nothing here depends on hidden callbacks firing.
func (e *Engine) Flush() { e.flush() }

func (e *Engine) flush() {
	e.reg.Flush()
	if pr, ok := e.restores[e.activeView]; ok && !pr.deadline.IsZero() && !pr.deadline.After(e.now()) {
		delete(e.restores, e.activeView)
		if id, ok := e.reg.First(); ok {
			e.logger.Debug("nav: restore target never registered, falling back",
				"view", e.activeView, "wanted", pr.focusID, "fallback", id)
			e.setFocus(id)
		}
	}
}

// handleRegistered completes a pending restore waiting on this id.
func (e *Engine) handleRegistered(id string) {
	pr, ok := e.restores[e.activeView]
	if !ok || pr.focusID != id || pr.deadline.IsZero() {
		return
	}
	delete(e.restores, e.activeView)
	e.setFocus(id)
}

// handleRemoved runs after the registry applies a removal: group and trap
// membership are scrubbed, and when the removed element held focus a
// replacement is chosen (its group's first remaining member, else the
// registry's first element, else idle). Focus never points at a dead id.
func (e *Engine) handleRemoved(el Element) {
	wasFocused := el.ID == e.current
	var group *Group
	if g, ok := e.groups.GroupOf(el.ID); ok {
		group = g
	}
	e.groups.RemoveMember(el.ID)
	if e.trap != nil {
		if e.trap.rootID == el.ID {
			e.logger.Debug("nav: trap root unregistered, releasing", "root", el.ID)
			prev := e.trap.prevFocus
			e.trap = nil
			if !wasFocused && prev != "" && e.reg.Has(prev) {
				e.setFocus(prev)
			}
		} else {
			e.trap.removeMember(el.ID)
			if e.trap.prevFocus == el.ID {
				e.trap.prevFocus = ""
			}
		}
	}
	if !wasFocused {
		return
	}
	prev := e.current
	e.current = ""
	if group != nil {
		if id, ok := group.DefaultMember(); ok && e.allowed(id) {
			e.setFocusFrom(prev, id)
			return
		}
	}
	if id, ok := e.reg.First(); ok && e.allowed(id) {
		e.setFocusFrom(prev, id)
		return
	}
	e.logger.Debug("nav: focused element unregistered with no fallback", "id", el.ID)
	e.notify(prev, "")
}

// setFocusFrom is setFocus with an explicit previous id, used when the
// previously focused element no longer exists and cannot receive a blur.
func (e *Engine) setFocusFrom(prev, id string) {
	el, ok := e.reg.Get(id)
	if !ok {
		e.notify(prev, "")
		return
	}
	e.current = id
	if el.OnFocus != nil {
		el.OnFocus()
	}
	e.history.Record(e.activeView, id, e.now())
	e.groups.Remember(id)
	e.notify(prev, id)
}

func (e *Engine) notify(prev, curr string) {
	for _, token := range e.subOrder {
		if fn, ok := e.subs[token]; ok {
			fn(prev, curr)
		}
	}
}

// nearestID suggests the closest registered id for a diagnostic, or "" when
// nothing is plausibly close.
func (e *Engine) nearestID(id string) string {
	best, bestDist := "", 4
	for _, candidate := range e.reg.IDs() {
		if d := levenshtein.ComputeDistance(id, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
