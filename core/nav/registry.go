package nav

import (
	"time"
)

// Element is one focusable UI unit. IDs are unique and stable; registering
// an id that already exists overwrites the previous entry (last write wins)
// while keeping its original position in registration order.
type Element struct {
	ID        string
	Geometry  GeometryFunc
	Neighbors Neighbors

	// Action is the element's bound handler, invoked by ActivateCurrent.
	// The engine does not care what it does.
	Action func()

	// Optional focus lifecycle hooks.
	OnFocus func()
	OnBlur  func()
}

type regEntry struct {
	el    Element
	order int
}

// Registry owns the focusable element table. Unregistration is applied after
// a configurable grace window so rapid unmount/remount cycles (list
// virtualization, transient re-renders) do not churn focus; a Register call
// for the same id inside the window cancels the pending removal. A zero
// window applies removals synchronously.
type Registry struct {
	elements map[string]*regEntry
	order    []string
	pending  map[string]time.Time
	grace    time.Duration
	now      func() time.Time
	nextOrd  int

	// hooks wired by the engine
	onRemoved    func(el Element)
	onRegistered func(id string)
}

// NewRegistry builds a registry with the given grace window. now may be nil,
// in which case time.Now is used; tests inject a fake clock.
func NewRegistry(grace time.Duration, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		elements: make(map[string]*regEntry),
		pending:  make(map[string]time.Time),
		grace:    grace,
		now:      now,
	}
}

// Register upserts an element. A pending unregistration for the same id is
// cancelled. Re-registering only replaces metadata; order is preserved so
// spatial tie-breaks stay stable across re-renders.
func (r *Registry) Register(el Element) {
	if el.ID == "" {
		return
	}
	delete(r.pending, el.ID)
	if existing, ok := r.elements[el.ID]; ok {
		existing.el = el
		return
	}
	r.elements[el.ID] = &regEntry{el: el, order: r.nextOrd}
	r.nextOrd++
	r.order = append(r.order, el.ID)
	if r.onRegistered != nil {
		r.onRegistered(el.ID)
	}
}

// Unregister schedules removal of id. With a zero grace window the removal
// is applied before Unregister returns.
func (r *Registry) Unregister(id string) {
	if _, ok := r.elements[id]; !ok {
		return
	}
	if r.grace <= 0 {
		r.remove(id)
		return
	}
	r.pending[id] = r.now().Add(r.grace)
}

// Flush applies every pending removal whose grace window has elapsed. The
// engine calls this at the top of each operation so decisions always run
// against a settled table.
func (r *Registry) Flush() {
	if len(r.pending) == 0 {
		return
	}
	now := r.now()
	var due []string
	for id, deadline := range r.pending {
		if !deadline.After(now) {
			due = append(due, id)
		}
	}
	for _, id := range due {
		delete(r.pending, id)
		r.remove(id)
	}
}

// PendingUnregistrations reports ids scheduled for removal, for inspection.
func (r *Registry) PendingUnregistrations() []string {
	out := make([]string, 0, len(r.pending))
	for _, id := range r.order {
		if _, ok := r.pending[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func (r *Registry) remove(id string) {
	entry, ok := r.elements[id]
	if !ok {
		return
	}
	delete(r.elements, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	// scrub dangling explicit neighbors
	for _, e := range r.elements {
		e.el.Neighbors.clearRefs(id)
	}
	if r.onRemoved != nil {
		r.onRemoved(entry.el)
	}
}

// Get returns the element for id, if registered.
func (r *Registry) Get(id string) (Element, bool) {
	e, ok := r.elements[id]
	if !ok {
		return Element{}, false
	}
	return e.el, true
}

// Has reports whether id is currently registered. Elements inside their
// grace window still count: they remain valid targets until the window
// elapses.
func (r *Registry) Has(id string) bool {
	_, ok := r.elements[id]
	return ok
}

// First returns the earliest-registered element id, the registry-wide
// fallback focus target.
func (r *Registry) First() (string, bool) {
	if len(r.order) == 0 {
		return "", false
	}
	return r.order[0], true
}

// IDs returns all registered ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Snapshot returns all elements in registration order. Movement decisions
// run against one snapshot so a removal mid-decision cannot be referenced.
func (r *Registry) Snapshot() []Element {
	out := make([]Element, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.elements[id].el)
	}
	return out
}

func (r *Registry) Len() int { return len(r.elements) }
