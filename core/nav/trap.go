package nav

// trap constrains movement to a fixed member set while active, like an open
// modal. prevFocus is what was focused when the trap was entered; it is
// restored on release if still registered.
type trap struct {
	rootID    string
	members   map[string]struct{}
	ordered   []string
	prevFocus string
}

func newTrap(rootID string, members []string, prevFocus string) *trap {
	t := &trap{
		rootID:    rootID,
		members:   make(map[string]struct{}, len(members)),
		ordered:   append([]string(nil), members...),
		prevFocus: prevFocus,
	}
	for _, m := range members {
		t.members[m] = struct{}{}
	}
	return t
}

func (t *trap) contains(id string) bool {
	_, ok := t.members[id]
	return ok
}

// removeMember keeps the trap consistent when a trapped element unregisters.
func (t *trap) removeMember(id string) {
	if _, ok := t.members[id]; !ok {
		return
	}
	delete(t.members, id)
	for i, m := range t.ordered {
		if m == id {
			t.ordered = append(t.ordered[:i], t.ordered[i+1:]...)
			break
		}
	}
}

// first returns the earliest remaining member.
func (t *trap) first() (string, bool) {
	if len(t.ordered) == 0 {
		return "", false
	}
	return t.ordered[0], true
}
