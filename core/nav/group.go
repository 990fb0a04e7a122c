package nav

// LayoutKind declares how a group arranges its members on screen.
type LayoutKind int

const (
	LinearHorizontal LayoutKind = iota
	LinearVertical
	GridLayout
)

// Layout is a group's declared arrangement. Columns is only meaningful for
// GridLayout and is clamped to at least 1.
type Layout struct {
	Kind    LayoutKind
	Columns int
}

// Horizontal is a linear left-to-right layout.
func Horizontal() Layout { return Layout{Kind: LinearHorizontal} }

// Vertical is a linear top-to-bottom layout.
func Vertical() Layout { return Layout{Kind: LinearVertical} }

// Grid is a row-major grid with the given column count.
func Grid(columns int) Layout { return Layout{Kind: GridLayout, Columns: columns} }

// Group is a named, ordered set of elements. Implicit neighbor links are
// derived from the layout at registration time and used only when an element
// has no explicit neighbor in the requested direction.
type Group struct {
	ID         string
	members    []string
	layout     Layout
	wrap       bool
	remembered string
	implicit   map[string]Neighbors
}

// Members returns the group's member ids in declared order.
func (g *Group) Members() []string {
	out := make([]string, len(g.members))
	copy(out, g.members)
	return out
}

// DefaultMember is the id focused when the group is entered without a
// specific target: the remembered member, or the first member.
func (g *Group) DefaultMember() (string, bool) {
	if g.remembered != "" {
		return g.remembered, true
	}
	if len(g.members) == 0 {
		return "", false
	}
	return g.members[0], true
}

func (g *Group) contains(id string) bool {
	for _, m := range g.members {
		if m == id {
			return true
		}
	}
	return false
}

func (g *Group) recompute() {
	g.implicit = make(map[string]Neighbors, len(g.members))
	n := len(g.members)
	if n == 0 {
		return
	}
	switch g.layout.Kind {
	case LinearHorizontal:
		g.linkLinear(DirLeft, DirRight)
	case LinearVertical:
		g.linkLinear(DirUp, DirDown)
	case GridLayout:
		g.linkGrid()
	}
}

func (g *Group) linkLinear(back, fwd Direction) {
	n := len(g.members)
	for i, id := range g.members {
		var nb Neighbors
		if i > 0 {
			nb.set(back, g.members[i-1])
		} else if g.wrap && n > 1 {
			nb.set(back, g.members[n-1])
		}
		if i < n-1 {
			nb.set(fwd, g.members[i+1])
		} else if g.wrap && n > 1 {
			nb.set(fwd, g.members[0])
		}
		g.implicit[id] = nb
	}
}

func (g *Group) linkGrid() {
	n := len(g.members)
	cols := g.layout.Columns
	if cols < 1 {
		cols = 1
	}
	for i, id := range g.members {
		var nb Neighbors
		row, col := i/cols, i%cols
		rowStart := row * cols
		rowEnd := rowStart + cols - 1 // index of last column in this row
		if rowEnd > n-1 {
			rowEnd = n - 1
		}

		if i-cols >= 0 {
			nb.set(DirUp, g.members[i-cols])
		} else if g.wrap {
			// same column, last occupied row
			last := i
			for j := i + cols; j < n; j += cols {
				last = j
			}
			if last != i {
				nb.set(DirUp, g.members[last])
			}
		}
		if i+cols < n {
			nb.set(DirDown, g.members[i+cols])
		} else if g.wrap && col != i {
			// same column, first row
			nb.set(DirDown, g.members[col])
		}
		if col > 0 {
			nb.set(DirLeft, g.members[i-1])
		} else if g.wrap && rowEnd != i {
			nb.set(DirLeft, g.members[rowEnd])
		}
		if col < cols-1 && i+1 <= rowEnd {
			nb.set(DirRight, g.members[i+1])
		} else if g.wrap && rowStart != i {
			nb.set(DirRight, g.members[rowStart])
		}
		g.implicit[id] = nb
	}
}

// Groups is the group table. It tracks membership both ways so removals and
// remembered-focus updates are cheap.
type Groups struct {
	byID     map[string]*Group
	memberOf map[string]string
}

func NewGroups() *Groups {
	return &Groups{
		byID:     make(map[string]*Group),
		memberOf: make(map[string]string),
	}
}

// Register upserts a group and computes its implicit neighbor links.
func (gs *Groups) Register(id string, memberIDs []string, layout Layout, wrap bool) {
	if id == "" {
		return
	}
	gs.Unregister(id)
	g := &Group{
		ID:      id,
		members: append([]string(nil), memberIDs...),
		layout:  layout,
		wrap:    wrap,
	}
	g.recompute()
	gs.byID[id] = g
	for _, m := range g.members {
		gs.memberOf[m] = id
	}
}

// Unregister removes a group. Member elements stay registered; they simply
// lose their implicit links.
func (gs *Groups) Unregister(id string) {
	g, ok := gs.byID[id]
	if !ok {
		return
	}
	for _, m := range g.members {
		if gs.memberOf[m] == id {
			delete(gs.memberOf, m)
		}
	}
	delete(gs.byID, id)
}

// Get returns the group with the given id.
func (gs *Groups) Get(id string) (*Group, bool) {
	g, ok := gs.byID[id]
	return g, ok
}

// GroupOf returns the group containing element id.
func (gs *Groups) GroupOf(id string) (*Group, bool) {
	gid, ok := gs.memberOf[id]
	if !ok {
		return nil, false
	}
	return gs.Get(gid)
}

// Neighbor returns the implicit neighbor of element id in dir, if the
// element belongs to a group and the layout provides one.
func (gs *Groups) Neighbor(id string, dir Direction) (string, bool) {
	g, ok := gs.GroupOf(id)
	if !ok {
		return "", false
	}
	nb := g.implicit[id].Get(dir)
	return nb, nb != ""
}

// Remember records id as its group's last-focused member.
func (gs *Groups) Remember(id string) {
	if g, ok := gs.GroupOf(id); ok {
		g.remembered = id
	}
}

// RemoveMember drops an element from its group, recomputes the group's
// implicit links for the shifted positions, and demotes the remembered focus
// to the group default if it pointed at the removed element.
func (gs *Groups) RemoveMember(id string) {
	g, ok := gs.GroupOf(id)
	if !ok {
		return
	}
	delete(gs.memberOf, id)
	for i, m := range g.members {
		if m == id {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
	if g.remembered == id {
		g.remembered = ""
	}
	g.recompute()
}
