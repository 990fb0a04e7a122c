package nav

import "testing"

func TestLinearHorizontalNeighbors(t *testing.T) {
	gs := NewGroups()
	gs.Register("row", []string{"a", "b", "c", "d"}, Horizontal(), false)

	if nb, ok := gs.Neighbor("b", DirRight); !ok || nb != "c" {
		t.Fatalf("right of b = %q, want c", nb)
	}
	if nb, ok := gs.Neighbor("b", DirLeft); !ok || nb != "a" {
		t.Fatalf("left of b = %q, want a", nb)
	}
	if _, ok := gs.Neighbor("a", DirLeft); ok {
		t.Fatal("left of a should be empty without wrap")
	}
	if _, ok := gs.Neighbor("d", DirRight); ok {
		t.Fatal("right of d should be empty without wrap")
	}
	if _, ok := gs.Neighbor("b", DirUp); ok {
		t.Fatal("horizontal layout should not link up")
	}
}

func TestLinearHorizontalWrap(t *testing.T) {
	gs := NewGroups()
	gs.Register("row", []string{"a", "b", "c", "d"}, Horizontal(), true)

	if nb, ok := gs.Neighbor("d", DirRight); !ok || nb != "a" {
		t.Fatalf("right of d = %q, want a (wrap)", nb)
	}
	if nb, ok := gs.Neighbor("a", DirLeft); !ok || nb != "d" {
		t.Fatalf("left of a = %q, want d (wrap)", nb)
	}
}

func TestLinearVerticalNeighbors(t *testing.T) {
	gs := NewGroups()
	gs.Register("menu", []string{"home", "search", "settings"}, Vertical(), false)

	if nb, ok := gs.Neighbor("search", DirDown); !ok || nb != "settings" {
		t.Fatalf("down of search = %q, want settings", nb)
	}
	if nb, ok := gs.Neighbor("search", DirUp); !ok || nb != "home" {
		t.Fatalf("up of search = %q, want home", nb)
	}
}

func TestGridNeighbors(t *testing.T) {
	// 2x3 grid:
	//   a b c
	//   d e f
	gs := NewGroups()
	gs.Register("grid", []string{"a", "b", "c", "d", "e", "f"}, Grid(3), false)

	cases := []struct {
		from string
		dir  Direction
		want string
	}{
		{"a", DirRight, "b"},
		{"b", DirLeft, "a"},
		{"b", DirDown, "e"},
		{"e", DirUp, "b"},
		{"c", DirDown, "f"},
		{"d", DirRight, "e"},
	}
	for _, c := range cases {
		if nb, ok := gs.Neighbor(c.from, c.dir); !ok || nb != c.want {
			t.Fatalf("%s of %s = %q, want %q", c.dir, c.from, nb, c.want)
		}
	}
	if _, ok := gs.Neighbor("c", DirRight); ok {
		t.Fatal("right of c should be empty without wrap")
	}
	if _, ok := gs.Neighbor("a", DirUp); ok {
		t.Fatal("up of a should be empty without wrap")
	}
}

func TestGridWrap(t *testing.T) {
	gs := NewGroups()
	gs.Register("grid", []string{"a", "b", "c", "d", "e", "f"}, Grid(3), true)

	// index 2 (row 0, col 2) wraps right to index 0
	if nb, ok := gs.Neighbor("c", DirRight); !ok || nb != "a" {
		t.Fatalf("right of c = %q, want a (wrap to row start)", nb)
	}
	if nb, ok := gs.Neighbor("a", DirLeft); !ok || nb != "c" {
		t.Fatalf("left of a = %q, want c (wrap to row end)", nb)
	}
	if nb, ok := gs.Neighbor("a", DirUp); !ok || nb != "d" {
		t.Fatalf("up of a = %q, want d (wrap to last row, same column)", nb)
	}
	if nb, ok := gs.Neighbor("e", DirDown); !ok || nb != "b" {
		t.Fatalf("down of e = %q, want b (wrap to first row, same column)", nb)
	}
}

func TestGridPartialLastRow(t *testing.T) {
	// a b c
	// d e
	gs := NewGroups()
	gs.Register("grid", []string{"a", "b", "c", "d", "e"}, Grid(3), false)

	if _, ok := gs.Neighbor("c", DirDown); ok {
		t.Fatal("down of c should be empty, last row has no third column")
	}
	if _, ok := gs.Neighbor("e", DirRight); ok {
		t.Fatal("right of e should be empty, row ends at e")
	}
	if nb, ok := gs.Neighbor("e", DirUp); !ok || nb != "b" {
		t.Fatalf("up of e = %q, want b", nb)
	}
}

func TestGridPartialLastRowWrap(t *testing.T) {
	gs := NewGroups()
	gs.Register("grid", []string{"a", "b", "c", "d", "e"}, Grid(3), true)

	// wrap right on the short row returns to the row start
	if nb, ok := gs.Neighbor("e", DirRight); !ok || nb != "d" {
		t.Fatalf("right of e = %q, want d (wrap within short row)", nb)
	}
	// c is alone in column 2; wrapping down would land on itself, so no link
	if nb, ok := gs.Neighbor("c", DirDown); ok {
		t.Fatalf("down of c = %q, want none (would wrap to itself)", nb)
	}
}

func TestRememberedFocusDefaultsToFirst(t *testing.T) {
	gs := NewGroups()
	gs.Register("row", []string{"a", "b", "c"}, Horizontal(), false)

	g, _ := gs.Get("row")
	if id, ok := g.DefaultMember(); !ok || id != "a" {
		t.Fatalf("default member = %q, want a", id)
	}
	gs.Remember("b")
	if id, _ := g.DefaultMember(); id != "b" {
		t.Fatalf("default member after remember = %q, want b", id)
	}
}

func TestRemoveMemberShiftsNeighborsAndDemotesRemembered(t *testing.T) {
	gs := NewGroups()
	gs.Register("row", []string{"a", "b", "c"}, Horizontal(), false)
	gs.Remember("b")

	gs.RemoveMember("b")
	g, _ := gs.Get("row")
	if id, _ := g.DefaultMember(); id != "a" {
		t.Fatalf("default after removing remembered member = %q, want a", id)
	}
	if nb, ok := gs.Neighbor("a", DirRight); !ok || nb != "c" {
		t.Fatalf("right of a after removal = %q, want c", nb)
	}
	if _, ok := gs.GroupOf("b"); ok {
		t.Fatal("removed member should not map to a group")
	}
}

func TestReregisterGroupReplacesMembership(t *testing.T) {
	gs := NewGroups()
	gs.Register("row", []string{"a", "b"}, Horizontal(), false)
	gs.Register("row", []string{"c", "d"}, Horizontal(), false)

	if _, ok := gs.GroupOf("a"); ok {
		t.Fatal("a should no longer belong to row")
	}
	if nb, ok := gs.Neighbor("c", DirRight); !ok || nb != "d" {
		t.Fatalf("right of c = %q, want d", nb)
	}
}
