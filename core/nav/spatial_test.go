package nav

import "testing"

func rect(left, top, right, bottom float64) Rect {
	return Rect{Top: top, Right: right, Bottom: bottom, Left: left}
}

func TestResolvePicksOnlyCandidateInDirection(t *testing.T) {
	a := rect(0, 0, 100, 100)
	candidates := []Candidate{
		{ID: "b", Rect: rect(150, 0, 250, 100)},
		{ID: "c", Rect: rect(0, 150, 100, 250)},
	}
	got, ok := Resolve(a, DirRight, candidates)
	if !ok || got != "b" {
		t.Fatalf("right of a = %q (ok=%v), want b", got, ok)
	}
	got, ok = Resolve(a, DirDown, candidates)
	if !ok || got != "c" {
		t.Fatalf("down of a = %q (ok=%v), want c", got, ok)
	}
}

func TestResolveNoCandidateOutsideTravelLane(t *testing.T) {
	// c sits below-left of b with no horizontal overlap: down from b must
	// not move.
	b := rect(150, 0, 250, 100)
	candidates := []Candidate{
		{ID: "a", Rect: rect(0, 0, 100, 100)},
		{ID: "c", Rect: rect(0, 150, 100, 250)},
	}
	if got, ok := Resolve(b, DirDown, candidates); ok {
		t.Fatalf("down of b = %q, want no movement", got)
	}
}

func TestResolveNearestWins(t *testing.T) {
	from := rect(0, 0, 10, 10)
	candidates := []Candidate{
		{ID: "far", Rect: rect(50, 0, 60, 10)},
		{ID: "near", Rect: rect(20, 0, 30, 10)},
	}
	got, ok := Resolve(from, DirRight, candidates)
	if !ok || got != "near" {
		t.Fatalf("right = %q, want near", got)
	}
}

func TestResolvePrefersSmallerPerpendicularOffset(t *testing.T) {
	from := rect(40, 40, 60, 60)
	candidates := []Candidate{
		{ID: "offset", Rect: rect(58, 0, 78, 20)}, // overlaps by a sliver, center far right
		{ID: "aligned", Rect: rect(40, 0, 60, 20)},
	}
	got, ok := Resolve(from, DirUp, candidates)
	if !ok || got != "aligned" {
		t.Fatalf("up = %q, want aligned", got)
	}
}

func TestResolveTieBreaksByRegistrationOrder(t *testing.T) {
	from := rect(10, 10, 20, 20)
	twin := rect(10, 30, 20, 40)
	candidates := []Candidate{
		{ID: "first", Rect: twin},
		{ID: "second", Rect: twin},
	}
	for i := 0; i < 5; i++ {
		got, ok := Resolve(from, DirDown, candidates)
		if !ok || got != "first" {
			t.Fatalf("iteration %d: down = %q, want first", i, got)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	from := rect(0, 0, 30, 30)
	candidates := []Candidate{
		{ID: "x", Rect: rect(35, 0, 65, 30)},
		{ID: "y", Rect: rect(10, 40, 40, 70)},
		{ID: "z", Rect: rect(70, 5, 100, 35)},
	}
	first, _ := Resolve(from, DirRight, candidates)
	for i := 0; i < 10; i++ {
		if got, _ := Resolve(from, DirRight, candidates); got != first {
			t.Fatalf("resolver not deterministic: %q then %q", first, got)
		}
	}
}

func TestResolveEmptyCandidates(t *testing.T) {
	if got, ok := Resolve(rect(0, 0, 10, 10), DirLeft, nil); ok {
		t.Fatalf("resolve on empty set = %q, want none", got)
	}
}
