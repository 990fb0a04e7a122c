package nav

import "math"

// Candidate is one element as seen by the spatial resolver: an id plus its
// rectangle fetched from the geometry provider at decision time.
type Candidate struct {
	ID   string
	Rect Rect
}

// Resolve finds the geometrically nearest candidate strictly in dir relative
// to from. Candidates must be supplied in registration order; ties keep the
// earliest one, so the result is deterministic for a fixed snapshot.
//
// A candidate qualifies when its facing edge is at or past the source's edge
// in the movement direction (for "up": candidate.Bottom <= from.Top) and its
// span overlaps the source's span on the perpendicular axis, so movement
// never lands on an element entirely beside the travel lane. The score is
// the Euclidean combination of the edge-to-edge gap along the movement axis
// and the center offset on the perpendicular axis. There is no whole-screen
// wrap here; wrapping is a per-group opt-in.
func Resolve(from Rect, dir Direction, candidates []Candidate) (string, bool) {
	best := ""
	bestScore := math.Inf(1)
	for _, c := range candidates {
		score, ok := directionalScore(from, dir, c.Rect)
		if !ok {
			continue
		}
		if score < bestScore {
			bestScore = score
			best = c.ID
		}
	}
	return best, best != ""
}

func directionalScore(from Rect, dir Direction, to Rect) (float64, bool) {
	var gap, perp float64
	switch dir {
	case DirUp:
		if to.Bottom > from.Top || !overlapsX(from, to) {
			return 0, false
		}
		gap = from.Top - to.Bottom
		perp = to.CenterX() - from.CenterX()
	case DirDown:
		if to.Top < from.Bottom || !overlapsX(from, to) {
			return 0, false
		}
		gap = to.Top - from.Bottom
		perp = to.CenterX() - from.CenterX()
	case DirLeft:
		if to.Right > from.Left || !overlapsY(from, to) {
			return 0, false
		}
		gap = from.Left - to.Right
		perp = to.CenterY() - from.CenterY()
	case DirRight:
		if to.Left < from.Right || !overlapsY(from, to) {
			return 0, false
		}
		gap = to.Left - from.Right
		perp = to.CenterY() - from.CenterY()
	default:
		return 0, false
	}
	return math.Hypot(gap, perp), true
}

func overlapsX(a, b Rect) bool { return b.Left < a.Right && b.Right > a.Left }
func overlapsY(a, b Rect) bool { return b.Top < a.Bottom && b.Bottom > a.Top }
