package nav

// Direction is one of the four remote-control movement inputs.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Rect is a screen rectangle in a top-left origin coordinate space.
// Units are whatever the host renderer uses (terminal cells here).
type Rect struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// GeometryFunc reports an element's current rectangle. It is queried at
// decision time and never cached; layout may change between key events.
type GeometryFunc func() Rect

// Neighbors holds author-declared directional overrides. An empty id means
// no override for that direction.
type Neighbors struct {
	Up    string
	Down  string
	Left  string
	Right string
}

func (n Neighbors) Get(d Direction) string {
	switch d {
	case DirUp:
		return n.Up
	case DirDown:
		return n.Down
	case DirLeft:
		return n.Left
	default:
		return n.Right
	}
}

func (n *Neighbors) set(d Direction, id string) {
	switch d {
	case DirUp:
		n.Up = id
	case DirDown:
		n.Down = id
	case DirLeft:
		n.Left = id
	default:
		n.Right = id
	}
}

// clearRefs blanks every direction pointing at id.
func (n *Neighbors) clearRefs(id string) {
	if n.Up == id {
		n.Up = ""
	}
	if n.Down == id {
		n.Down = ""
	}
	if n.Left == id {
		n.Left = ""
	}
	if n.Right == id {
		n.Right = ""
	}
}
