package viewport

import "fmt"

const (
	// MaxTilt is the rotation, in degrees, at a card's edge.
	MaxTilt = 4.0
	// Perspective is the CSS perspective distance in pixels.
	Perspective = 800
	// Lift raises a tilted card by this many pixels.
	Lift = -4
)

// Rotation is a card tilt in degrees.
type Rotation struct {
	X, Y float64
}

// Tilt computes the rotation for a pointer at (x, y) inside a w×h card,
// coordinates relative to the card's top-left corner.
func Tilt(x, y, w, h float64) Rotation {
	if w <= 0 || h <= 0 {
		return Rotation{}
	}
	cx, cy := w/2, h/2
	return Rotation{
		X: ((y - cy) / cy) * -MaxTilt,
		Y: ((x - cx) / cx) * MaxTilt,
	}
}

// Transform renders the CSS transform for r.
func (r Rotation) Transform() string {
	return fmt.Sprintf("perspective(%dpx) rotateX(%gdeg) rotateY(%gdeg) translateY(%dpx)",
		Perspective, r.X, r.Y, Lift)
}

// Tilter applies tilt to cards unless the pointer is coarse.
type Tilter struct {
	coarse bool
}

// NewTilter disables tilting for coarse (touch) pointers.
func NewTilter(coarsePointer bool) *Tilter {
	return &Tilter{coarse: coarsePointer}
}

// Enabled reports whether cards tilt at all.
func (t *Tilter) Enabled() bool { return !t.coarse }

// Move returns the transform for a pointer move, and false when disabled.
func (t *Tilter) Move(x, y, w, h float64) (string, bool) {
	if t.coarse {
		return "", false
	}
	return Tilt(x, y, w, h).Transform(), true
}

// Leave returns the transform restoring the card's resting position.
func (t *Tilter) Leave() (string, bool) {
	if t.coarse {
		return "", false
	}
	return "", true
}
