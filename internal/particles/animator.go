package particles

import (
	"math/rand"
	"time"

	"github.com/jglims/portfolio/internal/throttle"
)

// ResizeLimit is the minimum spacing between two honoured resizes.
const ResizeLimit = 250 * time.Millisecond

// Surface is anything the field can be drawn onto.
type Surface interface {
	Clear(w, h float64)
	Circle(x, y, r, alpha float64)
	Line(x1, y1, x2, y2, alpha float64)
}

// Container is the box the animation fills.
type Container struct {
	Width, Height float64
}

// Options tune an Animator.
type Options struct {
	// ReducedMotion mirrors the prefers-reduced-motion media query.
	ReducedMotion bool
	// Rand seeds particle placement. A random source is used when nil.
	Rand *rand.Rand
	// Now overrides the clock of the resize throttle.
	Now func() time.Time
}

// Animator draws a Field onto a Surface once per frame.
type Animator struct {
	field    *Field
	surface  Surface
	throttle *throttle.Throttle
	frames   uint64
}

// NewAnimator sizes and seeds a field for the container. It returns false,
// and no animator, when the container is absent or motion is reduced.
func NewAnimator(c *Container, s Surface, opts Options) (*Animator, bool) {
	if c == nil || opts.ReducedMotion || s == nil {
		return nil, false
	}

	th := throttle.New(ResizeLimit)
	if opts.Now != nil {
		th.WithClock(opts.Now)
	}

	a := &Animator{
		field:    NewField(opts.Rand),
		surface:  s,
		throttle: th,
	}
	a.field.Seed(c.Width, c.Height)
	return a, true
}

// Resize reseeds the field for the new container box. Calls arriving within
// ResizeLimit of the last honoured one are dropped; the return value reports
// whether this one was honoured.
func (a *Animator) Resize(c Container) bool {
	return a.throttle.Do(func() {
		a.field.Seed(c.Width, c.Height)
	})
}

// RenderFrame advances the field one frame and draws it.
func (a *Animator) RenderFrame() {
	f := a.field
	a.surface.Clear(f.Width, f.Height)

	f.Step()
	for _, p := range f.Particles {
		a.surface.Circle(p.X, p.Y, p.R, p.O)
	}
	f.Links(func(p, q *Particle, alpha float64) {
		a.surface.Line(p.X, p.Y, q.X, q.Y, alpha)
	})
	a.frames++
}

// Field exposes the animated field.
func (a *Animator) Field() *Field { return a.field }

// Frames returns how many frames have been rendered.
func (a *Animator) Frames() uint64 { return a.frames }
