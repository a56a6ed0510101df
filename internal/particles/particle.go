// Package particles implements the decorative particle field drawn behind the
// hero section: a fixed set of drifting points joined by fading lines when
// they come close to each other.
package particles

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	// AreaPerParticle is the surface area, in square pixels, that earns one particle.
	AreaPerParticle = 15000
	// MaxParticles caps the field regardless of surface size.
	MaxParticles = 80
	// LinkDistance is the distance under which two particles get a line.
	LinkDistance = 120.0
	// LinkOpacity is the line alpha for two particles at the same point.
	LinkOpacity = 0.08
	// LineWidth is the stroke width of connecting lines.
	LineWidth = 0.5

	maxSpeed  = 0.3
	minRadius = 0.5
	radiusVar = 1.5
	minAlpha  = 0.1
	alphaVar  = 0.5
)

// Color is the indigo used for every particle and link.
var Color = color.RGBA{R: 99, G: 102, B: 241, A: 255}

// Particle is a single point in the field. Velocity is in pixels per frame.
type Particle struct {
	X, Y   float64
	VX, VY float64
	R      float64
	O      float64
}

// Count returns the number of particles seeded for a w×h surface.
func Count(w, h float64) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	n := int(math.Floor(w * h / AreaPerParticle))
	if n > MaxParticles {
		n = MaxParticles
	}
	return n
}

// LinkAlpha returns the opacity of the line between two particles d apart and
// whether a line is drawn at all. Alpha fades linearly to zero at LinkDistance.
func LinkAlpha(d float64) (float64, bool) {
	if d >= LinkDistance || d < 0 {
		return 0, false
	}
	return LinkOpacity * (1 - d/LinkDistance), true
}

// Field is the particle set together with the surface bounds it wraps within.
type Field struct {
	Width, Height float64
	Particles     []Particle

	rng *rand.Rand
}

// NewField returns an empty field drawing randomness from rng.
func NewField(rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Field{rng: rng}
}

// Seed resizes the field and replaces every particle.
func (f *Field) Seed(w, h float64) {
	f.Width, f.Height = math.Max(w, 0), math.Max(h, 0)

	n := Count(f.Width, f.Height)
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			X:  f.rng.Float64() * f.Width,
			Y:  f.rng.Float64() * f.Height,
			VX: (f.rng.Float64() - 0.5) * maxSpeed,
			VY: (f.rng.Float64() - 0.5) * maxSpeed,
			R:  f.rng.Float64()*radiusVar + minRadius,
			O:  f.rng.Float64()*alphaVar + minAlpha,
		}
	}
	f.Particles = ps
}

// Step advances every particle by its velocity and wraps it back into the
// surface on the opposite edge.
func (f *Field) Step() {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X = wrap(p.X+p.VX, f.Width)
		p.Y = wrap(p.Y+p.VY, f.Height)
	}
}

// Links calls fn for every unordered pair closer than LinkDistance.
func (f *Field) Links(fn func(a, b *Particle, alpha float64)) {
	ps := f.Particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if alpha, ok := LinkAlpha(d); ok {
				fn(&ps[i], &ps[j], alpha)
			}
		}
	}
}

// wrap maps v into [0, size).
func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		v = 0
	}
	return v
}
