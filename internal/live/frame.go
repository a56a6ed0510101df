package live

import (
	"math"

	"github.com/jglims/portfolio/internal/particles"
)

// FrameRecorder is a particles.Surface that collects one frame for the wire.
type FrameRecorder struct {
	frame FrameMsg
}

func (r *FrameRecorder) Clear(w, h float64) {
	circles, lines := r.frame.Circles[:0], r.frame.Lines[:0]
	if circles == nil {
		circles = make([][4]float64, 0, particles.MaxParticles)
		lines = make([][5]float64, 0, particles.MaxParticles)
	}
	r.frame = FrameMsg{Type: MsgFrame, W: w, H: h, Circles: circles, Lines: lines}
}

func (r *FrameRecorder) Circle(x, y, rad, alpha float64) {
	r.frame.Circles = append(r.frame.Circles, [4]float64{round(x, 1), round(y, 1), round(rad, 2), round(alpha, 3)})
}

func (r *FrameRecorder) Line(x1, y1, x2, y2, alpha float64) {
	r.frame.Lines = append(r.frame.Lines, [5]float64{round(x1, 1), round(y1, 1), round(x2, 1), round(y2, 1), round(alpha, 4)})
}

// Frame returns the recorded frame. It is only valid until the next Clear.
func (r *FrameRecorder) Frame() *FrameMsg {
	return &r.frame
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
