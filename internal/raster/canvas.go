// Package raster draws the particle field into an RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"math/rand"

	"golang.org/x/image/vector"

	"github.com/jglims/portfolio/internal/particles"
)

// Background is the hero section's backdrop colour.
var Background = color.RGBA{R: 10, G: 10, B: 15, A: 255}

const circleSegments = 16

// Canvas is a particles.Surface backed by an *image.RGBA.
type Canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// NewCanvas returns an empty canvas; it is sized on the first Clear.
func NewCanvas() *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, 0, 0))}
}

// Clear resizes the canvas when needed and paints the background.
func (c *Canvas) Clear(w, h float64) {
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	if iw < 0 {
		iw = 0
	}
	if ih < 0 {
		ih = 0
	}
	if b := c.img.Bounds(); b.Dx() != iw || b.Dy() != ih {
		c.img = image.NewRGBA(image.Rect(0, 0, iw, ih))
		c.ras = vector.NewRasterizer(iw, ih)
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
}

// Circle fills a disc approximated by a polygon.
func (c *Canvas) Circle(x, y, r, alpha float64) {
	if c.empty() {
		return
	}
	c.ras.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	c.ras.MoveTo(float32(x+r), float32(y))
	for i := 1; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		c.ras.LineTo(float32(x+r*math.Cos(a)), float32(y+r*math.Sin(a)))
	}
	c.ras.ClosePath()
	c.fill(alpha)
}

// Line strokes a segment of particles.LineWidth as a thin quad.
func (c *Canvas) Line(x1, y1, x2, y2, alpha float64) {
	if c.empty() {
		return
	}
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	// half-width normal
	nx, ny := -dy/l*particles.LineWidth/2, dx/l*particles.LineWidth/2

	c.ras.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	c.ras.MoveTo(float32(x1+nx), float32(y1+ny))
	c.ras.LineTo(float32(x2+nx), float32(y2+ny))
	c.ras.LineTo(float32(x2-nx), float32(y2-ny))
	c.ras.LineTo(float32(x1-nx), float32(y1-ny))
	c.ras.ClosePath()
	c.fill(alpha)
}

func (c *Canvas) fill(alpha float64) {
	col := color.NRGBA{R: particles.Color.R, G: particles.Color.G, B: particles.Color.B, A: uint8(math.Round(clamp01(alpha) * 255))}
	c.ras.DrawOp = draw.Over
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *Canvas) empty() bool {
	return c.ras == nil || c.img.Bounds().Empty()
}

// Image returns the current frame.
func (c *Canvas) Image() *image.RGBA { return c.img }

// EncodePNG writes the current frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Preview renders frames frames of a w×h field seeded with seed and returns
// the canvas holding the last one.
func Preview(w, h float64, frames int, seed int64) *Canvas {
	c := NewCanvas()
	a, _ := particles.NewAnimator(&particles.Container{Width: w, Height: h}, c, particles.Options{
		Rand: rand.New(rand.NewSource(seed)),
	})
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		a.RenderFrame()
	}
	return c
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
