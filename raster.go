package pathkit

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Raster is a CPU rendering backend implementing Canvas on top of the
// golang.org/x/image/vector rasterizer. Replayed commands accumulate
// into the rasterizer; Fill then composites the covered area onto the
// target surface.
//
// Bezier primitives map directly onto the rasterizer. Arc, Ellipse and
// RoundRect commands are flattened into cubic Bezier segments of at
// most a quarter turn each before rasterization.
type Raster struct {
	z       *vector.Rasterizer
	surface *Surface
	pen     bool
}

// NewRaster creates a rendering backend targeting the given surface.
func NewRaster(s *Surface) *Raster {
	return &Raster{
		z:       vector.NewRasterizer(s.Width(), s.Height()),
		surface: s,
	}
}

// Reset discards all accumulated geometry.
func (r *Raster) Reset() {
	r.z.Reset(r.surface.Width(), r.surface.Height())
	r.pen = false
}

// Fill composites the accumulated geometry onto the surface with the
// given color, then resets the backend for the next path.
func (r *Raster) Fill(c RGBA) {
	src := image.NewUniform(c.Color())
	r.z.DrawOp = draw.Over
	r.z.Draw(r.surface.Image(), r.surface.Image().Bounds(), src, image.Point{})
	r.Reset()
}

// MoveTo starts a new subpath at (x, y).
func (r *Raster) MoveTo(x, y float64) {
	r.z.MoveTo(float32(x), float32(y))
	r.pen = true
}

// LineTo draws a line to (x, y).
func (r *Raster) LineTo(x, y float64) {
	r.z.LineTo(float32(x), float32(y))
}

// QuadTo draws a quadratic Bezier curve to (x, y).
func (r *Raster) QuadTo(cx, cy, x, y float64) {
	r.z.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
}

// CubicTo draws a cubic Bezier curve to (x, y).
func (r *Raster) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.z.CubeTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}

// Arc draws a circular arc, flattened to cubic segments.
func (r *Raster) Arc(cx, cy, radius, start, end float64) {
	r.ellipseArc(cx, cy, radius, radius, 0, start, end)
}

// Ellipse draws an elliptical arc, flattened to cubic segments.
func (r *Raster) Ellipse(cx, cy, rx, ry, rotation, start, end float64) {
	r.ellipseArc(cx, cy, rx, ry, rotation, start, end)
}

// RoundRect draws a closed rounded rectangle using line segments and
// cubic corner arcs. The radius is clamped to half the smaller
// dimension so corners never overlap.
func (r *Raster) RoundRect(x, y, w, h, radius float64) {
	rad := math.Min(radius, math.Min(w, h)/2)
	if rad < 0 {
		rad = 0
	}
	k := 0.5522847498 * rad

	r.MoveTo(x+rad, y)
	r.LineTo(x+w-rad, y)
	r.CubicTo(x+w-rad+k, y, x+w, y+rad-k, x+w, y+rad)
	r.LineTo(x+w, y+h-rad)
	r.CubicTo(x+w, y+h-rad+k, x+w-rad+k, y+h, x+w-rad, y+h)
	r.LineTo(x+rad, y+h)
	r.CubicTo(x+rad-k, y+h, x, y+h-rad+k, x, y+h-rad)
	r.LineTo(x, y+rad)
	r.CubicTo(x, y+rad-k, x+rad-k, y, x+rad, y)
	r.ClosePath()
}

// ClosePath closes the current subpath.
func (r *Raster) ClosePath() {
	r.z.ClosePath()
}

// ellipseArc flattens an elliptical arc into cubic Bezier segments of
// at most a quarter turn, connecting from the current pen position (or
// starting a subpath if there is none).
func (r *Raster) ellipseArc(cx, cy, rx, ry, rotation, start, end float64) {
	cosR := math.Cos(rotation)
	sinR := math.Sin(rotation)

	pos := func(t float64) Point {
		x := rx * math.Cos(t)
		y := ry * math.Sin(t)
		return Point{X: cx + x*cosR - y*sinR, Y: cy + x*sinR + y*cosR}
	}
	deriv := func(t float64) Point {
		x := -rx * math.Sin(t)
		y := ry * math.Cos(t)
		return Point{X: x*cosR - y*sinR, Y: x*sinR + y*cosR}
	}

	p0 := pos(start)
	if r.pen {
		r.LineTo(p0.X, p0.Y)
	} else {
		r.MoveTo(p0.X, p0.Y)
	}

	span := end - start
	segments := int(math.Ceil(math.Abs(span) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := span / float64(segments)

	for i := 0; i < segments; i++ {
		t1 := start + float64(i)*step
		t2 := t1 + step

		// Control distance for a cubic approximation of the segment.
		half := math.Tan((t2 - t1) / 2)
		alpha := math.Sin(t2-t1) * (math.Sqrt(4+3*half*half) - 1) / 3

		p1 := pos(t1)
		p2 := pos(t2)
		c1 := p1.Add(deriv(t1).Mul(alpha))
		c2 := p2.Sub(deriv(t2).Mul(alpha))
		r.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y)
	}
}
