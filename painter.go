package pathkit

import (
	"image"
	"io"
	"log/slog"
)

// Painter owns a drawing surface, a rendering backend and the active
// paint state, and orchestrates the fill lifecycle. It touches paths
// only through their public operations and the Canvas replay interface.
type Painter struct {
	surface *Surface
	raster  *Raster
	paint   *Paint
	stack   []*Paint

	evenOddWarned bool
}

// NewPainter creates a painter with a fresh surface of the given
// dimensions.
func NewPainter(width, height int) *Painter {
	return NewPainterForSurface(NewSurface(width, height))
}

// NewPainterForSurface creates a painter drawing onto an existing
// surface.
func NewPainterForSurface(s *Surface) *Painter {
	return &Painter{
		surface: s,
		raster:  NewRaster(s),
		paint:   NewPaint(),
		stack:   make([]*Paint, 0, 8),
	}
}

// Surface returns the painter's surface.
func (p *Painter) Surface() *Surface {
	return p.surface
}

// Image returns the surface's backing image.
func (p *Painter) Image() image.Image {
	return p.surface.Image()
}

// Paint returns the active paint state.
func (p *Painter) Paint() *Paint {
	return p.paint
}

// SetPaint replaces the active paint state.
func (p *Painter) SetPaint(paint *Paint) {
	if paint == nil {
		paint = NewPaint()
	}
	p.paint = paint
}

// SetColor sets the active paint color.
func (p *Painter) SetColor(c RGBA) {
	p.paint.Color = c
}

// Save pushes a copy of the active paint state onto the stack.
func (p *Painter) Save() {
	p.stack = append(p.stack, p.paint.Clone())
}

// Restore pops the most recently saved paint state. With an empty stack
// it is a no-op.
func (p *Painter) Restore() {
	if len(p.stack) == 0 {
		return
	}
	p.paint = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

// Clear fills the whole surface with a color.
func (p *Painter) Clear(c RGBA) {
	p.surface.Clear(c)
}

// FillPath replays the path into the rendering backend and fills it
// with the active paint color.
//
// The backend accumulates coverage by winding, so paths carrying
// FillRuleEvenOdd are rasterized with non-zero semantics; the
// difference shows only on self-overlapping geometry.
func (p *Painter) FillPath(path *Path) {
	if path.IsEmpty() {
		return
	}
	if path.FillRule() == FillRuleEvenOdd && !p.evenOddWarned {
		Logger().Debug("pathkit: evenOdd fill approximated by winding rasterization")
		p.evenOddWarned = true
	}

	p.raster.Reset()
	path.Replay(p.raster)
	p.raster.Fill(p.paint.Color)

	Logger().Debug("pathkit: filled path",
		slog.Int("commands", len(path.Commands())))
}

// WritePNG encodes the surface as PNG to w.
func (p *Painter) WritePNG(w io.Writer) error {
	return p.surface.EncodePNG(w)
}

// SavePNG writes the surface to a PNG file.
func (p *Painter) SavePNG(path string) error {
	return p.surface.SavePNG(path)
}
