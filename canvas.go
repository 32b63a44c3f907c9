package pathkit

// Canvas is the command replay interface consumed by rendering backends.
// Any backend exposing these eight primitives can consume a Path
// unmodified via [Path.Replay].
//
// Coordinates arrive exactly as they were appended to the path; no
// flattening or transformation happens during replay.
type Canvas interface {
	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo draws a line from the current point to (x, y).
	LineTo(x, y float64)

	// QuadTo draws a quadratic Bezier curve to (x, y) with control
	// point (cx, cy).
	QuadTo(cx, cy, x, y float64)

	// CubicTo draws a cubic Bezier curve to (x, y) with control points
	// (c1x, c1y) and (c2x, c2y).
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)

	// Arc draws a circular arc around (cx, cy) with the given radius
	// from angle start to angle end (radians).
	Arc(cx, cy, r, start, end float64)

	// Ellipse draws an elliptical arc around (cx, cy) with radii
	// (rx, ry), the axes rotated by rotation, from start to end.
	Ellipse(cx, cy, rx, ry, rotation, start, end float64)

	// RoundRect draws a closed rectangle at (x, y) of size (w, h) with
	// corner radius r.
	RoundRect(x, y, w, h, r float64)

	// ClosePath closes the current subpath.
	ClosePath()
}

// Replay walks the command sequence in order and issues one Canvas call
// per command.
func (p *Path) Replay(dst Canvas) {
	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			dst.MoveTo(c.Point.X, c.Point.Y)
		case LineTo:
			dst.LineTo(c.Point.X, c.Point.Y)
		case QuadTo:
			dst.QuadTo(c.Control.X, c.Control.Y, c.Point.X, c.Point.Y)
		case CubicTo:
			dst.CubicTo(c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.Point.X, c.Point.Y)
		case Arc:
			dst.Arc(c.Center.X, c.Center.Y, c.Radius, c.Start, c.End)
		case Ellipse:
			dst.Ellipse(c.Center.X, c.Center.Y, c.RadiusX, c.RadiusY, c.Rotation, c.Start, c.End)
		case RoundRect:
			dst.RoundRect(c.Rect.Min.X, c.Rect.Min.Y, c.Rect.Width(), c.Rect.Height(), c.Radius)
		case Close:
			dst.ClosePath()
		}
	}
}

// Recorder is a Canvas that captures replayed commands for later
// inspection or playback into another backend. The zero value is ready
// to use.
type Recorder struct {
	commands []Command
}

// Commands returns the recorded command sequence.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// MoveTo records a MoveTo command.
func (r *Recorder) MoveTo(x, y float64) {
	r.commands = append(r.commands, MoveTo{Point: Pt(x, y)})
}

// LineTo records a LineTo command.
func (r *Recorder) LineTo(x, y float64) {
	r.commands = append(r.commands, LineTo{Point: Pt(x, y)})
}

// QuadTo records a QuadTo command.
func (r *Recorder) QuadTo(cx, cy, x, y float64) {
	r.commands = append(r.commands, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo records a CubicTo command.
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.commands = append(r.commands, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// Arc records an Arc command.
func (r *Recorder) Arc(cx, cy, radius, start, end float64) {
	r.commands = append(r.commands, Arc{Center: Pt(cx, cy), Radius: radius, Start: start, End: end})
}

// Ellipse records an Ellipse command.
func (r *Recorder) Ellipse(cx, cy, rx, ry, rotation, start, end float64) {
	r.commands = append(r.commands, Ellipse{
		Center:   Pt(cx, cy),
		RadiusX:  rx,
		RadiusY:  ry,
		Rotation: rotation,
		Start:    start,
		End:      end,
	})
}

// RoundRect records a RoundRect command.
func (r *Recorder) RoundRect(x, y, w, h, radius float64) {
	r.commands = append(r.commands, RoundRect{Rect: RectWH(x, y, w, h), Radius: radius})
}

// ClosePath records a Close command.
func (r *Recorder) ClosePath() {
	r.commands = append(r.commands, Close{})
}
