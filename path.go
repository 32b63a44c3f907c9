package pathkit

import "math"

// Path represents a vector path: an ordered sequence of commands, a fill
// rule, and the current pen position. Append order is draw order.
//
// A Path is not safe for concurrent mutation; callers sharing one
// instance across goroutines must synchronize externally.
type Path struct {
	commands []Command
	fillRule FillRule
	start    Point // Starting point of current subpath
	current  Point // Current pen position
}

// NewPath creates a new empty path with the NonZero fill rule.
func NewPath() *Path {
	return &Path{
		commands: make([]Command, 0, 16),
	}
}

// Commands returns the path's command sequence.
// The returned slice is the path's backing storage; callers must not
// modify it.
func (p *Path) Commands() []Command {
	return p.commands
}

// CurrentPoint returns the pen position after the last appended command,
// or the origin for an empty path.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.commands) == 0
}

// FillRule returns the path's fill rule.
func (p *Path) FillRule() FillRule {
	return p.fillRule
}

// SetFillRule sets the path's fill rule.
func (p *Path) SetFillRule(rule FillRule) {
	p.fillRule = rule
}

// MoveTo starts a new subpath at (x, y) without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve to (x, y) with control
// point (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.commands = append(p.commands, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.commands = append(p.commands, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// RelMoveTo starts a new subpath at the current point offset by (dx, dy).
func (p *Path) RelMoveTo(dx, dy float64) {
	p.MoveTo(p.current.X+dx, p.current.Y+dy)
}

// RelLineTo draws a line to the current point offset by (dx, dy).
func (p *Path) RelLineTo(dx, dy float64) {
	p.LineTo(p.current.X+dx, p.current.Y+dy)
}

// RelQuadraticTo draws a quadratic Bezier curve with the control point
// and endpoint given as offsets from the current point.
func (p *Path) RelQuadraticTo(dcx, dcy, dx, dy float64) {
	c := p.current
	p.QuadraticTo(c.X+dcx, c.Y+dcy, c.X+dx, c.Y+dy)
}

// RelCubicTo draws a cubic Bezier curve with both control points and the
// endpoint given as offsets from the current point.
func (p *Path) RelCubicTo(dc1x, dc1y, dc2x, dc2y, dx, dy float64) {
	c := p.current
	p.CubicTo(c.X+dc1x, c.Y+dc1y, c.X+dc2x, c.Y+dc2y, c.X+dx, c.Y+dy)
}

// Arc appends a circular arc around (cx, cy) with the given radius from
// angle start to angle end (radians). The pen moves to the arc's end
// point. The subpath start is unchanged: only MoveTo begins a subpath.
func (p *Path) Arc(cx, cy, r, start, end float64) {
	a := Arc{Center: Pt(cx, cy), Radius: r, Start: start, End: end}
	p.commands = append(p.commands, a)
	p.current = a.pointAt(end)
}

// ArcTo appends the arc of the circle inscribed in rect, from startAngle
// sweeping by sweepAngle (radians). The circle uses the smaller of the
// rect's two half-extents as its radius; elliptical rects are not
// represented exactly. If forceMoveTo is true, a MoveTo to the arc's
// start point is emitted first.
func (p *Path) ArcTo(rect Rect, startAngle, sweepAngle float64, forceMoveTo bool) {
	r := math.Min(rect.Width(), rect.Height()) / 2
	c := rect.Center()
	if forceMoveTo {
		start := Point{
			X: c.X + r*math.Cos(startAngle),
			Y: c.Y + r*math.Sin(startAngle),
		}
		p.MoveTo(start.X, start.Y)
	}
	p.Arc(c.X, c.Y, r, startAngle, startAngle+sweepAngle)
}

// EllipseArc appends an elliptical arc around (cx, cy) with radii
// (rx, ry), the axes rotated by rotation, from angle start to angle end.
func (p *Path) EllipseArc(cx, cy, rx, ry, rotation, start, end float64) {
	e := Ellipse{
		Center:   Pt(cx, cy),
		RadiusX:  rx,
		RadiusY:  ry,
		Rotation: rotation,
		Start:    start,
		End:      end,
	}
	p.commands = append(p.commands, e)
	p.current = e.pointAt(end)
}

// AddRect appends a closed rectangle: a MoveTo at the top-left corner,
// lines through top-right, bottom-right and bottom-left, then a Close.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Min.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Max.Y)
	p.LineTo(r.Min.X, r.Max.Y)
	p.Close()
}

// AddPolygon appends a polyline through the given points: a MoveTo for
// the first point and a LineTo for each subsequent one. If close is
// true, a trailing Close is appended. Empty input is a no-op.
func (p *Path) AddPolygon(points []Point, close bool) {
	if len(points) == 0 {
		return
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	if close {
		p.Close()
	}
}

// AddCircle appends a full-turn Arc command around the center.
func (p *Path) AddCircle(center Point, r float64) {
	p.Arc(center.X, center.Y, r, 0, 2*math.Pi)
}

// AddOval appends a full-turn Ellipse command inscribed in rect.
func (p *Path) AddOval(rect Rect) {
	c := rect.Center()
	p.EllipseArc(c.X, c.Y, rect.Width()/2, rect.Height()/2, 0, 0, 2*math.Pi)
}

// AddRoundRect appends a single RoundRect command. When several corner
// radii are supplied, the minimum is used for all four corners: the
// command model keeps one effective radius, per-corner radii are not
// preserved. The pen moves to the rectangle's top-left corner.
func (p *Path) AddRoundRect(rect Rect, radii ...float64) {
	r := 0.0
	if len(radii) > 0 {
		r = radii[0]
		for _, v := range radii[1:] {
			r = math.Min(r, v)
		}
	}
	p.commands = append(p.commands, RoundRect{Rect: rect, Radius: r})
	p.current = rect.Min
}

// Close closes the current subpath with an implicit line back to the
// subpath's start point. The pen moves to that start point.
func (p *Path) Close() {
	p.commands = append(p.commands, Close{})
	p.current = p.start
}

// Reset removes all commands and restores the pen to the origin.
func (p *Path) Reset() {
	p.commands = p.commands[:0]
	p.fillRule = FillRuleNonZero
	p.start = Point{}
	p.current = Point{}
}

// Clone creates a deep copy of the path sharing no storage with the
// original.
func (p *Path) Clone() *Path {
	clone := &Path{
		commands: make([]Command, len(p.commands)),
		fillRule: p.fillRule,
		start:    p.start,
		current:  p.current,
	}
	copy(clone.commands, p.commands)
	return clone
}
