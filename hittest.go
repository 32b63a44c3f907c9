package pathkit

import "math"

// Contains reports whether pt is enclosed by the path under the active
// fill rule.
//
// The test casts a horizontal ray from pt toward +X over every edge of
// the path. Bezier segments are approximated by their chords and arcs
// by at least eight chords (more for wider angular spans); curvature is
// otherwise ignored. Close contributes the implicit edge back to the
// subpath start. With FillRuleEvenOdd a point is inside when the
// crossing count is odd; with FillRuleNonZero when the signed winding
// number of the chord edges is nonzero.
func (p *Path) Contains(pt Point) bool {
	if len(p.commands) == 0 {
		return false
	}
	if !p.Bounds().Contains(pt) {
		return false
	}

	var crossings, winding int
	var cur, start Point

	edge := func(a, b Point) {
		c, w := edgeTest(pt, a, b)
		crossings += c
		winding += w
	}

	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			cur = c.Point
			start = c.Point
		case LineTo:
			edge(cur, c.Point)
			cur = c.Point
		case QuadTo:
			edge(cur, c.Point)
			cur = c.Point
		case CubicTo:
			edge(cur, c.Point)
			cur = c.Point
		case Arc:
			sweepEdges(c.Start, c.End, c.pointAt, edge)
			cur = c.pointAt(c.End)
		case Ellipse:
			sweepEdges(c.Start, c.End, c.pointAt, edge)
			cur = c.pointAt(c.End)
		case RoundRect:
			rectEdges(c.Rect, edge)
			cur = c.Rect.Min
		case Close:
			edge(cur, start)
			cur = start
		}
	}

	if p.fillRule == FillRuleEvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}

// edgeTest tests the edge a-b against the horizontal ray from pt toward
// +X. An edge crosses when its endpoints straddle the ray's Y, it is
// not horizontal, and the X-intercept lies strictly right of pt. The
// winding contribution is +1 for a downward-Y crossing and -1 for an
// upward one.
func edgeTest(pt, a, b Point) (crossing, winding int) {
	if a.Y == b.Y {
		return 0, 0
	}
	down := a.Y <= pt.Y && b.Y > pt.Y
	up := b.Y <= pt.Y && a.Y > pt.Y
	if !down && !up {
		return 0, 0
	}
	t := (pt.Y - a.Y) / (b.Y - a.Y)
	x := a.X + t*(b.X-a.X)
	if !(x > pt.X) {
		return 0, 0
	}
	if down {
		return 1, 1
	}
	return 1, -1
}

// sweepEdges subdivides an angular sweep into chords and feeds each to
// the edge callback. At least eight segments are used; wider sweeps get
// one segment per eighth-pi of span.
func sweepEdges(start, end float64, at func(float64) Point, edge func(a, b Point)) {
	span := math.Abs(end - start)
	segments := int(math.Ceil(span / (math.Pi / 8)))
	if segments < 8 {
		segments = 8
	}

	prev := at(start)
	for i := 1; i <= segments; i++ {
		t := start + (end-start)*float64(i)/float64(segments)
		next := at(t)
		edge(prev, next)
		prev = next
	}
}

// rectEdges feeds a rectangle's four edges to the edge callback. The
// rounding of a RoundRect is ignored, matching the bounds policy.
func rectEdges(r Rect, edge func(a, b Point)) {
	tl := r.Min
	tr := Point{X: r.Max.X, Y: r.Min.Y}
	br := r.Max
	bl := Point{X: r.Min.X, Y: r.Max.Y}

	edge(tl, tr)
	edge(tr, br)
	edge(br, bl)
	edge(bl, tl)
}
