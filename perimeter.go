package pathkit

import "math"

// chordFactor is the fixed heuristic multiplier used to approximate the
// length of a Bezier segment from its chord. Callers needing sub-percent
// accuracy must not rely on Perimeter for curved segments.
const chordFactor = 1.2

// Perimeter approximates the total length of the path.
//
// Lines and implicit closing edges contribute exact Euclidean distance.
// Circular arcs contribute the exact arc length radius*|sweep|. Bezier
// segments contribute their chord length scaled by a fixed heuristic
// multiplier. Elliptical arcs are measured over the same chord
// subdivision the hit tester uses, and rounded rectangles contribute
// their exact closed perimeter.
func (p *Path) Perimeter() float64 {
	var length float64
	var cur, start Point

	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			cur = c.Point
			start = c.Point
		case LineTo:
			length += cur.Distance(c.Point)
			cur = c.Point
		case QuadTo:
			length += cur.Distance(c.Point) * chordFactor
			cur = c.Point
		case CubicTo:
			length += cur.Distance(c.Point) * chordFactor
			cur = c.Point
		case Arc:
			length += c.Radius * math.Abs(c.End-c.Start)
			cur = c.pointAt(c.End)
		case Ellipse:
			length += sweepLength(c.Start, c.End, c.pointAt)
			cur = c.pointAt(c.End)
		case RoundRect:
			length += roundRectPerimeter(c)
			cur = c.Rect.Min
		case Close:
			length += cur.Distance(start)
			cur = start
		}
	}

	return length
}

// sweepLength sums chord lengths over an angular sweep, using the same
// subdivision policy as the hit tester.
func sweepLength(start, end float64, at func(float64) Point) float64 {
	span := math.Abs(end - start)
	segments := int(math.Ceil(span / (math.Pi / 8)))
	if segments < 8 {
		segments = 8
	}

	var length float64
	prev := at(start)
	for i := 1; i <= segments; i++ {
		t := start + (end-start)*float64(i)/float64(segments)
		next := at(t)
		length += prev.Distance(next)
		prev = next
	}
	return length
}

// roundRectPerimeter returns the exact perimeter of a rounded rectangle:
// the straight edges plus four quarter-circle corners.
func roundRectPerimeter(rr RoundRect) float64 {
	w := rr.Rect.Width()
	h := rr.Rect.Height()
	r := rr.Radius
	return 2*(w+h) - 8*r + 2*math.Pi*r
}
