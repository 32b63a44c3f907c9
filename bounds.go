package pathkit

import "math"

// Bounds returns the smallest axis-aligned rectangle containing every
// anchor and control point that can influence the path's silhouette.
// An empty path returns the zero Rect.
//
// The bound is conservative rather than tight: Bezier segments fold in
// their control points instead of the curve extrema, and rounded
// rectangles contribute their full corners. Circular arcs are bounded
// exactly via their axis-aligned critical angles, and rotated ellipses
// via the closed-form rotated-ellipse extent.
func (p *Path) Bounds() Rect {
	if len(p.commands) == 0 {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	seen := false

	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			bbox = bbox.expand(c.Point)
			seen = true
		case LineTo:
			bbox = bbox.expand(c.Point)
			seen = true
		case QuadTo:
			bbox = bbox.expand(c.Control)
			bbox = bbox.expand(c.Point)
			seen = true
		case CubicTo:
			bbox = bbox.expand(c.Control1)
			bbox = bbox.expand(c.Control2)
			bbox = bbox.expand(c.Point)
			seen = true
		case Arc:
			bbox = arcBounds(bbox, c)
			seen = true
		case Ellipse:
			bbox = ellipseBounds(bbox, c)
			seen = true
		case RoundRect:
			bbox = bbox.expand(c.Rect.Min)
			bbox = bbox.expand(c.Rect.Max)
			seen = true
		case Close:
			// The closing edge runs between points already folded in.
		}
	}

	if !seen {
		return Rect{}
	}
	return bbox
}

// arcBounds folds in the arc's endpoints plus every axis-aligned
// critical angle (multiples of pi/2) inside its angular span. This is an
// exact bound for circular arcs.
func arcBounds(bbox Rect, a Arc) Rect {
	bbox = bbox.expand(a.pointAt(a.Start))
	bbox = bbox.expand(a.pointAt(a.End))

	lo := math.Min(a.Start, a.End)
	hi := math.Max(a.Start, a.End)
	const quarter = math.Pi / 2
	for k := math.Ceil(lo / quarter); k*quarter <= hi; k++ {
		bbox = bbox.expand(a.pointAt(k * quarter))
	}
	return bbox
}

// ellipseBounds folds in the full extent of the ellipse around its
// center, ignoring the angular span (conservative for partial arcs).
// For a rotated ellipse the half-extents follow the standard closed
// form: w = hypot(rx*cos, ry*sin), h = hypot(rx*sin, ry*cos).
func ellipseBounds(bbox Rect, e Ellipse) Rect {
	w := e.RadiusX
	h := e.RadiusY
	if e.Rotation != 0 {
		cos := math.Cos(e.Rotation)
		sin := math.Sin(e.Rotation)
		w = math.Hypot(e.RadiusX*cos, e.RadiusY*sin)
		h = math.Hypot(e.RadiusX*sin, e.RadiusY*cos)
	}
	bbox = bbox.expand(Point{X: e.Center.X - w, Y: e.Center.Y - h})
	bbox = bbox.expand(Point{X: e.Center.X + w, Y: e.Center.Y + h})
	return bbox
}
