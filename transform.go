package pathkit

// Transform returns a new Path with every command's coordinates mapped
// through the matrix. The receiver is never mutated and the result
// shares no storage with it.
//
// Point-valued payloads (endpoints, control points, centers) transform
// exactly. Radius payloads are approximate under non-uniform matrices:
// an Arc radius and a RoundRect corner radius scale by the average of
// the two per-axis scale factors, since neither command can represent
// the ellipse a circle maps to. Ellipse radii scale independently per
// axis, exact only for axis-aligned scaling. Angles and the ellipse axis
// rotation are carried through unchanged.
func (p *Path) Transform(m Matrix) *Path {
	sx, sy := m.ScaleFactors()
	avgScale := (sx + sy) / 2

	result := NewPath()
	result.fillRule = p.fillRule

	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			pt := m.TransformPoint(c.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(c.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(c.Control)
			pt := m.TransformPoint(c.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(c.Control1)
			ctrl2 := m.TransformPoint(c.Control2)
			pt := m.TransformPoint(c.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Arc:
			center := m.TransformPoint(c.Center)
			result.Arc(center.X, center.Y, c.Radius*avgScale, c.Start, c.End)
		case Ellipse:
			center := m.TransformPoint(c.Center)
			result.EllipseArc(center.X, center.Y,
				c.RadiusX*sx, c.RadiusY*sy,
				c.Rotation, c.Start, c.End)
		case RoundRect:
			min := m.TransformPoint(c.Rect.Min)
			w := c.Rect.Width() * sx
			h := c.Rect.Height() * sy
			result.AddRoundRect(RectWH(min.X, min.Y, w, h), c.Radius*avgScale)
		case Close:
			result.Close()
		}
	}

	return result
}

// TransformElements is like Transform but takes the matrix as the
// conventional 6-element slice [a, b, c, d, e, f]. Returns
// ErrInvalidMatrix if the slice does not have exactly 6 elements.
func (p *Path) TransformElements(els []float64) (*Path, error) {
	m, err := NewMatrix(els)
	if err != nil {
		return nil, err
	}
	return p.Transform(m), nil
}
