package pathkit

import (
	"math"
	"testing"
)

func TestContains_Rectangle(t *testing.T) {
	p := NewPath()
	p.AddRect(RectWH(0, 0, 100, 100))

	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"center", Pt(50, 50), true},
		{"right of rect", Pt(150, 50), false},
		{"left of rect", Pt(-10, 50), false},
		{"above rect", Pt(50, -10), false},
		{"below rect", Pt(50, 110), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestContains_EmptyPath(t *testing.T) {
	p := NewPath()
	if p.Contains(Pt(0, 0)) {
		t.Error("empty path must contain nothing")
	}
}

func TestContains_NestedRectsEvenOdd(t *testing.T) {
	p := NewPath()
	p.SetFillRule(FillRuleEvenOdd)
	p.AddRect(RectWH(0, 0, 100, 100))
	p.AddRect(NewRect(Pt(25, 25), Pt(75, 75)))

	// Outer ring is inside; the nested region cancels by parity.
	if !p.Contains(Pt(10, 10)) {
		t.Error("point in outer ring should be inside under evenOdd")
	}
	if p.Contains(Pt(50, 50)) {
		t.Error("point in nested rect should be cancelled under evenOdd")
	}
}

func TestContains_NestedRectsNonZero(t *testing.T) {
	// Same geometry under the default rule: the crossing-count presence
	// test keeps the nested region inside.
	p := NewPath()
	p.AddRect(RectWH(0, 0, 100, 100))
	p.AddRect(NewRect(Pt(25, 25), Pt(75, 75)))

	if !p.Contains(Pt(10, 10)) {
		t.Error("point in outer ring should be inside under nonZero")
	}
	if !p.Contains(Pt(50, 50)) {
		t.Error("point in nested rect should be inside under nonZero")
	}
}

func TestContains_Circle(t *testing.T) {
	p := NewPath()
	p.AddCircle(Pt(0, 0), 50)

	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"center", Pt(0, 0), true},
		{"inside off-center", Pt(20, -20), true},
		{"outside bounding box", Pt(60, 0), false},
		{"inside box outside circle", Pt(45, 45), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestContains_OpenSubpathUsesImplicitClose(t *testing.T) {
	// Triangle left open: the Close edge is the only thing sealing it,
	// so the crossing walk must supply it.
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	p.LineTo(50, 80)
	p.Close()

	if !p.Contains(Pt(50, 30)) {
		t.Error("point inside closed triangle should be contained")
	}
	if p.Contains(Pt(5, 70)) {
		t.Error("point outside triangle should not be contained")
	}
}

func TestContains_CurveChordApproximation(t *testing.T) {
	// A quad arch over the x-axis closed along its chord. Hit testing
	// treats the curve as its chord, so even points under the true curve
	// count as outside.
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(50, 100, 100, 0)
	p.Close()

	if p.Contains(Pt(50, 25)) {
		t.Error("chord approximation should flatten the arch to a line")
	}
}

func TestContains_EllipseArc(t *testing.T) {
	p := NewPath()
	p.AddOval(NewRect(Pt(-40, -20), Pt(40, 20)))

	if !p.Contains(Pt(0, 0)) {
		t.Error("ellipse center should be inside")
	}
	if p.Contains(Pt(38, 18)) {
		t.Error("bounding-box corner should be outside the ellipse")
	}
}

func TestContains_RoundRectAsRect(t *testing.T) {
	p := NewPath()
	p.AddRoundRect(RectWH(0, 0, 60, 40), 10)

	if !p.Contains(Pt(30, 20)) {
		t.Error("round rect center should be inside")
	}
	if p.Contains(Pt(70, 20)) {
		t.Error("point right of the rect should be outside")
	}
	// The rounding is ignored: the square corner still hits.
	if !p.Contains(Pt(2, 2)) {
		t.Error("corner region is inside under the rectangle approximation")
	}
}

func TestContains_RayStrictlyRight(t *testing.T) {
	// The intercept at exactly the point's X does not count; the ray is
	// open on the left.
	p := NewPath()
	p.AddRect(RectWH(0, 0, 100, 100))

	if p.Contains(Pt(100, 50)) {
		t.Error("point on the right edge should not be inside")
	}
	if !p.Contains(Pt(100-1e-9, 50)) {
		t.Error("point just inside the right edge should be inside")
	}
}

func TestContains_ArcSubdivisionDensity(t *testing.T) {
	// A point near the circle boundary but clearly inside must survive
	// the chord subdivision (16 segments for a full turn).
	p := NewPath()
	p.AddCircle(Pt(0, 0), 50)

	r := 50 * math.Cos(math.Pi/16) // inradius of the chord polygon
	if !p.Contains(Pt(r-1, 0)) {
		t.Error("point inside the chord polygon should be contained")
	}
}
