package pathkit

import (
	"errors"
	"math"
	"testing"
)

func TestTransform_ScaleBounds(t *testing.T) {
	p := NewPath()
	p.AddRect(RectWH(0, 0, 50, 50))

	scaled := p.Transform(Scale(2, 2))

	want := Rect{Min: Pt(0, 0), Max: Pt(100, 100)}
	if got := scaled.Bounds(); got != want {
		t.Errorf("scaled bounds = %v, want %v", got, want)
	}

	// Non-mutating: the source path keeps its own geometry.
	orig := Rect{Min: Pt(0, 0), Max: Pt(50, 50)}
	if got := p.Bounds(); got != orig {
		t.Errorf("original bounds = %v, want %v", got, orig)
	}
}

func TestTransform_Translate(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(10, 20, 30, 0)

	moved := p.Transform(Translate(5, 7))

	cmds := moved.Commands()
	q, ok := cmds[1].(QuadTo)
	if !ok {
		t.Fatalf("expected QuadTo, got %#v", cmds[1])
	}
	if q.Control != Pt(15, 27) || q.Point != Pt(35, 7) {
		t.Errorf("unexpected transformed quad: %#v", q)
	}
}

func TestTransform_IndependentStorage(t *testing.T) {
	p := NewPath()
	p.AddRect(RectWH(0, 0, 10, 10))

	moved := p.Transform(Identity())
	moved.AddRect(RectWH(100, 100, 10, 10))

	if got := p.Bounds(); got.Max != Pt(10, 10) {
		t.Errorf("source path mutated through transform result: %v", got)
	}
}

func TestTransform_ArcRadiusAverageScale(t *testing.T) {
	p := NewPath()
	p.AddCircle(Pt(10, 10), 10)

	scaled := p.Transform(Scale(2, 4))

	a, ok := scaled.Commands()[0].(Arc)
	if !ok {
		t.Fatalf("expected Arc, got %#v", scaled.Commands()[0])
	}
	if a.Center != Pt(20, 40) {
		t.Errorf("center = %v, want (20,40)", a.Center)
	}
	// Non-uniform scale cannot be represented by a circular arc; the
	// radius takes the average of the two axis factors.
	if a.Radius != 30 {
		t.Errorf("radius = %v, want 30 (average of 2x and 4x)", a.Radius)
	}
}

func TestTransform_EllipseRadiiPerAxis(t *testing.T) {
	p := NewPath()
	p.EllipseArc(0, 0, 10, 20, 0, 0, math.Pi)

	scaled := p.Transform(Scale(3, 0.5))

	e, ok := scaled.Commands()[0].(Ellipse)
	if !ok {
		t.Fatalf("expected Ellipse, got %#v", scaled.Commands()[0])
	}
	if e.RadiusX != 30 || e.RadiusY != 10 {
		t.Errorf("radii = (%v,%v), want (30,10)", e.RadiusX, e.RadiusY)
	}
	if e.Start != 0 || e.End != math.Pi {
		t.Errorf("angles changed: start=%v end=%v", e.Start, e.End)
	}
}

func TestTransform_RoundRect(t *testing.T) {
	p := NewPath()
	p.AddRoundRect(RectWH(10, 10, 40, 20), 4)

	scaled := p.Transform(Scale(2, 2))

	rr, ok := scaled.Commands()[0].(RoundRect)
	if !ok {
		t.Fatalf("expected RoundRect, got %#v", scaled.Commands()[0])
	}
	want := RectWH(20, 20, 80, 40)
	if rr.Rect != want {
		t.Errorf("rect = %v, want %v", rr.Rect, want)
	}
	if rr.Radius != 8 {
		t.Errorf("radius = %v, want 8", rr.Radius)
	}
}

func TestTransform_RotationScaleFactors(t *testing.T) {
	// A pure rotation has unit scale on both axes, so radii survive.
	p := NewPath()
	p.AddCircle(Pt(0, 0), 10)

	rotated := p.Transform(Rotate(math.Pi / 3))

	a := rotated.Commands()[0].(Arc)
	if math.Abs(a.Radius-10) > 1e-9 {
		t.Errorf("radius = %v, want 10 under pure rotation", a.Radius)
	}
}

func TestTransform_FillRulePreserved(t *testing.T) {
	p := NewPath()
	p.SetFillRule(FillRuleEvenOdd)
	p.AddRect(RectWH(0, 0, 10, 10))

	if got := p.Transform(Identity()).FillRule(); got != FillRuleEvenOdd {
		t.Errorf("fill rule = %v, want evenOdd", got)
	}
}

func TestTransformElements(t *testing.T) {
	p := NewPath()
	p.AddRect(RectWH(0, 0, 50, 50))

	scaled, err := p.TransformElements([]float64{2, 0, 0, 2, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := scaled.Bounds(); got.Max != Pt(100, 100) {
		t.Errorf("bounds = %v, want max (100,100)", got)
	}
}

func TestTransformElements_InvalidLength(t *testing.T) {
	p := NewPath()
	p.AddRect(RectWH(0, 0, 50, 50))

	for _, els := range [][]float64{nil, {1}, {1, 0, 0, 1, 0}, {1, 0, 0, 1, 0, 0, 0}} {
		if _, err := p.TransformElements(els); !errors.Is(err, ErrInvalidMatrix) {
			t.Errorf("TransformElements(%v): error = %v, want ErrInvalidMatrix", els, err)
		}
	}
}
