package pathkit

import "testing"

func TestNewPaint_Defaults(t *testing.T) {
	p := NewPaint()
	if p.Color != Black {
		t.Errorf("default color = %v, want black", p.Color)
	}
	if p.LineWidth != 1.0 {
		t.Errorf("default line width = %v, want 1", p.LineWidth)
	}
	if p.LineCap != LineCapButt || p.LineJoin != LineJoinMiter {
		t.Error("default cap/join should be butt/miter")
	}
	if p.MiterLimit != 10.0 {
		t.Errorf("default miter limit = %v, want 10", p.MiterLimit)
	}
	if !p.Antialias {
		t.Error("antialiasing should default to on")
	}
}

func TestPaint_CloneIndependence(t *testing.T) {
	p := NewPaint()
	c := p.Clone()
	c.Color = Red
	c.LineWidth = 5

	if p.Color != Black || p.LineWidth != 1.0 {
		t.Error("mutating the clone must not affect the original")
	}
}

func TestFillRule_String(t *testing.T) {
	if got := FillRuleNonZero.String(); got != "nonZero" {
		t.Errorf("String() = %q, want %q", got, "nonZero")
	}
	if got := FillRuleEvenOdd.String(); got != "evenOdd" {
		t.Errorf("String() = %q, want %q", got, "evenOdd")
	}
}

func TestPath_DefaultFillRule(t *testing.T) {
	if got := NewPath().FillRule(); got != FillRuleNonZero {
		t.Errorf("default fill rule = %v, want nonZero", got)
	}
}
