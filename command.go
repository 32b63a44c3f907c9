package pathkit

import "math"

// Command represents a single path-construction command.
// It is a sealed interface: the only implementations are the command
// types in this package. Commands are immutable values; a Path never
// rewrites a command after appending it.
type Command interface {
	isCommand()
}

// MoveTo starts a new subpath at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isCommand() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isCommand() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isCommand() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isCommand() {}

// Arc draws a circular arc around Center from Start to End (radians).
type Arc struct {
	Center Point
	Radius float64
	Start  float64
	End    float64
}

func (Arc) isCommand() {}

// Ellipse draws an elliptical arc around Center from Start to End
// (radians), with the ellipse axes rotated by Rotation.
type Ellipse struct {
	Center   Point
	RadiusX  float64
	RadiusY  float64
	Rotation float64
	Start    float64
	End      float64
}

func (Ellipse) isCommand() {}

// RoundRect draws a closed rectangle with rounded corners.
// A single Radius applies to all four corners.
type RoundRect struct {
	Rect   Rect
	Radius float64
}

func (RoundRect) isCommand() {}

// Close closes the current subpath with an implicit line back to the
// subpath's starting point. The closing edge is never materialized as a
// LineTo command; every consumer of the command sequence reconstructs it
// while walking.
type Close struct{}

func (Close) isCommand() {}

// pointAt returns the point on the arc at the given angle.
func (a Arc) pointAt(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// pointAt returns the point on the ellipse at the given parametric angle,
// with the axis rotation applied.
func (e Ellipse) pointAt(angle float64) Point {
	x := e.RadiusX * math.Cos(angle)
	y := e.RadiusY * math.Sin(angle)
	cos := math.Cos(e.Rotation)
	sin := math.Sin(e.Rotation)
	return Point{
		X: e.Center.X + x*cos - y*sin,
		Y: e.Center.Y + x*sin + y*cos,
	}
}
