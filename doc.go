// Package pathkit provides a retained vector-path model for 2D drawing.
//
// # Overview
//
// pathkit centers on [Path]: an ordered, replayable sequence of
// path-construction commands (moves, lines, Bezier curves, arcs, rounded
// rectangles, closes) plus derived geometric queries. A Path is built
// imperatively, queried on demand, and replayed verbatim into any rendering
// backend implementing the eight-primitive [Canvas] interface.
//
// # Quick Start
//
//	import "github.com/gopaint/pathkit"
//
//	p := pathkit.NewPath()
//	p.AddRect(pathkit.RectWH(10, 10, 100, 50))
//
//	b := p.Bounds()              // {10,10} - {110,60}
//	in := p.Contains(pathkit.Pt(50, 30))
//	l := p.Perimeter()           // 300
//
//	// Rasterize onto an in-memory surface:
//	pt := pathkit.NewPainter(200, 100)
//	pt.SetColor(pathkit.Red)
//	pt.FillPath(p)
//	pt.SavePNG("out.png")
//
// # Geometry Accuracy
//
// The geometric queries trade exactness for simplicity and are documented
// per method. Bounding boxes fold in Bezier control points rather than
// curve extrema (a conservative over-approximation). Hit testing replaces
// curves with their chords and subdivides arcs into chords. Perimeter uses
// a fixed heuristic multiplier for Bezier segments. Combine approximates
// boolean operations through fill-rule manipulation rather than polygon
// clipping. Callers needing exact computational geometry should flatten
// paths themselves and use a dedicated clipping library.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing toward +Y
package pathkit
