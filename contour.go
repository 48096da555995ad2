package contour

import (
	"fmt"
	"slices"
)

// ContourPoint is a point of a contour. On-curve points are anchors the
// outline passes through; off-curve points are quadratic Bézier control points.
// The zero value is off-curve.
//
// As in TrueType glyf tables, two consecutive off-curve points imply an
// on-curve point at their midpoint.
type ContourPoint struct {
	Point
	OnCurve bool
}

func onCurve(p Point) ContourPoint {
	return ContourPoint{Point: p, OnCurve: true}
}

func offCurve(p Point) ContourPoint {
	return ContourPoint{Point: p}
}

func (p ContourPoint) String() string {
	if p.OnCurve {
		return p.Point.String()
	}
	return fmt.Sprintf("~(%g, %g)", p.X, p.Y)
}

// Transform returns p transformed by aff, keeping its on-curve flag.
func (p ContourPoint) Transform(aff Affine) ContourPoint {
	p.Point = p.Point.Transform(aff)
	return p
}

// Contour is an ordered list of points describing one sub-path of an outline.
// The first and last points are connected only by convention of the consumer;
// the contour itself does not repeat its first point.
type Contour []ContourPoint

// Clone returns a copy of c that shares no memory with it.
func (c Contour) Clone() Contour {
	return slices.Clone(c)
}

// Transform returns a new contour with every point transformed by aff.
func (c Contour) Transform(aff Affine) Contour {
	if c == nil {
		return nil
	}
	out := make(Contour, len(c))
	for i, p := range c {
		out[i] = p.Transform(aff)
	}
	return out
}

// Round returns a new contour with every coordinate rounded to the nearest
// integer, as required for storing the contour in a glyf table.
func (c Contour) Round() Contour {
	if c == nil {
		return nil
	}
	out := make(Contour, len(c))
	for i, p := range c {
		out[i] = ContourPoint{Point: p.Point.Round(), OnCurve: p.OnCurve}
	}
	return out
}

// EndsOnCurve reports whether c is non-empty and its last point is on-curve.
func (c Contour) EndsOnCurve() bool {
	return len(c) > 0 && c[len(c)-1].OnCurve
}

// last returns the last point of c, if any.
func (c Contour) last() (ContourPoint, bool) {
	if len(c) == 0 {
		return ContourPoint{}, false
	}
	return c[len(c)-1], true
}

// TransformContours applies m to every point of every contour and returns the
// new contours.
func TransformContours(cs []Contour, m Matrix) []Contour {
	aff := m.Affine()
	out := make([]Contour, len(cs))
	for i, c := range cs {
		out[i] = c.Transform(aff)
	}
	return out
}
