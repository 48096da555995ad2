package contour

import (
	"iter"
	"slices"
)

// Quads returns an iterator over the quadratic Bézier segments of the closed
// contour c.
//
// Points are decoded as in glyf tables: a control point is followed either by
// an on-curve point, which ends the segment, or by another control point, in
// which case the segment ends at the implied on-curve point halfway between
// the two. Two consecutive on-curve points form a line, which is returned as a
// quadratic with its control point at the line's midpoint. The last point
// connects back to the first. A contour made up only of control points starts
// at the implied point between its last and first point.
//
// Contours with fewer than two points have no segments. Zero-length lines are
// skipped.
func (c Contour) Quads() iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		if len(c) < 2 {
			return
		}

		var start Point
		var pts []ContourPoint
		if first := slices.IndexFunc(c, func(p ContourPoint) bool { return p.OnCurve }); first == -1 {
			start = c[len(c)-1].Midpoint(c[0].Point)
			pts = slices.Clone(c)
		} else {
			start = c[first].Point
			pts = append(slices.Clone(c[first+1:]), c[:first]...)
		}
		pts = append(pts, onCurve(start))

		pen := start
		var ctrl Point
		hasCtrl := false
		for _, p := range pts {
			if !p.OnCurve {
				if hasCtrl {
					mid := ctrl.Midpoint(p.Point)
					if !yield(QuadBez{pen, ctrl, mid}) {
						return
					}
					pen = mid
				}
				ctrl = p.Point
				hasCtrl = true
				continue
			}

			var q QuadBez
			switch {
			case hasCtrl:
				q = QuadBez{pen, ctrl, p.Point}
			case pen == p.Point:
				continue
			default:
				q = QuadBez{pen, pen.Midpoint(p.Point), p.Point}
			}
			if !yield(q) {
				return
			}
			pen = p.Point
			hasCtrl = false
		}
	}
}

// SignedArea returns the signed area enclosed by c. It is positive if c runs
// counter-clockwise in a y-up coordinate system, which is the direction of
// holes in TrueType outlines.
func (c Contour) SignedArea() float64 {
	var sum float64
	for q := range c.Quads() {
		sum += q.SignedArea()
	}
	return sum
}

// Reverse returns a copy of c with the order of its points reversed, keeping
// the first point first. The reversed contour describes the same outline in
// the opposite direction.
func (c Contour) Reverse() Contour {
	if len(c) == 0 {
		return c.Clone()
	}
	out := make(Contour, 0, len(c))
	out = append(out, c[0])
	for i := len(c) - 1; i > 0; i-- {
		out = append(out, c[i])
	}
	return out
}
