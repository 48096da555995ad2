package contour

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// ControlBox returns the rectangle enclosing all points of c, on-curve and
// off-curve. This is the glyph bounding box stored in glyf tables, which
// always encloses the outline. ok is false if c has no points.
func (c Contour) ControlBox() (r Rect, ok bool) {
	for i, p := range c {
		if i == 0 {
			r = NewRectFromPoints(p.Point, p.Point)
		} else {
			r = r.UnionPoint(p.Point)
		}
	}
	return r, len(c) > 0
}

// ControlBox returns the union of the control boxes of all contours in cs.
// ok is false if none of the contours have any points.
func ControlBox(cs []Contour) (r Rect, ok bool) {
	for _, c := range cs {
		cbox, cok := c.ControlBox()
		switch {
		case !cok:
		case !ok:
			r, ok = cbox, true
		default:
			r = r.Union(cbox)
		}
	}
	return r, ok
}
