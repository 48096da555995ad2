package contour

// reduceCubics appends the quadratic approximation of a chain of cubic Béziers
// to contour and returns the extended contour.
//
// The chain's start point is expected to already be the last point of contour
// and is not appended again. Every quadratic contributes its control point and
// its end point. When the control points on both sides of a shared end point
// are exact reflections of each other about it, the end point is implied by
// the two controls and is dropped. The chain's end point is appended once more
// after the last quadratic, so the contour always ends on its final anchor
// twice; a following smooth cubic pops one of them to use as its start.
//
// The reflection test uses exact floating point equality. Switching to an
// epsilon comparison would change the number of points produced.
func reduceCubics(cubics []CubicBez, contour Contour, toQuads func(CubicBez) []QuadBez) Contour {
	var quads []QuadBez
	for _, c := range cubics {
		quads = append(quads, toQuads(c)...)
	}

	for i, q := range quads {
		if i > 0 {
			prev := quads[i-1]
			if prev.P1.X+q.P1.X == 2*q.P0.X && prev.P1.Y+q.P1.Y == 2*q.P0.Y {
				contour = contour[:len(contour)-1]
			}
		}
		contour = append(contour, offCurve(q.P1), onCurve(q.P2))
	}
	if len(quads) > 0 {
		contour = append(contour, onCurve(quads[len(quads)-1].P2))
	}
	return contour
}
