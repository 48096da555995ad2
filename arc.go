package contour

import (
	"math"
)

// maxArcStep is the largest angle, in radians, of elliptical arc that is
// approximated by a single quadratic Bézier.
const maxArcStep = math.Pi / 4

// EllipticalArcToQuadratics approximates the SVG elliptical arc from start to
// end with quadratic Béziers. The arc is described by its radii, the rotation
// of the ellipse's x axis in degrees, and the large-arc and sweep flags, as in
// the SVG "A" path command.
//
// The returned contour begins with start, alternates off-curve control points
// and on-curve anchors, and ends with a point exactly equal to end. It is nil if
// the arc is degenerate: a zero radius, or start equal to end.
//
// Radii that are too small to span start and end are scaled up uniformly, as
// mandated by SVG.
func EllipticalArcToQuadratics(rx, ry, xAxisRotation float64, largeArc, sweep bool, start, end Point) Contour {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || start == end {
		return nil
	}

	sinφ, cosφ := math.Sincos(xAxisRotation * math.Pi / 180)

	// Start point in the frame centered on the chord midpoint, aligned with the
	// ellipse axes.
	dx := (start.X - end.X) / 2
	dy := (start.Y - end.Y) / 2
	pxp := cosφ*dx + sinφ*dy
	pyp := -sinφ*dx + cosφ*dy

	if λ := sq(pxp)/sq(rx) + sq(pyp)/sq(ry); λ > 1 {
		s := math.Sqrt(λ)
		rx *= s
		ry *= s
	}

	center, θ1, dθ := arcCenter(start, end, rx, ry, largeArc, sweep, sinφ, cosφ, pxp, pyp)

	ratio := math.Abs(dθ) / maxArcStep
	if math.Abs(math.Round(ratio)-ratio) < 1e-7 {
		// Avoid an extra segment for sweeps that are a multiple of the step
		// modulo rounding error.
		ratio = math.Round(ratio)
	}
	n := max(int(math.Ceil(ratio)), 1)
	step := dθ / float64(n)
	// Scale of the control point relative to the radii: the intersection of the
	// tangents at both ends of a circular arc of angle step.
	k := 1 / math.Cos(step/2)

	ellipsePoint := func(θ, scale float64) Point {
		sin, cos := math.Sincos(θ)
		x := rx * scale * cos
		y := ry * scale * sin
		return Point{
			X: cosφ*x - sinφ*y + center.X,
			Y: sinφ*x + cosφ*y + center.Y,
		}
	}

	out := make(Contour, 0, 2*n+1)
	out = append(out, onCurve(start))
	for i := range n {
		θ0 := θ1 + float64(i)*step
		out = append(out, offCurve(ellipsePoint(θ0+step/2, k)))
		if i == n-1 {
			out = append(out, onCurve(end))
		} else {
			out = append(out, onCurve(ellipsePoint(θ0+step, 1)))
		}
	}
	return out
}

// arcCenter converts the endpoint parameterization of an arc to the center
// parameterization, returning the center, the start angle and the signed sweep
// angle.
func arcCenter(start, end Point, rx, ry float64, largeArc, sweep bool,
	sinφ, cosφ, pxp, pyp float64) (center Point, θ1, dθ float64) {

	rxsq := sq(rx)
	rysq := sq(ry)
	pxpsq := sq(pxp)
	pypsq := sq(pyp)

	radicand := (rxsq * rysq) - (rxsq * pypsq) - (rysq * pxpsq)
	if radicand < 0 {
		radicand = 0
	} else {
		radicand /= (rxsq * pypsq) + (rysq * pxpsq)
		radicand = math.Sqrt(radicand)
	}
	if largeArc == sweep {
		radicand *= -1
	}

	centerxp := radicand * rx / ry * pyp
	centeryp := radicand * -ry / rx * pxp

	center = Point{
		X: cosφ*centerxp - sinφ*centeryp + (start.X+end.X)/2,
		Y: sinφ*centerxp + cosφ*centeryp + (start.Y+end.Y)/2,
	}

	v1 := Vec((pxp-centerxp)/rx, (pyp-centeryp)/ry)
	v2 := Vec((-pxp-centerxp)/rx, (-pyp-centeryp)/ry)

	θ1 = vectorAngle(Vec(1, 0), v1)
	dθ = vectorAngle(v1, v2)

	if !sweep && dθ > 0 {
		dθ -= 2 * math.Pi
	}
	if sweep && dθ < 0 {
		dθ += 2 * math.Pi
	}
	return center, θ1, dθ
}

// vectorAngle returns the signed angle from u to v.
func vectorAngle(u, v Vec2) float64 {
	return math.Atan2(u.Cross(v), u.Dot(v))
}

func sq(v float64) float64 {
	return v * v
}
