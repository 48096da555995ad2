package contour

import (
	"iter"
	"math"
)

// DefaultAccuracy is the maximum distance, in path units, between a cubic
// Bézier and the quadratic Béziers approximating it, unless configured
// otherwise via [Options].
const DefaultAccuracy = 0.1

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// isLine reports whether both control points coincide with their adjacent
// end points, which makes the cubic a straight line.
func (c CubicBez) isLine() bool {
	return c.P0 == c.P1 && c.P2 == c.P3
}

type CubicToQuadraticSegment struct {
	Start, End float64
	Segment    QuadBez
}

// QuadraticSegments converts the cubic Bézier to quadratic Béziers.
//
// The iterator returns the start and end parameter in the cubic of each quadratic
// segment, along with the quadratic. Every quadratic starts where the previous
// one ended.
//
// A cubic whose control points coincide with its end points is a line and
// always produces a single quadratic. When the cubic is split in two, the halves
// are computed with de Casteljau, which keeps the two quadratic control points
// symmetric about the shared anchor for inputs that are exact in binary
// floating point.
//
// This iterator will always produce at least one value.
func (c CubicBez) QuadraticSegments(accuracy float64) iter.Seq[CubicToQuadraticSegment] {
	// The maximum error, as a vector from the cubic to the best approximating
	// quadratic, is proportional to the third derivative, which is constant
	// across the segment. Thus, the error scales down as the third power of
	// the number of subdivisions. Our strategy then is to subdivide t evenly.
	return func(yield func(CubicToQuadraticSegment) bool) {
		if c.isLine() {
			yield(CubicToQuadraticSegment{0, 1, QuadBez{c.P0, c.P0.Midpoint(c.P3), c.P3}})
			return
		}

		// This magic number is the square of 36 / sqrt(3).
		// See: https://web.archive.org/web/20210108052742/http://caffeineowl.com/graphics/2d/vectorial/cubic2quad01.html
		maxHypot2 := 432.0 * accuracy * accuracy
		p1x2 := Vec2(c.P1).Mul(3).Sub(Vec2(c.P0))
		p2x2 := Vec2(c.P2).Mul(3).Sub(Vec2(c.P3))
		err := p2x2.Sub(p1x2).Hypot2()
		n := max(int(math.Ceil(math.Sqrt(math.Cbrt(err/maxHypot2)))), 1)

		if n == 2 {
			l, r := c.Subdivide()
			_ = yield(CubicToQuadraticSegment{0, 0.5, l.midpointQuad()}) &&
				yield(CubicToQuadraticSegment{0.5, 1, r.midpointQuad()})
			return
		}

		for i := range n {
			t0 := float64(i) / float64(n)
			t1 := float64(i+1) / float64(n)
			seg := c.Subsegment(t0, t1)
			if !yield(CubicToQuadraticSegment{t0, t1, seg.midpointQuad()}) {
				return
			}
		}
	}
}

// Quadratics returns the quadratic Béziers produced by
// [CubicBez.QuadraticSegments].
func (c CubicBez) Quadratics(accuracy float64) []QuadBez {
	var out []QuadBez
	for seg := range c.QuadraticSegments(accuracy) {
		out = append(out, seg.Segment)
	}
	return out
}

// midpointQuad returns the quadratic sharing the cubic's end points whose
// control point is (3P1 - P0 + 3P2 - P3) / 4.
func (c CubicBez) midpointQuad() QuadBez {
	p1x2 := Vec2(c.P1).Mul(3).Sub(Vec2(c.P0))
	p2x2 := Vec2(c.P2).Mul(3).Sub(Vec2(c.P3))
	return QuadBez{c.P0, Point(p1x2.Add(p2x2).Mul(1.0 / 4.0)), c.P3}
}
