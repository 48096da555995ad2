package contour

import (
	"math"
	"testing"
)

// checkArc verifies that c runs from start to end, alternating on-curve and
// off-curve points.
func checkArc(t *testing.T, c Contour, start, end Point) {
	t.Helper()
	if len(c) < 3 || len(c)%2 != 1 {
		t.Fatalf("got %d points, want an odd number of at least 3", len(c))
	}
	diff(t, onCurve(start), c[0])
	diff(t, onCurve(end), c[len(c)-1])
	for i, p := range c {
		if want := i%2 == 0; p.OnCurve != want {
			t.Errorf("point %d: got on-curve %t, want %t", i, p.OnCurve, want)
		}
	}
}

func TestEllipticalArcToQuadraticsHalfCircle(t *testing.T) {
	const epsilon = 1e-9
	center := Pt(10, 0)
	tests := []struct {
		sweep bool
		mid   Point
	}{
		{true, Pt(10, -10)},
		{false, Pt(10, 10)},
	}
	for _, tt := range tests {
		c := EllipticalArcToQuadratics(10, 10, 0, false, tt.sweep, Pt(0, 0), Pt(20, 0))
		checkArc(t, c, Pt(0, 0), Pt(20, 0))
		if len(c) != 9 {
			t.Fatalf("got %d points, want 9", len(c))
		}
		assertNear(t, c[4].Point, tt.mid, epsilon)

		ctrl := 10 / math.Cos(math.Pi/8)
		for i, p := range c {
			want := 10.0
			if !p.OnCurve {
				want = ctrl
			}
			if d := p.Distance(center); math.Abs(d-want) > epsilon {
				t.Errorf("point %d: got distance %g from center, want %g", i, d, want)
			}
		}
	}
}

func TestEllipticalArcToQuadraticsLargeArc(t *testing.T) {
	// A quarter circle from (10, 0) to (0, 10) around the origin, or the
	// remaining three quarters.
	small := EllipticalArcToQuadratics(10, 10, 0, false, true, Pt(10, 0), Pt(0, 10))
	checkArc(t, small, Pt(10, 0), Pt(0, 10))
	if len(small) != 5 {
		t.Errorf("got %d points for a quarter circle, want 5", len(small))
	}
	assertNear(t, small[2].Point, Pt(10*math.Sqrt2/2, 10*math.Sqrt2/2), 1e-9)

	large := EllipticalArcToQuadratics(10, 10, 0, true, false, Pt(10, 0), Pt(0, 10))
	checkArc(t, large, Pt(10, 0), Pt(0, 10))
	if len(large) != 13 {
		t.Errorf("got %d points for three quarters of a circle, want 13", len(large))
	}
	assertNear(t, large[6].Point, Pt(-10*math.Sqrt2/2, -10*math.Sqrt2/2), 1e-9)
}

func TestEllipticalArcToQuadraticsRotated(t *testing.T) {
	// Half an ellipse whose major axis is vertical.
	c := EllipticalArcToQuadratics(20, 10, 90, false, true, Pt(0, 0), Pt(0, 40))
	checkArc(t, c, Pt(0, 0), Pt(0, 40))
	assertNear(t, c[len(c)/2].Point, Pt(10, 20), 1e-9)
}

func TestEllipticalArcToQuadraticsScaledRadii(t *testing.T) {
	want := EllipticalArcToQuadratics(10, 10, 0, false, true, Pt(0, 0), Pt(20, 0))
	got := EllipticalArcToQuadratics(-1, 1, 0, true, true, Pt(0, 0), Pt(20, 0))
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range got {
		assertNear(t, got[i].Point, want[i].Point, 1e-9)
	}
}

func TestEllipticalArcToQuadraticsDegenerate(t *testing.T) {
	if c := EllipticalArcToQuadratics(0, 10, 0, false, true, Pt(0, 0), Pt(20, 0)); c != nil {
		t.Errorf("got %v for zero radius, want nil", c)
	}
	if c := EllipticalArcToQuadratics(10, 10, 0, false, true, Pt(5, 5), Pt(5, 5)); c != nil {
		t.Errorf("got %v for coincident end points, want nil", c)
	}
}

func TestEllipticalArcToQuadraticsSmall(t *testing.T) {
	c := EllipticalArcToQuadratics(100, 100, 0, false, true, Pt(0, 0), Pt(1, 0))
	checkArc(t, c, Pt(0, 0), Pt(1, 0))
	if len(c) != 3 {
		t.Errorf("got %d points, want 3", len(c))
	}
}
