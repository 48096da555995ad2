package contour

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, -4), Pt(4, 0).Sub(Pt(1, 4)))
	diff(t, Pt(2, 3), Pt(0, 2).Midpoint(Pt(4, 4)))
}

func TestPointReflect(t *testing.T) {
	diff(t, Pt(20, 10), Pt(10, 10).Reflect(Pt(0, 10)))
	diff(t, Pt(5, 5), Pt(5, 5).Reflect(Pt(5, 5)))
	diff(t, Pt(-1, 3), Pt(0.5, 1).Reflect(Pt(2, -1)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointRound(t *testing.T) {
	diff(t, Pt(2, -3), Pt(1.5, -2.5).Round())
	diff(t, Pt(0, 10), Pt(0.49, 9.51).Round())
}
