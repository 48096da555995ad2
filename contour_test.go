package contour

import (
	"testing"
)

func on(x, y float64) ContourPoint  { return onCurve(Pt(x, y)) }
func off(x, y float64) ContourPoint { return offCurve(Pt(x, y)) }

func TestContourPointString(t *testing.T) {
	if got, want := on(1, 2.5).String(), "(1, 2.5)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := off(-3, 0).String(), "~(-3, 0)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestContourTransform(t *testing.T) {
	c := Contour{on(0, 0), off(5, 10), on(10, 0)}
	got := c.Transform(Translate(Vec(1, 2)))
	diff(t, Contour{on(1, 2), off(6, 12), on(11, 2)}, got)
	// The original is left untouched.
	diff(t, Contour{on(0, 0), off(5, 10), on(10, 0)}, c)

	diff(t, Contour(nil), Contour(nil).Transform(FlipY))
}

func TestContourRound(t *testing.T) {
	c := Contour{on(0.4, -0.6), off(2.5, 9.49)}
	diff(t, Contour{on(0, -1), off(3, 9)}, c.Round())
}

func TestContourClone(t *testing.T) {
	c := Contour{on(0, 0), on(1, 1)}
	cc := c.Clone()
	cc[0] = off(5, 5)
	diff(t, on(0, 0), c[0])
	diff(t, Contour(nil), Contour(nil).Clone())
}

func TestContourEndsOnCurve(t *testing.T) {
	tests := []struct {
		c    Contour
		want bool
	}{
		{nil, false},
		{Contour{}, false},
		{Contour{on(0, 0)}, true},
		{Contour{on(0, 0), off(1, 1)}, false},
		{Contour{off(0, 0), on(1, 1)}, true},
	}
	for _, tt := range tests {
		if got := tt.c.EndsOnCurve(); got != tt.want {
			t.Errorf("%v: got %t, want %t", tt.c, got, tt.want)
		}
	}
}

func TestTransformContours(t *testing.T) {
	cs := []Contour{
		{on(0, 0), off(5, 10), on(10, 0)},
		{on(1, 1)},
	}
	m := ComposeAll(Matrix{1, 0, 0, 1, 100, 0}, Matrix{2, 0, 0, -1})
	want := []Contour{
		{on(100, 0), off(110, -10), on(120, 0)},
		{on(102, -1)},
	}
	diff(t, want, TransformContours(cs, m))
	diff(t, cs, TransformContours(cs, nil))
}
