package contour

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestContourQuads(t *testing.T) {
	tests := []struct {
		name string
		in   Contour
		out  []QuadBez
	}{
		{"empty", nil, nil},
		{"single point", Contour{on(1, 1)}, nil},
		{"triangle", Contour{on(0, 0), on(10, 0), on(10, 10)}, []QuadBez{
			{Pt(0, 0), Pt(5, 0), Pt(10, 0)},
			{Pt(10, 0), Pt(10, 5), Pt(10, 10)},
			{Pt(10, 10), Pt(5, 5), Pt(0, 0)},
		}},
		{"quadratic", Contour{on(0, 0), off(5, 10), on(10, 0)}, []QuadBez{
			{Pt(0, 0), Pt(5, 10), Pt(10, 0)},
			{Pt(10, 0), Pt(5, 0), Pt(0, 0)},
		}},
		{"starts off-curve", Contour{off(5, 10), on(10, 0), on(0, 0)}, []QuadBez{
			{Pt(10, 0), Pt(5, 0), Pt(0, 0)},
			{Pt(0, 0), Pt(5, 10), Pt(10, 0)},
		}},
		{"implied points", Contour{off(0, 1), off(1, 0), off(0, -1), off(-1, 0)}, []QuadBez{
			{Pt(-0.5, 0.5), Pt(0, 1), Pt(0.5, 0.5)},
			{Pt(0.5, 0.5), Pt(1, 0), Pt(0.5, -0.5)},
			{Pt(0.5, -0.5), Pt(0, -1), Pt(-0.5, -0.5)},
			{Pt(-0.5, -0.5), Pt(-1, 0), Pt(-0.5, 0.5)},
		}},
		{"repeated end point", Contour{on(0, 0), off(5, 10), on(10, 0), on(0, 0)}, []QuadBez{
			{Pt(0, 0), Pt(5, 10), Pt(10, 0)},
			{Pt(10, 0), Pt(5, 0), Pt(0, 0)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(tt.in.Quads())
			diff(t, tt.out, got, cmpopts.EquateEmpty())
		})
	}
}

func TestContourQuadsKeepsInput(t *testing.T) {
	c := make(Contour, 2, 3)
	c[0], c[1] = off(0, 1), off(1, 0)
	full := c[:3]
	full[2] = on(9, 9)
	for range c.Quads() {
	}
	diff(t, on(9, 9), full[2])
}

func TestContourQuadsMergedTangency(t *testing.T) {
	// Decoding a contour with a dropped anchor restores the quadratics it was
	// made of.
	cs, err := PathToContours("M0 0C0 4 4 4 4 0")
	if err != nil {
		t.Fatal(err)
	}
	want := CubicBez{Pt(0, 0), Pt(0, 4), Pt(4, 4), Pt(4, 0)}.Quadratics(DefaultAccuracy)
	want = append(want, QuadBez{Pt(4, 0), Pt(2, 0), Pt(0, 0)})
	diff(t, want, slices.Collect(cs[0].Quads()))
}

func TestContourSignedArea(t *testing.T) {
	c := Contour{on(0, 0), on(10, 0), on(10, 10)}
	if got := c.SignedArea(); got != 50 {
		t.Errorf("got area %g, want 50", got)
	}
	if got := c.Reverse().SignedArea(); got != -50 {
		t.Errorf("got area %g for reversed contour, want -50", got)
	}

	cs, err := PathToContours("M0 0A10 10 0 0 1 20 0A10 10 0 0 1 0 0Z")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cs[0].SignedArea(), math.Pi*100; math.Abs(got-want) > 3 {
		t.Errorf("got area %g for circle, want about %g", got, want)
	}
}

func TestContourReverse(t *testing.T) {
	c := Contour{on(0, 0), off(5, 10), on(10, 0), on(5, -5)}
	diff(t, Contour{on(0, 0), on(5, -5), on(10, 0), off(5, 10)}, c.Reverse())
	diff(t, Contour(nil), Contour(nil).Reverse())
	diff(t, Contour{}, Contour{}.Reverse())
}
