package contour

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func fixedPt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func TestFromSegments(t *testing.T) {
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fixedPt(0, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fixedPt(1, 0)}},
		{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{fixedPt(2, 1), fixedPt(1, 2)}},
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fixedPt(10, 10)}},
		{Op: sfnt.SegmentOpCubeTo, Args: [3]fixed.Point26_6{fixedPt(10, 14), fixedPt(14, 14), fixedPt(14, 10)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fixedPt(10.5, 10.25)}},
	}
	want := []Contour{
		{on(0, 0), on(1, 0), off(2, 1), on(1, 2)},
		{on(10, 10), off(10.25, 13), off(13.75, 13), on(14, 10), on(14, 10), on(10.5, 10.25)},
	}
	diff(t, want, FromSegments(segs, nil))
	diff(t, []Contour(nil), FromSegments(nil, nil))
}

func TestGlyphContours(t *testing.T) {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	var buf sfnt.Buffer
	x, err := f.GlyphIndex(&buf, 'O')
	if err != nil {
		t.Fatal(err)
	}
	cs, err := GlyphContours(f, &buf, x, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 2 {
		t.Fatalf("got %d contours, want 2", len(cs))
	}

	maxY := 0.0
	for i, c := range cs {
		if !c[0].OnCurve || !c.EndsOnCurve() {
			t.Errorf("contour %d does not start and end on-curve", i)
		}
		for _, p := range c {
			maxY = max(maxY, p.Y)
		}
	}
	// Glyph coordinates have the y axis pointing up.
	if maxY < float64(f.UnitsPerEm())/2 {
		t.Errorf("got maximum y of %g, expected the glyph above the baseline", maxY)
	}
}

func TestGlyphContoursInvalidGlyph(t *testing.T) {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := GlyphContours(f, nil, sfnt.GlyphIndex(f.NumGlyphs()+10), nil); err == nil {
		t.Error("got nil error for an out of range glyph")
	}
}
