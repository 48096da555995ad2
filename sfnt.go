package contour

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func fixedPoint(p fixed.Point26_6) Point {
	return Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// FromSegments converts glyph outline segments, as returned by
// [sfnt.Font.LoadGlyph], into contours. Every MoveTo starts a new contour.
// Quadratic segments are kept as they are; cubic segments, found in CFF
// fonts, are approximated with quadratics like the cubic commands of
// [PathToContoursOpt].
//
// Coordinates are converted from 26.6 fixed point to float64 without any
// further transformation.
func FromSegments(segs sfnt.Segments, opts *Options) []Contour {
	toQuads := opts.cubicToQuads()
	var out []Contour
	var cur Contour
	var pen Point
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if len(cur) > 0 {
				out = append(out, cur)
			}
			pen = fixedPoint(seg.Args[0])
			cur = Contour{onCurve(pen)}
		case sfnt.SegmentOpLineTo:
			pen = fixedPoint(seg.Args[0])
			cur = append(cur, onCurve(pen))
		case sfnt.SegmentOpQuadTo:
			pen = fixedPoint(seg.Args[1])
			cur = append(cur, offCurve(fixedPoint(seg.Args[0])), onCurve(pen))
		case sfnt.SegmentOpCubeTo:
			c := CubicBez{
				P0: pen,
				P1: fixedPoint(seg.Args[0]),
				P2: fixedPoint(seg.Args[1]),
				P3: fixedPoint(seg.Args[2]),
			}
			cur = reduceCubics([]CubicBez{c}, cur, toQuads)
			pen = c.P3
		default:
			panic(fmt.Sprintf("unhandled segment op %d", seg.Op))
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// GlyphContours loads the outline of glyph x from f and converts it to
// contours in font units, with the y axis pointing up as in the font's glyph
// tables. buf may be nil; see [sfnt.Buffer].
func GlyphContours(f *sfnt.Font, buf *sfnt.Buffer, x sfnt.GlyphIndex, opts *Options) ([]Contour, error) {
	if buf == nil {
		buf = &sfnt.Buffer{}
	}
	// A ppem equal to the units per em loads the outline unscaled.
	ppem := fixed.Int26_6(f.UnitsPerEm()) << 6
	segs, err := f.LoadGlyph(buf, x, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("contour: loading glyph %d: %w", x, err)
	}
	cs := FromSegments(segs, opts)
	for i, c := range cs {
		cs[i] = c.Transform(FlipY)
	}
	opts.logger().Debug("contour: loaded glyph", "glyph", int(x), "segments", len(segs), "contours", len(cs))
	return cs, nil
}
