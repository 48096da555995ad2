// Package contour converts vector path data into the contours of TrueType-style
// glyph outlines, and composes the affine matrices used to transform them.
//
// # Contours
//
// A [Contour] is an ordered list of [ContourPoint] values. Each point is either
// on-curve, an anchor the outline passes through, or off-curve, the control
// point of a quadratic Bézier. This is the point model of glyf tables in
// TrueType fonts: two consecutive off-curve points imply an on-curve point
// halfway between them, which allows chains of smoothly joined quadratics to be
// stored compactly. [Contour.Quads] decodes a contour back into its quadratic
// segments, and [ControlBox] computes the bounding box stored alongside glyph
// outlines.
//
// # Paths
//
// [PathToContours] and [PathToContoursOpt] accept SVG path data such as
//
//	M10 10 h80 v80 q-40 40 -80 0 z
//
// and produce one contour per closed sub-path. All ten SVG path commands are
// supported, in their absolute and relative forms:
//
//   - M, L, H and V append on-curve points.
//   - Q appends a control point and an anchor; T reflects the previous control
//     point.
//   - C and S describe cubic Béziers, which are approximated by one or more
//     quadratics (see [CubicBez.Quadratics]). S reflects the previous cubic's
//     second control point.
//   - A describes an elliptical arc, approximated by quadratics (see
//     [EllipticalArcToQuadratics]).
//   - Z terminates the current contour.
//
// Path data is split into commands by [Tokenize], which repairs a missing
// leading move and missing closes. Paths whose commands have incomplete
// argument groups are rejected with a [*CommandError]; commands without any
// arguments are skipped and reported through the package [Logger].
//
// When the quadratics approximating consecutive cubics meet tangentially, that
// is, when the control points on both sides of a shared anchor are exact
// reflections of each other about it, the anchor is dropped because it is
// implied by the control points. The comparison is exact; no tolerance is
// applied.
//
// # Glyph outlines
//
// [GlyphContours] and [FromSegments] convert outlines loaded with
// golang.org/x/image/font/sfnt into the same contour model.
//
// # Matrices
//
// [Matrix] is the array form of an affine transform found in glyph data: 4
// coefficients for a linear transform, or 6 coefficients including a
// translation. [Compose] and [ComposeAll] combine them. [Affine] is the
// fixed-size form used for transforming points and contours.
//
// # Concurrency
//
// Conversions hold all of their state locally and may run concurrently. The
// logger set with [SetLogger] is shared.
package contour
