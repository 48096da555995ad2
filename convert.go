package contour

import (
	"errors"
	"fmt"
	"log/slog"
)

// Options configures the conversion of paths to contours. A nil *Options is
// equivalent to the zero value.
type Options struct {
	// Accuracy is the maximum distance between a cubic Bézier and its
	// quadratic approximation. Zero means DefaultAccuracy.
	Accuracy float64

	// CubicToQuads, if set, replaces [CubicBez.Quadratics] for converting
	// cubic Béziers. Each quadratic must start where the previous one ended.
	// A cubic without quadratics adds no points.
	CubicToQuads func(c CubicBez) []QuadBez

	// ArcToQuads, if set, replaces [EllipticalArcToQuadratics].
	ArcToQuads func(rx, ry, xAxisRotation float64, largeArc, sweep bool, start, end Point) Contour

	// Logger, if set, is used instead of the package logger.
	Logger *slog.Logger
}

func (opts *Options) cubicToQuads() func(CubicBez) []QuadBez {
	if opts != nil && opts.CubicToQuads != nil {
		return opts.CubicToQuads
	}
	accuracy := DefaultAccuracy
	if opts != nil && opts.Accuracy > 0 {
		accuracy = opts.Accuracy
	}
	return func(c CubicBez) []QuadBez {
		return c.Quadratics(accuracy)
	}
}

func (opts *Options) arcToQuads() func(rx, ry, xAxisRotation float64, largeArc, sweep bool, start, end Point) Contour {
	if opts != nil && opts.ArcToQuads != nil {
		return opts.ArcToQuads
	}
	return EllipticalArcToQuadratics
}

func (opts *Options) logger() *slog.Logger {
	if opts != nil && opts.Logger != nil {
		return opts.Logger
	}
	return Logger()
}

// PathToContours converts SVG path data to contours using default options.
// See [PathToContoursOpt].
func PathToContours(d string) ([]Contour, error) {
	return PathToContoursOpt(d, nil)
}

// PathToContoursOpt converts SVG path data to contours of on-curve and
// off-curve points, approximating cubic Béziers and elliptical arcs with
// quadratic Béziers.
//
// The path is split into commands by [Tokenize], which also repairs a
// missing initial move and missing closes. Empty path data yields nil and no
// error; otherwise the result holds at least one contour, one per close.
//
// A command whose arguments do not form whole argument groups makes the path
// unconvertible and a [*CommandError] is returned. A command without any
// arguments is skipped with a warning.
func PathToContoursOpt(d string, opts *Options) ([]Contour, error) {
	cmds := Tokenize(d)
	if cmds == nil {
		return nil, nil
	}
	return CommandsToContours(cmds, opts)
}

// CommandsToContours converts a list of path commands to contours. Each close
// command terminates a contour; points drawn after the last close are
// discarded. Unlike [PathToContoursOpt], no repair is done on cmds.
func CommandsToContours(cmds []Command, opts *Options) ([]Contour, error) {
	in := &interpreter{
		toQuads: opts.cubicToQuads(),
		toArc:   opts.arcToQuads(),
		log:     opts.logger(),
	}
	for i, cmd := range cmds {
		if err := in.step(cmd); err != nil {
			var cerr *CommandError
			if errors.As(err, &cerr) {
				cerr.Index = i
			}
			return nil, err
		}
	}
	in.log.Debug("contour: converted path", "commands", len(cmds), "contours", len(in.contours))
	return in.contours, nil
}

// interpreter holds the state of one conversion: the pen position, the last
// cubic control point for smooth cubics, the open contour and the finished
// contours.
type interpreter struct {
	pen Point
	// smooth is the second control point of the last cubic, valid if
	// hasSmooth is set.
	smooth    Point
	hasSmooth bool

	contour  Contour
	contours []Contour

	toQuads func(CubicBez) []QuadBez
	toArc   func(rx, ry, xAxisRotation float64, largeArc, sweep bool, start, end Point) Contour
	log     *slog.Logger
}

// origin returns the point that a command's coordinates are relative to.
func (in *interpreter) origin(rel bool) Point {
	if rel {
		return in.pen
	}
	return Point{}
}

func (in *interpreter) step(cmd Command) error {
	if cmd.Kind != CloseKind && len(cmd.Args) == 0 {
		in.log.Warn("contour: command args empty, skipping", "command", cmd.Kind.String())
		return nil
	}
	if n := cmd.Kind.arity(); n > 0 && len(cmd.Args)%n != 0 {
		return &CommandError{Command: cmd}
	}

	switch cmd.Kind {
	case MoveKind, LineKind:
		in.line(cmd.Args, cmd.Relative)
	case HorizontalKind:
		in.horizontal(cmd.Args, cmd.Relative)
	case VerticalKind:
		in.vertical(cmd.Args, cmd.Relative)
	case QuadKind:
		in.quad(cmd.Args, cmd.Relative)
	case SmoothQuadKind:
		in.smoothQuad(cmd.Args, cmd.Relative)
	case CubicKind:
		in.cubic(cmd.Args, cmd.Relative)
	case SmoothCubicKind:
		in.smoothCubic(cmd.Args, cmd.Relative)
	case ArcKind:
		in.arc(cmd.Args, cmd.Relative)
	case CloseKind:
		in.close()
	default:
		panic(fmt.Sprintf("unhandled command kind %d", cmd.Kind))
	}

	if cmd.Kind != CubicKind && cmd.Kind != SmoothCubicKind {
		in.hasSmooth = false
	}
	return nil
}

func (in *interpreter) line(args []float64, rel bool) {
	p := in.pen
	for i := 0; i < len(args); i += 2 {
		if rel {
			p = p.Translate(Vec(args[i], args[i+1]))
		} else {
			p = Pt(args[i], args[i+1])
		}
		in.contour = append(in.contour, onCurve(p))
	}
	in.pen = p
}

func (in *interpreter) horizontal(args []float64, rel bool) {
	for _, x := range args {
		if rel {
			in.pen.X += x
		} else {
			in.pen.X = x
		}
		in.contour = append(in.contour, onCurve(in.pen))
	}
}

func (in *interpreter) vertical(args []float64, rel bool) {
	for _, y := range args {
		if rel {
			in.pen.Y += y
		} else {
			in.pen.Y = y
		}
		in.contour = append(in.contour, onCurve(in.pen))
	}
}

func (in *interpreter) quad(args []float64, rel bool) {
	base := in.origin(rel)
	for i := 0; i < len(args); i += 4 {
		c := base.Translate(Vec(args[i], args[i+1]))
		end := base.Translate(Vec(args[i+2], args[i+3]))
		in.contour = append(in.contour, offCurve(c), onCurve(end))
		if rel {
			base = end
		}
		in.pen = end
	}
}

// smoothQuad draws quadratics whose control points are reflections of the
// previous control point. Only the control points and the final end point are
// appended; the intermediate end points are implied, as each lies halfway
// between its two neighbouring control points.
func (in *interpreter) smoothQuad(args []float64, rel bool) {
	last, ok := in.contour.last()
	if ok {
		in.contour = in.contour[:len(in.contour)-1]
	} else {
		last = onCurve(in.pen)
	}
	prev, ok := in.contour.last()
	if !ok {
		prev = last
	}

	ctrl := last.Reflect(prev.Point)
	in.contour = append(in.contour, offCurve(ctrl))

	p := in.pen
	n := len(args)
	for i := 0; i < n-2; i += 2 {
		if rel {
			p = p.Translate(Vec(args[i], args[i+1]))
		} else {
			p = Pt(args[i], args[i+1])
		}
		ctrl = p.Reflect(ctrl)
		in.contour = append(in.contour, offCurve(ctrl))
	}

	if rel {
		p = p.Translate(Vec(args[n-2], args[n-1]))
	} else {
		p = Pt(args[n-2], args[n-1])
	}
	in.pen = p
	in.contour = append(in.contour, onCurve(p))
}

func (in *interpreter) cubic(args []float64, rel bool) {
	base := in.origin(rel)
	start := in.pen
	cubics := make([]CubicBez, 0, len(args)/6)
	for i := 0; i < len(args); i += 6 {
		c := CubicBez{
			P0: start,
			P1: base.Translate(Vec(args[i], args[i+1])),
			P2: base.Translate(Vec(args[i+2], args[i+3])),
			P3: base.Translate(Vec(args[i+4], args[i+5])),
		}
		cubics = append(cubics, c)
		start = c.P3
		if rel {
			base = c.P3
		}
	}
	in.pen = start
	in.appendCubics(cubics)
}

// smoothCubic draws cubics whose first control point is the reflection of the
// previous cubic's second control point about the shared anchor. Without a
// previous cubic, the first control point coincides with the anchor.
//
// The last point of the contour is popped and becomes the start anchor of the
// first cubic. On an empty contour the pen is used instead.
func (in *interpreter) smoothCubic(args []float64, rel bool) {
	start := in.pen
	if last, ok := in.contour.last(); ok {
		in.contour = in.contour[:len(in.contour)-1]
		start = last.Point
	}
	ref := start
	if in.hasSmooth {
		ref = in.smooth
	}
	c1 := start.Reflect(ref)

	base := in.origin(rel)
	cubics := make([]CubicBez, 0, len(args)/4)
	for i := 0; i < len(args); i += 4 {
		c2 := base.Translate(Vec(args[i], args[i+1]))
		end := base.Translate(Vec(args[i+2], args[i+3]))
		cubics = append(cubics, CubicBez{start, c1, c2, end})
		start = end
		c1 = end.Reflect(c2)
		if rel {
			base = end
		}
	}
	in.pen = start
	in.appendCubics(cubics)
}

func (in *interpreter) appendCubics(cubics []CubicBez) {
	in.contour = reduceCubics(cubics, in.contour, in.toQuads)
	in.smooth = cubics[len(cubics)-1].P2
	in.hasSmooth = true
}

func (in *interpreter) arc(args []float64, rel bool) {
	for i := 0; i < len(args); i += 7 {
		end := Pt(args[i+5], args[i+6])
		if rel {
			end = in.pen.Translate(Vec(args[i+5], args[i+6]))
		}
		pts := in.toArc(args[i], args[i+1], args[i+2], args[i+3] != 0, args[i+4] != 0, in.pen, end)
		if len(pts) > 1 {
			in.contour = append(in.contour, pts[1:]...)
		}
		in.pen = end
	}
}

func (in *interpreter) close() {
	c := in.contour
	if c == nil {
		c = Contour{}
	}
	in.contours = append(in.contours, c)
	in.contour = nil
}
