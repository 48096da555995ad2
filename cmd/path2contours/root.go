package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"honnef.co/go/contour"
)

type config struct {
	accuracy  float64
	matrices  []string
	scale     string
	skew      float64
	rotate    float64
	translate string
	round     bool
	verbose   bool
}

func (cfg *config) addFlags(f *pflag.FlagSet) {
	f.Float64Var(&cfg.accuracy, "accuracy", contour.DefaultAccuracy, "maximum distance between cubic curves and their quadratic approximation")
	f.StringArrayVarP(&cfg.matrices, "matrix", "m", nil, "affine matrix `a,b,c,d[,e,f]` applied to the contours; repeat to compose, outermost first")
	f.StringVar(&cfg.scale, "scale", "", "scale `x[,y]` applied after the matrices")
	f.Float64Var(&cfg.skew, "skew", 0, "slant by `degrees` to the right, applied after scaling")
	f.Float64Var(&cfg.rotate, "rotate", 0, "rotate anti-clockwise by `degrees`, applied after skewing")
	f.StringVar(&cfg.translate, "translate", "", "translate by `x,y`, applied last")
	f.BoolVar(&cfg.round, "round", false, "round coordinates to integers")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug diagnostics to stderr")
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:          "path2contours [path data...]",
		Short:        "Convert SVG path data to quadratic glyph contours",
		Long: `Convert SVG path data to quadratic glyph contours.

Each path is read from the arguments or, if there are none, one per line from
standard input. The contours of every path are written as one JSON object per
line.

The transform flags are applied in the order --matrix, --scale, --skew,
--rotate, --translate. A transform that mirrors the outline also reverses the
direction of every contour, so that outer contours stay clockwise.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cfg.addFlags(cmd.Flags())
	return cmd
}

type point struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	OnCurve bool    `json:"onCurve,omitempty"`
}

type result struct {
	Path     string    `json:"path"`
	Contours [][]point `json:"contours"`
	// Bounds is [xMin, yMin, xMax, yMax] of all points, if there are any.
	Bounds []float64 `json:"bounds,omitempty"`
}

func run(cfg *config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	contour.SetLogger(log)
	defer contour.SetLogger(nil)

	aff, ok, err := cfg.transform()
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths, err = readPaths(stdin)
		if err != nil {
			return err
		}
	}

	opts := &contour.Options{Accuracy: cfg.accuracy}
	enc := json.NewEncoder(stdout)
	for i, d := range paths {
		cs, err := contour.PathToContoursOpt(d, opts)
		if err != nil {
			return fmt.Errorf("path %d: %w", i+1, err)
		}
		if ok {
			cs = transformContours(cs, aff)
		}
		if cfg.round {
			for j, c := range cs {
				cs[j] = c.Round()
			}
		}
		log.Debug("converted path", "index", i+1, "contours", len(cs))
		if err := enc.Encode(newResult(d, cs)); err != nil {
			return err
		}
	}
	return nil
}

func newResult(d string, cs []contour.Contour) result {
	res := result{Path: d, Contours: make([][]point, len(cs))}
	for i, c := range cs {
		pts := make([]point, len(c))
		for j, p := range c {
			pts[j] = point{X: p.X, Y: p.Y, OnCurve: p.OnCurve}
		}
		res.Contours[i] = pts
	}
	if r, ok := contour.ControlBox(cs); ok {
		res.Bounds = []float64{r.X0, r.Y0, r.X1, r.Y1}
	}
	return res
}

// transform combines the transform flags into a single transform. It reports
// false if no transform flag is set.
func (cfg *config) transform() (contour.Affine, bool, error) {
	aff := contour.Identity
	set := false
	if len(cfg.matrices) > 0 {
		m, err := parseMatrices(cfg.matrices)
		if err != nil {
			return aff, false, err
		}
		aff = m.Affine()
		set = true
	}
	if cfg.scale != "" {
		n := contour.ParseParams(cfg.scale)
		switch len(n) {
		case 1:
			aff = aff.ThenScale(n[0], n[0])
		case 2:
			aff = aff.ThenScale(n[0], n[1])
		default:
			return aff, false, fmt.Errorf("invalid scale %q: want 1 or 2 values, got %d", cfg.scale, len(n))
		}
		set = true
	}
	if cfg.skew != 0 {
		aff = contour.Skew(math.Tan(radians(cfg.skew)), 0).Mul(aff)
		set = true
	}
	if cfg.rotate != 0 {
		aff = contour.Rotate(radians(cfg.rotate)).Mul(aff)
		set = true
	}
	if cfg.translate != "" {
		n := contour.ParseParams(cfg.translate)
		if len(n) != 2 {
			return aff, false, fmt.Errorf("invalid translation %q: want 2 values, got %d", cfg.translate, len(n))
		}
		aff = aff.ThenTranslate(contour.Vec(n[0], n[1]))
		set = true
	}
	if set && aff.Determinant() == 0 {
		return aff, false, fmt.Errorf("transform %v collapses the outline", aff.Matrix())
	}
	return aff, set, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// transformContours applies aff to cs. Mirroring transforms also reverse the
// contours, preserving their winding.
func transformContours(cs []contour.Contour, aff contour.Affine) []contour.Contour {
	mirror := aff.Determinant() < 0
	out := make([]contour.Contour, len(cs))
	for i, c := range cs {
		c = c.Transform(aff)
		if mirror {
			c = c.Reverse()
		}
		out[i] = c
	}
	return out
}

// parseMatrices parses and composes the --matrix flags. Every matrix is
// widened to 6 coefficients first, so that the translation of an inner matrix
// survives a linear outer one.
func parseMatrices(flags []string) (contour.Matrix, error) {
	ms := make([]contour.Matrix, len(flags))
	for i, f := range flags {
		n := contour.ParseParams(f)
		if len(n) != 4 && len(n) != 6 {
			return nil, fmt.Errorf("invalid matrix %q: want 4 or 6 coefficients, got %d", f, len(n))
		}
		ms[i] = contour.Matrix(n).Affine().Matrix()
	}
	return contour.ComposeAll(ms...), nil
}

func readPaths(r io.Reader) ([]string, error) {
	var paths []string
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 16<<20)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading paths: %w", err)
	}
	return paths, nil
}
