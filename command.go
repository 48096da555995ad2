package contour

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandKind identifies the kind of a path command.
type CommandKind int

const (
	// Move the pen, starting a new sub-path. Arguments are (x y)+; every pair
	// after the first draws a line.
	MoveKind CommandKind = iota + 1
	// Draw lines. Arguments are (x y)+.
	LineKind
	// Draw horizontal lines. Arguments are x+.
	HorizontalKind
	// Draw vertical lines. Arguments are y+.
	VerticalKind
	// Draw quadratic Béziers. Arguments are (cx cy x y)+.
	QuadKind
	// Draw quadratic Béziers whose control point is reflected from the previous
	// one. Arguments are (x y)+.
	SmoothQuadKind
	// Draw cubic Béziers. Arguments are (c1x c1y c2x c2y x y)+.
	CubicKind
	// Draw cubic Béziers whose first control point is reflected from the
	// previous one. Arguments are (c2x c2y x y)+.
	SmoothCubicKind
	// Draw elliptical arcs. Arguments are (rx ry rotation large-arc sweep x y)+.
	ArcKind
	// Close the current contour. Takes no arguments.
	CloseKind
)

// commandLetters maps upper-case path command letters to command kinds.
var commandLetters = [...]CommandKind{
	'M': MoveKind,
	'L': LineKind,
	'H': HorizontalKind,
	'V': VerticalKind,
	'Q': QuadKind,
	'T': SmoothQuadKind,
	'C': CubicKind,
	'S': SmoothCubicKind,
	'A': ArcKind,
	'Z': CloseKind,
}

// kindOf returns the command kind of the path command letter c, which may be
// upper or lower case.
func kindOf(c byte) (CommandKind, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if int(c) >= len(commandLetters) {
		return 0, false
	}
	k := commandLetters[c]
	return k, k != 0
}

// Letter returns the upper-case path command letter of k.
func (k CommandKind) Letter() byte {
	switch k {
	case MoveKind:
		return 'M'
	case LineKind:
		return 'L'
	case HorizontalKind:
		return 'H'
	case VerticalKind:
		return 'V'
	case QuadKind:
		return 'Q'
	case SmoothQuadKind:
		return 'T'
	case CubicKind:
		return 'C'
	case SmoothCubicKind:
		return 'S'
	case ArcKind:
		return 'A'
	case CloseKind:
		return 'Z'
	default:
		return '?'
	}
}

func (k CommandKind) String() string {
	return string(k.Letter())
}

// arity returns the number of arguments consumed by one repetition of k.
func (k CommandKind) arity() int {
	switch k {
	case MoveKind, LineKind, SmoothQuadKind:
		return 2
	case HorizontalKind, VerticalKind:
		return 1
	case QuadKind, SmoothCubicKind:
		return 4
	case CubicKind:
		return 6
	case ArcKind:
		return 7
	case CloseKind:
		return 0
	default:
		panic(fmt.Sprintf("unhandled command kind %d", k))
	}
}

// Command is a single path command, such as "l 10 10 20 0".
type Command struct {
	Kind CommandKind
	// Relative is set for lower-case commands, whose coordinates are offsets
	// from the current pen position.
	Relative bool
	// Args holds the command's arguments, possibly several repetitions of its
	// argument group. It is nil for CloseKind.
	Args []float64
}

func (cmd Command) String() string {
	letter := cmd.Kind.Letter()
	if cmd.Relative {
		letter += 'a' - 'A'
	}
	var sb strings.Builder
	sb.WriteByte(letter)
	for i, arg := range cmd.Args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(arg, 'g', -1, 64))
	}
	return sb.String()
}

// Move returns an absolute move command.
func Move(pt Point) Command {
	return Command{Kind: MoveKind, Args: []float64{pt.X, pt.Y}}
}

// Close returns a close command.
func Close() Command {
	return Command{Kind: CloseKind}
}
