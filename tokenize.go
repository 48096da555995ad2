package contour

import (
	"strings"
)

// Tokenize splits SVG path data into commands.
//
// Command letters are M, L, H, V, Q, T, C, S, A and Z in either case; lower
// case marks relative commands. The text following a letter, up to the next
// letter, holds the command's arguments. Other characters, such as the
// exponent marker in "1e3", are part of the argument text.
//
// Tokenize repairs two common defects of hand-written and exported path
// data. If the path does not begin with a move, an absolute "M 0 0" is
// prepended; text preceding the first command letter is ignored. A leading
// lower-case "m" is read as absolute, including any further coordinate pairs
// it carries. Every move other than the first that does not directly follow a
// close is preceded by a close, and a close is appended unless the path
// already ends in one, so every contour is terminated exactly once.
//
// Tokenize returns nil for empty or all-whitespace input.
func Tokenize(d string) []Command {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil
	}

	var cmds []Command
	if k, _ := kindOf(d[0]); k != MoveKind {
		cmds = append(cmds, Move(Point{}))
	}

	start := -1
	for i := 0; i < len(d); i++ {
		if _, ok := kindOf(d[i]); !ok {
			continue
		}
		if start >= 0 {
			cmds = append(cmds, newCommand(d[start], d[start+1:i]))
		}
		start = i
	}
	if start >= 0 {
		cmds = append(cmds, newCommand(d[start], d[start+1:]))
	}
	// A move at the very start has no pen position to be relative to, and
	// all of its pairs are absolute.
	if d[0] == 'm' {
		cmds[0].Relative = false
	}

	return repairCloses(cmds)
}

// newCommand builds the command for the command letter c with the raw
// argument text args.
func newCommand(c byte, args string) Command {
	kind, _ := kindOf(c)
	switch kind {
	case CloseKind:
		return Close()
	case ArcKind:
		return Command{Kind: kind, Relative: c >= 'a', Args: ParseArcParams(args)}
	default:
		return Command{Kind: kind, Relative: c >= 'a', Args: ParseParams(args)}
	}
}

// repairCloses inserts a close before every move that continues an open
// contour and terminates the last contour.
func repairCloses(cmds []Command) []Command {
	out := make([]Command, 0, len(cmds)+1)
	for i, cmd := range cmds {
		if cmd.Kind == MoveKind && i > 0 && cmds[i-1].Kind != CloseKind {
			out = append(out, Close())
		}
		out = append(out, cmd)
	}
	if len(out) == 0 || out[len(out)-1].Kind != CloseKind {
		out = append(out, Close())
	}
	return out
}
