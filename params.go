package contour

import (
	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t' || b[i] == '\f') {
		i++
	}
	return i
}

// ParseParams parses the argument text of a path command into numbers.
//
// Numbers may be separated by whitespace, commas, or nothing at all when the
// boundary is unambiguous, as in "1-2" or "1.5.5". Signs, numbers without
// leading digits and exponents are supported. Bytes that cannot start a
// number are skipped.
func ParseParams(s string) []float64 {
	return parseParams([]byte(s), false)
}

// ParseArcParams is like [ParseParams], but reads the fourth and fifth number
// of every group of seven, the large-arc and sweep flags of an elliptical arc,
// as single digits. This accepts the compact form "a10 10 0 0110 10" allowed
// by SVG.
func ParseArcParams(s string) []float64 {
	return parseParams([]byte(s), true)
}

func parseParams(b []byte, arc bool) []float64 {
	var out []float64
	for {
		b = b[skipCommaWhitespace(b):]
		if len(b) == 0 {
			return out
		}

		if arc {
			if i := len(out) % 7; (i == 3 || i == 4) && (b[0] == '0' || b[0] == '1') {
				out = append(out, float64(b[0]-'0'))
				b = b[1:]
				continue
			}
		}

		f, n := strconv.ParseFloat(b)
		if n == 0 {
			b = b[1:]
			continue
		}
		out = append(out, f)
		b = b[n:]
	}
}
