package contour

import "fmt"

// Matrix is an affine transform in the array form used by glyph tables and
// composite glyph records. It has either 4 coefficients [a b c d], a purely
// linear transform, or 6 coefficients [a b c d e f], which add the translation
// (e, f). The coefficients follow the same convention as [Affine]:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// A nil Matrix is the 4-coefficient identity [1 0 0 1].
type Matrix []float64

// IdentityMatrix returns the 4-coefficient identity matrix.
func IdentityMatrix() Matrix {
	return Matrix{1, 0, 0, 1}
}

// Linear reports whether m has no translation part, i.e. whether it is a
// 4-coefficient (or nil) matrix.
func (m Matrix) Linear() bool {
	return len(m) <= 4
}

// Affine returns m as an [Affine]. Coefficients missing from m are taken from
// the identity transform; coefficients beyond the sixth are ignored.
func (m Matrix) Affine() Affine {
	n := Identity.Coefficients()
	copy(n[:], m)
	return NewAffine(n)
}

func (m Matrix) String() string {
	return fmt.Sprint([]float64(m))
}

// Matrix returns aff as a 6-coefficient [Matrix].
func (aff Affine) Matrix() Matrix {
	n := aff.Coefficients()
	return Matrix(n[:])
}

// Compose returns the matrix that applies m2 first and m1 second, m1 being the
// outer transform. A nil matrix is the identity.
//
// The arity of the result follows m1. If m1 is linear, the result has 4
// coefficients and any translation of m2 is dropped. Otherwise the result has
// 6 coefficients, with
//
//	e' = a1*e2 + c1*f2 + e1
//	f' = b1*e2 + d1*f2 + f1
//
// where a missing translation of m2 counts as zero.
func Compose(m1, m2 Matrix) Matrix {
	out := m1.Affine().Mul(m2.Affine()).Matrix()
	if m1.Linear() {
		return out[:4:4]
	}
	return out
}

// ComposeAll left-folds [Compose] over ms, so that ComposeAll(a, b, c) equals
// Compose(Compose(a, b), c). It panics if ms is empty.
func ComposeAll(ms ...Matrix) Matrix {
	if len(ms) == 0 {
		panic("contour: ComposeAll called without matrices")
	}
	out := ms[0]
	for _, m := range ms[1:] {
		out = Compose(out, m)
	}
	return out
}
