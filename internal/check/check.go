package check

import "math"

// Eps32 is the validation tolerance: ten times the float32 machine epsilon.
const Eps32 float32 = 10 * 0x1p-23

// WithinTol reports whether a and b differ by at most tol. NaN never matches.
func WithinTol(a, b, tol float32) bool {
	d := float64(a) - float64(b)
	if math.IsNaN(d) { return false }
	return math.Abs(d) <= float64(tol)
}

// CountMismatches compares got against want element-wise over the full backing
// slices (gap elements of strided vectors included) and returns the number of
// elements outside tol. A length mismatch counts every extra element as an error.
func CountMismatches(got, want []float32, tol float32) int {
	n := len(got)
	if len(want) < n { n = len(want) }
	errs := 0
	for i := 0; i < n; i++ {
		if !WithinTol(got[i], want[i], tol) { errs++ }
	}
	if len(got) != len(want) {
		d := len(got) - len(want)
		if d < 0 { d = -d }
		errs += d
	}
	return errs
}
