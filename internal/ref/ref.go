package ref

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas32"
)

// Gold-standard host computations for the level-1 kernels, backed by gonum.
// Device results are validated against these.

func checkVec(name string, n, inc, length int) error {
	if n <= 0 { return fmt.Errorf("ref: n must be positive, got %d", n) }
	if inc <= 0 { return fmt.Errorf("ref: inc%s must be positive, got %d", name, inc) }
	if need := 1 + (n-1)*inc; length < need {
		return fmt.Errorf("ref: %s too short: len %d, need %d", name, length, need)
	}
	return nil
}

// Scal computes x := alpha*x over n strided elements, in place.
func Scal(n int, alpha float32, x []float32, incx int) error {
	if err := checkVec("x", n, incx, len(x)); err != nil { return err }
	blas32.Scal(alpha, blas32.Vector{N: n, Inc: incx, Data: x})
	return nil
}

// Axpy computes y := alpha*x + y over n strided elements, in place.
func Axpy(n int, alpha float32, x []float32, incx int, y []float32, incy int) error {
	if err := checkVec("x", n, incx, len(x)); err != nil { return err }
	if err := checkVec("y", n, incy, len(y)); err != nil { return err }
	blas32.Axpy(alpha,
		blas32.Vector{N: n, Inc: incx, Data: x},
		blas32.Vector{N: n, Inc: incy, Data: y})
	return nil
}

// Dot returns the dot product of two strided vectors.
func Dot(n int, x []float32, incx int, y []float32, incy int) (float32, error) {
	if err := checkVec("x", n, incx, len(x)); err != nil { return 0, err }
	if err := checkVec("y", n, incy, len(y)); err != nil { return 0, err }
	d := blas32.Dot(
		blas32.Vector{N: n, Inc: incx, Data: x},
		blas32.Vector{N: n, Inc: incy, Data: y})
	return d, nil
}
