package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/qrv0/wren/internal/check"
	"github.com/qrv0/wren/internal/gpu"
	"github.com/qrv0/wren/internal/ref"
)

func cmdAxpy() {
	fs := flag.NewFlagSet("axpy", flag.ExitOnError)
	var alpha float64
	fs.Float64Var(&alpha, "a", 3.0, "alpha scalar")
	fs.Float64Var(&alpha, "alpha", 3.0, "alpha scalar")
	var incx, incy int
	fs.IntVar(&incx, "x", 1, "increment for x vector")
	fs.IntVar(&incx, "incx", 1, "increment for x vector")
	fs.IntVar(&incy, "y", 1, "increment for y vector")
	fs.IntVar(&incy, "incy", 1, "increment for y vector")
	n := fs.Int("n", 5, "size of vectors")
	fs.Parse(os.Args[2:])

	if incx <= 0 {
		fmt.Println("Value of 'x' should be greater than 0")
		return
	}
	if incy <= 0 {
		fmt.Println("Value of 'y' should be greater than 0")
		return
	}
	if *n <= 0 {
		fmt.Println("Value of 'n' should be greater than 0")
		return
	}
	x := iota32(*n * incx)
	y := make([]float32, *n*incy)
	for i := range y { y[i] = 1 }
	fmt.Println("Input Vector x:", formatVec(x))
	fmt.Println("Input Vector y:", formatVec(y))

	dev, errs, err := runAxpy(*n, incx, incy, float32(alpha), x, y)
	if err != nil { fmt.Fprintf(os.Stderr, "axpy: %v\n", err); os.Exit(1) }
	fmt.Println("Output Vector y:", formatVec(dev))
	if errs == 0 {
		fmt.Println("Validation passed.")
		return
	}
	fmt.Printf("Validation failed: %d errors\n", errs)
	os.Exit(errs)
}

// runAxpy computes the device result for y := alpha*x + y and the mismatch
// count against the gonum gold reference.
func runAxpy(n, incx, incy int, alpha float32, x, y []float32) ([]float32, int, error) {
	gold := cloneF32(y)
	if err := ref.Axpy(n, alpha, x, incx, gold, incy); err != nil { return nil, 0, err }
	dev := cloneF32(y)
	if !gpu.AxpyF32(n, alpha, x, incx, dev, incy) {
		return nil, 0, errors.New("device axpy kernel failed")
	}
	return dev, check.CountMismatches(dev, gold, check.Eps32), nil
}
