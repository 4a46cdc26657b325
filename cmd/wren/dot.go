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

func cmdDot() {
	fs := flag.NewFlagSet("dot", flag.ExitOnError)
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

	devDot, goldDot, err := runDot(*n, incx, incy, x, y)
	if err != nil { fmt.Fprintf(os.Stderr, "dot: %v\n", err); os.Exit(1) }
	fmt.Printf("device dot = %g, host dot = %g\n", devDot, goldDot)
	// reduction error grows with n
	tol := check.Eps32 * float32(*n)
	if check.WithinTol(devDot, goldDot, tol) {
		fmt.Println("Validation passed.")
		return
	}
	fmt.Println("Validation failed: 1 errors")
	os.Exit(1)
}

func runDot(n, incx, incy int, x, y []float32) (float32, float32, error) {
	gold, err := ref.Dot(n, x, incx, y, incy)
	if err != nil { return 0, 0, err }
	dev, ok := gpu.DotF32(n, x, incx, y, incy)
	if !ok {
		return 0, 0, errors.New("device dot kernel failed")
	}
	return dev, gold, nil
}
