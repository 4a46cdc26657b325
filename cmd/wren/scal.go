package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/qrv0/wren/internal/check"
	"github.com/qrv0/wren/internal/gpu"
	"github.com/qrv0/wren/internal/ref"
	"github.com/qrv0/wren/internal/vecfile"
)

func cmdScal() {
	fs := flag.NewFlagSet("scal", flag.ExitOnError)
	var alpha float64
	fs.Float64Var(&alpha, "a", 3.0, "alpha scalar")
	fs.Float64Var(&alpha, "alpha", 3.0, "alpha scalar")
	var incx int
	fs.IntVar(&incx, "x", 1, "increment for x vector")
	fs.IntVar(&incx, "incx", 1, "increment for x vector")
	n := fs.Int("n", 5, "size of vector")
	in := fs.String("in", "", "optional input .wvec (overrides -n/-x)")
	out := fs.String("out", "", "optional output .wvec with the device result")
	fs.Parse(os.Args[2:])

	var x []float32
	nn, ix := *n, incx
	if *in != "" {
		r, err := vecfile.Open(*in)
		if err != nil { fmt.Fprintf(os.Stderr, "scal: open error: %v\n", err); os.Exit(1) }
		meta, data, err := r.Vector()
		r.Close()
		if err != nil { fmt.Fprintf(os.Stderr, "scal: read error: %v\n", err); os.Exit(1) }
		x, nn, ix = data, meta.N, meta.Incx
	}
	if ix <= 0 {
		fmt.Println("Value of 'x' should be greater than 0")
		return
	}
	if nn <= 0 {
		fmt.Println("Value of 'n' should be greater than 0")
		return
	}
	if x == nil {
		x = iota32(nn * ix)
	}
	fmt.Println("Input Vector x:", formatVec(x))

	dev, errs, err := runScal(nn, ix, float32(alpha), x)
	if err != nil { fmt.Fprintf(os.Stderr, "scal: %v\n", err); os.Exit(1) }
	fmt.Println("Output Vector x:", formatVec(dev))
	if *out != "" {
		meta := vecfile.Meta{N: nn, Incx: ix, Generator: "scal"}
		if err := vecfile.WriteVector(*out, meta, dev, 0); err != nil {
			fmt.Fprintf(os.Stderr, "scal: write error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Wrote:", *out)
	}
	if errs == 0 {
		fmt.Println("Validation passed.")
		return
	}
	fmt.Printf("Validation failed: %d errors\n", errs)
	os.Exit(errs)
}

// runScal computes the device result for x := alpha*x and the number of
// elements that disagree with the gonum gold reference beyond tolerance.
// The full backing slice is compared, so stride gaps must stay untouched.
func runScal(n, incx int, alpha float32, x []float32) ([]float32, int, error) {
	gold := cloneF32(x)
	if err := ref.Scal(n, alpha, gold, incx); err != nil { return nil, 0, err }
	dev := cloneF32(x)
	if !gpu.ScalF32(n, alpha, dev, incx) {
		return nil, 0, errors.New("device scal kernel failed")
	}
	return dev, check.CountMismatches(dev, gold, check.Eps32), nil
}
