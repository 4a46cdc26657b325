//go:build !cuda

package main

import "testing"

func TestRunScalValidates(t *testing.T) {
	for _, tc := range []struct {
		n, incx int
		alpha   float32
	}{
		{1, 1, 3},
		{5, 1, 3},
		{5, 2, -0.5},
		{7, 3, 0},
		{100, 1, 1.0 / 3.0},
	} {
		x := iota32(tc.n * tc.incx)
		dev, errs, err := runScal(tc.n, tc.incx, tc.alpha, x)
		if err != nil { t.Fatalf("n=%d incx=%d: %v", tc.n, tc.incx, err) }
		if errs != 0 { t.Fatalf("n=%d incx=%d: %d mismatches", tc.n, tc.incx, errs) }
		if len(dev) != len(x) { t.Fatalf("result length changed") }
	}
}

func TestRunScalLeavesGapsUntouched(t *testing.T) {
	n, incx := 3, 4
	x := iota32(n * incx)
	dev, errs, err := runScal(n, incx, 2, x)
	if err != nil { t.Fatalf("runScal: %v", err) }
	if errs != 0 { t.Fatalf("%d mismatches", errs) }
	for i := range dev {
		if i%incx == 0 && i/incx < n {
			if dev[i] != 2*x[i] { t.Fatalf("dev[%d] got %f want %f", i, dev[i], 2*x[i]) }
		} else if dev[i] != x[i] {
			t.Fatalf("gap element %d changed: got %f want %f", i, dev[i], x[i])
		}
	}
}

func TestRunScalRejectsShortInput(t *testing.T) {
	if _, _, err := runScal(5, 2, 1, iota32(3)); err == nil {
		t.Fatalf("expected error for short input")
	}
}

func TestRunAxpyValidates(t *testing.T) {
	n, incx, incy := 4, 2, 1
	x := iota32(n * incx)
	y := make([]float32, n*incy)
	for i := range y { y[i] = 1 }
	dev, errs, err := runAxpy(n, incx, incy, 1.5, x, y)
	if err != nil { t.Fatalf("runAxpy: %v", err) }
	if errs != 0 { t.Fatalf("%d mismatches", errs) }
	if len(dev) != len(y) { t.Fatalf("result length changed") }
}

func TestRunDotValidates(t *testing.T) {
	n := 6
	x := iota32(n)
	y := make([]float32, n)
	for i := range y { y[i] = 2 }
	dev, gold, err := runDot(n, 1, 1, x, y)
	if err != nil { t.Fatalf("runDot: %v", err) }
	// 2 * (0+1+2+3+4+5) = 30
	if gold != 30 { t.Fatalf("gold dot got %f want 30", gold) }
	if dev != gold { t.Fatalf("device dot %f != gold %f", dev, gold) }
}

func TestFormatVecTruncates(t *testing.T) {
	short := formatVec([]float32{0, 1, 2})
	if short != "[0, 1, 2]" { t.Fatalf("got %q", short) }
	long := formatVec(iota32(40))
	if len(long) == 0 || long[0] != '[' { t.Fatalf("got %q", long) }
	if want := "... (40 total)]"; long[len(long)-len(want):] != want {
		t.Fatalf("long vector not truncated: %q", long)
	}
}
