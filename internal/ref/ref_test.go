package ref

import (
	"math"
	"testing"
)

func TestScalMatchesLoop(t *testing.T) {
	n, incx := 4, 3
	alpha := float32(2.5)
	x := make([]float32, n*incx)
	for i := range x { x[i] = float32(i) }
	want := append([]float32(nil), x...)
	for i := 0; i < n; i++ { want[i*incx] *= alpha }
	if err := Scal(n, alpha, x, incx); err != nil { t.Fatalf("Scal: %v", err) }
	for i := range want {
		if x[i] != want[i] { t.Fatalf("x[%d] got %f want %f", i, x[i], want[i]) }
	}
}

func TestScalRejectsBadArgs(t *testing.T) {
	x := []float32{1, 2, 3}
	if err := Scal(0, 1, x, 1); err == nil { t.Fatalf("n=0 should error") }
	if err := Scal(3, 1, x, 0); err == nil { t.Fatalf("incx=0 should error") }
	if err := Scal(3, 1, x, 2); err == nil { t.Fatalf("short x should error") }
}

func TestAxpyMatchesLoop(t *testing.T) {
	n := 5
	alpha := float32(-1.5)
	x := []float32{0, 1, 2, 3, 4}
	y := []float32{1, 1, 1, 1, 1}
	want := make([]float32, n)
	for i := 0; i < n; i++ { want[i] = alpha*x[i] + y[i] }
	if err := Axpy(n, alpha, x, 1, y, 1); err != nil { t.Fatalf("Axpy: %v", err) }
	for i := range want {
		if y[i] != want[i] { t.Fatalf("y[%d] got %f want %f", i, y[i], want[i]) }
	}
}

func TestDot(t *testing.T) {
	d, err := Dot(3, []float32{1, 2, 3}, 1, []float32{4, 5, 6}, 1)
	if err != nil { t.Fatalf("Dot: %v", err) }
	if math.Abs(float64(d)-32) > 1e-6 { t.Fatalf("dot got %f want 32", d) }
}

func TestDotStrided(t *testing.T) {
	// x picks 1,3 (incx=2), y picks 10,20 (incy=1)
	d, err := Dot(2, []float32{1, 9, 3}, 2, []float32{10, 20}, 1)
	if err != nil { t.Fatalf("Dot: %v", err) }
	if math.Abs(float64(d)-70) > 1e-6 { t.Fatalf("dot got %f want 70", d) }
}
