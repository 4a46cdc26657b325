//go:build cuda

package gpu

import "testing"

func TestCUDAAvailable(t *testing.T) {
	if !Available() { t.Skip("CUDA not available on this runner") }
	// simple scal sanity
	x := []float32{0, 1, 2, 3, 4}
	if !ScalF32(5, 3, x, 1) { t.Fatalf("ScalF32 failed") }
	want := []float32{0, 3, 6, 9, 12}
	for i := range want {
		if x[i] != want[i] { t.Fatalf("x[%d] got %f want %f", i, x[i], want[i]) }
	}
}
