//go:build !cuda

package gpu

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"
)

// CPU fallback (no CUDA build tag). The kernels are implemented with plain
// strided loops so non-CUDA builds are fully functional.

func Available() bool { return false }

// DeviceName identifies the compute backend for this build.
func DeviceName() string {
	brand := cpuid.CPU.BrandName
	if brand == "" { brand = "unknown cpu" }
	return fmt.Sprintf("cpu fallback (%s)", brand)
}

// Features lists SIMD capabilities of the fallback CPU.
func Features() []string {
	var out []string
	for _, f := range []struct {
		name string
		id   cpuid.FeatureID
	}{
		{"avx", cpuid.AVX},
		{"avx2", cpuid.AVX2},
		{"avx512f", cpuid.AVX512F},
		{"fma3", cpuid.FMA3},
	} {
		if cpuid.CPU.Has(f.id) { out = append(out, f.name) }
	}
	return out
}

// ScalF32 computes x := alpha*x over n elements with stride incx.
func ScalF32(n int, alpha float32, x []float32, incx int) bool {
	if n <= 0 || incx <= 0 || len(x) < 1+(n-1)*incx { return false }
	if incx == 1 {
		for i := range x[:n] { x[i] *= alpha }
		return true
	}
	ix := 0
	for i := 0; i < n; i++ {
		x[ix] *= alpha
		ix += incx
	}
	return true
}

// AxpyF32 computes y := alpha*x + y over n elements with strides incx, incy.
func AxpyF32(n int, alpha float32, x []float32, incx int, y []float32, incy int) bool {
	if n <= 0 || incx <= 0 || incy <= 0 { return false }
	if len(x) < 1+(n-1)*incx || len(y) < 1+(n-1)*incy { return false }
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		y[iy] += alpha * x[ix]
		ix += incx
		iy += incy
	}
	return true
}

// DotF32 returns the dot product of two strided vectors.
func DotF32(n int, x []float32, incx int, y []float32, incy int) (float32, bool) {
	if n <= 0 || incx <= 0 || incy <= 0 { return 0, false }
	if len(x) < 1+(n-1)*incx || len(y) < 1+(n-1)*incy { return 0, false }
	var s float32
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		s += x[ix] * y[iy]
		ix += incx
		iy += incy
	}
	return s, true
}

func Close() {}
