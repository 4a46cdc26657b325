//go:build cuda

package gpu

/*
#cgo LDFLAGS: -lcublas -lcudart
#include <cuda_runtime.h>
#include <cublas_v2.h>

static const char* cudaErrStr(cudaError_t e) { return cudaGetErrorString(e); }

typedef struct {
    cublasHandle_t handle;
    int ok;
} gpu_ctx;

static gpu_ctx G = {0};

static const char* gpu_init() {
    if (G.ok) return NULL;
    cublasStatus_t st = cublasCreate(&G.handle);
    if (st != CUBLAS_STATUS_SUCCESS) return "cublasCreate failed";
    // alpha and result scalars live in host memory
    st = cublasSetPointerMode(G.handle, CUBLAS_POINTER_MODE_HOST);
    if (st != CUBLAS_STATUS_SUCCESS) { cublasDestroy(G.handle); return "cublasSetPointerMode failed"; }
    G.ok = 1;
    return NULL;
}

static void gpu_close() {
    if (G.ok) { cublasDestroy(G.handle); G.ok = 0; }
}

static const char* gpu_scal_f32(int n, float alpha, float* x, int incx) {
    if (!G.ok) return "not initialized";
    size_t sz = ((size_t)(n - 1) * (size_t)incx + 1) * sizeof(float);
    float* dx = NULL;
    cudaError_t ce;
    ce = cudaMalloc((void**)&dx, sz); if (ce != cudaSuccess) return cudaErrStr(ce);
    ce = cudaMemcpy(dx, x, sz, cudaMemcpyHostToDevice); if (ce != cudaSuccess) { cudaFree(dx); return cudaErrStr(ce); }
    cublasStatus_t st = cublasSscal(G.handle, n, &alpha, dx, incx);
    if (st != CUBLAS_STATUS_SUCCESS) { cudaFree(dx); return "cublasSscal failed"; }
    // device-to-host copy synchronizes with the kernel
    ce = cudaMemcpy(x, dx, sz, cudaMemcpyDeviceToHost);
    cudaFree(dx);
    if (ce != cudaSuccess) return cudaErrStr(ce);
    return NULL;
}

static const char* gpu_axpy_f32(int n, float alpha, const float* x, int incx, float* y, int incy) {
    if (!G.ok) return "not initialized";
    size_t xsz = ((size_t)(n - 1) * (size_t)incx + 1) * sizeof(float);
    size_t ysz = ((size_t)(n - 1) * (size_t)incy + 1) * sizeof(float);
    float *dx = NULL, *dy = NULL;
    cudaError_t ce;
    ce = cudaMalloc((void**)&dx, xsz); if (ce != cudaSuccess) return cudaErrStr(ce);
    ce = cudaMalloc((void**)&dy, ysz); if (ce != cudaSuccess) { cudaFree(dx); return cudaErrStr(ce); }
    ce = cudaMemcpy(dx, x, xsz, cudaMemcpyHostToDevice); if (ce != cudaSuccess) { cudaFree(dx); cudaFree(dy); return cudaErrStr(ce); }
    ce = cudaMemcpy(dy, y, ysz, cudaMemcpyHostToDevice); if (ce != cudaSuccess) { cudaFree(dx); cudaFree(dy); return cudaErrStr(ce); }
    cublasStatus_t st = cublasSaxpy(G.handle, n, &alpha, dx, incx, dy, incy);
    if (st != CUBLAS_STATUS_SUCCESS) { cudaFree(dx); cudaFree(dy); return "cublasSaxpy failed"; }
    ce = cudaMemcpy(y, dy, ysz, cudaMemcpyDeviceToHost);
    cudaFree(dx); cudaFree(dy);
    if (ce != cudaSuccess) return cudaErrStr(ce);
    return NULL;
}

static const char* gpu_dot_f32(int n, const float* x, int incx, const float* y, int incy, float* out) {
    if (!G.ok) return "not initialized";
    size_t xsz = ((size_t)(n - 1) * (size_t)incx + 1) * sizeof(float);
    size_t ysz = ((size_t)(n - 1) * (size_t)incy + 1) * sizeof(float);
    float *dx = NULL, *dy = NULL;
    cudaError_t ce;
    ce = cudaMalloc((void**)&dx, xsz); if (ce != cudaSuccess) return cudaErrStr(ce);
    ce = cudaMalloc((void**)&dy, ysz); if (ce != cudaSuccess) { cudaFree(dx); return cudaErrStr(ce); }
    ce = cudaMemcpy(dx, x, xsz, cudaMemcpyHostToDevice); if (ce != cudaSuccess) { cudaFree(dx); cudaFree(dy); return cudaErrStr(ce); }
    ce = cudaMemcpy(dy, y, ysz, cudaMemcpyHostToDevice); if (ce != cudaSuccess) { cudaFree(dx); cudaFree(dy); return cudaErrStr(ce); }
    cublasStatus_t st = cublasSdot(G.handle, n, dx, incx, dy, incy, out);
    cudaFree(dx); cudaFree(dy);
    if (st != CUBLAS_STATUS_SUCCESS) return "cublasSdot failed";
    return NULL;
}
*/
import "C"
import "unsafe"

var available bool

func init() {
	if C.gpu_init() == nil {
		available = true
	}
}

// Available reports whether CUDA/cuBLAS is available (build tag + init ok)
func Available() bool { return available }

func DeviceName() string { return "cuda/cublas" }

// Features is empty on the CUDA backend; SIMD capability reporting only
// applies to the CPU fallback.
func Features() []string { return nil }

// ScalF32 computes x := alpha*x over n elements with stride incx, using cuBLAS.
func ScalF32(n int, alpha float32, x []float32, incx int) bool {
	if !available { return false }
	if n <= 0 || incx <= 0 || len(x) < 1+(n-1)*incx { return false }
	if err := C.gpu_scal_f32(C.int(n), C.float(alpha), (*C.float)(unsafe.Pointer(&x[0])), C.int(incx)); err != nil {
		return false
	}
	return true
}

// AxpyF32 computes y := alpha*x + y over n elements with strides incx, incy, using cuBLAS.
func AxpyF32(n int, alpha float32, x []float32, incx int, y []float32, incy int) bool {
	if !available { return false }
	if n <= 0 || incx <= 0 || incy <= 0 { return false }
	if len(x) < 1+(n-1)*incx || len(y) < 1+(n-1)*incy { return false }
	if err := C.gpu_axpy_f32(C.int(n), C.float(alpha),
		(*C.float)(unsafe.Pointer(&x[0])), C.int(incx),
		(*C.float)(unsafe.Pointer(&y[0])), C.int(incy)); err != nil {
		return false
	}
	return true
}

// DotF32 returns the dot product of two strided vectors, computed with cuBLAS.
func DotF32(n int, x []float32, incx int, y []float32, incy int) (float32, bool) {
	if !available { return 0, false }
	if n <= 0 || incx <= 0 || incy <= 0 { return 0, false }
	if len(x) < 1+(n-1)*incx || len(y) < 1+(n-1)*incy { return 0, false }
	var out C.float
	if err := C.gpu_dot_f32(C.int(n),
		(*C.float)(unsafe.Pointer(&x[0])), C.int(incx),
		(*C.float)(unsafe.Pointer(&y[0])), C.int(incy), &out); err != nil {
		return 0, false
	}
	return float32(out), true
}

func Close() { C.gpu_close() }
