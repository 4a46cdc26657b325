package check

import (
	"math"
	"testing"
)

func TestWithinTol(t *testing.T) {
	if !WithinTol(1.0, 1.0, 0) { t.Fatalf("equal values must match") }
	if !WithinTol(1.0, 1.0+Eps32/2, Eps32) { t.Fatalf("diff below tol must match") }
	if WithinTol(1.0, 1.0+2*Eps32, Eps32) { t.Fatalf("diff above tol must not match") }
	nan := float32(math.NaN())
	if WithinTol(nan, nan, Eps32) { t.Fatalf("NaN must never match") }
	if WithinTol(1, nan, Eps32) { t.Fatalf("NaN must never match") }
}

func TestCountMismatches(t *testing.T) {
	got := []float32{1, 2, 3, 4}
	want := []float32{1, 2, 3, 4}
	if n := CountMismatches(got, want, Eps32); n != 0 { t.Fatalf("want 0 errors, got %d", n) }
	got[1] = 2.5
	got[3] = -4
	if n := CountMismatches(got, want, Eps32); n != 2 { t.Fatalf("want 2 errors, got %d", n) }
}

func TestCountMismatchesLength(t *testing.T) {
	if n := CountMismatches([]float32{1, 2, 3}, []float32{1}, Eps32); n != 2 {
		t.Fatalf("length difference should count, got %d", n)
	}
}

func TestEps32Value(t *testing.T) {
	// ten times 2^-23
	if math.Abs(float64(Eps32)-10*math.Pow(2, -23)) > 1e-12 {
		t.Fatalf("Eps32 got %g", Eps32)
	}
}
