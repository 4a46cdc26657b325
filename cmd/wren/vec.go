package main

import (
	"fmt"
	"strings"
)

// iota32 builds the deterministic input sequence 0, 1, 2, ...
func iota32(size int) []float32 {
	v := make([]float32, size)
	for i := range v {
		v[i] = float32(i)
	}
	return v
}

func cloneF32(v []float32) []float32 { return append([]float32(nil), v...) }

// formatVec prints up to 16 elements.
func formatVec(v []float32) string {
	const max = 16
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range v {
		if i == max {
			fmt.Fprintf(&b, "... (%d total)", len(v))
			break
		}
		if i > 0 { b.WriteString(", ") }
		fmt.Fprintf(&b, "%g", f)
	}
	b.WriteByte(']')
	return b.String()
}
