package utils

import (
	"fmt"
	"runtime"

	"github.com/chewxy/math32"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

// CountNaN returns how many values are NaN
func CountNaN(A []float32) (n int) {
	for _, f := range A {
		if math32.IsNaN(f) {
			n++
		}
	}
	return
}
