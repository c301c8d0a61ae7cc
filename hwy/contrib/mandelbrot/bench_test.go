package mandelbrot

import (
	"fmt"
	"testing"
)

// BenchmarkGenerate renders the full set at 256² and at the reference size
// of 3200², once with per-call goroutines and once on a pool.
func BenchmarkGenerate(b *testing.B) {
	pool := newTestPool(b)
	xr, yr := Range{-2, 1}, Range{-1.5, 1.5}
	for _, size := range []int{256, 3200} {
		dims := Dimensions{size, size}
		for _, alg := range Algorithms() {
			b.Run(fmt.Sprintf("%s/%d", alg, size), func(b *testing.B) {
				gen := New(WithAlgorithm(alg))
				b.SetBytes(int64(dims.Pixels() * 4))
				for b.Loop() {
					gen.Generate(dims, xr, yr)
				}
			})
			b.Run(fmt.Sprintf("%s/%d/pool", alg, size), func(b *testing.B) {
				gen := New(WithAlgorithm(alg), WithPool(pool))
				b.SetBytes(int64(dims.Pixels() * 4))
				for b.Loop() {
					gen.Generate(dims, xr, yr)
				}
			})
		}
	}
}

func BenchmarkEscapeCount(b *testing.B) {
	for b.Loop() {
		EscapeCount(-0.75, 0.1)
	}
}
