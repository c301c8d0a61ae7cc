package mandelbrot

import (
	"math"
	"testing"
)

func TestEscapeCount(t *testing.T) {
	tests := []struct {
		name   string
		cr, ci float64
		want   uint32
	}{
		{"origin", 0, 0, IterLimit},
		{"far", 1000, 0, 0},
		{"far imaginary", 0, -1000, 0},
		{"outside radius", 2.5, 0, 0},
		{"tip of spike", -2, 0, IterLimit},
		{"period two", -1, 0, IterLimit},
		{"one", 1, 0, 2},
		{"half half", 0.5, 0.5, 4},
		{"i", 0, 1, IterLimit},
		{"nan real", math.NaN(), 0, 0},
		{"nan imaginary", 0, math.NaN(), 0},
		{"infinite", math.Inf(-1), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeCount(tt.cr, tt.ci); got != tt.want {
				t.Errorf("EscapeCount(%v, %v) = %d, want %d", tt.cr, tt.ci, got, tt.want)
			}
		})
	}
}

func TestEscapeBatchMatchesScalar(t *testing.T) {
	xs := [BatchSize]float64{-2.5, -2, -1, -0.75, 0, 0.25, math.NaN(), 1}
	for _, ci := range []float64{0, 0.1, 0.5, 1, -1.5} {
		counts := make([]uint32, BatchSize)
		escapeBatch(&xs, ci, counts)
		for i, cr := range xs {
			if want := EscapeCount(cr, ci); counts[i] != want {
				t.Errorf("escapeBatch lane %d (%v, %v) = %d, want %d", i, cr, ci, counts[i], want)
			}
		}
	}
}

func TestEscapeLanesMatchesScalar(t *testing.T) {
	xs := []float64{-2.5, -2, -1, -0.75, 0, 0.25, math.NaN(), 1}
	for _, ci := range []float64{0, 0.1, 0.5, 1, -1.5} {
		want := make([]uint32, len(xs))
		for i, cr := range xs {
			want[i] = EscapeCount(cr, ci)
		}

		got8 := make([]uint32, 8)
		var w8 wide8Ops
		escapeLanes[hwyF8, hwyM8, hwyU8](w8, w8.Load(xs), w8.Splat(ci), got8)

		got4 := make([]uint32, 8)
		var w4 wide4Ops
		for j := 0; j < 8; j += 4 {
			escapeLanes[hwyF4, hwyM4, hwyF4](w4, w4.Load(xs[j:]), w4.Splat(ci), got4[j:])
		}

		got2 := make([]uint32, 8)
		var s2 scalable2Ops
		for j := 0; j < 8; j += 2 {
			escapeLanes[hwyF2, hwyM2, hwyU2](s2, s2.Load(xs[j:]), s2.Splat(ci), got2[j:])
		}

		for i := range want {
			if got8[i] != want[i] || got4[i] != want[i] || got2[i] != want[i] {
				t.Errorf("ci=%v lane %d: wide8=%d wide4=%d scalable2=%d, want %d",
					ci, i, got8[i], got4[i], got2[i], want[i])
			}
		}
	}
}
