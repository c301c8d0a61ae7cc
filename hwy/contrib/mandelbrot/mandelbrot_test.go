package mandelbrot

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/hwy-mandelbrot/hwy/contrib/workerpool"
)

// newTestPool returns a worker pool closed at the end of the test.
func newTestPool(tb testing.TB) *workerpool.Pool {
	tb.Helper()
	pool := workerpool.New(4)
	tb.Cleanup(pool.Close)
	return pool
}

// Every width is a multiple of 8, so all algorithms accept every case.
var equivalenceCases = []struct {
	name   string
	dims   Dimensions
	xr, yr Range
}{
	{"full set", Dimensions{64, 48}, Range{-2, 1}, Range{-1.5, 1.5}},
	{"reversed axes", Dimensions{32, 16}, Range{0.5, -0.25}, Range{1, -1}},
	{"boundary zoom", Dimensions{8, 3}, Range{-0.75, -0.74}, Range{0.1, 0.11}},
	{"flat y", Dimensions{16, 9}, Range{-2.5, 2.5}, Range{0, 0}},
	{"single row", Dimensions{24, 1}, Range{-1.8, -1.7}, Range{0, 0.05}},
	{"far outside", Dimensions{8, 2}, Range{1000, 1008}, Range{0, 1}},
	{"overflowing step", Dimensions{8, 2}, Range{-1e308, 1e308}, Range{-1e308, 1e308}},
}

func TestAlgorithmsAgree(t *testing.T) {
	pool := newTestPool(t)
	for _, tc := range equivalenceCases {
		t.Run(tc.name, func(t *testing.T) {
			want := GenerateScalar(nil, tc.dims, tc.xr, tc.yr)
			if len(want) != tc.dims.Pixels() {
				t.Fatalf("len = %d, want %d", len(want), tc.dims.Pixels())
			}
			for _, alg := range Algorithms() {
				for _, p := range []*workerpool.Pool{nil, pool} {
					got := New(WithAlgorithm(alg), WithPool(p)).Generate(tc.dims, tc.xr, tc.yr)
					if diff := cmp.Diff(want, got); diff != "" {
						t.Errorf("%s (pool=%v) differs from scalar (-want +got):\n%s", alg, p != nil, diff)
					}
				}
			}
		})
	}
}

func TestNaNCoordinateEscapes(t *testing.T) {
	// The step overflows to +Inf, so the first sample is -1e308 + Inf*0.
	xr := Range{-1e308, 1e308}
	dims := Dimensions{8, 1}
	if x := xr.At(0, dims.Width); !math.IsNaN(x) {
		t.Fatalf("xr.At(0) = %v, want NaN", x)
	}
	for _, alg := range Algorithms() {
		counts := Generate(alg, dims, xr, Range{0, 0})
		if counts[0] != 0 {
			t.Errorf("%s: NaN pixel count = %d, want 0", alg, counts[0])
		}
	}
}

func TestCountsMatchEscapeCount(t *testing.T) {
	dims := Dimensions{16, 12}
	xr, yr := Range{-2, 0.5}, Range{-1.25, 1.25}
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			counts := Generate(alg, dims, xr, yr)
			for i := range dims.Height {
				for j := range dims.Width {
					want := EscapeCount(xr.At(j, dims.Width), yr.At(i, dims.Height))
					if got := counts[i*dims.Width+j]; got != want {
						t.Errorf("pixel (%d, %d) = %d, want %d", j, i, got, want)
					}
				}
			}
		})
	}
}

func TestEscapeBound(t *testing.T) {
	tc := equivalenceCases[0]
	for _, alg := range Algorithms() {
		counts := Generate(alg, tc.dims, tc.xr, tc.yr)
		var inside int
		for i, c := range counts {
			if c > IterLimit {
				t.Fatalf("%s: counts[%d] = %d exceeds IterLimit", alg, i, c)
			}
			if c == IterLimit {
				inside++
			}
		}
		if inside == 0 || inside == len(counts) {
			t.Errorf("%s: %d of %d pixels inside, want a mix", alg, inside, len(counts))
		}
	}
}

func TestOriginNeverEscapes(t *testing.T) {
	// An 8x8 grid over [-1, 1]² puts pixel (4, 4) exactly on 0+0i.
	dims := Dimensions{8, 8}
	for _, alg := range Algorithms() {
		counts := Generate(alg, dims, Range{-1, 1}, Range{-1, 1})
		if got := counts[4*8+4]; got != IterLimit {
			t.Errorf("%s: origin count = %d, want %d", alg, got, IterLimit)
		}
	}
}

func TestFarPointsEscapeImmediately(t *testing.T) {
	dims := Dimensions{8, 2}
	for _, alg := range Algorithms() {
		counts := Generate(alg, dims, Range{1000, 1001}, Range{0, 0})
		for i, c := range counts {
			if c != 0 {
				t.Errorf("%s: counts[%d] = %d, want 0", alg, i, c)
			}
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	tc := equivalenceCases[0]
	gen := New(WithAlgorithm(Dispatched), WithPool(newTestPool(t)))
	first := gen.Generate(tc.dims, tc.xr, tc.yr)
	second := gen.Generate(tc.dims, tc.xr, tc.yr)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second call differs (-first +second):\n%s", diff)
	}
}

func TestRowBatchDoesNotChangeResult(t *testing.T) {
	tc := equivalenceCases[0]
	pool := newTestPool(t)
	want := Generate(Wide8, tc.dims, tc.xr, tc.yr)
	for _, batch := range []int{0, 1, 5, 48, 100} {
		for _, p := range []*workerpool.Pool{nil, pool} {
			got := New(WithAlgorithm(Wide8), WithPool(p), WithRowBatch(batch)).Generate(tc.dims, tc.xr, tc.yr)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("rowBatch=%d pool=%v (-want +got):\n%s", batch, p != nil, diff)
			}
		}
	}
}

// expectPrecondition runs fn and returns the *PreconditionError it panics with.
func expectPrecondition(t *testing.T, fn func()) (perr *PreconditionError) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a precondition panic")
		}
		err, ok := r.(error)
		if !ok || !errors.As(err, &perr) {
			t.Fatalf("panic value %v (%T), want *PreconditionError", r, r)
		}
		if !errors.Is(err, ErrPrecondition) {
			t.Errorf("errors.Is(%v, ErrPrecondition) = false", err)
		}
	}()
	fn()
	return nil
}

func TestWidthDivisibility(t *testing.T) {
	tests := []struct {
		alg   Algorithm
		width int
	}{
		{Wide4, 5},
		{Wide4, 6},
		{Wide8, 12},
		{BatchedScalar, 4},
		{BatchedScalar, 9},
		{Dispatched, DispatchedLanes() + 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.alg, tt.width), func(t *testing.T) {
			dims := Dimensions{tt.width, 3}
			perr := expectPrecondition(t, func() {
				Generate(tt.alg, dims, Range{-2, 1}, Range{-1, 1})
			})
			if perr.Width != tt.width || perr.Lanes != tt.alg.Lanes() || perr.Algorithm != tt.alg {
				t.Errorf("error = %+v", perr)
			}
			if err := Validate(tt.alg, dims); !errors.Is(err, ErrPrecondition) {
				t.Errorf("Validate = %v, want ErrPrecondition", err)
			}
		})
	}
}

func TestNonPositiveDimensions(t *testing.T) {
	for _, dims := range []Dimensions{{0, 4}, {8, 0}, {-8, 4}} {
		for _, alg := range Algorithms() {
			expectPrecondition(t, func() {
				Generate(alg, dims, Range{-2, 1}, Range{-1, 1})
			})
		}
	}
}

func TestScalarAcceptsAnyWidth(t *testing.T) {
	for _, w := range []int{1, 3, 5, 7} {
		dims := Dimensions{w, 2}
		if err := Validate(Scalar, dims); err != nil {
			t.Errorf("Validate(Scalar, %v) = %v", dims, err)
		}
		if got := len(Generate(Scalar, dims, Range{-2, 1}, Range{-1, 1})); got != 2*w {
			t.Errorf("len = %d, want %d", got, 2*w)
		}
	}
}

func TestPreconditionErrorMessage(t *testing.T) {
	err := &PreconditionError{Algorithm: Wide4, Width: 5, Height: 3, Lanes: 4}
	want := "mandelbrot: wide4: image width = 5 is not divisible by the number of vector lanes = 4"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	err = &PreconditionError{Algorithm: Scalar, Width: 0, Height: 3, Lanes: 1}
	want = "mandelbrot: scalar: image size 0x3 must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
