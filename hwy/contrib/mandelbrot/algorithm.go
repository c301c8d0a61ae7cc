package mandelbrot

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ajroetker/hwy-mandelbrot/hwy"
)

// Algorithm selects an escape-time kernel. Every algorithm returns the same
// counts for the same inputs; they differ in speed and width constraints.
type Algorithm int

const (
	// Scalar iterates one point at a time with an early exit per point.
	Scalar Algorithm = iota

	// BatchedScalar carries BatchSize points with per-lane escape flags.
	BatchedScalar

	// Wide4 runs Wide4Lanes lanes with a blended float64 count.
	Wide4

	// Wide8 runs Wide8Lanes lanes with a selected uint64 count.
	Wide8

	// Dispatched picks its lane width from the CPU at call time.
	Dispatched
)

var algorithmNames = [...]string{
	Scalar:        "scalar",
	BatchedScalar: "batched",
	Wide4:         "wide4",
	Wide8:         "wide8",
	Dispatched:    "dispatched",
}

// String returns the algorithm's name as accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Lanes returns the width the image must be divisible by.
// For Dispatched it depends on the running CPU.
func (a Algorithm) Lanes() int {
	switch a {
	case BatchedScalar:
		return BatchSize
	case Wide4:
		return Wide4Lanes
	case Wide8:
		return Wide8Lanes
	case Dispatched:
		return DispatchedLanes()
	default:
		return 1
	}
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Scalar, BatchedScalar, Wide4, Wide8, Dispatched}
}

// ParseAlgorithm returns the algorithm with the given name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if strings.EqualFold(name, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("mandelbrot: unknown algorithm %q (want one of %s)", name, strings.Join(algorithmNames[:], ", "))
}

// Generate computes the escape-time image with alg using per-call
// goroutines. It panics with a *PreconditionError if dims does not suit alg.
//
// counts[i*Width+j] is the escape count of xr.At(j, Width) + yr.At(i, Height)·i.
func Generate(alg Algorithm, dims Dimensions, xr, yr Range) []uint32 {
	return New(WithAlgorithm(alg)).Generate(dims, xr, yr)
}

func (d driver) generate(alg Algorithm, dims Dimensions, xr, yr Range) []uint32 {
	switch alg {
	case Scalar:
		return d.scalar(dims, xr, yr)
	case BatchedScalar:
		return d.batched(dims, xr, yr)
	case Wide4:
		return d.wide4(dims, xr, yr)
	case Wide8:
		return d.wide8(dims, xr, yr)
	case Dispatched:
		return d.dispatched(dims, xr, yr)
	default:
		panic(fmt.Sprintf("mandelbrot: unknown algorithm %d", int(alg)))
	}
}

// Backend names the code path alg runs on this machine: "scalar" for the
// one-point kernels, "portable" for the hwy array lanes, or "avx2" and
// "avx512" for the native kernels of a GOEXPERIMENT=simd build.
func Backend(alg Algorithm) string {
	switch alg {
	case Wide4:
		return wide4Kernel.backend
	case Wide8:
		return wide8Kernel.backend
	case Dispatched:
		return dispatchedKernel(DispatchedLanes()).backend
	default:
		return backendScalar
	}
}

func logGenerate(alg Algorithm, dims Dimensions, lanes int, backend string) {
	Logger().Debug("mandelbrot: generate",
		slog.String("algorithm", alg.String()),
		slog.Int("width", dims.Width),
		slog.Int("height", dims.Height),
		slog.Int("lanes", lanes),
		slog.String("backend", backend),
		slog.String("simd", hwy.CurrentName()))
}
