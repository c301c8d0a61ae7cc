// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mandelbrot computes Mandelbrot escape-time grids with a family of
// interchangeable kernels that all produce bit-identical iteration counts.
//
// For every pixel of a width × height grid mapped linearly onto a region of
// the complex plane, the recurrence z ← z² + c is iterated starting at z = c
// until |z|² exceeds Threshold or IterLimit iterations have run. The result
// is a row-major []uint32 of escape counts; IterLimit means "did not escape".
//
// # Algorithms
//
//	Scalar        one point at a time, early exit per point
//	BatchedScalar 8 points per batch with per-lane flags, no batch exit
//	Wide4         4 lanes, float64 count accumulator blended per lane
//	Wide8         8 lanes, uint64 count accumulator selected per lane
//	Dispatched    lane width probed from the CPU (2, 4 or 8), row parallel
//
// All lane kernels share one masked-iteration routine parameterized by a
// set of lane operations; only the width and the count accumulator differ.
//
// # Usage
//
//	counts := mandelbrot.Generate(mandelbrot.Dispatched,
//	    mandelbrot.Dimensions{Width: 1024, Height: 768},
//	    mandelbrot.Range{Start: -2, End: 1},
//	    mandelbrot.Range{Start: -1.25, End: 1.25})
//
// Repeated renders should reuse a worker pool:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	gen := mandelbrot.New(mandelbrot.WithAlgorithm(mandelbrot.Wide8), mandelbrot.WithPool(pool))
//	counts := gen.Generate(dims, xr, yr)
//
// # Preconditions
//
// Lane and batch kernels require the width to be a multiple of their lane
// count. Violations panic with a *PreconditionError before any work starts;
// use Validate to check first.
package mandelbrot
