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

package mandelbrot

import "github.com/ajroetker/hwy-mandelbrot/hwy"

// laneOps is the primitive set the masked escape-time loop is written
// against. F is a vector of float64 lanes, M a per-lane mask, and C the
// count accumulator, which may be wider than the uint32 output.
type laneOps[F, M, C any] interface {
	Lanes() int
	Load(src []float64) F
	Splat(x float64) F
	Mul(a, b F) F
	Add(a, b F) F
	Sub(a, b F) F
	LessEqual(a, b F) M
	And(a, b M) M
	AllTrue() M
	AllFalse(m M) bool
	ZeroCount() C
	// IncrementIf adds one to the lanes of c active in m.
	IncrementIf(m M, c C) C
	// StoreCounts narrows each lane of c to uint32 and writes dst[:Lanes()].
	StoreCounts(c C, dst []uint32)
}

// escapeLanes iterates one vector of points. The active mask only ever
// loses lanes; each lane's count stops at the iteration it escaped, and the
// loop ends as soon as no lane is left. The recurrence still runs on
// escaped lanes, whose values are then ignored.
func escapeLanes[F, M, C any, O laneOps[F, M, C]](ops O, cr, ci F, dst []uint32) {
	zr, zi := cr, ci
	threshold := ops.Splat(Threshold)
	active := ops.AllTrue()
	count := ops.ZeroCount()

	for range IterLimit {
		rr := ops.Mul(zr, zr)
		ii := ops.Mul(zi, zi)
		active = ops.And(active, ops.LessEqual(ops.Add(rr, ii), threshold))
		if ops.AllFalse(active) {
			break
		}
		count = ops.IncrementIf(active, count)

		ri := ops.Mul(zr, zi)
		zr = ops.Add(cr, ops.Sub(rr, ii))
		zi = ops.Add(ci, ops.Add(ri, ri))
	}
	ops.StoreCounts(count, dst)
}

// loadBlocks packs the x-coordinate table into vectors, one per lane group
// of the row. Every row reuses the same blocks.
func loadBlocks[F, M, C any, O laneOps[F, M, C]](ops O, xs []float64) []F {
	lanes := ops.Lanes()
	blocks := make([]F, len(xs)/lanes)
	for j := range blocks {
		blocks[j] = ops.Load(xs[j*lanes:])
	}
	return blocks
}

// generateLanes runs the shared vector pipeline for one algorithm: check the width,
// build the x blocks once, then fill rows in parallel with the imaginary
// part broadcast across all lanes.
func generateLanes[F, M, C any, O laneOps[F, M, C]](d driver, alg Algorithm, backend string, ops O, dims Dimensions, xr, yr Range) []uint32 {
	n := ops.Lanes()
	mustDimensions(alg, dims, n)
	logGenerate(alg, dims, n, backend)

	blocks := loadBlocks[F, M, C](ops, xr.samples(d.pool, dims.Width))
	out := make([]uint32, dims.Pixels())
	d.forEachRow(splitRows(out, dims), func(i int, row []uint32) {
		ci := ops.Splat(yr.At(i, dims.Height))
		for j, cr := range blocks {
			escapeLanes[F, M, C](ops, cr, ci, row[j*n:(j+1)*n])
		}
	})
	return out
}

// laneKernel is one compiled body of a lane algorithm. The portable bodies
// run the hwy array types; architecture files swap in native bodies from
// init when the CPU supports them.
type laneKernel struct {
	backend string
	run     func(d driver, alg Algorithm, dims Dimensions, xr, yr Range) []uint32
}

// Backend names.
const (
	backendScalar   = "scalar"
	backendPortable = "portable"
	backendAVX2     = "avx2"
	backendAVX512   = "avx512"
)

var (
	wide4Kernel     = laneKernel{backendPortable, wide4Portable}
	wide8Kernel     = laneKernel{backendPortable, wide8Portable}
	scalable2Kernel = laneKernel{backendPortable, scalable2Portable}
	scalable4Kernel = laneKernel{backendPortable, scalable4Portable}
)

func wide4Portable(d driver, alg Algorithm, dims Dimensions, xr, yr Range) []uint32 {
	return generateLanes[hwy.Float64x4, hwy.Mask64x4, hwy.Float64x4](d, alg, backendPortable, wide4Ops{}, dims, xr, yr)
}

func wide8Portable(d driver, alg Algorithm, dims Dimensions, xr, yr Range) []uint32 {
	return generateLanes[hwy.Float64x8, hwy.Mask64x8, hwy.Uint64x8](d, alg, backendPortable, wide8Ops{}, dims, xr, yr)
}

func scalable2Portable(d driver, alg Algorithm, dims Dimensions, xr, yr Range) []uint32 {
	return generateLanes[hwy.Float64x2, hwy.Mask64x2, hwy.Uint64x2](d, alg, backendPortable, scalable2Ops{}, dims, xr, yr)
}

func scalable4Portable(d driver, alg Algorithm, dims Dimensions, xr, yr Range) []uint32 {
	return generateLanes[hwy.Float64x4, hwy.Mask64x4, hwy.Uint64x4](d, alg, backendPortable, scalable4Ops{}, dims, xr, yr)
}
