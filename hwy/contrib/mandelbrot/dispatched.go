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

import (
	"log/slog"

	"github.com/ajroetker/hwy-mandelbrot/hwy"
	"github.com/ajroetker/hwy-mandelbrot/hwy/contrib/workerpool"
)

// probe describes the vector width picked for the running CPU.
type probe struct {
	level hwy.DispatchLevel
	lanes int
}

// probeCPU inspects the detected SIMD level once per call. HWY_NO_SIMD
// lowers it to the scalar level, which still runs two lanes.
func probeCPU() probe {
	tag := hwy.ScalableTag[float64]{}
	p := probe{level: hwy.CurrentLevel(), lanes: tag.MaxLanes()}
	Logger().Debug("mandelbrot: cpu probe",
		slog.String("level", p.level.String()),
		slog.Int("width_bytes", tag.Width()),
		slog.Int("lanes", p.lanes))
	return p
}

// DispatchedLanes returns the lane count the Dispatched algorithm uses on
// this machine: 8 with AVX-512, 4 with AVX2, otherwise 2.
func DispatchedLanes() int {
	switch n := (hwy.ScalableTag[float64]{}).MaxLanes(); {
	case n >= 8:
		return 8
	case n >= 4:
		return 4
	default:
		return 2
	}
}

// scalable2Ops and scalable4Ops are the 128- and 256-bit widths of the
// dispatched kernel. Both keep uint64 counts, like wide8Ops, which serves
// as the 512-bit width.
type (
	scalable2Ops struct{}
	scalable4Ops struct{}
)

func (scalable2Ops) Lanes() int                                { return hwy.FixedTag128[float64]{}.MaxLanes() }
func (scalable2Ops) Load(src []float64) hwy.Float64x2          { return hwy.LoadFloat64x2(src) }
func (scalable2Ops) Splat(x float64) hwy.Float64x2             { return hwy.SplatFloat64x2(x) }
func (scalable2Ops) Mul(a, b hwy.Float64x2) hwy.Float64x2      { return a.Mul(b) }
func (scalable2Ops) Add(a, b hwy.Float64x2) hwy.Float64x2      { return a.Add(b) }
func (scalable2Ops) Sub(a, b hwy.Float64x2) hwy.Float64x2      { return a.Sub(b) }
func (scalable2Ops) LessEqual(a, b hwy.Float64x2) hwy.Mask64x2 { return a.LessEqual(b) }
func (scalable2Ops) And(a, b hwy.Mask64x2) hwy.Mask64x2        { return a.And(b) }
func (scalable2Ops) AllTrue() hwy.Mask64x2                     { return hwy.AllMask64x2() }
func (scalable2Ops) AllFalse(m hwy.Mask64x2) bool              { return m.AllFalse() }
func (scalable2Ops) ZeroCount() hwy.Uint64x2                   { return hwy.Uint64x2{} }
func (scalable2Ops) StoreCounts(c hwy.Uint64x2, dst []uint32)  { c.TruncateToUint32(dst) }

func (scalable2Ops) IncrementIf(m hwy.Mask64x2, c hwy.Uint64x2) hwy.Uint64x2 {
	return c.Add(hwy.SplatUint64x2(1)).Merge(c, m)
}

func (scalable4Ops) Lanes() int                                { return hwy.FixedTag256[float64]{}.MaxLanes() }
func (scalable4Ops) Load(src []float64) hwy.Float64x4          { return hwy.LoadFloat64x4(src) }
func (scalable4Ops) Splat(x float64) hwy.Float64x4             { return hwy.SplatFloat64x4(x) }
func (scalable4Ops) Mul(a, b hwy.Float64x4) hwy.Float64x4      { return a.Mul(b) }
func (scalable4Ops) Add(a, b hwy.Float64x4) hwy.Float64x4      { return a.Add(b) }
func (scalable4Ops) Sub(a, b hwy.Float64x4) hwy.Float64x4      { return a.Sub(b) }
func (scalable4Ops) LessEqual(a, b hwy.Float64x4) hwy.Mask64x4 { return a.LessEqual(b) }
func (scalable4Ops) And(a, b hwy.Mask64x4) hwy.Mask64x4        { return a.And(b) }
func (scalable4Ops) AllTrue() hwy.Mask64x4                     { return hwy.AllMask64x4() }
func (scalable4Ops) AllFalse(m hwy.Mask64x4) bool              { return m.AllFalse() }
func (scalable4Ops) ZeroCount() hwy.Uint64x4                   { return hwy.Uint64x4{} }
func (scalable4Ops) StoreCounts(c hwy.Uint64x4, dst []uint32)  { c.TruncateToUint32(dst) }

func (scalable4Ops) IncrementIf(m hwy.Mask64x4, c hwy.Uint64x4) hwy.Uint64x4 {
	return c.Add(hwy.SplatUint64x4(1)).Merge(c, m)
}

// GenerateDispatched probes the CPU for its widest vector unit and computes
// the image at that lane width, one row per task. The width must be a
// multiple of DispatchedLanes().
func GenerateDispatched(pool *workerpool.Pool, dims Dimensions, xr, yr Range) []uint32 {
	return driver{pool: pool, rowBatch: DefaultRowBatch}.dispatched(dims, xr, yr)
}

func (d driver) dispatched(dims Dimensions, xr, yr Range) []uint32 {
	return dispatchedKernel(probeCPU().lanes).run(d, Dispatched, dims, xr, yr)
}

// dispatchedKernel returns the body for a CPU with the given float64 lane
// count. Eight lanes share the Wide8 body.
func dispatchedKernel(lanes int) laneKernel {
	switch {
	case lanes >= 8:
		return wide8Kernel
	case lanes >= 4:
		return scalable4Kernel
	default:
		return scalable2Kernel
	}
}
