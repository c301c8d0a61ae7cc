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

//go:build amd64 && goexperiment.simd

package mandelbrot

import (
	"simd/archsimd"

	"github.com/ajroetker/hwy-mandelbrot/hwy"
)

func init() {
	if hwy.CurrentLevel() >= hwy.DispatchAVX2 {
		wide4Kernel = laneKernel{backendAVX2, wide4AVX2}
		scalable4Kernel = laneKernel{backendAVX2, scalable4AVX2}
	}
	if hwy.CurrentLevel() >= hwy.DispatchAVX512 {
		wide8Kernel = laneKernel{backendAVX512, wide8AVX512}
	}
}

func wide4AVX2(d driver, alg Algorithm, dims Dimensions, xr, yr Range) []uint32 {
	return generateLanes[archsimd.Float64x4, archsimd.Mask64x4, archsimd.Float64x4](d, alg, backendAVX2, newAVX2BlendOps(), dims, xr, yr)
}

func scalable4AVX2(d driver, alg Algorithm, dims Dimensions, xr, yr Range) []uint32 {
	return generateLanes[archsimd.Float64x4, archsimd.Mask64x4, archsimd.Uint64x4](d, alg, backendAVX2, newAVX2SelectOps(), dims, xr, yr)
}

func wide8AVX512(d driver, alg Algorithm, dims Dimensions, xr, yr Range) []uint32 {
	return generateLanes[archsimd.Float64x8, archsimd.Mask64x8, archsimd.Uint64x8](d, alg, backendAVX512, newAVX512Ops(), dims, xr, yr)
}

// avx2Float holds the float64 primitives shared by both AVX2 bodies.
// Constants are built after the level check, never at package init, so
// loading this file on an older CPU executes no AVX instruction.
type avx2Float struct{}

func (avx2Float) Lanes() int                                          { return hwy.FixedTag256[float64]{}.MaxLanes() }
func (avx2Float) Load(src []float64) archsimd.Float64x4               { return archsimd.LoadFloat64x4Slice(src) }
func (avx2Float) Splat(x float64) archsimd.Float64x4                  { return archsimd.BroadcastFloat64x4(x) }
func (avx2Float) Mul(a, b archsimd.Float64x4) archsimd.Float64x4      { return a.Mul(b) }
func (avx2Float) Add(a, b archsimd.Float64x4) archsimd.Float64x4      { return a.Add(b) }
func (avx2Float) Sub(a, b archsimd.Float64x4) archsimd.Float64x4      { return a.Sub(b) }
func (avx2Float) LessEqual(a, b archsimd.Float64x4) archsimd.Mask64x4 { return a.LessEqual(b) }
func (avx2Float) And(a, b archsimd.Mask64x4) archsimd.Mask64x4        { return a.And(b) }
func (avx2Float) AllTrue() archsimd.Mask64x4                          { return archsimd.Mask64x4FromBits(0xF) }
func (avx2Float) AllFalse(m archsimd.Mask64x4) bool                   { return m.ToBits() == 0 }

// avx2BlendOps is wide4Ops in AVX2 registers: float64 counts, blended.
type avx2BlendOps struct {
	avx2Float
	one, zero archsimd.Float64x4
}

func newAVX2BlendOps() avx2BlendOps {
	return avx2BlendOps{one: archsimd.BroadcastFloat64x4(1), zero: archsimd.BroadcastFloat64x4(0)}
}

func (o avx2BlendOps) ZeroCount() archsimd.Float64x4 { return o.zero }

func (o avx2BlendOps) IncrementIf(m archsimd.Mask64x4, c archsimd.Float64x4) archsimd.Float64x4 {
	return c.Add(o.one.Merge(o.zero, m))
}

func (avx2BlendOps) StoreCounts(c archsimd.Float64x4, dst []uint32) {
	var buf [4]float64
	c.StoreSlice(buf[:])
	dst = dst[:4]
	for i, v := range buf {
		dst[i] = uint32(v)
	}
}

// avx2SelectOps is scalable4Ops in AVX2 registers: uint64 counts, selected.
type avx2SelectOps struct {
	avx2Float
	zero, one archsimd.Uint64x4
}

func newAVX2SelectOps() avx2SelectOps {
	zeros, ones := [4]uint64{}, [4]uint64{1, 1, 1, 1}
	return avx2SelectOps{
		zero: archsimd.LoadUint64x4Slice(zeros[:]),
		one:  archsimd.LoadUint64x4Slice(ones[:]),
	}
}

func (o avx2SelectOps) ZeroCount() archsimd.Uint64x4 { return o.zero }

func (o avx2SelectOps) IncrementIf(m archsimd.Mask64x4, c archsimd.Uint64x4) archsimd.Uint64x4 {
	return c.Add(o.one).Merge(c, m)
}

func (avx2SelectOps) StoreCounts(c archsimd.Uint64x4, dst []uint32) {
	var buf [4]uint64
	c.StoreSlice(buf[:])
	dst = dst[:4]
	for i, v := range buf {
		dst[i] = uint32(v)
	}
}

// avx512Ops is wide8Ops in AVX-512 registers.
type avx512Ops struct {
	zero, one archsimd.Uint64x8
}

func newAVX512Ops() avx512Ops {
	zeros, ones := [8]uint64{}, [8]uint64{1, 1, 1, 1, 1, 1, 1, 1}
	return avx512Ops{
		zero: archsimd.LoadUint64x8Slice(zeros[:]),
		one:  archsimd.LoadUint64x8Slice(ones[:]),
	}
}

func (avx512Ops) Lanes() int                                          { return hwy.FixedTag512[float64]{}.MaxLanes() }
func (avx512Ops) Load(src []float64) archsimd.Float64x8               { return archsimd.LoadFloat64x8Slice(src) }
func (avx512Ops) Splat(x float64) archsimd.Float64x8                  { return archsimd.BroadcastFloat64x8(x) }
func (avx512Ops) Mul(a, b archsimd.Float64x8) archsimd.Float64x8      { return a.Mul(b) }
func (avx512Ops) Add(a, b archsimd.Float64x8) archsimd.Float64x8      { return a.Add(b) }
func (avx512Ops) Sub(a, b archsimd.Float64x8) archsimd.Float64x8      { return a.Sub(b) }
func (avx512Ops) LessEqual(a, b archsimd.Float64x8) archsimd.Mask64x8 { return a.LessEqual(b) }
func (avx512Ops) And(a, b archsimd.Mask64x8) archsimd.Mask64x8        { return a.And(b) }
func (avx512Ops) AllTrue() archsimd.Mask64x8                          { return archsimd.Mask64x8FromBits(0xFF) }
func (avx512Ops) AllFalse(m archsimd.Mask64x8) bool                   { return m.ToBits() == 0 }
func (o avx512Ops) ZeroCount() archsimd.Uint64x8                      { return o.zero }

func (o avx512Ops) IncrementIf(m archsimd.Mask64x8, c archsimd.Uint64x8) archsimd.Uint64x8 {
	return c.Add(o.one).Merge(c, m)
}

func (avx512Ops) StoreCounts(c archsimd.Uint64x8, dst []uint32) {
	var buf [8]uint64
	c.StoreSlice(buf[:])
	dst = dst[:8]
	for i, v := range buf {
		dst[i] = uint32(v)
	}
}
