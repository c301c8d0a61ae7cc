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

// Package hwy provides the portable vector layer used by the escape-time
// kernels: runtime CPU dispatch, width tags, and fixed-width lane types.
//
// The lane types (Float64x2, Float64x4, Float64x8 and their Uint64 and Mask64
// companions) are plain Go arrays with one loop per operation. gc compiles
// them to scalar instructions; they are the portable fallback and the
// reference the native kernels are checked against. Native 256- and
// 512-bit kernels use simd/archsimd directly and are only built on amd64
// with GOEXPERIMENT=simd.
//
// Basic usage:
//
//	import "github.com/ajroetker/hwy-mandelbrot/hwy"
//
//	lanes := hwy.ScalableTag[float64]{}.MaxLanes()
//	a := hwy.LoadFloat64x4(xs)
//	b := hwy.SplatFloat64x4(0.5)
//	under := a.Mul(a).Add(b.Mul(b)).LessEqual(hwy.SplatFloat64x4(4))
//	if under.AllFalse() {
//	    // every lane escaped
//	}
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}
