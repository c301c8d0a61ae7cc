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

package hwy

// Float64x4 holds 4 float64 lanes in structure-of-arrays form: one array per
// component, one element per lane.
type Float64x4 [4]float64

// Uint64x4 holds 4 uint64 lanes.
type Uint64x4 [4]uint64

// Mask64x4 holds one predicate per 64-bit lane.
type Mask64x4 [4]bool

// LoadFloat64x4 loads the first 4 values of src. It panics if src is shorter.
func LoadFloat64x4(src []float64) Float64x4 {
	return Float64x4(src[:4])
}

// SplatFloat64x4 returns a vector with every lane set to x.
func SplatFloat64x4(x float64) Float64x4 {
	var v Float64x4
	for i := range v {
		v[i] = x
	}
	return v
}

// Add performs element-wise addition.
func (v Float64x4) Add(w Float64x4) Float64x4 {
	var r Float64x4
	for i := range v {
		r[i] = v[i] + w[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func (v Float64x4) Sub(w Float64x4) Float64x4 {
	var r Float64x4
	for i := range v {
		r[i] = v[i] - w[i]
	}
	return r
}

// Mul performs element-wise multiplication. Each product is rounded on its
// own so that a later Add is never fused into it.
func (v Float64x4) Mul(w Float64x4) Float64x4 {
	var r Float64x4
	for i := range v {
		r[i] = float64(v[i] * w[i])
	}
	return r
}

// LessEqual returns a mask of the lanes where v <= w. NaN lanes compare false.
func (v Float64x4) LessEqual(w Float64x4) Mask64x4 {
	var m Mask64x4
	for i := range v {
		m[i] = v[i] <= w[i]
	}
	return m
}

// Merge returns v with the lanes where mask is false replaced by w.
func (v Float64x4) Merge(w Float64x4, mask Mask64x4) Float64x4 {
	r := w
	for i := range v {
		if mask[i] {
			r[i] = v[i]
		}
	}
	return r
}

// TruncateToUint32 converts each lane to uint32 and writes it to dst[:4].
func (v Float64x4) TruncateToUint32(dst []uint32) {
	dst = dst[:4]
	for i := range v {
		dst[i] = uint32(v[i])
	}
}

// SplatUint64x4 returns a vector with every lane set to x.
func SplatUint64x4(x uint64) Uint64x4 {
	var v Uint64x4
	for i := range v {
		v[i] = x
	}
	return v
}

// Add performs element-wise wrapping addition.
func (v Uint64x4) Add(w Uint64x4) Uint64x4 {
	var r Uint64x4
	for i := range v {
		r[i] = v[i] + w[i]
	}
	return r
}

// Merge returns v with the lanes where mask is false replaced by w.
func (v Uint64x4) Merge(w Uint64x4, mask Mask64x4) Uint64x4 {
	r := w
	for i := range v {
		if mask[i] {
			r[i] = v[i]
		}
	}
	return r
}

// TruncateToUint32 keeps the low 32 bits of each lane and writes them to
// dst[:4] in lane order, independent of byte order.
func (v Uint64x4) TruncateToUint32(dst []uint32) {
	dst = dst[:4]
	for i := range v {
		dst[i] = uint32(v[i])
	}
}

// AllMask64x4 returns a mask with every lane active.
func AllMask64x4() Mask64x4 {
	var m Mask64x4
	for i := range m {
		m[i] = true
	}
	return m
}

// And returns the lanes active in both masks.
func (m Mask64x4) And(o Mask64x4) Mask64x4 {
	var r Mask64x4
	for i := range m {
		r[i] = m[i] && o[i]
	}
	return r
}

// AllFalse reports whether no lane is active.
func (m Mask64x4) AllFalse() bool {
	for _, b := range m {
		if b {
			return false
		}
	}
	return true
}
