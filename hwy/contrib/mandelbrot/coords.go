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

import "github.com/ajroetker/hwy-mandelbrot/hwy/contrib/workerpool"

// minParallelSamples is the axis length below which sampling stays on the
// calling goroutine.
const minParallelSamples = 4096

// Dimensions is the pixel size of an image.
type Dimensions struct {
	Width, Height int
}

// Pixels returns Width × Height.
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

// Range is an interval of one axis of the complex plane. Start need not be
// below End; sampling interpolates linearly in either direction.
type Range struct {
	Start, End float64
}

// Step returns the distance between adjacent samples when the range is
// divided into n pixels.
func (r Range) Step(n int) float64 {
	return (r.End - r.Start) / float64(n)
}

// At returns the coordinate of pixel i out of n. It is computed directly
// from i rather than by accumulating steps, so there is no drift across a
// row or column.
func (r Range) At(i, n int) float64 {
	return r.Start + r.Step(n)*float64(i)
}

// Samples returns the coordinates of all n pixels of the axis.
func (r Range) Samples(n int) []float64 {
	return r.samples(nil, n)
}

// samples fills the coordinate table, fanning out across the pool for long
// axes. Every entry depends only on its index, so chunks are independent.
func (r Range) samples(pool *workerpool.Pool, n int) []float64 {
	xs := make([]float64, n)
	step := r.Step(n)
	fill := func(start, end int) {
		for j := start; j < end; j++ {
			xs[j] = r.Start + step*float64(j)
		}
	}
	if pool == nil || n < minParallelSamples {
		fill(0, n)
		return xs
	}
	pool.ParallelFor(n, fill)
	return xs
}
