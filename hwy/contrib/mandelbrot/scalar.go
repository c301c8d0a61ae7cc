package mandelbrot

import "github.com/ajroetker/hwy-mandelbrot/hwy/contrib/workerpool"

// EscapeCount returns the number of iterations it takes for the orbit of
// c = cr + ci·i to leave the Threshold disk, or IterLimit if it never does.
// A point whose |z|² is NaN counts as escaped.
//
// The explicit float64 conversions round each product before it is used,
// which keeps the compiler from fusing it into a multiply-add and makes the
// result match the lane kernels bit for bit on every architecture.
func EscapeCount(cr, ci float64) uint32 {
	zr, zi := cr, ci
	for iter := range IterLimit {
		rr := float64(zr * zr)
		ii := float64(zi * zi)
		// Negated so a NaN orbit escapes, matching the lane kernels'
		// LessEqual mask.
		if !(rr+ii <= Threshold) {
			return iter
		}
		ri := float64(zr * zi)
		zr = cr + (rr - ii)
		zi = ci + (ri + ri)
	}
	return IterLimit
}

// GenerateScalar computes the image one point at a time, rows in parallel.
// Any width is accepted. A nil pool uses per-call goroutines.
func GenerateScalar(pool *workerpool.Pool, dims Dimensions, xr, yr Range) []uint32 {
	return driver{pool: pool, rowBatch: DefaultRowBatch}.scalar(dims, xr, yr)
}

func (d driver) scalar(dims Dimensions, xr, yr Range) []uint32 {
	mustDimensions(Scalar, dims, 1)
	logGenerate(Scalar, dims, 1, backendScalar)

	xs := xr.samples(d.pool, dims.Width)
	out := make([]uint32, dims.Pixels())
	d.forEachRow(splitRows(out, dims), func(i int, row []uint32) {
		y := yr.At(i, dims.Height)
		for j := range row {
			row[j] = EscapeCount(xs[j], y)
		}
	})
	return out
}
