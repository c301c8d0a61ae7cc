package mandelbrot

import "github.com/ajroetker/hwy-mandelbrot/hwy/contrib/workerpool"

// escapeBatch runs BatchSize points with imaginary part ci through the
// recurrence together, without vector instructions. counts doubles as the
// per-lane state: IterLimit means still active, anything else is the escape
// iteration, written exactly once.
//
// Escaped lanes skip their arithmetic but the sweep always runs IterLimit
// times; there is no early exit for a fully escaped batch.
func escapeBatch(cr *[BatchSize]float64, ci float64, counts []uint32) {
	counts = counts[:BatchSize]
	zr := *cr
	var zi [BatchSize]float64
	for i := range BatchSize {
		zi[i] = ci
		counts[i] = IterLimit
	}

	for iter := range IterLimit {
		for i := range BatchSize {
			if counts[i] != IterLimit {
				continue
			}
			rr := float64(zr[i] * zr[i])
			ii := float64(zi[i] * zi[i])
			if !(rr+ii <= Threshold) {
				counts[i] = iter
				continue
			}
			ri := float64(zr[i] * zi[i])
			zr[i] = cr[i] + (rr - ii)
			zi[i] = ci + (ri + ri)
		}
	}
}

// GenerateBatched computes the image in batches of BatchSize points, rows in
// parallel. The width must be a multiple of BatchSize.
func GenerateBatched(pool *workerpool.Pool, dims Dimensions, xr, yr Range) []uint32 {
	return driver{pool: pool, rowBatch: DefaultRowBatch}.batched(dims, xr, yr)
}

func (d driver) batched(dims Dimensions, xr, yr Range) []uint32 {
	mustDimensions(BatchedScalar, dims, BatchSize)
	logGenerate(BatchedScalar, dims, BatchSize, backendScalar)

	xs := xr.samples(d.pool, dims.Width)
	out := make([]uint32, dims.Pixels())
	d.forEachRow(splitRows(out, dims), func(i int, row []uint32) {
		y := yr.At(i, dims.Height)
		for j := 0; j < len(row); j += BatchSize {
			escapeBatch((*[BatchSize]float64)(xs[j:j+BatchSize]), y, row[j:j+BatchSize])
		}
	})
	return out
}
