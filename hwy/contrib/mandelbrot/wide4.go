package mandelbrot

import (
	"github.com/ajroetker/hwy-mandelbrot/hwy"
	"github.com/ajroetker/hwy-mandelbrot/hwy/contrib/workerpool"
)

// wide4Ops runs four lanes of a 256-bit vector and accumulates counts in
// float64 lanes, adding a blend of 1 and 0 each step. Counts up to
// IterLimit are exact in float64, so the final conversion is lossless.
type wide4Ops struct{}

func (wide4Ops) Lanes() int                                { return hwy.FixedTag256[float64]{}.MaxLanes() }
func (wide4Ops) Load(src []float64) hwy.Float64x4          { return hwy.LoadFloat64x4(src) }
func (wide4Ops) Splat(x float64) hwy.Float64x4             { return hwy.SplatFloat64x4(x) }
func (wide4Ops) Mul(a, b hwy.Float64x4) hwy.Float64x4      { return a.Mul(b) }
func (wide4Ops) Add(a, b hwy.Float64x4) hwy.Float64x4      { return a.Add(b) }
func (wide4Ops) Sub(a, b hwy.Float64x4) hwy.Float64x4      { return a.Sub(b) }
func (wide4Ops) LessEqual(a, b hwy.Float64x4) hwy.Mask64x4 { return a.LessEqual(b) }
func (wide4Ops) And(a, b hwy.Mask64x4) hwy.Mask64x4        { return a.And(b) }
func (wide4Ops) AllTrue() hwy.Mask64x4                     { return hwy.AllMask64x4() }
func (wide4Ops) AllFalse(m hwy.Mask64x4) bool              { return m.AllFalse() }
func (wide4Ops) ZeroCount() hwy.Float64x4                  { return hwy.Float64x4{} }
func (wide4Ops) StoreCounts(c hwy.Float64x4, dst []uint32) { c.TruncateToUint32(dst) }

func (wide4Ops) IncrementIf(m hwy.Mask64x4, c hwy.Float64x4) hwy.Float64x4 {
	return c.Add(hwy.SplatFloat64x4(1).Merge(hwy.Float64x4{}, m))
}

// GenerateWide4 computes the image four lanes at a time, rows in parallel.
// The width must be a multiple of Wide4Lanes.
func GenerateWide4(pool *workerpool.Pool, dims Dimensions, xr, yr Range) []uint32 {
	return driver{pool: pool, rowBatch: DefaultRowBatch}.wide4(dims, xr, yr)
}

func (d driver) wide4(dims Dimensions, xr, yr Range) []uint32 {
	return wide4Kernel.run(d, Wide4, dims, xr, yr)
}
