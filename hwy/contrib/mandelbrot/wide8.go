package mandelbrot

import (
	"github.com/ajroetker/hwy-mandelbrot/hwy"
	"github.com/ajroetker/hwy-mandelbrot/hwy/contrib/workerpool"
)

// wide8Ops runs eight lanes of a 512-bit vector. Counts live in uint64 lanes so
// the select operates on a vector the same shape as the mask; they are
// narrowed lane by lane to uint32 on store.
type wide8Ops struct{}

func (wide8Ops) Lanes() int                                { return hwy.FixedTag512[float64]{}.MaxLanes() }
func (wide8Ops) Load(src []float64) hwy.Float64x8          { return hwy.LoadFloat64x8(src) }
func (wide8Ops) Splat(x float64) hwy.Float64x8             { return hwy.SplatFloat64x8(x) }
func (wide8Ops) Mul(a, b hwy.Float64x8) hwy.Float64x8      { return a.Mul(b) }
func (wide8Ops) Add(a, b hwy.Float64x8) hwy.Float64x8      { return a.Add(b) }
func (wide8Ops) Sub(a, b hwy.Float64x8) hwy.Float64x8      { return a.Sub(b) }
func (wide8Ops) LessEqual(a, b hwy.Float64x8) hwy.Mask64x8 { return a.LessEqual(b) }
func (wide8Ops) And(a, b hwy.Mask64x8) hwy.Mask64x8        { return a.And(b) }
func (wide8Ops) AllTrue() hwy.Mask64x8                     { return hwy.AllMask64x8() }
func (wide8Ops) AllFalse(m hwy.Mask64x8) bool              { return m.AllFalse() }
func (wide8Ops) ZeroCount() hwy.Uint64x8                   { return hwy.Uint64x8{} }
func (wide8Ops) StoreCounts(c hwy.Uint64x8, dst []uint32)  { c.TruncateToUint32(dst) }

func (wide8Ops) IncrementIf(m hwy.Mask64x8, c hwy.Uint64x8) hwy.Uint64x8 {
	return c.Add(hwy.SplatUint64x8(1)).Merge(c, m)
}

// GenerateWide8 computes the image eight lanes at a time, rows in parallel.
// The width must be a multiple of Wide8Lanes.
func GenerateWide8(pool *workerpool.Pool, dims Dimensions, xr, yr Range) []uint32 {
	return driver{pool: pool, rowBatch: DefaultRowBatch}.wide8(dims, xr, yr)
}

func (d driver) wide8(dims Dimensions, xr, yr Range) []uint32 {
	return wide8Kernel.run(d, Wide8, dims, xr, yr)
}
