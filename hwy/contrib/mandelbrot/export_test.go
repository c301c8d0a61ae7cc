package mandelbrot

import "github.com/ajroetker/hwy-mandelbrot/hwy"

// Short aliases for instantiating the lane kernels in tests.
type (
	hwyF2 = hwy.Float64x2
	hwyM2 = hwy.Mask64x2
	hwyU2 = hwy.Uint64x2
	hwyF4 = hwy.Float64x4
	hwyM4 = hwy.Mask64x4
	hwyF8 = hwy.Float64x8
	hwyM8 = hwy.Mask64x8
	hwyU8 = hwy.Uint64x8
)
