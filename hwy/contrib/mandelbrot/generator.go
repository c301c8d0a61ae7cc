package mandelbrot

import "github.com/ajroetker/hwy-mandelbrot/hwy/contrib/workerpool"

// Generator renders images with a fixed algorithm and scheduling setup.
// It holds no per-image state and is safe for concurrent use as long as
// its pool is.
type Generator struct {
	alg Algorithm
	drv driver
}

// Option configures a Generator.
type Option func(*Generator)

// WithAlgorithm selects the kernel. The default is Dispatched.
func WithAlgorithm(alg Algorithm) Option {
	return func(g *Generator) {
		g.alg = alg
	}
}

// WithPool runs rows on a persistent pool instead of per-call goroutines.
// The caller keeps ownership and closes it.
func WithPool(pool *workerpool.Pool) Option {
	return func(g *Generator) {
		g.drv.pool = pool
	}
}

// WithRowBatch sets how many consecutive rows a worker claims at once.
// Values below 1 mean one row.
func WithRowBatch(rows int) Option {
	return func(g *Generator) {
		g.drv.rowBatch = max(rows, 1)
	}
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		alg: Dispatched,
		drv: driver{rowBatch: DefaultRowBatch},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Algorithm returns the configured algorithm.
func (g *Generator) Algorithm() Algorithm {
	return g.alg
}

// Validate reports whether dims suits the configured algorithm.
func (g *Generator) Validate(dims Dimensions) error {
	return Validate(g.alg, dims)
}

// Generate computes the escape-time image. It panics with a
// *PreconditionError if dims does not suit the algorithm.
func (g *Generator) Generate(dims Dimensions, xr, yr Range) []uint32 {
	return g.drv.generate(g.alg, dims, xr, yr)
}
