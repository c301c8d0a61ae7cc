package mandelbrot

const (
	// IterLimit caps the recurrence. A count equal to IterLimit means the
	// point did not escape.
	IterLimit uint32 = 1000

	// Threshold is the escape bound on |z|² (escape radius 2).
	Threshold float64 = 4.0

	// BatchSize is the number of points the batched scalar kernel carries.
	BatchSize = 8

	// Wide4Lanes is the lane count of the Wide4 kernel.
	Wide4Lanes = 4

	// Wide8Lanes is the lane count of the Wide8 kernel.
	Wide8Lanes = 8

	// DefaultRowBatch is the number of rows a worker claims at a time.
	DefaultRowBatch = 1
)
