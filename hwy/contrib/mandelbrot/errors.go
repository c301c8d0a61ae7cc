package mandelbrot

import (
	"errors"
	"fmt"
)

// ErrPrecondition is the class of every *PreconditionError.
var ErrPrecondition = errors.New("mandelbrot: precondition violated")

// PreconditionError reports dimensions an algorithm cannot process: a
// non-positive size, or a width that is not a multiple of the kernel's lane
// count. It is a caller error; Generate functions panic with it.
type PreconditionError struct {
	Algorithm Algorithm
	Width     int
	Height    int
	Lanes     int
}

func (e *PreconditionError) Error() string {
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Sprintf("mandelbrot: %s: image size %dx%d must be positive",
			e.Algorithm, e.Width, e.Height)
	}
	return fmt.Sprintf("mandelbrot: %s: image width = %d is not divisible by the number of vector lanes = %d",
		e.Algorithm, e.Width, e.Lanes)
}

// Unwrap lets errors.Is match ErrPrecondition.
func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// checkDimensions returns a *PreconditionError when dims cannot be split
// into whole lane groups of the given width.
func checkDimensions(alg Algorithm, dims Dimensions, lanes int) error {
	if dims.Width <= 0 || dims.Height <= 0 || dims.Width%lanes != 0 {
		return &PreconditionError{Algorithm: alg, Width: dims.Width, Height: dims.Height, Lanes: lanes}
	}
	return nil
}

// mustDimensions panics with the *PreconditionError from checkDimensions.
func mustDimensions(alg Algorithm, dims Dimensions, lanes int) {
	if err := checkDimensions(alg, dims, lanes); err != nil {
		panic(err)
	}
}

// Validate reports whether alg can generate an image of the given size,
// returning the error its Generate call would panic with.
func Validate(alg Algorithm, dims Dimensions) error {
	return checkDimensions(alg, dims, alg.Lanes())
}
