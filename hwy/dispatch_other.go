//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures run the lane types as plain Go loops.
	setLevel(DispatchScalar)
}
