package imaging

import "errors"

// Sentinel errors returned by the pipeline. Callers classify failures with
// errors.Is; the wrapped message carries the detail.
var (
	// ErrInvalidParameter indicates a caller-supplied parameter is missing,
	// malformed, or out of range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidImage indicates the image data cannot be processed, such as
	// a buffer with zero width or height.
	ErrInvalidImage = errors.New("invalid image")

	// ErrDimensionMismatch indicates an overlay was applied to a buffer with
	// different dimensions than it was built for. This is an internal
	// invariant violation and should never occur with correct wiring.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
