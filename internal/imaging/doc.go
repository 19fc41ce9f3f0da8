// Package imaging implements the gradient-overlay pipeline: representative
// color extraction, gradient construction, and alpha compositing.
//
// The pipeline operates on PixelBuffer values, immutable 8-bit RGBA views
// created from any decoded image.Image. A request flows through three pure
// stages:
//
//	Extract(buffer, variant, userRGB)  -> base color
//	BuildVerticalOverlay(spec, w, h)   -> overlay (color + alpha function)
//	Composite(buffer, overlay)         -> new buffer
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Thread Safety
//
// Every function in this package is a pure function of its inputs. A
// PixelBuffer is never mutated after construction, so buffers and overlays
// may be used concurrently from multiple goroutines without locking. There
// is no package-level state and no cross-call caching.
//
// # Error Handling
//
// Failures wrap one of the sentinel errors ErrInvalidParameter,
// ErrInvalidImage, or ErrDimensionMismatch so callers can classify them
// with errors.Is. No function returns a partial result alongside an error.
package imaging
