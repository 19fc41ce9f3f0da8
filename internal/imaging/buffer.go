package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// PixelBuffer is an immutable view of decoded image data as a rectangular
// grid of 8-bit RGBA samples.
//
// A buffer is created once from a decoded image and never mutated afterward;
// operations that produce new pixel data (see Composite) allocate a fresh
// buffer. Buffers are owned by a single request and are safe to read from
// multiple goroutines.
type PixelBuffer struct {
	img *image.NRGBA
}

// NewPixelBuffer wraps a decoded image as a PixelBuffer.
//
// The source is normalized to straight-alpha 8-bit RGBA (NRGBA) with the
// origin at (0,0), so the buffer's representation is independent of the
// source's color model. The source image is copied, not retained.
//
// Returns ErrInvalidImage if the image is nil or has zero width or height.
func NewPixelBuffer(src image.Image) (*PixelBuffer, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: zero dimension (%dx%d)", ErrInvalidImage, b.Dx(), b.Dy())
	}
	return &PixelBuffer{img: imaging.Clone(src)}, nil
}

// Width returns the buffer width in pixels.
func (p *PixelBuffer) Width() int {
	return p.img.Bounds().Dx()
}

// Height returns the buffer height in pixels.
func (p *PixelBuffer) Height() int {
	return p.img.Bounds().Dy()
}

// At returns the straight-alpha RGBA sample at (x, y).
//
// Returns ErrInvalidParameter if the coordinate is outside
// [0,width) x [0,height).
func (p *PixelBuffer) At(x, y int) (color.NRGBA, error) {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return color.NRGBA{}, fmt.Errorf("%w: coordinates (%d,%d) outside %dx%d buffer",
			ErrInvalidParameter, x, y, p.Width(), p.Height())
	}
	return p.img.NRGBAAt(x, y), nil
}

// Image exposes the underlying NRGBA image for encoding.
//
// The returned image is the buffer's backing store and must be treated as
// read-only.
func (p *PixelBuffer) Image() *image.NRGBA {
	return p.img
}
