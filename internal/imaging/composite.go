package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Composite alpha-blends an overlay onto a buffer, producing a new buffer
// of identical dimensions.
//
// Each pixel is blended with straight (non-premultiplied) alpha:
//
//	result = src*(1-alpha) + overlayColor*alpha
//
// applied independently per RGB channel, rounded to the nearest integer and
// saturated to [0, 255]. The source alpha channel is copied through
// unchanged; the overlay affects only RGB.
//
// The input buffer is never mutated and remains valid after the call.
// Returns ErrDimensionMismatch if the overlay was built for different
// dimensions than the buffer's.
func Composite(buf *PixelBuffer, ov *Overlay) (*PixelBuffer, error) {
	if err := checkBuffer(buf); err != nil {
		return nil, err
	}
	width, height := buf.Width(), buf.Height()
	if ov.Width != width || ov.Height != height {
		return nil, fmt.Errorf("%w: overlay built for %dx%d, buffer is %dx%d",
			ErrDimensionMismatch, ov.Width, ov.Height, width, height)
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := ov.Alpha(x, y, width, height)
			src := buf.img.NRGBAAt(x, y)
			out.SetNRGBA(x, y, color.NRGBA{
				R: blendChannel(src.R, ov.Color.R, alpha),
				G: blendChannel(src.G, ov.Color.G, alpha),
				B: blendChannel(src.B, ov.Color.B, alpha),
				A: src.A,
			})
		}
	}
	return &PixelBuffer{img: out}, nil
}

// blendChannel interpolates one channel, rounding rather than truncating.
func blendChannel(src, overlay uint8, alpha float64) uint8 {
	v := math.Round(float64(overlay)*alpha + float64(src)*(1.0-alpha))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
