package imaging

import (
	"fmt"
	"math"
)

// OverlaySpec describes the overlay to build: a base color and a fade
// factor in [0.0, 1.0].
//
// Fade uniformly reduces overlay opacity: 0.0 produces the strongest
// overlay, 1.0 an invisible one.
type OverlaySpec struct {
	Base RGBColor
	Fade float64
}

// AlphaFunc maps a pixel coordinate and the image dimensions to the overlay
// opacity at that pixel, in [0.0, 1.0]. Implementations must be pure.
type AlphaFunc func(x, y, width, height int) float64

// Overlay is a built gradient overlay: a single color whose opacity varies
// by position.
//
// Width and Height record the dimensions the overlay was built for; the
// compositor rejects buffers with different dimensions. Only the alpha
// varies spatially, which keeps the compositor contract independent of the
// gradient shape.
type Overlay struct {
	Color  RGBColor
	Width  int
	Height int
	Alpha  AlphaFunc
}

// BuildVerticalOverlay constructs a linear vertical gradient overlay:
// transparent at the top row, strongest at the bottom row.
//
// The opacity at row y is
//
//	alpha(y) = (1 - fade) * y / (height-1)
//
// so fade=0.0 reaches full opacity at the bottom row and fade=1.0 yields an
// invisible overlay. A single-row image degenerates to uniform opacity
// 1-fade. Opacity does not vary with x.
//
// Returns ErrInvalidParameter if spec.Fade is outside [0.0, 1.0] (values
// are rejected, never clamped) and ErrInvalidImage for non-positive
// dimensions.
func BuildVerticalOverlay(spec OverlaySpec, width, height int) (*Overlay, error) {
	if math.IsNaN(spec.Fade) || spec.Fade < 0.0 || spec.Fade > 1.0 {
		return nil, fmt.Errorf("%w: fade %g outside [0.0, 1.0]", ErrInvalidParameter, spec.Fade)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: zero dimension (%dx%d)", ErrInvalidImage, width, height)
	}

	maxAlpha := 1.0 - spec.Fade
	return &Overlay{
		Color:  spec.Base,
		Width:  width,
		Height: height,
		Alpha: func(x, y, w, h int) float64 {
			if h <= 1 {
				return maxAlpha
			}
			return maxAlpha * float64(y) / float64(h-1)
		},
	}, nil
}
