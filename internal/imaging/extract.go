package imaging

import "fmt"

// Variant selects the strategy used to derive the overlay's base color.
type Variant string

// Supported extraction strategies. Values match the HTTP parameter exactly
// (case-sensitive).
const (
	// VariantDominant scans every pixel and returns the most frequent
	// quantized color.
	VariantDominant Variant = "Dominant"

	// VariantDominantBottom runs the same algorithm restricted to the
	// bottom row (y = height-1) of the image.
	VariantDominantBottom Variant = "DominantBottom"

	// VariantUserDefined uses a caller-supplied color verbatim.
	VariantUserDefined Variant = "UserDefined"
)

// ParseVariant converts an HTTP parameter value into a Variant.
// Matching is exact; unknown values fail with ErrInvalidParameter.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantDominant, VariantDominantBottom, VariantUserDefined:
		return v, nil
	case "":
		return "", fmt.Errorf("%w: missing gradient_variant", ErrInvalidParameter)
	default:
		return "", fmt.Errorf("%w: unknown gradient_variant %q (want %s, %s or %s)",
			ErrInvalidParameter, s, VariantDominant, VariantDominantBottom, VariantUserDefined)
	}
}

// QuantStep is the per-channel quantization step used when bucketing colors
// for dominant-color extraction. Colors within QuantStep units of each other
// (per component) land in the same bucket, bounding the histogram to
// (256/QuantStep)^3 entries regardless of image size.
const QuantStep = 16

// Extract computes the overlay base color for a buffer under the given
// strategy.
//
// Parameters:
//   - buf: The source buffer. Required for the Dominant* variants.
//   - v: The extraction strategy.
//   - user: The caller-supplied color. Required iff v is VariantUserDefined,
//     ignored otherwise.
//
// Returns:
//   - RGBColor: The extracted base color.
//   - error: ErrInvalidParameter for an unknown variant or a missing user
//     color; ErrInvalidImage for a nil or empty buffer.
//
// # Dominant-Color Algorithm
//
// Each sample is quantized into a coarse bucket (see QuantStep) and bucket
// frequencies are counted in scan order (row-major, top-left to
// bottom-right). The winning bucket is the first to reach the maximum
// count, which makes ties deterministic. The returned color is the
// per-channel mean of the samples in the winning bucket, so a uniform image
// yields its exact color, not the quantized bucket corner.
//
// Extraction is a pure function of its inputs; the buffer is only read.
func Extract(buf *PixelBuffer, v Variant, user *RGBColor) (RGBColor, error) {
	switch v {
	case VariantUserDefined:
		if user == nil {
			return RGBColor{}, fmt.Errorf("%w: rgb is required for %s", ErrInvalidParameter, VariantUserDefined)
		}
		return *user, nil
	case VariantDominant:
		if err := checkBuffer(buf); err != nil {
			return RGBColor{}, err
		}
		return dominantColor(buf, 0, buf.Height()), nil
	case VariantDominantBottom:
		if err := checkBuffer(buf); err != nil {
			return RGBColor{}, err
		}
		return dominantColor(buf, buf.Height()-1, buf.Height()), nil
	default:
		return RGBColor{}, fmt.Errorf("%w: unknown gradient_variant %q", ErrInvalidParameter, v)
	}
}

func checkBuffer(buf *PixelBuffer) error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidImage)
	}
	if buf.Width() <= 0 || buf.Height() <= 0 {
		return fmt.Errorf("%w: zero dimension (%dx%d)", ErrInvalidImage, buf.Width(), buf.Height())
	}
	return nil
}

// bucket accumulates the samples that fell into one quantized color cell.
type bucket struct {
	count            int
	rSum, gSum, bSum uint64
}

// dominantColor histograms rows [y0, y1) and returns the mean color of the
// most frequent bucket.
func dominantColor(buf *PixelBuffer, y0, y1 int) RGBColor {
	width := buf.Width()
	buckets := make(map[uint32]*bucket)

	var bestKey uint32
	bestCount := 0

	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			c := buf.img.NRGBAAt(x, y)
			key := quantKey(c.R, c.G, c.B)
			bk := buckets[key]
			if bk == nil {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.count++
			bk.rSum += uint64(c.R)
			bk.gSum += uint64(c.G)
			bk.bSum += uint64(c.B)
			// Strict > keeps the first bucket reaching the maximum.
			if bk.count > bestCount {
				bestCount = bk.count
				bestKey = key
			}
		}
	}

	best := buckets[bestKey]
	return RGBColor{
		R: meanChannel(best.rSum, best.count),
		G: meanChannel(best.gSum, best.count),
		B: meanChannel(best.bSum, best.count),
	}
}

// quantKey packs the quantized channel indices into a single map key.
func quantKey(r, g, b uint8) uint32 {
	return uint32(r/QuantStep)<<16 | uint32(g/QuantStep)<<8 | uint32(b/QuantStep)
}

// meanChannel rounds the per-bucket channel mean to the nearest integer.
func meanChannel(sum uint64, count int) uint8 {
	return uint8((sum + uint64(count)/2) / uint64(count))
}
