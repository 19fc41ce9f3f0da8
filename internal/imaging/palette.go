package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/anthonynsimon/bild/transform"
	"github.com/lucasb-eyer/go-colorful"
)

// PaletteEntry is one color in a dominant-palette report.
type PaletteEntry struct {
	Hex        string   `json:"hex"`        // Hex color "#rrggbb"
	RGB        RGBColor `json:"rgb"`        // RGB components
	Percentage float64  `json:"percentage"` // Percentage of sampled pixels (0-100)
}

// PaletteResult contains the most frequently occurring colors in an image,
// sorted by frequency in descending order (most common first).
type PaletteResult struct {
	Colors []PaletteEntry `json:"colors"`
}

// maxPaletteSample bounds the per-side dimensions of the image sampled for
// a palette report. Larger images are downscaled before sampling so the
// histogram cost stays constant regardless of source size.
const maxPaletteSample = 256

// DominantPalette extracts the count most common colors from a buffer.
//
// Colors are grouped into quantized buckets (see QuantStep) and each
// reported color is the per-channel mean of its bucket. Images larger than
// maxPaletteSample on either side are downscaled with bilinear filtering
// before sampling, so percentages are approximate for large sources. If the
// image has fewer distinct buckets than count, fewer entries are returned.
//
// Returns ErrInvalidParameter if count is not positive and ErrInvalidImage
// for a nil or empty buffer.
func DominantPalette(buf *PixelBuffer, count int) (*PaletteResult, error) {
	if err := checkBuffer(buf); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidParameter, count)
	}

	var img image.Image = buf.img
	if w, h := buf.Width(), buf.Height(); w > maxPaletteSample || h > maxPaletteSample {
		nw, nh := fitSample(w, h)
		img = transform.Resize(img, nw, nh, transform.Linear)
	}

	bounds := img.Bounds()
	buckets := make(map[uint32]*bucket)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
			key := quantKey(r8, g8, b8)
			bk := buckets[key]
			if bk == nil {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.count++
			bk.rSum += uint64(r8)
			bk.gSum += uint64(g8)
			bk.bSum += uint64(b8)
			totalPixels++
		}
	}

	colors := make([]PaletteEntry, 0, len(buckets))
	for _, bk := range buckets {
		rgb := RGBColor{
			R: meanChannel(bk.rSum, bk.count),
			G: meanChannel(bk.gSum, bk.count),
			B: meanChannel(bk.bSum, bk.count),
		}
		hex := colorful.Color{
			R: float64(rgb.R) / 255.0,
			G: float64(rgb.G) / 255.0,
			B: float64(rgb.B) / 255.0,
		}.Hex()
		colors = append(colors, PaletteEntry{
			Hex:        hex,
			RGB:        rgb,
			Percentage: float64(bk.count) / float64(totalPixels) * 100,
		})
	}

	// Frequency descending; hex ascending breaks ties deterministically.
	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return &PaletteResult{Colors: colors}, nil
}

// fitSample scales (w, h) down to fit maxPaletteSample, preserving aspect
// ratio and keeping both sides at least 1.
func fitSample(w, h int) (int, int) {
	var nw, nh int
	if w >= h {
		nw = maxPaletteSample
		nh = h * maxPaletteSample / w
	} else {
		nh = maxPaletteSample
		nw = w * maxPaletteSample / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
