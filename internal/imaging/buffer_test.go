package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// uniformImage creates an in-memory test image filled with one color.
func uniformImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// uniformBuffer wraps uniformImage in a PixelBuffer, failing the test on error.
func uniformBuffer(t *testing.T, width, height int, c color.NRGBA) *PixelBuffer {
	t.Helper()
	buf, err := NewPixelBuffer(uniformImage(width, height, c))
	if err != nil {
		t.Fatalf("NewPixelBuffer failed: %v", err)
	}
	return buf
}

func TestNewPixelBuffer(t *testing.T) {
	buf := uniformBuffer(t, 7, 3, color.NRGBA{10, 20, 30, 255})

	if buf.Width() != 7 {
		t.Errorf("Width: got %d, want 7", buf.Width())
	}
	if buf.Height() != 3 {
		t.Errorf("Height: got %d, want 3", buf.Height())
	}
}

func TestNewPixelBuffer_NilImage(t *testing.T) {
	_, err := NewPixelBuffer(nil)
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("got %v, want ErrInvalidImage", err)
	}
}

func TestNewPixelBuffer_ZeroDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPixelBuffer(image.NewNRGBA(image.Rect(0, 0, tt.width, tt.height)))
			if !errors.Is(err, ErrInvalidImage) {
				t.Errorf("got %v, want ErrInvalidImage", err)
			}
		})
	}
}

func TestNewPixelBuffer_NormalizesColorModel(t *testing.T) {
	// An opaque RGBA source must read back with identical 8-bit samples.
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, color.RGBA{200, 100, 50, 255})
		}
	}

	buf, err := NewPixelBuffer(src)
	if err != nil {
		t.Fatalf("NewPixelBuffer failed: %v", err)
	}

	got, err := buf.At(1, 1)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	want := color.NRGBA{200, 100, 50, 255}
	if got != want {
		t.Errorf("At(1,1): got %v, want %v", got, want)
	}
}

func TestNewPixelBuffer_CopiesSource(t *testing.T) {
	src := uniformImage(2, 2, color.NRGBA{10, 10, 10, 255})
	buf, err := NewPixelBuffer(src)
	if err != nil {
		t.Fatalf("NewPixelBuffer failed: %v", err)
	}

	// Mutating the source afterwards must not leak into the buffer.
	src.SetNRGBA(0, 0, color.NRGBA{250, 250, 250, 255})

	got, err := buf.At(0, 0)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if got != (color.NRGBA{10, 10, 10, 255}) {
		t.Errorf("buffer shares storage with source: got %v", got)
	}
}

func TestPixelBuffer_At_OutOfBounds(t *testing.T) {
	buf := uniformBuffer(t, 4, 4, color.NRGBA{1, 2, 3, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x too large", 4, 0},
		{"y too large", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buf.At(tt.x, tt.y)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("got %v, want ErrInvalidParameter", err)
			}
		})
	}
}
