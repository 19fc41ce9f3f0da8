package imaging

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in "#RRGGBB" format.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseRGB parses a decimal "r,g,b" triple into an RGBColor.
//
// Each component must be an integer in [0, 255]. Surrounding whitespace in
// each component is ignored, so "10, 20, 30" is accepted. Any other shape
// fails with ErrInvalidParameter.
func ParseRGB(s string) (RGBColor, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGBColor{}, fmt.Errorf("%w: rgb must be an r,g,b triple, got %q", ErrInvalidParameter, s)
	}

	var vals [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGBColor{}, fmt.Errorf("%w: rgb component %q is not in [0,255]", ErrInvalidParameter, strings.TrimSpace(p))
		}
		vals[i] = uint8(v)
	}

	return RGBColor{R: vals[0], G: vals[1], B: vals[2]}, nil
}
