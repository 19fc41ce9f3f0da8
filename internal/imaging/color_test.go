package imaging

import (
	"errors"
	"testing"
)

func TestParseRGB(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGBColor
	}{
		{"plain triple", "10,20,30", RGBColor{10, 20, 30}},
		{"with spaces", "10, 20, 30", RGBColor{10, 20, 30}},
		{"bounds", "0,128,255", RGBColor{0, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRGB(tt.input)
			if err != nil {
				t.Fatalf("ParseRGB(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRGB(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRGB_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too few components", "10,20"},
		{"too many components", "10,20,30,40"},
		{"out of range", "10,20,256"},
		{"negative", "-1,20,30"},
		{"not a number", "red,20,30"},
		{"float component", "10.5,20,30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRGB(tt.input)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("ParseRGB(%q): got %v, want ErrInvalidParameter", tt.input, err)
			}
		})
	}
}

func TestRGBColor_Hex(t *testing.T) {
	tests := []struct {
		name  string
		color RGBColor
		want  string
	}{
		{"black", RGBColor{0, 0, 0}, "#000000"},
		{"white", RGBColor{255, 255, 255}, "#FFFFFF"},
		{"mixed", RGBColor{200, 100, 50}, "#C86432"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex: got %s, want %s", got, tt.want)
			}
		})
	}
}
