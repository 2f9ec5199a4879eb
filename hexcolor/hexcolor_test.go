package hexcolor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/colorkit/colorkit/colorspace"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"3 digit", "#abc", true},
		{"4 digit", "#abcd", true},
		{"6 digit", "#ff0000", true},
		{"8 digit", "#ff000080", true},
		{"uppercase", "#FF0000", true},
		{"mixed case", "#Ff00aB", true},
		{"5 digit", "#12345", false},
		{"7 digit", "#1234567", false},
		{"no hash", "ff0000", false},
		{"non-hex characters", "#gggggg", false},
		{"too short", "#ff", false},
		{"too long", "#ff0000001", false},
		{"empty", "", false},
		{"hash only", "#", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse("#12345")
	if err == nil {
		t.Fatal("Parse(\"#12345\") should fail")
	}

	var invalid *InvalidHexColorError
	if !errors.As(err, &invalid) {
		t.Fatalf("Parse error is %T, want *InvalidHexColorError", err)
	}
	if invalid.Input != "#12345" {
		t.Errorf("error input = %q, want %q", invalid.Input, "#12345")
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  colorspace.RGBA
	}{
		{"6 digit red", "#ff0000", colorspace.RGBA{R: 255, A: colorspace.Opaque}},
		{"6 digit white", "#ffffff", colorspace.RGBA{R: 255, G: 255, B: 255, A: colorspace.Opaque}},
		{"6 digit mixed", "#12abef", colorspace.RGBA{R: 0x12, G: 0xab, B: 0xef, A: colorspace.Opaque}},
		{"3 digit doubles", "#abc", colorspace.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: colorspace.Opaque}},
		{"4 digit doubles with alpha", "#f008", colorspace.RGBA{R: 255, A: colorspace.Alpha{V: 0x88 / 255.0, Valid: true}}},
		{"8 digit half alpha", "#ff000080", colorspace.RGBA{R: 255, A: colorspace.Alpha{V: 128.0 / 255, Valid: true}}},
		{"8 digit opaque", "#00ff00ff", colorspace.RGBA{G: 255, A: colorspace.Opaque}},
		{"8 digit transparent", "#00000000", colorspace.RGBA{A: colorspace.Alpha{V: 0, Valid: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, h.RGBA()); diff != "" {
				t.Errorf("RGBA(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSixDigitAlphaIsAlwaysOne(t *testing.T) {
	for _, s := range []string{"#000000", "#123456", "#ffffff", "#abcdef"} {
		h, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if a := h.RGBA().A; a.V != 1 || !a.Valid {
			t.Errorf("RGBA(%q).A = %+v, want exactly 1", s, a)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	channels := []struct{ r, g, b int }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{1, 2, 3},
		{0x12, 0xab, 0xef},
	}

	for _, c := range channels {
		h := Encode(c.r, c.g, c.b)
		got := h.RGBA()
		if got.R != c.r || got.G != c.g || got.B != c.b {
			t.Errorf("Encode(%d,%d,%d) decoded to (%d,%d,%d)",
				c.r, c.g, c.b, got.R, got.G, got.B)
		}
	}
}

func TestEncodeFormat(t *testing.T) {
	if got := Encode(255, 0, 128).String(); got != "#ff0080" {
		t.Errorf("Encode(255,0,128) = %q, want %q", got, "#ff0080")
	}
}
