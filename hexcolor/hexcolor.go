// Package hexcolor validates, decodes, and encodes hex color notation:
// #RGB, #RGBA, #RRGGBB, and #RRGGBBAA.
package hexcolor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/colorkit/colorkit/colorspace"
)

var pattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// HexColor is a hex color string that has passed validation. The zero value
// is useless; values come from Parse or Encode only, so holding a HexColor
// is proof the string matched the hex grammar.
type HexColor struct {
	raw string
}

// InvalidHexColorError reports a string that failed hex validation.
type InvalidHexColorError struct {
	Input string
}

func (e *InvalidHexColorError) Error() string {
	return fmt.Sprintf("'%s' is not a valid hex color", e.Input)
}

// IsValid reports whether s matches the 3/4/6/8-digit hex-with-leading-#
// grammar.
func IsValid(s string) bool {
	return pattern.MatchString(s)
}

// Parse validates s and returns it as a HexColor, or an
// InvalidHexColorError if it does not match the grammar.
func Parse(s string) (HexColor, error) {
	if !IsValid(s) {
		return HexColor{}, &InvalidHexColorError{Input: s}
	}
	return HexColor{raw: s}, nil
}

func (h HexColor) String() string { return h.raw }

// RGBA decodes the hex digits into RGB channels plus alpha. Short forms
// double each digit first ("abc" becomes "aabbcc"). Eight expanded digits
// carry alpha in the low byte, scaled to [0, 1]; six digits decode with
// alpha 1.
func (h HexColor) RGBA() colorspace.RGBA {
	digits := strings.TrimPrefix(h.raw, "#")
	if len(digits) == 3 || len(digits) == 4 {
		var doubled strings.Builder
		for _, d := range digits {
			doubled.WriteRune(d)
			doubled.WriteRune(d)
		}
		digits = doubled.String()
	}

	v, _ := strconv.ParseUint(digits, 16, 64)
	if len(digits) == 8 {
		return colorspace.RGBA{
			R: int(v >> 24 & 0xff),
			G: int(v >> 16 & 0xff),
			B: int(v >> 8 & 0xff),
			A: colorspace.Alpha{V: float64(v&0xff) / 255, Valid: true},
		}
	}
	return colorspace.RGBA{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
		A: colorspace.Opaque,
	}
}

// Encode formats RGB channels as a 6-digit hex color.
func Encode(r, g, b int) HexColor {
	return HexColor{raw: fmt.Sprintf("#%02x%02x%02x", byte(r), byte(g), byte(b))}
}
