// Package colorkit parses textual color notation into a canonical RGBA
// value. It recognizes named colors, hex (#RGB, #RGBA, #RRGGBB, #RRGGBBAA),
// rgb()/rgba(), and hsl()/hsla(); everything else is rejected.
package colorkit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/colorkit/colorkit/colorspace"
	"github.com/colorkit/colorkit/hexcolor"
	"github.com/colorkit/colorkit/names"
)

var (
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([\d.]*)\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*(?:,\s*([\d.]*)\s*)?\)$`)
)

// InvalidColorStringError reports an input that matched none of the
// recognized notations. Input is the caller's original string.
type InvalidColorStringError struct {
	Input string
}

func (e *InvalidColorStringError) Error() string {
	return fmt.Sprintf("'%s' is not a recognized color", e.Input)
}

// Parse converts a color string to its canonical RGBA value. The input is
// trimmed and lowercased, then tried against each notation in order: named
// color, hex, rgb[a](), hsl[a](). The first matching rule wins; if none
// match, Parse returns an InvalidColorStringError.
//
// Alpha defaults differ between notations: hex and rgb() decode to alpha 1
// when no alpha component is present, while hsl() leaves alpha unset.
func Parse(s string) (colorspace.RGBA, error) {
	in := strings.ToLower(strings.TrimSpace(s))

	if hex, ok := names.Get(in); ok {
		h, err := hexcolor.Parse(hex)
		if err != nil {
			return colorspace.RGBA{}, err
		}
		return h.RGBA(), nil
	}

	if hexcolor.IsValid(in) {
		h, err := hexcolor.Parse(in)
		if err != nil {
			return colorspace.RGBA{}, err
		}
		return h.RGBA(), nil
	}

	if m := rgbPattern.FindStringSubmatch(in); m != nil {
		return parseRGB(m, s)
	}

	if m := hslPattern.FindStringSubmatch(in); m != nil {
		return parseHSL(m, s)
	}

	return colorspace.RGBA{}, &InvalidColorStringError{Input: s}
}

func parseRGB(m []string, original string) (colorspace.RGBA, error) {
	r, err := strconv.Atoi(m[1])
	if err != nil {
		return colorspace.RGBA{}, &InvalidColorStringError{Input: original}
	}
	g, err := strconv.Atoi(m[2])
	if err != nil {
		return colorspace.RGBA{}, &InvalidColorStringError{Input: original}
	}
	b, err := strconv.Atoi(m[3])
	if err != nil {
		return colorspace.RGBA{}, &InvalidColorStringError{Input: original}
	}

	a := colorspace.Opaque
	if m[4] != "" {
		v, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return colorspace.RGBA{}, &InvalidColorStringError{Input: original}
		}
		a = colorspace.Alpha{V: v, Valid: true}
	}

	return colorspace.RGBA{R: r, G: g, B: b, A: a}, nil
}

func parseHSL(m []string, original string) (colorspace.RGBA, error) {
	h, err := strconv.Atoi(m[1])
	if err != nil {
		return colorspace.RGBA{}, &InvalidColorStringError{Input: original}
	}
	sat, err := strconv.Atoi(m[2])
	if err != nil {
		return colorspace.RGBA{}, &InvalidColorStringError{Input: original}
	}
	l, err := strconv.Atoi(m[3])
	if err != nil {
		return colorspace.RGBA{}, &InvalidColorStringError{Input: original}
	}

	// unlike the rgb path, a missing alpha stays unset here
	var a colorspace.Alpha
	if m[4] != "" {
		v, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return colorspace.RGBA{}, &InvalidColorStringError{Input: original}
		}
		a = colorspace.Alpha{V: v, Valid: true}
	}

	return colorspace.HSLToRGB(float64(h), float64(sat)/100, float64(l)/100, a), nil
}
