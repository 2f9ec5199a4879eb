package colorspace

import "math"

// D65 reference white.
const (
	refX = 95.047
	refY = 100.0
	refZ = 108.883
)

// HSLToRGB converts hue in degrees and saturation/lightness fractions to
// RGB channels using the standard chroma/hue-sector algorithm. Hues outside
// [0, 360) match no sector and fall through to the achromatic floor; they
// are deliberately not wrapped. Alpha passes through unchanged.
func HSLToRGB(h, s, l float64, a Alpha) RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h >= 0 && h < 60:
		r, g, b = c, x, 0
	case h >= 60 && h < 120:
		r, g, b = x, c, 0
	case h >= 120 && h < 180:
		r, g, b = 0, c, x
	case h >= 180 && h < 240:
		r, g, b = 0, x, c
	case h >= 240 && h < 300:
		r, g, b = x, 0, c
	case h >= 300 && h < 360:
		r, g, b = c, 0, x
	}

	return RGBA{
		R: int(math.Round((r + m) * 255)),
		G: int(math.Round((g + m) * 255)),
		B: int(math.Round((b + m) * 255)),
		A: a,
	}
}

// RGBToXYZ converts 8-bit RGB channels to D65-scaled XYZ: each channel is
// normalized to [0, 1], inverse sRGB gamma companding is applied, then the
// sRGB-to-XYZ matrix, with the result scaled by 100.
func RGBToXYZ(r, g, b int) XYZ {
	rl := srgbToLinear(float64(r) / 255)
	gl := srgbToLinear(float64(g) / 255)
	bl := srgbToLinear(float64(b) / 255)

	return XYZ{
		X: (0.4124564*rl + 0.3575761*gl + 0.1804375*bl) * 100,
		Y: (0.2126729*rl + 0.7151522*gl + 0.0721750*bl) * 100,
		Z: (0.0193339*rl + 0.1191920*gl + 0.9503041*bl) * 100,
	}
}

// XYZToLab converts D65-scaled XYZ to L*a*b*: each axis is divided by its
// reference white, run through the CIE nonlinearity, and combined.
func XYZToLab(x, y, z float64) Lab {
	fx := labCompress(x / refX)
	fy := labCompress(y / refY)
	fz := labCompress(z / refZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// RGBToHSL converts 8-bit RGB channels to hue/saturation/lightness. Alpha
// passes through unchanged.
func RGBToHSL(r, g, b int, a Alpha) HSLA {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l := (max + min) / 2
	d := max - min

	var h, s float64
	if d != 0 {
		s = d / (1 - math.Abs(2*l-1))
		switch max {
		case rf:
			h = 60 * math.Mod((gf-bf)/d, 6)
		case gf:
			h = 60 * ((bf-rf)/d + 2)
		case bf:
			h = 60 * ((rf-gf)/d + 4)
		}
		if h < 0 {
			h += 360
		}
	}

	return HSLA{H: h, S: s, L: l, A: a}
}

// RGBToHSV converts 8-bit RGB channels to hue/saturation/value. Alpha
// passes through unchanged.
func RGBToHSV(r, g, b int, a Alpha) HSVA {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	d := max - min

	var h, s float64
	if d != 0 {
		s = d / max
		switch max {
		case rf:
			h = 60 * math.Mod((gf-bf)/d, 6)
		case gf:
			h = 60 * ((bf-rf)/d + 2)
		case bf:
			h = 60 * ((rf-gf)/d + 4)
		}
		if h < 0 {
			h += 360
		}
	}

	return HSVA{H: h, S: s, V: max, A: a}
}

// inverse sRGB gamma companding, branch at 0.04045
func srgbToLinear(v float64) float64 {
	if v < 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// CIE nonlinearity, branch at 0.008856
func labCompress(t float64) float64 {
	if t < 0.008856 {
		return 7.787*t + 16.0/116.0
	}
	return math.Cbrt(t)
}
