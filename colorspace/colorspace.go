// Package colorspace holds the numeric color representations and the
// conversions between them: RGB, HSL, HSV, CIE XYZ, and CIE L*a*b*.
package colorspace

// Alpha is an optional opacity fraction in [0, 1]. Valid reports whether
// the source notation carried an alpha component at all.
type Alpha struct {
	V     float64
	Valid bool
}

// Opaque is the alpha a notation without an explicit component defaults to
// on the hex and rgb decode paths.
var Opaque = Alpha{V: 1, Valid: true}

// RGBA represents a color as red/green/blue channels in [0, 255] plus an
// optional alpha. It is the canonical intermediate form every parse path
// normalizes to.
type RGBA struct {
	R, G, B int
	A       Alpha
}

// HSLA represents a color as hue in degrees [0, 360), saturation and
// lightness fractions in [0, 1], plus an optional alpha.
type HSLA struct {
	H, S, L float64
	A       Alpha
}

// HSVA represents a color as hue in degrees [0, 360), saturation and value
// fractions in [0, 1], plus an optional alpha.
type HSVA struct {
	H, S, V float64
	A       Alpha
}

// XYZ represents a color as CIE 1931 tristimulus values scaled to the D65
// illuminant, roughly 0-100 per axis for the sRGB gamut.
type XYZ struct {
	X, Y, Z float64
}

// Lab represents a color in CIE L*a*b*: L in [0, 100], a and b signed.
type Lab struct {
	L, A, B float64
}

// XYZ returns the D65-scaled tristimulus view of c.
func (c RGBA) XYZ() XYZ { return RGBToXYZ(c.R, c.G, c.B) }

// Lab returns the L*a*b* view of c.
func (c RGBA) Lab() Lab {
	x := RGBToXYZ(c.R, c.G, c.B)
	return XYZToLab(x.X, x.Y, x.Z)
}

// HSL returns the hue/saturation/lightness view of c. Alpha carries over
// unchanged.
func (c RGBA) HSL() HSLA { return RGBToHSL(c.R, c.G, c.B, c.A) }

// HSV returns the hue/saturation/value view of c. Alpha carries over
// unchanged.
func (c RGBA) HSV() HSVA { return RGBToHSV(c.R, c.G, c.B, c.A) }
