// Package okcolor converts between sRGB and OKLab and blends colors
// perceptually, clipping out-of-gamut results back into sRGB.
//
// based on:
// https://bottosson.github.io/posts/oklab/
// https://bottosson.github.io/posts/gamutclipping/
package okcolor

import (
	"image/color"
	"math"
)

// Lab is a color in OKLab coordinates.
type Lab struct {
	L float64 // perceived lightness
	A float64 // green-red axis
	B float64 // blue-yellow axis
}

// FromRGBA converts an 8-bit sRGB color to OKLab. Alpha is ignored.
func FromRGBA(c color.RGBA) Lab {
	r := toLinear(float64(c.R) / 255)
	g := toLinear(float64(c.G) / 255)
	b := toLinear(float64(c.B) / 255)

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return Lab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// gamutEps tolerates round-trip float error so in-gamut colors never take
// the clipping path.
const gamutEps = 1e-6

// RGBA8 converts back to 8-bit sRGB, clipping into gamut when needed.
func (lc Lab) RGBA8() color.RGBA {
	r, g, b := lc.linear()
	if r < -gamutEps || r > 1+gamutEps || g < -gamutEps || g > 1+gamutEps || b < -gamutEps || b > 1+gamutEps {
		r, g, b = lc.clipAdaptive(0.05).linear()
	}
	r = clamp01(r)
	g = clamp01(g)
	b = clamp01(b)
	return color.RGBA{
		R: uint8(math.Round(fromLinear(r) * 255)),
		G: uint8(math.Round(fromLinear(g) * 255)),
		B: uint8(math.Round(fromLinear(b) * 255)),
		A: 0xFF,
	}
}

// Blend interpolates between two sRGB colors through OKLab. t is clamped to
// [0, 1]; alpha interpolates linearly.
func Blend(c0, c1 color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	l0, l1 := FromRGBA(c0), FromRGBA(c1)

	out := Lab{
		L: l0.L + t*(l1.L-l0.L),
		A: l0.A + t*(l1.A-l0.A),
		B: l0.B + t*(l1.B-l0.B),
	}.RGBA8()
	out.A = uint8(math.Round(float64(c0.A) + t*(float64(c1.A)-float64(c0.A))))
	return out
}

func (lc Lab) linear() (r, g, b float64) {
	l := lc.L + 0.3963377774*lc.A + 0.2158037573*lc.B
	l = l * l * l
	m := lc.L - 0.1055613458*lc.A - 0.0638541728*lc.B
	m = m * m * m
	s := lc.L - 0.0894841775*lc.A - 1.2914855480*lc.B
	s = s * s * s

	r = +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, b
}

func toLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

func fromLinear(x float64) float64 {
	if x >= 0.0031308 {
		return math.Pow(x, 1.0/2.4)*1.055 - 0.055
	}
	return x * 12.92
}

func clamp01(x float64) float64 {
	return math.Min(math.Max(x, 0), 1)
}
