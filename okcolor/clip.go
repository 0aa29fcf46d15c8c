package okcolor

import "math"

const chromaEps = 0.00001

// clipAdaptive projects an out-of-gamut Lab color toward a lightness target
// that adapts between the color's own lightness and 0.5, keeping hue fixed.
func (lc Lab) clipAdaptive(alpha float64) Lab {
	c := math.Max(chromaEps, math.Sqrt(lc.A*lc.A+lc.B*lc.B))
	a := lc.A / c
	b := lc.B / c

	ld := lc.L - 0.5
	e1 := 0.5 + math.Abs(ld) + alpha*c
	l0 := 0.5 * (1 + sgn(ld)*(e1-math.Sqrt(e1*e1-2*math.Abs(ld))))

	t := findGamutIntersection(a, b, lc.L, c, l0)
	return Lab{
		L: l0*(1-t) + t*lc.L,
		A: t * c * a,
		B: t * c * b,
	}
}

func sgn(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// findGamutIntersection intersects the segment from (L0, 0) to (L1, C1) with
// the sRGB gamut boundary for the hue (a, b), where a^2 + b^2 == 1. Returns
// the parameter t of the intersection.
func findGamutIntersection(a, b, l1, c1, l0 float64) float64 {
	lCusp, cCusp := findCusp(a, b)

	if (l1-l0)*cCusp-(lCusp-l0)*c1 <= 0 {
		// lower half of the gamut triangle
		return cCusp * l0 / (c1*lCusp + cCusp*(l0-l1))
	}

	// upper half: intersect with the triangle edge, then refine with one
	// step of Halley's method against the true boundary
	t := cCusp * (l0 - 1) / (c1*(lCusp-1) + cCusp*(l0-l1))

	dL := l1 - l0
	dC := c1

	kL := +0.3963377774*a + 0.2158037573*b
	kM := -0.1055613458*a - 0.0638541728*b
	kS := -0.0894841775*a - 1.2914855480*b

	lDt := dL + dC*kL
	mDt := dL + dC*kM
	sDt := dL + dC*kS

	ll := l0*(1-t) + t*l1
	cc := t * c1

	l_ := ll + cc*kL
	m_ := ll + cc*kM
	s_ := ll + cc*kS

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	ldt := 3 * lDt * l_ * l_
	mdt := 3 * mDt * m_ * m_
	sdt := 3 * sDt * s_ * s_

	ldt2 := 6 * lDt * lDt * l_
	mdt2 := 6 * mDt * mDt * m_
	sdt2 := 6 * sDt * sDt * s_

	step := func(w0, w1, w2 float64) float64 {
		f := w0*l + w1*m + w2*s - 1
		f1 := w0*ldt + w1*mdt + w2*sdt
		f2 := w0*ldt2 + w1*mdt2 + w2*sdt2

		u := f1 / (f1*f1 - 0.5*f*f2)
		if u < 0 {
			return math.MaxFloat64
		}
		return -f * u
	}

	tR := step(+4.0767416621, -3.3077115913, +0.2309699292)
	tG := step(-1.2684380046, +2.6097574011, -0.3413193965)
	tB := step(-0.0041960863, -0.7034186147, +1.7076147010)

	return t + min(tR, tG, tB)
}

// findCusp locates the point of maximum chroma on the gamut boundary for the
// hue (a, b), where a^2 + b^2 == 1.
func findCusp(a, b float64) (lCusp, cCusp float64) {
	sCusp := maxSaturation(a, b)

	r, g, bb := Lab{L: 1, A: sCusp * a, B: sCusp * b}.linear()
	lCusp = math.Cbrt(1 / math.Max(math.Max(r, g), bb))
	cCusp = lCusp * sCusp
	return lCusp, cCusp
}

// maxSaturation finds the largest S = C/L that stays inside sRGB for the hue
// (a, b): a polynomial estimate of which channel hits zero first, refined
// with one Halley step.
func maxSaturation(a, b float64) float64 {
	var k0, k1, k2, k3, k4, wl, wm, ws float64
	switch {
	case -1.88170328*a-0.80936493*b > 1: // red goes below zero first
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1: // green
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default: // blue
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}

	sat := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	kL := +0.3963377774*a + 0.2158037573*b
	kM := -0.1055613458*a - 0.0638541728*b
	kS := -0.0894841775*a - 1.2914855480*b

	l_ := 1 + sat*kL
	m_ := 1 + sat*kM
	s_ := 1 + sat*kS

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	lDS := 3 * kL * l_ * l_
	mDS := 3 * kM * m_ * m_
	sDS := 3 * kS * s_ * s_

	lDS2 := 6 * kL * kL * l_
	mDS2 := 6 * kM * kM * m_
	sDS2 := 6 * kS * kS * s_

	f := wl*l + wm*m + ws*s
	f1 := wl*lDS + wm*mDS + ws*sDS
	f2 := wl*lDS2 + wm*mDS2 + ws*sDS2

	return sat - f*f1/(f1*f1-0.5*f*f2)
}
