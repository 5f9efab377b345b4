package frames

import "math"

const arcsecToRad = math.Pi / (180 * 3600)

func normAngleRad(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// delaunayArguments returns the five fundamental arguments (l, l', F,
// D, Omega) in radians for Julian century T, via the IAU 2003
// polynomials (spec.md §4.4). Coefficients are arcseconds; T is in
// Julian centuries from J2000 TT.
func delaunayArguments(t float64) (l, lp, f, d, om float64) {
	poly := func(a0, a1, a2, a3, a4 float64) float64 {
		return a0 + t*(a1+t*(a2+t*(a3+t*a4)))
	}
	l = poly(485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470) * arcsecToRad
	lp = poly(1287104.79305, 129596581.0481, -0.5532, 0.000136, -0.00001149) * arcsecToRad
	f = poly(335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417) * arcsecToRad
	d = poly(1072260.70369, 1602961601.2090, -6.3706, 0.006593, -0.00003169) * arcsecToRad
	om = poly(450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939) * arcsecToRad

	l = normAngleRad(l)
	lp = normAngleRad(lp)
	f = normAngleRad(f)
	d = normAngleRad(d)
	om = normAngleRad(om)
	return
}

// meanObliquity returns the IAU 2006 mean obliquity of the ecliptic in
// radians at Julian century T.
func meanObliquity(t float64) float64 {
	arcsec := 84381.406 + t*(-46.836769+t*(-0.0001831+t*(0.00200340+t*(-0.000000576+t*(-0.0000000434)))))
	return arcsec * arcsecToRad
}

// precessionXY returns the IAU 2006 precession polynomials for the CIP
// X and Y coordinates, in radians, at Julian century T. These are the
// "X_prec"/"Y_prec" terms of spec.md §4.4's X = X_prec + dpsi*sin(eps0).
func precessionXY(t float64) (xPrec, yPrec float64) {
	xArcsec := -0.016617 + t*(2004.191898+t*(-0.4297829+t*(-0.19861834+t*(0.000007578+t*0.0000059285))))
	yArcsec := -0.006951 + t*(-0.025896+t*(-22.4072747+t*(0.00190059+t*(0.001112526+t*0.0000001358))))
	return xArcsec * arcsecToRad, yArcsec * arcsecToRad
}

// CIPCoordinates holds the celestial intermediate pole coordinates and
// the CIO locator, all in radians.
type CIPCoordinates struct {
	X, Y, S float64
}

// ComputeCIP evaluates X, Y, s (spec.md §4.4) at Julian century T from
// J2000 TT.
func ComputeCIP(tCenturies float64) CIPCoordinates {
	l, lp, f, d, om := delaunayArguments(tCenturies)
	dpsi, deps := nutationIAU2000B(l, lp, f, d, om, tCenturies)
	eps0 := meanObliquity(tCenturies)
	xPrec, yPrec := precessionXY(tCenturies)

	x := xPrec + dpsi*math.Sin(eps0)
	y := yPrec - deps

	sPolyArcsec := -0.041775 * tCenturies
	s := -x*y/2 + sPolyArcsec*arcsecToRad

	return CIPCoordinates{X: x, Y: y, S: s}
}
