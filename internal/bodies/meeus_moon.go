package bodies

import (
	"math"

	"github.com/acamarata/moon-sighting/internal/numkit"
)

// moonLRTerm is one row of the combined longitude/distance periodic
// term table (Meeus Table 47.A). The four leading integers are the
// multipliers of D, M, M', F; coeffL is in units of 1e-6 degree,
// coeffR in units of 1e-3 km. Rows whose |mM| is 1 or 2 are scaled by
// E or E^2 respectively (the Earth-orbit eccentricity correction).
type moonLRTerm struct {
	d, m, mp, f int
	coeffL      float64
	coeffR      float64
}

// The 30 dominant terms of Meeus Table 47.A, reproduced from the
// published table; this is the reduced main-term subset the spec
// calls for rather than the full ELP2000-82B series.
var moonLRTerms = []moonLRTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 79661},
	{4, 0, -1, 0, 10675, -34782},
	{0, 0, 3, 0, 10034, -23210},
	{4, 0, -2, 0, 8548, -21636},
	{2, 1, -1, 0, -7888, 24208},
	{2, 1, 0, 0, -6766, 30824},
	{1, 0, -1, 0, -5163, -8379},
	{1, 1, 0, 0, 4987, -16675},
	{2, -1, 1, 0, 4036, -12831},
	{2, 0, 2, 0, 3994, -10445},
	{4, 0, 0, 0, 3861, -11650},
	{2, 0, -3, 0, 3665, 14403},
	{0, 1, -2, 0, -2689, -7003},
	{2, 0, -1, 2, -2602, 0},
	{2, -1, -2, 0, 2390, 10056},
}

// moonBTerm is one row of the latitude periodic term table (Meeus
// Table 47.B). coeffB is in units of 1e-6 degree.
type moonBTerm struct {
	d, m, mp, f int
	coeffB      float64
}

// The 20 dominant terms of Meeus Table 47.B.
var moonBTerms = []moonBTerm{
	{0, 0, 0, 1, 5128122},
	{0, 0, 1, 1, 280602},
	{0, 0, 1, -1, 277693},
	{2, 0, 0, -1, 173237},
	{2, 0, -1, 1, 55413},
	{2, 0, -1, -1, 46271},
	{2, 0, 0, 1, 32573},
	{0, 0, 2, 1, 17198},
	{2, 0, 1, -1, 9266},
	{0, 0, 2, -1, 8822},
	{2, -1, 0, -1, 8216},
	{2, 0, -2, -1, 4324},
	{2, 0, 1, 1, 4200},
	{2, 1, 0, -1, -3359},
	{2, -1, -1, 1, 2463},
	{2, -1, 0, 1, 2211},
	{2, -1, -1, -1, 2065},
	{0, 1, -1, -1, -1870},
	{4, 0, -1, -1, 1828},
	{0, 1, 0, 1, -1794},
}

// eccentricityFactor returns the multiplier applied to a term whose
// argument contains the Sun's mean anomaly M with multiplier mM (the
// eccentricity-of-Earth's-orbit correction E^|mM|, spec.md §4.6).
func eccentricityFactor(e float64, mM int) float64 {
	switch mM {
	case 1, -1:
		return e
	case 2, -2:
		return e * e
	default:
		return 1
	}
}

// MeeusMoon returns the Moon's geocentric position in the GCRS frame
// (km), from the low-precision series of Meeus Ch. 47. Accuracy
// target: better than 0.3 degree in longitude, 0.2 degree in latitude
// (spec.md §4.6).
func MeeusMoon(jdTT float64) numkit.Vec3 {
	t := julianCenturiesTT(jdTT)

	lp := math.Mod(218.3164477+t*(481267.88123421+t*(-0.0015786+t*(1.0/538841-t/65194000))), 360)
	d := math.Mod(297.8501921+t*(445267.1114034+t*(-0.0018819+t*(1.0/545868-t/113065000))), 360)
	m := math.Mod(357.5291092+t*(35999.0502909+t*(-0.0001536+t/24490000)), 360)
	mp := math.Mod(134.9633964+t*(477198.8675055+t*(0.0087414+t*(1.0/69699-t/14712000))), 360)
	f := math.Mod(93.2720950+t*(483202.0175233+t*(-0.0036539+t*(-1.0/3526000+t/863310000))), 360)

	e := 1 - 0.002516*t - 0.0000074*t*t

	var sigmaL, sigmaR float64
	for _, term := range moonLRTerms {
		arg := deg2rad(float64(term.d)*d + float64(term.m)*m + float64(term.mp)*mp + float64(term.f)*f)
		ecc := eccentricityFactor(e, term.m)
		sigmaL += term.coeffL * ecc * math.Sin(arg)
		sigmaR += term.coeffR * ecc * math.Cos(arg)
	}

	var sigmaB float64
	for _, term := range moonBTerms {
		arg := deg2rad(float64(term.d)*d + float64(term.m)*m + float64(term.mp)*mp + float64(term.f)*f)
		ecc := eccentricityFactor(e, term.m)
		sigmaB += term.coeffB * ecc * math.Sin(arg)
	}

	a1 := deg2rad(math.Mod(119.75+131.849*t, 360))
	a2 := deg2rad(math.Mod(53.09+479264.290*t, 360))
	a3 := deg2rad(math.Mod(313.45+481266.484*t, 360))
	lpRad := deg2rad(lp)
	fRad := deg2rad(f)
	mpRad := deg2rad(mp)

	sigmaL += 3958*math.Sin(a1) + 1962*math.Sin(lpRad-fRad) + 318*math.Sin(a2)
	sigmaB += -2235*math.Sin(lpRad) + 382*math.Sin(a3) + 175*math.Sin(a1-fRad) +
		175*math.Sin(a1+fRad) + 127*math.Sin(lpRad-mpRad) - 115*math.Sin(lpRad+mpRad)

	lonDeg := lp + sigmaL/1e6
	latDeg := sigmaB / 1e6
	distKM := 385000.56 + sigmaR/1000

	eps0Deg := meanObliquityDeg(t)
	ra, dec := eclipticToEquatorial(deg2rad(lonDeg), deg2rad(latDeg), deg2rad(eps0Deg))
	x, y, z := sphericalToCartesian(ra, dec, distKM)
	return numkit.Vec3{X: x, Y: y, Z: z}
}
