package timescale

import "math"

// DeltaT estimates TT-UT1 in seconds for the given UTC-ish year (as a
// decimal year, y = year + (month-0.5)/12) using the piecewise
// polynomial approximation published by Espenak & Meeus. The
// coefficients below are reproduced exactly from the published table;
// they are a contract with external references, not a derivation.
func DeltaT(year float64) float64 {
	y := year
	switch {
	case y < -500:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	case y < 500:
		u := y / 100
		return 10583.6 - 1014.41*u + 33.78311*u*u - 5.952053*u*u*u -
			0.1798452*u*u*u*u + 0.022174192*u*u*u*u*u + 0.0090316521*u*u*u*u*u*u
	case y < 1600:
		u := (y - 1000) / 100
		return 1574.2 - 556.01*u + 71.23472*u*u + 0.319781*u*u*u -
			0.8503463*u*u*u*u - 0.005050998*u*u*u*u*u + 0.0083572073*u*u*u*u*u*u
	case y < 1700:
		t := y - 1600
		return 120 - 0.9808*t - 0.01532*t*t + t*t*t/7129
	case y < 1800:
		t := y - 1700
		return 8.83 + 0.1603*t - 0.0059285*t*t + 0.00013336*t*t*t - t*t*t*t/1174000
	case y < 1860:
		t := y - 1800
		return 13.72 - 0.332447*t + 0.0068612*t*t + 0.0041116*t*t*t -
			0.00037436*t*t*t*t + 0.0000121272*t*t*t*t*t -
			0.0000001699*t*t*t*t*t*t + 0.000000000875*t*t*t*t*t*t*t
	case y < 1900:
		t := y - 1860
		return 7.62 + 0.5737*t - 0.251754*t*t + 0.01680668*t*t*t -
			0.0004473624*t*t*t*t + t*t*t*t*t/233174
	case y < 1920:
		t := y - 1900
		return -2.79 + 1.494119*t - 0.0598939*t*t + 0.0061966*t*t*t - 0.000197*t*t*t*t
	case y < 1941:
		t := y - 1920
		return 21.20 + 0.84493*t - 0.076100*t*t + 0.0020936*t*t*t
	case y < 1961:
		t := y - 1950
		return 29.07 + 0.407*t - t*t/233 + t*t*t/2547
	case y < 1986:
		t := y - 1975
		return 45.45 + 1.067*t - t*t/260 - t*t*t/718
	case y < 2005:
		t := y - 2000
		return 63.86 + 0.3345*t - 0.060374*t*t + 0.0017275*t*t*t +
			0.000651814*t*t*t*t + 0.00002373599*t*t*t*t*t
	case y < 2050:
		t := y - 2000
		return 62.92 + 0.32217*t + 0.005589*t*t
	case y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}

// DecimalYear converts a TT Julian Date to a decimal year suitable for
// DeltaT's piecewise branches.
func DecimalYear(jdTT float64) float64 {
	return 2000.0 + (jdTT-J2000)/365.25
}

// tdbMinusTT returns TDB-TT in seconds per spec.md §4.2:
//
//	0.001658*sin(g) + 0.000014*sin(2g)
//	g = (357.53 + 0.9856003*(jdTT-J2000)) degrees
//
// This term is sub-millisecond but is applied unconditionally to match
// SPICE's own TDB computation exactly.
func tdbMinusTT(jdTT float64) float64 {
	gDeg := 357.53 + 0.9856003*(jdTT-J2000)
	g := gDeg * math.Pi / 180
	return 0.001658*math.Sin(g) + 0.000014*math.Sin(2*g)
}
