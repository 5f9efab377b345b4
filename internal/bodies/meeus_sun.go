package bodies

import (
	"math"

	"github.com/acamarata/moon-sighting/internal/numkit"
)

// MeeusSun returns the Sun's apparent geocentric position in the GCRS
// frame (km), from the low-precision series of Meeus Ch. 25: mean
// longitude and anomaly, the equation of center, apparent longitude
// corrected for nutation, and rotation into equatorial coordinates by
// the (nutation-corrected) true obliquity. Accuracy target: better
// than 0.01 degree in longitude (spec.md §4.6).
func MeeusSun(jdTT float64) numkit.Vec3 {
	t := julianCenturiesTT(jdTT)

	l0 := math.Mod(280.46646+t*(36000.76983+t*0.0003032), 360)
	m := deg2rad(math.Mod(357.52911+t*(35999.05029-t*0.0001537), 360))
	e := 0.016708634 - t*(0.000042037+t*0.0000001267)

	c := (1.914602-t*(0.004817+t*0.000014))*math.Sin(m) +
		(0.019993-0.000101*t)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)

	trueLongDeg := l0 + c
	trueAnomRad := m + deg2rad(c)

	rAU := 1.000001018 * (1 - e*e) / (1 + e*math.Cos(trueAnomRad))

	omegaDeg := 125.04 - 1934.136*t
	apparentLonDeg := trueLongDeg - 0.00569 - 0.00478*math.Sin(deg2rad(omegaDeg))

	eps0Deg := meanObliquityDeg(t)
	epsCorrectedDeg := eps0Deg + 0.00256*math.Cos(deg2rad(omegaDeg))

	ra, dec := eclipticToEquatorial(deg2rad(apparentLonDeg), 0, deg2rad(epsCorrectedDeg))
	x, y, z := sphericalToCartesian(ra, dec, rAU*aukm)
	return numkit.Vec3{X: x, Y: y, Z: z}
}
