package bodies

import "math"

// CrescentWidth returns the topocentric crescent width in arc-minutes
// (spec.md §4.6), from the Moon's topocentric distance r (km) and the
// topocentric arc-of-light arclDeg (degrees).
func CrescentWidth(rKM, arclDeg float64) float64 {
	sdArcmin := math.Atan(1737.4/rKM) * (180 / math.Pi) * 60
	return sdArcmin * (1 - math.Cos(arclDeg*math.Pi/180))
}

// BrightLimbAngle returns the position angle of the Moon's bright limb
// (spec.md §9, Meeus §48 Eq. 48.5 convention), given the equatorial
// right ascension/declination (radians) of the Sun and Moon.
func BrightLimbAngle(raSun, decSun, raMoon, decMoon float64) float64 {
	dRA := raSun - raMoon
	y := math.Cos(decSun) * math.Sin(dRA)
	x := math.Sin(decSun)*math.Cos(decMoon) - math.Cos(decSun)*math.Sin(decMoon)*math.Cos(dRA)
	return math.Atan2(y, x)
}
