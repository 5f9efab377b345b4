package crescent

import (
	"math"
	"time"

	"github.com/acamarata/moon-sighting/internal/bodies"
	"github.com/acamarata/moon-sighting/internal/frames"
	"github.com/acamarata/moon-sighting/internal/numkit"
	"github.com/acamarata/moon-sighting/internal/observer"
	"github.com/acamarata/moon-sighting/internal/timescale"
)

// equatorialOf returns the right ascension and declination (radians)
// of a GCRS Cartesian vector.
func equatorialOf(v numkit.Vec3) (raRad, decRad float64) {
	raRad = math.Atan2(v.Y, v.X)
	if raRad < 0 {
		raRad += 2 * math.Pi
	}
	decRad = math.Asin(v.Z / v.Norm())
	return
}

// MoonPhaseResult reports the Moon's illuminated fraction and the
// times of the nearest new and full moons (Meeus, kernel-free); those
// times are the TT Julian dates passed through timescale.JDToDate.
type MoonPhaseResult struct {
	Fraction        float64
	IsWaxing        bool
	NearestNewMoon  time.Time
	NearestFullMoon time.Time
}

// MoonPosition is a topocentric az/alt query result plus the Moon's
// geocentric distance.
type MoonPosition struct {
	AzAlt      observer.AzAlt
	DistanceKM float64
}

// MoonIlluminationResult mirrors bodies.Illumination plus the
// bright-limb position angle.
type MoonIlluminationResult struct {
	Fraction        float64
	PhaseAngleRad   float64
	ElongationRad   float64
	IsWaxing        bool
	BrightLimbAngle float64
}

func resolveDate(date *time.Time) time.Time {
	if date != nil {
		return *date
	}
	return time.Now().UTC()
}

// MoonPhase never fails (spec.md §7): it always returns a well-formed
// result computed purely from C2+C6's Meeus path.
func MoonPhase(date *time.Time) (MoonPhaseResult, error) {
	when := resolveDate(date)
	table := timescale.NewLeapSecondTable()
	ts := timescale.Compute(when, table, timescale.Overrides{})

	moonGCRS := bodies.MeeusMoon(ts.JDTT)
	sunGCRS := bodies.MeeusSun(ts.JDTT)
	illum, err := bodies.ComputeIllumination(moonGCRS, sunGCRS)
	if err != nil {
		return MoonPhaseResult{}, err
	}

	return MoonPhaseResult{
		Fraction:        illum.Fraction,
		IsWaxing:        illum.IsWaxing,
		NearestNewMoon:  timescale.JDToDate(bodies.NearestNewMoon(ts.JDTT)),
		NearestFullMoon: timescale.JDToDate(bodies.NearestFullMoon(ts.JDTT)),
	}, nil
}

// MoonPositionAt returns the Moon's topocentric position from the Meeus
// path (spec.md §4.9's "current topocentric position (Meeus +
// Observer)").
func MoonPositionAt(date *time.Time, latDeg, lonDeg, elevM float64) MoonPosition {
	when := resolveDate(date)
	table := timescale.NewLeapSecondTable()
	ts := timescale.Compute(when, table, timescale.Overrides{})

	moonGCRS := bodies.MeeusMoon(ts.JDTT)
	site := ObserverOptions{LatDeg: latDeg, LonDeg: lonDeg, ElevM: elevM}.toSite()
	azAlt := observer.TopocentricFromGCRS(moonGCRS, site, ts, frames.PolarMotion{})

	return MoonPosition{AzAlt: azAlt.Apparent, DistanceKM: moonGCRS.Norm()}
}

// MoonIllumination returns illumination plus bright-limb angle from
// the Meeus path.
func MoonIllumination(date *time.Time) (MoonIlluminationResult, error) {
	when := resolveDate(date)
	table := timescale.NewLeapSecondTable()
	ts := timescale.Compute(when, table, timescale.Overrides{})

	moonGCRS := bodies.MeeusMoon(ts.JDTT)
	sunGCRS := bodies.MeeusSun(ts.JDTT)
	illum, err := bodies.ComputeIllumination(moonGCRS, sunGCRS)
	if err != nil {
		return MoonIlluminationResult{}, err
	}

	raSun, decSun := equatorialOf(sunGCRS)
	raMoon, decMoon := equatorialOf(moonGCRS)
	angle := bodies.BrightLimbAngle(raSun, decSun, raMoon, decMoon)

	return MoonIlluminationResult{
		Fraction:        illum.Fraction,
		PhaseAngleRad:   illum.PhaseAngleRad,
		ElongationRad:   illum.ElongationRad,
		IsWaxing:        illum.IsWaxing,
		BrightLimbAngle: angle,
	}, nil
}
