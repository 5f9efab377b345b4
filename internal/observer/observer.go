package observer

import (
	"github.com/acamarata/moon-sighting/internal/frames"
	"github.com/acamarata/moon-sighting/internal/numkit"
	"github.com/acamarata/moon-sighting/internal/timescale"
)

// Site is a ground observer location and local weather, used both for
// refraction and (when height above ellipsoid matters) parallax.
// PressureMbar and TemperatureC are nil when the caller has no
// weather reading; a real reading of 0 mbar or 0 C is distinct from
// "unset" (a freezing observation site is not the same as a missing
// one), so unlike the geodetic fields these are pointers rather than
// zero-defaulted floats.
type Site struct {
	LatRad, LonRad, HeightM float64
	PressureMbar            *float64
	TemperatureC            *float64
}

// weather returns the site's pressure/temperature, substituting the
// spec's defaults (1013.25 mbar, 15 C) when the reading is absent.
func (s Site) weather() (pressureMbar, temperatureC float64) {
	pressureMbar, temperatureC = defaultPressureMbar, defaultTemperatureC
	if s.PressureMbar != nil {
		pressureMbar = *s.PressureMbar
	}
	if s.TemperatureC != nil {
		temperatureC = *s.TemperatureC
	}
	return
}

// TopocentricAzAlt carries both the airless (geometric) and apparent
// (refraction-corrected) az/alt for a body, since visibility geometry
// (spec.md §4.8) uses the airless altitude throughout except for the
// one reported apparent position.
type TopocentricAzAlt struct {
	Airless  AzAlt
	Apparent AzAlt
}

// metersToKM converts an ECEF position (meters, WGS84) to the
// kilometer units the GCRS body vectors from internal/bodies and
// internal/spk are expressed in (spec.md §4.5 step 2).
const metersToKM = 1.0 / 1000.0

// ObserverGCRSPosition returns the observer's own position, in km, in
// the GCRS frame at the given time scales, useful for computing a
// body's topocentric (parallax-corrected) direction rather than its
// geocentric one.
func ObserverGCRSPosition(s Site, ts timescale.TimeScales, pm frames.PolarMotion) numkit.Vec3 {
	ecef := GeodeticToECEF(s.LatRad, s.LonRad, s.HeightM)
	itrs := numkit.Vec3{X: ecef.X * metersToKM, Y: ecef.Y * metersToKM, Z: ecef.Z * metersToKM}
	return frames.ITRSToGCRS(itrs, ts, pm)
}

// TopocentricFromGCRS converts a body's GCRS position (km, already
// parallax-corrected relative to the observer if the caller wants
// topocentric precision, or geocentric if not) to azimuth/altitude at
// site s, applying Bennett refraction for the apparent value.
func TopocentricFromGCRS(bodyGCRS numkit.Vec3, s Site, ts timescale.TimeScales, pm frames.PolarMotion) TopocentricAzAlt {
	tr := frames.Build(ts, pm)
	itrs := tr.GCRSToITRS(bodyGCRS)

	obsECEF := GeodeticToECEF(s.LatRad, s.LonRad, s.HeightM)
	obsITRSkm := numkit.Vec3{X: obsECEF.X * metersToKM, Y: obsECEF.Y * metersToKM, Z: obsECEF.Z * metersToKM}
	rel := numkit.Vec3{X: itrs.X - obsITRSkm.X, Y: itrs.Y - obsITRSkm.Y, Z: itrs.Z - obsITRSkm.Z}

	basis := buildENU(s.LatRad, s.LonRad)
	enu := basis.toENU(rel)
	airless := enuToAzAlt(enu)

	pressure, temperature := s.weather()
	apparent := AzAlt{
		Azimuth:  airless.Azimuth,
		Altitude: applyRefraction(airless.Altitude, pressure, temperature),
	}
	return TopocentricAzAlt{Airless: airless, Apparent: apparent}
}
