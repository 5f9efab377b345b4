package observer

import (
	"math"

	"github.com/acamarata/moon-sighting/internal/numkit"
)

// enuBasis holds the East, North, Up unit vectors of a topocentric
// frame at a given geodetic latitude/longitude, expressed in ECEF
// coordinates.
type enuBasis struct {
	East, North, Up numkit.Vec3
}

// buildENU constructs the local ENU basis at geodetic (latRad, lonRad),
// per spec.md §4.5.
func buildENU(latRad, lonRad float64) enuBasis {
	sinLat, cosLat := math.Sin(latRad), math.Cos(latRad)
	sinLon, cosLon := math.Sin(lonRad), math.Cos(lonRad)
	return enuBasis{
		East:  numkit.Vec3{X: -sinLon, Y: cosLon, Z: 0},
		North: numkit.Vec3{X: -sinLat * cosLon, Y: -sinLat * sinLon, Z: cosLat},
		Up:    numkit.Vec3{X: cosLat * cosLon, Y: cosLat * sinLon, Z: sinLat},
	}
}

// toENU projects an ECEF-frame vector (already relative to the
// observer, i.e. body-ECEF minus observer-ECEF) onto the local ENU
// basis.
func (b enuBasis) toENU(v numkit.Vec3) numkit.Vec3 {
	return numkit.Vec3{X: v.Dot(b.East), Y: v.Dot(b.North), Z: v.Dot(b.Up)}
}

// AzAlt is a topocentric azimuth/altitude pair, both in radians.
// Azimuth is measured clockwise from geographic north, [0, 2*pi).
type AzAlt struct {
	Azimuth  float64
	Altitude float64
}

// enuToAzAlt converts an ENU-frame vector to azimuth/altitude.
func enuToAzAlt(enu numkit.Vec3) AzAlt {
	az := math.Atan2(enu.X, enu.Y)
	if az < 0 {
		az += 2 * math.Pi
	}
	horiz := math.Hypot(enu.X, enu.Y)
	alt := math.Atan2(enu.Z, horiz)
	return AzAlt{Azimuth: az, Altitude: alt}
}
