// Package visibility implements the Yallop and Odeh crescent
// visibility criteria and the full best-time geometry assembly
// (spec.md §4.8).
package visibility

import (
	"math"

	"github.com/acamarata/moon-sighting/internal/numkit"
)

// ArcvMin is the shared best-visibility polynomial (spec.md §4.8),
// degrees, given crescent width W in arc-minutes.
func ArcvMin(w float64) float64 {
	return 11.8371 - 6.3226*w + 0.7319*w*w - 0.1018*w*w*w
}

// ArcOfLight returns ARCL, the topocentric Sun-Moon angular
// separation in degrees, from topocentric (observer-relative)
// position vectors.
func ArcOfLight(moonTopo, sunTopo numkit.Vec3) (float64, error) {
	rad, err := numkit.AngleBetween(moonTopo, sunTopo)
	if err != nil {
		return 0, err
	}
	return rad * 180 / math.Pi, nil
}

// normalizeAzimuthDiff180 wraps a degree value into (-180, 180].
func normalizeAzimuthDiff180(deg float64) float64 {
	for deg <= -180 {
		deg += 360
	}
	for deg > 180 {
		deg -= 360
	}
	return deg
}
