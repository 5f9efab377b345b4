package bodies

import (
	"math"

	"github.com/acamarata/moon-sighting/internal/numkit"
)

// Illumination holds the Moon's phase geometry relative to the Sun,
// both computed from geocentric vectors (spec.md §4.6).
type Illumination struct {
	ElongationRad float64
	PhaseAngleRad float64
	Fraction      float64 // illuminated fraction k, in [0,1]
	IsWaxing      bool
}

// ComputeIllumination derives elongation, phase angle, illuminated
// fraction, and waxing/waning from Moon and Sun geocentric vectors.
func ComputeIllumination(moonGCRS, sunGCRS numkit.Vec3) (Illumination, error) {
	elongation, err := numkit.AngleBetween(moonGCRS, sunGCRS)
	if err != nil {
		return Illumination{}, err
	}

	toEarth := moonGCRS.Scale(-1)
	toSun := sunGCRS.Sub(moonGCRS)
	phaseAngle, err := numkit.AngleBetween(toEarth, toSun)
	if err != nil {
		return Illumination{}, err
	}

	fraction := (1 + math.Cos(phaseAngle)) / 2
	isWaxing := sunGCRS.Cross(moonGCRS).Z > 0

	return Illumination{
		ElongationRad: elongation,
		PhaseAngleRad: phaseAngle,
		Fraction:      fraction,
		IsWaxing:      isWaxing,
	}, nil
}
