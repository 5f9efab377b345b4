package frames

import (
	"math"

	"github.com/acamarata/moon-sighting/internal/numkit"
)

// ComputeERA returns the Earth Rotation Angle in radians for a UT1
// Julian date, per spec.md §4.4:
//
//	Du = jdUT1 - 2451545.0
//	ERA = 2*pi * frac(0.7790572732640 + 1.00273781191135448*Du)
func ComputeERA(jdUT1 float64) float64 {
	du := jdUT1 - 2451545.0
	frac := 0.7790572732640 + 1.00273781191135448*du
	frac -= math.Floor(frac)
	return 2 * math.Pi * frac
}

// celestialMotionMatrix builds Q = Rz(-(e+s)) * Ry(d) * Rz(e) from the
// CIP coordinates, per spec.md §4.4:
//
//	e = atan2(Y, X)   (0 when X^2+Y^2 == 0)
//	d = asin(sqrt(X^2+Y^2))
func celestialMotionMatrix(cip CIPCoordinates) numkit.Mat3 {
	r2 := cip.X*cip.X + cip.Y*cip.Y
	var e float64
	if r2 != 0 {
		e = math.Atan2(cip.Y, cip.X)
	}
	d := math.Asin(math.Min(1, math.Sqrt(r2)))
	return numkit.RotZ(-(e + cip.S)).Mul(numkit.RotY(d)).Mul(numkit.RotZ(e))
}

// earthRotationMatrix returns R = Rz(ERA).
func earthRotationMatrix(jdUT1 float64) numkit.Mat3 {
	return numkit.RotZ(ComputeERA(jdUT1))
}

// polarMotionMatrix returns W = Ry(xp) * Rx(-yp). xp, yp are radians
// from IERS Bulletin A; both default to zero.
func polarMotionMatrix(xp, yp float64) numkit.Mat3 {
	return numkit.RotY(xp).Mul(numkit.RotX(-yp))
}
