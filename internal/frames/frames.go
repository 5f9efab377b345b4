// Package frames implements the IAU 2000B/2006 transformation from
// the inertial GCRS frame to the Earth-fixed ITRS frame:
// ITRS = W * R * Q * GCRS (spec.md §4.4). Q carries the IAU 2000B
// nutation series and IAU 2006 precession, R is the Earth Rotation
// Angle, and W is polar motion.
package frames

import (
	"github.com/acamarata/moon-sighting/internal/numkit"
	"github.com/acamarata/moon-sighting/internal/timescale"
)

// PolarMotion is the (xp, yp) polar motion offset in radians, from
// IERS Bulletin A. The zero value (0,0) is the spec's default.
type PolarMotion struct {
	XP, YP float64
}

// Transform bundles the three matrices composing the GCRS<->ITRS
// transform for one instant, so a caller doing several conversions at
// the same ts+polar-motion pair (as Observer's az/alt pipeline does)
// can build it once.
type Transform struct {
	Q, R, W numkit.Mat3
}

// Build assembles Q, R, and W for a given TimeScales record and polar
// motion offset.
func Build(ts timescale.TimeScales, pm PolarMotion) Transform {
	tCenturies := timescale.CenturiesSinceJ2000TT(ts.JDTT)
	cip := ComputeCIP(tCenturies)
	return Transform{
		Q: celestialMotionMatrix(cip),
		R: earthRotationMatrix(ts.JDUT1),
		W: polarMotionMatrix(pm.XP, pm.YP),
	}
}

// GCRSToITRS transforms a GCRS vector to ITRS: ITRS = W*R*Q*GCRS.
func (tr Transform) GCRSToITRS(v numkit.Vec3) numkit.Vec3 {
	return tr.W.Mul(tr.R).Mul(tr.Q).Apply(v)
}

// ITRSToGCRS is the inverse transform: GCRS = Q^T * R^T * W^T * ITRS.
// The transposes are computed explicitly rather than assumed equal to
// an inverse taken some other way, per spec.md §3's invariant that
// rotation-matrix orthonormality must never be used to skip a
// transpose.
func (tr Transform) ITRSToGCRS(v numkit.Vec3) numkit.Vec3 {
	return tr.Q.Transpose().Mul(tr.R.Transpose()).Mul(tr.W.Transpose()).Apply(v)
}

// GCRSToITRS is a convenience one-shot form for a single conversion
// when the caller doesn't need to reuse the composed matrices.
func GCRSToITRS(v numkit.Vec3, ts timescale.TimeScales, pm PolarMotion) numkit.Vec3 {
	return Build(ts, pm).GCRSToITRS(v)
}

// ITRSToGCRS is the one-shot inverse of GCRSToITRS.
func ITRSToGCRS(v numkit.Vec3, ts timescale.TimeScales, pm PolarMotion) numkit.Vec3 {
	return Build(ts, pm).ITRSToGCRS(v)
}
