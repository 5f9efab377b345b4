// Package numkit provides the small numerical primitives the rest of
// the sighting pipeline is built on: 3-vectors and 3x3 matrices, a
// Clenshaw Chebyshev evaluator, and a Brent root finder. Nothing here
// knows about time scales, ephemerides, or observers — it is pure
// arithmetic, kept dependency-light so every other package can lean
// on it without pulling in astronomy-specific assumptions.
package numkit

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrZeroVector is returned by Unit when asked to normalize the zero vector.
var ErrZeroVector = errors.New("numkit: cannot normalize the zero vector")

// Vec3 is an ordered triple of double-precision reals. Its unit
// depends on context: kilometers for positions, km/s for velocities,
// dimensionless for direction vectors.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+u.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns v-u.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and u.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product v x u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v normalized to length 1. It fails on the zero vector
// since direction is undefined there.
func (v Vec3) Unit() (Vec3, error) {
	n := v.Norm()
	if n == 0 {
		return Vec3{}, ErrZeroVector
	}
	return v.Scale(1 / n), nil
}

// AngleBetween returns the angle in radians between two direction
// vectors, computed as acos(clamp(dot(unit(a),unit(b)), -1, 1)). The
// clamp guards against acos domain errors from floating-point overshoot
// when a and b are nearly parallel or anti-parallel.
func AngleBetween(a, b Vec3) (float64, error) {
	ua, err := a.Unit()
	if err != nil {
		return 0, err
	}
	ub, err := b.Unit()
	if err != nil {
		return 0, err
	}
	c := ua.Dot(ub)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c), nil
}

// Mat3 is a 3x3 row-major matrix of doubles. Multiplication and
// transpose are backed by gonum's mat.Dense so the frame-composition
// chain (Q*R*W in internal/frames) runs through a real linear-algebra
// implementation rather than hand-rolled loops.
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (m Mat3) dense() *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d.Set(i, j, m[i][j])
		}
	}
	return d
}

func fromDense(d mat.Matrix) Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = d.At(i, j)
		}
	}
	return m
}

// Mul returns the matrix product m*n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out mat.Dense
	out.Mul(m.dense(), n.dense())
	return fromDense(&out)
}

// Transpose returns the transpose of m. Rotation matrices produced by
// this package are orthonormal (transpose == inverse), but callers
// must call Transpose explicitly when inverting a frame transform —
// the implementation never assumes orthonormality to skip the call.
func (m Mat3) Transpose() Mat3 {
	var out mat.Dense
	out.CloneFrom(m.dense().T())
	return fromDense(&out)
}

// Apply returns m*v treating v as a column vector.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// RotX returns the right-hand-rule rotation matrix about the X axis by
// angle theta (radians).
func RotX(theta float64) Mat3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotY returns the right-hand-rule rotation matrix about the Y axis by
// angle theta (radians).
func RotY(theta float64) Mat3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotZ returns the right-hand-rule rotation matrix about the Z axis by
// angle theta (radians).
func RotZ(theta float64) Mat3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}
