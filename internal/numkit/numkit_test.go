package numkit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Basics(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}

	assert.Equal(t, Vec3{1, 1, 0}, a.Add(b))
	assert.InDelta(t, 0.0, a.Dot(b), 1e-15)
	assert.Equal(t, Vec3{0, 0, 1}, a.Cross(b))
	assert.InDelta(t, 1.0, a.Norm(), 1e-15)

	u, err := Vec3{0, 0, 3}.Unit()
	require.NoError(t, err)
	assert.Equal(t, Vec3{0, 0, 1}, u)

	_, err = Vec3{}.Unit()
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestAngleBetweenClampsDomain(t *testing.T) {
	// Two nearly-identical vectors whose dot product overshoots 1 due
	// to floating point error must not panic acos.
	a := Vec3{1, 1e-20, 0}
	b := Vec3{1, 0, 0}
	angle, err := AngleBetween(a, b)
	require.NoError(t, err)
	assert.True(t, angle >= 0)

	angle180, err := AngleBetween(Vec3{1, 0, 0}, Vec3{-1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, angle180, 1e-12)
}

func TestMat3TransposeIsInverseForRotations(t *testing.T) {
	r := RotZ(0.73).Mul(RotX(0.21))
	product := r.Mul(r.Transpose())
	id := Identity3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, id[i][j], product[i][j], 1e-12)
		}
	}
}

func TestRotationsPreserveLength(t *testing.T) {
	v := Vec3{3, -2, 5}
	for _, m := range []Mat3{RotX(1.1), RotY(-0.4), RotZ(2.9)} {
		rotated := m.Apply(v)
		assert.InDelta(t, v.Norm(), rotated.Norm(), 1e-10)
	}
}

func TestClenshawMatchesDirectPolynomial(t *testing.T) {
	// c represents 2 + 3*T1(x) + 4*T2(x); T2(x) = 2x^2-1.
	c := []float64{2, 3, 4}
	x := 0.37
	want := 2 + 3*x + 4*(2*x*x-1)
	got := ClenshawEval(c)(x)
	assert.InDelta(t, want, got, 1e-12)
}

func TestClenshawDerivativeMatchesFiniteDifference(t *testing.T) {
	c := []float64{1, -2, 0.5, 3, -1.25}
	x := 0.6
	radius := 43200.0
	_, deriv := ClenshawEvalWithDerivative(c, x, radius)

	h := 1e-6
	f := ClenshawEval(c)
	numeric := (f(x+h) - f(x-h)) / (2 * h) / radius
	assert.InDelta(t, numeric, deriv, 1e-5)
}

func TestBrentFindsKnownRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	root, err := Brent(f, 0, 2, 1e-12)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-9)
}

func TestBrentRejectsBadBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	_, err := Brent(f, -1, 1, 1e-9)
	assert.ErrorIs(t, err, ErrBadBracket)
}

func TestFindRootsDedupsAndFindsMultiple(t *testing.T) {
	// sin(x) has roots at 0, pi, 2pi within [-0.5, 2*pi+0.5].
	f := math.Sin
	roots := FindRoots(f, -0.5, 2*math.Pi+0.5, 400)
	require.Len(t, roots, 3)
	assert.InDelta(t, 0, roots[0], 1e-6)
	assert.InDelta(t, math.Pi, roots[1], 1e-6)
	assert.InDelta(t, 2*math.Pi, roots[2], 1e-6)
}
