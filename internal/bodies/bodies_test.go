package bodies

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamarata/moon-sighting/internal/numkit"
)

func TestComputeIlluminationFullMoonOpposition(t *testing.T) {
	moon := numkit.Vec3{X: 384000, Y: 0, Z: 0}
	sun := numkit.Vec3{X: -1.5e8, Y: 0, Z: 0}
	illum, err := ComputeIllumination(moon, sun)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, illum.ElongationRad, 1e-6)
	assert.Greater(t, illum.Fraction, 0.99)
}

func TestComputeIlluminationNewMoonConjunction(t *testing.T) {
	moon := numkit.Vec3{X: 384000, Y: 0, Z: 0}
	sun := numkit.Vec3{X: 1.5e8, Y: 0, Z: 0}
	illum, err := ComputeIllumination(moon, sun)
	require.NoError(t, err)
	assert.InDelta(t, 0, illum.ElongationRad, 1e-6)
	assert.Less(t, illum.Fraction, 0.01)
}

func TestIlluminationFractionAlwaysInRange(t *testing.T) {
	for _, angleDeg := range []float64{0, 30, 60, 90, 120, 150, 180} {
		angle := angleDeg * math.Pi / 180
		moon := numkit.Vec3{X: 384000, Y: 0, Z: 0}
		sun := numkit.Vec3{X: 1.5e8 * math.Cos(angle), Y: 1.5e8 * math.Sin(angle), Z: 0}
		illum, err := ComputeIllumination(moon, sun)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, illum.Fraction, 0.0)
		assert.LessOrEqual(t, illum.Fraction, 1.0)
	}
}

func TestCrescentWidthIsNonNegative(t *testing.T) {
	for _, arcl := range []float64{1, 5, 10, 20} {
		w := CrescentWidth(384000, arcl)
		assert.GreaterOrEqual(t, w, 0.0)
	}
}

func TestCrescentWidthZeroAtZeroSeparation(t *testing.T) {
	w := CrescentWidth(384000, 0)
	assert.InDelta(t, 0, w, 1e-9)
}

func TestMeeusSunDistanceIsPlausible(t *testing.T) {
	sun := MeeusSun(2451545.0)
	dist := sun.Norm()
	assert.Greater(t, dist, 1.47e8)
	assert.Less(t, dist, 1.53e8)
}

func TestMeeusMoonDistanceIsPlausible(t *testing.T) {
	moon := MeeusMoon(2451545.0)
	dist := moon.Norm()
	assert.Greater(t, dist, 356000.0)
	assert.Less(t, dist, 407000.0)
}

func TestNearestNewMoonIsCloseToJ2000Reference(t *testing.T) {
	// The New Moon of 2000-01-06 (k=0) has JDE approximately 2451550.1.
	jde := nearestPhase(2451550.0, 0, newMoonLeadCoeffs)
	assert.InDelta(t, 2451550.1, jde, 1.0)
}

func TestNearestFullMoonDiffersFromNewMoon(t *testing.T) {
	newMoon := NearestNewMoon(2451545.0)
	fullMoon := NearestFullMoon(2451545.0)
	assert.NotEqual(t, newMoon, fullMoon)
	assert.Less(t, math.Abs(newMoon-fullMoon), 20.0)
}

func TestBrightLimbAngleFinite(t *testing.T) {
	angle := BrightLimbAngle(1.0, 0.3, 1.2, 0.1)
	assert.False(t, math.IsNaN(angle))
	assert.GreaterOrEqual(t, angle, -math.Pi)
	assert.LessOrEqual(t, angle, math.Pi)
}
