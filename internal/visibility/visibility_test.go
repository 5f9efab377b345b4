package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamarata/moon-sighting/internal/numkit"
)

func TestArcvMinKnownValue(t *testing.T) {
	// At W=0, arcv_min reduces to the constant term.
	assert.InDelta(t, 11.8371, ArcvMin(0), 1e-9)
}

func TestYallopClassificationBoundaries(t *testing.T) {
	assert.Equal(t, YallopA, ClassifyYallop(0.3))
	assert.Equal(t, YallopB, ClassifyYallop(0.0))
	assert.Equal(t, YallopC, ClassifyYallop(-0.1))
	assert.Equal(t, YallopD, ClassifyYallop(-0.2))
	assert.Equal(t, YallopE, ClassifyYallop(-0.25))
	assert.Equal(t, YallopF, ClassifyYallop(-0.5))
}

func TestOdehClassificationBoundaries(t *testing.T) {
	assert.Equal(t, OdehA, ClassifyOdeh(6.0))
	assert.Equal(t, OdehB, ClassifyOdeh(3.0))
	assert.Equal(t, OdehC, ClassifyOdeh(0.0))
	assert.Equal(t, OdehD, ClassifyOdeh(-2.0))
}

func TestNormalizeAzimuthDiff180(t *testing.T) {
	assert.InDelta(t, 180.0, normalizeAzimuthDiff180(180), 1e-9)
	assert.InDelta(t, -179.0, normalizeAzimuthDiff180(181), 1e-9)
	assert.InDelta(t, 179.0, normalizeAzimuthDiff180(-181), 1e-9)
	assert.InDelta(t, 0.0, normalizeAzimuthDiff180(360), 1e-9)
}

func TestArcOfLightMatchesAngleBetween(t *testing.T) {
	a := numkit.Vec3{X: 1, Y: 0, Z: 0}
	b := numkit.Vec3{X: 0, Y: 1, Z: 0}
	arcl, err := ArcOfLight(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, arcl, 1e-9)
}
