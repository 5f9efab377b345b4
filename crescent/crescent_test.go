package crescent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoonPhaseNeverErrors(t *testing.T) {
	date := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	result, err := MoonPhase(&date)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Fraction, 0.0)
	assert.LessOrEqual(t, result.Fraction, 1.0)
}

func TestMoonIlluminationNeverErrors(t *testing.T) {
	date := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	result, err := MoonIllumination(&date)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Fraction, 0.0)
	assert.LessOrEqual(t, result.Fraction, 1.0)
}

func TestMoonPositionAtReturnsPlausibleDistance(t *testing.T) {
	date := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	pos := MoonPositionAt(&date, 21.4225, 39.8262, 300) // Mecca
	assert.Greater(t, pos.DistanceKM, 356000.0)
	assert.Less(t, pos.DistanceKM, 407000.0)
}

func TestSightingReportUsesMeeusFallbackWithoutKernel(t *testing.T) {
	f := New()
	date := time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC)
	obs := ObserverOptions{LatDeg: 21.4225, LonDeg: 39.8262, ElevM: 300}

	report, err := f.SightingReport(date, obs, SightingOptions{BestTimeMethod: BestTimeHeuristicMethod})
	require.NoError(t, err)
	assert.Equal(t, "meeus", report.EphemerisSource)
	assert.Equal(t, date, report.Date)
}

func TestSightingReportPartialWhenNoMoonset(t *testing.T) {
	f := New()
	// Near-polar site in local summer: moon or sun may not set within
	// the search window, exercising the partial-report path.
	date := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)
	obs := ObserverOptions{LatDeg: 89.9, LonDeg: 0, ElevM: 0}

	report, err := f.SightingReport(date, obs, SightingOptions{})
	require.NoError(t, err)
	assert.Equal(t, "meeus", report.EphemerisSource)
	if !report.HasMoonset || !report.HasSunset {
		assert.False(t, report.HasGeometry)
		assert.False(t, report.SightingPossible)
	}
}

func TestInitKernelRejectsGarbage(t *testing.T) {
	f := New()
	err := f.InitKernel([]byte("not a kernel"), KernelSource{Kind: KernelSourceBuffer})
	assert.Error(t, err)
}
