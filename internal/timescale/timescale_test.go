package timescale

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateToJDRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 29, 12, 0, 0, 0, time.UTC)
	jd := DateToJD(now)
	back := JDToDate(jd)
	assert.WithinDuration(t, now, back, time.Millisecond)
}

func TestLeapSecondTableBelowFirstEntry(t *testing.T) {
	table := NewLeapSecondTable()
	old := DateToJD(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 10.0, table.DeltaAT(old))
}

func TestLeapSecondTableLookup(t *testing.T) {
	table := NewLeapSecondTable()
	assert.Equal(t, 37.0, table.DeltaAT(DateToJD(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))))
	assert.Equal(t, 34.0, table.DeltaAT(DateToJD(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC))))
	assert.Equal(t, 10.0, table.DeltaAT(DateToJD(time.Date(1972, 1, 1, 0, 0, 0, 0, time.UTC))))
}

func TestParseLSK(t *testing.T) {
	lsk := `
KPL/LSK
\begindata
DELTET/DELTA_AT = ( 10, @1972-JAN-1,
                     11, @1972-JUL-1,
                     37, @2017-JAN-1 )
\begintext
`
	entries, err := ParseLSK(strings.NewReader(lsk))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 37.0, entries[2].DeltaAT)
}

func TestComputeInvariants(t *testing.T) {
	table := NewLeapSecondTable()
	utc := time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC)
	ts := Compute(utc, table, Overrides{})

	assert.InDelta(t, (ts.DeltaAT+32.184)/86400.0, ts.JDTT-ts.JDUTC, 1e-12)
	assert.InDelta(t, 0, ts.JDTDB-ts.JDTT, 2.5e-8)
	assert.InDelta(t, ts.JDUT1, ts.JDTT-ts.DeltaT/86400.0, 1e-12)
}

func TestComputeWithOverrides(t *testing.T) {
	table := NewLeapSecondTable()
	utc := time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC)
	ut1utc := -0.15
	ts := Compute(utc, table, Overrides{UT1UTC: &ut1utc})
	assert.InDelta(t, ts.JDUTC+ut1utc/86400.0, ts.JDUT1, 1e-12)
}

func TestFromETRoundTripsApproximately(t *testing.T) {
	table := NewLeapSecondTable()
	utc := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
	original := Compute(utc, table, Overrides{})
	reconstructed := FromET(original.ET(), table, Overrides{})
	assert.WithinDuration(t, original.UTC, reconstructed.UTC, 2*time.Second)
}
