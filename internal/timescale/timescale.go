package timescale

import "time"

// TimeScales is an immutable record of every time scale needed for a
// single instant: the UTC calendar instant itself, the four Julian
// dates (UTC, TT, TDB, UT1), and the two offsets (deltaT = TT-UT1,
// deltaAT = TAI-UTC) that produced them, all in seconds.
//
// Invariants (spec.md §3):
//
//	jdTT - jdUTC == (deltaAT + 32.184)/86400
//	jdTDB - jdTT <= ~2e-8 day
//	jdUT1 == jdTT - deltaT/86400
type TimeScales struct {
	UTC     time.Time
	JDUTC   float64
	JDTT    float64
	JDTDB   float64
	JDUT1   float64
	DeltaT  float64 // TT - UT1, seconds
	DeltaAT float64 // TAI - UTC, seconds
}

// Overrides lets a caller pin deltaT and/or UT1-UTC instead of
// deriving them from the bundled ΔT polynomial, matching the Observer
// override fields in spec.md §3.
type Overrides struct {
	DeltaT *float64 // seconds, TT-UT1
	UT1UTC *float64 // seconds, UT1-UTC
}

// Compute assembles a TimeScales record for a UTC instant against a
// leap-second table and optional overrides, following the chain in
// spec.md §4.2:
//
//	jdTAI = jdUTC + deltaAT/86400
//	jdTT  = jdTAI + 32.184/86400          (exact)
//	jdTDB = jdTT  + (TDB-TT)/86400
//	jdUT1 = jdUTC + ut1utc/86400          (if override given)
//	      | jdTT  - deltaT/86400          (if deltaT override given)
//	      | jdTT  - piecewiseDeltaT/86400 (else)
func Compute(utc time.Time, table *LeapSecondTable, ov Overrides) TimeScales {
	jdUTC := DateToJD(utc)
	deltaAT := table.DeltaAT(jdUTC)
	jdTAI := jdUTC + deltaAT/86400.0
	jdTT := jdTAI + ttTaiOffsetSeconds/86400.0
	jdTDB := jdTT + tdbMinusTT(jdTT)/86400.0

	var deltaT float64
	var jdUT1 float64
	switch {
	case ov.UT1UTC != nil:
		jdUT1 = jdUTC + *ov.UT1UTC/86400.0
		deltaT = (jdTT - jdUT1) * 86400.0
	case ov.DeltaT != nil:
		deltaT = *ov.DeltaT
		jdUT1 = jdTT - deltaT/86400.0
	default:
		deltaT = DeltaT(DecimalYear(jdTT))
		jdUT1 = jdTT - deltaT/86400.0
	}

	return TimeScales{
		UTC:     utc,
		JDUTC:   jdUTC,
		JDTT:    jdTT,
		JDTDB:   jdTDB,
		JDUT1:   jdUT1,
		DeltaT:  deltaT,
		DeltaAT: deltaAT,
	}
}

// ET returns seconds past J2000 TDB, the time argument SPK Chebyshev
// records are indexed by.
func (ts TimeScales) ET() float64 {
	return JDTTToET(ts.JDTT, (ts.JDTDB-ts.JDTT)*86400.0)
}

// FromET reconstructs an approximate TimeScales from an ET value alone
// (spec.md §4.7's event-search bootstrap): jdTT is estimated directly
// from et, UTC is estimated by subtracting a leap-second lookup done
// ~70 seconds early to avoid a boundary flip, and the result is then
// recomputed properly from that UTC estimate. This keeps UTC accurate
// to about a second, which is adequate for event timing but not
// intended for high-precision reporting.
func FromET(et float64, table *LeapSecondTable, ov Overrides) TimeScales {
	jdTTApprox := J2000 + et/86_400.0
	deltaAT := table.DeltaAT(jdTTApprox - 70.0/86_400.0)
	jdUTCApprox := jdTTApprox - (deltaAT+ttTaiOffsetSeconds)/86_400.0
	utcApprox := JDToDate(jdUTCApprox)
	return Compute(utcApprox, table, ov)
}
