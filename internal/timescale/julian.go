// Package timescale implements the UTC->TAI->TT->TDB and TT<->UT1
// conversion chain (spec.md §4.2). It has no notion of an ephemeris or
// an observer; it only knows how to move between calendar time and the
// Julian-date time scales the rest of the pipeline consumes.
package timescale

import (
	"math"
	"time"
)

// J2000 is the standard J2000.0 epoch, Julian Date 2451545.0 TT.
const J2000 = 2_451_545.0

// DaysPerJulianCentury is the Julian century used throughout IAU
// precession/nutation polynomials.
const DaysPerJulianCentury = 36_525.0

// ttTaiOffsetSeconds is the exact TAI->TT offset in seconds.
const ttTaiOffsetSeconds = 32.184

// DateToJD converts a UTC instant to a Julian Date. The conversion is
// exact: jd = unixMillis/86_400_000 + 2_440_587.5.
func DateToJD(t time.Time) float64 {
	ms := float64(t.UnixMilli())
	return ms/86_400_000.0 + 2_440_587.5
}

// JDToDate is the exact inverse of DateToJD at its millisecond
// resolution: the result is rounded to the nearest millisecond, so
// float64 rounding in jd does not move it.
func JDToDate(jd float64) time.Time {
	ms := (jd - 2_440_587.5) * 86_400_000.0
	return time.UnixMilli(int64(math.Round(ms))).UTC()
}

// JDTTToET converts a TT Julian Date to ET (seconds past J2000 TDB), the
// time argument SPK Chebyshev records are indexed by:
//
//	et = (jdTT - J2000)*86400 + (TDB - TT)
func JDTTToET(jdTT, tdbMinusTT float64) float64 {
	return (jdTT-J2000)*86_400.0 + tdbMinusTT
}

// CenturiesSinceJ2000TT returns T = (jdTT - J2000)/36525, the Julian
// century argument used throughout the IAU 2000/2006 polynomials in
// internal/frames.
func CenturiesSinceJ2000TT(jdTT float64) float64 {
	return (jdTT - J2000) / DaysPerJulianCentury
}
