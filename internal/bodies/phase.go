package bodies

import "math"

// phaseCorrectionTerm is one row of the New/Full Moon correction table
// (Meeus Table 49.A). Coefficients are in days; mSun/mMoon/f/omega are
// the integer multipliers of M, M', F, Omega. Terms with |mSun| = 1
// are scaled by E, the Earth-orbit eccentricity correction, and terms
// with |mSun| = 2 by E².
type phaseCorrectionTerm struct {
	mSun, mMoon, f, omega int
	coeff                 float64
}

// sharedPhaseCorrections holds the 23 correction terms common to both
// the New Moon and Full Moon tables; only the first two rows differ
// between the two events; those are supplied separately.
var sharedPhaseCorrections = []phaseCorrectionTerm{
	{0, 2, 0, 0, 0.01608},
	{0, 0, 2, 0, 0.01039},
	{1, -1, 0, 0, 0.00739},
	{-1, 1, 0, 0, -0.00514},
	{2, 0, 0, 0, 0.00208},
	{0, 1, -2, 0, -0.00111},
	{0, 1, 2, 0, -0.00057},
	{1, 2, 0, 0, 0.00056},
	{0, 3, 0, 0, -0.00042},
	{1, 0, 2, 0, 0.00042},
	{1, 0, -2, 0, 0.00038},
	{-1, 2, 0, 0, -0.00024},
	{0, 0, 0, 1, -0.00017},
	{2, 1, 0, 0, -0.00007},
	{0, 2, -2, 0, 0.00004},
	{3, 0, 0, 0, 0.00004},
	{1, 1, -2, 0, 0.00003},
	{0, 2, 2, 0, 0.00003},
	{1, 1, 2, 0, -0.00003},
	{-1, 1, 2, 0, 0.00003},
	{-1, 1, -2, 0, -0.00002},
	{1, 3, 0, 0, -0.00002},
	{0, 4, 0, 0, 0.00002},
}

// newMoonLeadCoeffs / fullMoonLeadCoeffs are the two rows (sin(M'),
// E*sin(M)) that differ in magnitude between the New Moon and Full
// Moon tables.
var newMoonLeadCoeffs = [2]float64{-0.40720, 0.17241}
var fullMoonLeadCoeffs = [2]float64{-0.40614, 0.17302}

// nearestPhase implements the shared machinery for NearestNewMoon and
// NearestFullMoon (Meeus Ch. 49): k is the (possibly half-integer)
// lunation number nearest jdTT, leadCoeffs selects the New/Full Moon
// variant of the first two correction terms.
func nearestPhase(jdTT float64, halfOffset float64, leadCoeffs [2]float64) float64 {
	year := decimalYearFromJD(jdTT)
	k := math.Round((year-2000)*12.3685-halfOffset) + halfOffset

	t := k / 1236.85
	jde0 := 2451550.09766 + 29.530588861*k +
		0.00015437*t*t - 0.000000150*t*t*t + 0.00000000073*t*t*t*t

	e := 1 - 0.002516*t - 0.0000074*t*t

	mSun := deg2rad(math.Mod(2.5534+29.10535669*k-0.0000014*t*t-0.00000011*t*t*t, 360))
	mMoon := deg2rad(math.Mod(201.5643+385.81693528*k+0.0107582*t*t+0.00001238*t*t*t-0.000000058*t*t*t*t, 360))
	f := deg2rad(math.Mod(160.7108+390.67050284*k-0.0016118*t*t-0.00000227*t*t*t+0.000000011*t*t*t*t, 360))
	omega := deg2rad(math.Mod(124.7746-1.56375588*k+0.0020672*t*t+0.00000215*t*t*t, 360))

	correction := leadCoeffs[0]*math.Sin(mMoon) + leadCoeffs[1]*e*math.Sin(mSun)
	for _, term := range sharedPhaseCorrections {
		arg := float64(term.mSun)*mSun + float64(term.mMoon)*mMoon + float64(term.f)*f + float64(term.omega)*omega
		ecc := eccentricityFactor(e, term.mSun)
		correction += term.coeff * ecc * math.Sin(arg)
	}

	return jde0 + correction
}

// NearestNewMoon returns the TT Julian date of the New Moon nearest
// jdTT.
func NearestNewMoon(jdTT float64) float64 {
	return nearestPhase(jdTT, 0, newMoonLeadCoeffs)
}

// NearestFullMoon returns the TT Julian date of the Full Moon nearest
// jdTT.
func NearestFullMoon(jdTT float64) float64 {
	return nearestPhase(jdTT, 0.5, fullMoonLeadCoeffs)
}

// decimalYearFromJD converts a TT Julian date to a decimal year for
// the k-estimation step of Meeus Ch. 49 (a coarse approximation is
// sufficient since k is subsequently rounded to an integer).
func decimalYearFromJD(jdTT float64) float64 {
	return 2000.0 + (jdTT-2451545.0)/365.25
}
