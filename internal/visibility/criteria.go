package visibility

// YallopCategory is one of the six Yallop visibility bands.
type YallopCategory string

const (
	YallopA YallopCategory = "A" // easily visible
	YallopB YallopCategory = "B" // visible under perfect conditions
	YallopC YallopCategory = "C" // may need optical aid to find
	YallopD YallopCategory = "D" // needs optical aid to find
	YallopE YallopCategory = "E" // not visible with a telescope
	YallopF YallopCategory = "F" // not visible, below the Danjon limit
)

// YallopQ returns the Yallop q score: q = (ARCV - arcv_min(W')) / 10.
func YallopQ(arcvDeg, wPrimeArcmin float64) float64 {
	return (arcvDeg - ArcvMin(wPrimeArcmin)) / 10
}

// ClassifyYallop maps a q score to its category (spec.md §4.8).
func ClassifyYallop(q float64) YallopCategory {
	switch {
	case q > 0.216:
		return YallopA
	case q > -0.014:
		return YallopB
	case q > -0.160:
		return YallopC
	case q > -0.232:
		return YallopD
	case q > -0.293:
		return YallopE
	default:
		return YallopF
	}
}

// OdehZone is one of the four Odeh visibility zones.
type OdehZone string

const (
	OdehA OdehZone = "A" // visible to the naked eye
	OdehB OdehZone = "B" // visible under perfect conditions
	OdehC OdehZone = "C" // needs optical aid
	OdehD OdehZone = "D" // not visible even with optical aid
)

// OdehV returns the Odeh V score: V = ARCV - arcv_min(W).
func OdehV(arcvDeg, wArcmin float64) float64 {
	return arcvDeg - ArcvMin(wArcmin)
}

// ClassifyOdeh maps a V score to its zone (spec.md §4.8).
func ClassifyOdeh(v float64) OdehZone {
	switch {
	case v >= 5.65:
		return OdehA
	case v >= 2.00:
		return OdehB
	case v >= -0.96:
		return OdehC
	default:
		return OdehD
	}
}
