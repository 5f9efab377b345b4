package events

import (
	"math"
	"time"

	"github.com/acamarata/moon-sighting/internal/bodies"
	"github.com/acamarata/moon-sighting/internal/frames"
	"github.com/acamarata/moon-sighting/internal/observer"
	"github.com/acamarata/moon-sighting/internal/timescale"
	"github.com/acamarata/moon-sighting/internal/visibility"
)

// BestTimeHeuristic returns T_b = sunset + (4/9)*(moonset - sunset)
// (spec.md §4.7). ok is false when moonset does not follow sunset.
func BestTimeHeuristic(sunset, moonset time.Time) (best time.Time, ok bool) {
	if !moonset.After(sunset) {
		return time.Time{}, false
	}
	lag := moonset.Sub(sunset)
	return sunset.Add(time.Duration(float64(lag) * 4.0 / 9.0)), true
}

// BestTimeOptimized samples 91 points on [sunset, moonset], computing
// the Odeh V score at each, and returns the argmax instant (spec.md
// §4.7). The observer's ITRS position is fixed; each sample's GCRS
// positions are recomputed since Earth rotation changes.
func BestTimeOptimized(sunset, moonset time.Time, s observer.Site, provider bodies.Provider, table *timescale.LeapSecondTable, ov timescale.Overrides) (best time.Time, bestV float64, ok bool, err error) {
	if !moonset.After(sunset) {
		return time.Time{}, 0, false, nil
	}

	const samples = 91
	step := moonset.Sub(sunset) / (samples - 1)

	bestV = negInf
	for i := 0; i < samples; i++ {
		t := sunset.Add(time.Duration(i) * step)
		ts := timescale.Compute(t, table, ov)

		moonGCRS, sunGCRS, perr := provider.Provide(ts.JDTT)
		if perr != nil {
			return time.Time{}, 0, false, perr
		}

		pm := frames.PolarMotion{}
		moonAzAlt := observer.TopocentricFromGCRS(moonGCRS, s, ts, pm)
		sunAzAlt := observer.TopocentricFromGCRS(sunGCRS, s, ts, pm)

		arcv := radToDeg(moonAzAlt.Airless.Altitude - sunAzAlt.Airless.Altitude)

		obsGCRS := observer.ObserverGCRSPosition(s, ts, pm)
		moonTopoVec := moonGCRS.Sub(obsGCRS)
		sunTopoVec := sunGCRS.Sub(obsGCRS)

		arcl, aerr := visibility.ArcOfLight(moonTopoVec, sunTopoVec)
		if aerr != nil {
			return time.Time{}, 0, false, aerr
		}
		w := bodies.CrescentWidth(moonTopoVec.Norm(), arcl)
		v := arcv - visibility.ArcvMin(w)

		if v > bestV {
			bestV = v
			best = t
			ok = true
		}
	}
	return best, bestV, ok, nil
}

const negInf = -1e300

func radToDeg(r float64) float64 { return r * 180 / math.Pi }
