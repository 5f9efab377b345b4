// Package events implements sunrise/sunset/twilight/moonrise/moonset
// search and the best-observation-time heuristics (spec.md §4.7), all
// built on top of the observer/frames/bodies pipeline.
package events

import (
	"github.com/acamarata/moon-sighting/internal/bodies"
	"github.com/acamarata/moon-sighting/internal/frames"
	"github.com/acamarata/moon-sighting/internal/observer"
	"github.com/acamarata/moon-sighting/internal/timescale"
)

// body identifies which of the two tracked bodies an altitude function
// evaluates.
type body int

const (
	bodySun body = iota
	bodyMoon
)

// airlessAltitudeAtET returns the given body's airless (unrefracted)
// altitude in radians at time et (seconds past J2000 TDB), for site s.
func airlessAltitudeAtET(b body, et float64, s observer.Site, provider bodies.Provider, table *timescale.LeapSecondTable, ov timescale.Overrides) (float64, error) {
	ts := timescale.FromET(et, table, ov)
	moonGCRS, sunGCRS, err := provider.Provide(ts.JDTT)
	if err != nil {
		return 0, err
	}

	var target = moonGCRS
	if b == bodySun {
		target = sunGCRS
	}

	azAlt := observer.TopocentricFromGCRS(target, s, ts, frames.PolarMotion{})
	return azAlt.Airless.Altitude, nil
}
