package events

import (
	"math"
	"time"

	"github.com/acamarata/moon-sighting/internal/bodies"
	"github.com/acamarata/moon-sighting/internal/numkit"
	"github.com/acamarata/moon-sighting/internal/observer"
	"github.com/acamarata/moon-sighting/internal/timescale"
)

const (
	sampleStepSeconds = 600.0
	brentToleranceSec = 0.5
)

// findCrossing samples f(et) = altitude(et) - thresholdRad at
// sampleStepSeconds steps over [startET, endET] and returns the ET of
// the first sign transition matching the requested direction (rising:
// - to +, setting: + to -), refined with Brent to 0.5-second tolerance
// (spec.md §4.7). ok is false if no matching crossing exists in the
// window.
func findCrossing(b body, thresholdRad float64, rising bool, startET, endET float64, s observer.Site, provider bodies.Provider, table *timescale.LeapSecondTable, ov timescale.Overrides) (et float64, ok bool, err error) {
	f := func(t float64) float64 {
		alt, ferr := airlessAltitudeAtET(b, t, s, provider, table, ov)
		if ferr != nil {
			err = ferr
			return 0
		}
		return alt - thresholdRad
	}

	prevET := startET
	prevVal := f(prevET)
	if err != nil {
		return 0, false, err
	}

	for t := startET + sampleStepSeconds; t <= endET; t += sampleStepSeconds {
		val := f(t)
		if err != nil {
			return 0, false, err
		}

		transitioned := (rising && prevVal < 0 && val >= 0) || (!rising && prevVal > 0 && val <= 0)
		if transitioned {
			root, berr := numkit.Brent(f, prevET, t, brentToleranceSec)
			if err != nil {
				return 0, false, err
			}
			if berr != nil {
				// A bad bracket here means f didn't actually change sign
				// (can't happen given the transition check above, but stay
				// defensive rather than propagating a spurious error).
				prevET, prevVal = t, val
				continue
			}
			return root, true, nil
		}
		prevET, prevVal = t, val
	}
	return 0, false, nil
}

// EventTime is a nullable UTC instant: an event that never occurs in
// the search window (polar day/night, circumpolar moon) leaves Found
// false rather than propagating an error (spec.md §7).
type EventTime struct {
	UTC   time.Time
	Found bool
}

func toEventTime(et float64, ok bool, table *timescale.LeapSecondTable, ov timescale.Overrides) EventTime {
	if !ok {
		return EventTime{}
	}
	ts := timescale.FromET(et, table, ov)
	return EventTime{UTC: ts.UTC, Found: true}
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
