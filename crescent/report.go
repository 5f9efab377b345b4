package crescent

import (
	"time"

	"github.com/acamarata/moon-sighting/internal/events"
	"github.com/acamarata/moon-sighting/internal/frames"
	"github.com/acamarata/moon-sighting/internal/observer"
	"github.com/acamarata/moon-sighting/internal/timescale"
	"github.com/acamarata/moon-sighting/internal/visibility"
)

// BestTimeMethod selects between the two best-time strategies of
// spec.md §4.7.
type BestTimeMethod string

const (
	BestTimeHeuristicMethod BestTimeMethod = "heuristic"
	BestTimeOptimizedMethod BestTimeMethod = "optimized"
)

// ObserverOptions carries a site's geodetic location and the optional
// overrides/weather fields of spec.md §3's Observer type.
type ObserverOptions struct {
	LatDeg, LonDeg, ElevM float64
	DeltaT                *float64
	UT1UTC                *float64
	PressureMbar          *float64 // nil defaults to 1013.25, see observer.Site.weather
	TemperatureC          *float64 // nil defaults to 15, see observer.Site.weather
}

func (o ObserverOptions) toSite() observer.Site {
	const deg2rad = 3.141592653589793 / 180
	return observer.Site{
		LatRad:       o.LatDeg * deg2rad,
		LonRad:       o.LonDeg * deg2rad,
		HeightM:      o.ElevM,
		PressureMbar: o.PressureMbar,
		TemperatureC: o.TemperatureC,
	}
}

func (o ObserverOptions) toOverrides() timescale.Overrides {
	return timescale.Overrides{DeltaT: o.DeltaT, UT1UTC: o.UT1UTC}
}

// SightingOptions bundles per-query configuration (spec.md §6).
type SightingOptions struct {
	BestTimeMethod BestTimeMethod
}

// MoonSightingReport is the facade's aggregate output (spec.md §3).
// Every field except Date, Observer, and EphemerisSource may be zero
// when the underlying event is absent (polar day/night, no crossing).
type MoonSightingReport struct {
	Date            time.Time
	Observer        ObserverOptions
	EphemerisSource string

	Sunset, Sunrise   time.Time
	Moonset, Moonrise time.Time
	HasSunset         bool
	HasSunrise        bool
	HasMoonset        bool

	BestTime    time.Time
	HasBestTime bool

	Geometry    visibility.Geometry
	HasGeometry bool

	MoonApparentAzAlt observer.AzAlt

	SightingPossible bool
}

// SightingReport composes the full pipeline (spec.md §2's data flow):
// events -> best-time -> single evaluation at best time -> visibility.
// It never returns an error for ordinary astronomical non-events
// (missing sunset/moonset yield a partial report); it does propagate
// the core error kinds (KernelParse et al. surfaced from spk/numkit).
func (f *Facade) SightingReport(date time.Time, obs ObserverOptions, opts SightingOptions) (MoonSightingReport, error) {
	table := timescale.NewLeapSecondTable()
	ov := obs.toOverrides()
	site := obs.toSite()
	provider := f.provider()

	report := MoonSightingReport{
		Date:            date,
		Observer:        obs,
		EphemerisSource: f.ephemerisSource(),
	}

	evts, err := events.Compute(date, site, provider, table, ov)
	if err != nil {
		return report, err
	}

	report.Sunrise, report.HasSunrise = evts.Sunrise.UTC, evts.Sunrise.Found
	if evts.Sunset.Found {
		report.Sunset = evts.Sunset.UTC
		report.HasSunset = true
	}
	if evts.Moonset.Found {
		report.Moonset = evts.Moonset.UTC
		report.HasMoonset = true
	}
	if evts.Moonrise.Found {
		report.Moonrise = evts.Moonrise.UTC
	}

	if !evts.Sunset.Found || !evts.Moonset.Found {
		return report, nil
	}

	var bestTime time.Time
	var ok bool
	switch opts.BestTimeMethod {
	case BestTimeOptimizedMethod:
		bestTime, _, ok, err = events.BestTimeOptimized(evts.Sunset.UTC, evts.Moonset.UTC, site, provider, table, ov)
		if err != nil {
			return report, err
		}
	default:
		bestTime, ok = events.BestTimeHeuristic(evts.Sunset.UTC, evts.Moonset.UTC)
	}
	if !ok {
		return report, nil
	}
	report.BestTime = bestTime
	report.HasBestTime = true

	ts := timescale.Compute(bestTime, table, ov)
	moonGCRS, sunGCRS, err := provider.Provide(ts.JDTT)
	if err != nil {
		return report, err
	}

	pm := frames.PolarMotion{}
	moonAzAlt := observer.TopocentricFromGCRS(moonGCRS, site, ts, pm)
	sunAzAlt := observer.TopocentricFromGCRS(sunGCRS, site, ts, pm)
	report.MoonApparentAzAlt = moonAzAlt.Apparent

	obsGCRS := observer.ObserverGCRSPosition(site, ts, pm)
	moonTopoVec := moonGCRS.Sub(obsGCRS)
	sunTopoVec := sunGCRS.Sub(obsGCRS)

	geometry, err := visibility.AssembleGeometry(moonAzAlt, sunAzAlt, moonTopoVec, sunTopoVec, evts.Sunset.UTC, evts.Moonset.UTC)
	if err != nil {
		return report, err
	}
	report.Geometry = geometry
	report.HasGeometry = true
	report.SightingPossible = geometry.Odeh == visibility.OdehA || geometry.Odeh == visibility.OdehB

	return report, nil
}

// SunMoonEvents exposes the raw event search independent of the full
// sighting report.
func (f *Facade) SunMoonEvents(date time.Time, obs ObserverOptions) (events.SunMoonEvents, error) {
	table := timescale.NewLeapSecondTable()
	return events.Compute(date, obs.toSite(), f.provider(), table, obs.toOverrides())
}
