package events

import (
	"time"

	"github.com/acamarata/moon-sighting/internal/bodies"
	"github.com/acamarata/moon-sighting/internal/observer"
	"github.com/acamarata/moon-sighting/internal/timescale"
)

// SunMoonEvents is the set of altitude-threshold crossings computed
// for one civil UTC date at one site (spec.md §4.7).
type SunMoonEvents struct {
	Sunrise             EventTime
	Sunset              EventTime
	CivilDuskEnd        EventTime
	NauticalDuskEnd     EventTime
	AstronomicalDuskEnd EventTime
	Moonrise            EventTime
	Moonset             EventTime
}

var (
	horizonThresholdRad  = degToRad(-0.8333)
	civilThresholdRad    = degToRad(-6)
	nauticalThresholdRad = degToRad(-12)
	astroThresholdRad    = degToRad(-18)
)

// Compute searches a 28-hour window starting at UTC midnight of
// civilDate for every event in spec.md §4.7's table.
func Compute(civilDate time.Time, s observer.Site, provider bodies.Provider, table *timescale.LeapSecondTable, ov timescale.Overrides) (SunMoonEvents, error) {
	midnight := time.Date(civilDate.Year(), civilDate.Month(), civilDate.Day(), 0, 0, 0, 0, time.UTC)
	startTS := timescale.Compute(midnight, table, ov)
	startET := startTS.ET()
	endET := startET + 28*3600

	search := func(b body, thresholdRad float64, rising bool) (EventTime, error) {
		et, ok, err := findCrossing(b, thresholdRad, rising, startET, endET, s, provider, table, ov)
		if err != nil {
			return EventTime{}, err
		}
		return toEventTime(et, ok, table, ov), nil
	}

	var out SunMoonEvents
	var err error

	if out.Sunrise, err = search(bodySun, horizonThresholdRad, true); err != nil {
		return SunMoonEvents{}, err
	}
	if out.Sunset, err = search(bodySun, horizonThresholdRad, false); err != nil {
		return SunMoonEvents{}, err
	}
	if out.CivilDuskEnd, err = search(bodySun, civilThresholdRad, false); err != nil {
		return SunMoonEvents{}, err
	}
	if out.NauticalDuskEnd, err = search(bodySun, nauticalThresholdRad, false); err != nil {
		return SunMoonEvents{}, err
	}
	if out.AstronomicalDuskEnd, err = search(bodySun, astroThresholdRad, false); err != nil {
		return SunMoonEvents{}, err
	}
	if out.Moonrise, err = search(bodyMoon, horizonThresholdRad, true); err != nil {
		return SunMoonEvents{}, err
	}
	if out.Moonset, err = search(bodyMoon, horizonThresholdRad, false); err != nil {
		return SunMoonEvents{}, err
	}

	return out, nil
}
