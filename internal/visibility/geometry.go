package visibility

import (
	"math"
	"time"

	"github.com/acamarata/moon-sighting/internal/bodies"
	"github.com/acamarata/moon-sighting/internal/numkit"
	"github.com/acamarata/moon-sighting/internal/observer"
)

// Geometry is the full set of best-time visibility measurements
// (spec.md §4.8), all derived from airless altitudes/azimuths except
// where noted.
type Geometry struct {
	ArcvDeg float64 // moon airless alt - sun airless alt
	DazDeg  float64 // sun airless az - moon airless az, normalized to (-180,180]
	ArclDeg float64 // topocentric Sun-Moon separation
	WArcmin float64 // crescent width
	LagMin  float64 // moonset - sunset, minutes
	YallopQ float64
	Yallop  YallopCategory
	OdehV   float64
	Odeh    OdehZone
}

// AssembleGeometry computes the full best-time geometry, given the
// Moon/Sun topocentric az/alt at the best-time instant, their
// geocentric-minus-observer topocentric position vectors (for ARCL and
// crescent width), and the sunset/moonset instants (for lag).
func AssembleGeometry(moonAzAlt, sunAzAlt observer.TopocentricAzAlt, moonTopo, sunTopo numkit.Vec3, sunset, moonset time.Time) (Geometry, error) {
	arcv := radToDeg(moonAzAlt.Airless.Altitude - sunAzAlt.Airless.Altitude)
	daz := normalizeAzimuthDiff180(radToDeg(sunAzAlt.Airless.Azimuth - moonAzAlt.Airless.Azimuth))

	arcl, err := ArcOfLight(moonTopo, sunTopo)
	if err != nil {
		return Geometry{}, err
	}
	w := bodies.CrescentWidth(moonTopo.Norm(), arcl)
	lagMin := moonset.Sub(sunset).Minutes()

	q := YallopQ(arcv, w)
	v := OdehV(arcv, w)

	return Geometry{
		ArcvDeg: arcv,
		DazDeg:  daz,
		ArclDeg: arcl,
		WArcmin: w,
		LagMin:  lagMin,
		YallopQ: q,
		Yallop:  ClassifyYallop(q),
		OdehV:   v,
		Odeh:    ClassifyOdeh(v),
	}, nil
}

func radToDeg(r float64) float64 { return r * 180 / math.Pi }
