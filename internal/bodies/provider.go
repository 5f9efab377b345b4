// Package bodies computes geocentric Moon/Sun state, either from an
// SPK kernel or from the Meeus low-precision series when no kernel is
// loaded, plus the illumination and crescent-width geometry derived
// from those states (spec.md §4.6).
package bodies

import (
	"math"

	"github.com/acamarata/moon-sighting/internal/numkit"
	"github.com/acamarata/moon-sighting/internal/spk"
)

// Provider supplies Moon and Sun geocentric positions (km, GCRS) for a
// TT Julian date. Kernel-backed and Meeus-backed implementations share
// every downstream consumer (spec.md §9's "two operating modes").
type Provider interface {
	Provide(jdTT float64) (moonGCRS, sunGCRS numkit.Vec3, err error)
}

// KernelProvider evaluates positions from a loaded SPK kernel via
// spk.State, converting the package-local spk.Vec3 to numkit.Vec3 at
// this boundary.
type KernelProvider struct {
	Kernel *spk.SpkKernel
}

func toNumkit(v spk.Vec3) numkit.Vec3 { return numkit.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// Provide implements Provider using et derived from jdTT (et is
// seconds past J2000 TDB, matching spk.State's expectation: the TT
// seconds plus the same periodic TDB-TT term internal/timescale uses).
func (p KernelProvider) Provide(jdTT float64) (moonGCRS, sunGCRS numkit.Vec3, err error) {
	const secondsPerDay = 86400.0
	const j2000 = 2451545.0
	g := (357.53 + 0.9856003*(jdTT-j2000)) * math.Pi / 180
	tdbMinusTT := 0.001658*math.Sin(g) + 0.000014*math.Sin(2*g)
	et := (jdTT-j2000)*secondsPerDay + tdbMinusTT

	moon, err := p.Kernel.State(spk.BodyMoon, spk.BodyEarth, et)
	if err != nil {
		return numkit.Vec3{}, numkit.Vec3{}, err
	}
	sun, err := p.Kernel.State(spk.BodySun, spk.BodyEarth, et)
	if err != nil {
		return numkit.Vec3{}, numkit.Vec3{}, err
	}
	return toNumkit(moon.Position), toNumkit(sun.Position), nil
}

// MeeusProvider evaluates the kernel-free low-precision series. It
// never returns an error (spec.md §7: "the Meeus fallback functions
// never raise").
type MeeusProvider struct{}

func (MeeusProvider) Provide(jdTT float64) (moonGCRS, sunGCRS numkit.Vec3, err error) {
	return MeeusMoon(jdTT), MeeusSun(jdTT), nil
}
