// Package crescent is the facade composing the full sighting pipeline
// (spec.md §4.9): time scales, the SPK reader, frames, the observer
// model, body positions, and visibility scoring.
package crescent

import (
	"fmt"

	"github.com/acamarata/moon-sighting/internal/bodies"
	"github.com/acamarata/moon-sighting/internal/spk"
)

// KernelSourceKind is the tag of the KernelSource sum type (spec.md
// §9). "auto" is a download-collaborator concern and deliberately has
// no constructor in this package's public API.
type KernelSourceKind string

const (
	KernelSourceFile   KernelSourceKind = "file"
	KernelSourceBuffer KernelSourceKind = "buffer"
	KernelSourceURL    KernelSourceKind = "url"
)

// KernelSource identifies where a loaded kernel's bytes came from, for
// reporting in MoonSightingReport.EphemerisSource.
type KernelSource struct {
	Kind KernelSourceKind
	Path string // set for File and URL kinds
}

// Facade holds the process-wide active kernel behind an explicit,
// safely-replaceable handle rather than global mutable state (spec.md
// §9's "module-level kernel slot" note): callers construct one Facade
// per configuration and share it by reference across goroutines; the
// underlying SpkKernel is immutable once built.
type Facade struct {
	kernel *spk.SpkKernel
	source KernelSource
}

// New returns a Facade with no kernel loaded; kernel-free operations
// (MoonPhase, MoonPositionAt, MoonIllumination) work immediately, and
// InitKernel enables the kernel-backed ones.
func New() *Facade {
	return &Facade{}
}

// InitKernel parses buf as a DAF/SPK kernel and installs it as the
// active kernel, replacing any previously loaded one. Existing
// in-flight queries that captured a Provider before this call keep
// using the old kernel (spec.md §5: "readers see either the previous
// or the new kernel, never a torn object").
func (f *Facade) InitKernel(buf []byte, source KernelSource) error {
	k, err := spk.NewKernel(buf)
	if err != nil {
		return fmt.Errorf("crescent: init kernel: %w", err)
	}
	f.kernel = k
	f.source = source
	return nil
}

// provider returns the active kernel-backed provider, or the Meeus
// fallback if no kernel is loaded.
func (f *Facade) provider() bodies.Provider {
	if f.kernel == nil {
		return bodies.MeeusProvider{}
	}
	return bodies.KernelProvider{Kernel: f.kernel}
}

// ephemerisSource describes which provider a report was computed
// from, for the report's always-present EphemerisSource field.
func (f *Facade) ephemerisSource() string {
	if f.kernel == nil {
		return "meeus"
	}
	return "spk:" + string(f.source.Kind)
}
