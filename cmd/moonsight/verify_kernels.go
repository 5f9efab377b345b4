package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/acamarata/moon-sighting/internal/spk"
)

// requiredGroups are the (target,center) pairs spec.md §6 says a
// usable DE442S kernel must contain: Moon/EMB, Earth/EMB, Sun/SSB,
// EMB/SSB.
var requiredGroups = [][2]int{
	{spk.BodyMoon, spk.BodyEMB},
	{spk.BodyEarth, spk.BodyEMB},
	{spk.BodySun, spk.BodySSB},
	{spk.BodyEMB, spk.BodySSB},
}

var groupNames = map[[2]int]string{
	{spk.BodyMoon, spk.BodyEMB}:  "Moon -> EMB",
	{spk.BodyEarth, spk.BodyEMB}: "Earth -> EMB",
	{spk.BodySun, spk.BodySSB}:   "Sun -> SSB",
	{spk.BodyEMB, spk.BodySSB}:   "EMB -> SSB",
}

// runVerifyKernels parses a kernel, walks its segment chain, confirms
// the required segment groups are present, and prints their time
// coverage. Exits (via a returned error) with status 1 on parse or
// coverage failure (spec.md §6).
func runVerifyKernels(logger *slog.Logger, args []string, cfg Config) error {
	fs := flag.NewFlagSet("verify-kernels", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := fs.Arg(0)
	if path == "" {
		return fmt.Errorf("verify-kernels: kernel path required")
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read kernel: %w", err)
	}

	kernel, err := spk.NewKernel(buf)
	if err != nil {
		return fmt.Errorf("parse kernel: %w", err)
	}

	logger.Info("kernel parsed", "path", path, "groups", len(kernel.SegmentGroups()))

	var missing []string
	for _, key := range requiredGroups {
		segs := kernel.Segments(key[0], key[1])
		name := groupNames[key]
		if len(segs) == 0 {
			missing = append(missing, name)
			continue
		}
		start, end := segs[0].StartET, segs[0].EndET
		for _, s := range segs[1:] {
			if s.StartET < start {
				start = s.StartET
			}
			if s.EndET > end {
				end = s.EndET
			}
		}
		fmt.Printf("%-16s %d segment(s), ET [%.0f, %.0f]\n", name, len(segs), start, end)
	}

	if len(missing) > 0 {
		return fmt.Errorf("verify-kernels: missing required segment group(s): %v", missing)
	}

	fmt.Println("OK")
	return nil
}
