package main

import (
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/acamarata/moon-sighting/crescent"
)

// runPhase implements `phase [YYYY-MM-DD]`, a kernel-free query.
func runPhase(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("phase", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var when *time.Time
	if fs.NArg() >= 1 {
		date, err := time.Parse("2006-01-02", fs.Arg(0))
		if err != nil {
			return fmt.Errorf("phase: invalid date %q: %w", fs.Arg(0), err)
		}
		when = &date
	}

	result, err := crescent.MoonPhase(when)
	if err != nil {
		return fmt.Errorf("phase: %w", err)
	}
	logger.Debug("phase computed", "fraction", result.Fraction, "waxing", result.IsWaxing)

	fmt.Printf("illuminated fraction: %.4f\n", result.Fraction)
	fmt.Printf("waxing:               %v\n", result.IsWaxing)
	fmt.Printf("nearest new moon:     %s\n", result.NearestNewMoon.Format(time.RFC3339))
	fmt.Printf("nearest full moon:    %s\n", result.NearestFullMoon.Format(time.RFC3339))
	return nil
}
