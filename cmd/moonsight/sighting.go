package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/acamarata/moon-sighting/crescent"
)

// runSighting implements `sighting <lat> <lon> [YYYY-MM-DD]`.
func runSighting(logger *slog.Logger, args []string, cfg Config) error {
	fs := flag.NewFlagSet("sighting", flag.ContinueOnError)
	kernelPath := fs.String("kernel", "", "path to a DE442S SPK kernel (kernel-free Meeus fallback if omitted)")
	method := fs.String("best-time", "heuristic", "best-time method: heuristic|optimized")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("sighting: usage: sighting <lat> <lon> [YYYY-MM-DD]")
	}

	lat, err := strconv.ParseFloat(rest[0], 64)
	if err != nil {
		return fmt.Errorf("sighting: invalid latitude %q: %w", rest[0], err)
	}
	lon, err := strconv.ParseFloat(rest[1], 64)
	if err != nil {
		return fmt.Errorf("sighting: invalid longitude %q: %w", rest[1], err)
	}

	date := time.Now().UTC()
	if len(rest) >= 3 {
		date, err = time.Parse("2006-01-02", rest[2])
		if err != nil {
			return fmt.Errorf("sighting: invalid date %q: %w", rest[2], err)
		}
	}

	f := crescent.New()
	if *kernelPath != "" {
		buf, rerr := readKernelFile(*kernelPath)
		if rerr != nil {
			return rerr
		}
		if ierr := f.InitKernel(buf, crescent.KernelSource{Kind: crescent.KernelSourceFile, Path: *kernelPath}); ierr != nil {
			return fmt.Errorf("sighting: %w", ierr)
		}
	}

	bestTimeMethod := crescent.BestTimeHeuristicMethod
	if *method == "optimized" {
		bestTimeMethod = crescent.BestTimeOptimizedMethod
	}

	obs := crescent.ObserverOptions{
		LatDeg:       lat,
		LonDeg:       lon,
		PressureMbar: cfg.PressureMbar,
		TemperatureC: cfg.TemperatureC,
	}

	report, err := f.SightingReport(date, obs, crescent.SightingOptions{BestTimeMethod: bestTimeMethod})
	if err != nil {
		return fmt.Errorf("sighting: %w", err)
	}

	printSightingReport(report)
	return nil
}

func printSightingReport(r crescent.MoonSightingReport) {
	fmt.Printf("date:             %s\n", r.Date.Format("2006-01-02"))
	fmt.Printf("ephemeris source: %s\n", r.EphemerisSource)
	if r.HasSunrise {
		fmt.Printf("sunrise:          %s\n", r.Sunrise.Format(time.RFC3339))
	} else {
		fmt.Println("sunrise:          (none)")
	}
	if r.HasSunset {
		fmt.Printf("sunset:           %s\n", r.Sunset.Format(time.RFC3339))
	} else {
		fmt.Println("sunset:           (none)")
	}
	if r.HasMoonset {
		fmt.Printf("moonset:          %s\n", r.Moonset.Format(time.RFC3339))
	} else {
		fmt.Println("moonset:          (none)")
	}
	if !r.HasBestTime {
		fmt.Println("sighting possible: false (no best-time window)")
		return
	}
	fmt.Printf("best time:        %s\n", r.BestTime.Format(time.RFC3339))
	fmt.Printf("moon az/alt:      %.2f / %.2f deg\n",
		r.MoonApparentAzAlt.Azimuth*180/3.141592653589793,
		r.MoonApparentAzAlt.Altitude*180/3.141592653589793)
	if r.HasGeometry {
		fmt.Printf("ARCV: %.3f  DAZ: %.3f  ARCL: %.3f  W: %.3f  lag: %.1f min\n",
			r.Geometry.ArcvDeg, r.Geometry.DazDeg, r.Geometry.ArclDeg, r.Geometry.WArcmin, r.Geometry.LagMin)
		fmt.Printf("Yallop q=%.3f (%s)   Odeh V=%.3f (%s)\n",
			r.Geometry.YallopQ, r.Geometry.Yallop, r.Geometry.OdehV, r.Geometry.Odeh)
	}
	fmt.Printf("sighting possible: %v\n", r.SightingPossible)
}
