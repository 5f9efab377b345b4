package main

import (
	"flag"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/acamarata/moon-sighting/crescent"
)

// runBenchmark times N repeated sightingReport calls and reports mean
// and p99 latency (spec.md §6's benchmark CLI command).
func runBenchmark(logger *slog.Logger, args []string, cfg Config) error {
	fs := flag.NewFlagSet("benchmark", flag.ContinueOnError)
	kernelPath := fs.String("kernel", "", "path to a DE442S SPK kernel (kernel-free Meeus fallback if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	n := 200
	if fs.NArg() >= 1 {
		parsed, err := strconv.Atoi(fs.Arg(0))
		if err != nil || parsed < 1 {
			return fmt.Errorf("benchmark: invalid iteration count %q", fs.Arg(0))
		}
		n = parsed
	}

	f := crescent.New()
	if *kernelPath != "" {
		buf, err := readKernelFile(*kernelPath)
		if err != nil {
			return err
		}
		if err := f.InitKernel(buf, crescent.KernelSource{Kind: crescent.KernelSourceFile, Path: *kernelPath}); err != nil {
			return fmt.Errorf("benchmark: %w", err)
		}
	}

	obs := crescent.ObserverOptions{LatDeg: 21.4225, LonDeg: 39.8262, PressureMbar: cfg.PressureMbar, TemperatureC: cfg.TemperatureC}
	date := time.Now().UTC()

	durations := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		start := time.Now()
		if _, err := f.SightingReport(date, obs, crescent.SightingOptions{}); err != nil {
			return fmt.Errorf("benchmark: iteration %d: %w", i, err)
		}
		durations = append(durations, time.Since(start))
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	var total time.Duration
	for _, d := range durations {
		total += d
	}
	mean := total / time.Duration(n)
	p99 := durations[(n*99)/100]

	logger.Info("benchmark complete", "iterations", n, "mean", mean, "p99", p99)
	fmt.Printf("iterations: %d\n", n)
	fmt.Printf("mean:       %s\n", mean)
	fmt.Printf("p99:        %s\n", p99)
	return nil
}
