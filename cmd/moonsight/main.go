package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := loadConfig(defaultConfigPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var cmdErr error
	switch os.Args[1] {
	case "download-kernels":
		cmdErr = runDownloadKernels(logger, os.Args[2:], cfg)
	case "verify-kernels":
		cmdErr = runVerifyKernels(logger, os.Args[2:], cfg)
	case "sighting":
		cmdErr = runSighting(logger, os.Args[2:], cfg)
	case "phase":
		cmdErr = runPhase(logger, os.Args[2:])
	case "benchmark":
		cmdErr = runBenchmark(logger, os.Args[2:], cfg)
	default:
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, cmdErr.Error())
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: moonsight <command> [args]

commands:
  download-kernels          fetch and cache a DE442S SPK kernel
  verify-kernels <path>     parse a kernel and report segment coverage
  sighting <lat> <lon> [YYYY-MM-DD]
  phase [YYYY-MM-DD]
  benchmark [n]`)
}
