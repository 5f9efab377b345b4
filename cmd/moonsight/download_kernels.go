package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const defaultKernelURL = "https://naif.jpl.nasa.gov/pub/naif/generic_kernels/spk/planets/de442s.bsp"

// runDownloadKernels fetches a DE442S SPK kernel to the configured
// cache directory. This is a download-collaborator concern (spec.md
// §1's "out of scope" list), not part of the core.
func runDownloadKernels(logger *slog.Logger, args []string, cfg Config) error {
	fs := flag.NewFlagSet("download-kernels", flag.ContinueOnError)
	url := fs.String("url", defaultKernelURL, "kernel source URL")
	dest := fs.String("dest", "", "destination directory (default: config cacheDir or ~/.moonsight/kernels)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cacheDir := *dest
	if cacheDir == "" {
		cacheDir = cfg.CacheDir
	}
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve cache directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".moonsight", "kernels")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	client := &http.Client{Timeout: 5 * time.Minute}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, *url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	logger.Info("downloading kernel", "url", *url, "dest", cacheDir)
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching kernel: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, *url)
	}

	destPath := filepath.Join(cacheDir, filepath.Base(*url))
	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return errors.Join(fmt.Errorf("writing kernel: %w", err), out.Close())
	}

	logger.Info("kernel downloaded", "path", destPath, "bytes", n)
	return nil
}
