package main

import (
	"fmt"
	"os"
)

func readKernelFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read kernel %s: %w", path, err)
	}
	return buf, nil
}
