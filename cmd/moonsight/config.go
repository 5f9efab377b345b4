package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the CLI's persisted defaults file, loaded from
// ~/.moonsight/config.yaml when present. Every field is optional.
// PressureMbar and TemperatureC are pointers so an absent key in the
// file (nil) is distinguishable from an explicit 0 value, matching
// crescent.ObserverOptions/observer.Site.
type Config struct {
	CacheDir     string   `yaml:"cacheDir"`
	DefaultLat   float64  `yaml:"defaultLat"`
	DefaultLon   float64  `yaml:"defaultLon"`
	PressureMbar *float64 `yaml:"pressureMbar"`
	TemperatureC *float64 `yaml:"temperatureC"`
}

// loadConfig reads and parses a YAML config file. A missing file is
// not an error: it returns the zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".moonsight.yaml"
	}
	return home + "/.moonsight/config.yaml"
}
