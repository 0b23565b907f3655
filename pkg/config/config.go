// Package config holds the run configuration shared by both CLI entry
// points, plus an optional on-disk defaults file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// RunConfig holds the options that drive a single set-exif-from-metadata
// or move-with-exif invocation.
type RunConfig struct {
	// InputDir is the Takeout tree to scan.
	InputDir string

	// OutputDir is the destination for move-with-exif. Unused by
	// set-exif-from-metadata.
	OutputDir string

	// Execute turns off the default dry-run behavior.
	Execute bool

	// Workers sizes the bounded worker pool. 1 forces serial processing.
	Workers int

	// Verbose controls per-file diagnostic output: 0 is silent (summary
	// only), >0 re-enables per-file lines.
	Verbose int
}

// Defaults are the values an on-disk config file may override before
// flag parsing runs. Their zero values mean "use the built-in default",
// never "use zero". ProgressMillis is parsed but not applied to any run:
// the live progress line always refreshes at most every 200 ms.
type Defaults struct {
	Workers        int `yaml:"workers"`
	Verbose        int `yaml:"verbose"`
	ProgressMillis int `yaml:"progress_interval_ms"`
}

// defaultConfigName is the file searched for in the working directory and
// the user's home directory.
const defaultConfigName = ".photoarchivist.yaml"

// LoadDefaults looks for defaultConfigName in the current directory, then
// in $HOME, and returns whichever it finds first. A missing file is not
// an error: it simply yields zero-value Defaults. This file is a
// convenience layer, never a requirement.
func LoadDefaults() (Defaults, error) {
	for _, dir := range searchDirs() {
		path := filepath.Join(dir, defaultConfigName)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return Defaults{}, fmt.Errorf("config: read %s: %w", path, err)
		}

		var d Defaults
		if err := yaml.Unmarshal(data, &d); err != nil {
			return Defaults{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		return d, nil
	}
	return Defaults{}, nil
}

func searchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// ApplyTo fills in zero-valued fields of cfg from d, without overriding
// anything the caller (i.e. explicit flags) already set.
func (d Defaults) ApplyTo(cfg *RunConfig) {
	if cfg.Workers == 0 {
		if d.Workers > 0 {
			cfg.Workers = d.Workers
		} else {
			cfg.Workers = runtime.NumCPU()
		}
	}
	if cfg.Verbose == 0 && d.Verbose > 0 {
		cfg.Verbose = d.Verbose
	}
}
