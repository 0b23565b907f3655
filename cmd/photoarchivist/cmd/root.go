// Package cmd wires the set-exif-from-metadata, move-with-exif, and
// verify subcommands under one cobra rootCmd.
package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/cacack/photoarchivist/pkg/config"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	workers int
	verbose int
)

var rootCmd = &cobra.Command{
	Use:     "photoarchivist",
	Short:   "Reconcile Google Photos Takeout metadata and archive dated files",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return checkExifTool()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0,
		"number of worker goroutines (0 = number of CPUs, 1 = serial)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v",
		"increase verbosity (-v, -vv); per-file diagnostics are suppressed otherwise")
}

// checkExifTool verifies that exiftool is installed before any
// subcommand runs.
func checkExifTool() error {
	if _, err := exec.LookPath("exiftool"); err != nil {
		return fmt.Errorf(`exiftool not found. Please install it first:

macOS:    brew install exiftool
Ubuntu:   sudo apt-get install libimage-exiftool-perl
Windows:  Download from https://exiftool.org/

After installation, verify with: exiftool -ver`)
	}
	return nil
}

// resolvedConfig builds a RunConfig from the parsed flags and the
// on-disk defaults file.
func resolvedConfig(inputDir, outputDir string, execute bool) (config.RunConfig, error) {
	cfg := config.RunConfig{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Execute:   execute,
		Workers:   workers,
		Verbose:   verbose,
	}

	defaults, err := config.LoadDefaults()
	if err != nil {
		return cfg, err
	}
	defaults.ApplyTo(&cfg)

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg, nil
}
