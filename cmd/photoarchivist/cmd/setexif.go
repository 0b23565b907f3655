package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alitto/pond"
	"github.com/cacack/photoarchivist/internal/container"
	"github.com/cacack/photoarchivist/internal/mta"
	"github.com/cacack/photoarchivist/internal/progress"
	"github.com/cacack/photoarchivist/internal/writer"
	"github.com/spf13/cobra"
)

var setExifExecute bool

var setExifCmd = &cobra.Command{
	Use:   "set-exif-from-metadata <input_dir>",
	Short: "Write capture-date tags derived from Takeout sidecars into media files",
	Long: `set-exif-from-metadata walks input_dir, matches each media file to its
Google Photos Takeout JSON sidecar (or infers a date from the enclosing
folder name when no sidecar is found), and writes the capture date into
the format-appropriate EXIF/QuickTime tags.

Runs in dry-run mode by default: it reports what it would write without
touching any file. Pass --execute to actually write tags.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetExif,
}

func init() {
	setExifCmd.Flags().BoolVar(&setExifExecute, "execute", false, "write tags instead of previewing")
	rootCmd.AddCommand(setExifCmd)
}

func runSetExif(cmd *cobra.Command, args []string) error {
	inputDir := args[0]
	if _, err := os.Stat(inputDir); os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	tool, err := mta.New()
	if err != nil {
		return err
	}
	defer tool.Close()

	return setExifWithTool(inputDir, tool)
}

// setExifWithTool holds the body of runSetExif behind an injected Tool,
// so tests can drive the full scan/write/summarize flow against an
// mta.Mock instead of a real exiftool subprocess.
func setExifWithTool(inputDir string, tool mta.Tool) error {
	cfg, err := resolvedConfig(inputDir, "", setExifExecute)
	if err != nil {
		return err
	}

	if !cfg.Execute {
		fmt.Println("DRY RUN - no files will be modified (pass --execute to write tags)")
	}

	files, err := collectMediaFiles(inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No media files found")
		return nil
	}
	fmt.Printf("Found %d media files\n", len(files))

	w := writer.New(tool, !cfg.Execute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal. Canceling...")
		cancel()
	}()

	reporter := progress.New("Writing metadata", len(files), cfg.Verbose > 0)

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	pool := pond.New(workers, len(files))

	go func() {
		<-ctx.Done()
		pool.StopAndWait()
	}()

	for _, f := range files {
		f := f
		select {
		case <-ctx.Done():
			pool.StopAndWait()
			reporter.Finish()
			return fmt.Errorf("processing canceled by user")
		default:
		}

		pool.Submit(func() {
			select {
			case <-ctx.Done():
				return
			default:
			}

			class := container.ClassFromFile(f, filepath.Ext(f))
			result := w.Write(f, class)
			reporter.Increment(result.Outcome.String())

			if cfg.Verbose > 0 {
				verb := "Would write"
				if cfg.Execute {
					verb = "Wrote"
				}
				fmt.Printf("%s (%s, %s): %s\n", verb, result.Outcome, result.Provenance, f)
			}
		})
	}

	pool.StopAndWait()
	reporter.Finish()

	if ctx.Err() != nil {
		return fmt.Errorf("processing canceled by user")
	}

	progress.PrintSummary(os.Stdout, "Summary:", reporter.Counts())
	return nil
}

// collectMediaFiles walks dir recursively and returns every file whose
// extension belongs to the Mover/Writer's movable set.
func collectMediaFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if container.IsMovable(filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return files, nil
}
