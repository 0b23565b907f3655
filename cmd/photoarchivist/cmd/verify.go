package cmd

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/alitto/pond"
	"github.com/cacack/photoarchivist/internal/mta"
	"github.com/cacack/photoarchivist/internal/progress"
	"github.com/spf13/cobra"
)

// verifyCmd is read-only: it never renames or rewrites anything. It
// reports which media files already carry a DateTimeOriginal tag and
// which would still need set-exif-from-metadata to run.
var verifyCmd = &cobra.Command{
	Use:   "verify <directory>",
	Short: "Report which media files already carry a capture-date tag",
	Long: `verify walks directory and checks whether each media file has a
DateTimeOriginal tag set. It never modifies anything: it exists to let
you confirm the results of a previous set-exif-from-metadata or
move-with-exif run.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", dir)
	}

	files, err := collectMediaFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No media files to verify")
		return nil
	}
	fmt.Printf("Verifying %d media file(s)\n\n", len(files))

	tool, err := mta.New()
	if err != nil {
		return err
	}
	defer tool.Close()

	reporter := progress.New("Verifying", len(files), verbose > 0)

	// Fewer workers than the write paths: verification reads are cheap
	// and we don't want per-file output racing the progress bar.
	workers := 4
	pool := pond.New(workers, len(files))

	var errCount int64
	for _, f := range files {
		f := f
		pool.Submit(func() {
			value, err := tool.ReadTag(f, "DateTimeOriginal")
			if err != nil {
				atomic.AddInt64(&errCount, 1)
				reporter.Increment("error")
				if verbose > 0 {
					fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", f, err)
				}
				return
			}
			if value != "" {
				reporter.Increment("dated")
				if verbose > 0 {
					fmt.Printf("OK:      %s (%s)\n", f, value)
				}
				return
			}
			reporter.Increment("undated")
			fmt.Printf("MISSING: %s\n", f)
		})
	}

	pool.StopAndWait()
	reporter.Finish()

	progress.PrintSummary(os.Stdout, "Verification summary:", reporter.Counts())

	if errCount > 0 {
		return fmt.Errorf("%d file(s) failed to verify", errCount)
	}
	return nil
}
