package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alitto/pond"
	"github.com/cacack/photoarchivist/internal/mover"
	"github.com/cacack/photoarchivist/internal/mta"
	"github.com/cacack/photoarchivist/internal/progress"
	"github.com/spf13/cobra"
)

var moveExecute bool

var moveCmd = &cobra.Command{
	Use:   "move-with-exif <input_dir> <output_dir>",
	Short: "Move dated media files from input_dir into output_dir",
	Long: `move-with-exif scans input_dir for media files that already carry a
trustworthy capture-date tag (written by set-exif-from-metadata, or
present in the original file) and moves them into output_dir, keeping
each file's original name and resolving name collisions with a
deterministic "_N" suffix.

Files with no capture-date tag are left untouched and counted as
not-moved. Runs in dry-run mode by default; pass --execute to actually
move files.`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().BoolVar(&moveExecute, "execute", false, "move files instead of previewing")
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	inputDir, outputDir := args[0], args[1]
	if _, err := os.Stat(inputDir); os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	tool, err := mta.New()
	if err != nil {
		return err
	}
	defer tool.Close()

	return moveWithTool(inputDir, outputDir, tool)
}

// moveWithTool holds the body of runMove behind an injected Tool, so
// tests can drive the full plan/execute/summarize flow against an
// mta.Mock instead of a real exiftool subprocess.
func moveWithTool(inputDir, outputDir string, tool mta.Tool) error {
	cfg, err := resolvedConfig(inputDir, outputDir, moveExecute)
	if err != nil {
		return err
	}

	if !cfg.Execute {
		fmt.Println("DRY RUN - no files will be moved (pass --execute to move)")
	}

	m := mover.New(tool, inputDir, outputDir)
	plan, err := m.Plan()
	if err != nil {
		return err
	}

	total := len(plan.Candidates)
	fmt.Printf("Found %d movable file(s), %d not-moved (no capture date)\n", total, plan.NotMoved)
	if total == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal. Canceling...")
		cancel()
	}()

	reporter := progress.New("Moving files", total, cfg.Verbose > 0)

	duplicates := 0
	for _, c := range plan.Candidates {
		if c.Duplicate {
			duplicates++
		}
	}

	if cfg.Verbose > 0 {
		for _, c := range plan.Candidates {
			verb := "Would move"
			if cfg.Execute {
				verb = "Moving"
			}
			note := ""
			if c.CollisionSuffix > 0 {
				note = fmt.Sprintf(" (collision, suffix _%d)", c.CollisionSuffix)
			}
			if c.Duplicate {
				note += " [duplicate destination name]"
			}
			fmt.Printf("%s: %s -> %s%s\n", verb, c.Source, c.Destination, note)
		}
	}

	if !cfg.Execute {
		reporter.Finish()
		progress.PrintSummary(os.Stdout, "Summary:", map[string]int64{
			"movable":    int64(total),
			"duplicates": int64(duplicates),
			"not-moved":  int64(plan.NotMoved),
		})
		return nil
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	pool := pond.New(workers, total)

	go func() {
		<-ctx.Done()
		pool.StopAndWait()
	}()

	for _, c := range plan.Candidates {
		c := c
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

			if err := mover.Execute(c); err != nil {
				reporter.Increment("move-failed")
				if cfg.Verbose > 0 {
					fmt.Fprintf(os.Stderr, "Error moving %s: %v\n", c.Source, err)
				}
				return
			}
			reporter.Increment("moved")
		})
	}

	pool.StopAndWait()
	reporter.Finish()

	if ctx.Err() != nil {
		return fmt.Errorf("processing canceled by user")
	}

	counts := reporter.Counts()
	counts["duplicates"] = int64(duplicates)
	counts["not-moved"] = int64(plan.NotMoved)
	progress.PrintSummary(os.Stdout, "Summary:", counts)

	return nil
}
