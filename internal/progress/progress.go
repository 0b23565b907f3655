// Package progress is a shared, thread-safe counter abstraction driving
// a single live progress line during scans and a final summary table at
// completion.
package progress

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter tracks counters keyed by outcome name and drives a single
// terminal progress line, refreshed at a bounded rate so that per-file
// processing never produces per-file console output.
type Reporter struct {
	mu       sync.Mutex
	counters map[string]int64

	bar     *progressbar.ProgressBar
	verbose bool
}

// New creates a Reporter for a run of total items. When verbose is true
// the live bar is suppressed in favor of per-file diagnostic lines
// printed by the caller.
func New(description string, total int, verbose bool) *Reporter {
	r := &Reporter{
		counters: make(map[string]int64),
		verbose:  verbose,
	}

	if !verbose {
		r.bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionThrottle(200*time.Millisecond),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(os.Stderr, "\n")
			}),
		)
	}

	return r
}

// Increment records one occurrence of outcome and advances the live line
// by one item. Safe for concurrent use by multiple pool workers.
func (r *Reporter) Increment(outcome string) {
	r.mu.Lock()
	r.counters[outcome]++
	r.mu.Unlock()

	if r.bar != nil {
		r.bar.Add(1)
	}
}

// Finish completes the live line, if one is being shown.
func (r *Reporter) Finish() {
	if r.bar != nil {
		r.bar.Finish()
	}
}

// Counts returns a snapshot of every counter recorded so far.
func (r *Reporter) Counts() map[string]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int64, len(r.counters))
	for k, v := range r.counters {
		out[k] = v
	}
	return out
}

// PrintSummary renders a one-block summary table listing every non-zero
// counter, sorted by name for deterministic output.
func PrintSummary(w io.Writer, title string, counts map[string]int64) {
	fmt.Fprintf(w, "\n%s\n", title)

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if counts[name] == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-16s %d\n", name+":", counts[name])
	}
}
