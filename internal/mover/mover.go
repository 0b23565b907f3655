// Package mover scans a source tree, selects files whose metadata
// already carries a trustworthy capture date, computes collision-free
// destination paths, and performs or simulates the moves.
package mover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cacack/photoarchivist/internal/container"
	"github.com/cacack/photoarchivist/internal/mta"
)

// dateTags are read in priority order; the first non-empty value promotes
// a file to movable.
var dateTags = []string{
	"EXIF:DateTimeOriginal",
	"EXIF:CreateDate",
	"XMP:DateCreated",
}

// Candidate is a single planned move.
type Candidate struct {
	Source          string
	Destination     string
	CollisionSuffix int

	// Duplicate records whether Destination's first-choice path (before
	// any _N suffix) already existed on disk at scan time.
	Duplicate bool
}

// PlanResult is the outcome of Plan: a dry-run-safe description of
// what a run would do.
type PlanResult struct {
	Candidates []Candidate
	NotMoved   int // files with no capture-date tag
}

// Mover scans srcDir for movable, dated files and plans their moves into
// destDir.
type Mover struct {
	Tool    mta.Tool
	SrcDir  string
	DestDir string
}

// New constructs a Mover.
func New(tool mta.Tool, srcDir, destDir string) *Mover {
	return &Mover{Tool: tool, SrcDir: srcDir, DestDir: destDir}
}

// Plan performs selection and the single-threaded collision reservation
// pass over the source tree's pre-order walk. It only walks directories,
// stats paths and reads tags through Tool; it never writes — safe to call
// under dry-run.
func (m *Mover) Plan() (PlanResult, error) {
	files, err := walkSource(m.SrcDir, m.DestDir)
	if err != nil {
		return PlanResult{}, fmt.Errorf("mover: walk %s: %w", m.SrcDir, err)
	}

	result := PlanResult{}
	claims := newClaimTable()

	for _, src := range files {
		dateValue := m.captureDate(src)
		if dateValue == "" {
			result.NotMoved++
			continue
		}

		base := filepath.Base(src)
		initial := filepath.Join(m.DestDir, base)
		duplicate := fileExists(initial)

		dest, suffix := reserve(claims, m.DestDir, base)
		result.Candidates = append(result.Candidates, Candidate{
			Source:          src,
			Destination:     dest,
			CollisionSuffix: suffix,
			Duplicate:       duplicate,
		})
	}

	return result, nil
}

// captureDate returns the first non-empty capture-date tag value for src,
// including the PNG/AVI-only FileModifyDate fallback.
func (m *Mover) captureDate(src string) string {
	for _, tag := range dateTags {
		value, err := m.Tool.ReadTag(src, tag)
		if err == nil && value != "" {
			return value
		}
	}

	class := container.ClassFromExtension(filepath.Ext(src))
	if class == container.PNG || class == container.AVI {
		if value, err := m.Tool.ReadTag(src, "FileModifyDate"); err == nil && value != "" {
			return value
		}
	}

	return ""
}

// reserve finds a collision-free destination path for base under destDir,
// claiming it in claims. The smallest positive suffix k such that
// "<stem>_<k><ext>" is unclaimed is used once the bare name collides.
func reserve(claims *claimTable, destDir, base string) (string, int) {
	initial := filepath.Join(destDir, base)
	if claims.isFree(initial) {
		claims.claim(initial)
		return initial, 0
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for k := 1; ; k++ {
		candidate := filepath.Join(destDir, fmt.Sprintf("%s_%d%s", stem, k, ext))
		if claims.isFree(candidate) {
			claims.claim(candidate)
			return candidate, k
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Execute performs a single planned move: rename-if-same-filesystem,
// falling back to copy-then-delete only when rename fails across devices.
// Callers are responsible for never calling Execute under dry-run.
func Execute(c Candidate) error {
	if err := os.MkdirAll(filepath.Dir(c.Destination), 0o755); err != nil {
		return fmt.Errorf("mover: create destination directory: %w", err)
	}

	if err := os.Rename(c.Source, c.Destination); err == nil {
		return nil
	} else if !isCrossDevice(err) {
		return fmt.Errorf("mover: rename %s -> %s: %w", c.Source, c.Destination, err)
	}

	if err := copyFile(c.Source, c.Destination); err != nil {
		return fmt.Errorf("mover: copy %s -> %s: %w", c.Source, c.Destination, err)
	}
	if err := os.Remove(c.Source); err != nil {
		return fmt.Errorf("mover: remove source after copy %s: %w", c.Source, err)
	}
	return nil
}
