// Package timestamp resolves a media file's capture instant from its
// Takeout sidecar or, failing that, its enclosing folder name. It never
// mutates files.
package timestamp

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cacack/photoarchivist/internal/sidecar"
)

// Provenance records which source produced a ResolvedDate. It is reported
// in summaries but never changes the value written.
type Provenance int

const (
	SidecarPrimary Provenance = iota
	SidecarSupplemental
	FolderName
)

func (p Provenance) String() string {
	switch p {
	case SidecarPrimary:
		return "sidecar-primary"
	case SidecarSupplemental:
		return "sidecar-supplemental"
	case FolderName:
		return "folder-name"
	default:
		return "unknown"
	}
}

// ResolvedDate is a capture instant tagged with its provenance.
type ResolvedDate struct {
	Instant    time.Time
	Provenance Provenance
}

// Format renders Instant in the EXIF convention: "YYYY:MM:DD HH:MM:SS".
func (r ResolvedDate) Format() string {
	return r.Instant.Format("2006:01:02 15:04:05")
}

// Resolve returns the resolved capture instant for mediaPath, or ok=false
// if neither a sidecar nor a folder name yields one. It never falls back
// to file modification time — that fallback, where it exists, lives in
// the Mover, not here.
func Resolve(mediaPath string) (ResolvedDate, bool) {
	if rd, ok := resolveFromSidecar(mediaPath); ok {
		return rd, true
	}
	return resolveFromFolderName(mediaPath)
}

type sidecarCandidate struct {
	path       string
	provenance Provenance
}

// resolveFromSidecar implements the seven-rule sidecar probe order. The
// first existing candidate wins; no further candidates are consulted.
func resolveFromSidecar(mediaPath string) (ResolvedDate, bool) {
	dir := filepath.Dir(mediaPath)
	base := filepath.Base(mediaPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	ordered := []sidecarCandidate{
		{filepath.Join(dir, base+".json"), SidecarPrimary},
		{filepath.Join(dir, stem+".json"), SidecarPrimary},
		{filepath.Join(dir, base+".supplemental-metadata.json"), SidecarSupplemental},
		{filepath.Join(dir, base+".supplemental.json"), SidecarSupplemental},
		{filepath.Join(dir, base+".supplemental-m.json"), SidecarSupplemental},
		{filepath.Join(dir, base+".supplemental-.json"), SidecarSupplemental},
	}

	for _, c := range ordered {
		if fileExists(c.path) {
			return loadSidecar(c.path, c.provenance)
		}
	}

	// Rule 7: any file matching "<stem>.<ext>.supp*.json", choosing the
	// lexicographically smallest match.
	matches, err := filepath.Glob(filepath.Join(dir, base+".supp*.json"))
	if err == nil && len(matches) > 0 {
		sort.Strings(matches)
		return loadSidecar(matches[0], SidecarSupplemental)
	}

	return ResolvedDate{}, false
}

func loadSidecar(path string, provenance Provenance) (ResolvedDate, bool) {
	instant, err := sidecar.Load(path)
	if err != nil {
		return ResolvedDate{}, false
	}
	return ResolvedDate{Instant: instant, Provenance: provenance}, true
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
