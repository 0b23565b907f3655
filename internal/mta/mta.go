// Package mta is a thin, synchronous wrapper over an external metadata
// command-line utility (go-exiftool in this implementation). Every other
// component reads and writes media metadata exclusively through the
// Tool interface so that the external-process dependency can be swapped
// for a native library, or a mock in tests, without touching its callers.
package mta

import "errors"

// ErrExifToolNotFound is returned by New when the underlying exiftool
// binary cannot be located or started.
var ErrExifToolNotFound = errors.New("mta: exiftool not available")

// Tool is the full surface callers are allowed to use to touch media
// metadata. It never has a dry-run mode of its own; dry-run discipline
// is enforced by callers before they ever call WriteTags.
type Tool interface {
	// ReadTag returns tag's textual value, or empty if the tag is absent.
	// A non-nil error indicates a non-fatal diagnostic: the caller should
	// treat the value as empty and count the failure, not abort the run.
	ReadTag(path, tag string) (string, error)

	// ReadTags is a batched ReadTag, returning one entry per requested tag
	// that was present. Tags absent from the file are omitted from the
	// map, not present with an empty value.
	ReadTags(path string, tags []string) (map[string]string, error)

	// WriteTags atomically writes the given tag-value pairs to path.
	// Returns a non-nil error iff the underlying tool did not exit
	// cleanly; on error no assumption should be made about which, if any,
	// of the tags were written.
	WriteTags(path string, tags map[string]string) error

	// Close releases any resources (subprocess, buffers) held by the
	// adapter. Safe to call on a Tool that was never used.
	Close() error
}
