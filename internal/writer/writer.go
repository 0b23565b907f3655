// Package writer, given a media file and a resolved capture instant,
// writes the correct format-specific tag set for that file's container
// class, idempotently.
package writer

import (
	"github.com/cacack/photoarchivist/internal/container"
	"github.com/cacack/photoarchivist/internal/mta"
	"github.com/cacack/photoarchivist/internal/timestamp"
)

// Outcome is the per-file classification reported to the progress
// reporter.
type Outcome int

const (
	Written Outcome = iota
	AlreadyDated
	NoDateSource
	WriteFailed
)

func (o Outcome) String() string {
	switch o {
	case Written:
		return "written"
	case AlreadyDated:
		return "already-dated"
	case NoDateSource:
		return "no-date-source"
	case WriteFailed:
		return "write-failed"
	default:
		return "unknown"
	}
}

// Result carries the classification plus enough detail for a verbose
// per-file line, without forcing callers back through Tool to learn what
// happened.
type Result struct {
	Outcome    Outcome
	Provenance timestamp.Provenance
	Tags       map[string]string
}

// Writer writes capture-date tags via Tool, honoring DryRun: in dry-run
// mode it computes the target tag set and reports it but never calls
// WriteTags.
type Writer struct {
	Tool   mta.Tool
	DryRun bool
}

// New constructs a Writer bound to tool.
func New(tool mta.Tool, dryRun bool) *Writer {
	return &Writer{Tool: tool, DryRun: dryRun}
}

// Write processes a single media file of the given container class.
func (w *Writer) Write(mediaPath string, class container.Class) Result {
	existing, _ := w.Tool.ReadTag(mediaPath, "DateTimeOriginal")
	if existing != "" {
		return Result{Outcome: AlreadyDated}
	}

	resolved, ok := timestamp.Resolve(mediaPath)
	if !ok {
		return Result{Outcome: NoDateSource}
	}

	tags := tagSetFor(class, resolved.Format())

	if w.DryRun {
		return Result{Outcome: Written, Provenance: resolved.Provenance, Tags: tags}
	}

	if err := w.Tool.WriteTags(mediaPath, tags); err != nil {
		if class == container.AVI {
			fallback := map[string]string{"FileModifyDate": resolved.Format()}
			if fbErr := w.Tool.WriteTags(mediaPath, fallback); fbErr == nil {
				return Result{Outcome: Written, Provenance: resolved.Provenance, Tags: fallback}
			}
		}
		return Result{Outcome: WriteFailed}
	}

	return Result{Outcome: Written, Provenance: resolved.Provenance, Tags: tags}
}

// tagSetFor returns the container-class-specific tag set, all set to the
// same formatted value.
func tagSetFor(class container.Class, value string) map[string]string {
	switch class {
	case container.JPEG, container.HEIC:
		return withValue(value, "EXIF:DateTimeOriginal", "EXIF:CreateDate", "EXIF:ModifyDate")
	case container.PNG:
		return withValue(value, "EXIF:DateTimeOriginal", "EXIF:CreateDate", "EXIF:ModifyDate", "XMP:DateCreated")
	case container.MP4MOV3GP:
		return withValue(value,
			"QuickTime:CreateDate", "QuickTime:ModifyDate",
			"QuickTime:TrackCreateDate", "QuickTime:MediaCreateDate",
			"Keys:CreationDate")
	case container.AVI:
		return withValue(value, "DateTimeOriginal", "CreateDate", "ModifyDate")
	default: // TIFF, Other: best effort
		return withValue(value, "EXIF:DateTimeOriginal", "EXIF:CreateDate", "EXIF:ModifyDate")
	}
}

func withValue(value string, tags ...string) map[string]string {
	out := make(map[string]string, len(tags))
	for _, tag := range tags {
		out[tag] = value
	}
	return out
}
