// Package container classifies media files into the container families
// that determine which metadata tags are authoritative.
package container

import (
	"os"
	"strings"
)

// Class is the container family of a media file.
type Class int

const (
	Unknown Class = iota
	JPEG
	HEIC
	PNG
	TIFF
	MP4MOV3GP
	AVI
	Other
)

func (c Class) String() string {
	switch c {
	case JPEG:
		return "JPEG"
	case HEIC:
		return "HEIC"
	case PNG:
		return "PNG"
	case TIFF:
		return "TIFF"
	case MP4MOV3GP:
		return "MP4_MOV_3GP"
	case AVI:
		return "AVI"
	case Other:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// byExtension maps lowercased extensions (without the dot) to a class.
var byExtension = map[string]Class{
	"jpg":  JPEG,
	"jpeg": JPEG,
	"heic": HEIC,
	"heif": HEIC,
	"png":  PNG,
	"tif":  TIFF,
	"tiff": TIFF,
	"mp4":  MP4MOV3GP,
	"mov":  MP4MOV3GP,
	"3gp":  MP4MOV3GP,
	"avi":  AVI,
}

// MovableExtensions lists the extensions the Mover will consider: JPEG,
// JPG, TIFF, TIF, PNG, HEIC, MP4, MOV, 3GP, AVI.
var MovableExtensions = []string{
	"jpg", "jpeg", "tif", "tiff", "png", "heic", "mp4", "mov", "3gp", "avi",
}

// ClassFromExtension returns the container class implied by ext (with or
// without a leading dot). Extensions not in the known set classify as
// Other.
func ClassFromExtension(ext string) Class {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if c, ok := byExtension[ext]; ok {
		return c
	}
	return Other
}

// IsMovable reports whether ext belongs to the Mover's selection set.
func IsMovable(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, valid := range MovableExtensions {
		if ext == valid {
			return true
		}
	}
	return false
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
)

// ClassFromFile returns the container class for path, resolving the
// PNG<->JPEG mislabel that Takeout occasionally produces: the extension
// is authoritative unless the magic bytes contradict it for that
// specific pair.
func ClassFromFile(path, ext string) Class {
	declared := ClassFromExtension(ext)
	if declared != PNG && declared != JPEG {
		return declared
	}

	f, err := os.Open(path)
	if err != nil {
		return declared
	}
	defer f.Close()

	header := make([]byte, 8)
	n, err := f.Read(header)
	if err != nil || n < 3 {
		return declared
	}
	header = header[:n]

	switch {
	case n >= 8 && string(header) == string(pngMagic):
		return PNG
	case n >= 3 && string(header[:3]) == string(jpegMagic):
		return JPEG
	default:
		return declared
	}
}
