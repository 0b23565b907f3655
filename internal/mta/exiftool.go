package mta

import (
	"fmt"

	exiftool "github.com/barasher/go-exiftool"
)

// ExifTool is the production Tool backed by a single long-lived
// go-exiftool process, the same library and calling convention the
// teacher repo's internal/metadata and internal/rename packages use.
type ExifTool struct {
	et *exiftool.Exiftool
}

// New starts a fresh exiftool process and returns a Tool wrapping it.
func New() (*ExifTool, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExifToolNotFound, err)
	}
	return &ExifTool{et: et}, nil
}

func (e *ExifTool) Close() error {
	if e.et == nil {
		return nil
	}
	return e.et.Close()
}

func (e *ExifTool) ReadTag(path, tag string) (string, error) {
	fields, err := e.extract(path)
	if err != nil {
		return "", err
	}
	raw, ok := fields[tag]
	if !ok {
		return "", nil
	}
	str, ok := raw.(string)
	if !ok {
		return fmt.Sprintf("%v", raw), nil
	}
	return str, nil
}

func (e *ExifTool) ReadTags(path string, tags []string) (map[string]string, error) {
	fields, err := e.extract(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(tags))
	for _, tag := range tags {
		raw, ok := fields[tag]
		if !ok {
			continue
		}
		if str, ok := raw.(string); ok {
			result[tag] = str
		} else {
			result[tag] = fmt.Sprintf("%v", raw)
		}
	}
	return result, nil
}

func (e *ExifTool) WriteTags(path string, tags map[string]string) error {
	fileInfos := e.et.ExtractMetadata(path)
	if len(fileInfos) == 0 {
		return fmt.Errorf("mta: no metadata returned for %s", path)
	}
	fm := fileInfos[0]
	if fm.Err != nil {
		return fmt.Errorf("mta: extract before write %s: %w", path, fm.Err)
	}

	for tag, value := range tags {
		fm.SetString(tag, value)
	}

	batch := []exiftool.FileMetadata{fm}
	e.et.WriteMetadata(batch)
	if batch[0].Err != nil {
		return fmt.Errorf("mta: write %s: %w", path, batch[0].Err)
	}
	return nil
}

func (e *ExifTool) extract(path string) (map[string]interface{}, error) {
	fileInfos := e.et.ExtractMetadata(path)
	if len(fileInfos) == 0 {
		return nil, fmt.Errorf("mta: no metadata returned for %s", path)
	}
	fi := fileInfos[0]
	if fi.Err != nil {
		return nil, fmt.Errorf("mta: read %s: %w", path, fi.Err)
	}
	return fi.Fields, nil
}
