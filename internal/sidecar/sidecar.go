// Package sidecar decodes the single field of a Google Takeout JSON
// sidecar that this pipeline cares about: photoTakenTime.timestamp.
package sidecar

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// document mirrors only the field we read. Extra fields in the sidecar
// (geoData, title, googlePhotosOrigin, ...) are ignored by omission.
type document struct {
	PhotoTakenTime struct {
		Timestamp string `json:"timestamp"`
	} `json:"photoTakenTime"`
}

// Load reads and parses the sidecar at path, returning the capture instant
// as local-civil time. A non-numeric or missing timestamp is reported as
// an error, not a zero time, so callers can distinguish "no result from
// sidecar" from "timestamp is the epoch".
func Load(path string) (time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("read sidecar %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return time.Time{}, fmt.Errorf("parse sidecar %s: %w", path, err)
	}

	ts := doc.PhotoTakenTime.Timestamp
	if ts == "" {
		return time.Time{}, fmt.Errorf("sidecar %s has no photoTakenTime.timestamp", path)
	}

	seconds, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("sidecar %s timestamp %q is not numeric: %w", path, ts, err)
	}

	return time.Unix(seconds, 0).Local(), nil
}
