package sidecar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSidecar(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ParsesUnixTimestamp(t *testing.T) {
	dir := t.TempDir()
	path := writeSidecar(t, dir, "a.json", `{"photoTakenTime":{"timestamp":"1609459200"}}`)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1609459200, 0).Local(), got)
}

func TestLoad_EpochIsAValidTimestamp(t *testing.T) {
	dir := t.TempDir()
	path := writeSidecar(t, dir, "a.json", `{"photoTakenTime":{"timestamp":"0"}}`)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Unix(0, 0).Local(), got)
}

func TestLoad_MissingTimestampIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := writeSidecar(t, dir, "a.json", `{"title":"IMG_1234.jpg"}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_NonNumericTimestampIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := writeSidecar(t, dir, "a.json", `{"photoTakenTime":{"timestamp":"not-a-number"}}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedJSONIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := writeSidecar(t, dir, "a.json", `{not json`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
