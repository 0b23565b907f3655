package timestamp

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, path string, unixSeconds int64) {
	t.Helper()
	body := `{"photoTakenTime":{"timestamp":"` + strconv.FormatInt(unixSeconds, 10) + `"}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestResolve_PrefersExactNameOverStemOnlySidecar(t *testing.T) {
	dir := t.TempDir()
	media := filepath.Join(dir, "IMG_1234.jpg")
	require.NoError(t, os.WriteFile(media, []byte("x"), 0o644))

	writeJSON(t, media+".json", 1609459200)                       // rule 1: IMG_1234.jpg.json
	writeJSON(t, filepath.Join(dir, "IMG_1234.json"), 1577836800) // rule 2

	rd, ok := Resolve(media)
	require.True(t, ok)
	assert.Equal(t, SidecarPrimary, rd.Provenance)
	assert.Equal(t, time.Unix(1609459200, 0).Local(), rd.Instant)
}

func TestResolve_FallsBackToStemOnlySidecar(t *testing.T) {
	dir := t.TempDir()
	media := filepath.Join(dir, "IMG_1234.jpg")
	require.NoError(t, os.WriteFile(media, []byte("x"), 0o644))
	writeJSON(t, filepath.Join(dir, "IMG_1234.json"), 1577836800)

	rd, ok := Resolve(media)
	require.True(t, ok)
	assert.Equal(t, SidecarPrimary, rd.Provenance)
	assert.Equal(t, time.Unix(1577836800, 0).Local(), rd.Instant)
}

func TestResolve_SupplementalMetadataSuffix(t *testing.T) {
	dir := t.TempDir()
	media := filepath.Join(dir, "IMG_1234.jpg")
	require.NoError(t, os.WriteFile(media, []byte("x"), 0o644))
	writeJSON(t, media+".supplemental-metadata.json", 1609459200)

	rd, ok := Resolve(media)
	require.True(t, ok)
	assert.Equal(t, SidecarSupplemental, rd.Provenance)
}

func TestResolve_GlobFallbackPicksLexicallySmallest(t *testing.T) {
	dir := t.TempDir()
	media := filepath.Join(dir, "IMG_1234.jpg")
	require.NoError(t, os.WriteFile(media, []byte("x"), 0o644))
	writeJSON(t, media+".suppb.json", 2000000000)
	writeJSON(t, media+".suppa.json", 1000000000)

	rd, ok := Resolve(media)
	require.True(t, ok)
	assert.Equal(t, SidecarSupplemental, rd.Provenance)
	assert.Equal(t, time.Unix(1000000000, 0).Local(), rd.Instant)
}

func TestResolve_FallsBackToFolderNameWhenNoSidecar(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "2021-05-06")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	media := filepath.Join(dir, "IMG_1234.jpg")
	require.NoError(t, os.WriteFile(media, []byte("x"), 0o644))

	rd, ok := Resolve(media)
	require.True(t, ok)
	assert.Equal(t, FolderName, rd.Provenance)
	assert.Equal(t, 2021, rd.Instant.Year())
	assert.Equal(t, time.Month(5), rd.Instant.Month())
	assert.Equal(t, 6, rd.Instant.Day())
}

func TestResolve_NoSourceAtAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "random-album-name")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	media := filepath.Join(dir, "IMG_1234.jpg")
	require.NoError(t, os.WriteFile(media, []byte("x"), 0o644))

	_, ok := Resolve(media)
	assert.False(t, ok)
}

func TestResolvedDate_FormatUsesExifLayout(t *testing.T) {
	rd := ResolvedDate{Instant: time.Date(2021, 5, 6, 7, 8, 9, 0, time.Local)}
	assert.Equal(t, "2021:05:06 07:08:09", rd.Format())
}
