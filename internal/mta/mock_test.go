package mta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_SeedThenReadTag(t *testing.T) {
	m := NewMock()
	m.Seed("a.jpg", "DateTimeOriginal", "2020:01:02 03:04:05")

	value, err := m.ReadTag("a.jpg", "DateTimeOriginal")
	require.NoError(t, err)
	assert.Equal(t, "2020:01:02 03:04:05", value)
}

func TestMock_ReadTagAbsentIsEmptyNotError(t *testing.T) {
	m := NewMock()
	value, err := m.ReadTag("a.jpg", "DateTimeOriginal")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestMock_ReadTagsOmitsAbsentTags(t *testing.T) {
	m := NewMock()
	m.Seed("a.jpg", "EXIF:DateTimeOriginal", "2020:01:02 03:04:05")

	tags, err := m.ReadTags("a.jpg", []string{"EXIF:DateTimeOriginal", "EXIF:CreateDate"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"EXIF:DateTimeOriginal": "2020:01:02 03:04:05"}, tags)
}

func TestMock_WriteTagsStoresValuesAndCountsCalls(t *testing.T) {
	m := NewMock()
	err := m.WriteTags("a.jpg", map[string]string{"EXIF:DateTimeOriginal": "2020:01:02 03:04:05"})
	require.NoError(t, err)

	assert.Equal(t, 1, m.WriteCalls)
	value, _ := m.ReadTag("a.jpg", "EXIF:DateTimeOriginal")
	assert.Equal(t, "2020:01:02 03:04:05", value)
}

func TestMock_WriteTagsFailsForConfiguredPath(t *testing.T) {
	m := NewMock()
	m.FailWriteFor = "bad.jpg"

	err := m.WriteTags("bad.jpg", map[string]string{"EXIF:DateTimeOriginal": "x"})
	assert.Error(t, err)
	assert.Equal(t, 1, m.WriteCalls)
}

func TestMock_NeverWrittenUnderDryRunDiscipline(t *testing.T) {
	m := NewMock()
	// Simulates a caller that honors DryRun and never calls WriteTags.
	assert.Equal(t, 0, m.WriteCalls)
}
