package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "legacy", FileFormatLegacy.String())
	assert.Equal(t, "wal", FileFormatWAL.String())
	assert.Equal(t, "inaccessible", FileFormat(3).String())
	assert.Equal(t, "inaccessible", FileFormat(0).String())
}

func TestSchemaFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "format 1", SchemaFormat1.String())
	assert.Equal(t, "format 4", SchemaFormat4.String())
	assert.Equal(t, "unknown format 9", SchemaFormat(9).String())
}

func TestTextEncoding_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "UTF-8", EncodingUTF8.String())
	assert.Equal(t, "UTF-16le", EncodingUTF16LE.String())
	assert.Equal(t, "UTF-16be", EncodingUTF16BE.String())
	assert.Equal(t, "unknown encoding 4", TextEncoding(4).String())
}

func TestVacuumMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "auto", VacuumAuto.String())
	assert.Equal(t, "incremental", VacuumIncremental.String())
}

func TestLastUpdate_SQLiteVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3.49.0", LastUpdate{SQLiteVersionNumber: 3049000}.SQLiteVersion())
	assert.Equal(t, "3.7.17", LastUpdate{SQLiteVersionNumber: 3007017}.SQLiteVersion())
	assert.Equal(t, "0.0.0", LastUpdate{}.SQLiteVersion())
}
