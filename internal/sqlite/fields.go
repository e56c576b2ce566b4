package sqlite

import (
	"fmt"
)

// FileFormat is the file format write or read version stored at offsets 18
// and 19. Current versions of SQLite write 1 for rollback journalling and 2
// for WAL journalling. Any other value means the database cannot be read or
// written by a current library, which the format treats as a valid state of
// the file rather than corruption. The raw byte is preserved so that a
// header re-encodes bit-for-bit.
type FileFormat uint8

const (
	FileFormatLegacy FileFormat = 1
	FileFormatWAL    FileFormat = 2
)

// Inaccessible reports whether the version byte is outside the range current
// versions of SQLite can handle.
func (f FileFormat) Inaccessible() bool {
	return f != FileFormatLegacy && f != FileFormatWAL
}

func (f FileFormat) String() string {
	switch f {
	case FileFormatLegacy:
		return "legacy"
	case FileFormatWAL:
		return "wal"
	default:
		return "inaccessible"
	}
}

// SchemaFormat is the version number of the high-level SQL formatting, as
// opposed to the low-level b-tree formatting covered by FileFormat. Only
// formats 1 to 4 are defined; anything else fails the decode.
type SchemaFormat uint32

const (
	SchemaFormat1 SchemaFormat = iota + 1
	SchemaFormat2
	SchemaFormat3
	SchemaFormat4
)

func (f SchemaFormat) valid() bool {
	return f >= SchemaFormat1 && f <= SchemaFormat4
}

func (f SchemaFormat) String() string {
	if !f.valid() {
		return fmt.Sprintf("unknown format %d", uint32(f))
	}
	return fmt.Sprintf("format %d", uint32(f))
}

// TextEncoding determines the encoding of all text strings stored in the
// database. No values other than the three below are allowed.
type TextEncoding uint32

const (
	EncodingUTF8    TextEncoding = 1
	EncodingUTF16LE TextEncoding = 2
	EncodingUTF16BE TextEncoding = 3
)

func (e TextEncoding) valid() bool {
	return e >= EncodingUTF8 && e <= EncodingUTF16BE
}

func (e TextEncoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF16LE:
		return "UTF-16le"
	case EncodingUTF16BE:
		return "UTF-16be"
	default:
		return fmt.Sprintf("unknown encoding %d", uint32(e))
	}
}

// VacuumMode selects between the two vacuum strategies of a database that
// keeps pointer-map pages.
type VacuumMode int

const (
	VacuumAuto VacuumMode = iota + 1
	VacuumIncremental
)

func (m VacuumMode) String() string {
	if m == VacuumIncremental {
		return "incremental"
	}
	return "auto"
}

// Payload holds the three payload fraction bytes at offsets 21 to 23. They
// were meant as tunable b-tree parameters but ended up fixed at 64, 32 and
// 32, and any other value fails the decode.
type Payload struct {
	MaximumEmbedded uint8
	MinimumEmbedded uint8
	Leaf            uint8
}

// Freelist points at the linked list of unused pages in the database file.
// A zero PageIndex means the freelist is empty.
type Freelist struct {
	PageIndex uint32
	Count     uint32
}

func (f Freelist) Empty() bool {
	return f.PageIndex == 0
}

// Schema pairs the schema cookie, incremented on every schema change, with
// the schema format number.
type Schema struct {
	Cookie uint32
	Format SchemaFormat
}

// Vacuum describes a database with pointer-map pages. It is only present
// when the largest root b-tree page number at offset 52 is non-zero, in
// which case the flag at offset 64 selects the mode.
type Vacuum struct {
	LargestRootPage uint32
	Mode            VacuumMode
}

// LastUpdate records which SQLite library most recently modified the file
// and at which value of the change counter it did so.
type LastUpdate struct {
	VersionValidFor     uint32
	SQLiteVersionNumber uint32
}

// SQLiteVersion renders the encoded version number, stored as
// X*1000000 + Y*1000 + Z, in its usual X.Y.Z form.
func (u LastUpdate) SQLiteVersion() string {
	n := u.SQLiteVersionNumber
	return fmt.Sprintf("%d.%d.%d", n/1000000, n/1000%1000, n%1000)
}
