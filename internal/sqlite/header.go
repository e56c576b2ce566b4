package sqlite

import (
	"fmt"

	"github.com/RichardKnop/sqlite3hdr/pkg/bitwise"
)

// HeaderSize is the size of the database file header. The header occupies
// the first 100 bytes of page 1, the remainder of that page is used as an
// ordinary b-tree page.
const HeaderSize = 100

// MagicHeader is the UTF-8 string "SQLite format 3" including the nul
// terminator. Every valid database file begins with these 16 bytes.
const MagicHeader = "SQLite format 3\x00"

const (
	MinPageSize = 512
	MaxPageSize = 65536
)

// The three payload fraction bytes at offsets 21 to 23 are fixed at these
// values, any deviation is a malformed header.
var payloadFractions = [3]uint8{64, 32, 32}

// Header is the decoded form of the 100-byte database file header. It is
// built atomically by UnmarshalHeader and never mutated afterwards.
//
//	Offset  Size  Description
//	------  ----  -----------------------------------------------
//	  0      16   Magic header string "SQLite format 3\000"
//	 16       2   Page size (the value 1 encodes 65536)
//	 18       1   File format write version
//	 19       1   File format read version
//	 20       1   Reserved bytes at the end of each page
//	 21       3   Payload fractions, fixed at 64, 32, 32
//	 24       4   File change counter
//	 28       4   In-header database size in pages
//	 32       4   First freelist trunk page
//	 36       4   Number of freelist pages
//	 40       4   Schema cookie
//	 44       4   Schema format number, 1 to 4
//	 48       4   Default page cache size (signed)
//	 52       4   Largest root b-tree page, 0 unless vacuum is on
//	 56       4   Text encoding, 1 to 3
//	 60       4   User version
//	 64       4   Incremental-vacuum flag
//	 68       4   Application ID
//	 72      20   Reserved for expansion, must be zero
//	 92       4   Version-valid-for number
//	 96       4   SQLite version number
//
// All multi-byte integers are big-endian.
type Header struct {
	PageSize uint32

	FileFormatWriteVersion FileFormat
	FileFormatReadVersion  FileFormat

	ReservedBytesPerPage uint8

	PayloadFraction Payload

	FileChangeCounter    uint32
	InHeaderDatabaseSize uint32

	Freelist Freelist

	Schema Schema

	// DefaultPageCacheSize is a suggestion only, its absolute value is the
	// suggested cache size in pages. See SuggestedPageCacheSize.
	DefaultPageCacheSize int32

	TextEncoding TextEncoding

	UserVersion uint32

	// Vacuum is nil unless the database keeps pointer-map pages.
	Vacuum *Vacuum

	ApplicationID uint32

	LastUpdate LastUpdate
}

// UnmarshalHeader decodes the first 100 bytes of buf into h. Longer buffers
// are allowed and only the first 100 bytes are consumed, a shorter buffer
// always fails with ErrShortBuffer. Decoding is all or nothing, on error h
// is left untouched.
func UnmarshalHeader(buf []byte, h *Header) error {
	if len(buf) < HeaderSize {
		return fmt.Errorf("%w: header requires %d bytes, got %d", ErrShortBuffer, HeaderSize, len(buf))
	}

	if string(buf[0:16]) != MagicHeader {
		e := &InvalidMagicError{}
		copy(e.Actual[:], buf[0:16])
		return e
	}

	rawPageSize, err := beUint16(buf[16:18])
	if err != nil {
		return err
	}
	pageSize, err := decodePageSize(rawPageSize)
	if err != nil {
		return err
	}

	writeVersion := FileFormat(buf[18])
	readVersion := FileFormat(buf[19])
	reservedBytes := buf[20]

	for i, expected := range payloadFractions {
		if buf[21+i] != expected {
			return &InvalidPayloadFractionError{Offset: 21 + i, Expected: expected, Actual: buf[21+i]}
		}
	}

	fileChangeCounter, err := beUint32(buf[24:28])
	if err != nil {
		return err
	}
	inHeaderDatabaseSize, err := beUint32(buf[28:32])
	if err != nil {
		return err
	}
	freelistPage, err := beUint32(buf[32:36])
	if err != nil {
		return err
	}
	freelistCount, err := beUint32(buf[36:40])
	if err != nil {
		return err
	}
	schemaCookie, err := beUint32(buf[40:44])
	if err != nil {
		return err
	}

	schemaFormat, err := beUint32(buf[44:48])
	if err != nil {
		return err
	}
	if !SchemaFormat(schemaFormat).valid() {
		return &InvalidSchemaFormatError{Value: schemaFormat}
	}

	pageCacheSize, err := beUint32(buf[48:52])
	if err != nil {
		return err
	}
	largestRootPage, err := beUint32(buf[52:56])
	if err != nil {
		return err
	}

	encoding, err := beUint32(buf[56:60])
	if err != nil {
		return err
	}
	if !TextEncoding(encoding).valid() {
		return &InvalidTextEncodingError{Value: encoding}
	}

	userVersion, err := beUint32(buf[60:64])
	if err != nil {
		return err
	}
	incrementalVacuum, err := beUint32(buf[64:68])
	if err != nil {
		return err
	}
	applicationID, err := beUint32(buf[68:72])
	if err != nil {
		return err
	}

	for i, b := range buf[72:92] {
		if b != 0 {
			return &ReservedBytesError{Offset: 72 + i, Value: b}
		}
	}

	versionValidFor, err := beUint32(buf[92:96])
	if err != nil {
		return err
	}
	sqliteVersion, err := beUint32(buf[96:100])
	if err != nil {
		return err
	}

	// Cross-field check once all raw fields are extracted, see vacuumState.
	vacuum, err := vacuumState(largestRootPage, incrementalVacuum)
	if err != nil {
		return err
	}

	*h = Header{
		PageSize:               pageSize,
		FileFormatWriteVersion: writeVersion,
		FileFormatReadVersion:  readVersion,
		ReservedBytesPerPage:   reservedBytes,
		PayloadFraction: Payload{
			MaximumEmbedded: buf[21],
			MinimumEmbedded: buf[22],
			Leaf:            buf[23],
		},
		FileChangeCounter:    fileChangeCounter,
		InHeaderDatabaseSize: inHeaderDatabaseSize,
		Freelist: Freelist{
			PageIndex: freelistPage,
			Count:     freelistCount,
		},
		Schema: Schema{
			Cookie: schemaCookie,
			Format: SchemaFormat(schemaFormat),
		},
		DefaultPageCacheSize: int32(pageCacheSize),
		TextEncoding:         TextEncoding(encoding),
		UserVersion:          userVersion,
		Vacuum:               vacuum,
		ApplicationID:        applicationID,
		LastUpdate: LastUpdate{
			VersionValidFor:     versionValidFor,
			SQLiteVersionNumber: sqliteVersion,
		},
	}

	return nil
}

// decodePageSize expands the raw two-byte page size into its logical value.
// The value 65536 does not fit in two bytes, the format stores it as a
// literal 1 instead.
func decodePageSize(raw uint16) (uint32, error) {
	if raw == 1 {
		return MaxPageSize, nil
	}
	size := uint32(raw)
	if size < MinPageSize || !bitwise.IsPowerOfTwo(uint64(size)) {
		return 0, &InvalidPageSizeError{Value: size}
	}
	return size, nil
}

// vacuumState combines the largest root b-tree page number at offset 52 with
// the incremental-vacuum flag at offset 64. If the page number is zero the
// file has no pointer-map pages and the flag must be zero as well. Otherwise
// the flag selects between auto and incremental vacuum.
func vacuumState(largestRootPage, incrementalVacuum uint32) (*Vacuum, error) {
	if largestRootPage == 0 {
		if incrementalVacuum != 0 {
			return nil, &InconsistentVacuumError{
				LargestRootPage:   largestRootPage,
				IncrementalVacuum: incrementalVacuum,
			}
		}
		return nil, nil
	}
	mode := VacuumAuto
	if incrementalVacuum != 0 {
		mode = VacuumIncremental
	}
	return &Vacuum{LargestRootPage: largestRootPage, Mode: mode}, nil
}

// UsableSize is the page size less the reserved bytes at the end of each
// page. The format does not allow it to drop below 480, a constraint left to
// callers since it spans two independent fields.
func (h *Header) UsableSize() uint32 {
	return h.PageSize - uint32(h.ReservedBytesPerPage)
}

// InHeaderDatabaseSizeValid reports whether the in-header database size can
// be trusted. Legacy writers update neither the size nor the
// version-valid-for number, so a counter mismatch marks the size as stale
// and callers should fall back to the actual file size.
func (h *Header) InHeaderDatabaseSizeValid() bool {
	return h.InHeaderDatabaseSize != 0 && h.FileChangeCounter == h.LastUpdate.VersionValidFor
}

// FreelistConsistent reports whether the freelist head pointer and page
// count agree on the freelist being empty. The format documentation does not
// make a mismatch a hard error, so the decoder surfaces it as an advisory
// check only.
func (h *Header) FreelistConsistent() bool {
	return (h.Freelist.PageIndex == 0) == (h.Freelist.Count == 0)
}

// SuggestedPageCacheSize is the magnitude of the signed default page cache
// size field.
func (h *Header) SuggestedPageCacheSize() uint32 {
	if h.DefaultPageCacheSize < 0 {
		return uint32(-int64(h.DefaultPageCacheSize))
	}
	return uint32(h.DefaultPageCacheSize)
}
