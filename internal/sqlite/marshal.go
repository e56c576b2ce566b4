package sqlite

import (
	"encoding/binary"

	"github.com/RichardKnop/sqlite3hdr/pkg/bitwise"
)

// Marshal encodes the header back into its canonical 100-byte form, so that
// unmarshalling followed by marshalling reproduces the original bytes. A
// header holding values the format cannot represent fails with the same
// semantic errors as the decoder. The incremental-vacuum flag is written as
// 0 or 1, which is what every version of SQLite stores.
func (h *Header) Marshal() ([]byte, error) {
	rawPageSize, err := encodePageSize(h.PageSize)
	if err != nil {
		return nil, err
	}

	fractions := [3]uint8{
		h.PayloadFraction.MaximumEmbedded,
		h.PayloadFraction.MinimumEmbedded,
		h.PayloadFraction.Leaf,
	}
	for i, expected := range payloadFractions {
		if fractions[i] != expected {
			return nil, &InvalidPayloadFractionError{Offset: 21 + i, Expected: expected, Actual: fractions[i]}
		}
	}

	if !h.Schema.Format.valid() {
		return nil, &InvalidSchemaFormatError{Value: uint32(h.Schema.Format)}
	}
	if !h.TextEncoding.valid() {
		return nil, &InvalidTextEncodingError{Value: uint32(h.TextEncoding)}
	}

	var largestRootPage, incrementalVacuum uint32
	if h.Vacuum != nil {
		if h.Vacuum.LargestRootPage == 0 {
			return nil, &InconsistentVacuumError{LargestRootPage: 0, IncrementalVacuum: 1}
		}
		largestRootPage = h.Vacuum.LargestRootPage
		if h.Vacuum.Mode == VacuumIncremental {
			incrementalVacuum = 1
		}
	}

	buf := make([]byte, HeaderSize)
	copy(buf[0:16], MagicHeader)
	binary.BigEndian.PutUint16(buf[16:18], rawPageSize)
	buf[18] = byte(h.FileFormatWriteVersion)
	buf[19] = byte(h.FileFormatReadVersion)
	buf[20] = h.ReservedBytesPerPage
	buf[21], buf[22], buf[23] = fractions[0], fractions[1], fractions[2]
	binary.BigEndian.PutUint32(buf[24:28], h.FileChangeCounter)
	binary.BigEndian.PutUint32(buf[28:32], h.InHeaderDatabaseSize)
	binary.BigEndian.PutUint32(buf[32:36], h.Freelist.PageIndex)
	binary.BigEndian.PutUint32(buf[36:40], h.Freelist.Count)
	binary.BigEndian.PutUint32(buf[40:44], h.Schema.Cookie)
	binary.BigEndian.PutUint32(buf[44:48], uint32(h.Schema.Format))
	binary.BigEndian.PutUint32(buf[48:52], uint32(h.DefaultPageCacheSize))
	binary.BigEndian.PutUint32(buf[52:56], largestRootPage)
	binary.BigEndian.PutUint32(buf[56:60], uint32(h.TextEncoding))
	binary.BigEndian.PutUint32(buf[60:64], h.UserVersion)
	binary.BigEndian.PutUint32(buf[64:68], incrementalVacuum)
	binary.BigEndian.PutUint32(buf[68:72], h.ApplicationID)
	// bytes 72 to 91 are the reserved region and stay zero
	binary.BigEndian.PutUint32(buf[92:96], h.LastUpdate.VersionValidFor)
	binary.BigEndian.PutUint32(buf[96:100], h.LastUpdate.SQLiteVersionNumber)

	return buf, nil
}

func encodePageSize(size uint32) (uint16, error) {
	if size == MaxPageSize {
		return 1, nil
	}
	if size < MinPageSize || size > MaxPageSize || !bitwise.IsPowerOfTwo(uint64(size)) {
		return 0, &InvalidPageSizeError{Value: size}
	}
	return uint16(size), nil
}
