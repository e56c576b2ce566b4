package sqlite

import (
	"encoding/binary"
	"fmt"
)

// beUint16 converts a big-endian 2-byte slice into an unsigned integer.
func beUint16(b []byte) (uint16, error) {
	if len(b) != 2 {
		return 0, fmt.Errorf("%w: expected 2 bytes, got %d", ErrShortBuffer, len(b))
	}
	return binary.BigEndian.Uint16(b), nil
}

// beUint32 converts a big-endian 4-byte slice into an unsigned integer.
func beUint32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("%w: expected 4 bytes, got %d", ErrShortBuffer, len(b))
	}
	return binary.BigEndian.Uint32(b), nil
}
