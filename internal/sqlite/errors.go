package sqlite

import (
	"errors"
	"fmt"
)

// ErrShortBuffer indicates the buffer lacked the bytes required for a field.
// It is kept distinct from the semantic validation errors below so callers
// can tell a truncated buffer from a well-formed but invalid header.
var ErrShortBuffer = errors.New("sqlite: short buffer")

// InvalidMagicError is returned when the first 16 bytes of the file do not
// spell out the magic header string.
type InvalidMagicError struct {
	Actual [16]byte
}

func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf("sqlite: invalid magic header %q, expected %q", e.Actual[:], MagicHeader)
}

// InvalidPageSizeError is returned when the page size is not a power of two
// between 512 and 65536.
type InvalidPageSizeError struct {
	Value uint32
}

func (e *InvalidPageSizeError) Error() string {
	return fmt.Sprintf("sqlite: invalid page size %d, must be a power of two between %d and %d",
		e.Value, MinPageSize, MaxPageSize)
}

// InvalidPayloadFractionError is returned when one of the three payload
// fraction bytes differs from its fixed legal value.
type InvalidPayloadFractionError struct {
	Offset   int
	Expected uint8
	Actual   uint8
}

func (e *InvalidPayloadFractionError) Error() string {
	return fmt.Sprintf("sqlite: invalid payload fraction %d at offset %d, must be %d",
		e.Actual, e.Offset, e.Expected)
}

// InvalidSchemaFormatError is returned for a schema format number outside 1 to 4.
type InvalidSchemaFormatError struct {
	Value uint32
}

func (e *InvalidSchemaFormatError) Error() string {
	return fmt.Sprintf("sqlite: invalid schema format %d, must be between 1 and 4", e.Value)
}

// InvalidTextEncodingError is returned for a text encoding outside 1 to 3.
type InvalidTextEncodingError struct {
	Value uint32
}

func (e *InvalidTextEncodingError) Error() string {
	return fmt.Sprintf("sqlite: invalid text encoding %d, must be 1 (UTF-8), 2 (UTF-16le) or 3 (UTF-16be)", e.Value)
}

// InconsistentVacuumError is returned when the incremental-vacuum flag is set
// while the largest root b-tree page number is zero. The format requires the
// flag to be zero whenever the page number is.
type InconsistentVacuumError struct {
	LargestRootPage   uint32
	IncrementalVacuum uint32
}

func (e *InconsistentVacuumError) Error() string {
	return fmt.Sprintf("sqlite: inconsistent vacuum state, largest root page %d with incremental-vacuum flag %d",
		e.LargestRootPage, e.IncrementalVacuum)
}

// ReservedBytesError is returned when any byte of the reserved region at
// offsets 72 to 91 is non-zero.
type ReservedBytesError struct {
	Offset int
	Value  uint8
}

func (e *ReservedBytesError) Error() string {
	return fmt.Sprintf("sqlite: reserved byte at offset %d is %#x, must be zero", e.Offset, e.Value)
}
