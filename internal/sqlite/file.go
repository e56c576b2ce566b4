package sqlite

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadHeader reads the database header from the start of r and decodes it.
func ReadHeader(r io.ReaderAt) (Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := r.ReadAt(buf, 0); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("%w: file is smaller than %d bytes", ErrShortBuffer, HeaderSize)
		}
		return Header{}, fmt.Errorf("read database header: %w", err)
	}

	var h Header
	if err := UnmarshalHeader(buf, &h); err != nil {
		return Header{}, err
	}
	return h, nil
}

// ReadHeaderFile opens the database file at path read-only and decodes its
// header.
func ReadHeaderFile(path string) (Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer file.Close()

	return ReadHeader(file)
}
