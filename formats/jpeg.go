package formats

import (
	"encoding/binary"
	"fmt"
)

const (
	markerSOI  = 0xFFD8
	markerAPP1 = 0xFFE1
)

// LocateEXIF scans a JPEG buffer for the first APP1 segment and returns its
// payload, starting at the "Exif\x00\x00" identifier.
//
// The payload runs to the end of data rather than to the end of the segment:
// directory offsets are resolved against it and some encoders point past the
// declared segment length. Segment lengths are trusted as they are read; a
// corrupt length makes the scan run off the buffer, which is reported as
// ErrSegmentNotFound.
func LocateEXIF(data []byte) ([]byte, error) {
	r := byteReader{data: data, order: binary.BigEndian}

	soi, err := r.uint16(0)
	if err != nil || soi != markerSOI {
		return nil, ErrNotJPEG
	}

	offset := 2
	for offset < len(data) {
		marker, err := r.uint16(offset)
		if err != nil {
			return nil, fmt.Errorf("%w: marker at offset %d: %w", ErrSegmentNotFound, offset, err)
		}

		if marker == markerAPP1 {
			if offset+4 > len(data) {
				return nil, fmt.Errorf("%w: APP1 at offset %d has no payload", ErrSegmentNotFound, offset)
			}
			return data[offset+4:], nil
		}

		length, err := r.uint16(offset + 2)
		if err != nil {
			return nil, fmt.Errorf("%w: segment length at offset %d: %w", ErrSegmentNotFound, offset+2, err)
		}
		offset += 2 + int(length)
	}

	return nil, ErrSegmentNotFound
}

// byteReader reads fixed-width integers from an immutable buffer, returning
// ErrInvalidData instead of panicking on out-of-range offsets.
type byteReader struct {
	data  []byte
	order binary.ByteOrder
}

func (r byteReader) bytes(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off > len(r.data) || len(r.data)-off < n {
		return nil, fmt.Errorf("%w: read of %d bytes at offset %d exceeds %d", ErrInvalidData, n, off, len(r.data))
	}
	return r.data[off : off+n], nil
}

func (r byteReader) uint16(off int) (uint16, error) {
	b, err := r.bytes(off, 2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

func (r byteReader) uint32(off int) (uint32, error) {
	b, err := r.bytes(off, 4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}
