package folio

import (
	"context"
	"encoding/binary"
	"sync/atomic"
)

// rawEntry is one IFD0 entry; value fills the 4-byte value field.
type rawEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value uint32
}

// jpegWithEntries builds a little-endian JPEG whose IFD0 holds entries,
// followed by the 4-byte trailer and extra bytes. The first extra byte sits
// at TIFF offset 8+2+12*len(entries)+4.
func jpegWithEntries(trailer uint32, extra []byte, entries ...rawEntry) []byte {
	le := binary.LittleEndian

	tiff := []byte{'I', 'I', 42, 0, 8, 0, 0, 0}
	tiff = le.AppendUint16(tiff, uint16(len(entries)))
	for _, e := range entries {
		tiff = le.AppendUint16(tiff, e.tag)
		tiff = le.AppendUint16(tiff, e.typ)
		tiff = le.AppendUint32(tiff, e.count)
		tiff = le.AppendUint32(tiff, e.value)
	}
	tiff = le.AppendUint32(tiff, trailer)
	tiff = append(tiff, extra...)

	payload := append([]byte("Exif\x00\x00"), tiff...)

	data := []byte{0xFF, 0xD8, 0xFF, 0xE1}
	data = binary.BigEndian.AppendUint16(data, uint16(len(payload)+2))
	data = append(data, payload...)
	return append(data, 0xFF, 0xD9)
}

// jpegWithShorts builds a JPEG whose IFD0 holds one SHORT entry per tag, in
// order.
func jpegWithShorts(tags ...[2]uint16) []byte {
	entries := make([]rawEntry, len(tags))
	for i, t := range tags {
		entries[i] = rawEntry{tag: t[0], typ: 3, count: 1, value: uint32(t[1])}
	}
	return jpegWithEntries(0, nil, entries...)
}

const (
	tagExposureTime = 0x829A
	tagFNumber      = 0x829D
	tagISO          = 0x8827
	tagWhiteBalance = 0xA403
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D}

// countingFetcher serves files from a map and counts calls per path.
type countingFetcher struct {
	files map[string][]byte
	calls atomic.Int64
}

func (f *countingFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	f.calls.Add(1)
	data, ok := f.files[path]
	if !ok {
		return nil, ErrFetchFailed
	}
	return data, nil
}
