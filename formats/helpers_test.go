package formats

import (
	"encoding/binary"
)

// testOrder is satisfied by binary.LittleEndian and binary.BigEndian.
type testOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// ifdEntry is a raw directory entry for building test fixtures.
type ifdEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value [4]byte
}

func shortEntry(order testOrder, tag uint16, v uint16) ifdEntry {
	e := ifdEntry{tag: tag, typ: typeShort, count: 1}
	order.PutUint16(e.value[:2], v)
	return e
}

func longEntry(order testOrder, tag uint16, v uint32) ifdEntry {
	e := ifdEntry{tag: tag, typ: typeLong, count: 1}
	order.PutUint32(e.value[:], v)
	return e
}

// rationalEntry stores num in the value field; the denominator is whatever
// the next four bytes of the directory hold.
func rationalEntry(order testOrder, tag uint16, num uint32) ifdEntry {
	e := ifdEntry{tag: tag, typ: typeRational, count: 1}
	order.PutUint32(e.value[:], num)
	return e
}

func asciiEntry(tag uint16, s string) ifdEntry {
	e := ifdEntry{tag: tag, typ: typeASCII, count: uint32(len(s) + 1)}
	copy(e.value[:], s)
	return e
}

// buildTIFF lays out a TIFF header with IFD0 at offset 8, the entries, a
// 4-byte trailer (normally the next-IFD offset) and extra bytes.
func buildTIFF(order testOrder, entries []ifdEntry, trailer uint32, extra []byte) []byte {
	buf := make([]byte, 0, 8+2+len(entries)*12+4+len(extra))
	if order == binary.LittleEndian {
		buf = append(buf, 'I', 'I')
	} else {
		buf = append(buf, 'M', 'M')
	}
	buf = order.AppendUint16(buf, 42)
	buf = order.AppendUint32(buf, 8)
	buf = order.AppendUint16(buf, uint16(len(entries)))
	for _, e := range entries {
		buf = order.AppendUint16(buf, e.tag)
		buf = order.AppendUint16(buf, e.typ)
		buf = order.AppendUint32(buf, e.count)
		buf = append(buf, e.value[:]...)
	}
	buf = order.AppendUint32(buf, trailer)
	return append(buf, extra...)
}

func exifPayload(tiff []byte) []byte {
	return append([]byte("Exif\x00\x00"), tiff...)
}

// buildJPEG wraps an APP1 payload in SOI, a JFIF APP0 segment and EOI.
func buildJPEG(payload []byte) []byte {
	jpeg := []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xE0, 0x00, 0x10, // APP0 (16 bytes)
		0x4A, 0x46, 0x49, 0x46, 0x00, 0x01, 0x01, 0x01, 0x00, 0x48, 0x00, 0x48, 0x00, 0x00,
	}
	if payload != nil {
		jpeg = append(jpeg, 0xFF, 0xE1)
		jpeg = binary.BigEndian.AppendUint16(jpeg, uint16(len(payload)+2))
		jpeg = append(jpeg, payload...)
	}
	return append(jpeg, 0xFF, 0xD9)
}
