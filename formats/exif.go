package formats

import (
	"encoding/binary"
	"fmt"
)

// RationalLayout selects where rational values are read from.
type RationalLayout uint8

const (
	// RationalInline reads numerator and denominator starting at the entry's
	// value field. This is what the portfolio's existing fixtures were
	// produced against.
	RationalInline RationalLayout = iota
	// RationalAtOffset treats the value field as a TIFF-relative offset to
	// the numerator/denominator pair, as the TIFF 6.0 layout prescribes.
	RationalAtOffset
)

func (l RationalLayout) String() string {
	if l == RationalAtOffset {
		return "offset"
	}
	return "inline"
}

// ParseRationalLayout parses "inline" or "offset". The empty string is inline.
func ParseRationalLayout(s string) (RationalLayout, error) {
	switch s {
	case "", "inline":
		return RationalInline, nil
	case "offset":
		return RationalAtOffset, nil
	default:
		return RationalInline, fmt.Errorf("%w: unknown rational layout %q", ErrInvalidData, s)
	}
}

// Option configures DecodeEXIF.
type Option func(*decoder)

// WithRationalLayout sets the rational layout. The default is RationalInline.
func WithRationalLayout(l RationalLayout) Option {
	return func(d *decoder) { d.rationals = l }
}

const (
	exifIdent     = "Exif"
	exifHeaderLen = 6 // "Exif\x00\x00"
	ifdEntrySize  = 12
)

type decoder struct {
	rationals RationalLayout
	r         byteReader
}

// DecodeEXIF decodes IFD0 of an APP1 payload that starts with the EXIF
// identifier.
//
// A nil map with ErrMalformedTIFFHeader means the payload is not EXIF. When
// the directory runs off the end of the buffer the entries decoded so far
// are returned together with ErrTruncatedDirectory.
//
// ASCII values are only decoded when they fit in the entry (count <= 4);
// longer strings live at an offset that is not followed, so those tags are
// absent from the result.
func DecodeEXIF(payload []byte, opts ...Option) (Map, error) {
	if len(payload) < exifHeaderLen || string(payload[:len(exifIdent)]) != exifIdent {
		return nil, fmt.Errorf("%w: missing %q identifier", ErrMalformedTIFFHeader, exifIdent)
	}

	// Offsets inside the TIFF block are relative to its first byte.
	tiff := payload[exifHeaderLen:]
	if len(tiff) < 8 {
		return nil, fmt.Errorf("%w: header needs 8 bytes, have %d", ErrMalformedTIFFHeader, len(tiff))
	}

	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}

	switch string(tiff[:2]) {
	case "II":
		d.r = byteReader{data: tiff, order: binary.LittleEndian}
	case "MM":
		d.r = byteReader{data: tiff, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("%w: byte order %q", ErrMalformedTIFFHeader, tiff[:2])
	}

	// tiff[2:4] holds the magic number 42; it is not checked.
	ifdOffset, err := d.r.uint32(4)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTIFFHeader, err)
	}

	return d.decodeIFD(int64(ifdOffset))
}

func (d *decoder) decodeIFD(offset int64) (Map, error) {
	if offset > int64(len(d.r.data)) {
		return Map{}, fmt.Errorf("%w: IFD offset %d beyond %d bytes", ErrTruncatedDirectory, offset, len(d.r.data))
	}
	start := int(offset)

	numEntries, err := d.r.uint16(start)
	if err != nil {
		return Map{}, fmt.Errorf("%w: entry count: %w", ErrTruncatedDirectory, err)
	}

	result := newMap(int(numEntries))
	entry := start + 2
	for i := 0; i < int(numEntries); i++ {
		tag, err := d.r.uint16(entry)
		if err != nil {
			return result, fmt.Errorf("%w: entry %d of %d: %w", ErrTruncatedDirectory, i, numEntries, err)
		}
		typ, err := d.r.uint16(entry + 2)
		if err != nil {
			return result, fmt.Errorf("%w: entry %d of %d: %w", ErrTruncatedDirectory, i, numEntries, err)
		}
		count, err := d.r.uint32(entry + 4)
		if err != nil {
			return result, fmt.Errorf("%w: entry %d of %d: %w", ErrTruncatedDirectory, i, numEntries, err)
		}

		if value, ok := d.decodeValue(typ, count, entry+8); ok {
			if name := TagName(tag); name != "" {
				result[name] = value
			}
		}

		entry += ifdEntrySize
	}

	return result, nil
}

// decodeValue decodes the value whose 4-byte value field starts at field.
// It reports false for unsupported types, out-of-line strings and values
// that cannot be read.
func (d *decoder) decodeValue(typ uint16, count uint32, field int) (Value, bool) {
	switch kindOf(typ) {
	case KindString:
		return d.decodeString(count, field)
	case KindUint16:
		v, err := d.r.uint16(field)
		if err != nil {
			return Value{}, false
		}
		return Uint16Value(v), true
	case KindUint32:
		v, err := d.r.uint32(field)
		if err != nil {
			return Value{}, false
		}
		return Uint32Value(v), true
	case KindRational:
		return d.decodeRational(field)
	default:
		return Value{}, false
	}
}

func (d *decoder) decodeString(count uint32, field int) (Value, bool) {
	if count > 4 {
		return Value{}, false
	}
	if count == 0 {
		return StringValue(""), true
	}
	b, err := d.r.bytes(field, int(count)-1)
	if err != nil {
		return Value{}, false
	}
	return StringValue(string(b)), true
}

func (d *decoder) decodeRational(field int) (Value, bool) {
	at := field
	if d.rationals == RationalAtOffset {
		off, err := d.r.uint32(field)
		if err != nil || int64(off) > int64(len(d.r.data)) {
			return Value{}, false
		}
		at = int(off)
	}

	num, err := d.r.uint32(at)
	if err != nil {
		return Value{}, false
	}
	den, err := d.r.uint32(at + 4)
	if err != nil {
		return Value{}, false
	}
	return RationalValue(num, den), true
}
