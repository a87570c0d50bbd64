package formats

// Decode locates the EXIF segment of a JPEG buffer and decodes its first
// directory. The error is one of ErrNotJPEG, ErrSegmentNotFound,
// ErrMalformedTIFFHeader or ErrTruncatedDirectory (wrapped); only the last
// comes with a non-nil, partial map.
func Decode(data []byte, opts ...Option) (Map, error) {
	payload, err := LocateEXIF(data)
	if err != nil {
		return nil, err
	}
	return DecodeEXIF(payload, opts...)
}
