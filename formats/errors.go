package formats

import "errors"

var (
	// ErrInvalidData indicates malformed or incomplete format data.
	ErrInvalidData = errors.New("formats: invalid data")

	// ErrNotJPEG is returned when the buffer does not start with the JPEG SOI marker.
	ErrNotJPEG = errors.New("formats: not a JPEG")

	// ErrSegmentNotFound is returned when the segment scan reaches the end of
	// the buffer without finding an APP1 segment.
	ErrSegmentNotFound = errors.New("formats: EXIF segment not found")

	// ErrMalformedTIFFHeader is returned when the EXIF identifier or the TIFF
	// byte order marker is not recognized. No map is produced.
	ErrMalformedTIFFHeader = errors.New("formats: malformed TIFF header")

	// ErrTruncatedDirectory is returned together with the entries decoded so
	// far when the directory walk runs past the end of the buffer.
	ErrTruncatedDirectory = errors.New("formats: truncated directory")
)
