package formats

import "bytes"

// Format represents an image format recognized by its magic bytes.
type Format string

const (
	FormatUnknown Format = ""
	FormatJPEG    Format = "JPEG"
	FormatPNG     Format = "PNG"
	FormatGIF     Format = "GIF"
	FormatWebP    Format = "WebP"
	FormatBMP     Format = "BMP"
)

var (
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	riffSignature = []byte{0x52, 0x49, 0x46, 0x46}
	webpSignature = []byte{0x57, 0x45, 0x42, 0x50}
)

// Detect identifies the image format by examining the magic bytes.
// Only JPEG carries an EXIF segment the decoder can read; the other formats
// are recognized so callers can say why a file has no metadata.
func Detect(magicBytes []byte) Format {
	if len(magicBytes) < 2 {
		return FormatUnknown
	}

	// JPEG: FF D8 FF
	if len(magicBytes) >= 3 && magicBytes[0] == 0xFF && magicBytes[1] == 0xD8 && magicBytes[2] == 0xFF {
		return FormatJPEG
	}

	// PNG: 89 50 4E 47 0D 0A 1A 0A
	if bytes.HasPrefix(magicBytes, pngSignature) {
		return FormatPNG
	}

	// GIF: GIF87a or GIF89a
	if len(magicBytes) >= 6 && string(magicBytes[:4]) == "GIF8" &&
		(magicBytes[4] == '7' || magicBytes[4] == '9') && magicBytes[5] == 'a' {
		return FormatGIF
	}

	// WebP: RIFF ... WEBP
	if len(magicBytes) >= 12 && bytes.HasPrefix(magicBytes, riffSignature) &&
		bytes.Equal(magicBytes[8:12], webpSignature) {
		return FormatWebP
	}

	// BMP: 42 4D (BM)
	if magicBytes[0] == 0x42 && magicBytes[1] == 0x4D {
		return FormatBMP
	}

	return FormatUnknown
}
