package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagName(t *testing.T) {
	tests := []struct {
		id   uint16
		want string
	}{
		{0x010F, "Make"},
		{0x829A, "ExposureTime"},
		{0x829D, "FNumber"},
		{0x8827, "ISO"},
		{0xA434, "LensModel"},
		{0x922B, "LensModel"},
		{0x0010, "SonyImageStabilization"},
		{0x0058, "SonyHighISONoiseReduction2"},
		// Lightroom definitions come after the Sony ones.
		{0x0001, "LightroomVersion"},
		{0x0002, "LightroomHasSettings"},
		{0x0003, "LightroomHasCrop"},
		{0x0004, "LightroomAlreadyApplied"},
		// GPSInfo is the last definition of 0x8825.
		{0x8825, "GPSInfo"},
		{0x8769, "ExifOffset"},
		{0xBEEF, ""},
		{0x0000, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TagName(tt.id), "tag 0x%04X", tt.id)
	}
}

func TestBuildTagNames_LastDefinitionWins(t *testing.T) {
	names := buildTagNames([]Tag{{1, "first"}, {2, "other"}, {1, "second"}})
	assert.Equal(t, map[uint16]string{1: "second", 2: "other"}, names)
}
