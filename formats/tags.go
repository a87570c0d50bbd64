package formats

// Tag pairs a numeric tag ID with its canonical name.
type Tag struct {
	ID   uint16
	Name string
}

// Tags is the ordered tag table. Several IDs appear more than once: the
// EXIF-IFD tags are listed under both the legacy 0x92xx numbering and the
// standard 0xA4xx IDs, and the Sony maker tags share 0x0001-0x0004 with the
// Lightroom tags. The later definition of an ID wins, so 0x0001, 0x0003 and
// 0x0004 resolve to the Lightroom names and 0x8825 resolves to GPSInfo.
var Tags = []Tag{
	// IFD0
	{0x010F, "Make"},
	{0x0110, "Model"},
	{0x0112, "Orientation"},
	{0x011A, "XResolution"},
	{0x011B, "YResolution"},
	{0x0128, "ResolutionUnit"},
	{0x0132, "DateTime"},
	{0x013B, "Artist"},
	{0x013E, "WhitePoint"},
	{0x013F, "PrimaryChromaticities"},

	// Camera settings
	{0x829A, "ExposureTime"},
	{0x829D, "FNumber"},
	{0x8822, "ExposureProgram"},
	{0x8824, "SpectralSensitivity"},
	{0x8827, "ISO"},
	{0x8828, "OECF"},
	{0x8830, "SensitivityType"},
	{0x8832, "RecommendedExposureIndex"},
	{0x9000, "ExifVersion"},
	{0x9003, "DateTimeOriginal"},
	{0x9004, "DateTimeDigitized"},
	{0x9101, "ComponentsConfiguration"},
	{0x9102, "CompressedBitsPerPixel"},
	{0x9201, "ShutterSpeedValue"},
	{0x9202, "ApertureValue"},
	{0x9203, "BrightnessValue"},
	{0x9204, "ExposureBiasValue"},
	{0x9205, "MaxApertureValue"},
	{0x9206, "SubjectDistance"},
	{0x9207, "MeteringMode"},
	{0x9208, "LightSource"},
	{0x9209, "Flash"},
	{0x920A, "FocalLength"},
	{0x920B, "FlashEnergy"},
	{0x920C, "SpatialFrequencyResponse"},
	{0x920D, "Noise"},
	{0x920E, "FocalPlaneXResolution"},
	{0x920F, "FocalPlaneYResolution"},
	{0x9210, "FocalPlaneResolutionUnit"},
	{0x9214, "SubjectLocation"},
	{0x9215, "ExposureIndex"},
	{0x9216, "SensingMethod"},
	{0x9217, "FileSource"},
	{0x9218, "SceneType"},
	{0x9219, "CFAPattern"},
	{0x921A, "CustomRendered"},
	{0x921B, "ExposureMode"},
	{0x921C, "WhiteBalance"},
	{0x921D, "DigitalZoomRatio"},
	{0x921E, "FocalLengthIn35mmFilm"},
	{0x921F, "SceneCaptureType"},
	{0x9220, "GainControl"},
	{0x9221, "Contrast"},
	{0x9222, "Saturation"},
	{0x9223, "Sharpness"},
	{0x9224, "DeviceSettingDescription"},
	{0x9225, "SubjectDistanceRange"},
	{0x9226, "ImageUniqueID"},
	{0x9227, "CameraOwnerName"},
	{0x9228, "BodySerialNumber"},
	{0x9229, "LensSpecification"},
	{0x922A, "LensMake"},
	{0x922B, "LensModel"},
	{0x922C, "LensSerialNumber"},

	// Sony maker notes
	{0x0001, "SonyImageQuality"},
	{0x0003, "SonyFlashExposureComp"},
	{0x0004, "SonyTeleconverter"},
	{0x0010, "SonyImageStabilization"},
	{0x0013, "SonyBrightness"},
	{0x0014, "SonyContrast"},
	{0x0015, "SonySaturation"},
	{0x0016, "SonySharpness"},
	{0x0017, "SonyColorSpace"},
	{0x0018, "SonySceneMode"},
	{0x001A, "SonyZoneMatching"},
	{0x001B, "SonyDynamicRangeOptimizer"},
	{0x001C, "SonyImageStabilization2"},
	{0x001D, "SonyLensID"},
	{0x001E, "SonyMinoltaCameraSettings"},
	{0x0020, "SonyColorMode"},
	{0x0021, "SonyLensSpec"},
	{0x0022, "SonyFullImageSize"},
	{0x0023, "SonyPreviewImageSize"},
	{0x002E, "SonyMacro"},
	{0x0030, "SonyExposureMode"},
	{0x0031, "SonyEdgeNoiseReduction"},
	{0x0032, "SonyCreativeStyle"},
	{0x0039, "SonyImageStabilization3"},
	{0x003C, "SonyShutterCount"},
	{0x0048, "SonyFlashMode"},
	{0x0049, "SonyFlashLevel"},
	{0x004A, "SonyReleaseMode"},
	{0x004B, "SonySequenceNumber"},
	{0x0050, "SonyAntiBlur"},
	{0x0051, "SonyLongExposureNoiseReduction"},
	{0x0052, "SonyDynamicRangeOptimizer2"},
	{0x0053, "SonyIntelligentAuto"},
	{0x0054, "SonyLensType2"},
	{0x0058, "SonyHighISONoiseReduction2"},

	// Lightroom
	{0x0001, "LightroomVersion"},
	{0x0002, "LightroomHasSettings"},
	{0x0003, "LightroomHasCrop"},
	{0x0004, "LightroomAlreadyApplied"},

	// Pointers and EXIF-IFD tags under their standard IDs
	{0x8298, "Copyright"},
	{0x8769, "ExifOffset"},
	{0x8825, "GPSOffset"},
	{0xA000, "FlashpixVersion"},
	{0xA001, "ColorSpace"},
	{0xA002, "ExifImageWidth"},
	{0xA003, "ExifImageHeight"},
	{0xA004, "RelatedSoundFile"},
	{0xA005, "ExifInteroperabilityOffset"},
	{0xA20E, "FocalPlaneXResolution"},
	{0xA20F, "FocalPlaneYResolution"},
	{0xA210, "FocalPlaneResolutionUnit"},
	{0xA214, "SubjectLocation"},
	{0xA215, "ExposureIndex"},
	{0xA217, "SensingMethod"},
	{0xA300, "FileSource"},
	{0xA301, "SceneType"},
	{0xA302, "CFAPattern"},
	{0xA401, "CustomRendered"},
	{0xA402, "ExposureMode"},
	{0xA403, "WhiteBalance"},
	{0xA404, "DigitalZoomRatio"},
	{0xA405, "FocalLengthIn35mmFilm"},
	{0xA406, "SceneCaptureType"},
	{0xA407, "GainControl"},
	{0xA408, "Contrast"},
	{0xA409, "Saturation"},
	{0xA40A, "Sharpness"},
	{0xA40B, "DeviceSettingDescription"},
	{0xA40C, "SubjectDistanceRange"},
	{0xA420, "ImageUniqueID"},
	{0xA430, "CameraOwnerName"},
	{0xA431, "BodySerialNumber"},
	{0xA432, "LensSpecification"},
	{0xA433, "LensMake"},
	{0xA434, "LensModel"},
	{0xA435, "LensSerialNumber"},

	// GPS
	{0x8825, "GPSInfo"},
}

var tagNames = buildTagNames(Tags)

func buildTagNames(tags []Tag) map[uint16]string {
	names := make(map[uint16]string, len(tags))
	for _, t := range tags {
		names[t.ID] = t.Name
	}
	return names
}

// TagName returns the name registered for id, or "" when the ID is unknown.
func TagName(id uint16) string {
	return tagNames[id]
}
