package folio

import (
	"math"
	"strconv"

	"github.com/gomantics/folio/formats"
)

var (
	whiteBalanceModes = []string{"Auto", "Manual"}
	exposureModes     = []string{"Auto", "Manual", "Auto Bracket"}
	meteringModes     = []string{"Unknown", "Average", "Center-weighted", "Spot", "Multi-spot", "Multi-segment", "Partial"}
)

// Format turns decoded tags into display fields. Without tags only the
// fallback camera, lens and photographer are shown; EXIF-only fields are
// omitted rather than left blank.
func Format(m formats.Map, fallback Camera) Fields {
	var f Fields

	if len(m) == 0 {
		if fallback.Make != "" && fallback.Model != "" {
			f.add("Camera", fallback.Make+" "+fallback.Model)
		}
		if fallback.Lens != "" {
			f.add("Lens", fallback.Lens)
		}
		if fallback.Photographer != "" {
			f.add("Photographer", fallback.Photographer)
		}
		return f
	}

	if m.Present("Make") && m.Present("Model") {
		f.add("Camera", m["Make"].String()+" "+m["Model"].String())
	} else if fallback.Make != "" && fallback.Model != "" {
		f.add("Camera", fallback.Make+" "+fallback.Model)
	}

	// LensMake on its own is not enough to name a lens.
	if m.Present("LensModel") {
		f.add("Lens", m["LensModel"].String())
	} else if fallback.Lens != "" {
		f.add("Lens", fallback.Lens)
	}

	if x, ok := number(m, "ExposureTime"); ok {
		if x < 1 {
			f.add("Shutter Speed", "1/"+formatFloat(math.Round(1/x))+"s")
		} else {
			f.add("Shutter Speed", formatFloat(x)+"s")
		}
	}

	if x, ok := number(m, "FNumber"); ok {
		// Ties round up: f/1.25 is shown as f/1.3.
		f.add("Aperture", "f/"+strconv.FormatFloat(math.Round(x*10)/10, 'f', 1, 64))
	}

	if m.Present("ISO") {
		f.add("ISO", "ISO "+m["ISO"].String())
	}

	if x, ok := number(m, "FocalLength"); ok {
		f.add("Focal Length", formatFloat(math.Round(x))+"mm")
	}

	if m.Present("FocalLengthIn35mmFilm") {
		f.add("35mm Equivalent", m["FocalLengthIn35mmFilm"].String()+"mm")
	}

	if v, ok := m.Get("WhiteBalance"); ok {
		f.add("White Balance", lookup(v, whiteBalanceModes))
	}
	if v, ok := m.Get("ExposureMode"); ok {
		f.add("Exposure Mode", lookup(v, exposureModes))
	}
	if v, ok := m.Get("MeteringMode"); ok {
		f.add("Metering", lookup(v, meteringModes))
	}

	if m.Present("DateTimeOriginal") {
		f.add("Date Taken", m["DateTimeOriginal"].String())
	}

	switch {
	case m.Present("Artist"):
		f.add("Photographer", m["Artist"].String())
	case m.Present("CameraOwnerName"):
		f.add("Photographer", m["CameraOwnerName"].String())
	case fallback.Photographer != "":
		f.add("Photographer", fallback.Photographer)
	}

	return f
}

// number returns a non-zero numeric tag.
func number(m formats.Map, name string) (float64, bool) {
	v, ok := m.Get(name)
	if !ok || !v.IsNumeric() || v.IsZero() {
		return 0, false
	}
	return v.Float(), true
}

// lookup maps an enumeration index to its name, "Unknown" when the value is
// not a whole number within range.
func lookup(v formats.Value, names []string) string {
	if !v.IsNumeric() {
		return "Unknown"
	}
	x := v.Float()
	if x != math.Trunc(x) || x < 0 || x >= float64(len(names)) {
		return "Unknown"
	}
	return names[int(x)]
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
