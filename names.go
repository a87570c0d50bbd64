package folio

import (
	"path"
	"regexp"
	"strings"
	"unicode"
)

var imageExt = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp|avif)$`)

// Variant kinds accepted by VariantPath.
const (
	VariantThumb   = "thumb"
	VariantPreview = "prev"
)

// DisplayName turns a file name into a title: the image extension is
// dropped, dashes and underscores become spaces and every word starts with
// an upper case letter. "light-series_01.JPG" becomes "Light Series 01".
func DisplayName(filename string) string {
	name := imageExt.ReplaceAllString(filename, "")
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	b := []rune(name)
	start := true
	for i, r := range b {
		word := unicode.IsLetter(r) || unicode.IsDigit(r)
		if word && start {
			b[i] = unicode.ToUpper(r)
		}
		start = !word
	}
	return string(b)
}

// VariantPath returns where the resized variant of an image lives:
// "photos/a.jpg" with kind "thumb" is "photos/thumbs/a.jpg".
func VariantPath(p, kind string) string {
	dir, file := path.Split(p)
	return path.Join(dir, kind+"s", file)
}
