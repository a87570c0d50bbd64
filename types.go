package folio

import (
	"strings"

	"github.com/gomantics/folio/formats"
)

// Camera describes the gear used when EXIF data is missing.
type Camera struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Lens         string `json:"lens"`
	Photographer string `json:"photographer"`
}

// IsZero reports whether no fallback is configured.
func (c Camera) IsZero() bool {
	return c == Camera{}
}

// Field is one formatted metadata line.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Fields is an ordered list of formatted metadata, in display order.
type Fields []Field

func (f *Fields) add(label, value string) {
	*f = append(*f, Field{Label: label, Value: value})
}

// Get returns the value for label.
func (f Fields) Get(label string) (string, bool) {
	for _, field := range f {
		if field.Label == label {
			return field.Value, true
		}
	}
	return "", false
}

// Map returns the fields keyed by label.
func (f Fields) Map() map[string]string {
	out := make(map[string]string, len(f))
	for _, field := range f {
		out[field.Label] = field.Value
	}
	return out
}

// Lines renders each field as "<label>: <value>".
func (f Fields) Lines() []string {
	lines := make([]string, len(f))
	for i, field := range f {
		lines[i] = field.Label + ": " + field.Value
	}
	return lines
}

func (f Fields) String() string {
	return strings.Join(f.Lines(), "\n")
}

// Image is one gallery entry.
type Image struct {
	Path       string      `json:"src"`
	Filename   string      `json:"filename"`
	Name       string      `json:"name"`
	Thumbnail  string      `json:"thumbnail"`
	Preview    string      `json:"preview"`
	ShootID    string      `json:"shootId"`
	ShootTitle string      `json:"shootTitle"`
	EXIF       formats.Map `json:"-"`
}

// Shoot groups the images of one photo session.
type Shoot struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Folder     string   `json:"folder"`
	CoverColor string   `json:"coverColor"`
	Images     []*Image `json:"images"`
	Cover      *Image   `json:"cover"`
}
