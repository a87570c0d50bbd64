// Package verify cross-checks the built-in EXIF decoder against
// github.com/rwcarlsen/goexif.
package verify

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/gomantics/folio/formats"
)

// ErrReference is returned when goexif cannot decode the input.
var ErrReference = errors.New("verify: reference decoder failed")

// Mismatch is a tag both decoders produced with different values.
// Rationals are rendered as "num/den".
type Mismatch struct {
	Tag       string
	Ours      string
	Reference string
}

// Report lists the differences between the two decoders. All slices are
// sorted by tag name.
type Report struct {
	Mismatches    []Mismatch
	OnlyOurs      []string
	OnlyReference []string
}

// OK reports whether every tag both decoders produced has the same value.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

func (r Report) String() string {
	var b strings.Builder
	for _, m := range r.Mismatches {
		fmt.Fprintf(&b, "%s: ours %s, reference %s\n", m.Tag, m.Ours, m.Reference)
	}
	if len(r.OnlyOurs) > 0 {
		fmt.Fprintf(&b, "only ours: %s\n", strings.Join(r.OnlyOurs, ", "))
	}
	if len(r.OnlyReference) > 0 {
		fmt.Fprintf(&b, "only reference: %s\n", strings.Join(r.OnlyReference, ", "))
	}
	return b.String()
}

// Compare decodes data with formats.Decode and with goexif and reports where
// they disagree. Tags are matched by ID through formats.TagName; tags the
// name table does not know are ignored. goexif also walks the Exif, GPS and
// interoperability sub-directories, so their tags show up in OnlyReference.
func Compare(data []byte, opts ...formats.Option) (Report, error) {
	ref, err := reference(data)
	if err != nil {
		return Report{}, err
	}

	ours, err := formats.Decode(data, opts...)
	if err != nil && !errors.Is(err, formats.ErrTruncatedDirectory) {
		ours = nil
	}

	var r Report
	for name, v := range ours {
		want, ok := ref[name]
		if !ok {
			r.OnlyOurs = append(r.OnlyOurs, name)
			continue
		}
		if got := render(v); got != want {
			r.Mismatches = append(r.Mismatches, Mismatch{Tag: name, Ours: got, Reference: want})
		}
	}
	for name := range ref {
		if _, ok := ours[name]; !ok {
			r.OnlyReference = append(r.OnlyReference, name)
		}
	}

	sort.Slice(r.Mismatches, func(i, j int) bool { return r.Mismatches[i].Tag < r.Mismatches[j].Tag })
	sort.Strings(r.OnlyOurs)
	sort.Strings(r.OnlyReference)
	return r, nil
}

// reference returns the goexif values keyed by our tag names.
func reference(data []byte) (map[string]string, error) {
	x, err := exif.Decode(bytes.NewReader(data))
	if x == nil {
		return nil, fmt.Errorf("%w: %w", ErrReference, err)
	}

	w := walker{}
	if err := x.Walk(w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReference, err)
	}
	return w, nil
}

type walker map[string]string

func (w walker) Walk(_ exif.FieldName, tag *tiff.Tag) error {
	name := formats.TagName(tag.Id)
	if name == "" || tag.Count == 0 {
		return nil
	}

	switch tag.Format() {
	case tiff.IntVal:
		v, err := tag.Int(0)
		if err != nil {
			return nil
		}
		w[name] = strconv.Itoa(v)
	case tiff.RatVal:
		num, den, err := tag.Rat2(0)
		if err != nil {
			return nil
		}
		w[name] = strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
	case tiff.StringVal:
		s, err := tag.StringVal()
		if err != nil {
			return nil
		}
		w[name] = strings.TrimRight(s, "\x00")
	}
	return nil
}

func render(v formats.Value) string {
	if num, den, ok := v.Rational(); ok {
		return strconv.FormatUint(uint64(num), 10) + "/" + strconv.FormatUint(uint64(den), 10)
	}
	return v.String()
}
