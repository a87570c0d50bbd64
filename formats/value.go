package formats

import (
	"fmt"
	"strconv"
)

// Kind is the closed set of value representations the IFD decoder produces.
type Kind uint8

const (
	KindUnsupported Kind = iota
	KindString
	KindUint16
	KindUint32
	KindRational
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindRational:
		return "rational"
	default:
		return "unsupported"
	}
}

// TIFF field type codes understood by the decoder.
const (
	typeASCII    uint16 = 2
	typeShort    uint16 = 3
	typeLong     uint16 = 4
	typeRational uint16 = 5
)

// kindOf maps a TIFF type code to a Kind. Every code not listed is unsupported.
func kindOf(typ uint16) Kind {
	switch typ {
	case typeASCII:
		return KindString
	case typeShort:
		return KindUint16
	case typeLong:
		return KindUint32
	case typeRational:
		return KindRational
	default:
		return KindUnsupported
	}
}

// Value is a decoded scalar tag value.
type Value struct {
	kind Kind
	str  string
	num  uint32
	den  uint32
}

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// Uint16Value returns an unsigned 16-bit Value.
func Uint16Value(v uint16) Value { return Value{kind: KindUint16, num: uint32(v)} }

// Uint32Value returns an unsigned 32-bit Value.
func Uint32Value(v uint32) Value { return Value{kind: KindUint32, num: v} }

// RationalValue returns a rational Value.
func RationalValue(num, den uint32) Value { return Value{kind: KindRational, num: num, den: den} }

// Kind reports the value representation.
func (v Value) Kind() Kind { return v.kind }

// IsNumeric reports whether the value is an integer or a rational.
func (v Value) IsNumeric() bool {
	return v.kind == KindUint16 || v.kind == KindUint32 || v.kind == KindRational
}

// Str returns the string payload, or "" for non-string values.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Uint returns the integer payload of a uint16 or uint32 value.
func (v Value) Uint() (uint32, bool) {
	if v.kind != KindUint16 && v.kind != KindUint32 {
		return 0, false
	}
	return v.num, true
}

// Rational returns numerator and denominator of a rational value.
func (v Value) Rational() (num, den uint32, ok bool) {
	if v.kind != KindRational {
		return 0, 0, false
	}
	return v.num, v.den, true
}

// Float returns the numeric value. A rational with a zero denominator is 0.
// Strings are 0.
func (v Value) Float() float64 {
	switch v.kind {
	case KindUint16, KindUint32:
		return float64(v.num)
	case KindRational:
		if v.den == 0 {
			return 0
		}
		return float64(v.num) / float64(v.den)
	default:
		return 0
	}
}

// IsZero reports whether the value is empty: "" for strings, 0 for numbers.
func (v Value) IsZero() bool {
	if v.kind == KindString {
		return v.str == ""
	}
	return v.Float() == 0
}

// String renders the value the way it is displayed: strings verbatim,
// integers in decimal and rationals as their shortest decimal ratio.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindUint16, KindUint32:
		return strconv.FormatUint(uint64(v.num), 10)
	case KindRational:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return ""
	}
}

// GoString makes test failures readable.
func (v Value) GoString() string {
	if v.kind == KindRational {
		return fmt.Sprintf("%s(%d/%d)", v.kind, v.num, v.den)
	}
	return fmt.Sprintf("%s(%q)", v.kind, v.String())
}
