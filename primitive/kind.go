package primitive

import (
	"fmt"
	"strconv"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the placeholder representation chosen for a run of bytes whose
// real type is unknown. Only the width of a field is reported, so the kind is
// derived from the width alone.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindVoid
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint128
	KindBytes // opaque fixed-length byte array

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindUint8, KindUint16, KindUint32, KindUint64, KindUint128:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only integer kinds has meaningful bits amount, but requested for: " + k.String())
	case KindUint8:
		return 8
	case KindUint16:
		return 16
	case KindUint32:
		return 32
	case KindUint64:
		return 64
	case KindUint128:
		return 128
	}
}

// ForWidth maps a byte width to its representation kind:
// 0 is void, 1/2/4/8/16 are unsigned integers of that width,
// anything else is an opaque byte array.
func ForWidth(width uint64) KindEnum {
	switch width {
	case 0:
		return KindVoid
	case 1:
		return KindUint8
	case 2:
		return KindUint16
	case 4:
		return KindUint32
	case 8:
		return KindUint64
	case 16:
		return KindUint128
	default:
		return KindBytes
	}
}

// Repr is the representation of a field or padding run. Width is always the
// exact width the report stated, for every kind.
type Repr struct {
	Kind  KindEnum
	Width uint64
}

// FromWidth returns the representation for a run of width bytes.
func FromWidth(width uint64) Repr {
	return Repr{Kind: ForWidth(width), Width: width}
}

// IsVoid returns true for the zero-width placeholder.
func (r Repr) IsVoid() bool {
	return r.Kind == KindVoid
}

// String returns a short type-like description, e.g. "u32" or "[12]u8".
func (r Repr) String() string {
	switch r.Kind {
	case KindVoid:
		return "void"
	case KindUint8, KindUint16, KindUint32, KindUint64, KindUint128:
		return "u" + strconv.Itoa(r.Kind.Bits())
	case KindBytes:
		return fmt.Sprintf("[%d]u8", r.Width)
	default:
		return r.Kind.String()
	}
}
