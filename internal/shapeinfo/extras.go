package shapeinfo

import (
	"fmt"
	"strings"

	"github.com/born-ml/ndshape/internal/tensor"
)

// Extras is the array-options word stored at slot len-3 of a descriptor.
//
// Bits 0..7 hold flags, bits 8..15 hold the data type (DataType+1, zero
// meaning unknown). Higher bits are left to callers.
type Extras int64

// Extras flags.
const (
	FlagView      Extras = 1 << 0 // descriptor belongs to a view over another array's storage
	FlagBroadcast Extras = 1 << 1 // at least one stride is zero

	dtypeShift        = 8
	dtypeMask  Extras = 0xff << dtypeShift

	namedFlags = FlagView | FlagBroadcast
)

// NewExtras packs a data type and flags into an extras word.
func NewExtras(dt tensor.DataType, flags Extras) Extras {
	return flags&^dtypeMask | Extras(dt+1)<<dtypeShift
}

// DataType returns the data type recorded in x and whether one was set.
func (x Extras) DataType() (tensor.DataType, bool) {
	code := (x & dtypeMask) >> dtypeShift
	if code == 0 {
		return 0, false
	}
	dt := tensor.DataType(code - 1)
	return dt, dt.Valid()
}

// Has reports whether all bits of flag are set.
func (x Extras) Has(flag Extras) bool {
	return x&flag == flag
}

// With returns x with flags added.
func (x Extras) With(flags Extras) Extras {
	return x | flags&^dtypeMask
}

// String renders the word as dtype and flag names, followed by the raw
// word in hex when bits without a name are set.
func (x Extras) String() string {
	var parts []string
	known := namedFlags
	if dt, ok := x.DataType(); ok {
		parts = append(parts, dt.String())
		known |= dtypeMask
	}
	if x.Has(FlagView) {
		parts = append(parts, "view")
	}
	if x.Has(FlagBroadcast) {
		parts = append(parts, "broadcast")
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d", int64(x))
	}
	s := strings.Join(parts, "|")
	if x&^known != 0 {
		// Unnamed bits: show the whole word.
		s += fmt.Sprintf("(%#x)", uint64(x))
	}
	return s
}
