package shapeinfo

import (
	"math"

	"github.com/born-ml/ndshape/internal/tensor"
)

// Layout format constants.
const (
	LayoutVersion  = 1  // Current descriptor layout version
	DefaultMaxRank = 32 // Rank limit used when Config.MaxRank is zero

	headerWords  = 2 // tag, rank
	trailerWords = 4 // offset, extras, ews, order

	tagMagic int64 = int64('S')<<56 | int64('H')<<48
	tagMask  int64 = -1 << 48
)

// Layout describes the array metadata to encode. It replaces the family of
// positional overloads with one structure whose zero values are defaults:
//
//   - Stride nil: canonical contiguous strides for Order.
//   - Offset 0: no offset.
//   - ElementWiseStride 0: 1 when strides are derived, otherwise computed
//     from the explicit strides (see ElementWiseStride).
//   - Order zero: the encoder's default order.
//   - Extras 0: no array options.
type Layout struct {
	Shape             []int64
	Stride            []int64
	Offset            int64
	ElementWiseStride int64
	Order             tensor.Order
	Extras            Extras
}

// Length returns the number of words in a descriptor of the given rank.
func Length(rank int) int {
	return 2*rank + headerWords + trailerWords
}

// ExtrasIndex returns the slot holding the extras word in a descriptor of
// the given length. It is always length-3.
func ExtrasIndex(length int) int {
	return length - 3
}

func shapeIndex(i int) int        { return headerWords + i }
func strideIndex(rank, i int) int { return headerWords + rank + i }
func offsetIndex(rank int) int    { return headerWords + 2*rank }
func ewsIndex(length int) int     { return length - 2 }
func orderIndex(length int) int   { return length - 1 }

// maxEncodableRank bounds the rank so that Length never overflows an int32
// and the descriptor can be framed by the wire format.
const maxEncodableRank = (math.MaxInt32 - headerWords - trailerWords) / 2

func tagWord(version int64) int64 { return tagMagic | version }
func tagVersion(tag int64) int64  { return tag &^ tagMask }
func tagHasMagic(tag int64) bool  { return tag&tagMask == tagMagic }
