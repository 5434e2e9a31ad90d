package shapeinfo

import (
	"encoding/binary"

	"github.com/born-ml/ndshape/internal/tensor"
)

// Decode parses encoded words back into a constant descriptor.
//
// The words are copied; later changes to the slice do not affect the
// result. Decode checks the tag, version, rank, length, extents, element
// count, offset, and order, and fails with ErrCorruptDescriptor otherwise.
// Anything Decode accepts can be encoded again.
func Decode(words []int64) (*Descriptor, error) {
	if len(words) < headerWords+trailerWords {
		return nil, corrupt("length", "%d words is shorter than the minimum %d", len(words), headerWords+trailerWords)
	}
	if !tagHasMagic(words[0]) {
		return nil, corrupt("tag", "bad magic %#x", uint64(words[0]))
	}
	if v := tagVersion(words[0]); v < 1 || v > LayoutVersion {
		return nil, corrupt("tag", "unsupported layout version %d", v)
	}

	rank := words[1]
	if rank <= 0 || rank > maxEncodableRank {
		return nil, corrupt("rank", "rank %d out of range", rank)
	}
	if want := Length(int(rank)); len(words) != want {
		return nil, corrupt("length", "%d words for rank %d, want %d", len(words), rank, want)
	}

	r := int(rank)
	for i := 0; i < r; i++ {
		if d := words[shapeIndex(i)]; d <= 0 {
			return nil, corrupt("shape", "dimension %d is %d", i, d)
		}
	}
	if _, err := NumElements(words[shapeIndex(0):shapeIndex(r)]); err != nil {
		return nil, corrupt("shape", "element count of %v exceeds int64", words[shapeIndex(0):shapeIndex(r)])
	}
	if off := words[offsetIndex(r)]; off < 0 {
		return nil, corrupt("offset", "offset %d is negative", off)
	}
	if code := words[orderIndex(len(words))]; code != int64(tensor.RowMajor) && code != int64(tensor.ColumnMajor) {
		return nil, corrupt("order", "unknown order code %d", code)
	}

	buf := tensor.NewLongBuffer(len(words))
	for i, w := range words {
		if err := buf.Put(i, w); err != nil {
			return nil, err
		}
	}
	buf.SetConstant()
	return &Descriptor{buf: buf, rank: r}, nil
}

// DecodeBytes parses the little-endian form produced by Descriptor.Bytes.
func DecodeBytes(b []byte) (*Descriptor, error) {
	if len(b)%8 != 0 {
		return nil, corrupt("length", "%d bytes is not a whole number of words", len(b))
	}
	words := make([]int64, len(b)/8)
	for i := range words {
		words[i] = int64(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return Decode(words)
}
