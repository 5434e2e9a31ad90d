package shapeinfo

import (
	"encoding/binary"
	"fmt"

	"github.com/born-ml/ndshape/internal/tensor"
)

// Descriptor is an encoded, immutable shape descriptor.
//
// The zero value is not usable; descriptors come from Encoder.Encode,
// Cache.Encode, or Decode. All accessors return copies, so holders of a shared
// descriptor can never observe each other's changes.
type Descriptor struct {
	buf  *tensor.LongBuffer
	rank int
}

// Rank returns the number of dimensions.
func (d *Descriptor) Rank() int {
	return d.rank
}

// Version returns the layout version recorded in the tag word.
func (d *Descriptor) Version() int {
	return int(tagVersion(d.buf.Get(0)))
}

// Shape returns a copy of the extents.
func (d *Descriptor) Shape() []int64 {
	out := make([]int64, d.rank)
	for i := range out {
		out[i] = d.buf.Get(shapeIndex(i))
	}
	return out
}

// Stride returns a copy of the strides.
func (d *Descriptor) Stride() []int64 {
	out := make([]int64, d.rank)
	for i := range out {
		out[i] = d.buf.Get(strideIndex(d.rank, i))
	}
	return out
}

// Offset returns the element offset into the backing storage.
func (d *Descriptor) Offset() int64 {
	return d.buf.Get(offsetIndex(d.rank))
}

// ElementWiseStride returns the element-wise stride (1 for contiguous
// layouts, -1 when spacing is not uniform).
func (d *Descriptor) ElementWiseStride() int64 {
	return d.buf.Get(ewsIndex(d.buf.Len()))
}

// Order returns the traversal order.
func (d *Descriptor) Order() tensor.Order {
	return tensor.Order(d.buf.Get(orderIndex(d.buf.Len())))
}

// Extras returns the array-options word.
func (d *Descriptor) Extras() Extras {
	return Extras(d.buf.Get(ExtrasIndex(d.buf.Len())))
}

// Len returns the number of words in the descriptor.
func (d *Descriptor) Len() int {
	return d.buf.Len()
}

// SizeInBytes returns the storage footprint charged to the byte counter.
func (d *Descriptor) SizeInBytes() int64 {
	return d.buf.SizeInBytes()
}

// IsConstant reports whether the underlying buffer is frozen. It is always
// true for descriptors handed out by this package.
func (d *Descriptor) IsConstant() bool {
	return d.buf.IsConstant()
}

// Longs returns a copy of the encoded words.
func (d *Descriptor) Longs() []int64 {
	return d.buf.AsLong()
}

// Bytes returns the encoded words in little-endian byte order.
func (d *Descriptor) Bytes() []byte {
	out := make([]byte, 0, d.buf.SizeInBytes())
	for i := 0; i < d.buf.Len(); i++ {
		out = binary.LittleEndian.AppendUint64(out, uint64(d.buf.Get(i)))
	}
	return out
}

// Layout returns the fields of the descriptor as an explicit Layout.
// Encoding the result reproduces an equal descriptor.
func (d *Descriptor) Layout() Layout {
	return Layout{
		Shape:             d.Shape(),
		Stride:            d.Stride(),
		Offset:            d.Offset(),
		ElementWiseStride: d.ElementWiseStride(),
		Order:             d.Order(),
		Extras:            d.Extras(),
	}
}

// Equal reports whether two descriptors encode the same words.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil || d.buf.Len() != other.buf.Len() {
		return false
	}
	for i := 0; i < d.buf.Len(); i++ {
		if d.buf.Get(i) != other.buf.Get(i) {
			return false
		}
	}
	return true
}

// String returns a human-readable summary.
func (d *Descriptor) String() string {
	return fmt.Sprintf("rank=%d shape=%v stride=%v offset=%d ews=%d order=%v extras=%v",
		d.rank, d.Shape(), d.Stride(), d.Offset(), d.ElementWiseStride(), d.Order(), d.Extras())
}

// key identifies the descriptor contents for caching.
func (d *Descriptor) key() string {
	return string(d.Bytes())
}
