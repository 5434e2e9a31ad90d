// Package shapeinfo encodes array shape metadata into compact, immutable
// shape descriptors.
//
// A descriptor is a flat buffer of 64-bit words holding the rank, extents,
// strides, offset, element-wise stride, traversal order, and an extras word
// of array options:
//
//	slot 0            tag (magic | layout version)
//	slot 1            rank
//	slot 2..r+1       shape
//	slot r+2..2r+1    stride
//	slot 2r+2         offset
//	slot len-3        extras
//	slot len-2        element-wise stride
//	slot len-1        order ('c' or 'f')
//
// The length is always 2*rank + 6. Descriptors are marked constant as soon
// as they are built and may be shared freely between goroutines and array
// handles. Anything that needs a different offset or stride encodes a new
// descriptor.
//
// Example:
//
//	enc, _ := shapeinfo.NewEncoder(shapeinfo.Config{DefaultOrder: tensor.RowMajor})
//	desc, words, err := enc.Encode(shapeinfo.Layout{Shape: []int64{2, 3}})
//	// desc.Stride() == [3 1], desc.ElementWiseStride() == 1
//	// words is a private copy of the encoded buffer
package shapeinfo
