package shapeinfo

import (
	"math"

	"github.com/born-ml/ndshape/internal/tensor"
)

// Dims widens dimension values of any integer width to the 64-bit form
// stored in descriptors.
func Dims[T ~int | ~int32 | ~int64](dims []T) []int64 {
	if dims == nil {
		return nil
	}
	out := make([]int64, len(dims))
	for i, d := range dims {
		out[i] = int64(d)
	}
	return out
}

// CanonicalStrides computes contiguous strides for shape in the given order.
//
// Row-major: the last dimension varies fastest, stride[i] = prod(shape[i+1:]).
// Column-major: the first dimension varies fastest, stride[i] = prod(shape[:i]).
//
// Returns ErrInvalidShape for non-positive extents or an unknown order and
// ErrOverflow if the element count does not fit into int64.
func CanonicalStrides(shape []int64, order tensor.Order) ([]int64, error) {
	if !order.Valid() {
		return nil, invalidShape("strides", "order", "unknown order %v", order)
	}
	if err := checkExtents("strides", shape); err != nil {
		return nil, err
	}

	rank := len(shape)
	strides := make([]int64, rank)
	if rank == 0 {
		return strides, nil
	}

	acc := int64(1)
	for k := 0; k < rank; k++ {
		i := k
		if order == tensor.RowMajor {
			i = rank - 1 - k
		}
		strides[i] = acc
		next, ok := mulInt64(acc, shape[i])
		if !ok {
			return nil, overflow("strides", "shape", "element count of %v exceeds int64", shape)
		}
		acc = next
	}
	return strides, nil
}

// NumElements returns the product of the extents, or ErrOverflow.
func NumElements(shape []int64) (int64, error) {
	n := int64(1)
	for _, d := range shape {
		next, ok := mulInt64(n, d)
		if !ok {
			return 0, overflow("elements", "shape", "element count of %v exceeds int64", shape)
		}
		n = next
	}
	return n, nil
}

// ByteSize returns the storage needed for shape with elements of elemSize
// bytes, or ErrOverflow if it does not fit into int64.
func ByteSize(shape []int64, elemSize int) (int64, error) {
	n, err := NumElements(shape)
	if err != nil {
		return 0, err
	}
	size, ok := mulInt64(n, int64(elemSize))
	if !ok {
		return 0, overflow("bytes", "shape", "%d elements of %d bytes exceed int64", n, elemSize)
	}
	return size, nil
}

// ElementWiseStride summarizes how the elements of a strided layout are
// spaced in traversal order.
//
// It returns k > 0 when every stride is k times the canonical contiguous
// stride for order (k == 1 means the layout is contiguous), and -1 when the
// spacing is not uniform. Unit extents do not constrain the result.
func ElementWiseStride(shape, stride []int64, order tensor.Order) int64 {
	if len(shape) != len(stride) {
		return -1
	}
	canonical, err := CanonicalStrides(shape, order)
	if err != nil {
		return -1
	}

	var k int64
	for i := range shape {
		if shape[i] == 1 {
			continue
		}
		if stride[i] <= 0 || stride[i]%canonical[i] != 0 {
			return -1
		}
		m := stride[i] / canonical[i]
		if k == 0 {
			k = m
		} else if m != k {
			return -1
		}
	}
	if k == 0 {
		return 1
	}
	return k
}

func checkExtents(op string, shape []int64) error {
	for i, d := range shape {
		if d <= 0 {
			return invalidShape(op, "shape", "dimension %d is %d (must be > 0)", i, d)
		}
	}
	return nil
}

// mulInt64 multiplies two non-negative values, reporting overflow.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}
