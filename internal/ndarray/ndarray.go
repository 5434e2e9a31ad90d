// Package ndarray provides n-dimensional array handles whose metadata lives
// in shared, immutable shape descriptors.
//
// Every handle pairs a reference-counted storage buffer with a descriptor.
// Deriving a view (transpose, slice, reshape, broadcast) encodes a new
// descriptor and shares the storage; the source descriptor is never touched.
package ndarray

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/ndshape/internal/shapeinfo"
	"github.com/born-ml/ndshape/internal/tensor"
)

// Common errors.
var (
	ErrAxis          = errors.New("axis out of range")
	ErrIndex         = errors.New("index out of range")
	ErrNotContiguous = errors.New("array is not contiguous")
	ErrShapeMismatch = errors.New("shape mismatch")
)

// Array is a handle to n-dimensional data.
type Array struct {
	buffer *tensor.Buffer
	desc   *shapeinfo.Descriptor
	dtype  tensor.DataType
	source shapeinfo.Source
}

// New allocates a zeroed array with a fresh contiguous descriptor.
func New(source shapeinfo.Source, shape tensor.Shape, dtype tensor.DataType, order tensor.Order) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("invalid data type %d", dtype)
	}
	size, err := shapeinfo.ByteSize(shape.Int64(), dtype.Size())
	if err != nil {
		return nil, fmt.Errorf("storage for %v %s: %w", shape, dtype, err)
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("storage for %v %s: %d bytes: %w", shape, dtype, size, shapeinfo.ErrOverflow)
	}

	desc, _, err := source.Encode(shapeinfo.Layout{
		Shape:  shape.Int64(),
		Order:  order,
		Extras: shapeinfo.NewExtras(dtype, 0),
	})
	if err != nil {
		return nil, err
	}

	return &Array{
		buffer: tensor.NewBuffer(int(size)),
		desc:   desc,
		dtype:  dtype,
		source: source,
	}, nil
}

// Descriptor returns the shape descriptor attached to the array.
func (a *Array) Descriptor() *shapeinfo.Descriptor {
	return a.desc
}

// Shape returns the array's extents.
func (a *Array) Shape() tensor.Shape {
	shape, err := tensor.ShapeFromInt64(a.desc.Shape())
	if err != nil {
		// New validated the shape against int already.
		panic(err)
	}
	return shape
}

// Strides returns the array's strides in elements.
func (a *Array) Strides() []int64 {
	return a.desc.Stride()
}

// Offset returns the element offset of the first element.
func (a *Array) Offset() int64 {
	return a.desc.Offset()
}

// Order returns the traversal order.
func (a *Array) Order() tensor.Order {
	return a.desc.Order()
}

// DType returns the element type.
func (a *Array) DType() tensor.DataType {
	return a.dtype
}

// NumElements returns the number of addressable elements.
func (a *Array) NumElements() int {
	return a.Shape().NumElements()
}

// IsView reports whether the array was derived from another handle.
func (a *Array) IsView() bool {
	return a.desc.Extras().Has(shapeinfo.FlagView)
}

// IsContiguous reports whether elements are adjacent in traversal order.
func (a *Array) IsContiguous() bool {
	return a.desc.ElementWiseStride() == 1
}

// Data returns the whole backing storage, including elements outside the view.
// WARNING: Direct access to underlying memory. Use with caution.
func (a *Array) Data() []byte {
	return a.buffer.Bytes()
}

// Alias returns a second handle to the same storage and descriptor.
func (a *Array) Alias() *Array {
	a.buffer.AddRef()
	return &Array{
		buffer: a.buffer,
		desc:   a.desc,
		dtype:  a.dtype,
		source: a.source,
	}
}

// Release drops this handle's reference to the storage.
func (a *Array) Release() {
	a.buffer.Release()
}

// IsUnique returns true if this is the only handle to the storage.
func (a *Array) IsUnique() bool {
	return a.buffer.IsUnique()
}

// Index returns the storage position, in elements, of the element at idx.
func (a *Array) Index(idx ...int) (int64, error) {
	shape := a.desc.Shape()
	if len(idx) != len(shape) {
		return 0, fmt.Errorf("%w: %d indices for rank %d", ErrIndex, len(idx), len(shape))
	}
	stride := a.desc.Stride()
	pos := a.desc.Offset()
	for i, v := range idx {
		if v < 0 || int64(v) >= shape[i] {
			return 0, fmt.Errorf("%w: index %d on axis %d with extent %d", ErrIndex, v, i, shape[i])
		}
		pos += int64(v) * stride[i]
	}
	return pos, nil
}

// At returns the bytes of the element at idx.
func (a *Array) At(idx ...int) ([]byte, error) {
	pos, err := a.Index(idx...)
	if err != nil {
		return nil, err
	}
	size := int64(a.dtype.Size())
	data := a.buffer.Bytes()
	start := pos * size
	if start < 0 || start+size > int64(len(data)) {
		return nil, fmt.Errorf("%w: element %d outside storage of %d bytes", ErrIndex, pos, len(data))
	}
	return data[start : start+size], nil
}

// String returns a human-readable summary.
func (a *Array) String() string {
	return fmt.Sprintf("Array(%s, %v)", a.dtype, a.desc)
}
