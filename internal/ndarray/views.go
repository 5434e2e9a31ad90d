package ndarray

import (
	"fmt"

	"github.com/born-ml/ndshape/internal/shapeinfo"
	"github.com/born-ml/ndshape/internal/tensor"
)

// view encodes l with the view flag set and returns a handle sharing a's
// storage.
func (a *Array) view(l shapeinfo.Layout, flags shapeinfo.Extras) (*Array, error) {
	l.Order = a.desc.Order()
	l.Extras = a.desc.Extras().With(shapeinfo.FlagView | flags)

	desc, _, err := a.source.Encode(l)
	if err != nil {
		return nil, err
	}
	a.buffer.AddRef()
	return &Array{
		buffer: a.buffer,
		desc:   desc,
		dtype:  a.dtype,
		source: a.source,
	}, nil
}

// Transpose permutes the axes. With no arguments the axes are reversed.
func (a *Array) Transpose(perm ...int) (*Array, error) {
	rank := a.desc.Rank()
	if len(perm) == 0 {
		perm = make([]int, rank)
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	}
	if len(perm) != rank {
		return nil, fmt.Errorf("%w: permutation of length %d for rank %d", ErrAxis, len(perm), rank)
	}

	shape, stride := a.desc.Shape(), a.desc.Stride()
	seen := make([]bool, rank)
	newShape := make([]int64, rank)
	newStride := make([]int64, rank)
	for i, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return nil, fmt.Errorf("%w: invalid permutation %v", ErrAxis, perm)
		}
		seen[p] = true
		newShape[i] = shape[p]
		newStride[i] = stride[p]
	}

	return a.view(shapeinfo.Layout{
		Shape:  newShape,
		Stride: newStride,
		Offset: a.desc.Offset(),
	}, 0)
}

// Slice restricts axis to the half-open range [start, end).
func (a *Array) Slice(axis, start, end int) (*Array, error) {
	rank := a.desc.Rank()
	if axis < 0 || axis >= rank {
		return nil, fmt.Errorf("%w: axis %d for rank %d", ErrAxis, axis, rank)
	}
	shape, stride := a.desc.Shape(), a.desc.Stride()
	if start < 0 || end > int(shape[axis]) || start >= end {
		return nil, fmt.Errorf("%w: range [%d, %d) on axis %d with extent %d", ErrIndex, start, end, axis, shape[axis])
	}

	offset := a.desc.Offset() + int64(start)*stride[axis]
	shape[axis] = int64(end - start)

	return a.view(shapeinfo.Layout{
		Shape:  shape,
		Stride: stride,
		Offset: offset,
	}, 0)
}

// Reshape returns a view with a new shape over the same elements.
// Only contiguous arrays can be reshaped without copying.
func (a *Array) Reshape(shape tensor.Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != a.NumElements() {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrShapeMismatch, a.Shape(), shape)
	}
	if !a.IsContiguous() {
		return nil, ErrNotContiguous
	}

	return a.view(shapeinfo.Layout{
		Shape:  shape.Int64(),
		Offset: a.desc.Offset(),
	}, 0)
}

// BroadcastTo expands the array to shape following NumPy rules. Expanded
// axes get a zero stride, so every position along them reads the same
// element.
func (a *Array) BroadcastTo(shape tensor.Shape) (*Array, error) {
	src := a.Shape()
	out, _, err := tensor.BroadcastShapes(src, shape)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}
	if !out.Equal(shape) {
		return nil, fmt.Errorf("%w: cannot broadcast %v to %v", ErrShapeMismatch, src, shape)
	}

	srcStride := a.desc.Stride()
	lead := len(shape) - len(src)
	stride := make([]int64, len(shape))
	var flags shapeinfo.Extras
	for i := range shape {
		j := i - lead
		if j < 0 || (src[j] == 1 && shape[i] != 1) {
			flags = shapeinfo.FlagBroadcast // zero stride
			continue
		}
		stride[i] = srcStride[j]
	}

	return a.view(shapeinfo.Layout{
		Shape:  shape.Int64(),
		Stride: stride,
		Offset: a.desc.Offset(),
	}, flags)
}
