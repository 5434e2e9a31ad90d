package ndarray

import (
	"github.com/born-ml/ndshape/internal/parallel"
)

// Contiguous returns a copy of the array in fresh contiguous storage with
// the same shape, order, and data type. The copy is never a view, even when
// a is one.
func (a *Array) Contiguous() (*Array, error) {
	return a.ContiguousWith(parallel.DefaultConfig())
}

// ContiguousWith is Contiguous with explicit worker settings.
func (a *Array) ContiguousWith(cfg parallel.Config) (*Array, error) {
	dst, err := New(a.source, a.Shape(), a.dtype, a.Order())
	if err != nil {
		return nil, err
	}

	shape := a.desc.Shape()
	srcStride := a.desc.Stride()
	dstStride := dst.desc.Stride()
	offset := a.desc.Offset()
	size := int64(a.dtype.Size())
	src := a.buffer.Bytes()
	out := dst.buffer.Bytes()

	// Canonical strides satisfy i = sum(idx[k] * dstStride[k]) with
	// idx[k] = (i / dstStride[k]) % shape[k] in either order.
	parallel.For(dst.NumElements(), func(i int) {
		pos := offset
		for k := range shape {
			idx := (int64(i) / dstStride[k]) % shape[k]
			pos += idx * srcStride[k]
		}
		copy(out[int64(i)*size:int64(i+1)*size], src[pos*size:(pos+1)*size])
	}, cfg)

	return dst, nil
}
