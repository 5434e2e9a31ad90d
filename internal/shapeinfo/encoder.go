package shapeinfo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/born-ml/ndshape/internal/parallel"
	"github.com/born-ml/ndshape/internal/tensor"
)

// Config controls an Encoder.
type Config struct {
	DefaultOrder tensor.Order    // Order used when Layout.Order is zero; zero means RowMajor
	MaxRank      int             // Largest accepted rank; zero means DefaultMaxRank
	Counter      Counter         // Byte counter; nil means a private AtomicCounter
	Logger       *zap.Logger     // nil means no logging
	Parallel     parallel.Config // Worker settings for EncodeBatch; zero means parallel.DefaultConfig()
}

// Encoder builds shape descriptors.
//
// An Encoder holds no mutable state besides its counter and is safe for
// concurrent use.
type Encoder struct {
	order    tensor.Order
	maxRank  int
	counter  Counter
	logger   *zap.Logger
	parallel parallel.Config
}

// NewEncoder creates an Encoder from cfg, filling in defaults.
func NewEncoder(cfg Config) (*Encoder, error) {
	order := cfg.DefaultOrder
	if order == 0 {
		order = tensor.RowMajor
	}
	if !order.Valid() {
		return nil, fmt.Errorf("shapeinfo: invalid default order %v", order)
	}

	maxRank := cfg.MaxRank
	if maxRank == 0 {
		maxRank = DefaultMaxRank
	}
	if maxRank < 0 || maxRank > maxEncodableRank {
		return nil, fmt.Errorf("shapeinfo: max rank %d out of range [1, %d]", maxRank, maxEncodableRank)
	}

	counter := cfg.Counter
	if counter == nil {
		counter = &AtomicCounter{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	par := cfg.Parallel
	if par.NumWorkers == 0 {
		par = parallel.DefaultConfig()
	}

	return &Encoder{
		order:    order,
		maxRank:  maxRank,
		counter:  counter,
		logger:   logger,
		parallel: par,
	}, nil
}

// DefaultOrder returns the order applied to layouts that leave it unset.
func (e *Encoder) DefaultOrder() tensor.Order {
	return e.order
}

// CachedBytes returns the total size of all descriptors created through
// this encoder's counter.
func (e *Encoder) CachedBytes() int64 {
	return e.counter.Load()
}

// Encode builds a constant descriptor for l and returns it together with
// a decoded copy of its words.
//
// Encode covers every shape-information request:
//
//	enc.Encode(Layout{Shape: s})                        // default order
//	enc.Encode(Layout{Shape: s, Order: tensor.ColumnMajor})
//	enc.Encode(Layout{Shape: s, Stride: st, Offset: off,
//	    ElementWiseStride: ews, Order: o})              // explicit view
//	enc.Encode(Layout{..., Extras: x})                  // with array options
//
// Invalid layouts fail with ErrInvalidShape or ErrOverflow and leave the
// byte counter untouched.
func (e *Encoder) Encode(l Layout) (*Descriptor, []int64, error) {
	d, err := e.build(l)
	if err != nil {
		e.logger.Warn("shape descriptor rejected", zap.Int64s("shape", l.Shape), zap.Error(err))
		return nil, nil, err
	}
	if err := e.charge(d); err != nil {
		return nil, nil, err
	}
	return d, d.Longs(), nil
}

// charge records the size of a newly created descriptor.
func (e *Encoder) charge(d *Descriptor) error {
	size := d.SizeInBytes()
	if err := e.counter.Add(size); err != nil {
		e.logger.Warn("shape byte counter rejected increment", zap.Int64("bytes", size), zap.Error(err))
		return err
	}
	e.logger.Debug("shape descriptor created",
		zap.Int("rank", d.rank),
		zap.Int64s("shape", d.Shape()),
		zap.Int64("bytes", size))
	return nil
}

// resolve validates l and fills in defaults, returning the fields to write.
func (e *Encoder) resolve(l Layout) (Layout, error) {
	rank := len(l.Shape)
	if rank == 0 {
		return Layout{}, invalidShape("encode", "rank", "rank must be > 0")
	}
	if rank > e.maxRank {
		return Layout{}, invalidShape("encode", "rank", "rank %d exceeds limit %d", rank, e.maxRank)
	}

	order := l.Order
	if order == 0 {
		order = e.order
	}
	if !order.Valid() {
		return Layout{}, invalidShape("encode", "order", "unknown order %v", order)
	}
	if err := checkExtents("encode", l.Shape); err != nil {
		return Layout{}, err
	}
	if _, err := NumElements(l.Shape); err != nil {
		return Layout{}, err
	}
	if l.Offset < 0 {
		return Layout{}, invalidShape("encode", "offset", "offset %d is negative", l.Offset)
	}

	stride := l.Stride
	ews := l.ElementWiseStride
	if stride == nil {
		derived, err := CanonicalStrides(l.Shape, order)
		if err != nil {
			return Layout{}, err
		}
		stride = derived
		if ews == 0 {
			// Freshly derived strides are never a view.
			ews = 1
		}
	} else if len(stride) != rank {
		return Layout{}, invalidShape("encode", "stride", "%d strides for rank %d", len(stride), rank)
	}
	if ews == 0 {
		ews = ElementWiseStride(l.Shape, stride, order)
	}

	return Layout{
		Shape:             l.Shape,
		Stride:            stride,
		Offset:            l.Offset,
		ElementWiseStride: ews,
		Order:             order,
		Extras:            l.Extras,
	}, nil
}

// build encodes l without charging the counter.
func (e *Encoder) build(l Layout) (*Descriptor, error) {
	r, err := e.resolve(l)
	if err != nil {
		return nil, err
	}
	return write(r), nil
}

// write lays out an already resolved Layout and freezes the buffer.
func write(r Layout) *Descriptor {
	rank := len(r.Shape)
	length := Length(rank)
	buf := tensor.NewLongBuffer(length)

	put := func(i int, v int64) {
		// Fresh buffer, indices computed from rank: cannot fail.
		if err := buf.Put(i, v); err != nil {
			panic(err)
		}
	}

	put(0, tagWord(LayoutVersion))
	put(1, int64(rank))
	for i := 0; i < rank; i++ {
		put(shapeIndex(i), r.Shape[i])
		put(strideIndex(rank, i), r.Stride[i])
	}
	put(offsetIndex(rank), r.Offset)
	put(ExtrasIndex(length), int64(r.Extras))
	put(ewsIndex(length), r.ElementWiseStride)
	put(orderIndex(length), int64(r.Order))
	buf.SetConstant()

	return &Descriptor{buf: buf, rank: rank}
}
