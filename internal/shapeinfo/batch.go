package shapeinfo

import (
	"context"

	"github.com/born-ml/ndshape/internal/parallel"
)

// EncodeBatch encodes layouts concurrently and returns the descriptors in
// input order.
//
// The first failure cancels the remaining work and is returned. Descriptors
// created before the failure stay charged to the byte counter.
func (e *Encoder) EncodeBatch(ctx context.Context, layouts []Layout) ([]*Descriptor, error) {
	out := make([]*Descriptor, len(layouts))
	err := parallel.ForErr(ctx, len(layouts), func(i int) error {
		d, _, err := e.Encode(layouts[i])
		if err != nil {
			return err
		}
		out[i] = d
		return nil
	}, e.parallel)
	if err != nil {
		return nil, err
	}
	return out, nil
}
