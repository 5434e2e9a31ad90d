package shapeinfo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndshape/internal/tensor"
)

func TestCache_SharesEqualLayouts(t *testing.T) {
	enc := newTestEncoder(t, tensor.RowMajor)
	cache := NewCache(enc)

	a, _, err := cache.Encode(Layout{Shape: []int64{2, 3}})
	require.NoError(t, err)
	b, _, err := cache.Encode(Layout{Shape: []int64{2, 3}, Order: tensor.RowMajor, Stride: []int64{3, 1}})
	require.NoError(t, err)
	c, _, err := cache.Encode(Layout{Shape: []int64{2, 3}, Order: tensor.ColumnMajor})
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, a.SizeInBytes()+c.SizeInBytes(), enc.CachedBytes())

	hits, misses := cache.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(2), misses)
}

func TestCache_ConcurrentEncodeChargesOnce(t *testing.T) {
	enc := newTestEncoder(t, tensor.RowMajor)
	cache := NewCache(enc)

	const goroutines = 32
	results := make([]*Descriptor, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, _, err := cache.Encode(Layout{Shape: []int64{8, 8, 3}})
			if err == nil {
				results[i] = d
			}
		}(i)
	}
	wg.Wait()

	for _, d := range results {
		require.NotNil(t, d)
		assert.Same(t, results[0], d)
	}
	assert.Equal(t, results[0].SizeInBytes(), enc.CachedBytes())
}

func TestCache_RejectsInvalidLayout(t *testing.T) {
	cache := NewCache(newTestEncoder(t, tensor.RowMajor))

	_, _, err := cache.Encode(Layout{Shape: []int64{0}})
	assert.ErrorIs(t, err, ErrInvalidShape)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Purge(t *testing.T) {
	enc := newTestEncoder(t, tensor.RowMajor)
	cache := NewCache(enc)

	d, _, err := cache.Encode(Layout{Shape: []int64{5}})
	require.NoError(t, err)
	charged := enc.CachedBytes()

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, []int64{5}, d.Shape(), "purged descriptors stay valid")
	assert.Equal(t, charged, enc.CachedBytes(), "counter never decreases")

	again, _, err := cache.Encode(Layout{Shape: []int64{5}})
	require.NoError(t, err)
	assert.NotSame(t, d, again)
	assert.Equal(t, 2*charged, enc.CachedBytes())
}
