package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndshape/internal/parallel"
	"github.com/born-ml/ndshape/internal/tensor"
)

// fill writes 0, 1, 2, ... into a uint8 array's storage.
func fill(a *Array) {
	data := a.Data()
	for i := range data {
		data[i] = byte(i)
	}
}

func TestContiguous_Transpose(t *testing.T) {
	enc := newEncoder(t)
	a, err := New(enc, tensor.Shape{2, 3}, tensor.Uint8, tensor.RowMajor)
	require.NoError(t, err)
	fill(a)

	tr, err := a.Transpose()
	require.NoError(t, err)
	assert.False(t, tr.IsContiguous())

	for _, cfg := range []parallel.Config{
		{Enabled: false},
		{Enabled: true, NumWorkers: 3, MinChunkSize: 1},
	} {
		c, err := tr.ContiguousWith(cfg)
		require.NoError(t, err)
		assert.True(t, c.IsContiguous())
		assert.False(t, c.IsView())
		assert.Equal(t, tensor.Shape{3, 2}, c.Shape())
		// [[0 1 2] [3 4 5]]ᵀ = [[0 3] [1 4] [2 5]]
		assert.Equal(t, []byte{0, 3, 1, 4, 2, 5}, c.Data())
		c.Release()
	}
}

func TestContiguous_SliceAndBroadcast(t *testing.T) {
	enc := newEncoder(t)
	a, err := New(enc, tensor.Shape{3, 4}, tensor.Uint8, tensor.RowMajor)
	require.NoError(t, err)
	fill(a)

	s, err := a.Slice(1, 1, 3)
	require.NoError(t, err)
	c, err := s.Contiguous()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 5, 6, 9, 10}, c.Data())

	row, err := a.Slice(0, 2, 3)
	require.NoError(t, err)
	b, err := row.BroadcastTo(tensor.Shape{2, 1, 4})
	require.NoError(t, err)
	bc, err := b.Contiguous()
	require.NoError(t, err)
	assert.Equal(t, []byte{8, 9, 10, 11, 8, 9, 10, 11}, bc.Data())
}

func TestContiguous_ColumnMajor(t *testing.T) {
	enc := newEncoder(t)
	a, err := New(enc, tensor.Shape{2, 3}, tensor.Uint8, tensor.ColumnMajor)
	require.NoError(t, err)
	fill(a)

	c, err := a.Contiguous()
	require.NoError(t, err)
	assert.Equal(t, tensor.ColumnMajor, c.Order())
	assert.Equal(t, a.Data(), c.Data())

	c.Data()[0] = 42
	assert.Equal(t, byte(0), a.Data()[0], "copy must not share storage")
}
