package shapeinfo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndshape/internal/tensor"
)

func TestDecode_RoundTrip(t *testing.T) {
	enc := newTestEncoder(t, tensor.RowMajor)

	layouts := []Layout{
		{Shape: []int64{2, 3}},
		{Shape: []int64{2, 3}, Order: tensor.ColumnMajor},
		{Shape: []int64{4}, Stride: []int64{2}, Offset: 5, ElementWiseStride: 2, Extras: 99},
		{Shape: []int64{2, 3, 4, 5}, Stride: []int64{0, 20, 5, 1}, Offset: 11},
	}
	for _, l := range layouts {
		d, words, err := enc.Encode(l)
		require.NoError(t, err)

		decoded, err := Decode(words)
		require.NoError(t, err)
		assert.True(t, decoded.Equal(d))
		if diff := cmp.Diff(d.Shape(), decoded.Shape()); diff != "" {
			t.Errorf("shape mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(d.Stride(), decoded.Stride()); diff != "" {
			t.Errorf("stride mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, LayoutVersion, decoded.Version())
		assert.True(t, decoded.IsConstant())

		fromBytes, err := DecodeBytes(d.Bytes())
		require.NoError(t, err)
		assert.True(t, fromBytes.Equal(d))
	}
}

func TestDecode_LayoutReencodes(t *testing.T) {
	enc := newTestEncoder(t, tensor.RowMajor)

	d, _, err := enc.Encode(Layout{Shape: []int64{3, 2}, Stride: []int64{1, 3}, Order: tensor.ColumnMajor, Extras: 4})
	require.NoError(t, err)

	again, _, err := enc.Encode(d.Layout())
	require.NoError(t, err)
	assert.True(t, again.Equal(d))
}

func TestDecode_CopiesInput(t *testing.T) {
	enc := newTestEncoder(t, tensor.RowMajor)
	_, words, err := enc.Encode(Layout{Shape: []int64{2, 2}})
	require.NoError(t, err)

	d, err := Decode(words)
	require.NoError(t, err)
	words[2] = 9

	assert.Equal(t, []int64{2, 2}, d.Shape())
}

func TestDecode_Corrupt(t *testing.T) {
	enc := newTestEncoder(t, tensor.RowMajor)
	_, good, err := enc.Encode(Layout{Shape: []int64{2, 3}})
	require.NoError(t, err)

	mutate := func(i int, v int64) []int64 {
		out := append([]int64(nil), good...)
		out[i] = v
		return out
	}

	tests := []struct {
		name  string
		words []int64
	}{
		{"too short", good[:4]},
		{"bad magic", mutate(0, 12345)},
		{"future version", mutate(0, tagWord(LayoutVersion+1))},
		{"zero rank", mutate(1, 0)},
		{"rank disagrees with length", mutate(1, 3)},
		{"zero extent", mutate(2, 0)},
		{"element count overflows", mutate(2, 1<<62)},
		{"negative offset", mutate(offsetIndex(2), -4)},
		{"bad order", mutate(len(good)-1, 'q')},
		{"order out of byte range", mutate(len(good)-1, int64('c')+256)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.words)
			assert.ErrorIs(t, err, ErrCorruptDescriptor)
		})
	}

	_, err = DecodeBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrCorruptDescriptor)
}

func TestDecode_AcceptedDescriptorsReencode(t *testing.T) {
	enc := newTestEncoder(t, tensor.RowMajor)

	// Largest extents whose product still fits into int64.
	words := []int64{tagWord(LayoutVersion), 2, 1 << 61, 3, 3, 1, 0, 0, 1, int64(tensor.RowMajor)}
	d, err := Decode(words)
	require.NoError(t, err)

	again, _, err := enc.Encode(d.Layout())
	require.NoError(t, err)
	assert.True(t, again.Equal(d))

	words[2] = 1 << 62
	_, err = Decode(words)
	assert.ErrorIs(t, err, ErrCorruptDescriptor)
	_, _, err = enc.Encode(Layout{Shape: []int64{1 << 62, 3}})
	assert.ErrorIs(t, err, ErrOverflow)
}
