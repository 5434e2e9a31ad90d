// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package shapeinfo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndshape/ndarray"
	"github.com/born-ml/ndshape/shapeinfo"
	"github.com/born-ml/ndshape/tensor"
)

func TestPublicAPI(t *testing.T) {
	enc, err := shapeinfo.NewEncoder(shapeinfo.Config{DefaultOrder: tensor.ColumnMajor})
	require.NoError(t, err)

	desc, words, err := enc.Encode(shapeinfo.Layout{Shape: shapeinfo.Dims32([]int32{2, 3})})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, desc.Stride())
	assert.Len(t, words, shapeinfo.Length(2))
	assert.Equal(t, int64(0), words[shapeinfo.ExtrasIndex(len(words))])

	back, err := shapeinfo.Decode(words)
	require.NoError(t, err)
	assert.True(t, back.Equal(desc))

	_, _, err = enc.Encode(shapeinfo.Layout{Shape: []int64{0}})
	assert.True(t, errors.Is(err, shapeinfo.ErrInvalidShape))
}

func TestPublicNdarray(t *testing.T) {
	enc, err := shapeinfo.NewEncoder(shapeinfo.Config{})
	require.NoError(t, err)
	cache := shapeinfo.NewCache(enc)

	a, err := ndarray.New(cache, tensor.Shape{2, 3}, tensor.Float32, tensor.RowMajor)
	require.NoError(t, err)
	b, err := ndarray.New(cache, tensor.Shape{2, 3}, tensor.Float32, tensor.RowMajor)
	require.NoError(t, err)
	assert.Same(t, a.Descriptor(), b.Descriptor())
	assert.Equal(t, 1, cache.Len())
}
