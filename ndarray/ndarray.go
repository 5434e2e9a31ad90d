// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides array handles backed by shared shape descriptors.
//
// Example:
//
//	enc, _ := shapeinfo.NewEncoder(shapeinfo.Config{})
//	a, err := ndarray.New(enc, tensor.Shape{2, 3}, tensor.Float32, tensor.RowMajor)
//	t, err := a.Transpose()       // new descriptor, shared storage
//	b := a.Alias()                // same descriptor, same storage
package ndarray

import (
	"github.com/born-ml/ndshape/internal/ndarray"
	"github.com/born-ml/ndshape/shapeinfo"
	"github.com/born-ml/ndshape/tensor"
)

// Array is a handle to n-dimensional data.
type Array = ndarray.Array

// Errors.
var (
	ErrAxis          = ndarray.ErrAxis
	ErrIndex         = ndarray.ErrIndex
	ErrNotContiguous = ndarray.ErrNotContiguous
	ErrShapeMismatch = ndarray.ErrShapeMismatch
)

// New allocates a zeroed contiguous array.
func New(source shapeinfo.Source, shape tensor.Shape, dtype tensor.DataType, order tensor.Order) (*Array, error) {
	return ndarray.New(source, shape, dtype, order)
}
