// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndshape/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Order is the memory traversal convention of an array.
type Order = tensor.Order

// Order constants.
const (
	RowMajor    Order = tensor.RowMajor
	ColumnMajor Order = tensor.ColumnMajor
)

// ParseOrder converts "c"/"row-major" or "f"/"column-major" into an Order.
func ParseOrder(s string) (Order, error) {
	return tensor.ParseOrder(s)
}

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// ParseDataType converts a name such as "float32" into a DataType.
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}
