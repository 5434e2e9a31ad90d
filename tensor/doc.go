// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the primitive types shared by ndshape packages.
//
// # Overview
//
// This package provides:
//   - Shape: array extents
//   - Order: memory traversal order (RowMajor 'c', ColumnMajor 'f')
//   - DataType: element type with byte sizes
//
// # Orders
//
// RowMajor arrays vary the last dimension fastest, ColumnMajor arrays the
// first:
//
//	shape [2, 3], RowMajor    → strides [3, 1]
//	shape [2, 3], ColumnMajor → strides [1, 2]
//
// Orders are parsed from "c"/"row-major" and "f"/"column-major", and
// round-trip through YAML and other text encodings.
package tensor
