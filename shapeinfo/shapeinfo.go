// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shapeinfo provides the public API for encoding array shape
// metadata into immutable shape descriptors.
//
// A descriptor packs rank, extents, strides, offset, element-wise stride,
// traversal order, and an extras word into 2*rank + 6 int64 words. The
// extras word always sits at index len-3.
//
// Example:
//
//	enc, err := shapeinfo.NewEncoder(shapeinfo.Config{DefaultOrder: tensor.RowMajor})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	desc, words, err := enc.Encode(shapeinfo.Layout{Shape: []int64{2, 3}})
//	// desc.Stride() == [3 1]
//	// words[len(words)-3] == 0 (no extras)
//
// Descriptors are safe to share between goroutines. Use a Cache to hand
// the same descriptor to every array with an equal layout.
package shapeinfo

import (
	"github.com/born-ml/ndshape/internal/shapeinfo"
	"github.com/born-ml/ndshape/tensor"
)

// Layout describes the metadata to encode; zero fields take documented defaults.
type Layout = shapeinfo.Layout

// Descriptor is an encoded, immutable shape descriptor.
type Descriptor = shapeinfo.Descriptor

// Encoder builds shape descriptors.
type Encoder = shapeinfo.Encoder

// Config controls an Encoder.
type Config = shapeinfo.Config

// Cache shares descriptors between equal layouts.
type Cache = shapeinfo.Cache

// Source hands out descriptors; *Encoder and *Cache implement it.
type Source = shapeinfo.Source

// Counter accumulates bytes of created descriptors.
type Counter = shapeinfo.Counter

// AtomicCounter is a lock-free Counter.
type AtomicCounter = shapeinfo.AtomicCounter

// Extras is the array-options word of a descriptor.
type Extras = shapeinfo.Extras

// ShapeError describes a rejected layout or malformed descriptor.
type ShapeError = shapeinfo.ShapeError

// Extras flags.
const (
	FlagView      = shapeinfo.FlagView
	FlagBroadcast = shapeinfo.FlagBroadcast
)

// Layout constants.
const (
	LayoutVersion  = shapeinfo.LayoutVersion
	DefaultMaxRank = shapeinfo.DefaultMaxRank
)

// Errors.
var (
	ErrInvalidShape      = shapeinfo.ErrInvalidShape
	ErrOverflow          = shapeinfo.ErrOverflow
	ErrCorruptDescriptor = shapeinfo.ErrCorruptDescriptor
)

// NewEncoder creates an Encoder from cfg.
func NewEncoder(cfg Config) (*Encoder, error) {
	return shapeinfo.NewEncoder(cfg)
}

// NewCache creates a descriptor cache in front of enc.
func NewCache(enc *Encoder) *Cache {
	return shapeinfo.NewCache(enc)
}

// NewExtras packs a data type and flags into an extras word.
func NewExtras(dt tensor.DataType, flags Extras) Extras {
	return shapeinfo.NewExtras(dt, flags)
}

// Decode parses encoded words into a descriptor.
func Decode(words []int64) (*Descriptor, error) {
	return shapeinfo.Decode(words)
}

// DecodeBytes parses the little-endian form of a descriptor.
func DecodeBytes(b []byte) (*Descriptor, error) {
	return shapeinfo.DecodeBytes(b)
}

// CanonicalStrides computes contiguous strides for shape in order.
func CanonicalStrides(shape []int64, order tensor.Order) ([]int64, error) {
	return shapeinfo.CanonicalStrides(shape, order)
}

// Length returns the descriptor length for rank.
func Length(rank int) int {
	return shapeinfo.Length(rank)
}

// ExtrasIndex returns the extras slot for a descriptor of length words.
func ExtrasIndex(length int) int {
	return shapeinfo.ExtrasIndex(length)
}

// Dims32 widens 32-bit dimensions to the 64-bit encoded form.
func Dims32(dims []int32) []int64 {
	return shapeinfo.Dims(dims)
}

// DimsInt widens native int dimensions to the 64-bit encoded form.
func DimsInt(dims []int) []int64 {
	return shapeinfo.Dims(dims)
}
