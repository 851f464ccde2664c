// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Type aliases for public API

// Array is a strided view over a shared Buffer.
type Array[T any] = ndarray.Array[T]

// Buffer is reference-counted element storage with a release action.
type Buffer[T any] = ndarray.Buffer[T]

// Iterator walks a view in row-major logical order.
type Iterator[T any] = ndarray.Iterator[T]

// Shape represents the per-axis lengths of an array.
// Example: Shape{2, 3, 4} is a rank-3 array of 2×3×4 elements.
type Shape = ndarray.Shape

// Strides holds the per-axis element step.
type Strides = ndarray.Strides

// Slice selects Start, Start+Step, ... below Stop on axis Dim.
type Slice = ndarray.Slice

// Expr is an index expression accepted by Array.Select.
type Expr = ndarray.Expr

// Int is an integer index expression on axis 0.
type Int = ndarray.Int

// ViewOption configures MakeView.
type ViewOption = ndarray.ViewOption

// Error types.
type (
	IndexError      = ndarray.IndexError
	DimensionError  = ndarray.DimensionError
	AllocationError = ndarray.AllocationError
)

// Sentinel errors for errors.Is.
var (
	ErrIndex      = ndarray.ErrIndex
	ErrDimension  = ndarray.ErrDimension
	ErrAllocation = ndarray.ErrAllocation
)

// Ellipsis selects the whole view unchanged.
var Ellipsis = ndarray.Ellipsis

// Make allocates an owned, zero-filled array with row-major strides.
func Make[T any](shape Shape) (*Array[T], error) {
	return ndarray.Make[T](shape)
}

// MakeWithRelease is Make with a hook run when the last view is released.
func MakeWithRelease[T any](shape Shape, release func([]T)) (*Array[T], error) {
	return ndarray.MakeWithRelease(shape, release)
}

// FromSlice allocates an owned array holding a copy of data.
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	return ndarray.FromSlice(data, shape)
}

// MakeView wraps caller memory without copying.
func MakeView[T any](data []T, shape Shape, opts ...ViewOption) (*Array[T], error) {
	return ndarray.MakeView(data, shape, opts...)
}

// NewOwnedBuffer allocates a standalone owned buffer.
func NewOwnedBuffer[T any](size int) (*Buffer[T], error) {
	return ndarray.NewOwnedBuffer[T](size)
}

// WrapBuffer adopts caller memory as a buffer.
func WrapBuffer[T any](data []T, release func([]T)) *Buffer[T] {
	return ndarray.WrapBuffer(data, release)
}

// WithStrides sets explicit strides for MakeView.
func WithStrides(strides Strides) ViewOption {
	return ndarray.WithStrides(strides)
}

// WithOffset sets the element offset for MakeView.
func WithOffset(offset int) ViewOption {
	return ndarray.WithOffset(offset)
}

// WithRelease sets the release action for MakeView.
func WithRelease(release func()) ViewOption {
	return ndarray.WithRelease(release)
}

// NewSlice returns the slice [start, stop) with step 1 on axis 0.
func NewSlice(start, stop int) Slice {
	return ndarray.NewSlice(start, stop)
}

// Span returns the slice [start, stop) with the given step on axis 0.
func Span(start, stop, step int) Slice {
	return ndarray.Span(start, stop, step)
}

// ParseExprs parses index expressions such as "2, 1:11:2, ...".
func ParseExprs(src string) ([]Expr, error) {
	return ndarray.ParseExprs(src)
}

// FirstNonZeroOr returns the first non-zero stride or fallback.
func FirstNonZeroOr(strides Strides, fallback int) int {
	return ndarray.FirstNonZeroOr(strides, fallback)
}
