// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mapped exposes memory-mapped files as ndarray views.
//
// Example:
//
//	a, err := mapped.Map[float32]("weights.bin", ndarray.Shape{1024, 768})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Release() // unmaps once every derived view is released too
//
// Without Writable the mapping is copy-on-write: views can be modified, but
// the file is never changed. Keep a view reachable while pointers into it are
// in use.
package mapped

import (
	"github.com/born-ml/ndarray/internal/mapped"
	"github.com/born-ml/ndarray/ndarray"
)

// DType is the set of element types a mapping can hold.
type DType = mapped.DType

// Option configures Map and Create.
type Option = mapped.Option

// WithByteOffset skips a header of n bytes.
func WithByteOffset(n int64) Option {
	return mapped.WithByteOffset(n)
}

// Writable maps the file shared and writable.
func Writable() Option {
	return mapped.Writable()
}

// Map maps path as a row-major view of shape.
func Map[T DType](path string, shape ndarray.Shape, opts ...Option) (*ndarray.Array[T], error) {
	return mapped.Map[T](path, shape, opts...)
}

// Create makes a zero-filled file for shape and maps it writable.
func Create[T DType](path string, shape ndarray.Shape, opts ...Option) (*ndarray.Array[T], error) {
	return mapped.Create[T](path, shape, opts...)
}
