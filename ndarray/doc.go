// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides strided N-dimensional array views for Go.
//
// # Overview
//
// An Array is a view: a shared, reference-counted Buffer seen through an
// element offset, a shape and a stride per axis. Indexing, slicing and
// broadcasting never copy element data; they return new views over the same
// Buffer, so a write through one view is visible through every other view
// of that Buffer.
//
// # Basic Usage
//
//	a, err := ndarray.Make[int64](ndarray.Shape{16, 16})
//	if err != nil {
//	    return err
//	}
//	for i, p := range a.All() {
//	    *p = int64(i)
//	}
//
//	// a[2][1:11:2][4]
//	v, _ := a.Select(ndarray.Int(2), ndarray.Span(1, 11, 2))
//	x, _ := v.Elem(4) // *x == 41
//
// # Index Expressions
//
// Select applies expressions left to right, like chained subscripts:
//   - Int(i): pick position i of axis 0, dropping that axis. Negative i counts from the end.
//   - Slice: keep Start, Start+Step, ... below Stop on axis Dim.
//   - Ellipsis: the whole view unchanged.
//
// # Broadcasting
//
// BroadcastTo right-aligns the view's shape under a target of equal or
// higher rank. Length-1 and missing leading axes get stride 0:
//
//	row, _ := ndarray.FromSlice([]float64{1, 2, 3}, ndarray.Shape{3})
//	m, _ := row.BroadcastTo(ndarray.Shape{4, 3}) // 4 rows, all reading row
//
// Assign broadcasts its source the same way before copying.
//
// # Memory Management
//
// Make allocates an owned Buffer. MakeView wraps caller memory and leaves it
// alone on release unless WithRelease supplies an action. Every view holds
// one reference; Release drops it early, otherwise it is dropped when the
// view is garbage collected. The release action runs once, after the last
// reference is gone.
//
// Views are not synchronized. Concurrent reads are safe; concurrent writes to
// overlapping elements are the caller's problem.
package ndarray
