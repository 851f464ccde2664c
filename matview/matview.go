// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matview converts between gonum matrices and ndarray views.
//
// Example:
//
//	m := mat.NewDense(4, 4, nil)
//	v, _ := matview.FromDense(m)
//	col, _ := v.Slice(ndarray.NewSlice(0, 1).On(1))
//	col.Fill(1) // sets m's first column
package matview

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/matview"
	"github.com/born-ml/ndarray/ndarray"
)

// FromDense returns a rank-2 view sharing m's storage.
func FromDense(m *mat.Dense) (*ndarray.Array[float64], error) {
	return matview.FromDense(m)
}

// FromVecDense returns a rank-1 view sharing v's storage.
func FromVecDense(v *mat.VecDense) (*ndarray.Array[float64], error) {
	return matview.FromVecDense(v)
}

// ToDense copies a rank-2 view into a new matrix.
func ToDense(a *ndarray.Array[float64]) (*mat.Dense, error) {
	return matview.ToDense(a)
}

// Assign copies m into dst with broadcasting.
func Assign(dst *ndarray.Array[float64], m mat.Matrix) error {
	return matview.Assign(dst, m)
}
