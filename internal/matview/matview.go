// Package matview bridges gonum matrices and ndarray views.
//
// FromDense and FromVecDense wrap gonum storage without copying, so the view
// and the matrix alias the same elements. ToDense copies a view out.
package matview

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// FromDense returns a rank-2 view over m's backing slice.
// The row stride of the view is m's row stride, so submatrices obtained with
// m.Slice keep addressing the parent's storage.
func FromDense(m *mat.Dense) (*ndarray.Array[float64], error) {
	raw := m.RawMatrix()
	v, err := ndarray.MakeView(raw.Data,
		ndarray.Shape{raw.Rows, raw.Cols},
		ndarray.WithStrides(ndarray.Strides{raw.Stride, 1}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "wrap dense matrix")
	}
	return v, nil
}

// FromVecDense returns a rank-1 view over v's backing slice.
func FromVecDense(v *mat.VecDense) (*ndarray.Array[float64], error) {
	raw := v.RawVector()
	a, err := ndarray.MakeView(raw.Data,
		ndarray.Shape{raw.N},
		ndarray.WithStrides(ndarray.Strides{raw.Inc}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "wrap vector")
	}
	return a, nil
}

// ToDense copies a rank-2 view into a new matrix.
func ToDense(a *ndarray.Array[float64]) (*mat.Dense, error) {
	if a.Rank() != 2 {
		return nil, &ndarray.DimensionError{Op: "to dense", Msg: fmt.Sprintf("need a rank-2 view, got shape %v", a.Shape())}
	}
	shape := a.Shape()
	if shape[0] == 0 || shape[1] == 0 {
		return nil, &ndarray.DimensionError{Op: "to dense", Msg: fmt.Sprintf("gonum matrices cannot be empty, got shape %v", shape)}
	}
	return mat.NewDense(shape[0], shape[1], a.ToSlice()), nil
}

// Assign copies m into dst, broadcasting m's r×c shape to dst's shape.
func Assign(dst *ndarray.Array[float64], m mat.Matrix) error {
	dense := mat.DenseCopyOf(m)
	src, err := FromDense(dense)
	if err != nil {
		return err
	}
	defer src.Release()

	return errors.Wrap(dst.Assign(src), "assign matrix")
}

