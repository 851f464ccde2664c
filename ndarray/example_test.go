// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/ndarray/ndarray"
)

func grid() *ndarray.Array[int64] {
	a, _ := ndarray.Make[int64](ndarray.Shape{16, 16})
	for i, p := range a.All() {
		*p = int64(i)
	}
	return a
}

func Example() {
	a := grid()

	v, _ := a.Select(ndarray.Int(2), ndarray.Span(1, 11, 2))
	x, _ := v.Elem(4)
	fmt.Println(*x)

	last, _ := a.Select(ndarray.Int(-1))
	y, _ := last.Elem(-1)
	fmt.Println(*y)
	// Output:
	// 41
	// 255
}

func ExampleArray_Fill() {
	a := grid()
	a.Full().Fill(21)

	even, _ := a.Select(ndarray.Span(0, -1, 2), ndarray.Ellipsis)
	even.Fill(42)

	for i := 0; i < 4; i++ {
		row, _ := a.Index(i)
		fmt.Println(row.ToSlice()[:3])
	}
	// Output:
	// [42 42 42]
	// [21 21 21]
	// [42 42 42]
	// [21 21 21]
}

func ExampleArray_BroadcastTo() {
	one, _ := ndarray.FromSlice([]int{5}, ndarray.Shape{1})
	b, _ := one.BroadcastTo(ndarray.Shape{4})
	fmt.Println(b.ToSlice(), b.Strides())

	three, _ := ndarray.FromSlice([]int{1, 2, 3}, ndarray.Shape{3})
	_, err := three.BroadcastTo(ndarray.Shape{4})
	fmt.Println(errors.Is(err, ndarray.ErrDimension))
	// Output:
	// [5 5 5 5] [0]
	// true
}

func ExampleArray_Index() {
	a := grid()

	_, err := a.Index(a.Shape()[0])
	var idxErr *ndarray.IndexError
	fmt.Println(errors.As(err, &idxErr))
	fmt.Println(err)
	// Output:
	// true
	// index: index 16 out of bounds for axis 0 with size 16
}

func ExampleMakeView() {
	data := []float64{1, 2, 3, 4, 5, 6}

	// Transposed view of a 2x3 row-major matrix.
	t, _ := ndarray.MakeView(data, ndarray.Shape{3, 2}, ndarray.WithStrides(ndarray.Strides{1, 3}))
	fmt.Println(t.ToSlice())

	p, _ := t.At(2, 1)
	*p = 60
	fmt.Println(data)
	// Output:
	// [1 4 2 5 3 6]
	// [1 2 3 4 5 60]
}
