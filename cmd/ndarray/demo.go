package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/ndarray"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through indexing, slicing, broadcasting and assignment on a 16x16 array",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(out io.Writer) error {
	a, err := ndarray.Make[int64](ndarray.Shape{16, 16})
	if err != nil {
		return err
	}
	defer a.Release()
	for i, p := range a.All() {
		*p = int64(i)
	}
	fmt.Fprintln(out, "array:", a)

	v, err := a.Select(ndarray.Int(2), ndarray.Span(1, 11, 2))
	if err != nil {
		return err
	}
	x, err := v.Elem(4)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "a[2][1:11:2] = %v, [4] = %d\n", v.ToSlice(), *x)
	v.Release()

	last, err := a.At(-1, -1)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "a[-1][-1] = %d\n", *last)

	_, err = a.Index(16)
	var idxErr *ndarray.IndexError
	fmt.Fprintf(out, "a[16] fails with IndexError: %t (%v)\n", errors.As(err, &idxErr), err)

	full := a.Full()
	full.Fill(21)
	full.Release()
	even, err := a.Select(ndarray.Span(0, -1, 2), ndarray.Ellipsis)
	if err != nil {
		return err
	}
	even.Fill(42)
	even.Release()
	for i := 0; i < 3; i++ {
		p, err := a.At(i, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "row %d reads %d\n", i, *p)
	}

	one, err := ndarray.FromSlice([]int64{7}, ndarray.Shape{1})
	if err != nil {
		return err
	}
	defer one.Release()
	b, err := one.BroadcastTo(ndarray.Shape{4})
	if err != nil {
		return err
	}
	defer b.Release()
	fmt.Fprintf(out, "(1,) -> (4,): %v strides %v\n", b.ToSlice(), b.Strides())

	three, err := ndarray.FromSlice([]int64{1, 2, 3}, ndarray.Shape{3})
	if err != nil {
		return err
	}
	defer three.Release()
	_, err = three.BroadcastTo(ndarray.Shape{4})
	fmt.Fprintf(out, "(3,) -> (4,): %v\n", err)
	return nil
}
