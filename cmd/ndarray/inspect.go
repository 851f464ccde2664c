package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/ndarray"
)

type inspectFlags struct {
	shape     string
	expr      string
	broadcast string
	limit     int
}

func newInspectCmd() *cobra.Command {
	f := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the view selected from an array holding 0..N-1",
		Example: `  ndarray inspect --shape 16,16 --expr "2, 1:11:2"
  ndarray inspect --shape 8 --broadcast 3,8`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.shape, "shape", "4,4", "comma separated shape of the source array")
	cmd.Flags().StringVar(&f.expr, "expr", "", `index expressions, e.g. "2, 1:11:2, ..., 0:-1:2@1"`)
	cmd.Flags().StringVar(&f.broadcast, "broadcast", "", "broadcast the selection to this shape")
	cmd.Flags().IntVar(&f.limit, "limit", 32, "maximum number of values to print (0 for all)")
	return cmd
}

func runInspect(cmd *cobra.Command, f *inspectFlags) error {
	shape, err := parseShape(f.shape)
	if err != nil {
		return errors.Wrap(err, "--shape")
	}
	exprs, err := ndarray.ParseExprs(f.expr)
	if err != nil {
		return errors.Wrap(err, "--expr")
	}

	a, err := ndarray.Make[int64](shape)
	if err != nil {
		return err
	}
	defer a.Release()
	for i, p := range a.All() {
		*p = int64(i)
	}

	v, err := a.Select(exprs...)
	if err != nil {
		return err
	}
	defer v.Release()

	if f.broadcast != "" {
		target, err := parseShape(f.broadcast)
		if err != nil {
			return errors.Wrap(err, "--broadcast")
		}
		b, err := v.BroadcastTo(target)
		if err != nil {
			return err
		}
		defer b.Release()
		v = b
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, v)
	fmt.Fprintf(out, "len=%d contiguous=%t\n", v.Len(), v.IsContiguous())

	values := v.ToSlice()
	if f.limit > 0 && len(values) > f.limit {
		fmt.Fprintf(out, "%v ... (%d more)\n", values[:f.limit], len(values)-f.limit)
		return nil
	}
	fmt.Fprintln(out, values)
	return nil
}

func parseShape(s string) (ndarray.Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ndarray.Shape{}, nil
	}

	parts := strings.Split(s, ",")
	shape := make(ndarray.Shape, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "dimension %d", i)
		}
		shape[i] = d
	}
	return shape, nil
}
