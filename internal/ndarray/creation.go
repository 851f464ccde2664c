package ndarray

import (
	"fmt"

	"github.com/pkg/errors"
)

// Make allocates an owned, zero-filled array with row-major strides and offset 0.
//
// Example:
//
//	a, err := ndarray.Make[int64](ndarray.Shape{16, 16})
//	row, _ := a.Index(2)
func Make[T any](shape Shape) (*Array[T], error) {
	return MakeWithRelease[T](shape, nil)
}

// MakeWithRelease is Make with a hook that runs, with the storage, when the
// last view of the array is released.
func MakeWithRelease[T any](shape Shape, release func([]T)) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}

	size, ok := shape.CheckedNumElements()
	if !ok {
		return nil, &AllocationError{Size: -1, Msg: fmt.Sprintf("element count of shape %v overflows int", shape)}
	}

	buf, err := newOwnedBuffer(size, release)
	if err != nil {
		return nil, err
	}
	return newArray(buf, 0, shape.Clone(), shape.ComputeStrides()), nil
}

// FromSlice allocates an owned array and copies data into it in row-major order.
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	if n := shape.NumElements(); n != len(data) {
		return nil, errors.Errorf("shape %v requires %d elements, but got %d", shape, n, len(data))
	}

	a, err := Make[T](shape)
	if err != nil {
		return nil, err
	}
	copy(a.data(), data)
	return a, nil
}

// ViewOption configures MakeView.
type ViewOption func(*viewOptions)

type viewOptions struct {
	strides Strides
	offset  int
	release func()
}

// WithStrides sets explicit element strides instead of row-major ones.
func WithStrides(strides Strides) ViewOption {
	return func(o *viewOptions) {
		o.strides = strides.Clone()
	}
}

// WithOffset sets the element offset of the first addressed element.
func WithOffset(offset int) ViewOption {
	return func(o *viewOptions) {
		o.offset = offset
	}
}

// WithRelease sets an action to run when the last view over data is released.
// Without it the wrapped memory is never touched on release.
func WithRelease(release func()) ViewOption {
	return func(o *viewOptions) {
		o.release = release
	}
}

// MakeView wraps caller-owned memory without copying. The caller keeps data
// alive, and unchanged in length, for as long as any derived view exists.
func MakeView[T any](data []T, shape Shape, opts ...ViewOption) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}

	options := &viewOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.strides == nil {
		options.strides = shape.ComputeStrides()
	}

	if len(options.strides) != len(shape) {
		return nil, dimensionErrorf("view", "strides %v do not match rank of shape %v", options.strides, shape)
	}
	if options.offset < 0 {
		return nil, indexErrorf("view", "negative offset %d", options.offset)
	}
	for i, s := range options.strides {
		if s < 0 {
			return nil, indexErrorf("view", "negative stride %d on axis %d", s, i)
		}
	}
	if shape.NumElements() > 0 {
		if last := extent(options.offset, shape, options.strides); last >= len(data) {
			return nil, indexErrorf("view", "view of shape %v reaches element %d of %d", shape, last, len(data))
		}
	}

	var release func([]T)
	if options.release != nil {
		fn := options.release
		release = func([]T) { fn() }
	}
	return newArray(WrapBuffer(data, release), options.offset, shape.Clone(), options.strides), nil
}

// extent returns the highest element offset a non-empty view addresses.
func extent(offset int, shape Shape, strides Strides) int {
	last := offset
	for i, dim := range shape {
		last += (dim - 1) * strides[i]
	}
	return last
}
