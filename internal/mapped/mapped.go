// Package mapped adopts memory-mapped files as ndarray buffers.
//
// The mapping is released, and the file closed, when the last view over it
// is released. Elements are read in the host's native byte order.
//
// Pointers obtained from a mapped view (Elem, At, Ref, iterator Ptr) are only
// valid while the view is reachable; use runtime.KeepAlive on the view when
// the pointer outlives the last use of the view.
package mapped

import (
	"os"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// DType is the set of fixed-size element types a mapping can hold.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// Option configures Map and Create.
type Option func(*options)

type options struct {
	byteOffset int64
	writable   bool
}

// WithByteOffset skips a header of n bytes before the first element.
// n must be a multiple of the element size.
func WithByteOffset(n int64) Option {
	return func(o *options) {
		o.byteOffset = n
	}
}

// Writable maps the file shared and writable: writes through any view reach the file.
// Without it the mapping is copy-on-write, so views may still be written but
// the changes stay private to the process.
func Writable() Option {
	return func(o *options) {
		o.writable = true
	}
}

// Map maps path and returns a row-major view of shape over its contents.
//
// Important: release the view (and every view derived from it) to unmap the
// file, or leave it to the garbage collector. Element pointers taken from the
// view do not keep the mapping alive.
func Map[T DType](path string, shape ndarray.Shape, opts ...Option) (*ndarray.Array[T], error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	n, need, err := layout[T](shape, o)
	if err != nil {
		return nil, err
	}

	flag := os.O_RDONLY
	if o.writable {
		flag = os.O_RDWR
	}
	//nolint:gosec // G304: mapping a caller-chosen file is the purpose of this package
	file, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "failed to stat file")
	}

	if stat.Size() < need {
		_ = file.Close()
		return nil, errors.Errorf("file %s holds %d bytes, shape %v needs %d", path, stat.Size(), shape, need)
	}

	data, err := mmapFile(file, need, o.writable)
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "mmap failed")
	}

	//nolint:gosec // unsafe.Slice reinterprets the page-aligned mapping, length checked against the file size above
	elems := unsafe.Slice((*T)(unsafe.Pointer(&data[o.byteOffset])), n)

	release := func() {
		_ = munmapFile(data)
		_ = file.Close()
	}

	v, err := ndarray.MakeView(elems, shape, ndarray.WithRelease(release))
	if err != nil {
		release()
		return nil, err
	}
	return v, nil
}

// Create makes (or truncates) a zero-filled file large enough for shape and
// maps it writable.
func Create[T DType](path string, shape ndarray.Shape, opts ...Option) (*ndarray.Array[T], error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	_, size, err := layout[T](shape, o)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // G304: see Map
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file")
	}
	if err := file.Truncate(size); err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "failed to size file")
	}
	if err := file.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close file")
	}

	return Map[T](path, shape, append(opts, Writable())...)
}

// layout validates shape and the header offset, and returns the element count
// and the number of file bytes the mapping covers.
func layout[T DType](shape ndarray.Shape, o *options) (int, int64, error) {
	if err := shape.Validate(); err != nil {
		return 0, 0, errors.Wrap(err, "invalid shape")
	}
	n, ok := shape.CheckedNumElements()
	if !ok || n == 0 {
		return 0, 0, errors.Errorf("cannot map shape %v", shape)
	}

	var zero T
	elemSize := int64(unsafe.Sizeof(zero))
	if o.byteOffset < 0 || o.byteOffset%elemSize != 0 {
		return 0, 0, errors.Errorf("byte offset %d is not a non-negative multiple of %d", o.byteOffset, elemSize)
	}
	return n, o.byteOffset + int64(n)*elemSize, nil
}
