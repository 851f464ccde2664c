package ndarray

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Array is a strided view over a shared Buffer.
//
// The element at multi-index (i0, ..., iN-1) lives at
// buffer[offset + i0*strides[0] + ... + iN-1*strides[N-1]].
// Indexing, slicing and broadcasting return new views over the same Buffer;
// element data is only copied by Copy, ToSlice and FromSlice.
//
// The rank of a view is fixed when it is created. Integer indexing returns a
// view of rank N-1, BroadcastTo returns a view of the target rank.
type Array[T any] struct {
	ref     *viewRef[T]
	size    int
	offset  int
	shape   Shape
	strides Strides
}

// viewRef is one view's reference on its buffer.
type viewRef[T any] struct {
	buf     *Buffer[T]
	dropped atomic.Bool
}

func (r *viewRef[T]) drop() {
	if r.dropped.CompareAndSwap(false, true) {
		r.buf.Release()
	}
}

// newArray takes ownership of one reference on buf.
func newArray[T any](buf *Buffer[T], offset int, shape Shape, strides Strides) *Array[T] {
	a := &Array[T]{
		ref:     &viewRef[T]{buf: buf},
		size:    shape.NumElements(),
		offset:  offset,
		shape:   shape,
		strides: strides,
	}
	// Views that are never released explicitly give their reference back when collected.
	runtime.AddCleanup(a, func(r *viewRef[T]) { r.drop() }, a.ref)
	return a
}

// derive returns a new view over the same buffer.
func (a *Array[T]) derive(offset int, shape Shape, strides Strides) *Array[T] {
	a.checkLive()
	buf, offset := a.ref.buf.Alias(offset)
	return newArray(buf, offset, shape, strides)
}

func (a *Array[T]) checkLive() {
	if a.ref.dropped.Load() {
		panic("ndarray: use of released view")
	}
}

func (a *Array[T]) data() []T {
	a.checkLive()
	return a.ref.buf.slice()
}

// Shape returns a copy of the view's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns a copy of the view's strides.
func (a *Array[T]) Strides() Strides {
	return a.strides.Clone()
}

// Offset returns the element offset of the first addressed element.
func (a *Array[T]) Offset() int {
	return a.offset
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// Len returns the number of addressed elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Buffer returns the shared storage handle.
func (a *Array[T]) Buffer() *Buffer[T] {
	return a.ref.buf
}

// IsContiguous reports whether the view has default row-major strides.
func (a *Array[T]) IsContiguous() bool {
	return a.strides.Equal(a.shape.ComputeStrides())
}

// String returns a short description of the view.
func (a *Array[T]) String() string {
	var zero T
	return fmt.Sprintf("Array[%T]%v strides=%v offset=%d", zero, a.shape, a.strides, a.offset)
}

// Release drops this view's reference on the buffer. It is safe to call more
// than once; the view must not be used afterwards.
func (a *Array[T]) Release() {
	a.ref.drop()
}

// Clone returns a new view identical to a, holding its own buffer reference.
func (a *Array[T]) Clone() *Array[T] {
	return a.derive(a.offset, a.shape.Clone(), a.strides.Clone())
}

// Full returns the whole view unchanged. It is the Ellipsis selection.
func (a *Array[T]) Full() *Array[T] {
	return a.Clone()
}

// normalize resolves a negative index against axis dim and bounds-checks it.
func (a *Array[T]) normalize(op string, idx, dim int) (int, error) {
	if len(a.shape) == 0 {
		return 0, indexErrorf(op, "too many indices for rank-0 view")
	}
	if dim < 0 || dim >= len(a.shape) {
		return 0, indexErrorf(op, "invalid index dimension %d for rank %d", dim, len(a.shape))
	}

	n := a.shape[dim]
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, indexErrorf(op, "index %d out of bounds for axis %d with size %d", idx, dim, n)
	}
	return idx, nil
}

// Index selects position i of axis 0 and returns a view of rank N-1.
// Negative i counts from the end. Indexing a rank-1 view yields a rank-0
// view of one element; use Elem for a direct element pointer.
func (a *Array[T]) Index(i int) (*Array[T], error) {
	i, err := a.normalize("index", i, 0)
	if err != nil {
		return nil, err
	}

	offset := a.offset + i*a.strides[0]
	return a.derive(offset, subarray(a.shape, 1), subarray(a.strides, 1)), nil
}

// Elem returns a pointer to element i of a rank-1 view.
// The pointer does not keep the buffer alive: for views with a release
// action, keep the view reachable (runtime.KeepAlive) while it is in use.
func (a *Array[T]) Elem(i int) (*T, error) {
	if len(a.shape) != 1 {
		return nil, indexErrorf("elem", "element access needs a rank-1 view, got rank %d", len(a.shape))
	}
	i, err := a.normalize("elem", i, 0)
	if err != nil {
		return nil, err
	}
	return a.ptr("elem", a.offset+i*a.strides[0])
}

// At returns a pointer to the element at the given multi-index, one index per axis.
// Like Elem, the view must outlive the pointer.
func (a *Array[T]) At(indices ...int) (*T, error) {
	if len(indices) != len(a.shape) {
		return nil, indexErrorf("at", "expected %d indices, got %d", len(a.shape), len(indices))
	}

	offset := a.offset
	for dim, idx := range indices {
		idx, err := a.normalize("at", idx, dim)
		if err != nil {
			return nil, err
		}
		offset += idx * a.strides[dim]
	}
	return a.ptr("at", offset)
}

// Ref returns a pointer to the single element of a rank-0 view.
// Like Elem, the view must outlive the pointer.
func (a *Array[T]) Ref() (*T, error) {
	if len(a.shape) != 0 {
		return nil, indexErrorf("ref", "element reference needs a rank-0 view, got rank %d", len(a.shape))
	}
	return a.ptr("ref", a.offset)
}

// Item returns the value of a rank-0 view.
// Panics if the view is not a scalar.
func (a *Array[T]) Item() T {
	p, err := a.Ref()
	if err != nil {
		panic(err)
	}
	return *p
}

// SetItem stores v in a rank-0 view.
// Panics if the view is not a scalar.
func (a *Array[T]) SetItem(v T) {
	p, err := a.Ref()
	if err != nil {
		panic(err)
	}
	*p = v
}

// ptr bounds-checks a physical offset against the buffer.
func (a *Array[T]) ptr(op string, offset int) (*T, error) {
	data := a.data()
	if offset < 0 || offset >= len(data) {
		return nil, indexErrorf(op, "element %d lies outside buffer of %d elements", offset, len(data))
	}
	return &data[offset], nil
}

// Slice applies s to axis s.Dim and returns a view of the same rank.
//
// Start and Stop are normalized by adding the axis length once if negative.
// Start must then lie within the axis; Stop may exceed it. The new axis
// length is ceil((Stop-Start)/Step) and its stride is multiplied by Step.
func (a *Array[T]) Slice(s Slice) (*Array[T], error) {
	if len(a.shape) == 0 {
		return nil, indexErrorf("slice", "cannot slice a rank-0 view")
	}
	if s.Dim < 0 || s.Dim >= len(a.shape) {
		return nil, indexErrorf("slice", "invalid index dimension %d for rank %d", s.Dim, len(a.shape))
	}
	if s.Step < 1 {
		return nil, indexErrorf("slice", "step must be positive, got %d", s.Step)
	}

	dim := s.Dim
	n := s.Normalize(a.shape[dim])
	if n.Start < 0 || n.Start >= a.shape[dim] {
		return nil, indexErrorf("slice", "start %d out of bounds for axis %d with size %d", s.Start, dim, a.shape[dim])
	}
	if n.Stop < n.Start {
		return nil, indexErrorf("slice", "stop %d precedes start %d on axis %d", n.Stop, n.Start, dim)
	}

	shape := a.shape.Clone()
	strides := a.strides.Clone()
	offset := a.offset + n.Start*strides[dim]

	shape[dim] = n.Len()
	// A length-1 axis never advances, so its stride is left as is; the
	// product could overflow for a step larger than the axis.
	if shape[dim] > 1 {
		strides[dim] *= n.Step
	}

	return a.derive(offset, shape, strides), nil
}

// BroadcastTo returns a view of the target shape reading the same elements.
//
// The view's shape is right-aligned under target. Equal axes keep their
// stride, length-1 axes and missing leading axes get stride 0. Any other
// mismatch, or a target of lower rank, is a DimensionError.
func (a *Array[T]) BroadcastTo(target Shape) (*Array[T], error) {
	if err := target.Validate(); err != nil {
		return nil, &DimensionError{Op: "broadcast", Msg: err.Error()}
	}
	if len(target) < len(a.shape) {
		return nil, dimensionErrorf("broadcast", "can only broadcast to equal or higher rank: %v to %v", a.shape, target)
	}

	strides := make(Strides, len(target))
	lead := len(target) - len(a.shape)

	for i := len(a.shape) - 1; i >= 0; i-- {
		switch {
		case target[i+lead] == a.shape[i]:
			strides[i+lead] = a.strides[i]
		case a.shape[i] == 1:
			strides[i+lead] = 0
		default:
			return nil, dimensionErrorf("broadcast", "operands could not be broadcast together: %v to %v (axis %d: %d vs %d)",
				a.shape, target, i, a.shape[i], target[i+lead])
		}
	}

	return a.derive(a.offset, target.Clone(), strides), nil
}

// Select applies index expressions left to right, each to the result of the
// previous one, and returns the final view.
//
// Example:
//
//	v, err := a.Select(ndarray.Int(2), ndarray.Span(1, 11, 2))
func (a *Array[T]) Select(exprs ...Expr) (*Array[T], error) {
	cur := a.Full()
	for pos, e := range exprs {
		next, err := cur.selectOne(e)
		cur.Release()
		if err != nil {
			return nil, errors.Wrapf(err, "index expression %d (%s)", pos, e)
		}
		cur = next
	}
	return cur, nil
}

func (a *Array[T]) selectOne(e Expr) (*Array[T], error) {
	switch e := e.(type) {
	case Int:
		return a.Index(int(e))
	case Slice:
		return a.Slice(e)
	case EllipsisMarker:
		return a.Full(), nil
	default:
		return nil, indexErrorf("select", "unsupported index expression %T", e)
	}
}

// Fill stores v in every addressed element, in iteration order.
func (a *Array[T]) Fill(v T) {
	data := a.data()
	for k := 0; k < a.size; k++ {
		data[a.physical(k)] = v
	}
}

// Assign broadcasts src to a's shape and copies it element by element in
// iteration order. Overlapping src and a are copied in that single scan
// without an intermediate buffer, so the result is only well defined when
// both walks visit corresponding elements in the same order.
func (a *Array[T]) Assign(src *Array[T]) error {
	tmp, err := src.BroadcastTo(a.shape)
	if err != nil {
		return errors.Wrap(err, "assign")
	}
	defer tmp.Release()

	dst, s := a.data(), tmp.data()
	for k := 0; k < a.size; k++ {
		dst[a.physical(k)] = s[tmp.physical(k)]
	}
	return nil
}

// Copy returns a contiguous, owned deep copy of the view.
func (a *Array[T]) Copy() (*Array[T], error) {
	out, err := Make[T](a.shape)
	if err != nil {
		return nil, err
	}
	if err := out.Assign(a); err != nil {
		out.Release()
		return nil, err
	}
	return out, nil
}

// ToSlice copies the addressed elements out in row-major order.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, 0, a.size)
	for v := range a.Values() {
		out = append(out, v)
	}
	return out
}

// physical maps logical row-major position k to a buffer offset.
func (a *Array[T]) physical(k int) int {
	return physicalOffset(a.offset, a.shape, a.strides, k)
}

func physicalOffset(base int, shape Shape, strides Strides, k int) int {
	off := base
	for i := len(shape) - 1; i >= 0; i-- {
		d := shape[i]
		off += (k % d) * strides[i]
		k /= d
	}
	return off
}
