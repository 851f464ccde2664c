package ndarray

import "iter"

// Iterator walks the elements of a view in row-major logical order,
// whatever the physical strides.
//
// The logical counter is decomposed against the shape on each step; the
// walk ends when the counter reaches the view's length.
//
//	for it := a.Iter(); it.Next(); {
//		*it.Ptr() *= 2
//	}
type Iterator[T any] struct {
	view    *Array[T] // Keeps the view's buffer reference alive during the walk
	data    []T
	base    int
	shape   Shape
	strides Strides
	size    int
	k       int // Logical position of the next element
	pos     int // Physical offset of the current element
}

// Iter returns a fresh iterator positioned before the first element.
func (a *Array[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		view:    a,
		data:    a.data(),
		base:    a.offset,
		shape:   a.shape,
		strides: a.strides,
		size:    a.size,
		pos:     -1,
	}
}

// Next advances to the next element and reports whether there is one.
func (it *Iterator[T]) Next() bool {
	if it.k >= it.size {
		it.pos = it.EndOffset()
		return false
	}
	it.pos = physicalOffset(it.base, it.shape, it.strides, it.k)
	it.k++
	return true
}

// Index returns the logical row-major position of the current element.
func (it *Iterator[T]) Index() int {
	return it.k - 1
}

// Offset returns the physical buffer offset of the current element.
func (it *Iterator[T]) Offset() int {
	return it.pos
}

// Ptr returns a pointer to the current element.
func (it *Iterator[T]) Ptr() *T {
	return &it.data[it.pos]
}

// Value returns the current element.
func (it *Iterator[T]) Value() T {
	return it.data[it.pos]
}

// Equal reports whether both iterators sit at the same physical position.
// Comparing iterators over different buffers is meaningless.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.pos == other.pos
}

// EndOffset is the one-past-the-end position: the axis-0 length times the
// first non-zero stride, past the base. It stays distinct from the first
// element when axis 0 is broadcast. Iteration does not rely on it.
func (it *Iterator[T]) EndOffset() int {
	if len(it.shape) == 0 {
		return it.base + 1
	}
	return it.base + it.shape[0]*FirstNonZeroOr(it.strides, 1)
}

// All yields the logical position and a pointer to each element.
func (a *Array[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for it := a.Iter(); it.Next(); {
			if !yield(it.Index(), it.Ptr()) {
				return
			}
		}
	}
}

// Values yields each element by value.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := a.Iter(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
