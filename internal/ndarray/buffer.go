package ndarray

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Buffer is reference-counted element storage shared by every view derived
// from one root array. Its release action runs exactly once, when the last
// reference is dropped.
//
// Owned buffers are allocated by NewOwnedBuffer; wrapped buffers adopt
// caller memory and, unless a release action is supplied, leave it alone.
// A Buffer never changes size.
type Buffer[T any] struct {
	data     []T
	refCount atomic.Int32
	mu       sync.Mutex // Serializes the release action
	release  func([]T)
	owned    bool
}

// NewOwnedBuffer allocates storage for size zeroed elements.
func NewOwnedBuffer[T any](size int) (*Buffer[T], error) {
	return newOwnedBuffer[T](size, nil)
}

func newOwnedBuffer[T any](size int, hook func([]T)) (buf *Buffer[T], err error) {
	if size < 0 {
		return nil, &AllocationError{Size: size, Msg: "negative size"}
	}

	// make panics on lengths the runtime cannot satisfy.
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, &AllocationError{Size: size, Msg: fmt.Sprint(r)}
		}
	}()
	data := make([]T, size)

	buf = &Buffer[T]{data: data, owned: true, release: hook}
	buf.refCount.Store(1)
	return buf, nil
}

// WrapBuffer adopts caller-supplied memory. release is called with data when
// the last reference is dropped; nil means the memory is not ours to free.
func WrapBuffer[T any](data []T, release func([]T)) *Buffer[T] {
	buf := &Buffer[T]{data: data, release: release}
	buf.refCount.Store(1)
	return buf
}

// Alias returns a new reference to the same storage positioned at offset.
// No element is copied.
func (b *Buffer[T]) Alias(offset int) (*Buffer[T], int) {
	b.addRef()
	return b, offset
}

// Len returns the number of elements in the storage.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// RefCount returns the current number of references.
func (b *Buffer[T]) RefCount() int {
	return int(b.refCount.Load())
}

// IsUnique returns true if this buffer has exactly one reference.
func (b *Buffer[T]) IsUnique() bool {
	return b.refCount.Load() == 1
}

// Owned reports whether the storage was allocated by this package.
func (b *Buffer[T]) Owned() bool {
	return b.owned
}

// Released reports whether the release action has run.
func (b *Buffer[T]) Released() bool {
	return b.refCount.Load() <= 0
}

// Release drops one reference. Extra calls after the count reaches zero are ignored.
func (b *Buffer[T]) Release() {
	for {
		n := b.refCount.Load()
		if n <= 0 {
			return
		}
		if b.refCount.CompareAndSwap(n, n-1) {
			if n == 1 {
				b.free()
			}
			return
		}
	}
}

func (b *Buffer[T]) addRef() {
	b.refCount.Add(1)
}

func (b *Buffer[T]) free() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.release != nil {
		b.release(b.data)
	}
	b.data = nil
}

// slice returns the backing storage without locking; views only call it
// while they hold a reference, so it cannot be freed underneath them.
func (b *Buffer[T]) slice() []T {
	return b.data
}
