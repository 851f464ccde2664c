package ndarray

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// Shape represents the per-axis lengths of an array.
type Shape []int

// Strides holds the per-axis element step used for address computation.
type Strides []int

// NumElements returns the total number of elements.
// A rank-0 shape describes a single element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// CheckedNumElements is NumElements with overflow detection.
func (s Shape) CheckedNumElements() (int, bool) {
	n := uint64(1)
	for _, dim := range s {
		if dim < 0 {
			return 0, false
		}
		hi, lo := bits.Mul64(n, uint64(dim))
		if hi != 0 || lo > math.MaxInt {
			return 0, false
		}
		n = lo
	}
	return int(n), true
}

// Validate checks that no dimension is negative. Zero-length axes are allowed.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	return append(Shape(make([]int, 0, len(s))), s...)
}

// ComputeStrides calculates row-major strides for the shape:
// stride[N-1] = 1, stride[i] = shape[i+1] * stride[i+1].
func (s Shape) ComputeStrides() Strides {
	strides := make(Strides, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Clone returns a copy of the strides.
func (s Strides) Clone() Strides {
	return append(Strides(make([]int, 0, len(s))), s...)
}

// Equal checks if two stride sequences are equal.
func (s Strides) Equal(other Strides) bool {
	return Shape(s).Equal(Shape(other))
}

// FirstNonZeroOr returns the first non-zero stride, or fallback if every
// stride is zero (a fully broadcast view) or there are none.
func FirstNonZeroOr(strides Strides, fallback int) int {
	for _, s := range strides {
		if s != 0 {
			return s
		}
	}
	return fallback
}

// subarray drops the first skip entries of s.
func subarray[S ~[]int](s S, skip int) S {
	out := make(S, len(s)-skip)
	copy(out, s[skip:])
	return out
}

// Integer is the set of element types Range can produce.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Range returns start, start+1, ..., stop-1.
func Range[T Integer](start, stop T) []T {
	if stop <= start {
		return []T{}
	}
	out := make([]T, 0, int(stop-start))
	for v := start; v < stop; v++ {
		out = append(out, v)
	}
	return out
}

// Concat joins slices in order.
func Concat[T any](parts ...[]T) []T {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]T, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
