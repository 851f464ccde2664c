package ndarray

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching.
var (
	ErrIndex      = errors.New("index error")
	ErrDimension  = errors.New("dimension error")
	ErrAllocation = errors.New("allocation error")
)

// IndexError reports a bad integer or slice index: out of range,
// too many indices, or an invalid target axis.
type IndexError struct {
	Op  string // Operation that rejected the index (e.g. "index", "slice")
	Msg string
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Is reports whether target is ErrIndex.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndex
}

// DimensionError reports shapes that cannot be broadcast together.
type DimensionError struct {
	Op  string
	Msg string
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Is reports whether target is ErrDimension.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimension
}

// AllocationError reports that storage for an owned buffer could not be obtained.
type AllocationError struct {
	Size int // Requested element count (-1 when the count itself overflowed)
	Msg  string
}

// Error implements the error interface.
func (e *AllocationError) Error() string {
	if e.Size < 0 {
		return "allocate: " + e.Msg
	}
	return fmt.Sprintf("allocate %d elements: %s", e.Size, e.Msg)
}

// Is reports whether target is ErrAllocation.
func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}

func indexErrorf(op, format string, args ...any) error {
	return &IndexError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

func dimensionErrorf(op, format string, args ...any) error {
	return &DimensionError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
