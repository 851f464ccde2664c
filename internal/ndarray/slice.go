package ndarray

import "fmt"

// Slice selects Start, Start+Step, ... up to (not including) Stop along axis Dim.
//
// Negative Start and Stop count from the end of the axis: the axis length is
// added once when the slice is applied. Stop may exceed the axis length.
type Slice struct {
	Start int
	Stop  int
	Step  int
	Dim   int // Target axis, fixed at construction
}

// NewSlice returns the slice [start, stop) with step 1 on axis 0.
func NewSlice(start, stop int) Slice {
	return Slice{Start: start, Stop: stop, Step: 1}
}

// Span returns the slice [start, stop) with the given step on axis 0.
func Span(start, stop, step int) Slice {
	return Slice{Start: start, Stop: stop, Step: step}
}

// WithStep returns a copy of s with the given step.
func (s Slice) WithStep(step int) Slice {
	s.Step = step
	return s
}

// On returns a copy of s targeting axis dim.
func (s Slice) On(dim int) Slice {
	s.Dim = dim
	return s
}

// Normalize resolves negative Start/Stop against an axis of the given length.
func (s Slice) Normalize(length int) Slice {
	if s.Start < 0 {
		s.Start += length
	}
	if s.Stop < 0 {
		s.Stop += length
	}
	return s
}

// Len returns ceil((Stop-Start)/Step) for an already normalized slice.
// The result is not clamped; callers reject Stop < Start beforehand.
func (s Slice) Len() int {
	span := s.Stop - s.Start
	if span <= 0 {
		return span / s.Step
	}
	return 1 + (span-1)/s.Step
}

// String renders the slice in start:stop:step@dim form.
func (s Slice) String() string {
	return fmt.Sprintf("%d:%d:%d@%d", s.Start, s.Stop, s.Step, s.Dim)
}

func (Slice) isExpr() {}
