package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorOrder(t *testing.T) {
	a, err := FromSlice(Range[int64](0, 16), Shape{4, 4})
	require.NoError(t, err)

	tests := []struct {
		name  string
		exprs []Expr
		want  []int64
	}{
		{"full", nil, Range[int64](0, 16)},
		{"row", []Expr{Int(3)}, Range[int64](12, 16)},
		{"leading rows", []Expr{NewSlice(0, 2)}, Range[int64](0, 8)},
		{"strided rows", []Expr{Span(0, 4, 2)}, Concat(Range[int64](0, 4), Range[int64](8, 12))},
		{"column", []Expr{Span(1, 2, 1).On(1)}, []int64{1, 5, 9, 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := sel(t, a, tt.exprs...)
			var got []int64
			for it := v.Iter(); it.Next(); {
				got = append(got, it.Value())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIteratorPositions(t *testing.T) {
	a := grid(t)
	v := sel(t, a, Span(1, 5, 2), Span(0, 16, 8).On(1))

	var logical, physical []int
	for it := v.Iter(); it.Next(); {
		logical = append(logical, it.Index())
		physical = append(physical, it.Offset())
	}
	assert.Equal(t, []int{0, 1, 2, 3}, logical)
	assert.Equal(t, []int{16, 24, 48, 56}, physical)
}

func TestIteratorRestartable(t *testing.T) {
	a := grid(t)
	v := sel(t, a, Int(7))

	first := v.ToSlice()
	second := v.ToSlice()
	assert.Equal(t, first, second)

	it1, it2 := v.Iter(), v.Iter()
	require.True(t, it1.Next())
	require.True(t, it2.Next())
	assert.True(t, it1.Equal(it2))

	require.True(t, it1.Next())
	assert.False(t, it1.Equal(it2))
}

func TestIteratorWritesThroughPointers(t *testing.T) {
	a, err := FromSlice(Range(0, 6), Shape{2, 3})
	require.NoError(t, err)

	for _, p := range a.All() {
		*p *= 10
	}
	assert.Equal(t, []int{0, 10, 20, 30, 40, 50}, a.ToSlice())
}

func TestIteratorEarlyBreak(t *testing.T) {
	a := grid(t)

	n := 0
	for i, p := range a.All() {
		if i == 5 {
			break
		}
		assert.Equal(t, int64(i), *p)
		n++
	}
	assert.Equal(t, 5, n)
}

func TestIteratorEndOffset(t *testing.T) {
	a := grid(t)
	it := a.Iter()
	assert.Equal(t, 256, it.EndOffset())

	// Axis 0 broadcast: the end must not coincide with the first element.
	row, err := FromSlice(Range(0, 8), Shape{8})
	require.NoError(t, err)
	b, err := row.BroadcastTo(Shape{8, 8})
	require.NoError(t, err)

	bit := b.Iter()
	assert.Equal(t, 8, bit.EndOffset())

	count := 0
	for bit.Next() {
		count++
	}
	assert.Equal(t, 64, count, "termination is by counter, not by position")
	assert.Equal(t, 8, bit.Offset())
}

func TestIteratorEmptyView(t *testing.T) {
	a, err := Make[int](Shape{3, 0})
	require.NoError(t, err)

	it := a.Iter()
	assert.False(t, it.Next())
	assert.Empty(t, a.ToSlice())
}
