package ndarray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastRowToMatrix(t *testing.T) {
	base := Range[int64](0, 8)
	a, err := MakeView(base, Shape{8})
	require.NoError(t, err)

	b, err := a.BroadcastTo(Shape{8, 8})
	require.NoError(t, err)
	assert.Equal(t, Shape{8, 8}, b.Shape())
	assert.Equal(t, Strides{0, 1}, b.Strides())
	assert.Equal(t, a.Offset(), b.Offset())

	for i := 0; i < 8; i++ {
		row := sel(t, b, Int(i))
		for j := 0; j < 8; j++ {
			assert.Equal(t, base[j], elem(t, row, j))
		}
	}

	idx := 0
	for v := range b.Values() {
		assert.Equal(t, base[idx%8], v)
		idx++
	}
	assert.Equal(t, 64, idx)
}

func TestBroadcastSizeOneAxis(t *testing.T) {
	a, err := FromSlice([]int{7}, Shape{1})
	require.NoError(t, err)

	b, err := a.BroadcastTo(Shape{4})
	require.NoError(t, err)
	assert.Equal(t, Strides{0}, b.Strides())
	assert.Equal(t, []int{7, 7, 7, 7}, b.ToSlice())

	// Writes through any broadcast position land on the single element.
	p, err := b.Elem(3)
	require.NoError(t, err)
	*p = 9
	assert.Equal(t, 9, elem(t, a, 0))
}

func TestBroadcastColumn(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3}, Shape{3, 1})
	require.NoError(t, err)

	b, err := a.BroadcastTo(Shape{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, Strides{0, 1, 0}, b.Strides())
	assert.Equal(t, 2, at(t, b, 1, 1, 3))
	assert.Equal(t, Concat(
		[]int{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3},
		[]int{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3},
	), b.ToSlice())
}

func TestBroadcastIdempotent(t *testing.T) {
	a := grid(t)
	v := sel(t, a, Span(1, 9, 3), Span(2, 16, 4).On(1))

	b, err := v.BroadcastTo(v.Shape())
	require.NoError(t, err)
	assert.Equal(t, v.Shape(), b.Shape())
	assert.Equal(t, v.Strides(), b.Strides())
	assert.Equal(t, v.Offset(), b.Offset())
	assert.Equal(t, v.ToSlice(), b.ToSlice())
}

func TestBroadcastErrors(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	_, err = a.BroadcastTo(Shape{4})
	require.Error(t, err)
	var dimErr *DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Contains(t, dimErr.Msg, "could not be broadcast together")

	_, err = a.BroadcastTo(Shape{})
	assert.ErrorIs(t, err, ErrDimension, "lower rank target")

	_, err = a.BroadcastTo(Shape{-1, 3})
	assert.ErrorIs(t, err, ErrDimension)

	assert.Equal(t, 1, a.Buffer().RefCount())
}

func TestBroadcastScalar(t *testing.T) {
	a, err := FromSlice([]float32{1.5}, Shape{})
	require.NoError(t, err)

	b, err := a.BroadcastTo(Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, 1.5, 1.5, 1.5}, b.ToSlice())

	dst, err := Make[float32](Shape{3})
	require.NoError(t, err)
	require.NoError(t, dst.Assign(a))
	assert.Equal(t, []float32{1.5, 1.5, 1.5}, dst.ToSlice())
}
