package ndarray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnedBuffer(t *testing.T) {
	buf, err := NewOwnedBuffer[float32](6)
	require.NoError(t, err)

	assert.Equal(t, 6, buf.Len())
	assert.True(t, buf.Owned())
	assert.True(t, buf.IsUnique())
	assert.Equal(t, 1, buf.RefCount())
}

func TestOwnedBufferAllocationFailure(t *testing.T) {
	_, err := NewOwnedBuffer[int64](-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllocation)

	_, err = NewOwnedBuffer[int64](1 << 62)
	require.Error(t, err)

	var allocErr *AllocationError
	require.True(t, errors.As(err, &allocErr))
	assert.Equal(t, 1<<62, allocErr.Size)
}

func TestBufferAliasSharesStorage(t *testing.T) {
	buf, err := NewOwnedBuffer[int](4)
	require.NoError(t, err)

	alias, offset := buf.Alias(2)
	assert.Same(t, buf, alias)
	assert.Equal(t, 2, offset)
	assert.Equal(t, 2, buf.RefCount())
	assert.False(t, buf.IsUnique())

	alias.slice()[offset] = 7
	assert.Equal(t, 7, buf.slice()[2])
}

func TestBufferReleaseRunsOnce(t *testing.T) {
	calls := 0
	data := []int{1, 2, 3}
	buf := WrapBuffer(data, func(d []int) {
		calls++
		assert.Equal(t, []int{1, 2, 3}, d)
	})
	buf.Alias(0)

	buf.Release()
	assert.Equal(t, 0, calls, "one reference still held")
	assert.False(t, buf.Released())

	buf.Release()
	assert.Equal(t, 1, calls)
	assert.True(t, buf.Released())

	// Extra releases are ignored.
	buf.Release()
	assert.Equal(t, 1, calls)
}

func TestWrapBufferWithoutRelease(t *testing.T) {
	data := []int{1, 2, 3}
	buf := WrapBuffer(data, nil)
	assert.False(t, buf.Owned())

	buf.Release()
	assert.Equal(t, []int{1, 2, 3}, data, "foreign memory must be left alone")
}
