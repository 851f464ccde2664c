package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ndarray "+version+"\n", out)
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "a[2][1:11:2] = [33 35 37 39 41], [4] = 41")
	assert.Contains(t, out, "a[-1][-1] = 255")
	assert.Contains(t, out, "a[16] fails with IndexError: true")
	assert.Contains(t, out, "row 0 reads 42")
	assert.Contains(t, out, "row 1 reads 21")
	assert.Contains(t, out, "(1,) -> (4,): [7 7 7 7] strides [0]")
	assert.Contains(t, out, "operands could not be broadcast together")
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", "--shape", "16,16", "--expr", "2, 1:11:2")
	require.NoError(t, err)
	assert.Equal(t, "Array[int64][5] strides=[2] offset=33\nlen=5 contiguous=false\n[33 35 37 39 41]\n", out)
}

func TestInspectBroadcastAndLimit(t *testing.T) {
	out, err := execute(t, "inspect", "--shape", "3", "--broadcast", "4,3", "--limit", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "strides=[0 1]")
	assert.Contains(t, out, "[0 1 2 0] ... (8 more)")
}

func TestInspectErrors(t *testing.T) {
	_, err := execute(t, "inspect", "--shape", "a,b")
	assert.Error(t, err)

	_, err = execute(t, "inspect", "--shape", "4,4", "--expr", "4")
	assert.Error(t, err)

	_, err = execute(t, "inspect", "--shape", "3", "--broadcast", "4")
	assert.Error(t, err)
}

func TestParseShape(t *testing.T) {
	s, err := parseShape(" 2, 3 ,4")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, []int(s))

	s, err = parseShape("")
	require.NoError(t, err)
	assert.Empty(t, s)
}
