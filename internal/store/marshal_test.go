package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInput_StableAcrossKeyOrder(t *testing.T) {
	a, hashA, err := EncodeInput(map[string]any{"b": 1, "a": "x"})
	require.NoError(t, err)
	b, hashB, err := EncodeInput(map[string]any{"a": "x", "b": 1})
	require.NoError(t, err)

	assert.Equal(t, `{"a":"x","b":1}`, string(a))
	assert.Equal(t, string(a), string(b))
	assert.Equal(t, hashA, hashB)
	assert.Len(t, hashA, 64)
}

func TestEncodeInput_DistinctInputs(t *testing.T) {
	_, hashA, err := EncodeInput([]any{1, 2})
	require.NoError(t, err)
	_, hashB, err := EncodeInput([]any{2, 1})
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)
}

func TestEncodeInput_RejectsFractions(t *testing.T) {
	_, _, err := EncodeInput(map[string]any{"x": 1.5})
	assert.Error(t, err)
}

func TestEncodeOutput(t *testing.T) {
	out, err := EncodeOutput(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	out, err = EncodeOutput([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, "[[0,1],[2,3]]", string(out))
}

func TestTimeRoundTrip(t *testing.T) {
	got, err := parseTime(formatTime(testStart))
	require.NoError(t, err)
	assert.True(t, testStart.Equal(got))

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}
