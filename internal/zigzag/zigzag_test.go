package zigzag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	tests := []struct {
		n    int
		want [][]int
	}{
		{0, [][]int{}},
		{1, [][]int{{0}}},
		{2, [][]int{
			{0, 1},
			{2, 3},
		}},
		{3, [][]int{
			{0, 1, 5},
			{2, 4, 6},
			{3, 7, 8},
		}},
		{4, [][]int{
			{0, 1, 5, 6},
			{2, 4, 7, 12},
			{3, 8, 11, 13},
			{9, 10, 14, 15},
		}},
		{5, [][]int{
			{0, 1, 5, 6, 14},
			{2, 4, 7, 13, 15},
			{3, 8, 12, 16, 21},
			{9, 11, 17, 20, 22},
			{10, 18, 19, 23, 24},
		}},
	}

	for _, tt := range tests {
		got, err := Matrix(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

// TestMatrix_Permutation checks every value 0..n²-1 appears exactly once and
// consecutive values are neighbours.
func TestMatrix_Permutation(t *testing.T) {
	const n = 8
	m, err := Matrix(n)
	require.NoError(t, err)

	pos := make([][2]int, n*n)
	seen := make([]bool, n*n)
	for r, row := range m {
		for c, v := range row {
			require.False(t, seen[v], "value %d repeated", v)
			seen[v] = true
			pos[v] = [2]int{r, c}
		}
	}
	for v := 1; v < n*n; v++ {
		dr := pos[v][0] - pos[v-1][0]
		dc := pos[v][1] - pos[v-1][1]
		assert.LessOrEqual(t, dr*dr+dc*dc, 2, "values %d and %d are not adjacent", v-1, v)
	}
}

func TestMatrix_Negative(t *testing.T) {
	m, err := Matrix(-1)
	assert.ErrorIs(t, err, ErrNegativeSize)
	assert.Nil(t, m)
}
