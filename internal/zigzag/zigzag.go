// Package zigzag fills square matrices in JPEG zigzag order.
package zigzag

import (
	"errors"
	"fmt"
)

// ErrNegativeSize is returned for a size below zero.
var ErrNegativeSize = errors.New("negative size")

// Matrix returns an n×n matrix whose cells hold their position along the
// zigzag path that starts at the top-left corner:
//
//	[[0, 1, 5],
//	 [2, 4, 6],
//	 [3, 7, 8]]
func Matrix(n int) ([][]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("zigzag: %w %d", ErrNegativeSize, n)
	}

	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}

	next := 0
	for d := 0; d <= 2*(n-1); d++ {
		lo := max(0, d-n+1)
		hi := min(d, n-1)
		// Odd anti-diagonals run down-left, even ones up-right.
		if d%2 == 1 {
			for row := lo; row <= hi; row++ {
				m[row][d-row] = next
				next++
			}
		} else {
			for row := hi; row >= lo; row-- {
				m[row][d-row] = next
				next++
			}
		}
	}
	return m, nil
}
