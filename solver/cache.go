// SPDX-License-Identifier: MIT

package solver

import "fmt"

// rowCache keeps the most recent rows in a ring of width slots; row r lives
// in slot r % width. fill writes row r into dst (len n).
type rowCache struct {
	n    int
	tags []int
	rows [][]float64
	fill func(r int, dst []float64) error
}

func newRowCache(n, width int, fill func(r int, dst []float64) error) *rowCache {
	width = min(max(width, 1), n)
	c := &rowCache{
		n:    n,
		tags: make([]int, width),
		rows: make([][]float64, width),
		fill: fill,
	}
	buf := make([]float64, width*n)
	for i := range c.rows {
		c.tags[i] = -1
		c.rows[i] = buf[i*n : (i+1)*n : (i+1)*n]
	}

	return c
}

func (c *rowCache) width() int { return len(c.tags) }

func (c *rowCache) row(r int) ([]float64, error) {
	if r < 0 || r >= c.n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRowOutOfRange, r, c.n)
	}
	slot := r % len(c.tags)
	if c.tags[slot] == r {
		return c.rows[slot], nil
	}
	dst := c.rows[slot]
	if r == 0 {
		clear(dst)
	} else if err := c.fill(r, dst); err != nil {
		c.tags[slot] = -1
		return nil, err
	}
	c.tags[slot] = r

	return dst, nil
}

func checkRHS(b []float64, n int) error {
	if len(b) != n {
		return fmt.Errorf("%w: len(b)=%d, n=%d", ErrDimensionMismatch, len(b), n)
	}

	return nil
}
