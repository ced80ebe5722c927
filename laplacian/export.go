// SPDX-License-Identifier: MIT
// Package laplacian - gonum exports.

package laplacian

import "gonum.org/v1/gonum/mat"

// Dense returns L as a gonum symmetric dense matrix. Panics if n == 0 (gonum rule).
func (l *Laplacian) Dense() *mat.SymDense {
	s := mat.NewSymDense(l.n, nil)
	for i := 0; i < l.n; i++ {
		cols, vals := l.Row(i)
		for k, j := range cols {
			if j >= i {
				s.SetSym(i, j, vals[k])
			}
		}
	}

	return s
}

// ReducedDense returns L with row and column 0 removed. Panics if n < 2.
func (l *Laplacian) ReducedDense() *mat.SymDense {
	m := l.n - 1
	s := mat.NewSymDense(m, nil)
	for i := 1; i < l.n; i++ {
		cols, vals := l.Row(i)
		for k, j := range cols {
			if j >= i {
				s.SetSym(i-1, j-1, vals[k])
			}
		}
	}

	return s
}

// ReducedSymBand returns the reduced matrix in symmetric band storage with
// the smallest bandwidth that holds it. Panics if n < 2.
func (l *Laplacian) ReducedSymBand() *mat.SymBandDense {
	m := l.n - 1
	k := 0
	for i := 1; i < l.n; i++ {
		cols, _ := l.Row(i)
		if len(cols) > 0 {
			if d := cols[len(cols)-1] - i; d > k {
				k = d
			}
		}
	}
	sb := mat.NewSymBandDense(m, k, nil)
	for i := 1; i < l.n; i++ {
		cols, vals := l.Row(i)
		for idx, j := range cols {
			if j >= i {
				sb.SetSymBand(i-1, j-1, vals[idx])
			}
		}
	}

	return sb
}
