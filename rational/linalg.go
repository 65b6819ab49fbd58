// SPDX-License-Identifier: MIT

package rational

import (
	"errors"
	"math/big"
)

// ErrSingular is returned by Inverse for a singular square system.
var ErrSingular = errors.New("rational: singular matrix")

// echelon incrementally maintains a reduced basis of the span of the rows
// seen so far. Each stored row has a leading 1 at its pivot column and zeros
// at the pivots of all other stored rows.
type echelon struct {
	n      int
	rows   []Vec
	pivots []int
}

// reduce returns r minus its projection onto the current basis (new vector).
func (e *echelon) reduce(r Vec) Vec {
	out := r.Clone()
	tmp := new(big.Rat)
	for k, b := range e.rows {
		p := e.pivots[k]
		f := out[p]
		if f.Sign() == 0 {
			continue
		}
		f = new(big.Rat).Set(f)
		for j := 0; j < e.n; j++ {
			if b[j].Sign() == 0 {
				continue
			}
			out[j].Sub(out[j], tmp.Mul(f, b[j]))
		}
	}

	return out
}

// add tries to extend the basis with r; it reports whether r was independent.
func (e *echelon) add(r Vec) bool {
	res := e.reduce(r)
	p := -1
	for j := 0; j < e.n; j++ {
		if res[j].Sign() != 0 {
			p = j
			break
		}
	}
	if p < 0 {
		return false
	}
	inv := new(big.Rat).Inv(res[p])
	for j := range res {
		res[j].Mul(res[j], inv)
	}
	// Keep the basis fully reduced: clear column p in existing rows.
	tmp := new(big.Rat)
	for _, b := range e.rows {
		f := b[p]
		if f.Sign() == 0 {
			continue
		}
		f = new(big.Rat).Set(f)
		for j := 0; j < e.n; j++ {
			if res[j].Sign() == 0 {
				continue
			}
			b[j].Sub(b[j], tmp.Mul(f, res[j]))
		}
	}
	e.rows = append(e.rows, res)
	e.pivots = append(e.pivots, p)

	return true
}

// IndependentRows returns, in input order, the indexes of a maximal set of
// linearly independent rows chosen greedily (first come, first kept).
// All rows must have length n.
// Complexity: O(m·r·n) rational operations, r = rank.
func IndependentRows(rows []Vec, n int) []int {
	e := &echelon{n: n}
	var idx []int
	for i, r := range rows {
		if len(e.rows) == n {
			break
		}
		if e.add(r) {
			idx = append(idx, i)
		}
	}

	return idx
}

// NullSpace returns a basis of {x : r·x = 0 for every row r}.
// The basis is empty when the rows span the whole space.
func NullSpace(rows []Vec, n int) []Vec {
	e := &echelon{n: n}
	for _, r := range rows {
		if len(e.rows) == n {
			break
		}
		e.add(r)
	}
	isPivot := make([]bool, n)
	for _, p := range e.pivots {
		isPivot[p] = true
	}
	var basis []Vec
	for f := 0; f < n; f++ {
		if isPivot[f] {
			continue
		}
		x := NewVec(n)
		x[f].SetInt64(1)
		for k, b := range e.rows {
			x[e.pivots[k]].Neg(b[f])
		}
		basis = append(basis, x)
	}

	return basis
}

// Inverse returns the inverse of the square matrix given by rows.
// Errors: ErrSingular, ErrLengthMismatch.
// Complexity: O(n^3) rational operations.
func Inverse(rows []Vec) ([]Vec, error) {
	n := len(rows)
	aug := make([]Vec, n)
	for i, r := range rows {
		if len(r) != n {
			return nil, ErrLengthMismatch
		}
		aug[i] = append(r.Clone(), NewVec(n)...)
		aug[i][n+i].SetInt64(1)
	}
	tmp := new(big.Rat)
	for col := 0; col < n; col++ {
		piv := -1
		for i := col; i < n; i++ {
			if aug[i][col].Sign() != 0 {
				piv = i
				break
			}
		}
		if piv < 0 {
			return nil, ErrSingular
		}
		aug[col], aug[piv] = aug[piv], aug[col]
		inv := new(big.Rat).Inv(aug[col][col])
		for j := range aug[col] {
			aug[col][j].Mul(aug[col][j], inv)
		}
		for i := 0; i < n; i++ {
			if i == col || aug[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(aug[i][col])
			for j := range aug[i] {
				aug[i][j].Sub(aug[i][j], tmp.Mul(f, aug[col][j]))
			}
		}
	}
	out := make([]Vec, n)
	for i := range aug {
		out[i] = aug[i][n:]
	}

	return out, nil
}

// MulVec returns M·x for M given by rows.
func MulVec(rows []Vec, x Vec) Vec {
	out := make(Vec, len(rows))
	for i, r := range rows {
		out[i] = dot(r, x)
	}

	return out
}
