// SPDX-License-Identifier: MIT

package octahedron

import "fmt"

// MaxK is the largest number of jointly relaxed neurons.
const MaxK = 4

// Pow3 holds 3^k for k = 0..MaxK. Read-only.
var Pow3 = [MaxK + 1]int{1, 3, 9, 27, 81}

// coefTable[k] lists the canonical coefficient rows for K=k. Read-only after init.
var coefTable = buildCoefTable()

// digitCoef maps a base-3 digit to its coefficient.
var digitCoef = [3]int{0, 1, -1}

// buildCoefTable enumerates {−1,0,1}^k \ {0} in canonical order for every k.
func buildCoefTable() [MaxK + 1][][]int {
	var table [MaxK + 1][][]int
	for k := 1; k <= MaxK; k++ {
		rows := make([][]int, 0, Pow3[k]-1)
		for idx := 1; idx < Pow3[k]; idx++ {
			row := make([]int, k)
			rest := idx
			for j := k - 1; j >= 0; j-- {
				row[j] = digitCoef[rest%3]
				rest /= 3
			}
			rows = append(rows, row)
		}
		table[k] = rows
	}

	return table
}

// NumRows returns 3^k − 1, the input row count for K=k.
// Errors: ErrBadK.
func NumRows(k int) (int, error) {
	if k < 1 || k > MaxK {
		return 0, fmt.Errorf("NumRows(%d): %w", k, ErrBadK)
	}

	return Pow3[k] - 1, nil
}

// Coefficients returns a copy of the canonical coefficient rows for K=k.
// Errors: ErrBadK.
func Coefficients(k int) ([][]int, error) {
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("Coefficients(%d): %w", k, ErrBadK)
	}
	out := make([][]int, len(coefTable[k]))
	for i, row := range coefTable[k] {
		out[i] = append([]int(nil), row...)
	}

	return out, nil
}
