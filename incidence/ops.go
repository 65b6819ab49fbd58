// SPDX-License-Identifier: MIT

package incidence

import "fmt"

// Transpose converts a rows×cols incidence (one Set of length cols per row)
// into its cols×rows transpose. Transposing twice yields the input.
// Errors: ErrEmpty for no rows, ErrSizeMismatch for ragged rows.
// Complexity: O(rows·cols).
func Transpose(in []Set) ([]Set, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("Transpose: %w", ErrEmpty)
	}
	rows, cols := len(in), in[0].Len()
	out := make([]Set, cols)
	for j := range out {
		out[j] = New(rows)
	}
	for i, row := range in {
		if row.Len() != cols {
			return nil, fmt.Errorf("Transpose: row %d has length %d, want %d: %w", i, row.Len(), cols, ErrSizeMismatch)
		}
		for _, j := range row.Indexes() {
			out[j].bits.Set(uint(i))
		}
	}

	return out, nil
}

// MaximalIndexes returns, in increasing order, the indexes of the sets that
// are maximal with respect to inclusion. A set strictly contained in another
// is dropped; among equal maximal sets only the lowest index is kept, so the
// result is deterministic. Applying the filter to its own output is a no-op.
// Errors: ErrSizeMismatch.
// Complexity: O(n²) superset tests.
func MaximalIndexes(sets []Set) ([]int, error) {
	for i := 1; i < len(sets); i++ {
		if sets[i].Len() != sets[0].Len() {
			return nil, fmt.Errorf("MaximalIndexes: set %d: %w", i, ErrSizeMismatch)
		}
	}
	counts := make([]int, len(sets))
	for i, s := range sets {
		counts[i] = s.Count()
	}

	var keep []int
	for i := range sets {
		dominated := false
		for j := range sets {
			if j == i || counts[j] < counts[i] || !sets[j].covers(sets[i]) {
				continue
			}
			// sets[j] ⊇ sets[i]: strict when larger, duplicate otherwise.
			if counts[j] > counts[i] || j < i {
				dominated = true
				break
			}
		}
		if !dominated {
			keep = append(keep, i)
		}
	}

	return keep, nil
}

// Adjacency returns, for every vertex, the sorted list of vertices sharing an
// edge with it. tight[v] is the set of constraints vertex v satisfies with
// equality, over a constraint system describing the polytope (redundant rows
// allowed). Vertices u and w are adjacent iff no third vertex is tight on
// every constraint in tight[u] ∩ tight[w]: that intersection defines the
// smallest face holding both, which is an edge exactly when it has no other
// vertex.
// Errors: ErrSizeMismatch.
// Complexity: O(n³) superset tests.
func Adjacency(tight []Set) ([][]int, error) {
	n := len(tight)
	for i := 1; i < n; i++ {
		if tight[i].Len() != tight[0].Len() {
			return nil, fmt.Errorf("Adjacency: vertex %d: %w", i, ErrSizeMismatch)
		}
	}
	adj := make([][]int, n)
	for u := 0; u < n; u++ {
		for w := u + 1; w < n; w++ {
			common, _ := tight[u].Intersection(tight[w]) // lengths checked above
			edge := true
			for z := 0; z < n; z++ {
				if z != u && z != w && tight[z].covers(common) {
					edge = false
					break
				}
			}
			if edge {
				adj[u] = append(adj[u], w)
				adj[w] = append(adj[w], u)
			}
		}
	}

	return adj, nil
}
