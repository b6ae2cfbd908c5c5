// Package search implements the depth-first approximate-search engine: a
// synchronous walk of a bidirectional cursor's extension tree, pruned by a
// search scheme's per-part error bounds, invoking a callback once per leaf
// match. The engine never allocates a goroutine or channel; callers wanting
// concurrency run one Engine per query.
package search

import "fmt"

// Partition splits a query into consecutive, non-overlapping part lengths
// that sum to the query length. Index i is the length of part i.
type Partition []int

// Search is one entry of a Scheme: the order parts are visited in (Pi, a
// permutation of part indices), and per-part inclusive error bounds (L, U).
// Direction of extension for part index p in iteration order i is right
// when i==0 or Pi[i-1] < Pi[i], left otherwise — the permutation may jump
// between non-adjacent parts, flipping direction each time it does.
type Search struct {
	Pi []int
	L  []int
	U  []int
}

// Scheme is an ordered list of Searches; the union of their matches is
// lossless for the scheme's configured error range, while each individual
// Search prunes aggressively on its own.
type Scheme struct {
	Searches []Search
}

// Validate checks the structural invariants a Scheme must hold before an
// Engine can safely walk it: every Search's Pi must be a permutation of
// [0, len(partition)), L/U must be equal length to Pi, and L[i] <= U[i].
// Scheme construction is otherwise a programmer's responsibility (spec
// behavior on a malformed scheme is undefined) — Validate exists so the
// common mistakes surface as an error rather than an out-of-range panic
// deep inside the recursion.
func (this Scheme) Validate(partition Partition) error {
	k := len(partition)

	for si, s := range this.Searches {
		if len(s.Pi) != k || len(s.L) != k || len(s.U) != k {
			return fmt.Errorf("search %d: Pi/L/U length %d/%d/%d must all equal partition length %d", si, len(s.Pi), len(s.L), len(s.U), k)
		}

		seen := make([]bool, k)

		for _, p := range s.Pi {
			if p < 0 || p >= k || seen[p] {
				return fmt.Errorf("search %d: Pi is not a permutation of [0, %d)", si, k)
			}

			seen[p] = true
		}

		for i := range s.L {
			if s.L[i] > s.U[i] {
				return fmt.Errorf("search %d: L[%d]=%d exceeds U[%d]=%d", si, i, s.L[i], i, s.U[i])
			}
		}
	}

	return nil
}
