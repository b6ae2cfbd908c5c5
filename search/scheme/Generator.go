// Package scheme builds a search.Scheme/search.Partition pair good enough
// to exercise search.Engine end-to-end. It is a convenience, not an
// optimal-scheme implementation: the pack's scheme headers hand-tune
// backtracking tables per error count, but search.Engine only ever
// consumes the Scheme/Partition value types, so any lossless generator is
// a legitimate caller.
package scheme

import (
	"fmt"

	"github.com/sgssgene-go/fmseek/search"
)

// Generate returns a Scheme covering every error count in
// [minErrors, maxErrors] and a Partition splitting a query of the given
// length into numParts roughly-equal pieces (the remainder distributed
// across the leading parts).
//
// Coverage comes from trying every cyclic rotation of the identity
// permutation of part indices as a separate Search, each with L=minErrors,
// U=maxErrors on every part: an error occurring anywhere in the query is
// caught by whichever rotation visits that part last, since only the last
// part visited is bound below by minErrors. This is the brute-force
// scheme every hand-tuned table is a pruned special case of; it trades
// search-tree size for not needing a pack-and-error-count-specific table.
func Generate(minErrors, maxErrors, numParts, queryLength int) (search.Scheme, search.Partition, error) {
	if numParts <= 0 {
		return search.Scheme{}, nil, fmt.Errorf("numParts must be positive, got %d", numParts)
	}

	if queryLength < numParts {
		return search.Scheme{}, nil, fmt.Errorf("queryLength %d is too short to split into %d parts", queryLength, numParts)
	}

	if minErrors < 0 || minErrors > maxErrors {
		return search.Scheme{}, nil, fmt.Errorf("invalid error range [%d, %d]", minErrors, maxErrors)
	}

	partition := make(search.Partition, numParts)
	base, extra := queryLength/numParts, queryLength%numParts

	for i := range partition {
		partition[i] = base

		if i < extra {
			partition[i]++
		}
	}

	searches := make([]search.Search, 0, numParts)

	for rot := 0; rot < numParts; rot++ {
		pi := make([]int, numParts)

		for i := range pi {
			pi[i] = (i + rot) % numParts
		}

		l := make([]int, numParts)
		u := make([]int, numParts)

		for i := range l {
			u[i] = maxErrors

			if i == numParts-1 {
				l[i] = minErrors
			}
		}

		searches = append(searches, search.Search{Pi: pi, L: l, U: u})
	}

	return search.Scheme{Searches: searches}, partition, nil
}
