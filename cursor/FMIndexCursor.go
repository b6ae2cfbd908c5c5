// Package cursor provides the search-facing views over an fmindex index: a
// transient (lowerBound, length) window into the BWT that each Extend call
// narrows to a new window, one symbol closer to a full pattern match. None
// of the cursor types here mutate in place; every extension returns a new
// value, mirroring the immutable cursor types of the index layer beneath
// them.
package cursor

import "github.com/sgssgene-go/fmseek"

// fmIndex is the subset of *fmindex.FMIndex a FMIndexCursor needs. Declared
// locally so this package never imports fmindex directly, avoiding a
// dependency cycle should fmindex ever want to build a cursor internally
// (e.g. for its own Locate bookkeeping).
type fmIndex interface {
	Size() int
	Sigma() int
	BWT() fmseek.String
	C() []int
	Locate(idx int) (seqID int, pos int)
}

// FMIndexCursor narrows by extending the matched pattern to the left one
// symbol at a time (the only direction a unidirectional FM-index supports).
type FMIndexCursor struct {
	index fmIndex
	lb    int
	len   int
}

// NewFMIndexCursor returns a cursor matching every row of index, the
// starting point for a left-extending search.
func NewFMIndexCursor(index fmIndex) FMIndexCursor {
	return FMIndexCursor{index: index, lb: 0, len: index.Size()}
}

func (this FMIndexCursor) Empty() bool {
	return this.len == 0
}

func (this FMIndexCursor) Count() int {
	return this.len
}

// LowerBound and Len expose the cursor's raw BWT window, used by Locate
// callers that need to enumerate every matched row.
func (this FMIndexCursor) LowerBound() int {
	return this.lb
}

func (this FMIndexCursor) Len() int {
	return this.len
}

// ExtendLeft narrows the cursor to matches of symb prepended to the pattern
// matched so far.
func (this FMIndexCursor) ExtendLeft(symb int) FMIndexCursor {
	bwt, c := this.index.BWT(), this.index.C()
	newLb := bwt.Rank(this.lb, symb) + c[symb]
	newLen := bwt.Rank(this.lb+this.len, symb) + c[symb] - newLb
	return FMIndexCursor{index: this.index, lb: newLb, len: newLen}
}

// ExtendLeftAll returns the result of ExtendLeft for every symbol of the
// alphabet in one pass, reusing a single pair of AllRanks calls.
func (this FMIndexCursor) ExtendLeftAll() []FMIndexCursor {
	bwt, c := this.index.BWT(), this.index.C()
	rs1 := bwt.AllRanks(this.lb)
	rs2 := bwt.AllRanks(this.lb + this.len)

	cursors := make([]FMIndexCursor, this.index.Sigma())

	for symb := range cursors {
		lb := rs1[symb] + c[symb]
		cursors[symb] = FMIndexCursor{index: this.index, lb: lb, len: rs2[symb] + c[symb] - lb}
	}

	return cursors
}

// Hit is one occurrence resolved from a cursor's matched rows.
type Hit struct {
	SequenceID int
	Position   int
}

// Locate resolves every matched row to a (sequenceID, position) pair.
func (this FMIndexCursor) Locate() []Hit {
	hits := make([]Hit, 0, this.len)

	for row := this.lb; row < this.lb+this.len; row++ {
		seqID, pos := this.index.Locate(row)
		hits = append(hits, Hit{SequenceID: seqID, Position: pos})
	}

	return hits
}
