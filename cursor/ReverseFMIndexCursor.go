package cursor

import "github.com/sgssgene-go/fmseek"

// reverseFMIndex is the subset of *fmindex.ReverseFMIndex a
// ReverseFMIndexCursor needs.
type reverseFMIndex interface {
	Size() int
	Sigma() int
	BWT() fmseek.String
	C() []int
	Locate(idx int) (seqID int, pos int)
}

// ReverseFMIndexCursor narrows by extending the matched pattern to the
// right one symbol at a time, since the index it wraps was built over
// reversed sequences. depth tracks how many symbols have been matched so
// far, the query length.
type ReverseFMIndexCursor struct {
	index reverseFMIndex
	lb    int
	len   int
	depth int
}

// NewReverseFMIndexCursor returns a cursor matching every row of index.
func NewReverseFMIndexCursor(index reverseFMIndex) ReverseFMIndexCursor {
	return ReverseFMIndexCursor{index: index, lb: 0, len: index.Size()}
}

func (this ReverseFMIndexCursor) Empty() bool {
	return this.len == 0
}

func (this ReverseFMIndexCursor) Count() int {
	return this.len
}

func (this ReverseFMIndexCursor) QueryLength() int {
	return this.depth
}

// ExtendRight narrows the cursor to matches of symb appended to the
// pattern matched so far.
func (this ReverseFMIndexCursor) ExtendRight(symb int) ReverseFMIndexCursor {
	bwt, c := this.index.BWT(), this.index.C()
	newLb := bwt.Rank(this.lb, symb) + c[symb]
	newLen := bwt.Rank(this.lb+this.len, symb) + c[symb] - newLb
	return ReverseFMIndexCursor{index: this.index, lb: newLb, len: newLen, depth: this.depth + 1}
}

// ExtendRightAll returns the result of ExtendRight for every symbol of the
// alphabet in one pass.
func (this ReverseFMIndexCursor) ExtendRightAll() []ReverseFMIndexCursor {
	bwt, c := this.index.BWT(), this.index.C()
	rs1 := bwt.AllRanks(this.lb)
	rs2 := bwt.AllRanks(this.lb + this.len)

	cursors := make([]ReverseFMIndexCursor, this.index.Sigma())

	for symb := range cursors {
		lb := rs1[symb] + c[symb]
		cursors[symb] = ReverseFMIndexCursor{index: this.index, lb: lb, len: rs2[symb] + c[symb] - lb, depth: this.depth + 1}
	}

	return cursors
}

// Locate resolves every matched row to a (sequenceID, position) pair.
func (this ReverseFMIndexCursor) Locate() []Hit {
	hits := make([]Hit, 0, this.len)

	for row := this.lb; row < this.lb+this.len; row++ {
		seqID, pos := this.index.Locate(row)
		hits = append(hits, Hit{SequenceID: seqID, Position: pos})
	}

	return hits
}
