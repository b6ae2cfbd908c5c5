package cursor

// LeftCursor is a BiCursor stripped of its reverse-window bookkeeping: once
// a search only needs to extend left from here on, carrying lbRev along is
// wasted work.
type LeftCursor struct {
	index biIndex
	lb    int
	len   int
}

// NewLeftCursor returns a cursor matching every row of index.
func NewLeftCursor(index biIndex) LeftCursor {
	return LeftCursor{index: index, lb: 0, len: index.Size()}
}

func (this LeftCursor) Empty() bool {
	return this.len == 0
}

func (this LeftCursor) Count() int {
	return this.len
}

// ExtendLeft narrows the cursor to matches of symb prepended to the
// pattern matched so far.
func (this LeftCursor) ExtendLeft(symb int) LeftCursor {
	bwt, c := this.index.BWT(), this.index.C()
	newLb := bwt.Rank(this.lb, symb)
	newLen := bwt.Rank(this.lb+this.len, symb) - newLb
	return LeftCursor{index: this.index, lb: newLb + c[symb], len: newLen}
}

// ExtendLeftAll returns the result of ExtendLeft for every symbol of the
// alphabet in one pass.
func (this LeftCursor) ExtendLeftAll() []LeftCursor {
	bwt, c := this.index.BWT(), this.index.C()
	rs1 := bwt.AllRanks(this.lb)
	rs2 := bwt.AllRanks(this.lb + this.len)

	cursors := make([]LeftCursor, this.index.Sigma())

	for symb := range cursors {
		cursors[symb] = LeftCursor{index: this.index, lb: rs1[symb] + c[symb], len: rs2[symb] - rs1[symb]}
	}

	return cursors
}

// Locate resolves every matched row to a (sequenceID, position) pair.
func (this LeftCursor) Locate() []Hit {
	hits := make([]Hit, 0, this.len)

	for row := this.lb; row < this.lb+this.len; row++ {
		seqID, pos := this.index.Locate(row)
		hits = append(hits, Hit{SequenceID: seqID, Position: pos})
	}

	return hits
}
