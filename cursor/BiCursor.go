package cursor

import "github.com/sgssgene-go/fmseek"

// biIndex is the subset of *fmindex.BiFMIndex a BiCursor needs.
type biIndex interface {
	Size() int
	Sigma() int
	BWT() fmseek.String
	BWTRev() fmseek.String
	C() []int
	Locate(idx int) (seqID int, pos int)
}

// BiCursor narrows in either direction: lb tracks the forward window, lbRev
// the window over the reverse BWT, len the (shared) match count. Extending
// in one direction still needs the other BWT's prefix ranks to keep lbRev
// (or lb) in step, which is the entire reason BiFMIndex keeps both strings.
type BiCursor struct {
	index biIndex
	lb    int
	lbRev int
	len   int
}

// NewBiCursor returns a cursor matching every row of index.
func NewBiCursor(index biIndex) BiCursor {
	return BiCursor{index: index, lb: 0, lbRev: 0, len: index.Size()}
}

func (this BiCursor) Empty() bool {
	return this.len == 0
}

func (this BiCursor) Count() int {
	return this.len
}

// ExtendLeft narrows the cursor to matches of symb prepended to the
// pattern matched so far.
func (this BiCursor) ExtendLeft(symb int) BiCursor {
	bwt, c := this.index.BWT(), this.index.C()

	newLb := bwt.Rank(this.lb, symb)
	newLbRev := this.lbRev + bwt.PrefixRank(this.lb+this.len, symb) - bwt.PrefixRank(this.lb, symb)
	newLen := bwt.Rank(this.lb+this.len, symb) - newLb

	return BiCursor{index: this.index, lb: newLb + c[symb], lbRev: newLbRev, len: newLen}
}

// ExtendRight narrows the cursor to matches of symb appended to the
// pattern matched so far.
func (this BiCursor) ExtendRight(symb int) BiCursor {
	bwtRev, c := this.index.BWTRev(), this.index.C()

	newLb := this.lb + bwtRev.PrefixRank(this.lbRev+this.len, symb) - bwtRev.PrefixRank(this.lbRev, symb)
	newLbRev := bwtRev.Rank(this.lbRev, symb)
	newLen := bwtRev.Rank(this.lbRev+this.len, symb) - newLbRev

	return BiCursor{index: this.index, lb: newLb, lbRev: newLbRev + c[symb], len: newLen}
}

// ExtendLeftAll returns the result of ExtendLeft for every symbol of the
// alphabet in one pass, reusing a single pair of combined rank queries.
func (this BiCursor) ExtendLeftAll() []BiCursor {
	bwt, c := this.index.BWT(), this.index.C()
	rs1, prs1 := bwt.AllRanksAndPrefixRanks(this.lb)
	rs2, prs2 := bwt.AllRanksAndPrefixRanks(this.lb + this.len)

	cursors := make([]BiCursor, this.index.Sigma())

	for symb := range cursors {
		cursors[symb] = BiCursor{
			index: this.index,
			lb:    rs1[symb] + c[symb],
			lbRev: this.lbRev + prs2[symb] - prs1[symb],
			len:   rs2[symb] - rs1[symb],
		}
	}

	return cursors
}

// ExtendRightAll returns the result of ExtendRight for every symbol of the
// alphabet in one pass.
func (this BiCursor) ExtendRightAll() []BiCursor {
	bwtRev, c := this.index.BWTRev(), this.index.C()
	rs1, prs1 := bwtRev.AllRanksAndPrefixRanks(this.lbRev)
	rs2, prs2 := bwtRev.AllRanksAndPrefixRanks(this.lbRev + this.len)

	cursors := make([]BiCursor, this.index.Sigma())

	for symb := range cursors {
		cursors[symb] = BiCursor{
			index: this.index,
			lb:    this.lb + prs2[symb] - prs1[symb],
			lbRev: rs1[symb] + c[symb],
			len:   rs2[symb] - rs1[symb],
		}
	}

	return cursors
}

// SymbolLeft returns the BWT symbol at the cursor's forward lower bound.
func (this BiCursor) SymbolLeft() int {
	return this.index.BWT().Symbol(this.lb)
}

// SymbolRight returns the BWT symbol at the cursor's reverse lower bound.
func (this BiCursor) SymbolRight() int {
	return this.index.BWTRev().Symbol(this.lbRev)
}

// Locate resolves every matched row to a (sequenceID, position) pair via
// the forward BWT, the only side carrying a sampled suffix array.
func (this BiCursor) Locate() []Hit {
	hits := make([]Hit, 0, this.len)

	for row := this.lb; row < this.lb+this.len; row++ {
		seqID, pos := this.index.Locate(row)
		hits = append(hits, Hit{SequenceID: seqID, Position: pos})
	}

	return hits
}

// AsLeftCursor drops the reverse-window bookkeeping, keeping only
// left-extension, for callers done extending right.
func (this BiCursor) AsLeftCursor() LeftCursor {
	return LeftCursor{index: this.index, lb: this.lb, len: this.len}
}
