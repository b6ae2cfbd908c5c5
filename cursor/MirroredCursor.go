package cursor

import "github.com/sgssgene-go/fmseek"

// mirroredIndex is the subset of *fmindex.FMIndex a MirroredCursor needs.
// Unlike BiCursor it reads a single BWT for both directions, which is only
// sound for a binary alphabet: the complement symbol 1-symb stands in for
// "the same base on the opposite strand", so a single forward BWT doubles
// as its own mirror. fmindex's own String interface already exposes a
// symbol-specific Rank, so, unlike the bit-counting specialization the
// teacher's binary cursor used to dodge that cost, MirroredCursor has no
// need for a separate bit-counting code path.
type mirroredIndex interface {
	Size() int
	BWT() fmseek.String
	C() []int
	Locate(idx int) (seqID int, pos int)
}

// MirroredCursor narrows a binary-alphabet (Sigma == 2) FM-index in either
// direction by reusing its single forward BWT for both the forward and the
// complement-extension step.
type MirroredCursor struct {
	index mirroredIndex
	lb    int
	lbRev int
	len   int
}

// NewMirroredCursor returns a cursor matching every row of index. index
// must have been built with Sigma == 2; the cursor's extension formulas are
// only correct for a binary alphabet.
func NewMirroredCursor(index mirroredIndex) MirroredCursor {
	return MirroredCursor{index: index, lb: 0, lbRev: 0, len: index.Size()}
}

func (this MirroredCursor) Empty() bool {
	return this.len == 0
}

func (this MirroredCursor) Count() int {
	return this.len
}

// ExtendLeft narrows the cursor to matches of symb prepended to the
// pattern matched so far.
func (this MirroredCursor) ExtendLeft(symb int) MirroredCursor {
	bwt, c := this.index.BWT(), this.index.C()

	newLb := bwt.Rank(this.lb, symb)
	newLbRev := this.lbRev + bwt.PrefixRank(this.lb+this.len, symb) - bwt.PrefixRank(this.lb, symb)
	newLen := bwt.Rank(this.lb+this.len, symb) - newLb

	return MirroredCursor{index: this.index, lb: newLb + c[symb], lbRev: newLbRev, len: newLen}
}

// ExtendRight narrows the cursor to matches of symb appended to the pattern
// matched so far, read off the complement strand of the same BWT.
func (this MirroredCursor) ExtendRight(symb int) MirroredCursor {
	bwt, c := this.index.BWT(), this.index.C()

	newLb := this.lb + bwt.PrefixRank(this.lbRev+this.len, symb) - bwt.PrefixRank(this.lbRev, symb)
	newLbRev := bwt.Rank(this.lbRev, symb)
	newLen := bwt.Rank(this.lbRev+this.len, symb) - newLbRev

	return MirroredCursor{index: this.index, lb: newLb, lbRev: newLbRev + c[symb], len: newLen}
}

// mirroredSigma is the only alphabet size MirroredCursor's extension
// formulas are valid for: two symbols plus their shared sentinel at rank 0
// would break the complement trick, so Sigma is fixed rather than read off
// the index.
const mirroredSigma = 2

// ExtendLeftAll returns the result of ExtendLeft for both symbols of the
// binary alphabet in one pass.
func (this MirroredCursor) ExtendLeftAll() []MirroredCursor {
	bwt, c := this.index.BWT(), this.index.C()
	rs1, prs1 := bwt.AllRanksAndPrefixRanks(this.lb)
	rs2, prs2 := bwt.AllRanksAndPrefixRanks(this.lb + this.len)

	cursors := make([]MirroredCursor, mirroredSigma)

	for symb := range cursors {
		cursors[symb] = MirroredCursor{
			index: this.index,
			lb:    rs1[symb] + c[symb],
			lbRev: this.lbRev + prs2[symb] - prs1[symb],
			len:   rs2[symb] - rs1[symb],
		}
	}

	return cursors
}

// ExtendRightAll returns the result of ExtendRight for both symbols of the
// binary alphabet in one pass, reading off the complement strand of the
// same BWT.
func (this MirroredCursor) ExtendRightAll() []MirroredCursor {
	bwt, c := this.index.BWT(), this.index.C()
	rs1, prs1 := bwt.AllRanksAndPrefixRanks(this.lbRev)
	rs2, prs2 := bwt.AllRanksAndPrefixRanks(this.lbRev + this.len)

	cursors := make([]MirroredCursor, mirroredSigma)

	for symb := range cursors {
		cursors[symb] = MirroredCursor{
			index: this.index,
			lb:    this.lb + prs2[symb] - prs1[symb],
			lbRev: rs1[symb] + c[symb],
			len:   rs2[symb] - rs1[symb],
		}
	}

	return cursors
}

// SymbolLeft returns the BWT symbol at the cursor's forward lower bound.
func (this MirroredCursor) SymbolLeft() int {
	return this.index.BWT().Symbol(this.lb)
}

// SymbolRight returns the BWT symbol at the cursor's reverse lower bound,
// read off the same BWT the forward side uses.
func (this MirroredCursor) SymbolRight() int {
	return this.index.BWT().Symbol(this.lbRev)
}

// Locate resolves every matched row to a (sequenceID, position) pair.
func (this MirroredCursor) Locate() []Hit {
	hits := make([]Hit, 0, this.len)

	for row := this.lb; row < this.lb+this.len; row++ {
		seqID, pos := this.index.Locate(row)
		hits = append(hits, Hit{SequenceID: seqID, Position: pos})
	}

	return hits
}
