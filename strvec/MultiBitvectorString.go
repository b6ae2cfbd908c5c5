// Package strvec implements the multi-symbol rank dictionaries (Strings)
// the FM-index C-table and BWT layers query: one bitvector per symbol, a
// binary wavelet tree, a bit-plane ternary-logic kernel (EPR) and a
// two-level multiary wavelet tree built from binary wavelet trees.
package strvec

import (
	"fmt"

	"github.com/sgssgene-go/fmseek"
	"github.com/sgssgene-go/fmseek/bitvector"
)

// MultiBitvectorString is the naive String: one Bitvector per symbol value,
// bitvector[c][i] set whenever symbol i of the sequence equals c. Simple and
// fast to build, at the cost of Sigma full-length bitvectors.
type MultiBitvectorString struct {
	sigma      int
	bitvectors []*bitvector.Bitvector
	length     int
	finalized  bool
}

var _ fmseek.String = (*MultiBitvectorString)(nil)

// NewMultiBitvectorString creates an empty, growable string over an
// alphabet of the given size.
func NewMultiBitvectorString(sigma int) (*MultiBitvectorString, error) {
	if sigma < 1 {
		return nil, fmt.Errorf("Invalid alphabet size: %d (must be at least 1)", sigma)
	}

	bvs := make([]*bitvector.Bitvector, sigma)

	for i := range bvs {
		bvs[i] = bitvector.NewBitvector()
	}

	return &MultiBitvectorString{sigma: sigma, bitvectors: bvs}, nil
}

// NewMultiBitvectorStringFromSymbols builds an already-finalized string.
func NewMultiBitvectorStringFromSymbols(sigma int, symbols []int) (*MultiBitvectorString, error) {
	this, err := NewMultiBitvectorString(sigma)

	if err != nil {
		return nil, err
	}

	for _, s := range symbols {
		if err := this.PushBack(s); err != nil {
			return nil, err
		}
	}

	this.finalize()
	return this, nil
}

// PushBack appends one symbol. Returns ErrAlphabetOverflow if symb is
// outside [0, Sigma).
func (this *MultiBitvectorString) PushBack(symb int) error {
	if this.finalized {
		return fmseek.ErrFinalized
	}

	if symb < 0 || symb >= this.sigma {
		return fmseek.ErrAlphabetOverflow
	}

	for c := 0; c < this.sigma; c++ {
		this.bitvectors[c].PushBack(c == symb)
	}

	this.length++
	return nil
}

// Size returns the number of symbols.
func (this *MultiBitvectorString) Size() int {
	return this.length
}

// Sigma returns the alphabet size.
func (this *MultiBitvectorString) Sigma() int {
	return this.sigma
}

// Symbol returns the symbol at position i.
func (this *MultiBitvectorString) Symbol(i int) int {
	for c := 0; c < this.sigma; c++ {
		if this.bitvectors[c].Symbol(i) {
			return c
		}
	}

	panic(fmt.Errorf("No symbol set at position %d", i))
}

// Rank returns the count of symbol c in [0, i).
func (this *MultiBitvectorString) Rank(i, c int) int {
	if !this.finalized {
		this.finalize()
	}

	return this.bitvectors[c].Rank(i)
}

// PrefixRank returns the count of symbols < c in [0, i).
func (this *MultiBitvectorString) PrefixRank(i, c int) int {
	if !this.finalized {
		this.finalize()
	}

	sum := 0

	for s := 0; s < c; s++ {
		sum += this.bitvectors[s].Rank(i)
	}

	return sum
}

// AllRanks returns Rank(i, c) for every c in [0, Sigma).
func (this *MultiBitvectorString) AllRanks(i int) []int {
	if !this.finalized {
		this.finalize()
	}

	ranks := make([]int, this.sigma)

	for c := 0; c < this.sigma; c++ {
		ranks[c] = this.bitvectors[c].Rank(i)
	}

	return ranks
}

// AllRanksAndPrefixRanks returns AllRanks(i) alongside running prefix sums.
func (this *MultiBitvectorString) AllRanksAndPrefixRanks(i int) ([]int, []int) {
	ranks := this.AllRanks(i)
	prefixRanks := make([]int, this.sigma)

	for c := 1; c < this.sigma; c++ {
		prefixRanks[c] = prefixRanks[c-1] + ranks[c-1]
	}

	return ranks, prefixRanks
}

func (this *MultiBitvectorString) finalize() {
	for _, bv := range this.bitvectors {
		bv.Rank(bv.Size())
	}

	this.finalized = true
}
