package strvec

import (
	"fmt"

	"github.com/sgssgene-go/fmseek"
	"github.com/sgssgene-go/fmseek/bitvector"
)

// WaveletTreeString is a perfect binary wavelet tree: node id_offset+prefix
// holds one bit per symbol, set when bit (bitWidth-level-1) of the symbol is
// 1. Descending from the root toward a leaf narrows the candidate range by
// half at every level, so rank/symbol cost O(log2 Sigma) bitvector queries
// against O(Sigma) bitvectors of total length n*log2(Sigma) instead of the
// naive O(Sigma*n).
type WaveletTreeString struct {
	sigma      int
	bitWidth   int
	bitvectors []*bitvector.Bitvector // length 2^bitWidth - 1, perfect tree in level order
	length     int
	finalized  bool
}

var _ fmseek.String = (*WaveletTreeString)(nil)

func bitWidthFor(sigma int) int {
	w := 0

	for (1 << w) < sigma {
		w++
	}

	if w == 0 {
		w = 1
	}

	return w
}

// NewWaveletTreeString creates an empty, growable wavelet tree over an
// alphabet of the given size.
func NewWaveletTreeString(sigma int) (*WaveletTreeString, error) {
	if sigma < 1 {
		return nil, fmt.Errorf("Invalid alphabet size: %d (must be at least 1)", sigma)
	}

	bw := bitWidthFor(sigma)
	nodes := (1 << bw) - 1
	bvs := make([]*bitvector.Bitvector, nodes)

	for i := range bvs {
		bvs[i] = bitvector.NewBitvector()
	}

	return &WaveletTreeString{sigma: sigma, bitWidth: bw, bitvectors: bvs}, nil
}

// NewWaveletTreeStringFromSymbols builds an already-finalized wavelet tree.
func NewWaveletTreeStringFromSymbols(sigma int, symbols []int) (*WaveletTreeString, error) {
	this, err := NewWaveletTreeString(sigma)

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

// PushBack appends one symbol, routing one bit into each level's node.
func (this *WaveletTreeString) PushBack(symb int) error {
	if this.finalized {
		return fmseek.ErrFinalized
	}

	if symb < 0 || symb >= this.sigma {
		return fmseek.ErrAlphabetOverflow
	}

	for b := 0; b < this.bitWidth; b++ {
		bitID := this.bitWidth - b - 1
		bit := (symb >> uint(bitID)) & 1
		idOffset := (1 << b) - 1
		symbOffset := symb >> uint(bitID+1)
		id := idOffset + symbOffset

		this.bitvectors[id].PushBack(bit == 1)
	}

	this.length++
	return nil
}

// Size returns the number of symbols.
func (this *WaveletTreeString) Size() int {
	return this.length
}

// Sigma returns the alphabet size.
func (this *WaveletTreeString) Sigma() int {
	return this.sigma
}

// Symbol returns the symbol at position i, descending the tree one level
// per bit.
func (this *WaveletTreeString) Symbol(i int) int {
	this.finalize()

	symb := 0
	idx := i

	for b := 0; b < this.bitWidth; b++ {
		idOffset := (1 << b) - 1
		id := idOffset + symb

		var bit, newIdx int

		if id < len(this.bitvectors) {
			if this.bitvectors[id].Symbol(idx) {
				bit = 1
			}

			newIdx = this.bitvectors[id].Rank(idx)
		}

		symb = (symb << 1) | bit

		if bit == 0 {
			idx = idx - newIdx
		} else {
			idx = newIdx
		}
	}

	return symb
}

// Rank returns the count of symbol c in [0, i).
func (this *WaveletTreeString) Rank(i, c int) int {
	this.finalize()

	idx := i

	for b := 0; b < this.bitWidth; b++ {
		bitID := this.bitWidth - b - 1
		bit := (c >> uint(bitID)) & 1
		idOffset := (1 << b) - 1
		symbOffset := c >> uint(bitID+1)
		id := idOffset + symbOffset

		newIdx := this.bitvectors[id].Rank(idx)

		if bit == 0 {
			idx = idx - newIdx
		} else {
			idx = newIdx
		}
	}

	return idx
}

// PrefixRank returns the count of symbols < c in [0, i).
func (this *WaveletTreeString) PrefixRank(i, c int) int {
	this.finalize()

	if c == 0 {
		return 0
	}

	symb := c - 1
	idx := i
	acc := 0

	for b := 0; b < this.bitWidth; b++ {
		bitID := this.bitWidth - b - 1
		bit := (symb >> uint(bitID)) & 1
		idOffset := (1 << b) - 1
		symbOffset := symb >> uint(bitID+1)
		id := idOffset + symbOffset

		newIdx := this.bitvectors[id].Rank(idx)

		if bit == 0 {
			idx = idx - newIdx
		} else {
			acc += idx - newIdx
			idx = newIdx
		}
	}

	return acc + idx
}

// AllRanks returns Rank(i, c) for every c in [0, Sigma) with a single
// top-down traversal of the tree, as opposed to Sigma independent calls.
func (this *WaveletTreeString) AllRanks(i int) []int {
	this.finalize()

	ranks := make([]int, this.sigma)
	this.collectRanks(0, 0, i, ranks)
	return ranks
}

func (this *WaveletTreeString) collectRanks(b, symb, count int, out []int) {
	if symb >= this.sigma {
		return
	}

	if b == this.bitWidth {
		out[symb] = count
		return
	}

	idOffset := (1 << b) - 1
	id := idOffset + symb
	newIdx := this.bitvectors[id].Rank(count)

	this.collectRanks(b+1, symb<<1, count-newIdx, out)
	this.collectRanks(b+1, (symb<<1)|1, newIdx, out)
}

// AllRanksAndPrefixRanks returns AllRanks(i) alongside running prefix sums.
func (this *WaveletTreeString) AllRanksAndPrefixRanks(i int) ([]int, []int) {
	ranks := this.AllRanks(i)
	prefixRanks := make([]int, this.sigma)

	for c := 1; c < this.sigma; c++ {
		prefixRanks[c] = prefixRanks[c-1] + ranks[c-1]
	}

	return ranks, prefixRanks
}

func (this *WaveletTreeString) finalize() {
	if this.finalized {
		return
	}

	for _, bv := range this.bitvectors {
		bv.Rank(bv.Size())
	}

	this.finalized = true
}
