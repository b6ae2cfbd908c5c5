package strvec

import (
	"fmt"
	"math/bits"

	"github.com/sgssgene-go/fmseek"
)

// EPRString (Enhanced Prefix Rank) stores one 64-bit-word bit-plane per bit
// of the symbol width instead of one bitvector per symbol value: symbol c is
// recorded by setting, in plane p, the bit for position i to bit p of c,
// counting from the most significant bit of the symbol width. An
// exact-match mask for a query symbol is then a bit-parallel AND across all
// planes, each plane taken either as-is or complemented depending on the
// corresponding bit of the query symbol — functionally what the teacher's
// reference implementation computes with a CPU ternary-logic instruction
// (one 3-input boolean function per word, selected by an 8-bit control
// code); Go has no portable ternary-logic intrinsic, so the same boolean
// composition is expressed directly as plane AND/XOR/NOT.
type EPRString struct {
	sigma     int
	bitWidth  int
	planes    [][]uint64 // planes[p][w] = word w of bit-plane p
	l0        [][]uint64 // per-symbol cumulative count at block boundaries
	blockBits int
	length    int
	finalized bool
}

var _ fmseek.String = (*EPRString)(nil)

const eprBlockWords = 64 // one l0 counter per 64 words (4096 bits) per symbol

// NewEPRString creates an empty, growable EPR string over an alphabet of
// the given size.
func NewEPRString(sigma int) (*EPRString, error) {
	if sigma < 1 {
		return nil, fmt.Errorf("Invalid alphabet size: %d (must be at least 1)", sigma)
	}

	bw := bitWidthFor(sigma)

	return &EPRString{
		sigma:     sigma,
		bitWidth:  bw,
		planes:    make([][]uint64, bw),
		blockBits: eprBlockWords * 64,
	}, nil
}

// NewEPRStringFromSymbols builds an already-finalized EPR string.
func NewEPRStringFromSymbols(sigma int, symbols []int) (*EPRString, error) {
	this, err := NewEPRString(sigma)

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

// PushBack appends one symbol, setting one bit per plane.
func (this *EPRString) PushBack(symb int) error {
	if this.finalized {
		return fmseek.ErrFinalized
	}

	if symb < 0 || symb >= this.sigma {
		return fmseek.ErrAlphabetOverflow
	}

	wordIdx := this.length / 64
	bitIdx := uint(this.length % 64)

	for p := 0; p < this.bitWidth; p++ {
		if wordIdx == len(this.planes[p]) {
			this.planes[p] = append(this.planes[p], 0)
		}

		bit := (symb >> uint(this.bitWidth-p-1)) & 1

		if bit == 1 {
			this.planes[p][wordIdx] |= uint64(1) << bitIdx
		}
	}

	this.length++
	return nil
}

// Size returns the number of symbols.
func (this *EPRString) Size() int {
	return this.length
}

// Sigma returns the alphabet size.
func (this *EPRString) Sigma() int {
	return this.sigma
}

// Symbol returns the symbol at position i by reading one bit per plane.
func (this *EPRString) Symbol(i int) int {
	wordIdx := i / 64
	bitIdx := uint(i % 64)

	symb := 0

	for p := 0; p < this.bitWidth; p++ {
		bit := (this.planes[p][wordIdx] >> bitIdx) & 1
		symb = (symb << 1) | int(bit)
	}

	return symb
}

// exactMaskWord returns, for word w, the bitmask of positions whose symbol
// equals c: the AND across all planes of (plane word, complemented when the
// corresponding bit of c is 0).
func (this *EPRString) exactMaskWord(w, c int) uint64 {
	mask := ^uint64(0)

	for p := 0; p < this.bitWidth; p++ {
		word := this.planes[p][w]
		bit := (c >> uint(this.bitWidth-p-1)) & 1

		if bit == 0 {
			word = ^word
		}

		mask &= word
	}

	return mask
}

// Rank returns the count of symbol c in [0, i).
func (this *EPRString) Rank(i, c int) int {
	this.finalize()

	wordIdx := i / 64
	bitIdx := uint(i % 64)

	count := int(this.l0[c][wordIdx/eprBlockWords])

	for w := (wordIdx / eprBlockWords) * eprBlockWords; w < wordIdx; w++ {
		count += bits.OnesCount64(this.exactMaskWord(w, c))
	}

	if bitIdx > 0 {
		mask := (uint64(1) << bitIdx) - 1
		count += bits.OnesCount64(this.exactMaskWord(wordIdx, c) & mask)
	}

	return count
}

// PrefixRank returns the count of symbols < c in [0, i).
func (this *EPRString) PrefixRank(i, c int) int {
	sum := 0

	for s := 0; s < c; s++ {
		sum += this.Rank(i, s)
	}

	return sum
}

// AllRanks returns Rank(i, c) for every c in [0, Sigma).
func (this *EPRString) AllRanks(i int) []int {
	ranks := make([]int, this.sigma)

	for c := 0; c < this.sigma; c++ {
		ranks[c] = this.Rank(i, c)
	}

	return ranks
}

// AllRanksAndPrefixRanks returns AllRanks(i) alongside running prefix sums.
func (this *EPRString) AllRanksAndPrefixRanks(i int) ([]int, []int) {
	ranks := this.AllRanks(i)
	prefixRanks := make([]int, this.sigma)

	for c := 1; c < this.sigma; c++ {
		prefixRanks[c] = prefixRanks[c-1] + ranks[c-1]
	}

	return ranks, prefixRanks
}

func (this *EPRString) finalize() {
	if this.finalized {
		return
	}

	nWords := (this.length + 63) / 64
	nBlocks := nWords/eprBlockWords + 1

	this.l0 = make([][]uint64, this.sigma)

	for c := 0; c < this.sigma; c++ {
		counters := make([]uint64, nBlocks)
		var acc uint64

		for block := 0; block < nBlocks; block++ {
			counters[block] = acc

			start := block * eprBlockWords
			end := start + eprBlockWords

			if end > nWords {
				end = nWords
			}

			for w := start; w < end; w++ {
				acc += uint64(bits.OnesCount64(this.exactMaskWord(w, c)))
			}
		}

		this.l0[c] = counters
	}

	this.finalized = true
}
