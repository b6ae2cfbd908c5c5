package strvec

import (
	"fmt"

	"github.com/sgssgene-go/fmseek"
)

// MultiaryWaveletString splits a large alphabet into an outer "bucket"
// symbol (l0) and an inner offset within the bucket (l1), each handled by
// its own WaveletTreeString instead of one tree spanning the whole
// alphabet. Queries cost one l0 query plus one l1 query on the selected
// bucket rather than log2(Sigma) levels over the combined alphabet, which
// pays off once Sigma is large enough that the per-level bitvector overhead
// dominates.
type MultiaryWaveletString struct {
	sigma    int
	l1Sigma  int
	l0Sigma  int
	l0       *WaveletTreeString
	l1       []*WaveletTreeString // one sub-tree per l0 bucket
	l0Buffer []int
	l1Buffer [][]int
	built    bool
	length   int
}

var _ fmseek.String = (*MultiaryWaveletString)(nil)

// NewMultiaryWaveletString creates an empty, growable multiary wavelet
// string. l0Sigma sets the number of outer buckets; when 0 is passed it
// defaults to 2^(w/2) (integer division, at least 2), where w is the number
// of bits needed to hold a symbol below sigma.
func NewMultiaryWaveletString(sigma, l0Sigma int) (*MultiaryWaveletString, error) {
	if sigma < 1 {
		return nil, fmt.Errorf("Invalid alphabet size: %d (must be at least 1)", sigma)
	}

	if l0Sigma <= 0 {
		l0Sigma = 1 << (bitWidthFor(sigma) / 2)

		if l0Sigma < 2 {
			l0Sigma = 2
		}
	}

	l1Sigma := (sigma + l0Sigma - 1) / l0Sigma

	if l1Sigma < 2 {
		l1Sigma = 2
	}

	if sigma > l0Sigma*l1Sigma {
		return nil, fmt.Errorf("Invalid bucket split: %d * %d < sigma %d", l0Sigma, l1Sigma, sigma)
	}

	return &MultiaryWaveletString{
		sigma:    sigma,
		l0Sigma:  l0Sigma,
		l1Sigma:  l1Sigma,
		l1Buffer: make([][]int, l0Sigma),
	}, nil
}

// NewMultiaryWaveletStringFromSymbols builds an already-finalized multiary
// wavelet string.
func NewMultiaryWaveletStringFromSymbols(sigma, l0Sigma int, symbols []int) (*MultiaryWaveletString, error) {
	this, err := NewMultiaryWaveletString(sigma, l0Sigma)

	if err != nil {
		return nil, err
	}

	for _, s := range symbols {
		if err := this.PushBack(s); err != nil {
			return nil, err
		}
	}

	if err := this.build(); err != nil {
		return nil, err
	}

	return this, nil
}

// PushBack appends one symbol. Returns ErrAlphabetOverflow if symb is
// outside [0, Sigma).
func (this *MultiaryWaveletString) PushBack(symb int) error {
	if this.built {
		return fmseek.ErrFinalized
	}

	if symb < 0 || symb >= this.sigma {
		return fmseek.ErrAlphabetOverflow
	}

	l0c := symb / this.l1Sigma
	l1c := symb % this.l1Sigma

	this.l0Buffer = append(this.l0Buffer, l0c)
	this.l1Buffer[l0c] = append(this.l1Buffer[l0c], l1c)
	this.length++
	return nil
}

func (this *MultiaryWaveletString) build() error {
	if this.built {
		return nil
	}

	l0, err := NewWaveletTreeStringFromSymbols(this.l0Sigma, this.l0Buffer)

	if err != nil {
		return err
	}

	this.l0 = l0
	this.l1 = make([]*WaveletTreeString, this.l0Sigma)

	for i := 0; i < this.l0Sigma; i++ {
		t, err := NewWaveletTreeStringFromSymbols(this.l1Sigma, this.l1Buffer[i])

		if err != nil {
			return err
		}

		this.l1[i] = t
	}

	this.built = true
	this.l0Buffer = nil
	this.l1Buffer = nil
	return nil
}

func (this *MultiaryWaveletString) ensureBuilt() {
	if !this.built {
		if err := this.build(); err != nil {
			panic(err)
		}
	}
}

// Size returns the number of symbols.
func (this *MultiaryWaveletString) Size() int {
	return this.length
}

// Sigma returns the alphabet size.
func (this *MultiaryWaveletString) Sigma() int {
	return this.sigma
}

// Symbol returns the symbol at position i.
func (this *MultiaryWaveletString) Symbol(i int) int {
	this.ensureBuilt()

	l0c := this.l0.Symbol(i)
	r := this.l0.Rank(i, l0c)
	l1c := this.l1[l0c].Symbol(r)

	return l0c*this.l1Sigma + l1c
}

// Rank returns the count of symbol c in [0, i).
func (this *MultiaryWaveletString) Rank(i, c int) int {
	this.ensureBuilt()

	l0c := c / this.l1Sigma
	l1c := c % this.l1Sigma

	r := this.l0.Rank(i, l0c)
	return this.l1[l0c].Rank(r, l1c)
}

// PrefixRank returns the count of symbols < c in [0, i).
func (this *MultiaryWaveletString) PrefixRank(i, c int) int {
	this.ensureBuilt()

	if c >= this.sigma {
		return i
	}

	l0c := c / this.l1Sigma
	l1c := c % this.l1Sigma

	pr := this.l0.PrefixRank(i, l0c)
	r := this.l0.Rank(i, l0c)
	return pr + this.l1[l0c].PrefixRank(r, l1c)
}

// AllRanks returns Rank(i, c) for every c in [0, Sigma).
func (this *MultiaryWaveletString) AllRanks(i int) []int {
	this.ensureBuilt()

	ranks := make([]int, this.sigma)

	for c := 0; c < this.sigma; c++ {
		ranks[c] = this.Rank(i, c)
	}

	return ranks
}

// AllRanksAndPrefixRanks returns AllRanks(i) alongside running prefix sums.
func (this *MultiaryWaveletString) AllRanksAndPrefixRanks(i int) ([]int, []int) {
	ranks := this.AllRanks(i)
	prefixRanks := make([]int, this.sigma)

	for c := 1; c < this.sigma; c++ {
		prefixRanks[c] = prefixRanks[c-1] + ranks[c-1]
	}

	return ranks, prefixRanks
}
