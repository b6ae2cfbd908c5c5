package fmindex

import (
	"time"

	"github.com/sgssgene-go/fmseek"
)

// ReverseFMIndex indexes every input sequence reversed in place (each
// sequence reversed independently, not the concatenated buffer as a whole —
// that distinction is what separates it from BiFMIndex's reverse BWT),
// letting right-extension searches run as left-extension against reversed
// rows.
type ReverseFMIndex struct {
	bwt   fmseek.String
	c     []int
	csa   *DenseCSA
	sigma int
}

// NewReverseFMIndex builds a ReverseFMIndex over texts, with the same
// sentinel/omega-sorting choice as NewFMIndex.
func NewReverseFMIndex(texts [][]byte, sigma, samplingRate, threadHint int, useSentinels bool, listeners ...fmseek.Listener) (*ReverseFMIndex, error) {
	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtConcatenateStart, int64(len(texts)), "", time.Time{}))
	buffer, infos, err := concatenate(texts, sigma, useSentinels, true)
	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtConcatenateEnd, int64(len(buffer)), "", time.Time{}))

	if err != nil {
		return nil, err
	}

	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtSuffixArrayStart, int64(len(buffer)), "", time.Time{}))
	sa, err := buildFilteredSA(buffer, sigma, threadHint, useSentinels)
	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtSuffixArrayEnd, int64(len(buffer)), "", time.Time{}))

	if err != nil {
		return nil, err
	}

	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtBWTStart, int64(len(buffer)), "", time.Time{}))
	bwtBytes := deriveBWT(buffer, sa)

	bwt, err := newBWTString(sigma, bwtBytes)
	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtBWTEnd, int64(len(buffer)), "", time.Time{}))

	if err != nil {
		return nil, err
	}

	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtSampleStart, int64(len(buffer)), "", time.Time{}))
	csa, err := newDenseCSA(sa, samplingRate, infos, true, 0)
	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtSampleEnd, int64(len(buffer)), "", time.Time{}))

	if err != nil {
		return nil, err
	}

	c, err := computeCFromBytes(bwtBytes, sigma, threadHint)

	if err != nil {
		return nil, err
	}

	return &ReverseFMIndex{bwt: bwt, c: c, csa: csa, sigma: sigma}, nil
}

func (this *ReverseFMIndex) Size() int {
	return this.bwt.Size()
}

func (this *ReverseFMIndex) Sigma() int {
	return this.sigma
}

func (this *ReverseFMIndex) BWT() fmseek.String {
	return this.bwt
}

func (this *ReverseFMIndex) C() []int {
	return this.c
}

// Locate resolves BWT row idx the same way FMIndex.Locate does; the
// reverse-translation of in-sequence positions already happened at
// construction time inside newDenseCSA, so accumulated LF-mapping steps add
// onto the sampled forward position exactly as in the forward index.
func (this *ReverseFMIndex) Locate(idx int) (seqID int, pos int) {
	steps := 0

	for {
		if id, p, ok := this.csa.Value(idx); ok {
			return id, p + steps
		}

		symb := this.bwt.Symbol(idx)
		idx = this.bwt.Rank(idx, symb) + this.c[symb]
		steps++
	}
}
