package fmindex

import (
	"time"

	"github.com/sgssgene-go/fmseek"
	"golang.org/x/sync/errgroup"
)

// BiFMIndex indexes a collection in both directions at once, sharing a
// single C-table and a single (forward) sampled suffix array between a
// forward BWT and a reverse BWT. The reverse BWT is built over the whole
// concatenated buffer reversed, not over each sequence reversed
// independently — that whole-buffer reversal is what distinguishes it from
// ReverseFMIndex, and is why it needs no CSA of its own: every locate
// resolves through the forward CSA, the reverse BWT only ever extends a
// cursor to the right.
type BiFMIndex struct {
	bwt    fmseek.String
	bwtRev fmseek.String
	c      []int
	csa    *DenseCSA
	sigma  int
}

// NewBiFMIndex builds a BiFMIndex over texts. Forward and reverse BWTs are
// constructed concurrently since neither depends on the other. Listeners,
// if given, are notified around the (sequential) concatenation step and
// around the concurrent BWT-construction step as a whole; per-goroutine
// sub-stage events are not fired, since Listener implementations are not
// guaranteed safe for concurrent ProcessEvent calls.
func NewBiFMIndex(texts [][]byte, sigma, samplingRate, threadHint int, useSentinels bool, listeners ...fmseek.Listener) (*BiFMIndex, error) {
	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtConcatenateStart, int64(len(texts)), "", time.Time{}))
	buffer, infos, err := concatenate(texts, sigma, useSentinels, false)
	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtConcatenateEnd, int64(len(buffer)), "", time.Time{}))

	if err != nil {
		return nil, err
	}

	reversed := make([]byte, len(buffer))

	for i, b := range buffer {
		reversed[len(buffer)-1-i] = b
	}

	var bwt, bwtRev fmseek.String
	var c []int
	var csa *DenseCSA

	var g errgroup.Group

	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtBWTStart, int64(len(buffer)), "", time.Time{}))

	g.Go(func() error {
		sa, err := buildFilteredSA(buffer, sigma, threadHint, useSentinels)

		if err != nil {
			return err
		}

		bwtBytes := deriveBWT(buffer, sa)
		bwt, err = newBWTString(sigma, bwtBytes)

		if err != nil {
			return err
		}

		c, err = computeCFromBytes(bwtBytes, sigma, threadHint)

		if err != nil {
			return err
		}

		csa, err = newDenseCSA(sa, samplingRate, infos, false, 0)
		return err
	})

	g.Go(func() error {
		saRev, err := buildFilteredSA(reversed, sigma, threadHint, useSentinels)

		if err != nil {
			return err
		}

		bwtRevBytes := deriveBWT(reversed, saRev)
		bwtRev, err = newBWTString(sigma, bwtRevBytes)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtBWTEnd, int64(len(buffer)), "", time.Time{}))

	return &BiFMIndex{bwt: bwt, bwtRev: bwtRev, c: c, csa: csa, sigma: sigma}, nil
}

func (this *BiFMIndex) Size() int {
	return this.bwt.Size()
}

func (this *BiFMIndex) Sigma() int {
	return this.sigma
}

// BWT exposes the forward BWT, used by the cursor package to extend left.
func (this *BiFMIndex) BWT() fmseek.String {
	return this.bwt
}

// BWTRev exposes the reverse BWT, used by the cursor package to extend
// right.
func (this *BiFMIndex) BWTRev() fmseek.String {
	return this.bwtRev
}

func (this *BiFMIndex) C() []int {
	return this.c
}

// Locate resolves a forward-BWT row idx exactly as FMIndex.Locate does,
// walking the shared forward CSA.
func (this *BiFMIndex) Locate(idx int) (seqID int, pos int) {
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
