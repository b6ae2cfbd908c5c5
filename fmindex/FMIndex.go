package fmindex

import (
	"time"

	"github.com/sgssgene-go/fmseek"
)

// FMIndex is the unidirectional FM-index: a BWT string, its C-table and a
// sampled suffix array. It supports left extension only (via the cursor
// package); locate is the only reason it ever walks more than one BWT row.
type FMIndex struct {
	bwt   fmseek.String
	c     []int
	csa   *DenseCSA
	sigma int
}

// NewFMIndex builds an FM-index over texts. useSentinels selects whether
// texts are delimited by an explicit sentinel symbol (recommended; symbols
// must then lie in [1, sigma)) or concatenated with omega sorting (symbols
// may use the full [0, sigma) range, but individual sequences can no longer
// be told apart at a delimiter boundary, only by comparing positions
// against accumulated sequence lengths).
// Listeners, if given, are notified of each construction stage exactly as
// the teacher's CompressedOutputStream notifies its listeners around each
// transform/entropy stage.
func NewFMIndex(texts [][]byte, sigma, samplingRate, threadHint int, useSentinels bool, listeners ...fmseek.Listener) (*FMIndex, error) {
	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtConcatenateStart, int64(len(texts)), "", time.Time{}))
	buffer, infos, err := concatenate(texts, sigma, useSentinels, false)
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
	csa, err := newDenseCSA(sa, samplingRate, infos, false, 0)
	fmseek.Notify(listeners, fmseek.NewEvent(fmseek.EvtSampleEnd, int64(len(buffer)), "", time.Time{}))

	if err != nil {
		return nil, err
	}

	c, err := computeCFromBytes(bwtBytes, sigma, threadHint)

	if err != nil {
		return nil, err
	}

	return &FMIndex{bwt: bwt, c: c, csa: csa, sigma: sigma}, nil
}

// Size returns the number of BWT rows (the total indexed text length,
// delimiters included).
func (this *FMIndex) Size() int {
	return this.bwt.Size()
}

// Sigma returns the alphabet size this index was built for.
func (this *FMIndex) Sigma() int {
	return this.sigma
}

// BWT exposes the underlying String, used by the cursor package to drive
// LF-mapping directly.
func (this *FMIndex) BWT() fmseek.String {
	return this.bwt
}

// C returns the accumulated symbol-count table, C[c] = number of BWT
// symbols strictly less than c, length Sigma+1.
func (this *FMIndex) C() []int {
	return this.c
}

// Locate resolves BWT row idx to (sequenceID, positionInSequence) by
// repeated LF-mapping until a sampled suffix-array row is found.
func (this *FMIndex) Locate(idx int) (seqID int, pos int) {
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

// SingleLocateStep returns the sampled value at row idx without walking the
// LF-mapping chain, for callers that already know the row is sampled.
func (this *FMIndex) SingleLocateStep(idx int) (seqID int, pos int, ok bool) {
	return this.csa.Value(idx)
}
