package fmindex

import (
	"github.com/pkg/errors"

	"github.com/sgssgene-go/fmseek"
	"github.com/sgssgene-go/fmseek/bitvector"
	"github.com/sgssgene-go/fmseek/packedvec"
)

// computeInterleavingR walks every sentinel-delimited suffix of rhsBWT
// backward through both BWTs' rank functions in lockstep, marking in R
// (sized lhsBWT.Size()+rhsBWT.Size()) which merged row must come from rhs
// (true) versus lhs (false). A suffix's walk ends the moment it re-reads the
// delimiter symbol, at which point its entire backward path through the
// merged index has been marked.
func computeInterleavingR(lhsBWT, rhsBWT fmseek.String, sigma int) []bool {
	lhsC := computeC(lhsBWT, sigma)
	rhsC := computeC(rhsBWT, sigma)

	R := make([]bool, lhsBWT.Size()+rhsBWT.Size())

	nbrOfSeqRhs := rhsBWT.Rank(rhsBWT.Size(), 0)

	for n := 0; n < nbrOfSeqRhs; n++ {
		idx1, idx2 := 0, n
		c := -1

		for c != 0 {
			R[idx1+idx2] = true
			c = rhsBWT.Symbol(idx2)
			idx1 = lhsBWT.Rank(idx1, c) + lhsC[c]
			idx2 = rhsBWT.Rank(idx2, c) + rhsC[c]
		}
	}

	return R
}

// mergeBWT reads lhsBWT/rhsBWT symbols in the order R dictates to produce
// the merged BWT.
func mergeBWT(R []bool, lhsBWT, rhsBWT fmseek.String) []byte {
	merged := make([]byte, 0, len(R))
	idx1, idx2 := 0, 0

	for _, fromRhs := range R {
		if !fromRhs {
			merged = append(merged, byte(lhsBWT.Symbol(idx1)))
			idx1++
		} else {
			merged = append(merged, byte(rhsBWT.Symbol(idx2)))
			idx2++
		}
	}

	return merged
}

// mergeDenseCSA rebuilds a sampled suffix array by reading lhs/rhs samples
// in R's dictated row order, shifting every sequence id coming from rhs by
// rhsSeqOffset (the number of sequences already indexed on the lhs side).
func mergeDenseCSA(R []bool, lhs, rhs *DenseCSA, rhsSeqOffset int) (*DenseCSA, error) {
	maxPos, maxSeqID := 0, 0

	for idx := 0; idx < lhs.Size(); idx++ {
		if seqID, pos, ok := lhs.Value(idx); ok {
			if pos > maxPos {
				maxPos = pos
			}

			if seqID > maxSeqID {
				maxSeqID = seqID
			}
		}
	}

	for idx := 0; idx < rhs.Size(); idx++ {
		if seqID, pos, ok := rhs.Value(idx); ok {
			if pos > maxPos {
				maxPos = pos
			}

			if seqID+rhsSeqOffset > maxSeqID {
				maxSeqID = seqID + rhsSeqOffset
			}
		}
	}

	ssaPos, err := packedvec.NewPackedVector(uint64(maxPos))

	if err != nil {
		return nil, err
	}

	ssaSeq, err := packedvec.NewPackedVector(uint64(maxSeqID))

	if err != nil {
		return nil, err
	}

	bv := bitvector.NewBitvector()
	idx1, idx2 := 0, 0

	for _, fromRhs := range R {
		var seqID, pos int
		var ok bool

		if !fromRhs {
			seqID, pos, ok = lhs.Value(idx1)
			idx1++
		} else {
			seqID, pos, ok = rhs.Value(idx2)
			seqID += rhsSeqOffset
			idx2++
		}

		bv.PushBack(ok)

		if ok {
			ssaSeq.PushBack(uint64(seqID))
			ssaPos.PushBack(uint64(pos))
		}
	}

	return &DenseCSA{ssaPos: ssaPos, ssaSeq: ssaSeq, bv: bv, seqCount: lhs.seqCount + rhs.seqCount}, nil
}

// MergeFMIndex combines two FMIndex values built over disjoint collections
// into a single index covering both, without re-running suffix array
// construction over the concatenated text.
func MergeFMIndex(lhs, rhs *FMIndex, sigma, threadHint int) (*FMIndex, error) {
	R := computeInterleavingR(lhs.bwt, rhs.bwt, sigma)

	mergedBytes := mergeBWT(R, lhs.bwt, rhs.bwt)
	mergedBWT, err := newBWTString(sigma, mergedBytes)

	if err != nil {
		return nil, err
	}

	mergedCSA, err := mergeDenseCSA(R, lhs.csa, rhs.csa, lhs.csa.seqCount)

	if err != nil {
		return nil, err
	}

	c, err := computeCFromBytes(mergedBytes, sigma, threadHint)

	if err != nil {
		return nil, err
	}

	return &FMIndex{bwt: mergedBWT, c: c, csa: mergedCSA, sigma: sigma}, nil
}

// MergeBiFMIndex combines two BiFMIndex values built over disjoint
// collections. The forward BWTs interleave under one R array and carry the
// merged CSA; the reverse BWTs interleave independently under their own R,
// since BiFMIndex keeps no CSA for the reverse side.
func MergeBiFMIndex(lhs, rhs *BiFMIndex, sigma, threadHint int) (*BiFMIndex, error) {
	R := computeInterleavingR(lhs.bwt, rhs.bwt, sigma)

	mergedBytes := mergeBWT(R, lhs.bwt, rhs.bwt)
	mergedBWT, err := newBWTString(sigma, mergedBytes)

	if err != nil {
		return nil, err
	}

	mergedCSA, err := mergeDenseCSA(R, lhs.csa, rhs.csa, lhs.csa.seqCount)

	if err != nil {
		return nil, err
	}

	RRev := computeInterleavingR(lhs.bwtRev, rhs.bwtRev, sigma)

	mergedRevBytes := mergeBWT(RRev, lhs.bwtRev, rhs.bwtRev)
	mergedBWTRev, err := newBWTString(sigma, mergedRevBytes)

	if err != nil {
		return nil, err
	}

	c, err := computeCFromBytes(mergedBytes, sigma, threadHint)

	if err != nil {
		return nil, err
	}

	return &BiFMIndex{bwt: mergedBWT, bwtRev: mergedBWTRev, c: c, csa: mergedCSA, sigma: sigma}, nil
}

// MergeAllFMIndex folds MergeFMIndex over indices left to right, the way
// merge.h's generic merge collapses a list of indices by repeated pairwise
// merge rather than building one interleave vector over all of them at once.
func MergeAllFMIndex(indices []*FMIndex, sigma, threadHint int) (*FMIndex, error) {
	if len(indices) == 0 {
		return nil, errors.New("MergeAllFMIndex: no indices given")
	}

	merged := indices[0]

	for _, next := range indices[1:] {
		var err error
		merged, err = MergeFMIndex(merged, next, sigma, threadHint)

		if err != nil {
			return nil, err
		}
	}

	return merged, nil
}

// MergeAllBiFMIndex folds MergeBiFMIndex over indices left to right; see
// MergeAllFMIndex.
func MergeAllBiFMIndex(indices []*BiFMIndex, sigma, threadHint int) (*BiFMIndex, error) {
	if len(indices) == 0 {
		return nil, errors.New("MergeAllBiFMIndex: no indices given")
	}

	merged := indices[0]

	for _, next := range indices[1:] {
		var err error
		merged, err = MergeBiFMIndex(merged, next, sigma, threadHint)

		if err != nil {
			return nil, err
		}
	}

	return merged, nil
}
