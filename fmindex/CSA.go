package fmindex

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sgssgene-go/fmseek"
	"github.com/sgssgene-go/fmseek/bitstream"
	"github.com/sgssgene-go/fmseek/bitvector"
	"github.com/sgssgene-go/fmseek/packedvec"
)

// DenseCSA is the sampled suffix array: a bitvector marking which BWT rows
// carry a sample, plus two packed vectors (sequence id, in-sequence
// position) holding the samples themselves in row order. A row without a
// sample is resolved by the FM-index via repeated LF-mapping until a
// sampled row is reached.
type DenseCSA struct {
	ssaPos   *packedvec.PackedVector
	ssaSeq   *packedvec.PackedVector
	bv       *bitvector.Bitvector
	seqCount int
}

// newDenseCSA samples one (sequenceID, position) pair per samplingRate
// positions of the text described by infos (accumulated, in the order the
// suffix array's positions were computed over), keeping a sample at BWT row
// i whenever sa.At(i) lands on a position whose in-sequence offset is a
// multiple of samplingRate. reverse reinterprets sa's positions as having
// been computed over each sequence reversed (ReverseFMIndex's case),
// translating the stored position back to a forward-text offset.
// seqOffset is added to every stored sequence id, used when merging indices
// built with disjoint sequence-id ranges.
func newDenseCSA(sa []int64, samplingRate int, infos []fmseek.SequenceInfo, reverse bool, seqOffset int) (*DenseCSA, error) {
	if samplingRate < 1 {
		return nil, fmt.Errorf("Invalid sampling rate: %d (must be at least 1)", samplingRate)
	}

	seqCount := len(infos)
	largest := 0
	offsets := make([]int, seqCount+1)

	for i, s := range infos {
		total := s.Length + s.DelimiterLen
		offsets[i+1] = offsets[i] + total

		if total > largest {
			largest = total
		}
	}

	ssaPos, err := packedvec.NewPackedVector(uint64(largest))

	if err != nil {
		return nil, err
	}

	maxSeqID := seqCount - 1 + seqOffset

	if maxSeqID < 0 {
		maxSeqID = 0
	}

	ssaSeq, err := packedvec.NewPackedVector(uint64(maxSeqID))

	if err != nil {
		return nil, err
	}

	bv := bitvector.NewBitvector()

	for _, pos := range sa {
		subjID, subjPos := locateSequence(offsets, int(pos))
		total := infos[subjID].Length + infos[subjID].DelimiterLen

		if reverse {
			if subjPos < total-1 {
				subjPos = total - subjPos - 1
			} else {
				subjPos = total
			}
		}

		sample := subjPos%samplingRate == 0
		bv.PushBack(sample)

		if sample {
			ssaSeq.PushBack(uint64(subjID + seqOffset))
			ssaPos.PushBack(uint64(subjPos))
		}
	}

	return &DenseCSA{ssaPos: ssaPos, ssaSeq: ssaSeq, bv: bv, seqCount: seqCount}, nil
}

// locateSequence finds the sequence owning buffer position pos given
// accumulated sequence offsets (offsets[i] is where sequence i begins).
// Unlike fmseek.Collection.Locate, a position landing exactly on a
// delimiter is not an error here: it yields the sequence's own length,
// matching DenseCSA's C++ construction, which samples delimiter rows like
// any other row.
func locateSequence(offsets []int, pos int) (seqID int, subjPos int) {
	lo, hi := 0, len(offsets)-2

	for lo < hi {
		mid := (lo + hi + 1) / 2

		if offsets[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo, pos - offsets[lo]
}

// Value returns the (sequenceID, position) sample stored at BWT row idx, if
// any.
func (this *DenseCSA) Value(idx int) (seqID int, pos int, ok bool) {
	if !this.bv.Symbol(idx) {
		return 0, 0, false
	}

	rank := this.bv.Rank(idx)
	return int(this.ssaSeq.At(rank)), int(this.ssaPos.At(rank)), true
}

// Size returns the number of BWT rows this CSA was built for.
func (this *DenseCSA) Size() int {
	return this.bv.Size()
}

// Save persists the sequence count, the sample-marker bitvector and both
// packed sample vectors.
func (this *DenseCSA) Save(w *bitstream.DefaultOutputBitStream) error {
	w.WriteBits(uint64(this.seqCount), 32)

	if err := this.bv.Save(w); err != nil {
		return errors.Wrap(err, "save CSA sample marker bitvector")
	}

	if err := this.ssaSeq.Save(w); err != nil {
		return errors.Wrap(err, "save CSA sequence-id samples")
	}

	if err := this.ssaPos.Save(w); err != nil {
		return errors.Wrap(err, "save CSA position samples")
	}

	return nil
}

// loadDenseCSA rebuilds a DenseCSA written by Save.
func loadDenseCSA(r *bitstream.DefaultInputBitStream) (*DenseCSA, error) {
	seqCount := int(r.ReadBits(32))

	bv, err := bitvector.LoadBitvector(r)

	if err != nil {
		return nil, errors.Wrap(err, "load CSA sample marker bitvector")
	}

	ssaSeq, err := packedvec.Load(r)

	if err != nil {
		return nil, errors.Wrap(err, "load CSA sequence-id samples")
	}

	ssaPos, err := packedvec.Load(r)

	if err != nil {
		return nil, errors.Wrap(err, "load CSA position samples")
	}

	return &DenseCSA{ssaPos: ssaPos, ssaSeq: ssaSeq, bv: bv, seqCount: seqCount}, nil
}
