package fmindex

import (
	"github.com/pkg/errors"

	"github.com/sgssgene-go/fmseek"
	"github.com/sgssgene-go/fmseek/bitstream"
	"github.com/sgssgene-go/fmseek/internal"
	"github.com/sgssgene-go/fmseek/strvec"
	"golang.org/x/sync/errgroup"
)

// newBWTString picks a String strategy for a BWT of the given alphabet size:
// EPR's bit-plane layout pays off best on the small alphabets (DNA/protein)
// this library targets, the plain wavelet tree is a fair middle ground, and
// the multiary wavelet keeps per-query bitvector-descent cost bounded once
// Sigma grows past one byte's worth of wavelet levels.
func newBWTString(sigma int, bwt []byte) (fmseek.String, error) {
	symbols := make([]int, len(bwt))

	for i, b := range bwt {
		symbols[i] = int(b)
	}

	switch {
	case sigma <= 6:
		return strvec.NewEPRStringFromSymbols(sigma, symbols)
	case sigma <= 64:
		return strvec.NewWaveletTreeStringFromSymbols(sigma, symbols)
	default:
		return strvec.NewMultiaryWaveletStringFromSymbols(sigma, 0, symbols)
	}
}

// computeC derives the C-table (C[c] = number of BWT symbols < c) from an
// already-finalized String, reusing its own rank counters instead of a
// second pass over the raw bytes. Used when only a String is at hand (the
// interleaving computation in Merge.go walks two already-built indices, not
// raw byte buffers).
func computeC(bwt fmseek.String, sigma int) []int {
	c := make([]int, sigma+1)

	for s := 0; s < sigma; s++ {
		c[s+1] = c[s] + bwt.Rank(bwt.Size(), s)
	}

	return c
}

// computeCFromBytes derives the C-table directly from a freshly derived BWT
// byte buffer, the moment it is available and before it is wrapped in a
// String. The buffer is split into threadHint chunks (sized the same way
// the teacher's BlockCompressorTask splits a block's jobs across workers),
// each chunk's order-0 histogram computed concurrently via
// internal.ComputeHistogram, then summed into one alphabet-wide histogram
// before the prefix sum.
func computeCFromBytes(bwtBytes []byte, sigma, threadHint int) ([]int, error) {
	if threadHint < 1 {
		threadHint = 1
	}

	n := len(bwtBytes)

	if n == 0 {
		return make([]int, sigma+1), nil
	}

	if threadHint > n {
		threadHint = n
	}

	jobsPerTask, err := internal.ComputeJobsPerTask(make([]uint, threadHint), uint(n), uint(threadHint))

	if err != nil {
		return nil, err
	}

	chunkHistos := make([][257]int, threadHint)

	var g errgroup.Group
	offset := 0

	for task, jobs := range jobsPerTask {
		task, start, end := task, offset, offset+int(jobs)
		offset = end

		g.Go(func() error {
			freqs := make([]int, 257)
			internal.ComputeHistogram(bwtBytes[start:end], freqs, true, false)
			copy(chunkHistos[task][:], freqs)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := make([]int, 256)

	for _, h := range chunkHistos {
		for s := 0; s < 256; s++ {
			total[s] += h[s]
		}
	}

	c := make([]int, sigma+1)

	for s := 0; s < sigma; s++ {
		c[s+1] = c[s] + total[s]
	}

	return c, nil
}

// saveBWTString dispatches to whichever concrete String newBWTString would
// have picked for this Sigma.
func saveBWTString(bwt fmseek.String, w *bitstream.DefaultOutputBitStream) error {
	switch s := bwt.(type) {
	case *strvec.EPRString:
		return s.Save(w)
	case *strvec.WaveletTreeString:
		return s.Save(w)
	case *strvec.MultiaryWaveletString:
		return s.Save(w)
	default:
		return errors.Errorf("cannot serialize BWT string of type %T", bwt)
	}
}

// loadBWTString rebuilds whichever concrete String newBWTString would have
// picked for sigma, without needing a type tag on the wire: the choice is a
// pure function of sigma, the same one newBWTString makes at construction.
func loadBWTString(sigma int, r *bitstream.DefaultInputBitStream) (fmseek.String, error) {
	switch {
	case sigma <= 6:
		return strvec.LoadEPRString(r)
	case sigma <= 64:
		return strvec.LoadWaveletTreeString(r)
	default:
		return strvec.LoadMultiaryWaveletString(r)
	}
}
