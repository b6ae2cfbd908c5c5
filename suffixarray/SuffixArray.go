/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package suffixarray is the external SA-constructor collaborator: it takes
// a byte buffer and an alphabet size and returns a suffix array (or, via
// BuildBWT, the Burrows-Wheeler transform directly) using induced sorting
// (SA-IS). The fmindex package is the only intended caller; this package
// does not know about collections, sentinels or sampling.
package suffixarray

import (
	"fmt"

	"github.com/sgssgene-go/fmseek"
)

// int32Slack is the margin subtracted from math.MaxInt32 before switching to
// a 64-bit suffix array: a text of length exactly 1<<31-1 would leave no
// room for a one-past-the-end sentinel position that some downstream
// consumers (e.g. CSA construction) index past the last row, so the cutover
// happens a little early rather than exactly at the int32 boundary.
const int32Slack = 1024

const maxInt32 = 1<<31 - 1

// SuffixArray is the result of a suffix array construction: a permutation of
// [0, n) giving text positions in lexicographic order of their suffixes.
// Implementations store the array in 32 or 64-bit words depending on text
// length so short texts do not pay 64-bit overhead.
type SuffixArray interface {
	// Len returns the number of entries (equal to the indexed text length).
	Len() int

	// At returns the text position stored at suffix-array rank i.
	At(i int) int64
}

type sa32 []int32

func (s sa32) Len() int        { return len(s) }
func (s sa32) At(i int) int64 { return int64(s[i]) }

type sa64 []int64

func (s sa64) Len() int        { return len(s) }
func (s sa64) At(i int) int64 { return s[i] }

// Build computes the suffix array of text, whose symbols must all lie in
// [0, sigma). threadHint is accepted for symmetry with the external
// collaborator contract (the caller may want to parallelize surrounding
// work, such as building several sequences' indices concurrently) but is
// not consumed here: SA-IS's recursive reduction is inherently sequential,
// and kanzi-go's own SA_IS.go never spawns goroutines internally either.
func Build(text []byte, sigma int, threadHint int) (SuffixArray, error) {
	data, err := toSymbols(text, sigma)

	if err != nil {
		return nil, err
	}

	n := len(data)

	if n == 0 {
		return sa32{}, nil
	}

	sa := make([]int, n)
	computeSuffixArray(data, sa, 0, n, sigma, false)

	if n < maxInt32-int32Slack {
		out := make(sa32, n)

		for i, v := range sa {
			out[i] = int32(v)
		}

		return out, nil
	}

	out := make(sa64, n)

	for i, v := range sa {
		out[i] = int64(v)
	}

	return out, nil
}

// BuildBWT computes the Burrows-Wheeler transform of text directly, without
// materializing the full suffix array, and returns the row holding the
// suffix that starts at position 0 (the index an FM-index needs to seed
// LF-mapping); that row's BWT symbol is the last symbol of text.
func BuildBWT(text []byte, sigma int) (bwt []byte, primaryIndex int, err error) {
	data, err := toSymbols(text, sigma)

	if err != nil {
		return nil, 0, err
	}

	n := len(data)

	if n == 0 {
		return nil, 0, nil
	}

	sa := make([]int, n)
	pidx := computeSuffixArray(data, sa, 0, n, sigma, true)

	bwt = make([]byte, n)

	for i, v := range sa {
		bwt[i] = byte(v)
	}

	bwt[pidx] = text[n-1]

	return bwt, pidx, nil
}

func toSymbols(text []byte, sigma int) ([]int, error) {
	if sigma < 1 || sigma > fmseek.MaxAlphabetSize {
		return nil, fmt.Errorf("Invalid alphabet size: %d (must be in [1, %d])", sigma, fmseek.MaxAlphabetSize)
	}

	data := make([]int, len(text))

	for i, b := range text {
		if int(b) >= sigma {
			return nil, fmseek.ErrAlphabetOverflow
		}

		data[i] = int(b)
	}

	return data, nil
}
