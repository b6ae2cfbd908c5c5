// Package fmindex builds unidirectional, reverse and bidirectional FM-indices
// (Burrows-Wheeler transform, C-table, sampled suffix array) on top of the
// suffixarray and strvec packages, and merges indices of independently built
// collections without reconstructing from scratch.
package fmindex

import (
	"fmt"

	"github.com/sgssgene-go/fmseek"
)

// concatenate joins texts into one buffer, ready for the suffix-array
// constructor. With useSentinels, each text is followed by one delimiter
// byte (value fmseek.Sentinel); every symbol of every text must then lie in
// [1, sigma). Without useSentinels no delimiter is appended and symbols may
// use the full [0, sigma) range ("omega sorting" mode: the caller is
// expected to double the resulting buffer before handing it to the SA
// constructor and discard suffix-array entries past the midpoint).
// reverseEach reverses each text independently before appending it, used by
// ReverseFMIndex; it has no effect on the delimiter placement.
func concatenate(texts [][]byte, sigma int, useSentinels bool, reverseEach bool) ([]byte, []fmseek.SequenceInfo, error) {
	if len(texts) == 0 {
		return nil, nil, fmseek.ErrEmptyCollection
	}

	total := 0

	for _, t := range texts {
		total += len(t)

		if useSentinels {
			total++
		}
	}

	buffer := make([]byte, 0, total)
	infos := make([]fmseek.SequenceInfo, 0, len(texts))

	for _, t := range texts {
		start := len(buffer)

		if reverseEach {
			for i := len(t) - 1; i >= 0; i-- {
				buffer = append(buffer, t[i])
			}
		} else {
			buffer = append(buffer, t...)
		}

		for _, b := range buffer[start:] {
			if useSentinels {
				if int(b) < 1 || int(b) >= sigma {
					return nil, nil, fmt.Errorf("Symbol %d out of range [1, %d) required when sentinels are used", b, sigma)
				}
			} else if int(b) >= sigma {
				return nil, nil, fmseek.ErrAlphabetOverflow
			}
		}

		delimiterLen := 0

		if useSentinels {
			buffer = append(buffer, fmseek.Sentinel)
			delimiterLen = 1
		}

		infos = append(infos, fmseek.SequenceInfo{Length: len(t), DelimiterLen: delimiterLen})
	}

	return buffer, infos, nil
}
