package fmindex

import "github.com/sgssgene-go/fmseek/suffixarray"

// buildFilteredSA runs the external SA constructor over buffer. Without
// sentinels it instead runs over buffer doubled in place ("omega sorting",
// spec.md §4.4.1 step 1) to obtain correct cyclic order, then discards every
// suffix-array entry at or past the midpoint, since those describe suffixes
// of the duplicated half.
func buildFilteredSA(buffer []byte, sigma, threadHint int, useSentinels bool) ([]int64, error) {
	if useSentinels {
		sa, err := suffixarray.Build(buffer, sigma, threadHint)

		if err != nil {
			return nil, err
		}

		out := make([]int64, sa.Len())

		for i := range out {
			out[i] = sa.At(i)
		}

		return out, nil
	}

	halfSize := len(buffer)
	doubled := make([]byte, 2*halfSize)
	copy(doubled, buffer)
	copy(doubled[halfSize:], buffer)

	sa, err := suffixarray.Build(doubled, sigma, threadHint)

	if err != nil {
		return nil, err
	}

	out := make([]int64, 0, halfSize)

	for i := 0; i < sa.Len(); i++ {
		if p := sa.At(i); p < int64(halfSize) {
			out = append(out, p)
		}
	}

	return out, nil
}
