package fmindex

// deriveBWT computes bwt[i] = text[(sa[i]-1) mod |text|] for every row of an
// already-computed suffix array, the textbook construction spec.md §4.4.1
// step 3 names directly (as opposed to suffixarray.BuildBWT, which folds
// this derivation into the induced-sort pass itself and never materializes
// sa at all — used where the suffix array isn't otherwise needed).
func deriveBWT(text []byte, sa []int64) []byte {
	n := len(text)
	bwt := make([]byte, n)

	for i, p := range sa {
		if p == 0 {
			bwt[i] = text[n-1]
		} else {
			bwt[i] = text[p-1]
		}
	}

	return bwt
}
