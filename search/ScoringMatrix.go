package search

// ScoringMatrix classifies every (queryRank, refRank) pair as identity,
// ambiguous, or mismatch, and tracks two independent, separately exhausted
// error budgets rather than the single error count Hamming/Edit searches
// share. An ambiguous substitute is one a caller wants distinguished from a
// hard mismatch — an IUPAC code standing in for several bases, say — and is
// spent out of allowedAmbiguous before ever touching the mismatch budget.
type ScoringMatrix struct {
	querySigma, refSigma int
	ambiguous             [][]int
	mismatch              [][]int
	allowedAmbiguous      int
}

// NewScoringMatrix returns a matrix over a querySigma x refSigma alphabet
// pair where every non-identity pair defaults to a mismatch; callers narrow
// individual pairs to ambiguous via SetAmbiguous. allowedAmbiguous caps how
// many ambiguous substitutions a single search may spend, independent of
// its overall error budget.
func NewScoringMatrix(querySigma, refSigma, allowedAmbiguous int) *ScoringMatrix {
	sm := &ScoringMatrix{
		querySigma:       querySigma,
		refSigma:         refSigma,
		ambiguous:        make([][]int, querySigma),
		mismatch:         make([][]int, querySigma),
		allowedAmbiguous: allowedAmbiguous,
	}

	for q := 1; q < querySigma; q++ {
		for r := 1; r < refSigma; r++ {
			if q != r {
				sm.mismatch[q] = append(sm.mismatch[q], r)
			}
		}
	}

	return sm
}

// SetAmbiguous moves (queryRank, refRank) from the mismatch list to the
// ambiguous list. Marking a pair identical to itself is a no-op, matching
// the diagonal always being excluded from both lists.
func (this *ScoringMatrix) SetAmbiguous(queryRank, refRank int) {
	this.mismatch[queryRank] = removeInt(this.mismatch[queryRank], refRank)
	this.ambiguous[queryRank] = removeInt(this.ambiguous[queryRank], refRank)

	if queryRank == refRank {
		return
	}

	this.ambiguous[queryRank] = append(this.ambiguous[queryRank], refRank)
}

// SetMismatch moves (queryRank, refRank) back to the mismatch list.
func (this *ScoringMatrix) SetMismatch(queryRank, refRank int) {
	this.mismatch[queryRank] = removeInt(this.mismatch[queryRank], refRank)
	this.ambiguous[queryRank] = removeInt(this.ambiguous[queryRank], refRank)

	if queryRank == refRank {
		return
	}

	this.mismatch[queryRank] = append(this.mismatch[queryRank], refRank)
}

func removeInt(xs []int, v int) []int {
	out := xs[:0]

	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}

// smState carries the two-budget bookkeeping a ScoringMatrix search threads
// through its recursion, alongside the same per-side match/mismatch trace
// an ordinary Engine search threads.
type smState struct {
	remainingAmbiguous  int
	remainingMismatches int
}

// SearchScoringMatrix walks scheme against query exactly like
// Engine.Search, except every substitution is first checked against
// matrix's ambiguous list (spent from remainingAmbiguous) before falling
// back to its mismatch list (spent from remainingMismatches). maxErrors
// seeds remainingAmbiguous with min(maxErrors, matrix.allowedAmbiguous) and
// remainingMismatches with the rest, mirroring how the two budgets are
// carved out of one overall error allowance.
func (this Engine[C]) SearchScoringMatrix(initial C, query []int, partition Partition, scheme Scheme, matrix *ScoringMatrix, maxErrors int, callback func(cur C, errors int) bool) {
	bounds := partBounds(partition)

	remainingAmbiguous := maxErrors
	if matrix.allowedAmbiguous < remainingAmbiguous {
		remainingAmbiguous = matrix.allowedAmbiguous
	}

	st := smState{remainingAmbiguous: remainingAmbiguous, remainingMismatches: maxErrors - remainingAmbiguous}

	for _, s := range scheme.Searches {
		if this.advancePartSM(initial, query, bounds, s, 0, 0, tagMatch, tagMatch, side{}, side{}, matrix, st, callback) {
			return
		}
	}
}

func (this Engine[C]) advancePartSM(cur C, query []int, bounds []int, s Search, part int, errs int, lInfo, rInfo editTag, sideL, sideR side, matrix *ScoringMatrix, st smState, callback func(cur C, errors int) bool) bool {
	if cur.Empty() {
		return false
	}

	if part == len(s.Pi) {
		if (lInfo == tagMatch || lInfo == tagIns) && (rInfo == tagMatch || rInfo == tagIns) {
			return callback(cur, errs)
		}

		return false
	}

	partIdx := s.Pi[part]
	right := part == 0 || s.Pi[part-1] < s.Pi[part]
	start, end := bounds[partIdx], bounds[partIdx+1]

	pos := start

	if !right {
		pos = end - 1
	}

	return this.advanceCharSM(cur, query, bounds, s, part, right, pos, start, end, errs, lInfo, rInfo, sideL, sideR, matrix, st, callback)
}

func (this Engine[C]) advanceCharSM(cur C, query []int, bounds []int, s Search, part int, right bool, pos, start, end int, errs int, lInfo, rInfo editTag, sideL, sideR side, matrix *ScoringMatrix, st smState, callback func(cur C, errors int) bool) bool {
	atEnd := pos < start || pos >= end

	if atEnd {
		if s.L[part] <= errs && errs <= s.U[part] {
			return this.advancePartSM(cur, query, bounds, s, part+1, errs, lInfo, rInfo, sideL, sideR, matrix, st, callback)
		}

		return false
	}

	tInfo := lInfo

	if right {
		tInfo = rInfo
	}

	deletionOK := this.mode == Edit && tInfo != tagSub && tInfo != tagIns
	insertionOK := this.mode == Edit && tInfo != tagSub && tInfo != tagDel

	nextSymb := query[pos]
	nextPos := pos + 1

	if !right {
		nextPos = pos - 1
	}

	activeSide := sideL

	if right {
		activeSide = sideR
	}

	matchAllowed := s.L[part] <= errs && errs <= s.U[part] &&
		(tInfo != tagIns || nextSymb != activeSide.lastQRank) &&
		(tInfo != tagDel || nextSymb != activeSide.lastRank)
	mismatchAllowed := s.L[part] <= errs+1 && errs+1 <= s.U[part]

	onMatchL, onMatchR := lInfo, rInfo
	onSubL, onSubR := lInfo, rInfo
	onDelL, onDelR := lInfo, rInfo
	onInsL, onInsR := lInfo, rInfo

	if right {
		onMatchR, onSubR, onDelR, onInsR = tagMatch, tagSub, tagDel, tagIns
	} else {
		onMatchL, onSubL, onDelL, onInsL = tagMatch, tagSub, tagDel, tagIns
	}

	withSide := func(rank, qrank int) (side, side) {
		s := activeSide
		s.lastRank = rank
		s.lastQRank = qrank

		if right {
			return sideL, s
		}

		return s, sideR
	}

	if !mismatchAllowed {
		if matchAllowed {
			var newCur C

			if right {
				newCur = cur.ExtendRight(nextSymb)
			} else {
				newCur = cur.ExtendLeft(nextSymb)
			}

			newSideL, newSideR := withSide(nextSymb, nextSymb)

			return this.advanceCharSM(newCur, query, bounds, s, part, right, nextPos, start, end, errs, onMatchL, onMatchR, newSideL, newSideR, matrix, st, callback)
		}

		return false
	}

	var cursors []C

	if right {
		cursors = cur.ExtendRightAll()
	} else {
		cursors = cur.ExtendLeftAll()
	}

	if matchAllowed {
		newSideL, newSideR := withSide(nextSymb, nextSymb)

		if this.advanceCharSM(cursors[nextSymb], query, bounds, s, part, right, nextPos, start, end, errs, onMatchL, onMatchR, newSideL, newSideR, matrix, st, callback) {
			return true
		}
	}

	if st.remainingAmbiguous > 0 {
		nextSt := smState{remainingAmbiguous: st.remainingAmbiguous - 1, remainingMismatches: st.remainingMismatches}

		for _, symb := range matrix.ambiguous[nextSymb] {
			subL, subR := withSide(symb, nextSymb)

			if this.advanceCharSM(cursors[symb], query, bounds, s, part, right, nextPos, start, end, errs+1, onSubL, onSubR, subL, subR, matrix, nextSt, callback) {
				return true
			}
		}
	}

	if st.remainingMismatches > 0 {
		nextSt := smState{remainingAmbiguous: st.remainingAmbiguous, remainingMismatches: st.remainingMismatches - 1}

		if deletionOK {
			for i := 1; i < this.sigma; i++ {
				if tInfo != tagMatch || activeSide.lastQRank != i {
					delL, delR := withSide(i, activeSide.lastQRank)

					if this.advanceCharSM(cursors[i], query, bounds, s, part, right, pos, start, end, errs+1, onDelL, onDelR, delL, delR, matrix, nextSt, callback) {
						return true
					}
				}
			}
		}

		if st.remainingAmbiguous == 0 {
			for _, symb := range matrix.ambiguous[nextSymb] {
				subL, subR := withSide(symb, nextSymb)

				if this.advanceCharSM(cursors[symb], query, bounds, s, part, right, nextPos, start, end, errs+1, onSubL, onSubR, subL, subR, matrix, nextSt, callback) {
					return true
				}
			}
		}

		for _, symb := range matrix.mismatch[nextSymb] {
			subL, subR := withSide(symb, nextSymb)

			if this.advanceCharSM(cursors[symb], query, bounds, s, part, right, nextPos, start, end, errs+1, onSubL, onSubR, subL, subR, matrix, nextSt, callback) {
				return true
			}
		}

		if insertionOK {
			if tInfo != tagMatch || activeSide.lastQRank != nextSymb {
				insL, insR := withSide(activeSide.lastRank, nextSymb)

				if this.advanceCharSM(cur, query, bounds, s, part, right, nextPos, start, end, errs+1, onInsL, onInsR, insL, insR, matrix, nextSt, callback) {
					return true
				}
			}
		}
	}

	return false
}
