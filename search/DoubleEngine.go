package search

// Hit identifies one matched occurrence by its sequence and in-sequence
// position, independent of which of the two indices a DoubleEngine search
// found it through.
type Hit struct {
	SequenceID int
	Position   int
}

// DoubleEngine runs one query against two independently built indices of
// the same sequence collection and reports each matched occurrence once,
// deduplicated by (sequenceID, position). Two indices built with different
// sampling rates, or one forward and one built from a partial update,
// otherwise surface the same hit twice under naive concatenation of their
// results.
type DoubleEngine[C Cursor[C]] struct {
	first  Engine[C]
	second Engine[C]
}

// NewDoubleEngine pairs two engines of identical alphabet size and mode,
// one per underlying index.
func NewDoubleEngine[C Cursor[C]](first, second Engine[C]) DoubleEngine[C] {
	return DoubleEngine[C]{first: first, second: second}
}

// Search walks query against both initial cursors, invoking callback once
// per distinct (sequenceID, position) pair across the union of both
// engines' matches. locate resolves a matched cursor's rows to hits for
// deduplication; callers pass the cursor's own Locate-based hit extraction.
func (this DoubleEngine[C]) Search(firstInitial, secondInitial C, query []int, partition Partition, scheme Scheme, locate func(cur C) []Hit, callback func(hit Hit, errors int)) {
	seen := map[Hit]bool{}

	report := func(cur C, errors int) bool {
		for _, h := range locate(cur) {
			if seen[h] {
				continue
			}

			seen[h] = true
			callback(h, errors)
		}

		return false
	}

	this.first.Search(firstInitial, query, partition, scheme, report)
	this.second.Search(secondInitial, query, partition, scheme, report)
}
