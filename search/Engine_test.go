package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sgssgene-go/fmseek/cursor"
	"github.com/sgssgene-go/fmseek/fmindex"
	"github.com/sgssgene-go/fmseek/search"
	"github.com/sgssgene-go/fmseek/search/scheme"
)

// sigma is Σ=5 with sentinel=0, {A=1, C=2, G=3, T=4} throughout this file.
const sigma = 5

var base = map[byte]int{'A': 1, 'C': 2, 'G': 3, 'T': 4}

func encode(s string) []byte {
	out := make([]byte, len(s))

	for i := range s {
		out[i] = byte(base[s[i]])
	}

	return out
}

func encodeQuery(s string) []int {
	out := make([]int, len(s))

	for i := range s {
		out[i] = base[s[i]]
	}

	return out
}

func exactScheme(queryLen int) (search.Scheme, search.Partition) {
	return search.Scheme{Searches: []search.Search{{Pi: []int{0}, L: []int{0}, U: []int{0}}}}, search.Partition{queryLen}
}

type hit struct {
	seq, pos int
}

func locateBi(cur cursor.BiCursor) []hit {
	hits := make([]hit, 0)

	for _, h := range cur.Locate() {
		hits = append(hits, hit{seq: h.SequenceID, pos: h.Position})
	}

	return hits
}

func TestExactSearchSingleText(t *testing.T) {
	texts := [][]byte{encode("AGATCA")}

	idx, err := fmindex.NewBiFMIndex(texts, sigma, 2, 1, true)
	require.NoError(t, err)

	scheme, partition := exactScheme(2)
	engine := search.NewEngine[cursor.BiCursor](sigma, search.Hamming)

	run := search.NewRun()
	var got []hit

	engine.Search(cursor.NewBiCursor(idx), encodeQuery("AT"), partition, scheme, func(cur cursor.BiCursor, errs int) bool {
		require.Equal(t, 0, errs)
		run.Observe(cur.Count())
		got = append(got, locateBi(cur)...)
		return false
	})

	require.ElementsMatch(t, []hit{{0, 2}}, got)
	require.Equal(t, 1, run.Matches)
	require.NotEmpty(t, run.String())
}

func TestExactSearchAcrossTwoTexts(t *testing.T) {
	texts := [][]byte{encode("ACAC"), encode("CACA")}

	idx, err := fmindex.NewBiFMIndex(texts, sigma, 2, 1, true)
	require.NoError(t, err)

	scheme, partition := exactScheme(3)
	engine := search.NewEngine[cursor.BiCursor](sigma, search.Hamming)

	var got []hit

	engine.Search(cursor.NewBiCursor(idx), encodeQuery("CAC"), partition, scheme, func(cur cursor.BiCursor, errs int) bool {
		got = append(got, locateBi(cur)...)
		return false
	})

	require.ElementsMatch(t, []hit{{0, 1}, {1, 0}}, got)
}

func TestHammingOneSearch(t *testing.T) {
	texts := [][]byte{encode("AGATCA")}

	idx, err := fmindex.NewBiFMIndex(texts, sigma, 2, 1, true)
	require.NoError(t, err)

	s, partition, err := scheme.Generate(0, 1, 1, 3)
	require.NoError(t, err)

	engine := search.NewEngine[cursor.BiCursor](sigma, search.Hamming)

	type found struct {
		hit
		errs int
	}

	var got []found

	engine.Search(cursor.NewBiCursor(idx), encodeQuery("AGG"), partition, s, func(cur cursor.BiCursor, errs int) bool {
		for _, h := range locateBi(cur) {
			got = append(got, found{h, errs})
		}

		return false
	})

	require.Contains(t, got, found{hit{0, 0}, 1})
}

func TestEditOneSearchDeletion(t *testing.T) {
	texts := [][]byte{encode("AGATCA")}

	idx, err := fmindex.NewBiFMIndex(texts, sigma, 2, 1, true)
	require.NoError(t, err)

	s, partition, err := scheme.Generate(0, 1, 1, 5)
	require.NoError(t, err)

	engine := search.NewEngine[cursor.BiCursor](sigma, search.Edit)

	var got []hit

	engine.Search(cursor.NewBiCursor(idx), encodeQuery("AGTCA"), partition, s, func(cur cursor.BiCursor, errs int) bool {
		if errs <= 1 {
			got = append(got, locateBi(cur)...)
		}

		return false
	})

	require.Contains(t, got, hit{0, 0})
}

func TestBidirectionalCursorExtendsBothDirections(t *testing.T) {
	texts := [][]byte{encode("AGATCA")}

	idx, err := fmindex.NewBiFMIndex(texts, sigma, 2, 1, true)
	require.NoError(t, err)

	cur := cursor.NewBiCursor(idx)
	cur = cur.ExtendRight(base['G'])
	cur = cur.ExtendLeft(base['A'])
	cur = cur.ExtendRight(base['A'])

	require.Equal(t, 1, cur.Count())
	require.ElementsMatch(t, []hit{{0, 0}}, locateBi(cur))
}

func TestFirstNTruncation(t *testing.T) {
	texts := [][]byte{encode("AAAA")}

	idx, err := fmindex.NewBiFMIndex(texts, sigma, 2, 1, true)
	require.NoError(t, err)

	scheme, partition := exactScheme(1)
	engine := search.NewEngine[cursor.BiCursor](sigma, search.Hamming)

	reported := 0

	engine.SearchN(cursor.NewBiCursor(idx), encodeQuery("A"), partition, scheme, 2, func(cur cursor.BiCursor, errs int, count int) {
		reported += count
	})

	require.Equal(t, 2, reported)
}
