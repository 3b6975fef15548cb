package extractive

import (
	"cmp"
	"slices"
)

type termCount struct {
	id    int
	count int
}

// termTable is the sparse sentence x term count matrix of one document.
// Term ids follow first-seen order and every row is sorted by id, so any sum
// over a row runs in the same order on every call.
type termTable struct {
	vocab []string
	rows  [][]termCount
	// df counts the sentences each term occurs in.
	df []int
}

func newTermTable(terms [][]string) *termTable {
	table := &termTable{rows: make([][]termCount, len(terms))}
	ids := make(map[string]int)

	for i, sentenceTerms := range terms {
		counts := make(map[int]int)
		for _, term := range sentenceTerms {
			id, ok := ids[term]
			if !ok {
				id = len(table.vocab)
				ids[term] = id
				table.vocab = append(table.vocab, term)
				table.df = append(table.df, 0)
			}
			counts[id]++
		}

		row := make([]termCount, 0, len(counts))
		for id, count := range counts {
			row = append(row, termCount{id: id, count: count})
			table.df[id]++
		}
		slices.SortFunc(row, func(a, b termCount) int {
			return cmp.Compare(a.id, b.id)
		})

		table.rows[i] = row
	}

	return table
}

func (t *termTable) sentences() int {
	return len(t.rows)
}

func (t *termTable) terms() int {
	return len(t.vocab)
}
