package extractive

import "math"

// rankTermWeight scores each sentence as the sum of its L2-normalized
// tf-idf weights. Sentences are the documents of the idf statistic:
// idf = ln((1+n)/(1+df)) + 1.
func rankTermWeight(table *termTable) Ranking {
	n := table.sentences()

	idf := make([]float64, table.terms())
	for id, df := range table.df {
		idf[id] = math.Log(float64(1+n)/float64(1+df)) + 1
	}

	scores := make(Ranking, n)
	for i, row := range table.rows {
		weights := make([]float64, len(row))
		norm := 0.0
		for t, tc := range row {
			weights[t] = float64(tc.count) * idf[tc.id]
			norm += weights[t] * weights[t]
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)

		sum := 0.0
		for _, w := range weights {
			sum += w / norm
		}
		scores[i] = sum
	}

	return scores
}
