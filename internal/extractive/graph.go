package extractive

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Graph is the sentence similarity graph of a document. Edge weights are the
// cosine similarity of the sentences' term-count vectors; the diagonal is 0.
type Graph struct {
	weights *mat.SymDense
	n       int
}

// BuildSimilarityGraph takes the normalized terms of each sentence, in
// document order. Sentences without terms, or sharing none with any other
// sentence, end up isolated with all weights 0.
func BuildSimilarityGraph(terms [][]string) *Graph {
	return buildGraph(newTermTable(terms))
}

func buildGraph(table *termTable) *Graph {
	n := table.sentences()
	graph := &Graph{n: n}
	if n == 0 {
		return graph
	}

	graph.weights = mat.NewSymDense(n, nil)

	norms := make([]float64, n)
	for i, row := range table.rows {
		sum := 0.0
		for _, tc := range row {
			sum += float64(tc.count * tc.count)
		}
		norms[i] = math.Sqrt(sum)
	}

	for i := range n {
		for j := i + 1; j < n; j++ {
			similarity := cosineSimilarity(table.rows[i], table.rows[j], norms[i], norms[j])

			if similarity > 0 {
				graph.weights.SetSym(i, j, similarity)
			}
		}
	}

	return graph
}

// cosineSimilarity merges two id-sorted rows.
func cosineSimilarity(a, b []termCount, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0.0
	}

	dot := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].id == b[j].id:
			dot += a[i].count * b[j].count
			i++
			j++
		case a[i].id < b[j].id:
			i++
		default:
			j++
		}
	}

	return float64(dot) / (normA * normB)
}

func (g *Graph) Len() int {
	return g.n
}

func (g *Graph) Weight(i, j int) float64 {
	if i == j {
		return 0
	}
	return g.weights.At(i, j)
}

// Degree is the sum of the weights of the edges touching node i.
func (g *Graph) Degree(i int) float64 {
	sum := 0.0
	for j := range g.n {
		sum += g.Weight(i, j)
	}
	return sum
}
