package extractive

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// degreeSmoothingSteps is the number of weighted PageRank steps applied on
// top of the degree scores. Run to convergence the walk would reach the
// eigenvector ranking, so the step count stays fixed and small.
const degreeSmoothingSteps = 1

// scoreEpsilon is the distance under which two scores count as equal. Equal
// scores go to the earlier sentence.
const scoreEpsilon = 1e-12

// RankOptions are the random-walk constants. Damping applies to both graph
// variants; the iteration cap and tolerance bound the eigenvector iteration.
type RankOptions struct {
	Damping       float64
	MaxIterations int
	Tolerance     float64
}

func DefaultRankOptions() RankOptions {
	return RankOptions{
		Damping:       0.85,
		MaxIterations: 100,
		Tolerance:     0.0001,
	}
}

// Ranking holds one importance score per sentence index.
type Ranking []float64

// Top returns the indices of the k best scores in ascending document order.
func (r Ranking) Top(k int) []int {
	return selectTop(r, k, nil)
}

// selectTop picks up to k indices by descending score, skipping those already
// in exclude, and returns picks and exclusions together in ascending order.
// Each pick scans in index order and only a strictly larger score (beyond
// scoreEpsilon) displaces the current best, so ties go to the lower index.
func selectTop(scores []float64, k int, exclude []int) []int {
	taken := make([]bool, len(scores))
	for _, idx := range exclude {
		taken[idx] = true
	}

	selected := slices.Clone(exclude)
	for len(selected) < k && len(selected) < len(scores) {
		best := -1
		for i, score := range scores {
			if taken[i] {
				continue
			}
			if best == -1 || score > scores[best]+scoreEpsilon {
				best = i
			}
		}
		taken[best] = true
		selected = append(selected, best)
	}

	slices.Sort(selected)
	return selected
}

// RankDegree scores each sentence by its weighted degree, then applies
// degreeSmoothingSteps weighted PageRank steps. One step maps a normalized
// degree deg/W to (1-d)/N + d*deg/W, so the degree order is kept and isolated
// sentences end at the teleport floor (1-d)/N. A graph without edges ranks
// every sentence 0.
func RankDegree(graph *Graph, opts RankOptions) Ranking {
	n := graph.Len()
	scores := make([]float64, n)

	total := 0.0
	for i := range n {
		scores[i] = graph.Degree(i)
		total += scores[i]
	}
	if total == 0 {
		return make(Ranking, n)
	}

	for i := range scores {
		scores[i] /= total
	}

	return weightedPageRank(graph, scores, opts.Damping, degreeSmoothingSteps, 0)
}

func weightedPageRank(
	graph *Graph,
	scores []float64,
	damping float64,
	maxIterations int,
	tolerance float64,
) []float64 {
	N := graph.Len()

	// precompute outgoing weight sums for each node
	outgoingSums := make([]float64, N)
	for i := range N {
		outgoingSums[i] = graph.Degree(i)
	}

	randomComponent := (1.0 - damping) / float64(N)

	for range maxIterations {
		newScores := make([]float64, N)
		totalChange := 0.0

		for i := range N {
			linkComponent := 0.0

			for j := range N {
				if i == j {
					continue
				}

				weight := graph.Weight(j, i)
				if weight > 0 && outgoingSums[j] > 0 {
					linkComponent += scores[j] * (weight / outgoingSums[j])
				}
			}

			newScores[i] = randomComponent + (damping * linkComponent)
			totalChange += math.Abs(newScores[i] - scores[i])
		}

		scores = newScores

		if totalChange < tolerance {
			break
		}
	}

	return scores
}

// RankEigenvector returns the stationary distribution of a random walk over
// the graph. Transition i->j is proportional to weight(i,j); a row without
// edges becomes uniform. With probability 1-d the walk teleports to a uniform
// random node. The distribution is found by power iteration.
func RankEigenvector(graph *Graph, opts RankOptions) Ranking {
	n := graph.Len()
	if n == 0 {
		return Ranking{}
	}

	uniform := 1.0 / float64(n)
	teleport := (1.0 - opts.Damping) * uniform

	google := mat.NewDense(n, n, nil)
	for i := range n {
		degree := graph.Degree(i)
		for j := range n {
			transition := uniform
			if degree > 0 {
				transition = graph.Weight(i, j) / degree
			}
			google.Set(i, j, opts.Damping*transition+teleport)
		}
	}

	p := mat.NewVecDense(n, nil)
	for i := range n {
		p.SetVec(i, uniform)
	}

	next := mat.NewVecDense(n, nil)
	for range opts.MaxIterations {
		next.MulVec(google.T(), p)

		change := 0.0
		for i := range n {
			change += math.Abs(next.AtVec(i) - p.AtVec(i))
		}

		p.CopyVec(next)

		if change < opts.Tolerance {
			break
		}
	}

	ranking := make(Ranking, n)
	for i := range n {
		ranking[i] = p.AtVec(i)
	}
	return ranking
}
