package extractive

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// singularCutoff is the fraction of the largest singular value below which a
// component is treated as numerically dependent.
const singularCutoff = 1e-10

// rankLatentSemantic selects k sentences from a term x sentence matrix
// decomposition. Component c, taken by descending singular value, contributes
// the unselected sentence with the largest |V[j,c]|. When the matrix has fewer
// than k independent components the rest is filled by salience and a
// DegenerateDecompositionWarning is returned next to the selection.
func rankLatentSemantic(table *termTable, k int) ([]int, *DegenerateDecompositionWarning) {
	n := table.sentences()
	sigma, v := decompose(table)

	components := 0
	if len(sigma) > 0 {
		for _, s := range sigma {
			if s > singularCutoff*sigma[0] {
				components++
			}
		}
	}

	taken := make([]bool, n)
	var selected []int
	for c := 0; c < components && len(selected) < k; c++ {
		best := -1
		for j := range n {
			if taken[j] {
				continue
			}
			if best == -1 || math.Abs(v.At(j, c)) > math.Abs(v.At(best, c))+scoreEpsilon {
				best = j
			}
		}
		taken[best] = true
		selected = append(selected, best)
	}

	if len(selected) >= k || len(selected) == n {
		slices.Sort(selected)
		return selected, nil
	}

	salience := make([]float64, n)
	for j := range n {
		sum := 0.0
		for c := range components {
			weighted := sigma[c] * v.At(j, c)
			sum += weighted * weighted
		}
		salience[j] = math.Sqrt(sum)
	}

	warning := &DegenerateDecompositionWarning{Requested: k, Components: components}
	return selectTop(salience, k, selected), warning
}

// decompose builds the smoothed term-frequency matrix and returns its
// singular values (descending) and right singular vectors, one row per
// sentence. An empty vocabulary or a failed factorization yields no
// components.
func decompose(table *termTable) ([]float64, *mat.Dense) {
	m, n := table.terms(), table.sentences()
	if m == 0 || n == 0 {
		return nil, nil
	}

	a := mat.NewDense(m, n, nil)
	for j, row := range table.rows {
		maxCount := 0
		for _, tc := range row {
			maxCount = max(maxCount, tc.count)
		}
		for _, tc := range row {
			a.Set(tc.id, j, 0.4+0.6*float64(tc.count)/float64(maxCount))
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, nil
	}

	var v mat.Dense
	svd.VTo(&v)

	return svd.Values(nil), &v
}
