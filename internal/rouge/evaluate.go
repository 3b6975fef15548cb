package rouge

type Candidate struct {
	Name string
	Text string
}

type Result struct {
	Name    string  `json:"name"`
	Scores  Scores  `json:"scores"`
	Average float64 `json:"average"`
}

// Evaluate scores every candidate against reference, keeping their order.
func Evaluate(reference string, candidates []Candidate) []Result {
	results := make([]Result, len(candidates))
	for i, c := range candidates {
		scores := Score(reference, c.Text)
		results[i] = Result{Name: c.Name, Scores: scores, Average: scores.Average()}
	}
	return results
}

// Best returns the result with the highest average. Ties go to the earlier
// result. ok is false when results is empty.
func Best(results []Result) (best Result, ok bool) {
	for i, r := range results {
		if i == 0 || r.Average > best.Average {
			best = r
		}
	}
	return best, len(results) > 0
}
