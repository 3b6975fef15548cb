// Package rouge scores candidate summaries against a reference summary with
// ROUGE-1, ROUGE-2 and ROUGE-L.
package rouge

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

var separator = regexp.MustCompile(`[^a-z0-9]+`)

// Measure is one ROUGE variant.
type Measure struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

type Scores struct {
	Rouge1 Measure `json:"rouge1"`
	Rouge2 Measure `json:"rouge2"`
	RougeL Measure `json:"rougeL"`
}

// Average is the mean F1 of the three variants.
func (s Scores) Average() float64 {
	return (s.Rouge1.F1 + s.Rouge2.F1 + s.RougeL.F1) / 3
}

// Score compares candidate against reference. Precision is relative to the
// candidate and recall to the reference.
func Score(reference, candidate string) Scores {
	ref := tokenize(reference)
	cand := tokenize(candidate)

	return Scores{
		Rouge1: ngramMeasure(ref, cand, 1),
		Rouge2: ngramMeasure(ref, cand, 2),
		RougeL: lcsMeasure(ref, cand),
	}
}

// tokenize lower-cases text, splits on anything but ASCII letters and digits
// and stems tokens longer than three characters.
func tokenize(text string) []string {
	var tokens []string
	for _, tok := range separator.Split(strings.ToLower(text), -1) {
		if tok == "" {
			continue
		}
		if len(tok) > 3 {
			tok = english.Stem(tok, true)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func ngrams(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}

func ngramMeasure(ref, cand []string, n int) Measure {
	refGrams := ngrams(ref, n)
	candGrams := ngrams(cand, n)

	refTotal, candTotal := 0, 0
	for _, c := range refGrams {
		refTotal += c
	}
	for _, c := range candGrams {
		candTotal += c
	}

	overlap := 0
	for gram, c := range candGrams {
		overlap += min(c, refGrams[gram])
	}

	return measure(overlap, candTotal, refTotal)
}

func lcsMeasure(ref, cand []string) Measure {
	return measure(lcsLength(ref, cand), len(cand), len(ref))
}

// lcsLength keeps two rows of the dynamic programming table.
func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func measure(overlap, candTotal, refTotal int) Measure {
	var m Measure
	if candTotal > 0 {
		m.Precision = float64(overlap) / float64(candTotal)
	}
	if refTotal > 0 {
		m.Recall = float64(overlap) / float64(refTotal)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}
