package textproc

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/wgomg/digest/internal/utils"
)

var statWordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type Stats struct {
	Words             int         `json:"words"`
	Sentences         int         `json:"sentences"`
	AvgSentenceLength float64     `json:"avg_sentence_length"`
	TopWords          []WordCount `json:"top_words"`
}

const topWordsLimit = 10

// Analyze computes word and sentence counts of text plus its most frequent
// non-stopwords. Words with equal counts keep their first-seen order.
func Analyze(seg *Segmenter, text string) Stats {
	stats := Stats{
		Words:     utils.CountWords(text),
		Sentences: len(seg.Split(text)),
	}

	if stats.Sentences > 0 {
		stats.AvgSentenceLength = float64(stats.Words) / float64(stats.Sentences)
	}

	stats.TopWords = topWords(text, topWordsLimit)

	return stats
}

func topWords(text string, limit int) []WordCount {
	counts := make(map[string]int)
	var order []string

	for _, word := range statWordPattern.FindAllString(strings.ToLower(text), -1) {
		if IsStopword(word) {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	words := make([]WordCount, 0, len(order))
	for _, word := range order {
		words = append(words, WordCount{Word: word, Count: counts[word]})
	}

	slices.SortStableFunc(words, func(a, b WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if len(words) > limit {
		words = words[:limit]
	}

	return words
}

// CompressionRatio is the summary length in words over the original length in
// words. An empty original yields 0.
func CompressionRatio(original, summary string) float64 {
	originalWords := utils.CountWords(original)
	if originalWords == 0 {
		return 0
	}

	return float64(utils.CountWords(summary)) / float64(originalWords)
}
