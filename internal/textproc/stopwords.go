package textproc

import (
	_ "embed"
	"strings"
)

//go:embed stopwords_en.txt
var stopwordList string

var stopwords = loadStopwords(stopwordList)

func loadStopwords(list string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(list, "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}

// IsStopword expects a lower-cased word. Typographic apostrophes are accepted.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ReplaceAll(word, "’", "'")]
	return ok
}
