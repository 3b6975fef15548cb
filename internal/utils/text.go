package utils

import (
	"math"
	"strings"
	"unicode/utf8"
)

func CountWords(text string) int {
	words := strings.Fields(text)
	wordCount := len(words)

	return wordCount
}

func EstimateTokensFromWords(wordCount int) int {
	return int(math.Round(float64(wordCount) * 1.3))
}

// TruncateWords keeps the first maxWords whitespace-separated words of text.
// The second result reports whether anything was cut.
func TruncateWords(text string, maxWords int) (string, bool) {
	words := strings.Fields(text)
	if maxWords <= 0 || len(words) <= maxWords {
		return text, false
	}

	return strings.Join(words[:maxWords], " "), true
}

// Preview shortens s to at most maxRunes runes, appending "..." when cut.
func Preview(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	runes := []rune(s)
	return strings.TrimSpace(string(runes[:maxRunes])) + "..."
}
