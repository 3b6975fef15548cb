package textproc

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var wordPattern = regexp.MustCompile(`\p{L}+(?:['’-]\p{L}+)*`)

// Analyzer turns text into normalized index terms: case-folded, stripped of
// diacritics, without stopwords or single letters, and Snowball-stemmed.
// It holds no mutable state.
type Analyzer struct {
	minLength int
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{minLength: 2}
}

// Terms returns the index terms of text in the order they occur.
func (a *Analyzer) Terms(text string) []string {
	folded := Fold(text)

	var terms []string
	for _, word := range wordPattern.FindAllString(folded, -1) {
		if utf8.RuneCountInString(word) < a.minLength || IsStopword(word) {
			continue
		}

		stem := english.Stem(word, false)
		if stem == "" {
			continue
		}
		terms = append(terms, stem)
	}

	return terms
}

// Fold lower-cases text and removes combining marks, so "Café" and "cafe"
// produce the same term.
func Fold(text string) string {
	// transformers keep internal state; build a fresh chain per call
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)

	stripped, _, err := transform.String(t, text)
	if err != nil {
		stripped = text
	}

	return cases.Fold().String(stripped)
}
