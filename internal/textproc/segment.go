package textproc

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Segmenter splits raw text into sentences with the English punkt model.
// The model is loaded once and only read afterwards, so a Segmenter can be
// shared between goroutines.
type Segmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewSegmenter() (*Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence model: %w", err)
	}

	return &Segmenter{tokenizer: tokenizer}, nil
}

// Split returns the sentences of text in source order. Whitespace runs inside a
// sentence collapse to a single space and blank sentences are dropped.
func (s *Segmenter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []string
	for _, sentence := range s.tokenizer.Tokenize(text) {
		cleaned := CollapseSpace(sentence.Text)
		if cleaned == "" {
			continue
		}
		out = append(out, cleaned)
	}

	return out
}

func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
