package extractive

import "strings"

type Sentence struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Document is the segmented form of one input text. It is never modified
// after Segment returns, so several methods may read it concurrently.
type Document struct {
	Source    string
	Sentences []Sentence
}

func (d *Document) Len() int {
	return len(d.Sentences)
}

func (d *Document) join(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = d.Sentences[idx].Text
	}
	return strings.Join(parts, " ")
}

func (d *Document) texts() []string {
	out := make([]string, len(d.Sentences))
	for i, s := range d.Sentences {
		out[i] = s.Text
	}
	return out
}

type Summary struct {
	Method Method
	// Indices of the selected sentences in ascending document order.
	Indices  []int
	Text     string
	Warnings []error
}
