package extractive

import (
	"fmt"

	"github.com/wgomg/digest/internal/textproc"
)

type Options struct {
	Rank RankOptions
}

func DefaultOptions() Options {
	return Options{Rank: DefaultRankOptions()}
}

func (o Options) validate() error {
	if o.Rank.Damping <= 0 || o.Rank.Damping >= 1 {
		return fmt.Errorf("damping must be between 0 and 1 (exclusive), got %v", o.Rank.Damping)
	}
	if o.Rank.MaxIterations < 1 {
		return fmt.Errorf("iteration cap must be at least 1, got %d", o.Rank.MaxIterations)
	}
	if o.Rank.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %v", o.Rank.Tolerance)
	}
	return nil
}

// Engine owns the resources that are expensive to build: the sentence model
// and the term analyzer. Build one per process and share it. Every call
// recomputes its graphs and matrices from the input, nothing is kept between
// calls.
type Engine struct {
	segmenter *textproc.Segmenter
	analyzer  *textproc.Analyzer
	opts      Options
}

func NewEngine(opts Options) (*Engine, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	segmenter, err := textproc.NewSegmenter()
	if err != nil {
		return nil, err
	}

	return &Engine{
		segmenter: segmenter,
		analyzer:  textproc.NewAnalyzer(),
		opts:      opts,
	}, nil
}

func (e *Engine) Segmenter() *textproc.Segmenter {
	return e.segmenter
}

// Segment splits text into a Document. It fails with ErrEmptyInput when no
// sentence remains after trimming.
func (e *Engine) Segment(text string) (*Document, error) {
	parts := e.segmenter.Split(text)
	if len(parts) == 0 {
		return nil, ErrEmptyInput
	}

	doc := &Document{Source: text, Sentences: make([]Sentence, len(parts))}
	for i, part := range parts {
		doc.Sentences[i] = Sentence{Index: i, Text: part}
	}

	return doc, nil
}

// Summarize segments text and extracts k sentences with method.
func (e *Engine) Summarize(text string, method Method, k int) (string, error) {
	if !method.Valid() {
		return "", &UnsupportedMethodError{Name: string(method)}
	}
	if k < 1 {
		return "", ErrInvalidSentenceCount
	}

	doc, err := e.Segment(text)
	if err != nil {
		return "", err
	}

	summary, err := e.Extract(doc, method, k)
	if err != nil {
		return "", err
	}

	return summary.Text, nil
}

// Extract selects min(k, doc.Len()) sentences of doc with method. The
// selection is returned in document order. When doc has no more than k
// sentences every sentence is returned; the term-weight method then returns
// the source text verbatim.
func (e *Engine) Extract(doc *Document, method Method, k int) (*Summary, error) {
	if !method.Valid() {
		return nil, &UnsupportedMethodError{Name: string(method)}
	}
	if k < 1 {
		return nil, ErrInvalidSentenceCount
	}
	if doc == nil || doc.Len() == 0 {
		return nil, ErrEmptyInput
	}

	summary := &Summary{Method: method}

	if doc.Len() <= k {
		summary.Indices = make([]int, doc.Len())
		for i := range summary.Indices {
			summary.Indices[i] = i
		}
		summary.Text = doc.join(summary.Indices)
		if method == TermWeight {
			summary.Text = doc.Source
		}
		return summary, nil
	}

	table := newTermTable(e.sentenceTerms(doc))

	switch method {
	case GraphDegree:
		summary.Indices = RankDegree(buildGraph(table), e.opts.Rank).Top(k)
	case GraphEigenvector:
		summary.Indices = RankEigenvector(buildGraph(table), e.opts.Rank).Top(k)
	case LatentSemantic:
		indices, warning := rankLatentSemantic(table, k)
		summary.Indices = indices
		if warning != nil {
			summary.Warnings = append(summary.Warnings, warning)
		}
	case TermWeight:
		summary.Indices = rankTermWeight(table).Top(k)
	}

	summary.Text = doc.join(summary.Indices)
	return summary, nil
}

func (e *Engine) sentenceTerms(doc *Document) [][]string {
	terms := make([][]string, doc.Len())
	for i, text := range doc.texts() {
		terms[i] = e.analyzer.Terms(text)
	}
	return terms
}
