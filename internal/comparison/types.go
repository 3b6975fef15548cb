package comparison

import (
	"context"
	"time"

	"github.com/wgomg/digest/internal/abstractive"
	"github.com/wgomg/digest/internal/extractive"
	"github.com/wgomg/digest/internal/rouge"
	"github.com/wgomg/digest/internal/textproc"
)

type Kind string

const (
	Extractive  Kind = "extractive"
	Abstractive Kind = "abstractive"
)

// AbstractiveSummarizer generates new text from a document.
type AbstractiveSummarizer interface {
	Summarize(ctx context.Context, model abstractive.Model, text string, opts abstractive.Options) (string, error)
}

type Request struct {
	Text string
	// Reference is an optional human summary the candidates are scored against.
	Reference string
	// Methods defaults to every extractive method when empty.
	Methods     []extractive.Method
	Models      []abstractive.Model
	Sentences   int
	Abstractive abstractive.Options
}

type Candidate struct {
	Name             string        `json:"name"`
	Key              string        `json:"key"`
	Kind             Kind          `json:"kind"`
	Summary          string        `json:"summary"`
	Indices          []int         `json:"indices,omitempty"`
	Words            int           `json:"words"`
	CompressionRatio float64       `json:"compression_ratio"`
	Scores           *rouge.Scores `json:"scores,omitempty"`
	Average          float64       `json:"average,omitempty"`
	Warnings         []string      `json:"warnings,omitempty"`
	Error            string        `json:"error,omitempty"`
	Duration         time.Duration `json:"duration_ns"`
}

func (c Candidate) Failed() bool {
	return c.Error != ""
}

type Winner struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

type Report struct {
	Source     textproc.Stats `json:"source"`
	Sentences  int            `json:"sentences"`
	Candidates []Candidate    `json:"candidates"`
	// Winner is set only when a reference was given.
	Winner *Winner `json:"winner,omitempty"`
}
