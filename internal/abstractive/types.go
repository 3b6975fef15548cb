package abstractive

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotConfigured = errors.New("ABSTRACTIVE_URL and ABSTRACTIVE_TOKEN are required")
	ErrEmptyInput    = errors.New("input text is empty")
	ErrEmptySummary  = errors.New("empty response from model")
	ErrInvalidLength = errors.New("min length must be positive and not exceed max length")
)

type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

type UnsupportedModelError struct {
	Name string
}

func (e *UnsupportedModelError) Error() string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = string(m)
	}
	return fmt.Sprintf("model %q not supported, choose from: %s", e.Name, strings.Join(names, ", "))
}

type Model string

const (
	Bart Model = "bart"
	T5   Model = "t5"
)

var models = []Model{Bart, T5}

func Models() []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}

func ParseModel(name string) (Model, error) {
	key := Model(strings.ToLower(strings.TrimSpace(name)))
	switch key {
	case Bart, T5:
		return key, nil
	}
	return "", &UnsupportedModelError{Name: name}
}

func (m Model) DisplayName() string {
	switch m {
	case Bart:
		return "BART"
	case T5:
		return "T5"
	}
	return string(m)
}

// inputWords is the number of words the model accepts; longer input is cut.
func (m Model) inputWords() int {
	if m == T5 {
		return 512
	}
	return 1024
}

// prompt adapts text to what the model expects as input.
func (m Model) prompt(text string) string {
	if m == T5 {
		return "summarize: " + text
	}
	return text
}

// Options bound the generated summary length, in model tokens.
type Options struct {
	MaxLength int
	MinLength int
}

func DefaultOptions() Options {
	return Options{MaxLength: 150, MinLength: 50}
}

func (o Options) Validate() error {
	if o.MaxLength < 1 || o.MinLength < 0 || o.MinLength > o.MaxLength {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidLength, o.MinLength, o.MaxLength)
	}
	return nil
}

type SummarizeRequest struct {
	Inputs     string           `json:"inputs"`
	Parameters GenerationParams `json:"parameters"`
}

type GenerationParams struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type SummaryResult struct {
	SummaryText string `json:"summary_text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
