package extractive

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput           = errors.New("input contains no sentence")
	ErrInvalidSentenceCount = errors.New("sentence count must be at least 1")
)

type UnsupportedMethodError struct {
	Name string
}

func (e *UnsupportedMethodError) Error() string {
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, string(m))
	}
	return fmt.Sprintf("method %q not supported, choose from: %s", e.Name, strings.Join(names, ", "))
}

// DegenerateDecompositionWarning is attached to a latent-semantic Summary when
// the term matrix has fewer independent components than requested sentences.
// The missing picks are filled by salience, so it never fails a call.
type DegenerateDecompositionWarning struct {
	Requested  int
	Components int
}

func (w *DegenerateDecompositionWarning) Error() string {
	return fmt.Sprintf("decomposition yielded %d independent components for %d requested sentences, filled the rest by salience",
		w.Components, w.Requested)
}
