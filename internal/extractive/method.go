package extractive

import "strings"

type Method string

const (
	GraphDegree      Method = "graph-degree"
	GraphEigenvector Method = "graph-eigenvector"
	LatentSemantic   Method = "latent-semantic"
	TermWeight       Method = "term-weight"
)

var methods = []Method{GraphDegree, GraphEigenvector, LatentSemantic, TermWeight}

var aliases = map[string]Method{
	"text-rank": GraphDegree,
	"textrank":  GraphDegree,
	"lex-rank":  GraphEigenvector,
	"lexrank":   GraphEigenvector,
	"lsa":       LatentSemantic,
	"tfidf":     TermWeight,
	"tf-idf":    TermWeight,
}

// Methods lists every supported method in display order.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// ParseMethod resolves a method name. Matching ignores case and treats '_'
// like '-', so "text_rank" and "TextRank" both resolve to GraphDegree.
func ParseMethod(name string) (Method, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")

	for _, m := range methods {
		if string(m) == key {
			return m, nil
		}
	}
	if m, ok := aliases[key]; ok {
		return m, nil
	}

	return "", &UnsupportedMethodError{Name: name}
}

func (m Method) Valid() bool {
	switch m {
	case GraphDegree, GraphEigenvector, LatentSemantic, TermWeight:
		return true
	}
	return false
}

// DisplayName is the conventional name of the algorithm behind m.
func (m Method) DisplayName() string {
	switch m {
	case GraphDegree:
		return "TextRank"
	case GraphEigenvector:
		return "LexRank"
	case LatentSemantic:
		return "LSA"
	case TermWeight:
		return "TF-IDF"
	}
	return string(m)
}
