package api

type SummarizeRequest struct {
	Text string `json:"text"`
	// Sample names a built-in article used when Text is empty.
	Sample string `json:"sample,omitempty"`
	// Method defaults to graph-degree when empty.
	Method    string `json:"method,omitempty"`
	Sentences int    `json:"sentences"`
}

type SummarizeResponse struct {
	Method         string   `json:"method"`
	Name           string   `json:"name"`
	Summary        string   `json:"summary"`
	Indices        []int    `json:"indices"`
	TotalSentences int      `json:"total_sentences"`
	Warnings       []string `json:"warnings,omitempty"`
}

type CompareRequest struct {
	Text        string   `json:"text"`
	Sample      string   `json:"sample,omitempty"`
	Reference   string   `json:"reference,omitempty"`
	Methods     []string `json:"methods,omitempty"`
	Abstractive []string `json:"abstractive,omitempty"`
	Sentences   int      `json:"sentences"`
	MaxLength   int      `json:"max_length,omitempty"`
	MinLength   int      `json:"min_length,omitempty"`
}

type MethodInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	// Available is false for abstractive models when no endpoint is configured.
	Available bool `json:"available"`
}

type SampleInfo struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Words int    `json:"words"`
}
