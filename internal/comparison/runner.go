package comparison

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wgomg/digest/internal/abstractive"
	"github.com/wgomg/digest/internal/extractive"
	"github.com/wgomg/digest/internal/rouge"
	"github.com/wgomg/digest/internal/textproc"
	"github.com/wgomg/digest/internal/utils"
)

// Runner produces the candidate summaries of one document side by side.
type Runner struct {
	engine      *extractive.Engine
	abstractive AbstractiveSummarizer
	logger      *utils.Logger
}

// NewRunner builds a Runner. summarizer may be nil, in which case requested
// abstractive models are reported as failed candidates.
func NewRunner(engine *extractive.Engine, summarizer AbstractiveSummarizer, logger *utils.Logger) *Runner {
	return &Runner{
		engine:      engine,
		abstractive: summarizer,
		logger:      logger,
	}
}

// Run segments the text once and runs every requested method concurrently on
// the shared read-only Document. Each job writes only its own candidate slot.
// An extractive failure fails the run; abstractive failures are recorded on
// the candidate.
func (r *Runner) Run(ctx context.Context, req Request) (*Report, error) {
	reqID := utils.RequestID(ctx)

	if req.Sentences < 1 {
		return nil, extractive.ErrInvalidSentenceCount
	}

	methods := req.Methods
	if len(methods) == 0 {
		methods = extractive.Methods()
	}
	for _, m := range methods {
		if !m.Valid() {
			return nil, &extractive.UnsupportedMethodError{Name: string(m)}
		}
	}
	for _, m := range req.Models {
		if _, err := abstractive.ParseModel(string(m)); err != nil {
			return nil, err
		}
	}
	if len(req.Models) > 0 {
		if err := req.Abstractive.Validate(); err != nil {
			return nil, err
		}
	}

	doc, err := r.engine.Segment(req.Text)
	if err != nil {
		return nil, err
	}

	r.logger.Info(reqID, "Comparing %d extractive and %d abstractive summaries over %d sentences",
		len(methods), len(req.Models), doc.Len())

	candidates := make([]Candidate, len(methods)+len(req.Models))

	g, gctx := errgroup.WithContext(ctx)

	for i, method := range methods {
		g.Go(func() error {
			candidate, err := r.runExtractive(doc, method, req.Sentences)
			if err != nil {
				return fmt.Errorf("%s: %w", method.DisplayName(), err)
			}
			candidates[i] = candidate
			return nil
		})
	}

	for i, model := range req.Models {
		slot := len(methods) + i
		g.Go(func() error {
			candidates[slot] = r.runAbstractive(gctx, model, req.Text, req.Abstractive)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Source:     textproc.Analyze(r.engine.Segmenter(), req.Text),
		Sentences:  doc.Len(),
		Candidates: candidates,
	}

	for i := range report.Candidates {
		c := &report.Candidates[i]
		if c.Failed() {
			continue
		}
		c.Words = utils.CountWords(c.Summary)
		c.CompressionRatio = textproc.CompressionRatio(req.Text, c.Summary)
	}

	if strings.TrimSpace(req.Reference) != "" {
		report.Winner = score(report.Candidates, req.Reference)
		if report.Winner != nil {
			r.logger.Info(reqID, "Best method: %s (average ROUGE %.4f)", report.Winner.Name, report.Winner.Average)
		}
	}

	return report, nil
}

func (r *Runner) runExtractive(doc *extractive.Document, method extractive.Method, k int) (Candidate, error) {
	start := time.Now()

	summary, err := r.engine.Extract(doc, method, k)
	if err != nil {
		return Candidate{}, err
	}

	candidate := Candidate{
		Name:     method.DisplayName(),
		Key:      string(method),
		Kind:     Extractive,
		Summary:  summary.Text,
		Indices:  summary.Indices,
		Duration: time.Since(start),
	}
	for _, w := range summary.Warnings {
		candidate.Warnings = append(candidate.Warnings, w.Error())
	}

	return candidate, nil
}

func (r *Runner) runAbstractive(ctx context.Context, model abstractive.Model, text string, opts abstractive.Options) Candidate {
	reqID := utils.RequestID(ctx)
	start := time.Now()

	candidate := Candidate{
		Name: model.DisplayName(),
		Key:  string(model),
		Kind: Abstractive,
	}

	if r.abstractive == nil {
		candidate.Error = abstractive.ErrNotConfigured.Error()
		return candidate
	}

	summary, err := r.abstractive.Summarize(ctx, model, text, opts)
	candidate.Duration = time.Since(start)
	if err != nil {
		r.logger.Warn(reqID, "%s summarization failed: %v", model.DisplayName(), err)
		candidate.Error = err.Error()
		return candidate
	}

	candidate.Summary = summary
	return candidate
}

// score fills in ROUGE scores of the successful candidates and returns the
// best of them, ties going to the earlier candidate.
func score(candidates []Candidate, reference string) *Winner {
	var scored []rouge.Candidate
	var slots []int
	for i, c := range candidates {
		if c.Failed() {
			continue
		}
		scored = append(scored, rouge.Candidate{Name: c.Name, Text: c.Summary})
		slots = append(slots, i)
	}

	results := rouge.Evaluate(reference, scored)
	for i, res := range results {
		scores := res.Scores
		candidates[slots[i]].Scores = &scores
		candidates[slots[i]].Average = res.Average
	}

	best, ok := rouge.Best(results)
	if !ok {
		return nil
	}
	return &Winner{Name: best.Name, Average: best.Average}
}
