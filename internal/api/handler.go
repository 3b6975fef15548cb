package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wgomg/digest/internal/abstractive"
	"github.com/wgomg/digest/internal/comparison"
	"github.com/wgomg/digest/internal/config"
	"github.com/wgomg/digest/internal/extractive"
	"github.com/wgomg/digest/internal/source"
	"github.com/wgomg/digest/internal/utils"
	"github.com/wgomg/digest/internal/utils/httputils"
)

// defaultMethod summarizes requests that name no method.
const defaultMethod = extractive.GraphDegree

type Handler struct {
	logger             *utils.Logger
	engine             *extractive.Engine
	runner             *comparison.Runner
	samples            source.Samples
	metrics            *Metrics
	cfg                *config.Config
	abstractiveEnabled bool
}

func NewHandler(
	logger *utils.Logger,
	engine *extractive.Engine,
	runner *comparison.Runner,
	samples source.Samples,
	metrics *Metrics,
	cfg *config.Config,
) *Handler {
	return &Handler{
		logger:             logger,
		engine:             engine,
		runner:             runner,
		samples:            samples,
		metrics:            metrics,
		cfg:                cfg,
		abstractiveEnabled: cfg.AbstractiveEnabled(),
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := utils.RequestID(r.Context())

	if err := httputils.SuccessResponse(w, "Summarization service is running", nil); err != nil {
		h.logger.Error(reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleMethods(w http.ResponseWriter, r *http.Request) {
	reqID := utils.RequestID(r.Context())

	var methods []MethodInfo
	for _, m := range extractive.Methods() {
		methods = append(methods, MethodInfo{
			Key:       string(m),
			Name:      m.DisplayName(),
			Kind:      string(comparison.Extractive),
			Available: true,
		})
	}
	for _, m := range abstractive.Models() {
		methods = append(methods, MethodInfo{
			Key:       string(m),
			Name:      m.DisplayName(),
			Kind:      string(comparison.Abstractive),
			Available: h.abstractiveEnabled,
		})
	}

	if err := httputils.SuccessResponse(w, "Available methods", methods); err != nil {
		h.logger.Error(reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleSamples(w http.ResponseWriter, r *http.Request) {
	reqID := utils.RequestID(r.Context())

	infos := make([]SampleInfo, len(h.samples))
	for i, s := range h.samples {
		infos[i] = SampleInfo{Name: s.Name, Slug: s.Slug(), Words: utils.CountWords(s.Text)}
	}

	if err := httputils.SuccessResponse(w, "Sample articles", infos); err != nil {
		h.logger.Error(reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleSample(w http.ResponseWriter, r *http.Request) {
	reqID := utils.RequestID(r.Context())

	sample, err := h.samples.Find(r.PathValue("name"))
	if err != nil {
		h.logger.Warn(reqID, "Sample lookup failed: %v", err)
		httputils.HandleError(w, toHTTPError(err))
		return
	}

	if err := httputils.SuccessResponse(w, "Sample article", sample); err != nil {
		h.logger.Error(reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	reqID := utils.RequestID(r.Context())

	var payload SummarizeRequest
	if err := h.decode(w, r, &payload); err != nil {
		h.logger.Error(reqID, "Request decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	text, err := h.resolveText(payload.Text, payload.Sample)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	method := defaultMethod
	if strings.TrimSpace(payload.Method) != "" {
		if method, err = extractive.ParseMethod(payload.Method); err != nil {
			h.fail(w, reqID, err)
			return
		}
	}

	sentences, err := h.sentenceCount(payload.Sentences)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	h.logger.Debug(reqID, "Summarizing with %s: k=%d, preview=%q", method.DisplayName(), sentences, utils.Preview(text, 80))

	start := time.Now()
	doc, err := h.engine.Segment(text)
	var summary *extractive.Summary
	if err == nil {
		summary, err = h.engine.Extract(doc, method, sentences)
	}
	h.metrics.observeSummary(string(method), err, time.Since(start))
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	response := SummarizeResponse{
		Method:         string(method),
		Name:           method.DisplayName(),
		Summary:        summary.Text,
		Indices:        summary.Indices,
		TotalSentences: doc.Len(),
	}
	for _, warning := range summary.Warnings {
		h.logger.Warn(reqID, "%s: %v", method.DisplayName(), warning)
		response.Warnings = append(response.Warnings, warning.Error())
	}

	if err := httputils.SuccessResponse(w, "Summary generated", response); err != nil {
		h.logger.Error(reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := utils.RequestID(ctx)

	var payload CompareRequest
	if err := h.decode(w, r, &payload); err != nil {
		h.logger.Error(reqID, "Request decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	text, err := h.resolveText(payload.Text, payload.Sample)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	req := comparison.Request{
		Text:      text,
		Reference: payload.Reference,
		Abstractive: abstractive.Options{
			MaxLength: orDefault(payload.MaxLength, h.cfg.Abstractive.MaxLength),
			MinLength: orDefault(payload.MinLength, h.cfg.Abstractive.MinLength),
		},
	}

	if req.Sentences, err = h.sentenceCount(payload.Sentences); err != nil {
		h.fail(w, reqID, err)
		return
	}

	for _, name := range payload.Methods {
		method, err := extractive.ParseMethod(name)
		if err != nil {
			h.fail(w, reqID, err)
			return
		}
		req.Methods = append(req.Methods, method)
	}

	for _, name := range payload.Abstractive {
		model, err := abstractive.ParseModel(name)
		if err != nil {
			h.fail(w, reqID, err)
			return
		}
		req.Models = append(req.Models, model)
	}

	report, err := h.runner.Run(ctx, req)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}
	h.metrics.observeReport(report)

	if err := httputils.SuccessResponse(w, "Comparison completed", report); err != nil {
		h.logger.Error(reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	// leave room for the JSON envelope around the text
	limit := int64(h.cfg.Summary.MaxInputBytes) + 64<<10
	if _, err := httputils.ReadBody(w, r, h.logger, limit); err != nil {
		return err
	}
	return httputils.DecodeJSON(r, v)
}

// resolveText returns the request text, or the named sample when no text was
// sent.
func (h *Handler) resolveText(text, sample string) (string, error) {
	if strings.TrimSpace(text) != "" || sample == "" {
		if len(text) > h.cfg.Summary.MaxInputBytes {
			return "", &httputils.HTTPError{
				Code:    http.StatusRequestEntityTooLarge,
				Message: fmt.Sprintf("text exceeds %d bytes", h.cfg.Summary.MaxInputBytes),
			}
		}
		return text, nil
	}

	s, err := h.samples.Find(sample)
	if err != nil {
		return "", err
	}
	return s.Text, nil
}

func (h *Handler) sentenceCount(requested int) (int, error) {
	if requested == 0 {
		return h.cfg.Summary.DefaultSentences, nil
	}
	if requested < 1 {
		return 0, extractive.ErrInvalidSentenceCount
	}
	if requested > h.cfg.Summary.MaxSentences {
		return 0, &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("sentences must not exceed %d", h.cfg.Summary.MaxSentences),
		}
	}
	return requested, nil
}

func (h *Handler) fail(w http.ResponseWriter, reqID *string, err error) {
	mapped := toHTTPError(err)
	if _, ok := mapped.(*httputils.HTTPError); ok {
		h.logger.Warn(reqID, "Request rejected: %v", err)
	} else {
		h.logger.Error(reqID, "Request failed: %v", err)
	}
	httputils.HandleError(w, mapped)
}

func orDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
