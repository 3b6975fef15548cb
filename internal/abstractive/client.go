package abstractive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wgomg/digest/internal/config"
	"github.com/wgomg/digest/internal/utils"
)

// Client calls a hosted sequence-to-sequence summarization model. Every call
// is independent; the client holds no per-call state and may be shared.
type Client struct {
	http   *resty.Client
	models map[Model]string
	logger *utils.Logger
}

func NewClient(cfg *config.Config, logger *utils.Logger) (*Client, error) {
	if !cfg.AbstractiveEnabled() {
		return nil, ErrNotConfigured
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Abstractive.URL, "/")).
		SetTimeout(time.Duration(cfg.App.HttpTimeoutSeconds)*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(cfg.Abstractive.Token).
		SetRetryCount(cfg.Abstractive.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryCondition)

	return &Client{
		http: httpClient,
		models: map[Model]string{
			Bart: cfg.Abstractive.BartModel,
			T5:   cfg.Abstractive.T5Model,
		},
		logger: logger,
	}, nil
}

func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
}

// Summarize generates a summary of text with model. Input beyond the model's
// word limit is dropped before the request is sent.
func (c *Client) Summarize(ctx context.Context, model Model, text string, opts Options) (string, error) {
	reqID := utils.RequestID(ctx)

	name, ok := c.models[model]
	if !ok {
		return "", &UnsupportedModelError{Name: string(model)}
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	input, truncated := utils.TruncateWords(text, model.inputWords())
	if truncated {
		c.logger.Debug(reqID, "Input for %s truncated to %d words", model.DisplayName(), model.inputWords())
	}

	reqBody := SummarizeRequest{
		Inputs: model.prompt(input),
		Parameters: GenerationParams{
			MaxLength: opts.MaxLength,
			MinLength: opts.MinLength,
			DoSample:  false,
		},
	}

	c.logger.Debug(reqID, "Sending %s request: model=%s, estimated_tokens=%d",
		model.DisplayName(), name, utils.EstimateTokensFromWords(utils.CountWords(input)))

	var results []SummaryResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&results).
		Post("/" + name)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	if c.logger.RawBodyLog {
		c.logger.Debug(reqID, "Raw response body: %s", resp.String())
	}

	if resp.StatusCode() != http.StatusOK {
		return "", handleAPIError(resp)
	}

	if len(results) == 0 || strings.TrimSpace(results[0].SummaryText) == "" {
		return "", ErrEmptySummary
	}

	return strings.TrimSpace(results[0].SummaryText), nil
}

func handleAPIError(resp *resty.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Message:    http.StatusText(resp.StatusCode()),
		Body:       resp.String(),
	}

	var body ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	}

	return apiErr
}
