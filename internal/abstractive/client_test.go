package abstractive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/digest/internal/config"
	"github.com/wgomg/digest/internal/utils"
)

func testConfig(url string, retries int) *config.Config {
	return &config.Config{
		App: config.AppConfig{HttpTimeoutSeconds: 5},
		Abstractive: config.AbstractiveConfig{
			URL:        url,
			Token:      "secret",
			BartModel:  "facebook/bart-large-cnn",
			T5Model:    "t5-small",
			MaxLength:  150,
			MinLength:  50,
			RetryCount: retries,
		},
	}
}

func newTestClient(t *testing.T, url string, retries int) *Client {
	t.Helper()
	client, err := NewClient(testConfig(url, retries), utils.NewDiscardLogger())
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNewClient(t *testing.T) {
	t.Run("Should require an endpoint and token", func(t *testing.T) {
		cfg := testConfig("http://localhost", 0)
		cfg.Abstractive.Token = ""

		_, err := NewClient(cfg, utils.NewDiscardLogger())
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestClient_Summarize(t *testing.T) {
	t.Run("Should post the model request and return the summary", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody SummarizeRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			writeJSON(w, http.StatusOK, []SummaryResult{{SummaryText: " Rates were held. "}})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 0)
		got, err := client.Summarize(context.Background(), Bart, "The Fed held rates steady.", DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, "Rates were held.", got)
		assert.Equal(t, "/facebook/bart-large-cnn", gotPath)
		assert.Equal(t, "Bearer secret", gotAuth)
		assert.Equal(t, "The Fed held rates steady.", gotBody.Inputs)
		assert.Equal(t, GenerationParams{MaxLength: 150, MinLength: 50, DoSample: false}, gotBody.Parameters)
	})

	t.Run("Should prefix and truncate input for t5", func(t *testing.T) {
		var gotBody SummarizeRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			writeJSON(w, http.StatusOK, []SummaryResult{{SummaryText: "ok"}})
		}))
		defer server.Close()

		long := strings.Repeat("word ", 600)
		client := newTestClient(t, server.URL, 0)
		_, err := client.Summarize(context.Background(), T5, long, DefaultOptions())

		require.NoError(t, err)
		require.True(t, strings.HasPrefix(gotBody.Inputs, "summarize: "))
		assert.Equal(t, 512, len(strings.Fields(strings.TrimPrefix(gotBody.Inputs, "summarize: "))))
	})

	t.Run("Should surface API errors with the model message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "input too long"})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 0)
		_, err := client.Summarize(context.Background(), Bart, "text", DefaultOptions())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "input too long", apiErr.Message)
	})

	t.Run("Should retry on server errors", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "model loading"})
				return
			}
			writeJSON(w, http.StatusOK, []SummaryResult{{SummaryText: "done"}})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 2)
		got, err := client.Summarize(context.Background(), Bart, "text", DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, "done", got)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("Should fail on an empty generation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []SummaryResult{})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 0)
		_, err := client.Summarize(context.Background(), Bart, "text", DefaultOptions())
		assert.ErrorIs(t, err, ErrEmptySummary)
	})

	t.Run("Should validate before calling the model", func(t *testing.T) {
		client := newTestClient(t, "http://127.0.0.1:1", 0)

		_, err := client.Summarize(context.Background(), Model("pegasus"), "text", DefaultOptions())
		var unsupported *UnsupportedModelError
		assert.ErrorAs(t, err, &unsupported)

		_, err = client.Summarize(context.Background(), Bart, "text", Options{MaxLength: 10, MinLength: 20})
		assert.ErrorIs(t, err, ErrInvalidLength)

		_, err = client.Summarize(context.Background(), Bart, "  ", DefaultOptions())
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}

func TestParseModel(t *testing.T) {
	got, err := ParseModel(" BART ")
	require.NoError(t, err)
	assert.Equal(t, Bart, got)

	_, err = ParseModel("gpt")
	var unsupported *UnsupportedModelError
	assert.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), "bart, t5")
}
