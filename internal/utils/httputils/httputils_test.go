package httputils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/digest/internal/utils"
)

func TestDecodeJSON(t *testing.T) {
	t.Run("Should accept a JSON body with a charset", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hi"}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var v struct{ Text string }
		require.NoError(t, DecodeJSON(r, &v))
		assert.Equal(t, "hi", v.Text)
	})

	t.Run("Should reject other content types", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "text/plain")

		var httpErr *HTTPError
		require.ErrorAs(t, DecodeJSON(r, &struct{}{}), &httpErr)
		assert.Equal(t, http.StatusUnsupportedMediaType, httpErr.Code)
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":`))
		r.Header.Set("Content-Type", "application/json")

		var httpErr *HTTPError
		require.ErrorAs(t, DecodeJSON(r, &struct{}{}), &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestReadBody(t *testing.T) {
	t.Run("Should reject bodies over the limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 20)))

		_, err := ReadBody(w, r, utils.NewDiscardLogger(), 10)

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.Code)
	})

	t.Run("Should leave the body readable", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
		r.Header.Set("Content-Type", "application/json")

		body, err := ReadBody(w, r, utils.NewDiscardLogger(), 1024)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(body))

		var v map[string]int
		require.NoError(t, DecodeJSON(r, &v))
		assert.Equal(t, 1, v["a"])
	})
}

func TestHandleError(t *testing.T) {
	t.Run("Should use the status of wrapped HTTP errors", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleError(w, errors.Join(errors.New("context"), &HTTPError{Code: http.StatusTeapot, Message: "short and stout"}))

		assert.Equal(t, http.StatusTeapot, w.Code)
		var body Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "short and stout", body.Error)
	})

	t.Run("Should hide other errors behind a 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleError(w, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestSuccessResponse(t *testing.T) {
	t.Run("Should carry the request id of the response", func(t *testing.T) {
		w := httptest.NewRecorder()
		w.Header().Set(RequestIDHeader, "req-7")

		require.NoError(t, SuccessResponse(w, "done", map[string]int{"n": 2}))

		var body struct {
			Status    string         `json:"status"`
			Message   string         `json:"message"`
			Data      map[string]int `json:"data"`
			RequestID string         `json:"request_id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "success", body.Status)
		assert.Equal(t, "done", body.Message)
		assert.Equal(t, 2, body.Data["n"])
		assert.Equal(t, "req-7", body.RequestID)
	})

	t.Run("Should omit data and request id when absent", func(t *testing.T) {
		w := httptest.NewRecorder()

		require.NoError(t, SuccessResponse(w, "ok", nil))
		assert.JSONEq(t, `{"status":"success","message":"ok"}`, w.Body.String())
	})
}
