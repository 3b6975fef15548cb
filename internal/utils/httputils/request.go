package httputils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/wgomg/digest/internal/utils"
)

func DecodeJSON(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return &HTTPError{
			Code:    http.StatusUnsupportedMediaType,
			Message: "Content-Type must be application/json",
		}
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid JSON payload: " + err.Error(),
		}
	}
	return nil
}

// ReadBody reads at most maxBytes of the request body and puts the bytes back
// so the body can be decoded afterwards. The body is logged when raw body
// logging is on.
func ReadBody(w http.ResponseWriter, r *http.Request, logger *utils.Logger, maxBytes int64) ([]byte, error) {
	bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &HTTPError{
				Code:    http.StatusRequestEntityTooLarge,
				Message: "Request body too large",
			}
		}
		return nil, err
	}

	r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	if logger.RawBodyLog {
		logger.Debug(utils.RequestID(r.Context()), "Raw request body: %s", string(bodyBytes))
	}

	return bodyBytes, nil
}
