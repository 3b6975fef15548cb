package httputils

import (
	"encoding/json"
	"net/http"
)

// RequestIDHeader carries the request id. The request-id middleware sets it
// on the response before any handler runs.
const RequestIDHeader = "X-Request-ID"

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Envelope is the body of every JSON response the service writes.
type Envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func JSONResponse(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func JSONError(w http.ResponseWriter, status int, message string) error {
	return JSONResponse(w, status, Envelope{
		Status:    statusError,
		Error:     message,
		RequestID: w.Header().Get(RequestIDHeader),
	})
}

func SuccessResponse(w http.ResponseWriter, message string, data any) error {
	return JSONResponse(w, http.StatusOK, Envelope{
		Status:    statusSuccess,
		Message:   message,
		Data:      data,
		RequestID: w.Header().Get(RequestIDHeader),
	})
}
