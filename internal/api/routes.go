package api

import (
	"net/http"

	"github.com/wgomg/digest/internal/utils"
)

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.HandleFunc("GET /methods", handler.HandleMethods)
	mux.HandleFunc("GET /samples", handler.HandleSamples)
	mux.HandleFunc("GET /samples/{name}", handler.HandleSample)
	mux.HandleFunc("POST /summarize", handler.HandleSummarize)
	mux.HandleFunc("POST /compare", handler.HandleCompare)
	mux.Handle("GET /metrics", handler.metrics.Handler())
}

// NewServer wires the routes behind the request-id middleware.
func NewServer(handler *Handler, logger *utils.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, handler)
	return withRequestID(mux, logger, handler.metrics)
}

// Endpoints lists the registered routes for startup logging.
func Endpoints() []string {
	return []string{
		"GET  /health",
		"GET  /methods",
		"GET  /samples",
		"GET  /samples/{name}",
		"POST /summarize",
		"POST /compare",
		"GET  /metrics",
	}
}
