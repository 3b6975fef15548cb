package api

import (
	"errors"
	"net/http"

	"github.com/wgomg/digest/internal/abstractive"
	"github.com/wgomg/digest/internal/extractive"
	"github.com/wgomg/digest/internal/source"
	"github.com/wgomg/digest/internal/utils/httputils"
)

// toHTTPError maps domain errors onto response codes. Unknown errors stay as
// they are and become a 500.
func toHTTPError(err error) error {
	var httpErr *httputils.HTTPError
	var unsupportedMethod *extractive.UnsupportedMethodError
	var unsupportedModel *abstractive.UnsupportedModelError

	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, extractive.ErrEmptyInput):
		return &httputils.HTTPError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	case errors.As(err, &unsupportedMethod),
		errors.As(err, &unsupportedModel),
		errors.Is(err, extractive.ErrInvalidSentenceCount),
		errors.Is(err, abstractive.ErrInvalidLength):
		return &httputils.HTTPError{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, source.ErrSampleNotFound):
		return &httputils.HTTPError{Code: http.StatusNotFound, Message: err.Error()}
	}
	return err
}
