package errors

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"langtab/internal/dataset"
	"langtab/internal/services"
)

// ErrorHandler provides centralized error handling for the HTTP layer. It
// maps library sentinel errors onto structured APIError responses so
// handlers never build status codes by hand.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger.With(slog.String("component", "error_handler")),
	}
}

// HandleError converts any error to a structured response and renders it.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	apiErr := h.toAPIError(err)
	if renderErr := render.Render(w, r, NewErrorResponse(apiErr)); renderErr != nil {
		h.logger.ErrorContext(r.Context(), "failed to render error response",
			slog.String("error", renderErr.Error()))
	}
}

// toAPIError maps an error to its APIError representation.
func (h *ErrorHandler) toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, dataset.ErrLanguageNotFound):
		return ErrLanguageNotFound.WithDetails(err.Error())
	case errors.Is(err, dataset.ErrYearNotFound):
		return ErrYearNotFound.WithDetails(err.Error())
	case errors.Is(err, dataset.ErrRowOutOfRange):
		return NewWithDetails(http.StatusBadRequest, "ROW_OUT_OF_RANGE", "Row index out of range", err.Error())
	case errors.Is(err, dataset.ErrUnknownColumn):
		return NewWithDetails(http.StatusBadRequest, "UNKNOWN_COLUMN", "Unknown column name", err.Error())
	case errors.Is(err, services.ErrUnknownView):
		return NewWithDetails(http.StatusBadRequest, "UNKNOWN_VIEW", "Unknown view name", err.Error())
	default:
		return ErrInternalServer
	}
}
