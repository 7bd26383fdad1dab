package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apierrors "langtab/internal/errors"
)

// RequestValidator decodes and validates JSON request bodies against struct
// tags before a handler sees them.
type RequestValidator struct {
	validator    *validator.Validate
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	maxBodySize  int64
}

// NewRequestValidator creates a new request validator.
func NewRequestValidator(logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *RequestValidator {
	v := validator.New()

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{
		validator:    v,
		logger:       logger.With(slog.String("component", "request_validator")),
		errorHandler: errorHandler,
		maxBodySize:  1 << 20, // 1MB is plenty for a language dataset
	}
}

// DecodeAndValidate reads the request body into dst and validates it.
// On failure it writes the error response and returns false; the handler
// should simply return.
func (v *RequestValidator) DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.ContentLength > v.maxBodySize {
		v.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusRequestEntityTooLarge,
			"PAYLOAD_TOO_LARGE",
			"Request body exceeds maximum allowed size",
			map[string]any{"max_size": v.maxBodySize, "size": r.ContentLength},
		))
		return false
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, v.maxBodySize))
	if err != nil {
		v.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		v.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return false
	}

	if err := v.validator.Struct(dst); err != nil {
		v.errorHandler.HandleError(w, r, v.validationToAPIError(err))
		return false
	}

	return true
}

// validationToAPIError converts validator errors to a field-level APIError.
func (v *RequestValidator) validationToAPIError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apierrors.InvalidRequestWithError(err)
	}

	details := make([]apierrors.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apierrors.ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed %q validation", fe.Tag()),
		})
	}
	return apierrors.ErrValidationFailed.WithDetails(details)
}
