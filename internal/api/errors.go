package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/draftpilot/draftpilot-api/internal/generation"
	"github.com/draftpilot/draftpilot-api/internal/service"
	"github.com/draftpilot/draftpilot-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var cerr *generation.ClassifiedError
	if errors.As(err, &cerr) {
		return statusForKind(cerr.Kind)
	}

	switch {
	// Bad request errors
	case errors.Is(err, service.ErrUnknownAction),
		errors.Is(err, service.ErrUnknownExtractKind),
		errors.Is(err, service.ErrEmptyText),
		errors.Is(err, service.ErrInvalidCount),
		errors.Is(err, generation.ErrInvalidRequest),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// statusForKind maps a generation failure kind to the status code the add-in
// sees. Upstream failures surface as gateway-style codes so the client can
// distinguish "our bug" from "the model provider is struggling".
func statusForKind(kind generation.Kind) int {
	switch kind {
	case generation.KindInvalidAPIKey:
		// Server misconfiguration, not the caller's credentials.
		return http.StatusUnauthorized
	case generation.KindQuotaExceeded, generation.KindRateLimited:
		return http.StatusTooManyRequests
	case generation.KindNetworkError:
		return http.StatusBadGateway
	case generation.KindTimeout:
		return http.StatusGatewayTimeout
	case generation.KindContentFiltered:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	// Classified generation failures carry a stable per-kind message that
	// is already safe to show.
	var cerr *generation.ClassifiedError
	if errors.As(err, &cerr) {
		return cerr.Message
	}

	switch {
	case errors.Is(err, service.ErrUnknownAction):
		return "Unknown draft action"

	case errors.Is(err, service.ErrUnknownExtractKind):
		return "Unknown extraction kind"

	case errors.Is(err, service.ErrEmptyText):
		return "Text cannot be empty"

	case errors.Is(err, service.ErrInvalidCount):
		return "Variation count must be between 1 and 4"

	case errors.Is(err, generation.ErrInvalidRequest):
		return "Invalid generation parameters"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrDuplicate):
		return "Already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'DraftRequest.Text' Error:Field validation for 'Text' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short or too small"
	case "max":
		return "too long or too large"
	case "oneof":
		return "invalid value"
	case "gt", "gte":
		return "value too small"
	case "lt", "lte":
		return "value too large"
	default:
		return "validation failed"
	}
}
