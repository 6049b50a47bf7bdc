package service

import "errors"

// Sentinel errors for the service layer.
var (
	// ErrUnknownAction is returned for a draft action with no template.
	// Wrap with the name: fmt.Errorf("unknown action %q: %w", name, ErrUnknownAction)
	ErrUnknownAction = errors.New("unknown draft action")

	// ErrUnknownExtractKind is returned for an unrecognized extraction kind.
	ErrUnknownExtractKind = errors.New("unknown extraction kind")

	// ErrEmptyText is returned when a request carries no source text.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrInvalidCount is returned when a variations count is out of range.
	ErrInvalidCount = errors.New("variation count out of range")
)
