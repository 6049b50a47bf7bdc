package generation

import (
	"errors"
	"fmt"
)

// Sentinel errors for the generation package.
var (
	// ErrInvalidRequest is returned when a request carries tuning
	// parameters outside their documented ranges.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrEmptyTemplate is returned when a prompt template is empty.
	ErrEmptyTemplate = errors.New("prompt template cannot be empty")

	// ErrInvalidMaxTokens is returned when a truncation budget is not positive.
	ErrInvalidMaxTokens = errors.New("max tokens must be positive")

	// ErrInvalidConfig is returned when generator configuration is invalid,
	// such as an empty API key. Configuration is checked at construction
	// time, not at first use.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// Kind is the closed taxonomy every generation failure is normalized into.
type Kind string

const (
	KindInvalidAPIKey   Kind = "INVALID_API_KEY"
	KindQuotaExceeded   Kind = "QUOTA_EXCEEDED"
	KindRateLimited     Kind = "RATE_LIMITED"
	KindNetworkError    Kind = "NETWORK_ERROR"
	KindTimeout         Kind = "TIMEOUT"
	KindContentFiltered Kind = "CONTENT_FILTERED"
	KindUnknown         Kind = "UNKNOWN"
)

// kindRetryable maps each kind to its recovery policy. Retryability is a
// pure function of kind. TIMEOUT is deliberately non-retryable: large
// inputs time out deterministically, not transiently, so retrying cannot
// change the outcome.
var kindRetryable = map[Kind]bool{
	KindInvalidAPIKey:   false,
	KindQuotaExceeded:   false,
	KindRateLimited:     true,
	KindNetworkError:    true,
	KindTimeout:         false,
	KindContentFiltered: false,
	KindUnknown:         false,
}

// kindMessage maps each kind to the message surfaced to users. Raw service
// errors never reach the caller; these do.
var kindMessage = map[Kind]string{
	KindInvalidAPIKey:   "The API key was rejected. Check the key configured for the add-in.",
	KindQuotaExceeded:   "The API quota is exhausted. Check the account's billing and usage limits.",
	KindRateLimited:     "The service is rate limiting requests. Try again in a moment.",
	KindNetworkError:    "Could not reach the generation service. Check the network connection.",
	KindTimeout:         "The request timed out. Try again with a shorter message.",
	KindContentFiltered: "The service declined to generate a response for this content.",
	KindUnknown:         "Text generation failed unexpectedly.",
}

// ClassifiedError is the only failure shape surfaced to callers of this
// package. Classification happens exactly once, as close to the failure
// origin as possible; re-classifying a ClassifiedError is a no-op.
type ClassifiedError struct {
	// Kind places the failure in the closed taxonomy.
	Kind Kind

	// Message is safe to render to the user verbatim.
	Message string

	// Retryable reports whether RetryController may re-attempt the call.
	Retryable bool

	// HTTPStatus is the upstream status when one was extractable, else 0.
	HTTPStatus int

	cause error
}

// NewClassifiedError builds a ClassifiedError of the given kind wrapping
// cause. Retryable and Message derive from the kind.
func NewClassifiedError(kind Kind, cause error) *ClassifiedError {
	return &ClassifiedError{
		Kind:      kind,
		Message:   kindMessage[kind],
		Retryable: kindRetryable[kind],
		cause:     cause,
	}
}

func (e *ClassifiedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the original failure for errors.Is/errors.As chains.
func (e *ClassifiedError) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is (or wraps) a ClassifiedError of kind k.
func IsKind(err error, k Kind) bool {
	var cerr *ClassifiedError
	return errors.As(err, &cerr) && cerr.Kind == k
}
