package generation

import (
	"context"
	"errors"
	"net"
	"strings"
)

// Message fragments matched (case-insensitively) when no usable HTTP status
// is available, or to refine one. Kept lowercase; candidates are lowered
// before matching.
var (
	apiKeyPatterns = []string{
		"api key",
		"api_key",
		"unauthenticated",
		"unauthorized",
		"permission denied",
	}
	quotaPatterns = []string{
		"quota",
		"billing",
	}
	rateLimitPatterns = []string{
		"rate limit",
		"too many requests",
		"resource exhausted",
		"resource_exhausted",
	}
	networkPatterns = []string{
		"connection refused",
		"connection reset",
		"no such host",
		"unreachable",
		"network",
		"offline",
		"broken pipe",
	}
	safetyPatterns = []string{
		"safety",
		"blocked",
		"content filter",
		"prohibited content",
	}
)

// Classify normalizes an arbitrary failure into a ClassifiedError using
// message patterns and context/net error inspection. Transports that can
// extract an upstream HTTP status should call ClassifyStatus instead.
// Classify is total and idempotent: an already-classified error is returned
// unchanged.
func Classify(err error) *ClassifiedError {
	return ClassifyStatus(0, err)
}

// ClassifyStatus classifies err given the upstream HTTP status when one was
// extractable (0 means unknown). Evaluation order, first match wins:
//
//  1. already classified -> returned unchanged
//  2. context deadline or net timeout -> TIMEOUT
//  3. status 401/403 or API-key message -> INVALID_API_KEY
//  4. quota message (with or without a 429) -> QUOTA_EXCEEDED
//  5. status 429 or rate-limit message -> RATE_LIMITED
//  6. network failure message or net.Error -> NETWORK_ERROR
//  7. safety/content-filter message -> CONTENT_FILTERED
//  8. status >= 500 -> UNKNOWN, retryable
//  9. anything else -> UNKNOWN, not retryable
//
// Quota is checked before the generic rate-limit path on purpose: quota
// exhaustion is terminal, and a 429 whose message mentions quota must not
// be retried as if it were transient throttling.
func ClassifyStatus(status int, err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var cerr *ClassifiedError
	if errors.As(err, &cerr) {
		return cerr
	}

	msg := strings.ToLower(err.Error())

	classified := func(kind Kind) *ClassifiedError {
		ce := NewClassifiedError(kind, err)
		ce.HTTPStatus = status
		return ce
	}

	var netErr net.Error
	isNetErr := errors.As(err, &netErr)

	switch {
	case errors.Is(err, context.DeadlineExceeded), isNetErr && netErr.Timeout():
		return classified(KindTimeout)

	case status == 401, status == 403, matchesAny(msg, apiKeyPatterns):
		return classified(KindInvalidAPIKey)

	case matchesAny(msg, quotaPatterns):
		return classified(KindQuotaExceeded)

	case status == 429, matchesAny(msg, rateLimitPatterns):
		return classified(KindRateLimited)

	case isNetErr, matchesAny(msg, networkPatterns):
		return classified(KindNetworkError)

	case matchesAny(msg, safetyPatterns):
		return classified(KindContentFiltered)

	case status >= 500:
		ce := classified(KindUnknown)
		ce.Retryable = true // generic server errors are worth one more try
		return ce

	default:
		return classified(KindUnknown)
	}
}

func matchesAny(msg string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
