// Package redact scrubs sensitive material from strings before they are
// logged. Upstream service errors can echo back API keys, bearer tokens,
// and connection strings; nothing from this process's logs should let a
// reader reconstruct a credential.
package redact

import "regexp"

// Redaction placeholders.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	KeyPlaceholder        = "[REDACTED_KEY]"
	JWTPlaceholder        = "[REDACTED_JWT]"
	HostPlaceholder       = "[REDACTED_HOST]"
)

var (
	// Connection strings with embedded credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// API keys, tokens, and secrets introduced by a labeling word.
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|bearer)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Google-style API keys appear bare in some SDK error messages.
	googleKeyRegex = regexp.MustCompile(`\bAIza[A-Za-z0-9_-]{30,}\b`)

	// Standard three-part base64url JWT shape.
	jwtRegex = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)

	// Host:port pairs from dial errors.
	hostPortRegex = regexp.MustCompile(
		`\b(?:\d{1,3}\.){3}\d{1,3}:\d{1,5}\b`,
	)
)

var replacements = []struct {
	re          *regexp.Regexp
	placeholder string
}{
	{dbConnRegex, CredentialPlaceholder},
	{apiKeyRegex, KeyPlaceholder},
	{googleKeyRegex, KeyPlaceholder},
	{jwtRegex, JWTPlaceholder},
	{hostPortRegex, HostPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, r := range replacements {
		result = r.re.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
