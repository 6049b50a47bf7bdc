package generation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// charsPerToken approximates the service's billing unit: one token is
// roughly four characters of English text.
const charsPerToken = 4

// TruncationNotice is appended to any text shortened by Truncate so readers
// (and the model) know the input was cut.
const TruncationNotice = "\n\n[Message truncated to fit the model's input limit.]"

// placeholderRe matches {{KEY}} markers in prompt templates.
var placeholderRe = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Substitute replaces every occurrence of each {{KEY}} marker in template
// with the corresponding value from vars. Matching is literal and
// case-sensitive. Markers without a value are left intact; unused variables
// are ignored. An empty template is an error.
func Substitute(template string, vars map[string]string) (string, error) {
	if template == "" {
		return "", ErrEmptyTemplate
	}
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result, nil
}

// ListPlaceholders returns the de-duplicated marker names in template, in
// order of first appearance. An empty template yields an empty slice.
func ListPlaceholders(template string) []string {
	names := []string{}
	seen := map[string]bool{}
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Truncate shortens text so it fits within maxTokens, preferring to cut at
// a sentence boundary. Text already within budget is returned unchanged.
// Truncated output always ends with TruncationNotice and never exceeds
// maxTokens*4 characters, so requests cannot silently exceed the service's
// input limits.
func Truncate(text string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidMaxTokens, maxTokens)
	}

	limit := maxTokens * charsPerToken
	if len(text) <= limit {
		return text, nil
	}

	budget := limit - len(TruncationNotice)
	if budget < 0 {
		budget = 0
	}
	// The budget is a byte count, so it can land inside a multi-byte rune;
	// back up to the rune boundary before slicing.
	for budget > 0 && !utf8.RuneStart(text[budget]) {
		budget--
	}
	cut := text[:budget]

	// Back up to the nearest sentence end so the kept text reads cleanly.
	if idx := strings.LastIndexAny(cut, ".!?"); idx >= 0 {
		cut = cut[:idx+1]
	}

	return cut + TruncationNotice, nil
}

// EstimateTokens reports the approximate token count of text under the
// four-characters-per-token rule.
func EstimateTokens(text string) int {
	return (len(text) + charsPerToken - 1) / charsPerToken
}
