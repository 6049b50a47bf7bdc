package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// previewLen bounds how much offending model output is carried in an
// unparseable-response error.
const previewLen = 120

// ExtractJSON recovers a JSON object from model output that may be wrapped
// in explanatory prose. It first tries a direct parse of the trimmed text;
// failing that, it parses the outermost {...} span. Some models wrap JSON
// in commentary despite being asked for JSON only, so the fallback is load
// bearing, not defensive.
//
// Unparseable output yields an UNKNOWN classified error carrying a
// truncated preview of the text.
func ExtractJSON(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)

	if json.Valid([]byte(trimmed)) && trimmed != "" {
		return json.RawMessage(trimmed), nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		span := trimmed[start : end+1]
		if json.Valid([]byte(span)) {
			return json.RawMessage(span), nil
		}
	}

	return nil, NewClassifiedError(KindUnknown,
		fmt.Errorf("response is not valid JSON: %q", preview(trimmed)))
}

// ParseStructured unmarshals model output into v after recovering the JSON
// payload with ExtractJSON.
func ParseStructured(raw string, v any) error {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return NewClassifiedError(KindUnknown,
			fmt.Errorf("response JSON does not match expected shape: %w", err))
	}
	return nil
}

func preview(s string) string {
	if len(s) <= previewLen {
		return s
	}
	return s[:previewLen] + "..."
}
