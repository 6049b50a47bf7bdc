package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Generator is the boundary between the application core and the external
// language-model service. Implementations are safe for concurrent use: each
// call runs its own retry loop with no shared mutable state beyond the
// read-only client handle created at startup.
type Generator interface {
	// GenerateText sends a plain-text generation request and returns the
	// model's output. An accepted request that produces empty or
	// whitespace-only text fails with a CONTENT_FILTERED classified error.
	GenerateText(ctx context.Context, req Request) (string, error)

	// GenerateStructured sends a JSON-mode generation request and returns
	// the raw JSON payload recovered from the model's output. The payload
	// conforms to req.ResponseSchema as far as the service honors it;
	// callers unmarshal into their own types.
	GenerateStructured(ctx context.Context, req StructuredRequest) (json.RawMessage, error)
}

// Request carries one plain-text generation call.
type Request struct {
	// Prompt is the fully substituted text sent to the service.
	Prompt string

	// Model names the target model. Empty means the implementation default.
	Model string

	// Temperature controls sampling randomness, in [0, 2].
	Temperature float32

	// MaxOutputTokens bounds the response length. Must be positive.
	MaxOutputTokens int32

	// TopP is the nucleus-sampling threshold, in [0, 1].
	TopP float32

	// TopK restricts sampling to the K most likely tokens. Must be >= 0.
	TopK int32

	// Timeout overrides the computed per-request timeout when positive.
	Timeout time.Duration
}

// Validate reports the first tuning parameter outside its documented range.
func (r Request) Validate() error {
	if r.Prompt == "" {
		return fmt.Errorf("%w: prompt cannot be empty", ErrInvalidRequest)
	}
	if r.Temperature < 0 || r.Temperature > 2 {
		return fmt.Errorf("%w: temperature %v outside [0, 2]", ErrInvalidRequest, r.Temperature)
	}
	if r.MaxOutputTokens <= 0 {
		return fmt.Errorf("%w: max output tokens must be positive", ErrInvalidRequest)
	}
	if r.TopP < 0 || r.TopP > 1 {
		return fmt.Errorf("%w: top_p %v outside [0, 1]", ErrInvalidRequest, r.TopP)
	}
	if r.TopK < 0 {
		return fmt.Errorf("%w: top_k must be >= 0", ErrInvalidRequest)
	}
	return nil
}

// StructuredRequest carries one JSON-mode generation call. Reasoning is
// always disabled for structured requests: thinking consumes output-token
// budget that must be reserved for the JSON payload.
type StructuredRequest struct {
	Request

	// SystemInstruction steers the model independently of the prompt.
	SystemInstruction string

	// ResponseSchema describes the JSON shape the service is asked to
	// return. Nil requests unconstrained JSON.
	ResponseSchema *Schema
}

// Schema is a transport-neutral description of a JSON response shape.
// Implementations translate it into their SDK's schema representation.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}
