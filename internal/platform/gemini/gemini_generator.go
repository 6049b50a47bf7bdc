package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/draftpilot/draftpilot-api/internal/config"
	"github.com/draftpilot/draftpilot-api/internal/generation"
	"github.com/draftpilot/draftpilot-api/internal/redact"
)

// contentCaller is the slice of the genai client this package uses.
// *genai.Models implements it implicitly; tests inject fakes.
type contentCaller interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements generation.Generator against the Gemini API.
// The embedded client handle is created once and never mutated, so a single
// GeminiGenerator serves concurrent callers without coordination; each
// call's retry loop is independent.
type GeminiGenerator struct {
	logger   *slog.Logger
	caller   contentCaller
	model    string
	timeouts generation.TimeoutPolicy
	retry    generation.RetryConfig
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates the application's generator from LLM
// configuration. An empty API key or model name is rejected here, at
// construction time, so misconfiguration surfaces at startup rather than on
// the first user request.
func NewGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger: logger,
		caller: client.Models,
		model:  cfg.ModelName,
		timeouts: generation.TimeoutPolicy{
			Base:       time.Duration(cfg.TimeoutBaseMs) * time.Millisecond,
			PerBlock:   time.Duration(cfg.TimeoutPerBlockMs) * time.Millisecond,
			Max:        time.Duration(cfg.TimeoutMaxMs) * time.Millisecond,
			BlockChars: generation.DefaultTimeoutBlock,
		},
		retry: generation.RetryConfig{
			MaxRetries:    cfg.MaxRetries,
			InitialDelay:  time.Duration(cfg.RetryInitialDelayMs) * time.Millisecond,
			BackoffFactor: cfg.RetryBackoffFactor,
			JitterRatio:   generation.DefaultJitterRatio,
		},
	}, nil
}

// GenerateText implements generation.Generator.
func (g *GeminiGenerator) GenerateText(ctx context.Context, req generation.Request) (string, error) {
	return g.dispatch(ctx, req, nil)
}

// GenerateStructured implements generation.Generator. The request asks the
// service for JSON-shaped output and disables its internal reasoning step:
// reasoning consumes output-token budget that must be reserved for the JSON
// payload.
func (g *GeminiGenerator) GenerateStructured(
	ctx context.Context,
	req generation.StructuredRequest,
) (json.RawMessage, error) {
	text, err := g.dispatch(ctx, req.Request, &req)
	if err != nil {
		return nil, err
	}
	return generation.ExtractJSON(text)
}

// dispatch issues one logical generation call: compute the timeout from the
// prompt length, then run the bounded retry loop around a single
// deadline-bounded API call. structured is nil in plain-text mode.
func (g *GeminiGenerator) dispatch(
	ctx context.Context,
	req generation.Request,
	structured *generation.StructuredRequest,
) (string, error) {
	if g.caller == nil {
		return "", generation.NewClassifiedError(generation.KindInvalidAPIKey,
			errors.New("generation client has not been initialized"))
	}

	if req.Model == "" {
		req.Model = g.model
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	timeout := g.timeouts.Compute(len(req.Prompt), req.Timeout)
	genCfg := g.buildConfig(req, structured)

	g.logger.DebugContext(ctx, "dispatching generation request",
		"model", req.Model,
		"prompt_length", len(req.Prompt),
		"estimated_tokens", generation.EstimateTokens(req.Prompt),
		"timeout", timeout,
		"structured", structured != nil)

	attempt := 0
	return generation.WithRetry(ctx, g.retry, func(ctx context.Context) (string, error) {
		attempt++

		// The deadline threads through the SDK call, so on timeout the
		// underlying request is aborted rather than left running.
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		resp, err := g.caller.GenerateContent(callCtx, req.Model, genai.Text(req.Prompt), genCfg)
		if err != nil {
			cerr := generation.ClassifyStatus(upstreamStatus(err), err)
			g.logger.WarnContext(ctx, "generation call failed",
				"attempt", attempt,
				"kind", cerr.Kind,
				"retryable", cerr.Retryable,
				"error", redact.Error(err))
			return "", cerr
		}

		text, err := responseText(resp)
		if err != nil {
			g.logger.WarnContext(ctx, "generation produced no usable output",
				"attempt", attempt,
				"error", err)
			return "", err
		}

		g.logger.InfoContext(ctx, "generation call succeeded",
			"attempt", attempt,
			"model", req.Model,
			"output_length", len(text))
		return text, nil
	})
}

// buildConfig translates a request into the SDK's generation configuration.
func (g *GeminiGenerator) buildConfig(
	req generation.Request,
	structured *generation.StructuredRequest,
) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		TopP:            genai.Ptr(req.TopP),
		TopK:            genai.Ptr(float32(req.TopK)),
		MaxOutputTokens: req.MaxOutputTokens,
	}

	if structured == nil {
		return cfg
	}

	cfg.ResponseMIMEType = "application/json"
	cfg.ResponseSchema = toGenaiSchema(structured.ResponseSchema)
	cfg.ThinkingConfig = &genai.ThinkingConfig{
		ThinkingBudget: genai.Ptr(int32(0)),
	}
	if structured.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: structured.SystemInstruction}},
		}
	}
	return cfg
}

// responseText extracts the generated text from a response. A response the
// service accepted but that carries no usable text classifies as
// CONTENT_FILTERED: the request was fine, the model declined to answer.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", generation.NewClassifiedError(generation.KindContentFiltered,
			errors.New("response contains no candidates"))
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", generation.NewClassifiedError(generation.KindContentFiltered,
			errors.New("response blocked by safety filters"))
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", generation.NewClassifiedError(generation.KindContentFiltered,
			errors.New("response text is empty"))
	}
	return text, nil
}

// upstreamStatus pulls the HTTP status out of a genai API error, in either
// the value or pointer shape the SDK has returned over time. 0 means no
// status was extractable.
func upstreamStatus(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code
	}
	return 0
}
