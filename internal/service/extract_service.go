package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/draftpilot/draftpilot-api/internal/config"
	"github.com/draftpilot/draftpilot-api/internal/generation"
)

// Extraction kind constants.
const (
	ExtractActionItems = "action_items"
	ExtractKeyPoints   = "key_points"
)

// extractProfile bundles everything one extraction kind needs: the prompt
// framing, the system instruction, and the response schema the service is
// asked to conform to.
type extractProfile struct {
	systemInstruction string
	schema            *generation.Schema
}

var extractProfiles = map[string]extractProfile{
	ExtractActionItems: {
		systemInstruction: "You extract action items from email text. " +
			"Respond with JSON only, matching the requested schema. " +
			"An action item is a concrete task someone is asked or agrees to do. " +
			"Omit the owner or due date fields when the text does not state them.",
		schema: &generation.Schema{
			Type: "object",
			Properties: map[string]*generation.Schema{
				"items": {
					Type: "array",
					Items: &generation.Schema{
						Type: "object",
						Properties: map[string]*generation.Schema{
							"task":  {Type: "string", Description: "what needs to be done"},
							"owner": {Type: "string", Description: "who is responsible, if stated"},
							"due":   {Type: "string", Description: "deadline, if stated"},
						},
						Required: []string{"task"},
					},
				},
			},
			Required: []string{"items"},
		},
	},
	ExtractKeyPoints: {
		systemInstruction: "You extract the key points from email text. " +
			"Respond with JSON only, matching the requested schema. " +
			"One point per distinct fact or decision; no duplicates.",
		schema: &generation.Schema{
			Type: "object",
			Properties: map[string]*generation.Schema{
				"points": {
					Type:  "array",
					Items: &generation.Schema{Type: "string"},
				},
			},
			Required: []string{"points"},
		},
	},
}

// ExtractRequest carries one structured extraction from the add-in.
type ExtractRequest struct {
	Kind string
	Text string
}

// ExtractService turns add-in extraction requests into structured
// generation calls.
type ExtractService interface {
	// Extract runs the structured-mode flow for the requested kind and
	// returns the JSON payload for the add-in to render.
	Extract(ctx context.Context, userID uuid.UUID, req ExtractRequest) (json.RawMessage, error)
}

type extractService struct {
	generator generation.Generator
	cfg       config.LLMConfig
	logger    *slog.Logger
}

// NewExtractService creates an ExtractService with the given dependencies.
func NewExtractService(
	generator generation.Generator,
	cfg config.LLMConfig,
	logger *slog.Logger,
) ExtractService {
	return &extractService{
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *extractService) Extract(
	ctx context.Context,
	userID uuid.UUID,
	req ExtractRequest,
) (json.RawMessage, error) {
	profile, ok := extractProfiles[req.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q: %w", req.Kind, ErrUnknownExtractKind)
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}

	text, err := generation.Truncate(req.Text, s.cfg.MaxPromptTokens)
	if err != nil {
		return nil, err
	}

	genReq := generation.StructuredRequest{
		Request: generation.Request{
			Prompt:          text,
			Model:           s.cfg.ModelName,
			Temperature:     0, // deterministic output for extraction
			MaxOutputTokens: defaultMaxOutputTokens,
			TopP:            defaultTopP,
			TopK:            defaultTopK,
		},
		SystemInstruction: profile.systemInstruction,
		ResponseSchema:    profile.schema,
	}

	payload, err := s.generator.GenerateStructured(ctx, genReq)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "extraction completed",
		"kind", req.Kind,
		"user_id", userID.String(),
		"payload_length", len(payload))
	return payload, nil
}
