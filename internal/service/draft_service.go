package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/draftpilot/draftpilot-api/internal/config"
	"github.com/draftpilot/draftpilot-api/internal/generation"
	"github.com/draftpilot/draftpilot-api/internal/store"
)

// Default tuning parameters applied when a request leaves them unset.
const (
	defaultTemperature     float32 = 0.7
	defaultMaxOutputTokens int32   = 2048
	defaultTopP            float32 = 0.95
	defaultTopK            int32   = 40
	defaultTone                    = "neutral"

	// maxVariations bounds the concurrent fan-out of Variations.
	maxVariations = 4
)

// DraftRequest carries one draft operation from the add-in. Optional tuning
// parameters are pointers so "unset" and "zero" stay distinguishable.
type DraftRequest struct {
	Action string
	Text   string

	Tone  string // overrides the stored preference when set
	Model string // overrides the stored preference when set

	Temperature     *float32
	MaxOutputTokens *int32
	TopP            *float32
	TopK            *int32
	TimeoutMs       int
}

// DraftResult is the outcome of a successful draft operation.
type DraftResult struct {
	Text      string
	Model     string
	Truncated bool
}

// VariationsResult is the outcome of a variations fan-out. Model is the
// resolved model every variation was generated with, after preference and
// default resolution.
type VariationsResult struct {
	Texts []string
	Model string
}

// DraftService turns add-in draft requests into generation calls.
type DraftService interface {
	// CreateDraft renders the action's prompt template and generates one
	// draft. Failures surface as *generation.ClassifiedError.
	CreateDraft(ctx context.Context, userID uuid.UUID, req DraftRequest) (*DraftResult, error)

	// Variations generates count alternative drafts concurrently. Each
	// call runs its own independent retry loop; the first failure cancels
	// the remaining calls.
	Variations(ctx context.Context, userID uuid.UUID, req DraftRequest, count int) (*VariationsResult, error)
}

// draftService is the production DraftService backed by a Generator and the
// preference store.
type draftService struct {
	generator generation.Generator
	prefs     store.PreferenceStore
	cfg       config.LLMConfig
	logger    *slog.Logger
}

// NewDraftService creates a DraftService with the given dependencies.
func NewDraftService(
	generator generation.Generator,
	prefs store.PreferenceStore,
	cfg config.LLMConfig,
	logger *slog.Logger,
) DraftService {
	return &draftService{
		generator: generator,
		prefs:     prefs,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *draftService) CreateDraft(
	ctx context.Context,
	userID uuid.UUID,
	req DraftRequest,
) (*DraftResult, error) {
	genReq, truncated, err := s.buildRequest(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.GenerateText(ctx, *genReq)
	if err != nil {
		return nil, err
	}

	return &DraftResult{
		Text:      text,
		Model:     genReq.Model,
		Truncated: truncated,
	}, nil
}

func (s *draftService) Variations(
	ctx context.Context,
	userID uuid.UUID,
	req DraftRequest,
	count int,
) (*VariationsResult, error) {
	if count < 1 || count > maxVariations {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidCount, count, maxVariations)
	}

	genReq, _, err := s.buildRequest(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	texts := make([]string, count)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			text, err := s.generator.GenerateText(gctx, *genReq)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &VariationsResult{Texts: texts, Model: genReq.Model}, nil
}

// buildRequest resolves the template, preferences, truncation, and tuning
// defaults into a ready-to-dispatch generation request.
func (s *draftService) buildRequest(
	ctx context.Context,
	userID uuid.UUID,
	req DraftRequest,
) (*generation.Request, bool, error) {
	tmpl, err := GetTemplate(req.Action)
	if err != nil {
		return nil, false, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, false, ErrEmptyText
	}

	pref := s.lookupPreferences(ctx, userID)

	tone := firstNonEmpty(req.Tone, pref.Tone, defaultTone)
	model := firstNonEmpty(req.Model, pref.Model, s.cfg.ModelName)

	text, err := generation.Truncate(req.Text, s.cfg.MaxPromptTokens)
	if err != nil {
		return nil, false, err
	}
	truncated := text != req.Text

	prompt, err := generation.Substitute(tmpl, map[string]string{
		"MESSAGE":   text,
		"TONE":      tone,
		"SIGNATURE": pref.Signature,
	})
	if err != nil {
		return nil, false, err
	}

	genReq := &generation.Request{
		Prompt:          prompt,
		Model:           model,
		Temperature:     valueOr(req.Temperature, defaultTemperature),
		MaxOutputTokens: valueOr(req.MaxOutputTokens, defaultMaxOutputTokens),
		TopP:            valueOr(req.TopP, defaultTopP),
		TopK:            valueOr(req.TopK, defaultTopK),
		Timeout:         time.Duration(req.TimeoutMs) * time.Millisecond,
	}
	return genReq, truncated, nil
}

// lookupPreferences fetches the user's stored settings. Preferences are a
// convenience: a missing row or a store hiccup falls back to defaults
// rather than failing the draft.
func (s *draftService) lookupPreferences(ctx context.Context, userID uuid.UUID) store.Preference {
	pref, err := s.prefs.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.WarnContext(ctx, "preference lookup failed, using defaults",
				"user_id", userID.String(),
				"error", err)
		}
		return store.Preference{}
	}
	return *pref
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func valueOr[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
