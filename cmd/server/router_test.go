package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftpilot/draftpilot-api/internal/config"
	"github.com/draftpilot/draftpilot-api/internal/service"
	"github.com/draftpilot/draftpilot-api/internal/service/auth"
	"github.com/draftpilot/draftpilot-api/internal/store"
)

// stubDraftService serves a fixed draft for routing tests.
type stubDraftService struct{}

func (stubDraftService) CreateDraft(
	ctx context.Context,
	userID uuid.UUID,
	req service.DraftRequest,
) (*service.DraftResult, error) {
	return &service.DraftResult{Text: "stub draft", Model: "stub-model"}, nil
}

func (stubDraftService) Variations(
	ctx context.Context,
	userID uuid.UUID,
	req service.DraftRequest,
	count int,
) (*service.VariationsResult, error) {
	return &service.VariationsResult{
		Texts: make([]string, count),
		Model: "stub-model",
	}, nil
}

type stubExtractService struct{}

func (stubExtractService) Extract(
	ctx context.Context,
	userID uuid.UUID,
	req service.ExtractRequest,
) (json.RawMessage, error) {
	return json.RawMessage(`{"points":[]}`), nil
}

type memoryPreferenceStore struct {
	prefs map[uuid.UUID]*store.Preference
}

func (m *memoryPreferenceStore) Get(ctx context.Context, userID uuid.UUID) (*store.Preference, error) {
	pref, ok := m.prefs[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return pref, nil
}

func (m *memoryPreferenceStore) Upsert(ctx context.Context, pref *store.Preference) error {
	m.prefs[pref.UserID] = pref
	return nil
}

func newTestApplication(t *testing.T) (*application, auth.JWTService) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Port = 8080
	cfg.Auth.JWTSecret = "0123456789abcdef0123456789abcdef"
	cfg.Auth.TokenLifetimeMinutes = 60

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	return &application{
		config:          cfg,
		logger:          slog.Default(),
		jwtService:      jwtService,
		preferenceStore: &memoryPreferenceStore{prefs: map[uuid.UUID]*store.Preference{}},
		draftService:    stubDraftService{},
		extractService:  stubExtractService{},
	}, jwtService
}

func TestRouterHealth(t *testing.T) {
	app, _ := newTestApplication(t)
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "health check needs no auth")
}

func TestRouterRejectsUnauthenticated(t *testing.T) {
	app, _ := newTestApplication(t)
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/drafts", "application/json",
		strings.NewReader(`{"action":"reply","text":"Hi"}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouterAuthenticatedRoundTrip(t *testing.T) {
	app, jwtService := newTestApplication(t)
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	userID := uuid.New()
	token, err := jwtService.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	do := func(method, path, body string) *http.Response {
		req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	resp := do(http.MethodPost, "/api/drafts", `{"action":"reply","text":"Does Thursday work?"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var draft struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&draft))
	_ = resp.Body.Close()
	assert.Equal(t, "stub draft", draft.Text)

	resp = do(http.MethodPut, "/api/preferences", `{"tone":"formal"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = do(http.MethodGet, "/api/preferences", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var pref struct {
		Tone string `json:"tone"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pref))
	_ = resp.Body.Close()
	assert.Equal(t, "formal", pref.Tone, "preferences persist across requests for the same user")

	resp = do(http.MethodPost, "/api/extract", `{"kind":"key_points","text":"Hi"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}
