package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"

	"github.com/draftpilot/draftpilot-api/internal/api/shared"
	"github.com/draftpilot/draftpilot-api/internal/service"
	"github.com/draftpilot/draftpilot-api/internal/store"
)

// mockDraftService returns scripted results and records the last request.
type mockDraftService struct {
	result     *service.DraftResult
	variations *service.VariationsResult
	err        error

	lastUserID uuid.UUID
	lastReq    service.DraftRequest
	lastCount  int
}

var _ service.DraftService = (*mockDraftService)(nil)

func (m *mockDraftService) CreateDraft(
	ctx context.Context,
	userID uuid.UUID,
	req service.DraftRequest,
) (*service.DraftResult, error) {
	m.lastUserID = userID
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockDraftService) Variations(
	ctx context.Context,
	userID uuid.UUID,
	req service.DraftRequest,
	count int,
) (*service.VariationsResult, error) {
	m.lastUserID = userID
	m.lastReq = req
	m.lastCount = count
	if m.err != nil {
		return nil, m.err
	}
	return m.variations, nil
}

// mockExtractService returns a scripted payload.
type mockExtractService struct {
	payload json.RawMessage
	err     error

	lastReq service.ExtractRequest
}

var _ service.ExtractService = (*mockExtractService)(nil)

func (m *mockExtractService) Extract(
	ctx context.Context,
	userID uuid.UUID,
	req service.ExtractRequest,
) (json.RawMessage, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.payload, nil
}

// mockPreferenceStore serves a fixed preference, or store.ErrNotFound.
type mockPreferenceStore struct {
	pref *store.Preference
	err  error

	upserted *store.Preference
}

var _ store.PreferenceStore = (*mockPreferenceStore)(nil)

func (m *mockPreferenceStore) Get(ctx context.Context, userID uuid.UUID) (*store.Preference, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.pref == nil {
		return nil, store.ErrNotFound
	}
	return m.pref, nil
}

func (m *mockPreferenceStore) Upsert(ctx context.Context, pref *store.Preference) error {
	if m.err != nil {
		return m.err
	}
	m.upserted = pref
	return nil
}

// authedRequest builds a request whose context carries the given user ID,
// the way the auth middleware would.
func authedRequest(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	return r.WithContext(ctx)
}

// doJSON runs the handler against a JSON body and returns the recorder.
func doJSON(
	handler http.HandlerFunc,
	method, target, body string,
	userID uuid.UUID,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != uuid.Nil {
		req = authedRequest(req, userID)
	}
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}
