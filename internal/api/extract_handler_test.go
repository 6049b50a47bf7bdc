package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftpilot/draftpilot-api/internal/generation"
)

func TestExtractHandler(t *testing.T) {
	svc := &mockExtractService{
		payload: json.RawMessage(`{"items":[{"task":"send the deck"}]}`),
	}
	handler := NewExtractHandler(svc)

	w := doJSON(handler.Extract, http.MethodPost, "/api/extract",
		`{"kind":"action_items","text":"Please send the deck."}`, uuid.New())

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[{"task":"send the deck"}]}`, w.Body.String())
	assert.Equal(t, "action_items", svc.lastReq.Kind)
}

func TestExtractHandlerValidation(t *testing.T) {
	handler := NewExtractHandler(&mockExtractService{})
	userID := uuid.New()

	for _, body := range []string{
		`{"kind":"sentiment","text":"Hi"}`,
		`{"kind":"key_points"}`,
		`{"text":"Hi"}`,
	} {
		w := doJSON(handler.Extract, http.MethodPost, "/api/extract", body, userID)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestExtractHandlerRequiresAuth(t *testing.T) {
	handler := NewExtractHandler(&mockExtractService{})

	w := doJSON(handler.Extract, http.MethodPost, "/api/extract",
		`{"kind":"key_points","text":"Hi"}`, uuid.Nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExtractHandlerUnparseableResponse(t *testing.T) {
	cerr := generation.NewClassifiedError(generation.KindUnknown, errors.New("no JSON found"))
	handler := NewExtractHandler(&mockExtractService{err: cerr})

	w := doJSON(handler.Extract, http.MethodPost, "/api/extract",
		`{"kind":"key_points","text":"Hi"}`, uuid.New())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
