package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithJSON(w, r, http.StatusCreated, map[string]string{"text": "hello"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"text":"hello"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(SetTraceID(r.Context()))

	RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request format", resp.Error)
	assert.Equal(t, GetTraceID(r.Context()), resp.TraceID)
}

func TestRespondWithErrorAndLogSanitizes(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/drafts", nil)

	RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
		"An unexpected error occurred",
		errors.New("pgx: connection to host 10.0.0.5:5432 refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5",
		"internal details never reach the client")
	assert.Contains(t, w.Body.String(), "An unexpected error occurred")
}
