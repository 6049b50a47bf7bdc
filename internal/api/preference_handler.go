package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/draftpilot/draftpilot-api/internal/api/shared"
	"github.com/draftpilot/draftpilot-api/internal/store"
)

// PreferenceHandler handles per-user add-in settings.
type PreferenceHandler struct {
	prefs store.PreferenceStore
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(prefs store.PreferenceStore) *PreferenceHandler {
	return &PreferenceHandler{
		prefs: prefs,
	}
}

// GetPreferences handles GET /api/preferences requests. A user who never
// saved preferences gets the zero-value response, not a 404, so the add-in
// can always render its settings pane.
func (h *PreferenceHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	pref, err := h.prefs.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, PreferenceResponse{})
			return
		}
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PreferenceResponse{
		Tone:      pref.Tone,
		Signature: pref.Signature,
		Model:     pref.Model,
		UpdatedAt: pref.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

// UpdatePreferences handles PUT /api/preferences requests.
func (h *PreferenceHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req UpdatePreferenceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	pref := &store.Preference{
		UserID:    userID,
		Tone:      req.Tone,
		Signature: req.Signature,
		Model:     req.Model,
	}
	if err := h.prefs.Upsert(r.Context(), pref); err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PreferenceResponse{
		Tone:      pref.Tone,
		Signature: pref.Signature,
		Model:     pref.Model,
		UpdatedAt: pref.UpdatedAt.UTC().Format(time.RFC3339),
	})
}
