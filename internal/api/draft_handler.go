package api

import (
	"net/http"

	"github.com/draftpilot/draftpilot-api/internal/api/shared"
	"github.com/draftpilot/draftpilot-api/internal/service"
)

// DraftHandler handles draft-related HTTP requests.
type DraftHandler struct {
	draftService service.DraftService
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(draftService service.DraftService) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
	}
}

// CreateDraft handles POST /api/drafts requests.
func (h *DraftHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req DraftRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.draftService.CreateDraft(r.Context(), userID, toServiceDraftRequest(req))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DraftResponse{
		Text:      result.Text,
		Model:     result.Model,
		Truncated: result.Truncated,
	})
}

// Variations handles POST /api/drafts/variations requests.
func (h *DraftHandler) Variations(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req VariationsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.draftService.Variations(
		r.Context(), userID, toServiceDraftRequest(req.DraftRequest), req.Count)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, VariationsResponse{
		Variations: result.Texts,
		Model:      result.Model,
	})
}

// toServiceDraftRequest converts the transport DTO to the service request.
func toServiceDraftRequest(req DraftRequest) service.DraftRequest {
	return service.DraftRequest{
		Action:          req.Action,
		Text:            req.Text,
		Tone:            req.Tone,
		Model:           req.Model,
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
		TopP:            req.TopP,
		TopK:            req.TopK,
		TimeoutMs:       req.TimeoutMs,
	}
}
