package api

import (
	"net/http"

	"github.com/draftpilot/draftpilot-api/internal/api/shared"
	"github.com/draftpilot/draftpilot-api/internal/service"
)

// ExtractHandler handles structured extraction HTTP requests.
type ExtractHandler struct {
	extractService service.ExtractService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractService service.ExtractService) *ExtractHandler {
	return &ExtractHandler{
		extractService: extractService,
	}
}

// Extract handles POST /api/extract requests. The response body is the
// model's schema-constrained JSON payload, passed through as-is.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req ExtractRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	payload, err := h.extractService.Extract(r.Context(), userID, service.ExtractRequest{
		Kind: req.Kind,
		Text: req.Text,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, payload)
}
