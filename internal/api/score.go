package api

import (
	"encoding/json"
	"net/http"

	"github.com/circulend/circulend/pkg/scoring"
)

// handleScore handles POST /api/v1/score — synchronous, stateless scoring.
// The submission is evaluated (advisory enrichment included when configured)
// and the result returned directly; nothing is persisted. Useful for
// applicant-facing previews before a real submission.
func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	var raw scoring.RawSubmission
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	result, err := h.submissionSvc.Evaluate(r.Context(), &raw)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to score submission")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
