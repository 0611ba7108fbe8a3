package api

import (
	"encoding/json"
	"net/http"

	"github.com/circulend/circulend/internal/submission"
	"github.com/circulend/circulend/pkg/scoring"
)

type submissionResponse struct {
	ID          string                `json:"id"`
	ApplicantID string                `json:"applicantId"`
	Status      string                `json:"status"`
	Payload     scoring.RawSubmission `json:"payload"`
	SubmittedAt string                `json:"submittedAt"`
	UpdatedAt   string                `json:"updatedAt"`
}

func submissionToResponse(sub *submission.Submission) submissionResponse {
	return submissionResponse{
		ID:          sub.ID,
		ApplicantID: sub.ApplicantID,
		Status:      sub.Status,
		Payload:     sub.Payload,
		SubmittedAt: sub.SubmittedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   sub.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// handleCreateSubmission handles POST /api/v1/applicants/{applicantID}/submissions.
// It accepts the raw metrics, persists the submission in PENDING status, and
// returns 202; scoring completes in the background.
func (h *Handler) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	applicantID := r.PathValue("applicantID")

	a, err := h.applicantSvc.Get(r.Context(), applicantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get applicant")
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "applicant not found")
		return
	}

	var raw scoring.RawSubmission
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	sub, err := h.submissionSvc.Create(r.Context(), applicantID, &raw)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create submission")
		return
	}

	writeJSON(w, http.StatusAccepted, submissionToResponse(sub))
}

func (h *Handler) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID := r.PathValue("submissionID")

	sub, err := h.submissionSvc.Get(r.Context(), submissionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get submission")
		return
	}
	if sub == nil {
		writeError(w, http.StatusNotFound, "submission not found")
		return
	}

	writeJSON(w, http.StatusOK, submissionToResponse(sub))
}

func (h *Handler) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	applicantID := r.PathValue("applicantID")

	subs, err := h.submissionSvc.ListByApplicant(r.Context(), applicantID)
	if err != nil {
		writeJSON(w, http.StatusOK, []submissionResponse{})
		return
	}

	var result []submissionResponse
	for i := range subs {
		result = append(result, submissionToResponse(&subs[i]))
	}

	if result == nil {
		result = []submissionResponse{}
	}
	writeJSON(w, http.StatusOK, result)
}
