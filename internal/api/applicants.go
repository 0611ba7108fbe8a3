package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/circulend/circulend/internal/applicant"
)

// createApplicantRequest is the JSON body for POST /api/v1/applicants.
type createApplicantRequest struct {
	DisplayName   string  `json:"displayName"`
	Sector        *string `json:"sector,omitempty"`
	BusinessScale *string `json:"businessScale,omitempty"`
}

type applicantResponse struct {
	ID            string  `json:"id"`
	DisplayName   string  `json:"displayName"`
	Sector        *string `json:"sector,omitempty"`
	BusinessScale *string `json:"businessScale,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

func applicantToResponse(a *applicant.Applicant) applicantResponse {
	return applicantResponse{
		ID:            a.ID,
		DisplayName:   a.DisplayName,
		Sector:        a.Sector,
		BusinessScale: a.BusinessScale,
		CreatedAt:     a.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func (h *Handler) handleCreateApplicant(w http.ResponseWriter, r *http.Request) {
	var req createApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		writeError(w, http.StatusBadRequest, "displayName is required")
		return
	}

	a, err := h.applicantSvc.Create(r.Context(), req.DisplayName, req.Sector, req.BusinessScale)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create applicant")
		return
	}

	writeJSON(w, http.StatusCreated, applicantToResponse(a))
}

func (h *Handler) handleGetApplicant(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, applicantToResponse(a))
}

func (h *Handler) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	applicants, err := h.applicantSvc.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusOK, []applicantResponse{})
		return
	}

	var result []applicantResponse
	for i := range applicants {
		result = append(result, applicantToResponse(&applicants[i]))
	}

	if result == nil {
		result = []applicantResponse{}
	}
	writeJSON(w, http.StatusOK, result)
}
