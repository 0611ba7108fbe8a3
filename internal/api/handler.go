// Package api implements the Circulend REST API.
// It provides submission, scoring, and read endpoints backed by Postgres.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/circulend/circulend/internal/applicant"
	"github.com/circulend/circulend/internal/scores"
	"github.com/circulend/circulend/internal/submission"
)

// Handler is the top-level API handler for the Circulend service.
type Handler struct {
	applicantSvc  *applicant.Service
	submissionSvc *submission.Service
	scoresSvc     *scores.Service
}

// NewHandler creates a new API handler.
func NewHandler(applicantSvc *applicant.Service, submissionSvc *submission.Service, scoresSvc *scores.Service) *Handler {
	return &Handler{
		applicantSvc:  applicantSvc,
		submissionSvc: submissionSvc,
		scoresSvc:     scoresSvc,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Write endpoints
	mux.HandleFunc("POST /api/v1/score", h.handleScore)
	mux.HandleFunc("POST /api/v1/applicants", h.handleCreateApplicant)
	mux.HandleFunc("POST /api/v1/applicants/{applicantID}/submissions", h.handleCreateSubmission)

	// Read endpoints
	mux.HandleFunc("GET /api/v1/applicants", h.handleListApplicants)
	mux.HandleFunc("GET /api/v1/applicants/{applicantID}", h.handleGetApplicant)
	mux.HandleFunc("GET /api/v1/applicants/{applicantID}/submissions", h.handleListSubmissions)
	mux.HandleFunc("GET /api/v1/submissions/{submissionID}", h.handleGetSubmission)
	mux.HandleFunc("GET /api/v1/applicants/{applicantID}/scores", h.handleScoreHistory)
	mux.HandleFunc("GET /api/v1/applicants/{applicantID}/scores/latest", h.handleLatestScore)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
