package api

import (
	"net/http"

	"github.com/circulend/circulend/internal/scores"
	"github.com/circulend/circulend/pkg/scoring"
)

type scoreResponse struct {
	ID                 string                             `json:"id"`
	SubmissionID       string                             `json:"submissionId"`
	ApplicantID        string                             `json:"applicantId"`
	TotalScore         int                                `json:"totalScore"`
	Breakdown          scoring.Breakdown                  `json:"breakdown"`
	Indicators         map[string]scoring.IndicatorResult `json:"indicators"`
	AdvisoryConfidence float64                            `json:"advisoryConfidence"`
	Flags              []string                           `json:"flags"`
	Recommendation     string                             `json:"recommendation"`
	RulesetVersion     string                             `json:"rulesetVersion"`
	ScoredAt           string                             `json:"scoredAt"`
}

func recordToResponse(rec *scores.Record) scoreResponse {
	flags := rec.Flags
	if flags == nil {
		flags = []string{}
	}
	return scoreResponse{
		ID:           rec.ID,
		SubmissionID: rec.SubmissionID,
		ApplicantID:  rec.ApplicantID,
		TotalScore:   rec.TotalScore,
		Breakdown: scoring.Breakdown{
			OperationalCircularity: rec.OperationalCircularityScore,
			Ethics:                 rec.EthicsScore,
			Impact:                 rec.ImpactScore,
		},
		Indicators: map[string]scoring.IndicatorResult{
			scoring.KeyResourceReduction:  {Score: rec.ResourceReductionScore, Confidence: rec.ResourceReductionConfidence},
			scoring.KeyReusePractice:      {Score: rec.ReusePracticeScore, Confidence: rec.ReusePracticeConfidence},
			scoring.KeyRecycleIntegration: {Score: rec.RecycleIntegrationScore, Confidence: rec.RecycleIntegrationConfidence},
			scoring.KeyProductDurability:  {Score: rec.ProductDurabilityScore, Confidence: rec.ProductDurabilityConfidence},
			scoring.KeyProcessEfficiency:  {Score: rec.ProcessEfficiencyScore, Confidence: rec.ProcessEfficiencyConfidence},
			scoring.KeyTransparency:       {Score: rec.TransparencyScore, Confidence: rec.TransparencyConfidence},
			scoring.KeyCarbonAvoidance:    {Score: rec.CarbonAvoidanceScore, Confidence: rec.CarbonAvoidanceConfidence},
			scoring.KeyLivelihoodImpact:   {Score: rec.LivelihoodImpactScore, Confidence: rec.LivelihoodImpactConfidence},
		},
		AdvisoryConfidence: rec.AdvisoryConfidence,
		Flags:              flags,
		Recommendation:     rec.Recommendation,
		RulesetVersion:     rec.RulesetVersion,
		ScoredAt:           rec.ScoredAt.Format("2006-01-02T15:04:05Z"),
	}
}

func (h *Handler) handleScoreHistory(w http.ResponseWriter, r *http.Request) {
	applicantID := r.PathValue("applicantID")

	records, err := h.scoresSvc.History(r.Context(), applicantID)
	if err != nil {
		writeJSON(w, http.StatusOK, []scoreResponse{})
		return
	}

	var result []scoreResponse
	for i := range records {
		result = append(result, recordToResponse(&records[i]))
	}

	if result == nil {
		result = []scoreResponse{}
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleLatestScore(w http.ResponseWriter, r *http.Request) {
	applicantID := r.PathValue("applicantID")

	rec, err := h.scoresSvc.Latest(r.Context(), applicantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to query latest score")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "applicant has no scores")
		return
	}

	writeJSON(w, http.StatusOK, recordToResponse(rec))
}
