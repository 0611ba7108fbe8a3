// Package scoring implements the Circulend circular-readiness scoring engine.
// It evaluates applicant-reported practice metrics against a fixed rule table
// and produces explainable, confidence-weighted scores.
package scoring

// RulesetVersion identifies the rule table and tier boundaries in effect.
// Bump it whenever indicator thresholds or recommendation tiers change so
// downstream consumers can tell score vintages apart.
const RulesetVersion = "v1"

// RawSubmission holds the applicant-reported metrics for one scoring cycle.
// Every field is optional; absence means "not reported" and scores zero with
// default confidence. The *Details fields are free-text evidence notes passed
// through to the advisory service; they never affect rule-based scoring.
type RawSubmission struct {
	ResourceReductionPercentage  *float64 `json:"resourceReductionPercentage,omitempty"`
	ResourceReductionDetails     string   `json:"resourceReductionDetails,omitempty"`
	ReuseFrequency               string   `json:"reuseFrequency,omitempty"` // none|occasional|regular|systematic
	ReuseDetails                 string   `json:"reuseDetails,omitempty"`
	RecycleType                  string   `json:"recycleType,omitempty"` // none|partner|internal
	RecycleDetails               string   `json:"recycleDetails,omitempty"`
	ProductLifespanYears         *float64 `json:"productLifespanYears,omitempty"`
	ProductRepairability         bool     `json:"productRepairability,omitempty"`
	ProductDetails               string   `json:"productDetails,omitempty"`
	ProcessEfficiencyImprovement *float64 `json:"processEfficiencyImprovement,omitempty"`
	ProcessDetails               string   `json:"processDetails,omitempty"`
	DocumentationLevel           string   `json:"documentationLevel,omitempty"` // minimal|basic|comprehensive|full
	TraceabilitySystem           bool     `json:"traceabilitySystem,omitempty"`
	CarbonReductionKg            *float64 `json:"carbonReductionKg,omitempty"`
	CarbonCalculationMethod      string   `json:"carbonCalculationMethod,omitempty"`
	LocalEmployees               *int     `json:"localEmployees,omitempty"`
	IncomeStability              string   `json:"incomeStability,omitempty"` // unstable|moderate|stable
}

// IndicatorResult is the output of a single indicator scorer.
type IndicatorResult struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"` // fixed per-indicator constant; 0.5 when no claim was made
}

// Breakdown groups indicator scores into the three reporting categories.
// Each subtotal is rounded independently of the total, so the three values
// may not sum exactly to TotalScore. The discrepancy is cosmetic and display
// code depends on it staying small; do not reconcile here.
type Breakdown struct {
	OperationalCircularity int `json:"operationalCircularity"`
	Ethics                 int `json:"ethics"`
	Impact                 int `json:"impact"`
}

// ScoringResult is the complete output of one scoring run.
type ScoringResult struct {
	TotalScore         int                        `json:"totalScore"`
	Breakdown          Breakdown                  `json:"breakdown"`
	Indicators         map[string]IndicatorResult `json:"indicators"`
	Flags              []string                   `json:"flags"` // rule-based flags first, advisory flags appended after
	Recommendation     string                     `json:"recommendation"`
	AdvisoryConfidence float64                    `json:"advisoryConfidence"` // persisted and logged only, never enters score math
	RulesetVersion     string                     `json:"rulesetVersion"`
}

// Recommendation tier labels, lender-facing. Stable within a ruleset version.
const (
	TierHighPotential = "High Circular Potential"
	TierReady         = "Ready"
	TierDeveloping    = "Developing"
	TierLowReadiness  = "Low Readiness"
)

// RecommendationFromScore maps a total score to its recommendation tier.
// Boundaries are inclusive-lower.
func RecommendationFromScore(total int) string {
	switch {
	case total >= 80:
		return TierHighPotential
	case total >= 60:
		return TierReady
	case total >= 40:
		return TierDeveloping
	default:
		return TierLowReadiness
	}
}
