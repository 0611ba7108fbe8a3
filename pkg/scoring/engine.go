package scoring

import (
	"fmt"
	"math"
)

// Indicator is the interface all indicator scorers implement.
type Indicator interface {
	// Key returns the machine-readable indicator identifier, as used in
	// advisory adjustment maps and persisted column names.
	Key() string
	// Name returns the human-readable indicator name.
	Name() string
	// Evaluate computes the indicator's score and confidence for a submission.
	// It must be pure: no claim in the relevant field yields {0, 0.5}.
	Evaluate(sub *RawSubmission) IndicatorResult
}

// Category membership. Order within each category is the aggregation order.
var (
	operationalKeys = []string{
		KeyResourceReduction,
		KeyReusePractice,
		KeyRecycleIntegration,
		KeyProductDurability,
		KeyProcessEfficiency,
	}
	ethicsKeys = []string{KeyTransparency}
	impactKeys = []string{KeyCarbonAvoidance, KeyLivelihoodImpact}
)

// Engine runs all configured indicators against a submission and produces a
// ScoringResult.
type Engine struct {
	indicators []Indicator
}

// NewEngine creates a scoring engine with the given indicators.
func NewEngine(indicators ...Indicator) *Engine {
	return &Engine{indicators: indicators}
}

// Score evaluates all indicators and produces a complete rule-based result.
// It never fails on missing or malformed metric values; those score zero.
func (e *Engine) Score(sub *RawSubmission) (*ScoringResult, error) {
	if sub == nil {
		return nil, fmt.Errorf("submission is nil")
	}

	indicators := make(map[string]IndicatorResult, len(e.indicators))
	for _, ind := range e.indicators {
		indicators[ind.Key()] = ind.Evaluate(sub)
	}

	operational := sumScores(indicators, operationalKeys)
	ethics := sumScores(indicators, ethicsKeys)
	impact := sumScores(indicators, impactKeys)

	// The total rounds the unrounded category sums; the breakdown rounds
	// each category on its own afterwards.
	total := int(math.Round(operational + ethics + impact))

	result := &ScoringResult{
		TotalScore: total,
		Breakdown: Breakdown{
			OperationalCircularity: int(math.Round(operational)),
			Ethics:                 int(math.Round(ethics)),
			Impact:                 int(math.Round(impact)),
		},
		Indicators:         indicators,
		Flags:              detectAnomalies(sub, indicators),
		Recommendation:     RecommendationFromScore(total),
		AdvisoryConfidence: DefaultAdvisoryConfidence,
		RulesetVersion:     RulesetVersion,
	}
	return result, nil
}

// DefaultAdvisoryConfidence is recorded when the advisory service was not
// consulted or did not respond.
const DefaultAdvisoryConfidence = 0.85

// ApplyAdjustments applies advisory score deltas and flags to a result in
// place. Deltas for unknown indicator keys are ignored. Each adjusted score
// floors at zero; no ceiling is enforced. The total is recomputed from every
// indicator's current score and the recommendation refreshed. The category
// breakdown keeps its pre-advisory values. Advisory flags are appended after
// the existing rule-based flags, preserving order within each group.
func ApplyAdjustments(result *ScoringResult, adjustedScores map[string]float64, flags []string) {
	if result == nil {
		return
	}

	if len(adjustedScores) > 0 {
		for key, delta := range adjustedScores {
			ind, ok := result.Indicators[key]
			if !ok {
				continue
			}
			ind.Score = math.Max(0, ind.Score+delta)
			result.Indicators[key] = ind
		}

		var sum float64
		for _, ind := range result.Indicators {
			sum += ind.Score
		}
		result.TotalScore = int(math.Round(sum))
	}

	result.Flags = append(result.Flags, flags...)
	result.Recommendation = RecommendationFromScore(result.TotalScore)
}

func sumScores(indicators map[string]IndicatorResult, keys []string) float64 {
	var sum float64
	for _, k := range keys {
		sum += indicators[k].Score
	}
	return sum
}
