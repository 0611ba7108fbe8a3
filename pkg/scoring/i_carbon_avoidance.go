package scoring

// KeyCarbonAvoidance identifies the carbon avoidance indicator.
const KeyCarbonAvoidance = "carbonAvoidance"

// CarbonAvoidanceIndicator scores claimed avoided CO2 in kilograms per year.
// Confidence is the lowest of the eight indicators: carbon claims are the
// hardest to verify from self-reported data.
type CarbonAvoidanceIndicator struct {
	Confidence float64
}

func (i *CarbonAvoidanceIndicator) Key() string  { return KeyCarbonAvoidance }
func (i *CarbonAvoidanceIndicator) Name() string { return "Carbon avoidance" }

func (i *CarbonAvoidanceIndicator) Evaluate(sub *RawSubmission) IndicatorResult {
	carbonKg := sub.CarbonReductionKg
	if carbonKg == nil || *carbonKg == 0 {
		return IndicatorResult{Score: 0, Confidence: noClaimConfidence}
	}

	var score float64
	switch {
	case *carbonKg > 1000:
		score = 15
	case *carbonKg >= 500:
		score = 11
	case *carbonKg >= 100:
		score = 7
	case *carbonKg > 0:
		score = 3
	}

	return IndicatorResult{Score: score, Confidence: i.Confidence}
}
