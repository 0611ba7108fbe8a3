package scoring

// KeyLivelihoodImpact identifies the livelihood impact indicator.
const KeyLivelihoodImpact = "livelihoodImpact"

// LivelihoodImpactIndicator scores local employment combined with income
// stability. The top tier requires more than five employees and stable
// incomes; smaller teams score on headcount alone.
type LivelihoodImpactIndicator struct {
	Confidence float64
}

func (i *LivelihoodImpactIndicator) Key() string  { return KeyLivelihoodImpact }
func (i *LivelihoodImpactIndicator) Name() string { return "Livelihood impact" }

func (i *LivelihoodImpactIndicator) Evaluate(sub *RawSubmission) IndicatorResult {
	employees := sub.LocalEmployees
	if employees == nil || *employees == 0 {
		return IndicatorResult{Score: 0, Confidence: noClaimConfidence}
	}

	var score float64
	switch {
	case *employees > 5 && sub.IncomeStability == "stable":
		score = 10
	case *employees >= 3 && *employees <= 5:
		score = 6
	case *employees >= 1 && *employees <= 2:
		score = 3
	}

	return IndicatorResult{Score: score, Confidence: i.Confidence}
}
