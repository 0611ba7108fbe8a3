package scoring

import "strings"

// KeyReusePractice identifies the reuse practice indicator.
const KeyReusePractice = "reusePractice"

// ReusePracticeIndicator scores how routinely materials or products are
// reused in the applicant's operation.
type ReusePracticeIndicator struct {
	Confidence float64
}

var reuseFrequencyScores = map[string]float64{
	"none":       0,
	"occasional": 5,
	"regular":    10,
	"systematic": 15,
}

func (i *ReusePracticeIndicator) Key() string  { return KeyReusePractice }
func (i *ReusePracticeIndicator) Name() string { return "Reuse practice" }

func (i *ReusePracticeIndicator) Evaluate(sub *RawSubmission) IndicatorResult {
	if sub.ReuseFrequency == "" {
		return IndicatorResult{Score: 0, Confidence: noClaimConfidence}
	}

	// Unknown strings score zero but keep the claim confidence: the
	// applicant made a claim, it just matched no tier.
	score := reuseFrequencyScores[strings.ToLower(sub.ReuseFrequency)]
	return IndicatorResult{Score: score, Confidence: i.Confidence}
}
