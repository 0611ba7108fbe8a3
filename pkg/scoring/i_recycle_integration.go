package scoring

import "strings"

// KeyRecycleIntegration identifies the recycle integration indicator.
const KeyRecycleIntegration = "recycleIntegration"

// RecycleIntegrationIndicator scores how recycling is integrated: not at
// all, through a partner, or in-house.
type RecycleIntegrationIndicator struct {
	Confidence float64
}

var recycleTypeScores = map[string]float64{
	"none":     0,
	"partner":  5,
	"internal": 10,
}

func (i *RecycleIntegrationIndicator) Key() string  { return KeyRecycleIntegration }
func (i *RecycleIntegrationIndicator) Name() string { return "Recycle integration" }

func (i *RecycleIntegrationIndicator) Evaluate(sub *RawSubmission) IndicatorResult {
	if sub.RecycleType == "" {
		return IndicatorResult{Score: 0, Confidence: noClaimConfidence}
	}

	score := recycleTypeScores[strings.ToLower(sub.RecycleType)]
	return IndicatorResult{Score: score, Confidence: i.Confidence}
}
