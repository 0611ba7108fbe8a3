package scoring

import "strings"

// KeyTransparency identifies the transparency indicator.
const KeyTransparency = "transparency"

// TransparencyIndicator scores the documentation level, with a bonus for
// running a traceability system, capped at the full-documentation score.
type TransparencyIndicator struct {
	Confidence float64
}

var documentationLevelScores = map[string]float64{
	"minimal":       3,
	"basic":         7,
	"comprehensive": 12,
	"full":          15,
}

func (i *TransparencyIndicator) Key() string  { return KeyTransparency }
func (i *TransparencyIndicator) Name() string { return "Transparency" }

func (i *TransparencyIndicator) Evaluate(sub *RawSubmission) IndicatorResult {
	if sub.DocumentationLevel == "" {
		return IndicatorResult{Score: 0, Confidence: noClaimConfidence}
	}

	score := documentationLevelScores[strings.ToLower(sub.DocumentationLevel)]
	if sub.TraceabilitySystem && score < 15 {
		score = score + 3
		if score > 15 {
			score = 15
		}
	}

	return IndicatorResult{Score: score, Confidence: i.Confidence}
}
