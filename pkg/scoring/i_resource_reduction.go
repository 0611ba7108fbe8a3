package scoring

// KeyResourceReduction identifies the resource reduction indicator.
const KeyResourceReduction = "resourceReduction"

// noClaimConfidence is returned by every indicator when the primary input is
// absent or zero. It reflects moderate confidence in the absence
// determination itself, not zero confidence.
const noClaimConfidence = 0.5

// ResourceReductionIndicator scores the claimed percentage reduction in raw
// material or resource use.
type ResourceReductionIndicator struct {
	Confidence float64
}

func (i *ResourceReductionIndicator) Key() string  { return KeyResourceReduction }
func (i *ResourceReductionIndicator) Name() string { return "Resource reduction" }

func (i *ResourceReductionIndicator) Evaluate(sub *RawSubmission) IndicatorResult {
	pct := sub.ResourceReductionPercentage
	if pct == nil || *pct == 0 {
		return IndicatorResult{Score: 0, Confidence: noClaimConfidence}
	}

	var score float64
	switch {
	case *pct > 25:
		score = 15
	case *pct >= 15:
		score = 11
	case *pct >= 5:
		score = 7
	case *pct > 0:
		score = 3
	}

	return IndicatorResult{Score: score, Confidence: i.Confidence}
}
