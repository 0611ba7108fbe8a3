package scoring

// KeyProcessEfficiency identifies the process efficiency indicator.
const KeyProcessEfficiency = "processEfficiency"

// ProcessEfficiencyIndicator scores the claimed percentage improvement in
// process efficiency.
type ProcessEfficiencyIndicator struct {
	Confidence float64
}

func (i *ProcessEfficiencyIndicator) Key() string  { return KeyProcessEfficiency }
func (i *ProcessEfficiencyIndicator) Name() string { return "Process efficiency" }

func (i *ProcessEfficiencyIndicator) Evaluate(sub *RawSubmission) IndicatorResult {
	improvement := sub.ProcessEfficiencyImprovement
	if improvement == nil || *improvement == 0 {
		return IndicatorResult{Score: 0, Confidence: noClaimConfidence}
	}

	var score float64
	switch {
	case *improvement > 30:
		score = 10
	case *improvement >= 15:
		score = 7
	case *improvement >= 5:
		score = 4
	}

	return IndicatorResult{Score: score, Confidence: i.Confidence}
}
