package scoring

// DefaultConfidences holds the fixed rule-based confidence constant for each
// indicator. These are certainty weights for the rule table itself, not
// statistical measures, and they only change with a ruleset version bump.
type DefaultConfidences struct {
	ResourceReduction  float64
	ReusePractice      float64
	RecycleIntegration float64
	ProductDurability  float64
	ProcessEfficiency  float64
	Transparency       float64
	CarbonAvoidance    float64
	LivelihoodImpact   float64
}

// Defaults returns the ruleset v1 confidence constants.
func Defaults() DefaultConfidences {
	return DefaultConfidences{
		ResourceReduction:  0.85,
		ReusePractice:      0.90,
		RecycleIntegration: 0.85,
		ProductDurability:  0.80,
		ProcessEfficiency:  0.75,
		Transparency:       0.90,
		CarbonAvoidance:    0.70,
		LivelihoodImpact:   0.85,
	}
}

// DefaultIndicators returns the standard set of eight indicator scorers with
// default confidences.
func DefaultIndicators() []Indicator {
	c := Defaults()
	return []Indicator{
		&ResourceReductionIndicator{Confidence: c.ResourceReduction},
		&ReusePracticeIndicator{Confidence: c.ReusePractice},
		&RecycleIntegrationIndicator{Confidence: c.RecycleIntegration},
		&ProductDurabilityIndicator{Confidence: c.ProductDurability},
		&ProcessEfficiencyIndicator{Confidence: c.ProcessEfficiency},
		&TransparencyIndicator{Confidence: c.Transparency},
		&CarbonAvoidanceIndicator{Confidence: c.CarbonAvoidance},
		&LivelihoodImpactIndicator{Confidence: c.LivelihoodImpact},
	}
}
