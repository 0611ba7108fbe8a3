package scoring

// Anomaly flag messages. Consumers filter on these strings, so they are part
// of the stable surface.
const (
	FlagHighCarbonClaim       = "High carbon reduction claim - verify evidence"
	FlagHighResourceReduction = "Unusually high resource reduction - needs validation"
	FlagInconsistentEvidence  = "High operational score with low documentation - inconsistent"
)

// detectAnomalies inspects the raw inputs and computed indicators for
// suspicious patterns. Every check runs independently; flags never block
// scoring or change any score. Evaluation order fixes flag order.
func detectAnomalies(sub *RawSubmission, indicators map[string]IndicatorResult) []string {
	flags := []string{}

	if sub.CarbonReductionKg != nil && *sub.CarbonReductionKg > 5000 {
		flags = append(flags, FlagHighCarbonClaim)
	}

	if sub.ResourceReductionPercentage != nil && *sub.ResourceReductionPercentage > 50 {
		flags = append(flags, FlagHighResourceReduction)
	}

	if indicators[KeyTransparency].Score < 7 && indicators[KeyResourceReduction].Score > 10 {
		flags = append(flags, FlagInconsistentEvidence)
	}

	return flags
}
