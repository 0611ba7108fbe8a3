package scoring_test

import (
	"reflect"
	"testing"

	"github.com/circulend/circulend/pkg/scoring"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// fullSubmission claims the top tier of every indicator; the rule-based
// total is 15+15+10+10+10+15+15+10 = 100.
func fullSubmission() *scoring.RawSubmission {
	return &scoring.RawSubmission{
		ResourceReductionPercentage:  fptr(30),
		ReuseFrequency:               "systematic",
		RecycleType:                  "internal",
		ProductLifespanYears:         fptr(4),
		ProductRepairability:         true,
		ProcessEfficiencyImprovement: fptr(35),
		DocumentationLevel:           "full",
		TraceabilitySystem:           true,
		CarbonReductionKg:            fptr(1200),
		LocalEmployees:               iptr(8),
		IncomeStability:              "stable",
	}
}

func TestEngine_NilSubmission(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultIndicators()...)
	if _, err := engine.Score(nil); err == nil {
		t.Error("expected error for nil submission")
	}
}

func TestEngine_EmptySubmission(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultIndicators()...)

	result, err := engine.Score(&scoring.RawSubmission{})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if result.TotalScore != 0 {
		t.Errorf("total = %d, want 0", result.TotalScore)
	}
	if len(result.Indicators) != 8 {
		t.Fatalf("indicators = %d, want 8", len(result.Indicators))
	}
	for key, ind := range result.Indicators {
		if ind.Score != 0 || ind.Confidence != 0.5 {
			t.Errorf("%s = %+v, want {0 0.5}", key, ind)
		}
	}
	if result.Recommendation != scoring.TierLowReadiness {
		t.Errorf("recommendation = %q, want %q", result.Recommendation, scoring.TierLowReadiness)
	}
	if len(result.Flags) != 0 {
		t.Errorf("flags = %v, want none", result.Flags)
	}
	if result.RulesetVersion != scoring.RulesetVersion {
		t.Errorf("ruleset version = %q, want %q", result.RulesetVersion, scoring.RulesetVersion)
	}
}

func TestEngine_FullSubmission(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultIndicators()...)

	result, err := engine.Score(fullSubmission())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if result.TotalScore != 100 {
		t.Errorf("total = %d, want 100", result.TotalScore)
	}
	if result.Breakdown.OperationalCircularity != 60 {
		t.Errorf("operational = %d, want 60", result.Breakdown.OperationalCircularity)
	}
	if result.Breakdown.Ethics != 15 {
		t.Errorf("ethics = %d, want 15", result.Breakdown.Ethics)
	}
	if result.Breakdown.Impact != 25 {
		t.Errorf("impact = %d, want 25", result.Breakdown.Impact)
	}
	if len(result.Flags) != 0 {
		t.Errorf("flags = %v, want none", result.Flags)
	}
	if result.Recommendation != scoring.TierHighPotential {
		t.Errorf("recommendation = %q, want %q", result.Recommendation, scoring.TierHighPotential)
	}
}

func TestEngine_Idempotent(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultIndicators()...)
	sub := fullSubmission()

	first, err := engine.Score(sub)
	if err != nil {
		t.Fatalf("first Score: %v", err)
	}
	second, err := engine.Score(sub)
	if err != nil {
		t.Fatalf("second Score: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scoring differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestRecommendationTiers(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{0, scoring.TierLowReadiness},
		{39, scoring.TierLowReadiness},
		{40, scoring.TierDeveloping},
		{59, scoring.TierDeveloping},
		{60, scoring.TierReady},
		{79, scoring.TierReady},
		{80, scoring.TierHighPotential},
		{100, scoring.TierHighPotential},
	}

	for _, tc := range tests {
		if got := scoring.RecommendationFromScore(tc.total); got != tc.want {
			t.Errorf("RecommendationFromScore(%d) = %q, want %q", tc.total, got, tc.want)
		}
	}
}

// Tier order for monotonicity checks.
var tierRank = map[string]int{
	scoring.TierLowReadiness:  0,
	scoring.TierDeveloping:    1,
	scoring.TierReady:         2,
	scoring.TierHighPotential: 3,
}

func TestRecommendationMonotonic(t *testing.T) {
	prev := -1
	for total := 0; total <= 100; total++ {
		rank, ok := tierRank[scoring.RecommendationFromScore(total)]
		if !ok {
			t.Fatalf("unknown tier at total %d", total)
		}
		if rank < prev {
			t.Errorf("tier rank decreased at total %d", total)
		}
		prev = rank
	}
}

func TestApplyAdjustments_NegativeDelta(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultIndicators()...)

	// Base resourceReduction score of 7.
	result, err := engine.Score(&scoring.RawSubmission{ResourceReductionPercentage: fptr(10)})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	scoring.ApplyAdjustments(result, map[string]float64{scoring.KeyResourceReduction: -5}, nil)

	if got := result.Indicators[scoring.KeyResourceReduction].Score; got != 2 {
		t.Errorf("adjusted score = %v, want 2", got)
	}
	if result.TotalScore != 2 {
		t.Errorf("total = %d, want 2", result.TotalScore)
	}
}

func TestApplyAdjustments_FloorsAtZero(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultIndicators()...)

	result, err := engine.Score(&scoring.RawSubmission{ResourceReductionPercentage: fptr(10)})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	scoring.ApplyAdjustments(result, map[string]float64{scoring.KeyResourceReduction: -50}, nil)

	if got := result.Indicators[scoring.KeyResourceReduction].Score; got != 0 {
		t.Errorf("adjusted score = %v, want 0", got)
	}
}

func TestApplyAdjustments_UnknownKeyIgnored(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultIndicators()...)

	result, err := engine.Score(fullSubmission())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	scoring.ApplyAdjustments(result, map[string]float64{"wasteReduction": -10}, nil)

	if result.TotalScore != 100 {
		t.Errorf("total = %d, want 100 after unknown-key adjustment", result.TotalScore)
	}
}

func TestApplyAdjustments_FlagsAppendedAfterRuleFlags(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultIndicators()...)

	result, err := engine.Score(&scoring.RawSubmission{CarbonReductionKg: fptr(6000)})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	scoring.ApplyAdjustments(result, nil, []string{"Unusually high carbon reduction claim"})

	want := []string{
		scoring.FlagHighCarbonClaim,
		"Unusually high carbon reduction claim",
	}
	if !reflect.DeepEqual(result.Flags, want) {
		t.Errorf("flags = %v, want %v", result.Flags, want)
	}
}

func TestApplyAdjustments_RefreshesRecommendation(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultIndicators()...)

	result, err := engine.Score(fullSubmission())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	// Push the total from 100 down below the Ready boundary.
	scoring.ApplyAdjustments(result, map[string]float64{
		scoring.KeyResourceReduction: -15,
		scoring.KeyReusePractice:     -15,
		scoring.KeyTransparency:      -15,
	}, nil)

	if result.TotalScore != 55 {
		t.Errorf("total = %d, want 55", result.TotalScore)
	}
	if result.Recommendation != scoring.TierDeveloping {
		t.Errorf("recommendation = %q, want %q", result.Recommendation, scoring.TierDeveloping)
	}
	// Breakdown keeps its pre-advisory values; only the total moves.
	if result.Breakdown.OperationalCircularity != 60 {
		t.Errorf("operational = %d, want pre-advisory 60", result.Breakdown.OperationalCircularity)
	}
}
