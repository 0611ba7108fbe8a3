package scoring_test

import (
	"testing"

	"github.com/circulend/circulend/pkg/scoring"
)

func TestTransparency(t *testing.T) {
	ind := &scoring.TransparencyIndicator{Confidence: 0.9}

	tests := []struct {
		name         string
		level        string
		traceability bool
		wantScore    float64
	}{
		{"absent", "", false, 0},
		{"minimal", "minimal", false, 3},
		{"basic", "basic", false, 7},
		{"comprehensive", "comprehensive", false, 12},
		{"full", "full", false, 15},
		{"minimal with traceability bonus", "minimal", true, 6},
		{"comprehensive with traceability capped", "comprehensive", true, 15},
		{"full with traceability no change", "full", true, 15},
		{"unknown level with traceability", "partial", true, 3},
		{"case insensitive", "Full", false, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ind.Evaluate(&scoring.RawSubmission{
				DocumentationLevel: tc.level,
				TraceabilitySystem: tc.traceability,
			})
			if got.Score != tc.wantScore {
				t.Errorf("score(%q, trace=%v) = %v, want %v", tc.level, tc.traceability, got.Score, tc.wantScore)
			}
		})
	}
}
