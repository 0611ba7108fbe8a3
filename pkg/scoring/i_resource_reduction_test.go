package scoring_test

import (
	"testing"

	"github.com/circulend/circulend/pkg/scoring"
)

func TestResourceReduction_NoClaim(t *testing.T) {
	ind := &scoring.ResourceReductionIndicator{Confidence: 0.85}

	for _, sub := range []*scoring.RawSubmission{
		{},
		{ResourceReductionPercentage: fptr(0)},
	} {
		got := ind.Evaluate(sub)
		if got.Score != 0 || got.Confidence != 0.5 {
			t.Errorf("Evaluate(%v) = %+v, want {0 0.5}", sub.ResourceReductionPercentage, got)
		}
	}
}

func TestResourceReduction_Thresholds(t *testing.T) {
	ind := &scoring.ResourceReductionIndicator{Confidence: 0.85}

	tests := []struct {
		name string
		pct  float64
		want float64
	}{
		{"just above zero", 0.5, 3},
		{"below mid tier", 4.9, 3},
		{"mid tier lower bound inclusive", 5, 7},
		{"upper-mid lower bound inclusive", 15, 11},
		{"top tier boundary exclusive", 25, 11},
		{"just past top boundary", 25.0001, 15},
		{"well above top", 60, 15},
		{"negative claim scores zero", -10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ind.Evaluate(&scoring.RawSubmission{ResourceReductionPercentage: fptr(tc.pct)})
			if got.Score != tc.want {
				t.Errorf("score(%v) = %v, want %v", tc.pct, got.Score, tc.want)
			}
			if got.Confidence != 0.85 {
				t.Errorf("confidence = %v, want 0.85", got.Confidence)
			}
		})
	}
}
