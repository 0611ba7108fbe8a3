package scoring_test

import (
	"testing"

	"github.com/circulend/circulend/pkg/scoring"
)

func TestProcessEfficiency(t *testing.T) {
	ind := &scoring.ProcessEfficiencyIndicator{Confidence: 0.75}

	tests := []struct {
		name        string
		improvement *float64
		wantScore   float64
	}{
		{"absent", nil, 0},
		{"zero", fptr(0), 0},
		{"below first tier", fptr(4), 0},
		{"first tier inclusive", fptr(5), 4},
		{"mid tier inclusive", fptr(15), 7},
		{"top boundary exclusive", fptr(30), 7},
		{"above top boundary", fptr(30.5), 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ind.Evaluate(&scoring.RawSubmission{ProcessEfficiencyImprovement: tc.improvement})
			if got.Score != tc.wantScore {
				t.Errorf("score = %v, want %v", got.Score, tc.wantScore)
			}
		})
	}
}
