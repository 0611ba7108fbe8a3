package scoring_test

import (
	"testing"

	"github.com/circulend/circulend/pkg/scoring"
)

func TestProductDurability(t *testing.T) {
	ind := &scoring.ProductDurabilityIndicator{Confidence: 0.8}

	tests := []struct {
		name       string
		lifespan   *float64
		repairable bool
		wantScore  float64
	}{
		{"absent", nil, true, 0},
		{"zero lifespan", fptr(0), true, 0},
		{"durable and repairable", fptr(4), true, 10},
		{"durable but not repairable", fptr(4), false, 0},
		{"exactly three years repairable stays mid tier", fptr(3), true, 6},
		{"one year", fptr(1), false, 6},
		{"under a year", fptr(0.5), false, 3},
		{"negative lifespan", fptr(-1), true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ind.Evaluate(&scoring.RawSubmission{
				ProductLifespanYears: tc.lifespan,
				ProductRepairability: tc.repairable,
			})
			if got.Score != tc.wantScore {
				t.Errorf("score = %v, want %v", got.Score, tc.wantScore)
			}
		})
	}

	// Confidence constant applies whenever a lifespan was claimed.
	got := ind.Evaluate(&scoring.RawSubmission{ProductLifespanYears: fptr(2)})
	if got.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", got.Confidence)
	}
}
