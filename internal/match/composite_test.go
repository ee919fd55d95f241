package match

import (
	"errors"
	"testing"
)

func TestCompositeScore(t *testing.T) {
	t.Parallel()

	score, err := CompositeScore(
		map[string]float64{MethodKeywordOverlap: 80, MethodTFIDFCosine: 40},
		map[string]float64{MethodKeywordOverlap: 0.5, MethodTFIDFCosine: 0.5},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 60.0 {
		t.Fatalf("expected 60.0, got %v", score)
	}
}

func TestCompositeScoreClamps(t *testing.T) {
	t.Parallel()

	// Caller-supplied weights are not renormalized, so an overweight
	// blend clamps at the scale boundary.
	score, err := CompositeScore(
		map[string]float64{"skill": 80},
		map[string]float64{"skill": 2.0},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 100.0 {
		t.Fatalf("expected clamp to 100.0, got %v", score)
	}

	score, err = CompositeScore(
		map[string]float64{"skill": 50},
		map[string]float64{"skill": -1.0},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0.0 {
		t.Fatalf("expected clamp to 0.0, got %v", score)
	}
}

func TestCompositeScoreKeyMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		subs    map[string]float64
		weights map[string]float64
	}{
		{
			name:    "weight without sub-score",
			subs:    map[string]float64{"skill": 50},
			weights: map[string]float64{"skill": 0.5, "length": 0.5},
		},
		{
			name:    "sub-score without weight",
			subs:    map[string]float64{"skill": 50, "length": 70},
			weights: map[string]float64{"skill": 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := CompositeScore(tt.subs, tt.weights)
			if err == nil {
				t.Fatalf("expected an error")
			}

			var confErr *ConfigurationError
			if !errors.As(err, &confErr) {
				t.Fatalf("expected a ConfigurationError, got %T", err)
			}
		})
	}
}
