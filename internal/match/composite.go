package match

import "fmt"

// CompositeScore blends named 0-100 sub-metric values with matching
// weights into a single 0-100 score, rounded to two decimals and clamped.
// Weights are taken as given; the caller is responsible for making them
// sum to 1.0. A weight without a sub-score, or a sub-score without a
// weight, is a caller bug and surfaces as a ConfigurationError.
func CompositeScore(subScores, weights map[string]float64) (float64, error) {
	for name := range weights {
		if _, ok := subScores[name]; !ok {
			return 0, &ConfigurationError{Reason: fmt.Sprintf("weight %q has no matching sub-score", name)}
		}
	}
	for name := range subScores {
		if _, ok := weights[name]; !ok {
			return 0, &ConfigurationError{Reason: fmt.Sprintf("sub-score %q has no matching weight", name)}
		}
	}

	var total float64
	for name, weight := range weights {
		total += weight * subScores[name]
	}

	total = round2(total)
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return total, nil
}
