package fuzzy

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"python", "", 6},
		{"", "sql", 3},
		{"python", "python", 0},
		{"python", "pythons", 1},
		{"python", "pythoon", 1},
		{"kitten", "sitting", 3},
		{"java", "javascript", 6},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Fatalf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatio(t *testing.T) {
	t.Parallel()

	if got := Ratio("python", "python"); got != 100 {
		t.Fatalf("identical strings must score 100, got %v", got)
	}
	if got := Ratio("", ""); got != 100 {
		t.Fatalf("two empty strings are identical, got %v", got)
	}
	if got := Ratio("python", ""); got != 0 {
		t.Fatalf("empty vs non-empty must score 0, got %v", got)
	}

	// One edit over seven runes. Constant arithmetic is evaluated at
	// arbitrary precision, so compare within an epsilon.
	got := Ratio("python", "pythoon")
	want := 100 * (1 - 1.0/7)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPartialRatio(t *testing.T) {
	t.Parallel()

	if got := PartialRatio("python", "expert python developer"); got != 100 {
		t.Fatalf("embedded exact term must score 100, got %v", got)
	}

	if got := PartialRatio("python", "expert in pythoon dashboards"); got < 80 {
		t.Fatalf("near-miss window should clear 80, got %v", got)
	}

	if got := PartialRatio("tableau", "unrelated words entirely"); got >= 80 {
		t.Fatalf("unrelated text must stay below the threshold, got %v", got)
	}

	if got := PartialRatio("", "text"); got != 0 {
		t.Fatalf("empty needle scores 0, got %v", got)
	}
}
