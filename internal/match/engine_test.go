package match

import (
	"reflect"
	"testing"
)

func mustVocabulary(t *testing.T, terms ...string) *Vocabulary {
	t.Helper()

	vocab, err := NewVocabulary(terms)
	if err != nil {
		t.Fatalf("building vocabulary: %v", err)
	}
	return vocab
}

func TestExtractSkills(t *testing.T) {
	t.Parallel()

	vocab := mustVocabulary(t, "python", "sql", "power bi", "excel")
	doc := Normalize("Experienced analyst skilled in Python and Excel dashboards.")

	got := ExtractSkills(doc, vocab)
	want := []string{"excel", "python"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractSkillsIsSubsetOfVocabulary(t *testing.T) {
	t.Parallel()

	vocab := mustVocabulary(t, "go", "python", "machine learning")
	doc := Normalize("go python machine learning rust haskell")

	terms := map[string]bool{}
	for _, term := range vocab.Terms() {
		terms[term] = true
	}

	for _, skill := range ExtractSkills(doc, vocab) {
		if !terms[skill] {
			t.Fatalf("extracted term %q is not in the vocabulary", skill)
		}
	}
}

func TestExtractSkillsWordBoundary(t *testing.T) {
	t.Parallel()

	vocab := mustVocabulary(t, "java")
	doc := Normalize("JavaScript frontend engineer")

	if got := ExtractSkills(doc, vocab); len(got) != 0 {
		t.Fatalf("expected no matches inside larger words, got %v", got)
	}
}

func TestExtractSkillsDottedSuffixes(t *testing.T) {
	t.Parallel()

	// Resumes conventionally write "Node.js"/"React.js"; the bare terms
	// must still hit, because the dot is a word boundary.
	doc := Normalize("Built APIs with Node.js and React.js")

	got := ExtractSkills(doc, DefaultVocabulary())
	want := []string{"node", "react"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	vocab := mustVocabulary(t, "node.js", "node")
	got = ExtractSkills(doc, vocab)
	want = []string{"node", "node.js"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected compound and segment to both match, got %v", got)
	}
}

func TestExtractSkillsEmptyDocument(t *testing.T) {
	t.Parallel()

	vocab := mustVocabulary(t, "python")

	if got := ExtractSkills(Normalize(""), vocab); len(got) != 0 {
		t.Fatalf("expected empty result for empty document, got %v", got)
	}
}

func TestExtractSkillsFuzzyFallback(t *testing.T) {
	t.Parallel()

	vocab := mustVocabulary(t, "python", "tableau")
	doc := Normalize("expert in pythoon dashboards") // OCR-style typo

	if got := ExtractSkills(doc, vocab); len(got) != 0 {
		t.Fatalf("exact matching should find nothing, got %v", got)
	}

	got := ExtractSkills(doc, vocab, WithFuzzy())
	if !reflect.DeepEqual(got, []string{"python"}) {
		t.Fatalf("expected fuzzy fallback to recover python, got %v", got)
	}
}

func TestExtractSkillsFuzzySkippedWhenExactHits(t *testing.T) {
	t.Parallel()

	vocab := mustVocabulary(t, "python", "sql")
	// "sqll" would fuzzy-match sql, but the exact python hit means the
	// fallback never runs.
	doc := Normalize("python and sqll")

	got := ExtractSkills(doc, vocab, WithFuzzy())
	if !reflect.DeepEqual(got, []string{"python"}) {
		t.Fatalf("expected exact-only result, got %v", got)
	}
}

func TestScoreKeywordOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resume  []string
		jd      []string
		score   float64
		matched []string
		missing []string
	}{
		{
			name:    "half coverage",
			resume:  []string{"python", "excel"},
			jd:      []string{"python", "sql", "power bi", "excel"},
			score:   50.0,
			matched: []string{"excel", "python"},
			missing: []string{"power bi", "sql"},
		},
		{
			name:    "empty resume",
			resume:  nil,
			jd:      []string{"python", "sql"},
			score:   0.0,
			matched: []string{},
			missing: []string{"python", "sql"},
		},
		{
			name:    "empty requirement set scores zero",
			resume:  []string{"python"},
			jd:      nil,
			score:   0.0,
			matched: []string{},
			missing: []string{},
		},
		{
			name:    "identical sets",
			resume:  []string{"go", "sql"},
			jd:      []string{"sql", "go"},
			score:   100.0,
			matched: []string{"go", "sql"},
			missing: []string{},
		},
		{
			name:    "one of three",
			resume:  []string{"go"},
			jd:      []string{"go", "sql", "python"},
			score:   33.33,
			matched: []string{"go"},
			missing: []string{"python", "sql"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, matched, missing := ScoreKeywordOverlap(tt.resume, tt.jd)
			if score != tt.score {
				t.Fatalf("expected score %v, got %v", tt.score, score)
			}
			if !reflect.DeepEqual(matched, tt.matched) {
				t.Fatalf("expected matched %v, got %v", tt.matched, matched)
			}
			if !reflect.DeepEqual(missing, tt.missing) {
				t.Fatalf("expected missing %v, got %v", tt.missing, missing)
			}
		})
	}
}

func TestAnalyzeKeywords(t *testing.T) {
	t.Parallel()

	vocab := mustVocabulary(t, "python", "sql", "power bi", "excel")
	jd := Normalize("Need Python, SQL, Power BI and Excel experience")
	resume := Normalize("Experienced analyst skilled in Python and Excel dashboards.")

	result := AnalyzeKeywords(jd, resume, vocab)

	if result.Score != 50.0 {
		t.Fatalf("expected score 50.0, got %v", result.Score)
	}
	if result.Method != MethodKeywordOverlap {
		t.Fatalf("expected method %q, got %q", MethodKeywordOverlap, result.Method)
	}

	// Matched and missing are disjoint and together cover every
	// vocabulary term found in the job description.
	seen := map[string]bool{}
	for _, term := range result.Matched {
		seen[term] = true
	}
	for _, term := range result.Missing {
		if seen[term] {
			t.Fatalf("term %q appears in both matched and missing", term)
		}
		seen[term] = true
	}

	for _, term := range ExtractSkills(jd, vocab) {
		if !seen[term] {
			t.Fatalf("jd term %q missing from matched+missing union", term)
		}
	}
}

func TestAnalyzeKeywordsFuzzyMethodTag(t *testing.T) {
	t.Parallel()

	vocab := mustVocabulary(t, "python")
	jd := Normalize("python developer wanted")
	resume := Normalize("seasoned pythoon engineer")

	result := AnalyzeKeywords(jd, resume, vocab, WithFuzzy())

	if result.Method != MethodFuzzyKeyword {
		t.Fatalf("expected method %q, got %q", MethodFuzzyKeyword, result.Method)
	}
	if result.Score != 100.0 {
		t.Fatalf("expected fuzzy hit to cover the requirement, got %v", result.Score)
	}
}

func TestCanonicalAndDisplay(t *testing.T) {
	t.Parallel()

	if got := Canonical("  Power   BI "); got != "power bi" {
		t.Fatalf("expected canonical 'power bi', got %q", got)
	}
	if got := Display("power bi"); got != "Power Bi" {
		t.Fatalf("expected display 'Power Bi', got %q", got)
	}
	if got := Display("node.js"); got != "Node.js" {
		t.Fatalf("expected display 'Node.js', got %q", got)
	}
}
