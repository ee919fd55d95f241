package match

import (
	"math"
	"sort"

	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/fuzzy"
)

// DefaultFuzzyThreshold is the minimum partial-ratio score (0-100) for a
// vocabulary term to count as a fuzzy hit.
const DefaultFuzzyThreshold = 80

type extractConfig struct {
	fuzzy          bool
	fuzzyThreshold float64
}

// ExtractOption configures skill extraction.
type ExtractOption func(*extractConfig)

// WithFuzzy enables the fuzzy fallback used when exact matching finds no
// hits at all, tolerating minor spelling or OCR variation.
func WithFuzzy() ExtractOption {
	return func(cfg *extractConfig) {
		cfg.fuzzy = true
	}
}

// WithFuzzyThreshold sets the fuzzy acceptance threshold (0-100).
func WithFuzzyThreshold(threshold float64) ExtractOption {
	return func(cfg *extractConfig) {
		cfg.fuzzyThreshold = threshold
	}
}

// ExtractSkills returns the vocabulary terms present in the document.
// Exact matching uses whole-word and whole-phrase semantics: a term never
// matches inside a larger word, so "java" does not hit "javascript".
// When exact matching yields nothing for the entire vocabulary and the
// fuzzy option is set, a Levenshtein partial-ratio pass runs per term.
// The result is a sorted set of canonical terms, always a subset of the
// vocabulary. An empty document yields an empty set.
func ExtractSkills(doc Document, vocab *Vocabulary, opts ...ExtractOption) []string {
	skills, _ := extractSkills(doc, vocab, opts...)
	return skills
}

func extractSkills(doc Document, vocab *Vocabulary, opts ...ExtractOption) ([]string, bool) {
	cfg := extractConfig{fuzzyThreshold: DefaultFuzzyThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	if doc.Empty() || vocab == nil {
		return []string{}, false
	}

	found := make([]string, 0, vocab.Len())
	for _, term := range vocab.terms {
		if doc.HasPhrase(vocab.phrase(term)) {
			found = append(found, term)
		}
	}

	if len(found) > 0 || !cfg.fuzzy {
		sort.Strings(found)
		return found, false
	}

	for _, term := range vocab.terms {
		if fuzzy.PartialRatio(term, doc.Normalized) >= cfg.fuzzyThreshold {
			found = append(found, term)
		}
	}

	sort.Strings(found)
	return found, len(found) > 0
}

// ScoreKeywordOverlap computes the coverage of jdSkills by resumeSkills.
// The score is 100*|matched|/|jdSkills|, or 0.0 when jdSkills is empty:
// an empty requirement set yields zero, not a perfect match. Matched and
// missing come back sorted. Pure and deterministic.
func ScoreKeywordOverlap(resumeSkills, jdSkills []string) (float64, []string, []string) {
	resume := toSet(resumeSkills)
	jd := toSet(jdSkills)

	matched := make([]string, 0, len(jd))
	missing := make([]string, 0, len(jd))
	for term := range jd {
		if resume[term] {
			matched = append(matched, term)
		} else {
			missing = append(missing, term)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)

	if len(jd) == 0 {
		return 0.0, matched, missing
	}

	score := round2(100 * float64(len(matched)) / float64(len(jd)))
	return score, matched, missing
}

// AnalyzeKeywords extracts vocabulary terms from both documents and
// scores how well the resume covers the terms required by the job
// description. The result's Method reflects whether the fuzzy fallback
// fired for either document.
func AnalyzeKeywords(jd, resume Document, vocab *Vocabulary, opts ...ExtractOption) Result {
	jdSkills, jdFuzzy := extractSkills(jd, vocab, opts...)
	resumeSkills, resumeFuzzy := extractSkills(resume, vocab, opts...)

	score, matched, missing := ScoreKeywordOverlap(resumeSkills, jdSkills)

	method := MethodKeywordOverlap
	if jdFuzzy || resumeFuzzy {
		method = MethodFuzzyKeyword
	}

	return Result{
		Score:   score,
		Matched: matched,
		Missing: missing,
		Method:  method,
	}
}

// AnalyzeTFIDF scores the two documents in a shared TF-IDF vector space.
// Term diagnostics do not apply to the vector-space method, so Matched
// and Missing stay empty.
func AnalyzeTFIDF(jd, resume Document) Result {
	return Result{
		Score:   ScoreTFIDFSimilarity(jd.Normalized, resume.Normalized),
		Matched: []string{},
		Missing: []string{},
		Method:  MethodTFIDFCosine,
	}
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		canonical := Canonical(term)
		if canonical != "" {
			set[canonical] = true
		}
	}
	return set
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
