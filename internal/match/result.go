package match

// Method tags identify which scoring strategy produced a Result.
const (
	MethodKeywordOverlap = "keyword-overlap"
	MethodFuzzyKeyword   = "fuzzy-keyword"
	MethodTFIDFCosine    = "tfidf-cosine"
)

// Result is the outcome of matching one resume against one job
// description. Matched and Missing are disjoint sorted sets of canonical
// vocabulary terms; their union covers every vocabulary term found in the
// job description.
type Result struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched_terms"`
	Missing []string `json:"missing_terms"`
	Method  string   `json:"method"`
}

// DisplayMatched returns the matched terms in presentation form.
func (r Result) DisplayMatched() []string {
	return displayAll(r.Matched)
}

// DisplayMissing returns the missing terms in presentation form.
func (r Result) DisplayMissing() []string {
	return displayAll(r.Missing)
}

func displayAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, term := range terms {
		out[i] = Display(term)
	}
	return out
}
