package match

import (
	"strings"
	"unicode"
)

// defaultSkills is the built-in match universe used when the deployment
// does not supply its own vocabulary file.
var defaultSkills = []string{
	"python", "java", "c++", "html", "css", "javascript", "sql", "mongodb", "react", "node",
	"machine learning", "deep learning", "nlp", "data analysis", "data visualization",
	"power bi", "tableau", "excel", "pandas", "numpy", "matplotlib", "seaborn", "tensorflow",
	"keras", "communication", "leadership", "problem solving", "teamwork", "critical thinking",
	"data science", "flask", "django", "git", "github",
}

// Vocabulary is an ordered set of canonical skill terms. Terms are stored
// lowercased with collapsed whitespace; multi-word terms are matched as
// contiguous phrases. A Vocabulary is immutable after construction and
// safe for concurrent use.
type Vocabulary struct {
	terms   []string
	phrases map[string][]string
}

// NewVocabulary builds a Vocabulary from the provided terms. Terms are
// canonicalized and deduplicated preserving first-seen order. An input
// with no usable terms is a configuration problem, not a data problem.
func NewVocabulary(terms []string) (*Vocabulary, error) {
	v := &Vocabulary{phrases: make(map[string][]string, len(terms))}

	for _, term := range terms {
		canonical := Canonical(term)
		if canonical == "" {
			continue
		}
		if _, ok := v.phrases[canonical]; ok {
			continue
		}
		phrase := tokenize(canonical)
		if len(phrase) == 0 {
			continue
		}
		v.terms = append(v.terms, canonical)
		v.phrases[canonical] = phrase
	}

	if len(v.terms) == 0 {
		return nil, &ConfigurationError{Reason: "vocabulary has no usable terms"}
	}

	return v, nil
}

// DefaultVocabulary returns the built-in skill list.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(defaultSkills)
	if err != nil {
		// The built-in list is a compile-time constant.
		panic(err)
	}
	return v
}

// Terms returns the canonical terms in their original order. The returned
// slice is a copy.
func (v *Vocabulary) Terms() []string {
	terms := make([]string, len(v.terms))
	copy(terms, v.terms)
	return terms
}

func (v *Vocabulary) Len() int {
	return len(v.terms)
}

func (v *Vocabulary) phrase(term string) []string {
	return v.phrases[term]
}

// Canonical reduces a term to its internal form: lowercased with
// whitespace runs collapsed to single spaces. All set operations run on
// canonical terms; display formatting is applied only at presentation.
func Canonical(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}

// Display renders a canonical term in title case for presentation
// ("power bi" -> "Power Bi").
func Display(term string) string {
	words := strings.Fields(term)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
