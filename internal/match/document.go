package match

import (
	"strings"
	"unicode"
)

// Document is an immutable, normalized view over a single piece of input
// text (a resume or a job description). Normalization lowercases the text
// and collapses whitespace runs; tokenization keeps characters that are
// significant in technology names ("c++", "c#", "node.js") as part of the
// token.
type Document struct {
	Raw        string
	Normalized string
	Tokens     []string

	tokenSet map[string]bool
}

// Normalize builds a Document from arbitrary text. Empty or unreadable
// input yields a Document with empty normalized text and no tokens; it
// never fails. Normalizing an already normalized text is a no-op.
func Normalize(text string) Document {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	tokens := tokenize(normalized)

	// The token set indexes dotted compounds both whole and by their
	// dot-separated segments: a dot joins a compound name but is still a
	// word boundary, so "node.js" answers for "node.js", "node" and "js".
	set := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		set[token] = true
		if !strings.Contains(token, ".") {
			continue
		}
		for _, segment := range strings.Split(token, ".") {
			if segment != "" {
				set[segment] = true
			}
		}
	}

	return Document{
		Raw:        text,
		Normalized: normalized,
		Tokens:     tokens,
		tokenSet:   set,
	}
}

// Empty reports whether the document carries no usable text.
func (d Document) Empty() bool {
	return d.Normalized == ""
}

// HasToken reports whether the token occurs in the document as a whole
// word. A dotted compound counts as an occurrence of each of its
// segments, so "node" is present in a document containing "node.js".
func (d Document) HasToken(token string) bool {
	return d.tokenSet[token]
}

// HasPhrase reports whether the phrase occurs in the document as a
// contiguous run of whole tokens. Matching on token boundaries gives
// word-boundary semantics: the phrase ["java"] does not match a document
// containing only "javascript".
func (d Document) HasPhrase(phrase []string) bool {
	if len(phrase) == 0 {
		return false
	}
	if len(phrase) == 1 {
		return d.tokenSet[phrase[0]]
	}

outer:
	for i := 0; i+len(phrase) <= len(d.Tokens); i++ {
		for j, word := range phrase {
			if d.Tokens[i+j] != word {
				continue outer
			}
		}
		return true
	}

	return false
}

// tokenize splits normalized text into word tokens. Letters, digits, '+',
// '#' and inner dots count as word characters so that terms like "c++",
// "c#" and "node.js" survive as single tokens. Trailing dots are
// sentence punctuation and are stripped.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		token := strings.Trim(word.String(), ".")
		word.Reset()
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}
