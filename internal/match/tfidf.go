package match

import "math"

// ScoreTFIDFSimilarity builds a TF-IDF vector space over exactly the two
// input texts, stopword-filtered, and returns the cosine similarity of
// the two vectors scaled to 0-100 and rounded to two decimals.
//
// Weighting follows the common smoothed formulation over the two-document
// corpus: idf(t) = ln((1+N)/(1+df(t))) + 1 with N = 2, vectors
// L2-normalized, so identical texts score 100. Degenerate input (empty,
// whitespace-only, or nothing left after stopword removal) scores 0.0
// rather than faulting on an empty vector space.
func ScoreTFIDFSimilarity(jdText, resumeText string) float64 {
	jdFreq := termFrequencies(jdText)
	resumeFreq := termFrequencies(resumeText)

	if len(jdFreq) == 0 || len(resumeFreq) == 0 {
		return 0.0
	}

	const docCount = 2.0
	idf := func(term string) float64 {
		df := 0.0
		if jdFreq[term] > 0 {
			df++
		}
		if resumeFreq[term] > 0 {
			df++
		}
		return math.Log((1+docCount)/(1+df)) + 1
	}

	var dot, jdNorm, resumeNorm float64
	seen := make(map[string]bool, len(jdFreq)+len(resumeFreq))
	for _, freq := range []map[string]int{jdFreq, resumeFreq} {
		for term := range freq {
			if seen[term] {
				continue
			}
			seen[term] = true

			weight := idf(term)
			jdWeight := float64(jdFreq[term]) * weight
			resumeWeight := float64(resumeFreq[term]) * weight

			dot += jdWeight * resumeWeight
			jdNorm += jdWeight * jdWeight
			resumeNorm += resumeWeight * resumeWeight
		}
	}

	if jdNorm == 0 || resumeNorm == 0 {
		return 0.0
	}

	cosine := dot / (math.Sqrt(jdNorm) * math.Sqrt(resumeNorm))
	return round2(cosine * 100)
}

// termFrequencies tokenizes the text and counts non-stopword terms.
func termFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, token := range Normalize(text).Tokens {
		if stopwords[token] {
			continue
		}
		freq[token]++
	}
	return freq
}
