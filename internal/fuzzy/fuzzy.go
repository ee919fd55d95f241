// Package fuzzy provides Levenshtein-based similarity scores used as a
// fallback when exact keyword matching finds nothing, tolerating minor
// spelling or OCR variation in extracted text.
package fuzzy

// Distance returns the Levenshtein edit distance between the two strings,
// computed over runes.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Ratio returns a 0-100 similarity score between the two strings:
// 100*(1 - distance/maxLen). Two empty strings are identical.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 100
	}

	return 100 * (1 - float64(Distance(a, b))/float64(longest))
}

// PartialRatio returns the best Ratio between the needle and any
// needle-sized window of the haystack. It scores how well a short term
// fits somewhere inside a longer text.
func PartialRatio(needle, haystack string) float64 {
	rn := []rune(needle)
	rh := []rune(haystack)

	if len(rn) == 0 || len(rh) == 0 {
		return 0
	}
	if len(rn) >= len(rh) {
		return Ratio(needle, haystack)
	}

	best := 0.0
	for i := 0; i+len(rn) <= len(rh); i++ {
		score := Ratio(needle, string(rh[i:i+len(rn)]))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}

	return best
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
