package ranking

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/match"
)

// Report is the scored outcome for a single resume.
type Report struct {
	Name        string       `json:"name"`
	Keyword     match.Result `json:"keyword"`
	TFIDF       match.Result `json:"tfidf"`
	Composite   float64      `json:"composite_score"`
	Skills      []string     `json:"skills"`
	Shortlisted bool         `json:"shortlisted"`
}

// SkillsDisplay returns the resume's extracted skills in presentation
// form, or a placeholder when none were detected.
func (r *Report) SkillsDisplay() string {
	if len(r.Skills) == 0 {
		return "no skills detected"
	}

	display := make([]string, len(r.Skills))
	for i, skill := range r.Skills {
		display[i] = match.Display(skill)
	}
	return strings.Join(display, ", ")
}

// Reports is an ordered batch outcome, best composite score first.
type Reports struct {
	Items    []*Report `json:"items"`
	MinScore float64   `json:"min_score"`
}

func (r *Reports) Len() int {
	return len(r.Items)
}

// Top returns the best-scoring report, or nil for an empty batch.
func (r *Reports) Top() *Report {
	if len(r.Items) == 0 {
		return nil
	}
	return r.Items[0]
}

// Shortlist returns only the reports at or above the minimum score,
// preserving order.
func (r *Reports) Shortlist() []*Report {
	shortlisted := make([]*Report, 0, len(r.Items))
	for _, item := range r.Items {
		if item.Shortlisted {
			shortlisted = append(shortlisted, item)
		}
	}
	return shortlisted
}

// DumpToTmpFile writes the reports as indented JSON to a temporary file
// and returns its name.
func (r *Reports) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "nuvora_report_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
