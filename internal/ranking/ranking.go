// Package ranking runs the match engine over a batch of resumes against
// a single job description and orders the outcomes. Each resume is
// scored independently, so the batch fans out across worker goroutines
// with no shared mutable state beyond result collection.
package ranking

import (
	"context"
	"sort"
	"sync"

	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/match"

	"go.uber.org/zap"
)

const defaultWorkers = 4

// Input is one named resume text, already extracted from its source
// document.
type Input struct {
	Name string
	Text string
}

// Config controls scoring and batch execution.
type Config struct {
	// Weights blends the keyword and vector-space sub-scores into the
	// composite. Keys must be exactly the known sub-metric names.
	Weights map[string]float64
	// Fuzzy enables the fuzzy keyword fallback.
	Fuzzy bool
	// FuzzyThreshold is the fuzzy acceptance threshold (0-100).
	FuzzyThreshold float64
	// MinScore marks resumes at or above this composite score as
	// shortlisted. Zero shortlists everything.
	MinScore float64
	// Workers caps concurrent scoring goroutines.
	Workers int
}

// DefaultWeights is the built-in composite blend.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		match.MethodKeywordOverlap: 0.6,
		match.MethodTFIDFCosine:    0.4,
	}
}

// Ranker scores batches of resumes against one job description.
type Ranker struct {
	vocab  *match.Vocabulary
	cfg    Config
	logger *zap.Logger
}

// New validates the configuration and returns a Ranker. Mismatched
// weight keys surface immediately as a ConfigurationError instead of
// failing mid-batch.
func New(vocab *match.Vocabulary, cfg Config, logger *zap.Logger) (*Ranker, error) {
	if vocab == nil {
		return nil, &match.ConfigurationError{Reason: "vocabulary is required"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.Weights) == 0 {
		cfg.Weights = DefaultWeights()
	}
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = match.DefaultFuzzyThreshold
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}

	// Probe the blend once with zeroed sub-scores so a bad weight set
	// fails fast.
	if _, err := match.CompositeScore(map[string]float64{
		match.MethodKeywordOverlap: 0,
		match.MethodTFIDFCosine:    0,
	}, cfg.Weights); err != nil {
		return nil, err
	}

	return &Ranker{vocab: vocab, cfg: cfg, logger: logger}, nil
}

// Rank scores every resume against the job description and returns the
// reports ordered by composite score descending, ties broken by name.
// An unreadable resume is valid low-information input and simply scores
// zero.
func (r *Ranker) Rank(ctx context.Context, jdText string, resumes []Input) (*Reports, error) {
	jd := match.Normalize(jdText)

	opts := []match.ExtractOption{match.WithFuzzyThreshold(r.cfg.FuzzyThreshold)}
	if r.cfg.Fuzzy {
		opts = append(opts, match.WithFuzzy())
	}

	items := make([]*Report, len(resumes))
	jobs := make(chan int)

	var wg sync.WaitGroup
	workers := r.cfg.Workers
	if workers > len(resumes) {
		workers = len(resumes)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				items[i] = r.score(jd, resumes[i], opts)
			}
		}()
	}

	for i := range resumes {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Composite != items[j].Composite {
			return items[i].Composite > items[j].Composite
		}
		return items[i].Name < items[j].Name
	})

	r.logger.Debug("ranked resumes",
		zap.Int("count", len(items)),
		zap.Float64("min_score", r.cfg.MinScore),
	)

	return &Reports{Items: items, MinScore: r.cfg.MinScore}, nil
}

func (r *Ranker) score(jd match.Document, resume Input, opts []match.ExtractOption) *Report {
	doc := match.Normalize(resume.Text)

	keyword := match.AnalyzeKeywords(jd, doc, r.vocab, opts...)
	tfidf := match.AnalyzeTFIDF(jd, doc)

	composite, err := match.CompositeScore(map[string]float64{
		match.MethodKeywordOverlap: keyword.Score,
		match.MethodTFIDFCosine:    tfidf.Score,
	}, r.cfg.Weights)
	if err != nil {
		// Weights were validated in New; reaching this is a bug.
		panic(err)
	}

	skills := match.ExtractSkills(doc, r.vocab, opts...)

	report := &Report{
		Name:        resume.Name,
		Keyword:     keyword,
		TFIDF:       tfidf,
		Composite:   composite,
		Skills:      skills,
		Shortlisted: composite >= r.cfg.MinScore,
	}

	r.logger.Debug("scored resume",
		zap.String("resume", resume.Name),
		zap.Float64("keyword_score", keyword.Score),
		zap.Float64("tfidf_score", tfidf.Score),
		zap.Float64("composite_score", composite),
	)

	return report
}
