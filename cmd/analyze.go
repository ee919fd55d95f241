package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/ai"
	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/ai/gemini"
	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/extract"
	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/logger"
	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/ranking"
	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/secrets"
	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/vocabulary"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowSkills   = "Show matched and missing skills"
	PromptDumpToFile   = "Dump report to file"
	PromptAskAssistant = "Ask Nuvora for advice"
	PromptExit         = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowSkills, PromptDumpToFile, PromptAskAssistant, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume files]",
	Short: "Score one or more resumes against a job description",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("jd", "", "path to the job description file (pdf or plain text)")
	analyzeCmd.Flags().String("jd-text", "", "job description passed inline")
	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "print the report and exit without the interactive menu")
	analyzeCmd.Flags().Float64("min-score", 0, "composite score required to make the shortlist")

	viper.BindPFlag("min-score", analyzeCmd.Flags().Lookup("min-score"))
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting nuvora", zap.String("version", version))

	vocab, err := vocabulary.Load(config.Vocabulary)
	if err != nil {
		logger.Fatal("loading the skill vocabulary", zap.Error(err))
	}

	logger.Info("loaded skill vocabulary", zap.Int("terms", vocab.Len()))

	extractor := extract.New(logger)

	jdText, err := resolveJobDescription(cmd, extractor)
	if err != nil {
		logger.Fatal("reading the job description",
			zap.Error(err),
			zap.String("hint", "pass --jd <file> or --jd-text <text>"),
		)
	}

	resumes := collectResumes(args, extractor, logger)

	ranker, err := ranking.New(vocab, rankingConfig(config), logger)
	if err != nil {
		logger.Fatal("building the ranker", zap.Error(err))
	}

	logger.Info("analyzing resumes", zap.Int("count", len(resumes)))

	reports, err := ranker.Rank(ctx, jdText, resumes)
	if err != nil {
		logger.Fatal("ranking resumes", zap.Error(err))
	}

	printReportTable(reports)

	if top := reports.Top(); top != nil {
		logger.Info("top match",
			zap.String("resume", top.Name),
			zap.Float64("composite_score", top.Composite),
			zap.String("skills", top.SkillsDisplay()),
		)
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, reports, config, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, reports *ranking.Reports, config *Config, logger *zap.Logger) error {
	switch action {
	case PromptShowSkills:
		printSkillBreakdown(reports)
		return nil
	case PromptDumpToFile:
		filename, err := reports.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptAskAssistant:
		advisor, err := newAdvisor(ctx, config.AI, logger)
		if err != nil {
			logger.Warn("assistant unavailable", zap.Error(err))
			return nil
		}
		return adviceLoop(ctx, advisor, analysisFromTop(reports))
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// adviceLoop runs the interactive question loop. The conversation
// history lives here, in a local value passed explicitly to the advisor
// on each turn.
func adviceLoop(ctx context.Context, advisor ai.Advisor, analysis *ai.AnalysisContext) error {
	history := make([]ai.Turn, 0)

	for {
		question := promptui.Prompt{Label: "Ask about your resume or interview (empty to go back)"}

		input, err := question.Run()
		if err != nil {
			return err
		}

		if strings.TrimSpace(input) == "" {
			return nil
		}

		answer, err := advisor.Advise(ctx, input, history, analysis)
		if err != nil {
			fmt.Printf("connection issue, try again later: %s\n", err)
			continue
		}

		fmt.Printf("\n%s\n\n", answer)

		history = append(history,
			ai.Turn{Role: ai.RoleUser, Content: input},
			ai.Turn{Role: ai.RoleAssistant, Content: answer},
		)
	}
}

func newAdvisor(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Advisor, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("assistant is not enabled in the configuration")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when the assistant is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	advisorLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	return gemini.NewAdvisor(generator, cfg.Gemini.MaxRetries, cfg.Gemini.MaxLogLength, advisorLogger), nil
}

func resolveJobDescription(cmd *cobra.Command, extractor *extract.Extractor) (string, error) {
	if inline := cmd.Flag("jd-text").Value.String(); strings.TrimSpace(inline) != "" {
		return inline, nil
	}

	path := strings.TrimSpace(cmd.Flag("jd").Value.String())
	if path == "" {
		return "", errors.New("job description is required")
	}

	return extractor.Text(path)
}

// collectResumes extracts text from every resume file. A file that
// cannot be read still enters the batch with empty text, so it ranks
// last instead of aborting the whole run.
func collectResumes(paths []string, extractor *extract.Extractor, logger *zap.Logger) []ranking.Input {
	resumes := make([]ranking.Input, 0, len(paths))
	for _, path := range paths {
		text, err := extractor.Text(path)
		if err != nil {
			logger.Warn("could not read resume, scoring it as empty",
				zap.String("path", path),
				zap.Error(err),
			)
		}

		resumes = append(resumes, ranking.Input{
			Name: filepath.Base(path),
			Text: text,
		})
	}
	return resumes
}

func rankingConfig(config *Config) ranking.Config {
	cfg := ranking.Config{
		Weights:  config.Weights,
		MinScore: viper.GetFloat64("min-score"),
		Workers:  config.Workers,
	}

	if cfg.MinScore == 0 {
		cfg.MinScore = config.MinScore
	}

	if config.Fuzzy != nil {
		cfg.Fuzzy = config.Fuzzy.Enabled
		cfg.FuzzyThreshold = config.Fuzzy.Threshold
	}

	return cfg
}

func analysisFromTop(reports *ranking.Reports) *ai.AnalysisContext {
	top := reports.Top()
	if top == nil {
		return nil
	}

	return &ai.AnalysisContext{
		Score:   top.Composite,
		Matched: top.Keyword.DisplayMatched(),
		Missing: top.Keyword.DisplayMissing(),
	}
}

func printReportTable(reports *ranking.Reports) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "RESUME\tCOMPOSITE\tKEYWORD\tTFIDF\tSHORTLISTED\tSKILLS")
	for _, report := range reports.Items {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%t\t%s\n",
			report.Name,
			report.Composite,
			report.Keyword.Score,
			report.TFIDF.Score,
			report.Shortlisted,
			report.SkillsDisplay(),
		)
	}
	w.Flush()
}

func printSkillBreakdown(reports *ranking.Reports) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "RESUME\tMATCHED\tMISSING")
	for _, report := range reports.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			report.Name,
			joinOrDash(report.Keyword.DisplayMatched()),
			joinOrDash(report.Keyword.DisplayMissing()),
		)
	}
	w.Flush()
}

func joinOrDash(terms []string) string {
	if len(terms) == 0 {
		return "-"
	}
	return strings.Join(terms, ", ")
}
