package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/ai"
	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/util"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	retryDelay          = 2 * time.Second
)

// Advisor answers career questions through Gemini. Conversation history
// and analysis context arrive as explicit arguments on every call; the
// Advisor itself keeps no conversational state.
type Advisor struct {
	generator  contentGenerator
	maxRetries int
	maxLogLen  int
	logger     *zap.Logger
}

func NewAdvisor(generator contentGenerator, maxRetries, maxLogLength int, logger *zap.Logger) *Advisor {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Advisor{
		generator:  generator,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
		logger:     logger,
	}
}

func (a *Advisor) Advise(ctx context.Context, question string, history []ai.Turn, analysis *ai.AnalysisContext) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("question is required")
	}

	prompt := buildPrompt(question, history, analysis)

	a.logger.Debug("gemini advice request",
		zap.Int("history_turns", len(history)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, a.maxLogLen)),
	)

	var lastErr error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if attempt > 0 {
			if err := util.WaitFor(ctx, retryDelay); err != nil {
				return "", err
			}
			a.logger.Debug("retrying advice generation",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
		}

		answer, err := a.generator.GenerateContent(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		a.logger.Debug("gemini advice response",
			zap.Int("response_length", utf8.RuneCountInString(answer)),
			zap.String("response_preview", util.TruncateForLog(answer, a.maxLogLen)),
		)

		return strings.TrimSpace(answer), nil
	}

	return "", fmt.Errorf("generating advice after %d attempts: %w", a.maxRetries+1, lastErr)
}

func buildPrompt(question string, history []ai.Turn, analysis *ai.AnalysisContext) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "{{ANALYSIS}}\n\n{{HISTORY}}\n\nQuestion:\n{{QUESTION}}"
	}

	prompt := strings.ReplaceAll(template, "{{ANALYSIS}}", formatAnalysis(analysis))
	prompt = strings.ReplaceAll(prompt, "{{HISTORY}}", formatHistory(history))
	prompt = strings.ReplaceAll(prompt, "{{QUESTION}}", question)
	return prompt
}

func formatAnalysis(analysis *ai.AnalysisContext) string {
	if analysis == nil {
		return "none"
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "match score: %.2f%%", analysis.Score)
	if len(analysis.Matched) > 0 {
		fmt.Fprintf(&builder, "\nmatched skills: %s", strings.Join(analysis.Matched, ", "))
	}
	if len(analysis.Missing) > 0 {
		fmt.Fprintf(&builder, "\nmissing skills: %s", strings.Join(analysis.Missing, ", "))
	}
	return builder.String()
}

func formatHistory(history []ai.Turn) string {
	if len(history) == 0 {
		return "none"
	}

	lines := make([]string, 0, len(history))
	for _, turn := range history {
		speaker := "User"
		if turn.Role == ai.RoleAssistant {
			speaker = "Nuvora"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, strings.TrimSpace(turn.Content)))
	}
	return strings.Join(lines, "\n")
}
