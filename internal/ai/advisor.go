package ai

import "context"

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single prior exchange in a conversation. History is always
// passed explicitly by the caller; no ambient session state exists.
type Turn struct {
	Role    string
	Content string
}

// AnalysisContext carries an optional match outcome into the advice
// prompt so answers can reference the user's actual score and skill gap.
type AnalysisContext struct {
	Score   float64
	Matched []string
	Missing []string
}

// Advisor answers free-text career questions. The match engine works
// fully without one; advice is presentation-layer only.
type Advisor interface {
	Advise(ctx context.Context, question string, history []Turn, analysis *AnalysisContext) (string, error)
}
