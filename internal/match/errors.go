package match

import "fmt"

// ConfigurationError reports caller-level misuse: mismatched composite
// weight keys, or an empty vocabulary where a non-empty one is required.
// Degenerate input text is never a ConfigurationError; it degrades to
// empty results instead.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}
