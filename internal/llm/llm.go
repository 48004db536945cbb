// Package llm holds the provider backends that turn a prompt into raw model text.
package llm

// Prompt is one non-streaming JSON-mode completion request.
type Prompt struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}
