package models

import (
	"strings"
	"unicode/utf8"
)

// MaxCodeLength is the upper bound on submitted code, counted in runes.
const MaxCodeLength = 10000

// ExplainRequest represents request for explain endpoint
type ExplainRequest struct {
	Code     string `json:"code" validate:"required" example:"console.log(\"Hello, World!\");"`
	Language string `json:"language" validate:"required" example:"javascript"`
}

// Validate checks the request before anything is sent to the provider.
// The request is never modified.
func (r ExplainRequest) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return ErrEmptyCode
	}
	if utf8.RuneCountInString(r.Code) > MaxCodeLength {
		return ErrCodeTooLong
	}
	if strings.TrimSpace(r.Language) == "" {
		return ErrMissingLanguage
	}
	return nil
}

type Step struct {
	Step        string `json:"step"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type Concept struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type OptimizationSuggestion struct {
	Issue    string `json:"issue"`
	Solution string `json:"solution"`
	Example  string `json:"example"`
}

type ComplexityAnalysis struct {
	TimeComplexity  string `json:"timeComplexity"`
	SpaceComplexity string `json:"spaceComplexity"`
	Analysis        string `json:"analysis"`
}

// BlackboxComponent is an external dependency spotted in the code whose
// internals are not visible to the reader.
type BlackboxComponent struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	IsBlackbox      bool     `json:"isBlackbox"`
	RiskLevel       string   `json:"riskLevel" enums:"low,medium,high"`
	Recommendations []string `json:"recommendations"`
}

// ExplanationResult is the fully populated answer returned to clients.
// Sequences are never nil after normalization.
type ExplanationResult struct {
	Explanation             string                   `json:"explanation"`
	DetectedLanguage        string                   `json:"detectedLanguage"`
	KeyPoints               []string                 `json:"keyPoints"`
	StepByStep              []Step                   `json:"stepByStep"`
	Concepts                []Concept                `json:"concepts"`
	PerformanceNotes        string                   `json:"performanceNotes,omitempty"`
	OptimizationSuggestions []OptimizationSuggestion `json:"optimizationSuggestions"`
	ComplexityAnalysis      ComplexityAnalysis       `json:"complexityAnalysis"`
	BlackboxComponents      []BlackboxComponent      `json:"blackboxComponents"`

	// ResponseTime is the provider round trip in seconds.
	ResponseTime float64 `json:"responseTime"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
