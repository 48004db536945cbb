package service

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/kdduha/code-explainer/internal/models"
)

// RawPayload is the provider answer after JSON decoding and before any
// assumption about its shape.
type RawPayload map[string]any

// ParsePayload decodes provider text. Only a JSON object is accepted.
func ParsePayload(text string) (RawPayload, error) {
	var v any
	if err := sonic.UnmarshalString(text, &v); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", models.ErrMalformedResponse, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %T, want object", models.ErrMalformedResponse, v)
	}
	return RawPayload(obj), nil
}

// Normalize maps a raw payload onto ExplanationResult.
//
// explanation and detectedLanguage must be non-empty strings. Everything else
// falls back to a default: a missing or wrongly typed array becomes empty,
// elements of the wrong type are dropped, non-string fields inside objects
// become "". Normalize has no side effects and does not modify raw.
func Normalize(raw RawPayload) (models.ExplanationResult, error) {
	explanation := stringField(raw, "explanation")
	if strings.TrimSpace(explanation) == "" {
		return models.ExplanationResult{}, fmt.Errorf("%w: explanation is missing", models.ErrMalformedResponse)
	}
	detected := stringField(raw, "detectedLanguage")
	if strings.TrimSpace(detected) == "" {
		return models.ExplanationResult{}, fmt.Errorf("%w: detectedLanguage is missing", models.ErrMalformedResponse)
	}

	return models.ExplanationResult{
		Explanation:             explanation,
		DetectedLanguage:        detected,
		KeyPoints:               stringList(raw["keyPoints"]),
		StepByStep:              objectList(raw["stepByStep"], toStep),
		Concepts:                objectList(raw["concepts"], toConcept),
		PerformanceNotes:        stringField(raw, "performanceNotes"),
		OptimizationSuggestions: objectList(raw["optimizationSuggestions"], toSuggestion),
		ComplexityAnalysis:      toComplexity(raw["complexityAnalysis"]),
		BlackboxComponents:      objectList(raw["blackboxComponents"], toBlackbox),
	}, nil
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func stringList(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func objectList[T any](v any, conv func(map[string]any) T) []T {
	items, _ := v.([]any)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, conv(obj))
		}
	}
	return out
}

func toStep(obj map[string]any) models.Step {
	return models.Step{
		Step:        stringField(obj, "step"),
		Description: stringField(obj, "description"),
		Color:       stringField(obj, "color"),
	}
}

func toConcept(obj map[string]any) models.Concept {
	return models.Concept{
		Name:        stringField(obj, "name"),
		Description: stringField(obj, "description"),
	}
}

func toSuggestion(obj map[string]any) models.OptimizationSuggestion {
	return models.OptimizationSuggestion{
		Issue:    stringField(obj, "issue"),
		Solution: stringField(obj, "solution"),
		Example:  stringField(obj, "example"),
	}
}

func toBlackbox(obj map[string]any) models.BlackboxComponent {
	isBlackbox, _ := obj["isBlackbox"].(bool)
	return models.BlackboxComponent{
		Name:            stringField(obj, "name"),
		Type:            stringField(obj, "type"),
		Description:     stringField(obj, "description"),
		IsBlackbox:      isBlackbox,
		RiskLevel:       stringField(obj, "riskLevel"),
		Recommendations: stringList(obj["recommendations"]),
	}
}

func toComplexity(v any) models.ComplexityAnalysis {
	out := models.ComplexityAnalysis{
		TimeComplexity:  defaultTimeComplexity,
		SpaceComplexity: defaultSpaceComplexity,
		Analysis:        defaultAnalysis,
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return out
	}
	if s := stringField(obj, "timeComplexity"); s != "" {
		out.TimeComplexity = s
	}
	if s := stringField(obj, "spaceComplexity"); s != "" {
		out.SpaceComplexity = s
	}
	if s := stringField(obj, "analysis"); s != "" {
		out.Analysis = s
	}
	return out
}
