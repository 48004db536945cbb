package service

import (
	"fmt"

	"github.com/kdduha/code-explainer/internal/llm"
	"github.com/kdduha/code-explainer/internal/models"
)

// getUserPrompt embeds code and language exactly as submitted.
func getUserPrompt(req *models.ExplainRequest) string {
	return fmt.Sprintf(userPromptTemplate, req.Language, req.Code)
}

func (e *ExplainService) buildPrompt(req *models.ExplainRequest) llm.Prompt {
	return llm.Prompt{
		System:      systemPrompt,
		User:        getUserPrompt(req),
		Temperature: e.generation.Temperature,
		MaxTokens:   e.generation.MaxTokens,
	}
}
