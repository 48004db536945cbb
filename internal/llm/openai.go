package llm

import (
	"context"
	"fmt"

	"github.com/kdduha/code-explainer/internal/config"
	"github.com/kdduha/code-explainer/internal/models"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// OpenAI talks to any OpenAI-compatible chat completions API.
type OpenAI struct {
	client    openai.Client
	modelName string
	hasKey    bool
}

func NewOpenAI(cfg config.OpenAIConfig, opts ...option.RequestOption) *OpenAI {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		// one attempt per user request
		option.WithMaxRetries(0),
	}
	return &OpenAI{
		client:    openai.NewClient(append(base, opts...)...),
		modelName: cfg.Model,
		hasKey:    cfg.APIKey != "",
	}
}

func (o *OpenAI) Name() string { return config.ProviderOpenAI }

func (o *OpenAI) Model() string { return o.modelName }

func (o *OpenAI) Complete(ctx context.Context, p Prompt) (string, error) {
	if !o.hasKey {
		return "", fmt.Errorf("%w: OPENAI_API_KEY is empty", models.ErrServiceUnavailable)
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.System),
			openai.UserMessage(p.User),
		},
		Temperature: openai.Float(p.Temperature),
		MaxTokens:   openai.Int(int64(p.MaxTokens)),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: OpenAI client error: %w", models.ErrServiceUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", models.ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
