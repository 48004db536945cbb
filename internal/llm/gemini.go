package llm

import (
	"context"
	"fmt"

	"github.com/kdduha/code-explainer/internal/config"
	"github.com/kdduha/code-explainer/internal/models"
	"google.golang.org/genai"
)

// Gemini generates completions through the Google GenAI SDK.
type Gemini struct {
	client    *genai.Client
	modelName string
}

// NewGemini builds the backend. With an empty API key every call fails as
// unavailable.
func NewGemini(ctx context.Context, cfg config.GeminiConfig, httpOpts ...genai.HTTPOptions) (*Gemini, error) {
	g := &Gemini{modelName: cfg.Model}
	if cfg.APIKey == "" {
		return g, nil
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if len(httpOpts) > 0 {
		cc.HTTPOptions = httpOpts[0]
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	g.client = client
	return g, nil
}

func (g *Gemini) Name() string { return config.ProviderGemini }

func (g *Gemini) Model() string { return g.modelName }

func (g *Gemini) Complete(ctx context.Context, p Prompt) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("%w: GEMINI_API_KEY is empty", models.ErrServiceUnavailable)
	}

	resp, err := g.client.Models.GenerateContent(ctx,
		g.modelName,
		genai.Text(p.User),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(p.System, genai.RoleUser),
			Temperature:       genai.Ptr(float32(p.Temperature)),
			MaxOutputTokens:   int32(p.MaxTokens),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: GenAI generate failed: %w", models.ErrServiceUnavailable, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty candidate text", models.ErrMalformedResponse)
	}
	return text, nil
}
