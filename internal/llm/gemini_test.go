package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/kdduha/code-explainer/internal/config"
	"github.com/kdduha/code-explainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiWithoutKeyIsUnavailable(t *testing.T) {
	g, err := NewGemini(context.Background(), config.GeminiConfig{Model: "gemini-2.0-flash"})
	require.NoError(t, err)

	_, err = g.Complete(context.Background(), Prompt{User: "x", MaxTokens: 10})
	assert.ErrorIs(t, err, models.ErrServiceUnavailable)
}

func TestGeminiComplete(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.Contains(r.URL.Path, "gemini-2.0-flash:generateContent"), r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, sonic.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"explanation\":\"e\",\"detectedLanguage\":\"Go\"}"}]}}]}`)
	}))
	defer srv.Close()

	g, err := NewGemini(context.Background(),
		config.GeminiConfig{APIKey: "g-key", Model: "gemini-2.0-flash"},
		genai.HTTPOptions{BaseURL: srv.URL + "/"},
	)
	require.NoError(t, err)

	out, err := g.Complete(context.Background(), Prompt{System: "sys", User: "usr", Temperature: 0.5, MaxTokens: 300})
	require.NoError(t, err)
	assert.JSONEq(t, `{"explanation":"e","detectedLanguage":"Go"}`, out)

	genCfg, ok := captured["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "application/json", genCfg["responseMimeType"])
	assert.EqualValues(t, 300, genCfg["maxOutputTokens"])
}
