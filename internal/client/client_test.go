package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/kdduha/code-explainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientExplain(t *testing.T) {
	var got models.ExplainRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/explain-code", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, sonic.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"explanation":"e","detectedLanguage":"Go","keyPoints":["k"],"responseTime":0.42}`)
	}))
	defer srv.Close()

	c := New(srv.URL+"/", nil)
	req := models.ExplainRequest{Code: "  x := 1\n", Language: "go"}
	res, err := c.Explain(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, req, got)
	assert.Equal(t, "e", res.Explanation)
	assert.Equal(t, []string{"k"}, res.KeyPoints)
	assert.Equal(t, 0.42, res.ResponseTime)
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantMsg   string
		retryable bool
	}{
		{"unavailable", http.StatusServiceUnavailable, `{"error":"AI service temporarily unavailable. Please try again in a moment."}`, "AI service temporarily unavailable. Please try again in a moment.", true},
		{"server failure", http.StatusInternalServerError, `{"error":"Failed to analyze code. Please try again."}`, "Failed to analyze code. Please try again.", false},
		{"no json body", http.StatusBadGateway, `<html>bad gateway</html>`, "Bad Gateway", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := New(srv.URL, srv.Client()).Explain(context.Background(), models.ExplainRequest{Code: "x", Language: "go"})

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.retryable, apiErr.Retryable())
		})
	}
}
