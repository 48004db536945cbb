package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kdduha/code-explainer/internal/models"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

const (
	msgInvalidRequest = "Invalid request data. Please check your code input and try again."
	msgUnavailable    = "AI service temporarily unavailable. Please try again in a moment."
	msgFailed         = "Failed to analyze code. Please try again."
)

type explainService interface {
	Explain(ctx context.Context, req *models.ExplainRequest) (*models.ExplanationResult, error)
}

type ExplainHandler struct {
	service explainService
	logger  *zap.Logger
}

func NewExplainHandler(service explainService, logger *zap.Logger) *ExplainHandler {
	return &ExplainHandler{
		service: service,
		logger:  logger,
	}
}

// Explain godoc
// @Summary Explain code
// @Description Explain a code snippet with key points, step-by-step breakdown, concepts and complexity analysis.
// @Tags explain
// @Accept json
// @Produce json
// @Param request body models.ExplainRequest true "Explain request"
// @Success 200 {object} models.ExplanationResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/explain-code [post]
func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req models.ExplainRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := sonic.ConfigDefault.NewDecoder(body).Decode(&req); err != nil {
		h.logger.Debug("invalid JSON", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidRequest})
		return
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.Explain(r.Context(), &req)
	if err != nil {
		status, msg := classify(err)
		h.logger.Warn("explain request failed",
			zap.Int("status", status),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, status, models.ErrorResponse{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Healthz reports liveness. It does not probe the provider.
func (h *ExplainHandler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func classify(err error) (int, string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message
	case errors.Is(err, models.ErrServiceUnavailable):
		return http.StatusServiceUnavailable, msgUnavailable
	default:
		return http.StatusInternalServerError, msgFailed
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, msgFailed, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
