package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kdduha/code-explainer/internal/config"
	"github.com/kdduha/code-explainer/internal/llm"
	"github.com/kdduha/code-explainer/internal/metrics"
	"github.com/kdduha/code-explainer/internal/models"
	"go.uber.org/zap"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
	statusMalformed   = "malformed"
)

type Completer interface {
	Name() string
	Model() string
	Complete(ctx context.Context, p llm.Prompt) (string, error)
}

type Recorder interface {
	Record(ctx context.Context, req models.ExplainRequest, res models.ExplanationResult)
}

type ExplainService struct {
	logger     *zap.Logger
	completer  Completer
	generation config.GenerationConfig
	recorder   Recorder
}

func NewExplainService(logger *zap.Logger, completer Completer, cfg config.GenerationConfig) *ExplainService {
	return &ExplainService{
		logger:     logger,
		completer:  completer,
		generation: cfg,
	}
}

func (e *ExplainService) SetRecorder(recorder Recorder) {
	e.recorder = recorder
}

// Explain validates the request, asks the provider once and normalizes the
// answer. Identical requests are never deduplicated.
func (e *ExplainService) Explain(ctx context.Context, req *models.ExplainRequest) (*models.ExplanationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := e.complete(ctx, req)
	elapsed := time.Since(start)

	status := statusOK
	switch {
	case errors.Is(err, models.ErrServiceUnavailable):
		status = statusUnavailable
	case err != nil:
		status = statusMalformed
	}
	metrics.ProviderRequestsTotal(e.completer.Name(), status)
	metrics.ProviderRequestDuration(e.completer.Name(), status, elapsed)

	if err != nil {
		e.logger.Error("explain failed",
			zap.String("provider", e.completer.Name()),
			zap.String("model", e.completer.Model()),
			zap.String("language", req.Language),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, err
	}

	result.ResponseTime = float64(elapsed.Milliseconds()) / 1000
	e.logger.Info("explain completed",
		zap.String("provider", e.completer.Name()),
		zap.String("detected_language", result.DetectedLanguage),
		zap.Float64("response_time", result.ResponseTime),
	)

	if e.recorder != nil {
		e.recorder.Record(ctx, *req, *result)
	}
	return result, nil
}

func (e *ExplainService) complete(ctx context.Context, req *models.ExplainRequest) (*models.ExplanationResult, error) {
	text, err := e.completer.Complete(ctx, e.buildPrompt(req))
	if err != nil {
		return nil, err
	}

	raw, err := ParsePayload(text)
	if err != nil {
		return nil, err
	}

	result, err := Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	return &result, nil
}
