package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kdduha/code-explainer/internal/logging"
	"github.com/kdduha/code-explainer/internal/metrics"
	"github.com/kdduha/code-explainer/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/kdduha/code-explainer/docs"
)

type RouterConfig struct {
	ThrottleLimit int
	Timeout       time.Duration
}

func NewRouter(e *ExplainHandler, logger *zap.Logger, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		logging.Middleware(logger),
		middleware.Recoverer,
		middleware.Throttle(cfg.ThrottleLimit),
		middleware.Timeout(cfg.Timeout),
		metrics.Middleware,
	}...)

	r.Post("/api/explain-code", e.Explain)
	r.Get("/healthz", e.Healthz)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/*", web.Handler())

	return r
}
