package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kdduha/code-explainer/internal/config"
	"github.com/kdduha/code-explainer/internal/handler"
	"github.com/kdduha/code-explainer/internal/history"
	"github.com/kdduha/code-explainer/internal/llm"
	"github.com/kdduha/code-explainer/internal/logging"
	"github.com/kdduha/code-explainer/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	completer, err := newCompleter(ctx, cfg)
	if err != nil {
		return err
	}
	explainService := service.NewExplainService(logger, completer, cfg.Generation)

	store, err := history.Open(ctx, cfg.History)
	if err != nil {
		return fmt.Errorf("history store: %w", err)
	}
	var recorder *history.Recorder
	if store != nil {
		defer store.Close()
		recorder = history.NewRecorder(logger, store, cfg.History.Driver, cfg.History.QueueSize, cfg.History.WriteTimeout)
		explainService.SetRecorder(recorder)
		logger.Info("history enabled", zap.String("driver", cfg.History.Driver))
	}

	e := handler.NewExplainHandler(explainService, logger)
	srv := &http.Server{
		Addr: ":" + cfg.Server.Port,
		Handler: handler.NewRouter(e, logger, handler.RouterConfig{
			ThrottleLimit: cfg.Server.ThrottleLimit,
			Timeout:       cfg.Server.Timeout,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started",
			zap.String("port", cfg.Server.Port),
			zap.String("provider", completer.Name()),
			zap.String("model", completer.Model()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	if recorder != nil {
		if err := recorder.Close(shutdownCtx); err != nil {
			logger.Warn("history not fully flushed", zap.Error(err))
		}
	}
	logger.Info("server stopped")
	return nil
}

func newCompleter(ctx context.Context, cfg *config.Config) (service.Completer, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return llm.NewGemini(ctx, cfg.Gemini)
	default:
		return llm.NewOpenAI(cfg.OpenAI), nil
	}
}
