// README: Entry point; loads config and model artifacts, wires the pipeline, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"farecast/internal/ai"
	"farecast/internal/config"
	httptransport "farecast/internal/http"
	"farecast/internal/logger"
	"farecast/internal/modules/explain"
	"farecast/internal/modules/predict"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.HTTP.Environment); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	forest, scaler, err := predict.LoadArtifacts(cfg.Artifacts.ForecasterPath, cfg.Artifacts.ScalerPath)
	if err != nil {
		logger.Fatal("loading model artifacts", zap.Error(err))
	}
	predictor := predict.NewService(forest, scaler)

	explainer, closeExplainer, err := buildExplainer(ctx, cfg)
	if err != nil {
		logger.Fatal("building explainer", zap.Error(err))
	}
	defer closeExplainer()

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Predictor:   predictor,
		Explainer:   explainer,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("farecast API listening",
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("explainer", string(cfg.Explainer.Mode)),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", zap.Error(err))
	}
}

// buildExplainer selects the explanation strategy for the process lifetime.
func buildExplainer(ctx context.Context, cfg config.Config) (explain.Explainer, func(), error) {
	noop := func() {}

	switch cfg.Explainer.Mode {
	case config.ExplainerRules:
		return explain.NewRuleBased(), noop, nil

	case config.ExplainerLLM:
		if cfg.LLM.Endpoint == "" {
			return nil, noop, fmt.Errorf("FARECAST_LLM_ENDPOINT is required for the llm explainer")
		}
		gen := ai.NewHTTPProvider(cfg.LLM.Provider, cfg.LLM.Endpoint, cfg.LLM.APIKey, cfg.LLM.Model)
		return explain.NewLLM(gen, cfg.Explainer.Timeout), noop, nil

	case config.ExplainerGemini:
		if cfg.Gemini.APIKey == "" {
			return nil, noop, fmt.Errorf("GEMINI_API_KEY is required for the gemini explainer")
		}
		gen, err := ai.NewGeminiProvider(ctx, cfg.Gemini.APIKey)
		if err != nil {
			return nil, noop, err
		}
		return explain.NewLLM(gen, cfg.Explainer.Timeout), gen.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown explainer mode %q", cfg.Explainer.Mode)
	}
}
