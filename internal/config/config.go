// README: Config loader with env defaults for HTTP, artifacts, and explanation settings.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ExplainerMode selects the explanation strategy at configuration time.
type ExplainerMode string

const (
	ExplainerRules  ExplainerMode = "rules"
	ExplainerLLM    ExplainerMode = "llm"
	ExplainerGemini ExplainerMode = "gemini"
)

type Config struct {
	HTTP struct {
		Addr        string
		Environment string
		CORSOrigins string
	}
	Artifacts struct {
		ForecasterPath string
		ScalerPath     string
	}
	Explainer struct {
		Mode    ExplainerMode
		Timeout time.Duration
	}
	LLM struct {
		Provider string
		Endpoint string
		// APIKey may legitimately be empty; the explanation path degrades to
		// its fallback instead of the process refusing to start.
		APIKey string
		Model  string
	}
	Gemini struct {
		APIKey string
	}
}

func Load() (Config, error) {
	// Pick up a local .env when present; real environments set vars directly.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("FARECAST_HTTP_ADDR", ":8080")
	cfg.HTTP.Environment = envOrDefault("FARECAST_ENV", "development")
	cfg.HTTP.CORSOrigins = envOrDefault("FARECAST_CORS_ORIGINS", "*")

	cfg.Artifacts.ForecasterPath = envOrDefault("FARECAST_FORECASTER_PATH", "artifacts/forecaster.gob")
	cfg.Artifacts.ScalerPath = envOrDefault("FARECAST_SCALER_PATH", "artifacts/scaler.gob")

	cfg.Explainer.Mode = ExplainerMode(envOrDefault("FARECAST_EXPLAINER", string(ExplainerRules)))
	cfg.Explainer.Timeout = time.Duration(envOrDefaultInt("FARECAST_LLM_TIMEOUT_SECONDS", 15)) * time.Second

	cfg.LLM.Provider = envOrDefault("FARECAST_LLM_PROVIDER", "huggingface")
	cfg.LLM.Endpoint = envOrDefault("FARECAST_LLM_ENDPOINT", "")
	cfg.LLM.APIKey = envOrDefault("FARECAST_LLM_API_KEY", "")
	cfg.LLM.Model = envOrDefault("FARECAST_LLM_MODEL", "")

	cfg.Gemini.APIKey = envOrDefault("GEMINI_API_KEY", "")

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
