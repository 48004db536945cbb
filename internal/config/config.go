package config

import (
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v11"
)

// MaxGenerationTokens bounds GENERATION_MAX_TOKENS; providers take the budget as int32.
const MaxGenerationTokens = math.MaxInt32

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const (
	HistoryNone     = "none"
	HistoryMemory   = "memory"
	HistorySQLite   = "sqlite"
	HistoryPostgres = "postgres"
	HistoryRedis    = "redis"
)

type Config struct {
	Server     ServerConfig
	Provider   string `env:"PROVIDER" envDefault:"openai"`
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	Generation GenerationConfig
	History    HistoryConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"5000"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"2m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
}

type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
}

// GenerationConfig holds the fixed sampling parameters of every provider call.
type GenerationConfig struct {
	Temperature float64 `env:"GENERATION_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int     `env:"GENERATION_MAX_TOKENS" envDefault:"2000"`
}

type HistoryConfig struct {
	Driver       string        `env:"HISTORY_DRIVER" envDefault:"memory"`
	QueueSize    int           `env:"HISTORY_QUEUE_SIZE" envDefault:"128"`
	WriteTimeout time.Duration `env:"HISTORY_WRITE_TIMEOUT" envDefault:"5s"`
	SQLitePath   string        `env:"HISTORY_SQLITE_PATH" envDefault:"history.db"`
	PostgresDSN  string        `env:"HISTORY_POSTGRES_DSN"`
	Redis        RedisConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Stream   string `env:"REDIS_STREAM" envDefault:"code_explanations"`
	MaxLen   int64  `env:"REDIS_STREAM_MAXLEN" envDefault:"100000"`
}

type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown PROVIDER %q", c.Provider)
	}

	switch c.History.Driver {
	case HistoryNone, HistoryMemory, HistorySQLite, HistoryRedis:
	case HistoryPostgres:
		if c.History.PostgresDSN == "" {
			return fmt.Errorf("HISTORY_POSTGRES_DSN is required for the postgres history driver")
		}
	default:
		return fmt.Errorf("unknown HISTORY_DRIVER %q", c.History.Driver)
	}

	if c.Generation.MaxTokens <= 0 || c.Generation.MaxTokens > MaxGenerationTokens {
		return fmt.Errorf("GENERATION_MAX_TOKENS must be in 1..%d, got %d", MaxGenerationTokens, c.Generation.MaxTokens)
	}
	if c.History.QueueSize <= 0 {
		return fmt.Errorf("HISTORY_QUEUE_SIZE must be positive, got %d", c.History.QueueSize)
	}
	return nil
}
