package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Supported language-model backends.
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	HTTPAddr      string `env:"HTTP_ADDR"      envDefault:":8080"`
	MongoURI      string `env:"MONGODB_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"synapse"`

	JWTSecret   string        `env:"JWT_SECRET"`
	TokenIssuer string        `env:"TOKEN_ISSUER" envDefault:"synapse"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"    envDefault:"168h"`

	AIProvider   string `env:"AI_PROVIDER"    envDefault:"gemini"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL"   envDefault:"gemini-2.5-flash"`
	ClaudeAPIURL string `env:"CLAUDE_API_URL"`
	ClaudeAPIKey string `env:"CLAUDE_API_KEY"`
	ClaudeModel  string `env:"CLAUDE_MODEL"   envDefault:"claude-v1"`
}

// Load parses configuration from environment variables. Required values have
// no fallbacks: a missing secret fails startup instead of running with a
// known-weak default.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("missing MONGODB_URI environment variable")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}

	switch c.AIProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("missing GEMINI_API_KEY environment variable")
		}
	case ProviderClaude:
		if c.ClaudeAPIURL == "" {
			return fmt.Errorf("missing CLAUDE_API_URL environment variable")
		}
		if c.ClaudeAPIKey == "" {
			return fmt.Errorf("missing CLAUDE_API_KEY environment variable")
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AIProvider)
	}

	return nil
}
