package generation

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrMissingAPIKey is returned when no OpenAI API key is configured. It is
// the one configuration error that is not absorbed: NewClient refuses the
// config, so a misconfigured deployment fails at startup instead of
// serving scaffold guides forever.
var ErrMissingAPIKey = fmt.Errorf("generation: OPENAI_API_KEY not set")

// Config holds the language model settings.
type Config struct {
	APIKey      string  // OpenAI API key (required)
	Model       string  // Model name, e.g. "gpt-4o-mini"
	Temperature float64 // Sampling temperature
	BaseURL     string  // Optional API base override for compatible gateways
	TimeoutS    int     // Per-request timeout in seconds
}

// DefaultConfig returns the default model settings.
func DefaultConfig() Config {
	return Config{
		Model:       "gpt-4o-mini",
		Temperature: 0.2,
		TimeoutS:    120,
	}
}

// NewConfig reads the model configuration from the environment.
func NewConfig() (Config, error) {
	cfg := DefaultConfig()

	cfg.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("OPENAI_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("generation: invalid OPENAI_TIMEOUT_SECONDS %q", v)
		}
		cfg.TimeoutS = secs
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration can produce completions.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return fmt.Errorf("generation: model cannot be empty")
	}
	return nil
}
