package embedding

import (
	"fmt"
	"os"
	"strconv"
)

// EMBEDDING_ENDPOINT must point to the root of an OpenAI-compatible API
// (no /embeddings appended). The provider appends paths itself, so callers
// only supply the host base URL.

type Config struct {
	Endpoint     string // Base URL of the embedding API, e.g. "https://api.openai.com/v1"
	APIKey       string // Bearer token for the embedding API
	Model        string // Embedding model identifier
	HTTPTimeoutS int    // HTTP timeout seconds (default 30)
}

// NewConfig reads from environment variables. The API key falls back to
// OPENAI_API_KEY so a single credential can drive embeddings and generation.
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	endpoint := os.Getenv("EMBEDDING_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://api.openai.com/v1"
	}

	key := os.Getenv("EMBEDDING_API_KEY")
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}

	model := os.Getenv("EMBEDDING_MODEL")
	if model == "" {
		model = "text-embedding-3-small"
	}

	return &Config{
		Endpoint:     endpoint,
		APIKey:       key,
		Model:        model,
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_MODEL")
	}
	return nil
}
