package assets

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Provider names accepted by IMAGE_PROVIDER.
const (
	ProviderOpenAI    = "openai"
	ProviderStability = "stability"
)

// Store backends accepted by ASSET_STORE_BACKEND.
const (
	BackendFS    = "fs"
	BackendMinio = "minio"
)

// DefaultStyle is the illustration style applied when IMAGE_STYLE is unset.
const DefaultStyle = "instructional diagram, flat UI, neutral background, clear labels, no clutter"

// Config holds the illustration pipeline settings.
type Config struct {
	Provider     string // Image backend: "openai" or "stability"
	Style        string // Style fragment baked into every illustration prompt
	Size         string // Image size as WxH (OpenAI providers only)
	LogPrompts   bool   // Log outgoing prompts (truncated) for debugging
	StoreBackend string // Asset store: "fs" or "minio"
	OutputDir    string // Directory for the fs backend
	URLPrefix    string // Public URL prefix for fs-backed assets
	StabilityKey string // Stability API key (stability provider only)
	TimeoutS     int    // Per-generation timeout in seconds
	Concurrency  int    // Max in-flight generations per guide
}

// DefaultConfig returns the default illustration settings.
func DefaultConfig() Config {
	return Config{
		Provider:     ProviderOpenAI,
		Style:        DefaultStyle,
		Size:         "1024x1024",
		StoreBackend: BackendFS,
		OutputDir:    "static/images",
		URLPrefix:    "/static/images/",
		TimeoutS:     120,
		Concurrency:  4,
	}
}

// NewConfig reads the illustration configuration from the environment.
func NewConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("IMAGE_PROVIDER"); v != "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("IMAGE_STYLE"); v != "" {
		cfg.Style = v
	}
	if v := os.Getenv("IMAGE_SIZE"); v != "" {
		cfg.Size = v
	}
	switch strings.ToLower(os.Getenv("LOG_IMAGE_PROMPTS")) {
	case "1", "true", "yes":
		cfg.LogPrompts = true
	}
	if v := os.Getenv("ASSET_STORE_BACKEND"); v != "" {
		cfg.StoreBackend = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("ASSET_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	cfg.StabilityKey = os.Getenv("STABILITY_API_KEY")
	if v := os.Getenv("IMAGE_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("assets: invalid IMAGE_TIMEOUT_SECONDS %q", v)
		}
		cfg.TimeoutS = secs
	}
	if v := os.Getenv("IMAGE_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("assets: invalid IMAGE_CONCURRENCY %q", v)
		}
		cfg.Concurrency = n
	}

	return cfg, cfg.Validate()
}

// Validate checks provider and backend selections.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderStability:
	default:
		return fmt.Errorf("assets: unknown image provider %q", c.Provider)
	}
	switch c.StoreBackend {
	case BackendFS, BackendMinio:
	default:
		return fmt.Errorf("assets: unknown store backend %q", c.StoreBackend)
	}
	if c.Provider == ProviderStability && c.StabilityKey == "" {
		return fmt.Errorf("assets: STABILITY_API_KEY required for the stability provider")
	}
	return nil
}
