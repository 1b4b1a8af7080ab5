package assets

import (
	"context"
	"fmt"

	"github.com/guidesmith/guidesmith/pkg/logger"
)

// Provider turns a text prompt into raw PNG bytes.
type Provider interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// NewProvider selects the image backend once at configuration load.
func NewProvider(cfg Config, log *logger.Logger) (Provider, error) {
	switch cfg.Provider {
	case ProviderStability:
		return newStabilityProvider(cfg, log), nil
	case ProviderOpenAI:
		return newOpenAIProvider(cfg, log), nil
	default:
		return nil, fmt.Errorf("assets: unknown image provider %q", cfg.Provider)
	}
}

// logPrompt writes the (truncated) outgoing prompt when prompt logging is
// enabled.
func logPrompt(log *logger.Logger, enabled bool, provider, prompt string) {
	if !enabled {
		return
	}
	if len(prompt) > 180 {
		prompt = prompt[:180] + "…"
	}
	log.Debug("image prompt", nil, map[string]interface{}{
		"provider": provider,
		"prompt":   prompt,
	})
}
