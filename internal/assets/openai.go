package assets

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/guidesmith/guidesmith/pkg/logger"
)

// openaiProvider generates illustrations through the OpenAI Images API.
type openaiProvider struct {
	api openai.Client
	cfg Config
	log *logger.Logger
}

func newOpenAIProvider(cfg Config, log *logger.Logger) *openaiProvider {
	return &openaiProvider{
		api: openai.NewClient(
			option.WithRequestTimeout(time.Duration(cfg.TimeoutS) * time.Second),
		),
		cfg: cfg,
		log: log,
	}
}

func (p *openaiProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	logPrompt(p.log, p.cfg.LogPrompts, ProviderOpenAI, prompt)

	img, err := p.api.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:  openai.ImageModelGPTImage1,
		Prompt: prompt,
		Size:   openai.ImageGenerateParamsSize(p.cfg.Size),
	})
	if err != nil {
		return nil, fmt.Errorf("assets: openai image generation failed: %w", err)
	}
	if len(img.Data) == 0 {
		return nil, fmt.Errorf("assets: openai returned no image data")
	}

	raw, err := base64.StdEncoding.DecodeString(img.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to decode openai image payload: %w", err)
	}
	return raw, nil
}
