package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/guidesmith/guidesmith/pkg/logger"
)

// stabilityEndpoint is the Stability core text-to-image endpoint.
const stabilityEndpoint = "https://api.stability.ai/v2beta/stable-image/generate/core"

// errorBodyLimit caps how much of an error response is carried in the
// returned error.
const errorBodyLimit = 300

// stabilityProvider generates illustrations through the Stability REST API.
type stabilityProvider struct {
	httpClient *http.Client
	cfg        Config
	log        *logger.Logger
}

func newStabilityProvider(cfg Config, log *logger.Logger) *stabilityProvider {
	return &stabilityProvider{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutS) * time.Second},
		cfg:        cfg,
		log:        log,
	}
}

func (p *stabilityProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	logPrompt(p.log, p.cfg.LogPrompts, ProviderStability, prompt)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	fields := map[string]string{
		"prompt":        prompt,
		"mode":          "text-to-image",
		"output_format": "png",
		"aspect_ratio":  "1:1",
	}
	for k, v := range fields {
		if err := form.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("assets: failed to build stability request: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("assets: failed to build stability request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, stabilityEndpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to build stability request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.StabilityKey)
	req.Header.Set("Accept", "image/png")
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: stability request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("assets: stability API error: %d %s", resp.StatusCode, snippet)
	}

	return io.ReadAll(resp.Body)
}
