package embedding

import (
	"context"
	"fmt"
)

// Client is the public entrypoint for computing embeddings.
//
// It hides provider details (endpoints, HTTP, auth) from the application
// layer. The configured model must match the model the index was built
// with, otherwise retrieval quality degrades silently; that contract is the
// caller's to uphold.
type Client struct {
	provider Provider
}

// NewClient constructs a Client from Config. It validates the config and
// internally constructs the inference provider. Application code should
// depend on *Client, not on Provider.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	return &Client{provider: p}, nil
}

// CreateEmbeddings executes a single embedding request for one or more texts.
func (c *Client) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	return c.provider.Create(ctx, texts...)
}

// Embed is a convenience wrapper for the common single-text case.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.provider.Create(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedding: provider returned no vectors")
	}
	return vectors[0], nil
}

// Close releases any internal resources held by the provider.
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
