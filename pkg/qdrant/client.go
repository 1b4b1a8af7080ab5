package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/guidesmith/guidesmith/pkg/logger"
)

// Client wraps the official Qdrant Go client with the handful of
// application-level operations this service needs: collection bootstrap,
// upserts and filtered similarity search.
type Client struct {
	api *qdrant.Client
	cfg *Config
	log *logger.Logger
}

// NewClient constructs a Client and probes connectivity with an immediate
// health check. An unreachable server is logged, not fatal: the index is
// advisory, and retrieval degrades to question-only generation until it
// comes back.
func NewClient(cfg *Config, log *logger.Logger) (*Client, error) {
	port := cfg.Port
	if port == 0 {
		port = 6334
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   port,
		APIKey:                 cfg.ApiKey,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to initialize client: %w", err)
	}

	c := &Client{api: api, cfg: cfg, log: log}

	if err := c.HealthCheck(); err != nil {
		log.Warn("qdrant unreachable, retrieval will run degraded until it recovers", err, map[string]interface{}{
			"endpoint": cfg.Endpoint,
			"port":     port,
		})
		return c, nil
	}

	log.Info("qdrant client connected", nil, map[string]interface{}{
		"endpoint":   cfg.Endpoint,
		"port":       port,
		"collection": cfg.Collection,
	})

	return c, nil
}

// HealthCheck verifies the availability of the Qdrant service. Lightweight
// and fast, suitable for startup and readiness probes.
func (c *Client) HealthCheck() error {
	if c.api == nil {
		return fmt.Errorf("qdrant: client not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := c.api.HealthCheck(ctx); err != nil {
		return fmt.Errorf("qdrant: health check: %w", err)
	}
	return nil
}

// Api returns the underlying Qdrant SDK client for low-level access.
func (c *Client) Api() *qdrant.Client {
	return c.api
}

// Collection returns the collection name this client operates on.
func (c *Client) Collection() string {
	return c.cfg.Collection
}

// Close shuts down the Qdrant client. The SDK keeps no persistent
// connections, so this exists for lifecycle symmetry.
func (c *Client) Close() error {
	return nil
}
