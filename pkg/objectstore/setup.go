package objectstore

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/guidesmith/guidesmith/pkg/logger"
)

// setupTimeout bounds connection validation and bucket bootstrap.
const setupTimeout = 30 * time.Second

// Client wraps a MinIO client scoped to a single asset bucket.
type Client struct {
	api *minio.Client
	cfg Config
	log *logger.Logger
}

// NewClient connects to MinIO, validates the connection, and ensures the
// configured bucket exists.
func NewClient(cfg Config, log *logger.Logger) (*Client, error) {
	api, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		log.Error("failed to create minio client", err, map[string]interface{}{
			"endpoint": cfg.Endpoint,
			"secure":   cfg.UseSSL,
		})
		return nil, fmt.Errorf("objectstore: failed to create client: %w", err)
	}

	c := &Client{api: api, cfg: cfg, log: log}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()
	if err := c.ensureBucket(ctx); err != nil {
		log.Error("failed to verify asset bucket", err, map[string]interface{}{
			"endpoint": cfg.Endpoint,
			"bucket":   cfg.Bucket,
		})
		return nil, err
	}

	log.Info("connected to object store", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"bucket":   cfg.Bucket,
	})
	return c, nil
}

// ensureBucket creates the configured bucket when it does not exist yet.
func (c *Client) ensureBucket(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("objectstore: failed to check bucket %q: %w", c.cfg.Bucket, err)
	}
	if exists {
		return nil
	}

	err = c.api.MakeBucket(ctx, c.cfg.Bucket, minio.MakeBucketOptions{Region: c.cfg.Region})
	if err != nil {
		return fmt.Errorf("objectstore: failed to create bucket %q: %w", c.cfg.Bucket, err)
	}
	return nil
}

// Bucket returns the configured bucket name.
func (c *Client) Bucket() string {
	return c.cfg.Bucket
}
