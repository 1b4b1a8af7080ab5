package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// Put writes data under the given key with the provided content type.
func (c *Client) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return fmt.Errorf("objectstore: key cannot be empty")
	}

	_, err := c.api.PutObject(ctx, c.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("objectstore: failed to put %q: %w", key, err)
	}
	return nil
}

// Get reads the full object stored under key.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := c.api.GetObject(ctx, c.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("objectstore: failed to get %q: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("objectstore: failed to read %q: %w", key, err)
	}
	return data, nil
}

// Exists reports whether an object is stored under key. A missing key is not
// an error; other failures (network, auth) are.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.api.StatObject(ctx, c.cfg.Bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
		return false, nil
	}
	return false, fmt.Errorf("objectstore: failed to stat %q: %w", key, err)
}

// PresignedGetURL returns a time-limited URL for downloading the object.
func (c *Client) PresignedGetURL(ctx context.Context, key string) (string, error) {
	u, err := c.api.PresignedGetObject(ctx, c.cfg.Bucket, key, c.cfg.PresignExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("objectstore: failed to presign %q: %w", key, err)
	}
	return u.String(), nil
}
