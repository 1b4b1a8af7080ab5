package objectstore

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config contains MinIO connection details for the asset bucket.
type Config struct {
	Endpoint        string        // MinIO server endpoint, e.g. "localhost:9000"
	AccessKeyID     string        // MinIO access key
	SecretAccessKey string        // MinIO secret key
	UseSSL          bool          // Use SSL (true for "https", false for "http")
	Bucket          string        // Bucket holding generated assets
	Region          string        // Region for bucket creation (e.g. "us-east-1")
	PresignExpiry   time.Duration // Expiration for presigned GET URLs
}

// DefaultConfig returns a Config with sensible defaults for local development.
func DefaultConfig() Config {
	return Config{
		Endpoint:      "localhost:9000",
		UseSSL:        false,
		Bucket:        "guide-assets",
		Region:        "us-east-1",
		PresignExpiry: 15 * time.Minute,
	}
}

// NewConfig reads the object store configuration from the environment,
// falling back to DefaultConfig for anything unset.
func NewConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	cfg.AccessKeyID = os.Getenv("MINIO_ACCESS_KEY")
	cfg.SecretAccessKey = os.Getenv("MINIO_SECRET_KEY")
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		useSSL, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("objectstore: invalid MINIO_USE_SSL %q: %w", v, err)
		}
		cfg.UseSSL = useSSL
	}
	if v := os.Getenv("MINIO_BUCKET"); v != "" {
		cfg.Bucket = v
	}
	if v := os.Getenv("MINIO_REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv("MINIO_PRESIGN_EXPIRY_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("objectstore: invalid MINIO_PRESIGN_EXPIRY_SECONDS %q", v)
		}
		cfg.PresignExpiry = time.Duration(secs) * time.Second
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration is complete enough to connect.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("objectstore: endpoint cannot be empty")
	}
	if c.Bucket == "" {
		return fmt.Errorf("objectstore: bucket cannot be empty")
	}
	if c.AccessKeyID == "" || c.SecretAccessKey == "" {
		return fmt.Errorf("objectstore: access key and secret key are required")
	}
	return nil
}
