package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/objectstore"
)

// Store is where finished illustrations live. Put must be atomic with
// respect to Exists: a concurrent reader sees either no object or the full
// object, never a partial write.
type Store interface {
	Exists(ctx context.Context, name string) (bool, error)
	Put(ctx context.Context, name string, data []byte) error
	URL(ctx context.Context, name string) (string, error)
}

// NewStore builds the configured store backend. The minio backend reads
// its own connection settings from the environment.
func NewStore(cfg Config, log *logger.Logger) (Store, error) {
	switch cfg.StoreBackend {
	case BackendMinio:
		oscfg, err := objectstore.NewConfig()
		if err != nil {
			return nil, err
		}
		client, err := objectstore.NewClient(oscfg, log)
		if err != nil {
			return nil, err
		}
		return &minioStore{client: client}, nil
	default:
		return NewFSStore(cfg.OutputDir, cfg.URLPrefix)
	}
}

// fsStore keeps illustrations as files; the directory is the cache index.
type fsStore struct {
	dir       string
	urlPrefix string
}

// NewFSStore creates the output directory if needed and returns a
// filesystem-backed store.
func NewFSStore(dir, urlPrefix string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("assets: failed to create output dir %q: %w", dir, err)
	}
	return &fsStore{dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *fsStore) Exists(_ context.Context, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("assets: failed to stat %q: %w", name, err)
}

// Put writes to a temporary file in the target directory and renames it
// into place, so readers never observe a truncated file at the final path.
func (s *fsStore) Put(_ context.Context, name string, data []byte) error {
	final := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("assets: failed to create temp file for %q: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("assets: failed to write %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("assets: failed to close %q: %w", name, err)
	}

	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("assets: failed to publish %q: %w", name, err)
	}
	return nil
}

func (s *fsStore) URL(_ context.Context, name string) (string, error) {
	return s.urlPrefix + name, nil
}

// minioStore keeps illustrations in a shared bucket so multiple instances
// converge on one cache.
type minioStore struct {
	client *objectstore.Client
}

func (s *minioStore) Exists(ctx context.Context, name string) (bool, error) {
	return s.client.Exists(ctx, name)
}

func (s *minioStore) Put(ctx context.Context, name string, data []byte) error {
	return s.client.Put(ctx, name, data, "image/png")
}

func (s *minioStore) URL(ctx context.Context, name string) (string, error) {
	return s.client.PresignedGetURL(ctx, name)
}
