package qdrant

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/guidesmith/guidesmith/pkg/logger"
)

func newUnreachableConfig(t *testing.T) *Config {
	t.Helper()
	port, err := getFreePort()
	if err != nil {
		t.Fatalf("getFreePort: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Endpoint = "localhost"
	cfg.Port = port
	cfg.Timeout = 2 * time.Second
	return cfg
}

func TestNewClientUnreachableServerIsNonFatal(t *testing.T) {
	log := logger.NewLoggerClient(logger.Config{Level: "error", ServiceName: "test"})

	client, err := NewClient(newUnreachableConfig(t), log)
	if err != nil {
		t.Fatalf("construction must not fail when the server is down: %v", err)
	}
	if client == nil {
		t.Fatal("expected a usable client")
	}

	// The degradation is visible per call, not at construction.
	err = client.HealthCheck()
	if err == nil {
		t.Error("expected the health check to report the down server")
	}
	if strings.Count(err.Error(), "qdrant: health check") != 1 {
		t.Errorf("error must carry the prefix exactly once: %q", err)
	}
	if _, err := client.Search(context.Background(), SearchRequest{Vector: []float32{0.1}, TopK: 1}); err == nil {
		t.Error("expected search against a down server to fail")
	}
}

func TestLifecycleStartsWithoutQdrant(t *testing.T) {
	var client *Client

	app := fxtest.New(t,
		logger.FXModule,
		FXModule,
		fx.Replace(newUnreachableConfig(t)),
		fx.Populate(&client),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		t.Fatalf("application must start without a reachable index: %v", err)
	}
	if client == nil {
		t.Fatal("expected the client to be populated")
	}
	if err := app.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
