package server

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the HTTP server settings.
type Config struct {
	Port         int           // Listen port
	ReadTimeout  time.Duration // Max time to read a request
	WriteTimeout time.Duration // Max time to write a response
	StaticDir    string        // Directory served under /static/images/
}

// DefaultConfig returns the default server settings. WriteTimeout is
// generous because a cold guide request waits on model and image calls.
func DefaultConfig() Config {
	return Config{
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		StaticDir:    "static/images",
	}
}

// NewConfig reads the server configuration from the environment.
func NewConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("server: invalid SERVER_PORT %q", v)
		}
		cfg.Port = port
	}
	if v := os.Getenv("SERVER_STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}

	return cfg, nil
}
