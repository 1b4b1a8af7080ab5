package logger

import "os"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Minimum level that gets emitted. One of: debug, info, warning, error.
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`

	// ServiceName is attached to every log line as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"LOG_SERVICE_NAME"`
}

// NewConfig reads the logger configuration from environment variables.
func NewConfig() Config {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = Info
	}

	service := os.Getenv("LOG_SERVICE_NAME")
	if service == "" {
		service = "guidesmith-api"
	}

	return Config{
		Level:       level,
		ServiceName: service,
	}
}
