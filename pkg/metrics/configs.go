package metrics

import "os"

// DefaultMetricsAddress is used when METRICS_ADDRESS is not set.
const DefaultMetricsAddress = ":9090"

// Config controls the Prometheus metrics endpoint.
type Config struct {
	// Address the metrics HTTP server listens on, e.g. ":9090".
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// EnableDefaultCollectors registers the built-in Go runtime and process
	// collectors in addition to the service's own instruments. On unless
	// METRICS_ENABLE_DEFAULT_COLLECTORS is set to "false".
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// ServiceName becomes a constant label on every metric.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}

// NewConfig reads the metrics configuration from environment variables.
func NewConfig() Config {
	addr := os.Getenv("METRICS_ADDRESS")
	if addr == "" {
		addr = DefaultMetricsAddress
	}

	service := os.Getenv("METRICS_SERVICE_NAME")
	if service == "" {
		service = "guidesmith-api"
	}

	enableCollectors := true
	if v := os.Getenv("METRICS_ENABLE_DEFAULT_COLLECTORS"); v != "" {
		enableCollectors = v != "false"
	}

	return Config{
		Address:                 addr,
		EnableDefaultCollectors: enableCollectors,
		ServiceName:             service,
	}
}
