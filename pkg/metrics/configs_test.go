package metrics

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("METRICS_ADDRESS", "")
	t.Setenv("METRICS_SERVICE_NAME", "")
	t.Setenv("METRICS_ENABLE_DEFAULT_COLLECTORS", "")

	cfg := NewConfig()

	if cfg.Address != DefaultMetricsAddress {
		t.Errorf("address = %q, want %q", cfg.Address, DefaultMetricsAddress)
	}
	if !cfg.EnableDefaultCollectors {
		t.Error("default collectors must be enabled by default")
	}
}

func TestNewConfigDisableDefaultCollectors(t *testing.T) {
	t.Setenv("METRICS_ENABLE_DEFAULT_COLLECTORS", "false")

	if NewConfig().EnableDefaultCollectors {
		t.Error("METRICS_ENABLE_DEFAULT_COLLECTORS=false must disable the collectors")
	}
}

func TestNewConfigEnableDefaultCollectorsExplicit(t *testing.T) {
	t.Setenv("METRICS_ENABLE_DEFAULT_COLLECTORS", "true")

	if !NewConfig().EnableDefaultCollectors {
		t.Error("METRICS_ENABLE_DEFAULT_COLLECTORS=true must enable the collectors")
	}
}
