package generation

import (
	"errors"
	"testing"
)

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("got %v, want ErrMissingAPIKey", err)
	}

	cfg.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRequiresModel(t *testing.T) {
	cfg := Config{APIKey: "sk-test"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for empty model")
	}
}
