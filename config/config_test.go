package config

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultSizingConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultSizingConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.LogLevel != "" {
		t.Errorf("default LogLevel = %q, want empty so the caller's logger level is kept", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*SizingConfig)
	}{
		{"unknown policy", func(c *SizingConfig) { c.Policy = "prime" }},
		{"zero max length", func(c *SizingConfig) { c.MaxFastLength = 0 }},
		{"zero check interval", func(c *SizingConfig) { c.CancelCheckInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultSizingConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadSizingConfig(t *testing.T) {
	t.Parallel()

	cfg, err := LoadSizingConfig(strings.NewReader(`{"policy": "pow2", "log_level": "debug"}`))
	if err != nil {
		t.Fatalf("LoadSizingConfig error: %v", err)
	}

	if cfg.Policy != PolicyPow2 {
		t.Errorf("Policy = %q, want %q", cfg.Policy, PolicyPow2)
	}
	if cfg.MaxFastLength != 1<<30 {
		t.Errorf("MaxFastLength = %d, want default", cfg.MaxFastLength)
	}
	if cfg.CancelCheckInterval != 1024 {
		t.Errorf("CancelCheckInterval = %d, want default", cfg.CancelCheckInterval)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadSizingConfigRejects(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`{"policy": "odd"}`,
		`{"unknown": 1}`,
		`not json`,
	}

	for _, in := range inputs {
		if _, err := LoadSizingConfig(strings.NewReader(in)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("LoadSizingConfig(%q) error = %v, want ErrInvalidConfig", in, err)
		}
	}
}
