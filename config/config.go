package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// SizePolicy selects how a transform length is rounded before planning.
type SizePolicy string

const (
	PolicyExact SizePolicy = "exact" // use the requested length as is
	PolicyPow2  SizePolicy = "pow2"  // next power of two
	PolicyFast  SizePolicy = "fast"  // next 2-3-5 smooth length
)

// ErrInvalidConfig is returned by Validate and LoadSizingConfig.
var ErrInvalidConfig = errors.New("config: invalid sizing config")

// SizingConfig configures transform length selection
type SizingConfig struct {
	Policy SizePolicy `json:"policy"`

	// Upper bound for the smooth-length search. Requests that cannot be
	// satisfied at or below it fail instead of searching further.
	MaxFastLength uint `json:"max_fast_length"`

	// Number of candidates tried between cancellation checks
	CancelCheckInterval int `json:"cancel_check_interval"`

	// "debug", "info", "warn", "error". Empty keeps the level of the logger
	// handed to the sizing code.
	LogLevel string `json:"log_level,omitempty"`
}

// DefaultSizingConfig returns defaults suited to audio-length signals
func DefaultSizingConfig() *SizingConfig {
	return &SizingConfig{
		Policy:              PolicyFast,
		MaxFastLength:       1 << 30,
		CancelCheckInterval: 1024,
	}
}

// Validate reports the first invalid field
func (c *SizingConfig) Validate() error {
	switch c.Policy {
	case PolicyExact, PolicyPow2, PolicyFast:
	default:
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, c.Policy)
	}

	if c.MaxFastLength == 0 {
		return fmt.Errorf("%w: max_fast_length must be positive", ErrInvalidConfig)
	}

	if c.CancelCheckInterval <= 0 {
		return fmt.Errorf("%w: cancel_check_interval must be positive", ErrInvalidConfig)
	}

	return nil
}

// LoadSizingConfig decodes JSON from r on top of DefaultSizingConfig, so
// omitted fields keep their defaults.
func LoadSizingConfig(r io.Reader) (*SizingConfig, error) {
	cfg := DefaultSizingConfig()

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
