package fastsize

import (
	"context"
	"fmt"

	"github.com/RyanBlaney/sonido-grid/config"
	"github.com/RyanBlaney/sonido-grid/logging"
)

// Finder rounds lengths according to a SizingConfig. It is immutable after
// construction and safe for concurrent use.
type Finder struct {
	policy   config.SizePolicy
	limit    uint
	interval int
	logger   logging.Logger
}

// NewFinder validates cfg and builds a Finder. A nil cfg uses
// config.DefaultSizingConfig and a nil logger uses the global logger.
func NewFinder(cfg *config.SizingConfig, logger logging.Logger) (*Finder, error) {
	if cfg == nil {
		cfg = config.DefaultSizingConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger = logging.OrGlobal(logger).WithFields(logging.Fields{
		"component": "fastsize",
		"policy":    string(cfg.Policy),
	})
	if cfg.LogLevel != "" {
		logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	}

	return &Finder{
		policy:   cfg.Policy,
		limit:    cfg.MaxFastLength,
		interval: cfg.CancelCheckInterval,
		logger:   logger,
	}, nil
}

// Policy returns the rounding policy in use.
func (f *Finder) Policy() config.SizePolicy {
	return f.policy
}

// Size returns the transform length to plan for a request of n samples.
func (f *Finder) Size(ctx context.Context, n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	var (
		size uint
		err  error
	)

	switch f.policy {
	case config.PolicyExact:
		return n, nil
	case config.PolicyPow2:
		size = NextPow2(uint(n))
		if size == 0 || size > f.limit {
			err = fmt.Errorf("%w: limit %d", ErrSearchExhausted, f.limit)
		}
	default:
		size, err = search(ctx, uint(n), f.limit, f.interval)
	}

	if err != nil {
		f.logger.Warn("no transform length found", logging.Fields{
			"requested": n,
			"error":     err.Error(),
		})
		return 0, err
	}

	f.logger.Debug("rounded transform length", logging.Fields{
		"requested": n,
		"size":      size,
	})
	return int(size), nil
}
