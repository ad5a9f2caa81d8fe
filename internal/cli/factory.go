package cli

import (
	"fmt"
	"log/slog"

	"github.com/jwlunsford/stems"
	"github.com/jwlunsford/stems/internal/logging"
	"github.com/jwlunsford/stems/pkg/adapters/file"
	"github.com/jwlunsford/stems/pkg/adapters/memory"
	"github.com/jwlunsford/stems/pkg/adapters/postgres"
	"github.com/jwlunsford/stems/pkg/adapters/redis"
	"github.com/jwlunsford/stems/pkg/domain"
	"github.com/jwlunsford/stems/pkg/ports"
)

// RunOptions carries the flag values shared by all stems commands.
type RunOptions struct {
	Region  string
	Species string
	DBH     float64
	Height  float64
	Bark    string

	CoefficientsPath string // YAML/JSON coefficient document
	DSN              string // Postgres connection string
	RedisAddr        string // optional read-through cache in front of the source
	Verbose          bool
}

// createLogger configures the application logger.
// Verbose mode writes debug logs to Stderr; otherwise logging is off.
func createLogger(verbose bool) *slog.Logger {
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// createProvider selects the coefficient source with standard CLI
// conventions: an explicit --coefficients file wins, then --dsn, then the
// built-in published table. A non-empty redis address wraps the source in
// the read-through cache. The returned closer is always non-nil.
func createProvider(opts RunOptions, logger *slog.Logger) (ports.CoefficientProvider, func() error, error) {
	var provider ports.CoefficientProvider
	closer := func() error { return nil }

	switch {
	case opts.CoefficientsPath != "":
		p, err := file.Load(opts.CoefficientsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("error loading coefficient file: %w", err)
		}
		logger.Debug("using coefficient file", "path", p.Path())
		provider = p
	case opts.DSN != "":
		p, err := postgres.Open(opts.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("error connecting to coefficient database: %w", err)
		}
		logger.Debug("using coefficient database")
		provider = p
		closer = p.Close
	default:
		provider = memory.BuiltIn()
	}

	if opts.RedisAddr != "" {
		cache := redis.New(opts.RedisAddr, "", 0, provider)
		logger.Debug("caching lookups through redis", "addr", opts.RedisAddr)
		source := closer
		closer = func() error {
			err := cache.Close()
			if cerr := source(); err == nil {
				err = cerr
			}
			return err
		}
		provider = cache
	}

	return provider, closer, nil
}

// createModel initializes a stems Model from flag values.
func createModel(opts RunOptions) (*stems.Model, func() error, error) {
	logger := createLogger(opts.Verbose)

	bark, err := domain.ParseBark(opts.Bark)
	if err != nil {
		return nil, nil, err
	}

	provider, closer, err := createProvider(opts, logger)
	if err != nil {
		return nil, nil, err
	}

	model, err := stems.New(opts.Region, opts.Species, opts.DBH, opts.Height, bark,
		stems.WithProvider(provider),
		stems.WithLogger(logger),
	)
	if err != nil {
		_ = closer()
		return nil, nil, err
	}

	return model, closer, nil
}
