package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/nghuy/gameledger/internal/dependencies/clock"
	"github.com/nghuy/gameledger/internal/services/auth"
	"github.com/nghuy/gameledger/internal/services/ledger"
	"github.com/nghuy/gameledger/internal/services/stats"
	"github.com/nghuy/gameledger/internal/storage"
	"github.com/nghuy/gameledger/internal/storage/memory"
	redisstorage "github.com/nghuy/gameledger/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService   *auth.Service
	LedgerService *ledger.Service
	StatsService  *stats.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds token signing configuration (required)
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed loads the demo dataset into storage on startup
	Seed bool
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	app, err := newWithDependencies(store, clk, cfg.AuthConfig, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Seed {
		if err := app.SeedDemoData(ctx); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) (*App, error) {
	authService, err := auth.New(store, clk, authCfg, logger)
	if err != nil {
		return nil, err
	}
	ledgerService := ledger.New(store, clk, logger)
	statsService := stats.New(store, logger)

	return &App{
		Storage:       store,
		Clock:         clk,
		AuthService:   authService,
		LedgerService: ledgerService,
		StatsService:  statsService,
	}, nil
}
