package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/passgate/passgate/internal/services/denylist"
	"github.com/passgate/passgate/internal/services/strength"
	"github.com/passgate/passgate/internal/storage"
	"github.com/passgate/passgate/internal/storage/memory"
	redisstorage "github.com/passgate/passgate/internal/storage/redis"
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

	// Services
	DenylistService *denylist.Service
	StrengthService *strength.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Policy holds the evaluation limits (optional)
	// If zero value, defaults to strength.DefaultPolicy()
	Policy strength.Policy
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
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

	return newWithDependencies(store, cfg.Policy, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, policy strength.Policy, logger *slog.Logger) *App {
	denylistService := denylist.New(store, logger)
	strengthService := strength.New(denylistService, policy)

	return &App{
		Storage:         store,
		DenylistService: denylistService,
		StrengthService: strengthService,
	}
}
