package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/passgate/passgate/internal/model"
	"github.com/passgate/passgate/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Common-password operations

func (s *Storage) GetCommonPasswords(ctx context.Context) ([]string, error) {
	return s.getList(ctx, commonPasswordsKey())
}

func (s *Storage) SaveCommonPasswords(ctx context.Context, passwords []string) error {
	return s.saveList(ctx, commonPasswordsKey(), passwords)
}

// Keyboard-walk operations

func (s *Storage) GetKeyboardWalks(ctx context.Context) ([]string, error) {
	return s.getList(ctx, keyboardWalksKey())
}

func (s *Storage) SaveKeyboardWalks(ctx context.Context, walks []string) error {
	return s.saveList(ctx, keyboardWalksKey(), walks)
}

func (s *Storage) getList(ctx context.Context, key string) ([]string, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDenylistNotFound
		}
		return nil, err
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Storage) saveList(ctx context.Context, key string, entries []string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	// List data has no TTL; it lives until replaced
	return s.client.Set(ctx, key, data, 0).Err()
}
