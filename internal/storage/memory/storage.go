package memory

import (
	"context"
	"sync"

	"github.com/passgate/passgate/internal/model"
	"github.com/passgate/passgate/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	commonPasswords []string
	keyboardWalks   []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Common-password operations

func (s *Storage) GetCommonPasswords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.commonPasswords == nil {
		return nil, model.ErrDenylistNotFound
	}
	return append([]string(nil), s.commonPasswords...), nil
}

func (s *Storage) SaveCommonPasswords(ctx context.Context, passwords []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Keep an empty save distinguishable from never-saved
	s.commonPasswords = append(make([]string, 0, len(passwords)), passwords...)
	return nil
}

// Keyboard-walk operations

func (s *Storage) GetKeyboardWalks(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.keyboardWalks == nil {
		return nil, model.ErrDenylistNotFound
	}
	return append([]string(nil), s.keyboardWalks...), nil
}

func (s *Storage) SaveKeyboardWalks(ctx context.Context, walks []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyboardWalks = append(make([]string, 0, len(walks)), walks...)
	return nil
}
