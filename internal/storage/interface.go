package storage

import (
	"context"
)

// Storage defines the interface for persisting denylist data.
// Candidate passwords and verdicts are never stored; the only persisted
// data is the static list content the evaluator reads.
type Storage interface {
	// Common-password operations
	GetCommonPasswords(ctx context.Context) ([]string, error)
	SaveCommonPasswords(ctx context.Context, passwords []string) error

	// Keyboard-walk operations
	GetKeyboardWalks(ctx context.Context) ([]string, error)
	SaveKeyboardWalks(ctx context.Context, walks []string) error
}
