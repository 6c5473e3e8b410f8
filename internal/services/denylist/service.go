package denylist

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/passgate/passgate/internal/storage"
)

// Service holds the common-password set and keyboard-walk patterns used
// by the strength evaluator. The data is read-mostly: lists load at
// startup (or on reload) and evaluation only reads them.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu        sync.RWMutex
	passwords map[string]struct{}
	walks     []string
}

// New creates a new denylist service preloaded with the built-in lists
func New(store storage.Storage, logger *slog.Logger) *Service {
	s := &Service{
		storage: store,
		logger:  logger,
	}
	s.LoadPasswords(defaultCommonPasswords)
	s.LoadWalks(defaultKeyboardWalks)
	return s
}

// Contains reports whether password is in the common-password set.
// Matching is case-insensitive.
func (s *Service) Contains(password string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.passwords[strings.ToLower(password)]
	return ok
}

// MatchWalk returns the first keyboard-walk pattern that occurs in
// password as a substring, forward or reversed, case-insensitively.
// Only the first match is reported even when several patterns occur.
func (s *Service) MatchWalk(password string) (string, bool) {
	lowered := strings.ToLower(password)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, walk := range s.walks {
		if strings.Contains(lowered, walk) || strings.Contains(lowered, reverse(walk)) {
			return walk, true
		}
	}
	return "", false
}

// LoadPasswords replaces the common-password set
func (s *Service) LoadPasswords(passwords []string) {
	set := make(map[string]struct{}, len(passwords))
	for _, p := range passwords {
		// Store lowercase for case-insensitive matching
		set[strings.ToLower(p)] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.passwords = set
}

// LoadWalks replaces the keyboard-walk patterns.
// Pattern order is preserved since the first match wins.
func (s *Service) LoadWalks(walks []string) {
	lowered := make([]string, 0, len(walks))
	for _, w := range walks {
		lowered = append(lowered, strings.ToLower(w))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.walks = lowered
}

// LoadPasswordsFromFile loads the common-password set from a file with one
// entry per line, then persists it to storage for future runs
func (s *Service) LoadPasswordsFromFile(ctx context.Context, path string) error {
	entries, err := readLines(path)
	if err != nil {
		return err
	}

	if err := s.storage.SaveCommonPasswords(ctx, entries); err != nil {
		return err
	}

	s.LoadPasswords(entries)
	return nil
}

// LoadWalksFromFile loads keyboard-walk patterns from a file with one
// pattern per line, then persists them to storage for future runs
func (s *Service) LoadWalksFromFile(ctx context.Context, path string) error {
	entries, err := readLines(path)
	if err != nil {
		return err
	}

	if err := s.storage.SaveKeyboardWalks(ctx, entries); err != nil {
		return err
	}

	s.LoadWalks(entries)
	return nil
}

// LoadFromStorage replaces both lists with the sets persisted in storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	passwords, err := s.storage.GetCommonPasswords(ctx)
	if err != nil {
		return err
	}

	walks, err := s.storage.GetKeyboardWalks(ctx)
	if err != nil {
		return err
	}

	s.LoadPasswords(passwords)
	s.LoadWalks(walks)
	return nil
}

// PasswordCount returns the size of the common-password set
func (s *Service) PasswordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.passwords)
}

// WalkCount returns the number of keyboard-walk patterns
func (s *Service) WalkCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.walks)
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			entries = append(entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
