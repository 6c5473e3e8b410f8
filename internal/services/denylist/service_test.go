package denylist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/passgate/passgate/internal/storage/memory"
	"github.com/passgate/passgate/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestDefaultsLoadedOnCreation() {
	s.Equal(35, s.service.PasswordCount())
	s.Equal(12, s.service.WalkCount())
}

func (s *ServiceSuite) TestContains() {
	s.True(s.service.Contains("password"))
	s.True(s.service.Contains("letmein"))
	s.False(s.service.Contains("uncommon-phrase"))
}

func (s *ServiceSuite) TestContainsIsCaseInsensitive() {
	s.True(s.service.Contains("PASSWORD"))
	s.True(s.service.Contains("PaSsWoRd"))
	s.True(s.service.Contains("QWERTY123"))
}

func (s *ServiceSuite) TestMatchWalkForward() {
	walk, ok := s.service.MatchWalk("xxqwertyxx")
	s.True(ok)
	s.Equal("qwerty", walk)
}

func (s *ServiceSuite) TestMatchWalkReversed() {
	walk, ok := s.service.MatchWalk("xxytrewqxx")
	s.True(ok)
	s.Equal("qwerty", walk)
}

func (s *ServiceSuite) TestMatchWalkCaseInsensitive() {
	_, ok := s.service.MatchWalk("QwErTy")
	s.True(ok)
}

func (s *ServiceSuite) TestMatchWalkFirstMatchWins() {
	// Contains asdfgh and 1234567; asdfgh comes first in the pattern list
	walk, ok := s.service.MatchWalk("asdfgh1234567")
	s.True(ok)
	s.Equal("asdfgh", walk)
}

func (s *ServiceSuite) TestMatchWalkNoMatch() {
	_, ok := s.service.MatchWalk("Tr0ub4dor&3")
	s.False(ok)
}

func (s *ServiceSuite) TestLoadPasswordsReplacesSet() {
	s.service.LoadPasswords([]string{"hunter2"})

	s.Equal(1, s.service.PasswordCount())
	s.True(s.service.Contains("hunter2"))
	s.False(s.service.Contains("password"))
}

func (s *ServiceSuite) TestLoadWalksPreservesOrder() {
	s.service.LoadWalks([]string{"zzz", "aaa"})

	walk, ok := s.service.MatchWalk("aaazzz")
	s.True(ok)
	s.Equal("zzz", walk)
}

func (s *ServiceSuite) TestLoadPasswordsFromFile() {
	path := filepath.Join(s.T().TempDir(), "passwords.txt")
	err := os.WriteFile(path, []byte("hunter2\n\ncorrecthorse\n"), 0o600)
	s.Require().NoError(err)

	err = s.service.LoadPasswordsFromFile(s.ctx, path)
	s.Require().NoError(err)

	s.Equal(2, s.service.PasswordCount())
	s.True(s.service.Contains("hunter2"))
	s.True(s.service.Contains("correcthorse"))

	// The list is also persisted to storage
	saved, err := s.storage.GetCommonPasswords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"hunter2", "correcthorse"}, saved)
}

func (s *ServiceSuite) TestLoadPasswordsFromMissingFile() {
	err := s.service.LoadPasswordsFromFile(s.ctx, filepath.Join(s.T().TempDir(), "nope.txt"))
	s.Error(err)

	// The previous set stays active
	s.True(s.service.Contains("password"))
}

func (s *ServiceSuite) TestLoadWalksFromFile() {
	path := filepath.Join(s.T().TempDir(), "walks.txt")
	err := os.WriteFile(path, []byte("qazwsxedc\nmnbvcxz\n"), 0o600)
	s.Require().NoError(err)

	err = s.service.LoadWalksFromFile(s.ctx, path)
	s.Require().NoError(err)

	s.Equal(2, s.service.WalkCount())
	_, ok := s.service.MatchWalk("xxmnbvcxzxx")
	s.True(ok)
	_, ok = s.service.MatchWalk("qwerty")
	s.False(ok)
}

func (s *ServiceSuite) TestLoadFromStorage() {
	err := s.storage.SaveCommonPasswords(s.ctx, []string{"hunter2"})
	s.Require().NoError(err)
	err = s.storage.SaveKeyboardWalks(s.ctx, []string{"poiuyt"})
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)

	s.True(s.service.Contains("hunter2"))
	_, ok := s.service.MatchWalk("xxpoiuytxx")
	s.True(ok)
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.Error(err)

	// Defaults stay active after a failed load
	s.True(s.service.Contains("password"))
}

func (s *ServiceSuite) TestWatchPasswordsReloadsOnWrite() {
	path := filepath.Join(s.T().TempDir(), "passwords.txt")
	err := os.WriteFile(path, []byte("first\n"), 0o600)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.service.WatchPasswords(ctx, path)
	}()

	// Give the watcher a moment to register before writing
	time.Sleep(100 * time.Millisecond)

	err = os.WriteFile(path, []byte("first\nsecond\n"), 0o600)
	s.Require().NoError(err)

	s.Eventually(func() bool {
		return s.service.Contains("second")
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("watcher did not stop after cancel")
	}
}
