package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/passgate/passgate/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	client := goredis.NewClient(&goredis.Options{
		Addr: s.mini.Addr(),
	})
	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	_ = s.storage.Close()
}

func (s *StorageSuite) TestGetCommonPasswordsNotFound() {
	_, err := s.storage.GetCommonPasswords(s.ctx)
	s.ErrorIs(err, model.ErrDenylistNotFound)
}

func (s *StorageSuite) TestGetKeyboardWalksNotFound() {
	_, err := s.storage.GetKeyboardWalks(s.ctx)
	s.ErrorIs(err, model.ErrDenylistNotFound)
}

func (s *StorageSuite) TestSaveAndGetCommonPasswords() {
	err := s.storage.SaveCommonPasswords(s.ctx, []string{"password", "letmein"})
	s.Require().NoError(err)

	got, err := s.storage.GetCommonPasswords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"password", "letmein"}, got)
}

func (s *StorageSuite) TestSaveAndGetKeyboardWalks() {
	err := s.storage.SaveKeyboardWalks(s.ctx, []string{"qwerty", "asdfgh"})
	s.Require().NoError(err)

	got, err := s.storage.GetKeyboardWalks(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"qwerty", "asdfgh"}, got)
}

func (s *StorageSuite) TestSaveReplacesPreviousList() {
	err := s.storage.SaveCommonPasswords(s.ctx, []string{"first"})
	s.Require().NoError(err)
	err = s.storage.SaveCommonPasswords(s.ctx, []string{"second"})
	s.Require().NoError(err)

	got, err := s.storage.GetCommonPasswords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"second"}, got)
}

func (s *StorageSuite) TestListsUseSeparateKeys() {
	err := s.storage.SaveCommonPasswords(s.ctx, []string{"password"})
	s.Require().NoError(err)

	_, err = s.storage.GetKeyboardWalks(s.ctx)
	s.ErrorIs(err, model.ErrDenylistNotFound)
}

func (s *StorageSuite) TestListsHaveNoExpiry() {
	err := s.storage.SaveCommonPasswords(s.ctx, []string{"password"})
	s.Require().NoError(err)

	s.mini.FastForward(24 * time.Hour)

	got, err := s.storage.GetCommonPasswords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"password"}, got)
}

func (s *StorageSuite) TestCorruptDataReturnsError() {
	s.Require().NoError(s.mini.Set(commonPasswordsKey(), "not json"))

	_, err := s.storage.GetCommonPasswords(s.ctx)
	s.Error(err)
	s.NotErrorIs(err, model.ErrDenylistNotFound)
}
