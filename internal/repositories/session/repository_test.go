package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
	"github.com/jeondoksi/jeondoksi-cli/internal/repositories/session"
	"github.com/jeondoksi/jeondoksi-cli/internal/testutils"
)

const testToken = "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig"

// RepositoryTestSuite runs the same cases against every backend
type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Manual
	repo    session.Repository
	newRepo func(*clock.Manual) (session.Repository, func())
	cleanup func()
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewManual(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	s.repo, s.cleanup = s.newRepo(s.clock)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(clk *clock.Manual) (session.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := session.NewRedis(&session.RedisConfig{Client: client, Prefix: "jeondoksi", Clock: clk})
			require.NoError(t, err)
			return repo, cleanup
		},
	})
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(clk *clock.Manual) (session.Repository, func()) {
			db, cleanup := testutils.CreateTestSQLite(t)
			repo, err := session.NewSQLite(&session.SQLiteConfig{DB: db, Clock: clk})
			require.NoError(t, err)
			return repo, cleanup
		},
	})
}

func (s *RepositoryTestSuite) TestGetEmpty() {
	_, err := s.repo.Get(s.ctx)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	s.Require().NoError(s.repo.Save(s.ctx, testToken))

	token, err := s.repo.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(testToken, token.AccessToken)
	s.True(token.SavedAt.Equal(s.clock.Now()))
}

func (s *RepositoryTestSuite) TestSaveReplaces() {
	s.Require().NoError(s.repo.Save(s.ctx, "old"))
	s.clock.Advance(time.Hour)
	s.Require().NoError(s.repo.Save(s.ctx, "new"))

	token, err := s.repo.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal("new", token.AccessToken)
}

func (s *RepositoryTestSuite) TestSaveEmptyToken() {
	err := s.repo.Save(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestClear() {
	s.Require().NoError(s.repo.Save(s.ctx, testToken))
	s.Require().NoError(s.repo.Clear(s.ctx))
	s.Require().NoError(s.repo.Clear(s.ctx))

	_, err := s.repo.Get(s.ctx)
	s.True(errors.IsNotFound(err))
}

func TestRedisConfigValidate(t *testing.T) {
	_, err := session.NewRedis(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = session.NewRedis(&session.RedisConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRedisReadsBareToken(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisClientWithServer(t, func(mr *miniredis.Miniredis) {
		require.NoError(t, mr.Set("session:access_token", testToken))
	})
	defer cleanup()

	repo, err := session.NewRedis(&session.RedisConfig{Client: client})
	require.NoError(t, err)

	token, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testToken, token.AccessToken)

	require.NoError(t, repo.Clear(context.Background()))
	assert.False(t, mr.Exists("session:access_token"))
}
