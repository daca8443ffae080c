package injury

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/injurybot/internal/models"
	playerRepo "github.com/KirkDiggler/injurybot/internal/repositories/player"
	"github.com/alicebob/miniredis/v2"
	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   *redisRepository
	ctx    context.Context
	now    time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
	s.now = time.Date(2026, 4, 12, 19, 30, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newInjury(id, playerID string) *models.Injury {
	return &models.Injury{
		ID:         id,
		Season:     12,
		PlayerID:   playerID,
		TotalGames: 3,
		Start:      models.CalendarPosition{Week: 5, Game: 2},
		End:        models.CalendarPosition{Week: 6, Game: 1},
		IsActive:   true,
		CreatedAt:  s.now,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetInjury() {
	injury := s.newInjury("injury-1", "player-1")
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: injury}))

	retrieved, err := s.repo.getInjury(s.ctx, s.client, "injury-1")
	s.Require().NoError(err)
	s.Equal(injury.ID, retrieved.ID)
	s.Equal(injury.Start, retrieved.Start)
	s.Equal(injury.End, retrieved.End)
	s.Equal(3, retrieved.TotalGames)
	s.True(retrieved.IsActive)
	s.True(retrieved.ClearedAt.IsZero())
	s.True(injury.CreatedAt.Equal(retrieved.CreatedAt))

	active, err := s.repo.GetActiveInjury(s.ctx, &GetActiveInjuryInput{Season: 12, PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal("injury-1", active.ID)

	// The player's return date is written with the injury
	s.Equal("w06g1", s.mr.HGet(playerRepo.Key("player-1"), playerRepo.FieldILReturn))
}

func (s *RedisRepositoryTestSuite) TestCreateInjury_ActiveInjuryExists() {
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-1", "player-1")}))

	err := s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-2", "player-1")})
	s.ErrorIs(err, ErrActiveInjuryExists)

	_, err = s.repo.getInjury(s.ctx, s.client, "injury-2")
	s.ErrorIs(err, ErrInjuryNotFound)
}

func (s *RedisRepositoryTestSuite) TestCreateInjury_OtherSeasonIsIndependent() {
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-1", "player-1")}))

	next := s.newInjury("injury-2", "player-1")
	next.Season = 13
	s.NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: next}))
}

func (s *RedisRepositoryTestSuite) TestDeactivateInjury() {
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-1", "player-1")}))

	clearedAt := s.now.Add(time.Hour)
	cleared, err := s.repo.DeactivateInjury(s.ctx, &DeactivateInjuryInput{InjuryID: "injury-1", ClearedAt: clearedAt})
	s.Require().NoError(err)
	s.False(cleared.IsActive)
	s.True(clearedAt.Equal(cleared.ClearedAt))

	_, err = s.repo.GetActiveInjury(s.ctx, &GetActiveInjuryInput{Season: 12, PlayerID: "player-1"})
	s.ErrorIs(err, ErrInjuryNotFound)
	s.Empty(s.mr.HGet(playerRepo.Key("player-1"), playerRepo.FieldILReturn))

	// The record itself is kept for history
	stored, err := s.repo.getInjury(s.ctx, s.client, "injury-1")
	s.Require().NoError(err)
	s.False(stored.IsActive)

	// A cleared player can be injured again
	s.NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-2", "player-1")}))
}

func (s *RedisRepositoryTestSuite) ilReturn(playerID string) string {
	return s.mr.HGet(playerRepo.Key(playerID), playerRepo.FieldILReturn)
}

func (s *RedisRepositoryTestSuite) TestReturnDateFollowsNewestSeason() {
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-1", "player-1")}))

	next := s.newInjury("injury-2", "player-1")
	next.Season = 13
	next.End = models.CalendarPosition{Week: 1, Game: 4}
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: next}))
	s.Equal("w01g4", s.ilReturn("player-1"))

	// Clearing the older season leaves the newer return date alone
	_, err := s.repo.DeactivateInjury(s.ctx, &DeactivateInjuryInput{InjuryID: "injury-1", ClearedAt: s.now})
	s.Require().NoError(err)
	s.Equal("w01g4", s.ilReturn("player-1"))

	_, err = s.repo.DeactivateInjury(s.ctx, &DeactivateInjuryInput{InjuryID: "injury-2", ClearedAt: s.now})
	s.Require().NoError(err)
	s.Empty(s.ilReturn("player-1"))
}

func (s *RedisRepositoryTestSuite) TestReturnDateIgnoresOlderSeason() {
	next := s.newInjury("injury-2", "player-1")
	next.Season = 13
	next.End = models.CalendarPosition{Week: 1, Game: 4}
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: next}))

	// A late entry for last season does not overwrite this season's date
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-1", "player-1")}))
	s.Equal("w01g4", s.ilReturn("player-1"))

	// Clearing this season falls back to the one still active
	_, err := s.repo.DeactivateInjury(s.ctx, &DeactivateInjuryInput{InjuryID: "injury-2", ClearedAt: s.now})
	s.Require().NoError(err)
	s.Equal("w06g1", s.ilReturn("player-1"))
}

func (s *RedisRepositoryTestSuite) TestDeactivateInjury_Twice() {
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-1", "player-1")}))

	_, err := s.repo.DeactivateInjury(s.ctx, &DeactivateInjuryInput{InjuryID: "injury-1", ClearedAt: s.now})
	s.Require().NoError(err)

	_, err = s.repo.DeactivateInjury(s.ctx, &DeactivateInjuryInput{InjuryID: "injury-1", ClearedAt: s.now})
	s.ErrorIs(err, ErrInjuryNotActive)
}

func (s *RedisRepositoryTestSuite) TestDeactivateInjury_NotFound() {
	_, err := s.repo.DeactivateInjury(s.ctx, &DeactivateInjuryInput{InjuryID: "missing", ClearedAt: s.now})
	s.ErrorIs(err, ErrInjuryNotFound)
}

func (s *RedisRepositoryTestSuite) TestListInjuries() {
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-1", "player-1")}))
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-2", "player-2")}))
	_, err := s.repo.DeactivateInjury(s.ctx, &DeactivateInjuryInput{InjuryID: "injury-1", ClearedAt: s.now})
	s.Require().NoError(err)
	s.Require().NoError(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-3", "player-1")}))

	all, err := s.repo.ListInjuries(s.ctx, &ListInjuriesInput{Season: 12})
	s.Require().NoError(err)
	s.Require().Len(all.Injuries, 3)
	s.Equal("injury-1", all.Injuries[0].ID)
	s.Equal("injury-2", all.Injuries[1].ID)
	s.Equal("injury-3", all.Injuries[2].ID)

	mine, err := s.repo.ListInjuries(s.ctx, &ListInjuriesInput{Season: 12, PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Require().Len(mine.Injuries, 2)
	s.False(mine.Injuries[0].IsActive)
	s.True(mine.Injuries[1].IsActive)

	empty, err := s.repo.ListInjuries(s.ctx, &ListInjuriesInput{Season: 1})
	s.Require().NoError(err)
	s.Empty(empty.Injuries)
}

func (s *RedisRepositoryTestSuite) TestStoreUnavailable() {
	s.mr.Close()

	err := s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: s.newInjury("injury-1", "player-1")})
	s.Error(err)
	s.True(crerr.Is(err, ErrPersistenceFailure))

	_, err = s.repo.ListInjuries(s.ctx, &ListInjuriesInput{Season: 12})
	s.True(crerr.Is(err, ErrPersistenceFailure))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	s.Error(s.repo.CreateInjury(s.ctx, nil))
	s.Error(s.repo.CreateInjury(s.ctx, &CreateInjuryInput{Injury: &models.Injury{}}))

	_, err := s.repo.GetActiveInjury(s.ctx, &GetActiveInjuryInput{Season: 12})
	s.Error(err)

	_, err = s.repo.DeactivateInjury(s.ctx, nil)
	s.Error(err)
}
