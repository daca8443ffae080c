package player

import (
	"context"
	"testing"

	"github.com/KirkDiggler/injurybot/internal/models"
	"github.com/KirkDiggler/injurybot/internal/repositories"
	"github.com/alicebob/miniredis/v2"
	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	player := &models.Player{
		ID:           "player-1",
		Name:         "Test Player",
		TeamID:       "team-1",
		InjuryRating: "4p50",
		ILReturn:     "w05g2",
	}

	err := s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: player})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(player, retrieved)

	// stored as a hash so il_return can be updated on its own
	s.Equal("w05g2", s.mr.HGet(Key("player-1"), FieldILReturn))
}

func (s *RedisRepositoryTestSuite) TestSavePlayerClearsReturnDate() {
	player := &models.Player{ID: "player-1", Name: "Test Player", InjuryRating: "2p30", ILReturn: "w03g1"}
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: player}))

	player.ILReturn = ""
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: player}))

	retrieved, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Empty(retrieved.ILReturn)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersOnTeam() {
	players := []*models.Player{
		{ID: "player-1", Name: "Player One", TeamID: "team-1", InjuryRating: "1p70"},
		{ID: "player-2", Name: "Player Two", TeamID: "team-1", InjuryRating: "3p40"},
		{ID: "player-3", Name: "Player Three", TeamID: "team-2", InjuryRating: "6p20"},
	}
	for _, player := range players {
		s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: player}))
	}

	team1, err := s.repo.GetPlayersOnTeam(s.ctx, &GetPlayersOnTeamInput{TeamID: "team-1"})
	s.Require().NoError(err)
	s.Require().Len(team1.Players, 2)

	playerMap := make(map[string]*models.Player)
	for _, player := range team1.Players {
		playerMap[player.ID] = player
	}
	s.Contains(playerMap, "player-1")
	s.Contains(playerMap, "player-2")
	s.Equal("3p40", playerMap["player-2"].InjuryRating)

	empty, err := s.repo.GetPlayersOnTeam(s.ctx, &GetPlayersOnTeamInput{TeamID: "no-team"})
	s.Require().NoError(err)
	s.Empty(empty.Players)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentPlayer() {
	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "non-existent-player"})
	s.Require().Error(err)
	s.Equal(ErrPlayerNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestSavePlayerValidation() {
	s.Error(s.repo.SavePlayer(s.ctx, nil))
	s.Error(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: &models.Player{}}))
}

func (s *RedisRepositoryTestSuite) TestStoreUnavailable() {
	s.mr.Close()

	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "player-1"})
	s.True(crerr.Is(err, repositories.ErrPersistenceFailure))

	_, err = s.repo.GetPlayersOnTeam(s.ctx, &GetPlayersOnTeamInput{TeamID: "team-1"})
	s.True(crerr.Is(err, repositories.ErrPersistenceFailure))

	err = s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: &models.Player{ID: "player-1"}})
	s.True(crerr.Is(err, repositories.ErrPersistenceFailure))
}
