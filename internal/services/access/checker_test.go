package access

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/injurybot/internal/models"
	playerRepo "github.com/KirkDiggler/injurybot/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/injurybot/internal/repositories/player/mocks"
	teamRepo "github.com/KirkDiggler/injurybot/internal/repositories/team"
	teamMocks "github.com/KirkDiggler/injurybot/internal/repositories/team/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type CheckerTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockPlayerRepo *playerMocks.MockRepository
	mockTeamRepo   *teamMocks.MockRepository
	checker        *Checker
	ctx            context.Context

	injury *models.Injury
}

func (s *CheckerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockTeamRepo = teamMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	checker, err := New(&Config{
		PlayerRepo: s.mockPlayerRepo,
		TeamRepo:   s.mockTeamRepo,
		AdminIDs:   []string{"admin-1"},
		Logger:     zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	s.checker = checker

	s.injury = &models.Injury{ID: "injury-1", PlayerID: "player-1"}
}

func (s *CheckerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckerSuite(t *testing.T) {
	suite.Run(t, new(CheckerTestSuite))
}

func (s *CheckerTestSuite) expectTeam() {
	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{PlayerID: "player-1"}).
		Return(&models.Player{ID: "player-1", TeamID: "team-1"}, nil)
	s.mockTeamRepo.EXPECT().
		GetTeam(gomock.Any(), &teamRepo.GetTeamInput{TeamID: "team-1"}).
		Return(&models.Team{ID: "team-1", OwnerIDs: []string{"gm-1", "cogm-1"}}, nil)
}

func (s *CheckerTestSuite) TestOwnersAreAuthorized() {
	s.expectTeam()
	s.True(s.checker.IsAuthorized(s.ctx, "cogm-1", s.injury))
}

func (s *CheckerTestSuite) TestOtherUsersAreNot() {
	s.expectTeam()
	s.False(s.checker.IsAuthorized(s.ctx, "gm-2", s.injury))
}

func (s *CheckerTestSuite) TestAdminSkipsLookup() {
	s.True(s.checker.IsAuthorized(s.ctx, "admin-1", s.injury))
}

func (s *CheckerTestSuite) TestLookupFailureDenies() {
	s.mockPlayerRepo.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	s.False(s.checker.IsAuthorized(s.ctx, "gm-1", s.injury))
}

func (s *CheckerTestSuite) TestFreeAgentHasNoOwners() {
	s.mockPlayerRepo.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).Return(&models.Player{ID: "player-1"}, nil)

	owners, err := s.checker.Owners(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(0, owners.Cardinality())
}

func (s *CheckerTestSuite) TestEmptyInputs() {
	s.False(s.checker.IsAuthorized(s.ctx, "", s.injury))
	s.False(s.checker.IsAuthorized(s.ctx, "gm-1", nil))
}

func (s *CheckerTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{PlayerRepo: s.mockPlayerRepo})
	s.Error(err)
}
