package injury

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/injurybot/internal/calendar"
	"github.com/KirkDiggler/injurybot/internal/common/clock"
	"github.com/KirkDiggler/injurybot/internal/common/uuid"
	"github.com/KirkDiggler/injurybot/internal/dice"
	"github.com/KirkDiggler/injurybot/internal/models"
	"github.com/KirkDiggler/injurybot/internal/rating"
	injuryRepo "github.com/KirkDiggler/injurybot/internal/repositories/injury"
	playerRepo "github.com/KirkDiggler/injurybot/internal/repositories/player"
	"github.com/KirkDiggler/injurybot/internal/tables"
)

// service implements the Service interface
type service struct {
	season       int
	clearTimeout time.Duration

	injuryRepo injuryRepo.Repository
	playerRepo playerRepo.Repository
	tables     *tables.Registry
	diceRoller dice.Roller
	clock      clock.Clock
	uuid       uuid.UUID
	authorize  AuthorizeFunc

	mu               sync.RWMutex
	sessions         map[string]*ClearanceSession
	sessionsByInjury map[string]string
}

// New creates a new injury service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Season < 1 {
		return nil, ErrInvalidSeason
	}
	if cfg.InjuryRepo == nil {
		return nil, ErrNilInjuryRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.Tables == nil {
		return nil, ErrNilTables
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Authorize == nil {
		return nil, ErrNilAuthorize
	}

	timeout := cfg.ClearTimeout
	if timeout <= 0 {
		timeout = DefaultClearTimeout
	}

	return &service{
		season:           cfg.Season,
		clearTimeout:     timeout,
		injuryRepo:       cfg.InjuryRepo,
		playerRepo:       cfg.PlayerRepo,
		tables:           cfg.Tables,
		diceRoller:       cfg.DiceRoller,
		clock:            cfg.Clock,
		uuid:             cfg.UUIDGenerator,
		authorize:        cfg.Authorize,
		sessions:         make(map[string]*ClearanceSession),
		sessionsByInjury: make(map[string]string),
	}, nil
}

func (s *service) seasonOrDefault(season int) int {
	if season < 1 {
		return s.season
	}
	return season
}

func (s *service) getPlayer(ctx context.Context, playerID string) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// RollInjury rolls 3d6 for a player and looks the total up on their chart
func (s *service) RollInjury(ctx context.Context, input *RollInjuryInput) (*RollInjuryOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	player, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	injuryRating, err := rating.Parse(player.InjuryRating)
	if err != nil {
		return nil, err
	}

	roll := s.diceRoller.RollInjury()
	outcome, err := s.tables.Resolve(injuryRating.Tier, injuryRating.GamesPlayed, roll.Total())
	if err != nil {
		return nil, err
	}

	return &RollInjuryOutput{
		Player:  player,
		Rating:  injuryRating,
		Roll:    roll,
		Outcome: outcome,
		Charted: !tables.IsExempt(injuryRating.Tier, injuryRating.GamesPlayed),
	}, nil
}

// SetNewInjury validates the slot and duration, computes the return date and
// commits the injury. The store rejects the create if the player already has
// an active injury for the season when the write lands.
func (s *service) SetNewInjury(ctx context.Context, input *SetNewInjuryInput) (*SetNewInjuryOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}
	if input.Game < 1 || input.Game > models.GamesPerWeek {
		return nil, ErrInvalidGameNumber
	}
	if input.TotalGames < 1 {
		return nil, ErrInvalidDuration
	}
	if input.Week < 1 || input.Week > models.MaxWeek {
		return nil, ErrInvalidWeek
	}

	if _, err := s.getPlayer(ctx, input.PlayerID); err != nil {
		return nil, err
	}

	start, end, err := calendar.ComputeReturn(models.CalendarPosition{
		Week: input.Week,
		Game: input.Game,
	}, input.TotalGames)
	if err != nil {
		return nil, err
	}
	// The return date has to fit the w##g# format
	if end.Week > models.MaxWeek {
		return nil, ErrInvalidWeek
	}

	injury := &models.Injury{
		ID:         s.uuid.NewUUID(),
		Season:     s.seasonOrDefault(input.Season),
		PlayerID:   input.PlayerID,
		TotalGames: input.TotalGames,
		Start:      start,
		End:        end,
		IsActive:   true,
		CreatedAt:  s.clock.Now(),
	}

	err = s.injuryRepo.CreateInjury(ctx, &injuryRepo.CreateInjuryInput{
		Injury: injury,
	})
	if err != nil {
		if errors.Is(err, injuryRepo.ErrActiveInjuryExists) {
			return nil, ErrAlreadyInjured
		}
		return nil, err
	}

	return &SetNewInjuryOutput{
		InjuryID: injury.ID,
		Start:    start,
		End:      end,
		Injury:   injury,
	}, nil
}

// GetActiveInjury returns the player's active injury for a season
func (s *service) GetActiveInjury(ctx context.Context, input *GetActiveInjuryInput) (*GetActiveInjuryOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	injury, err := s.injuryRepo.GetActiveInjury(ctx, &injuryRepo.GetActiveInjuryInput{
		Season:   s.seasonOrDefault(input.Season),
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, injuryRepo.ErrInjuryNotFound) {
			return nil, ErrNoActiveInjury
		}
		return nil, err
	}

	return &GetActiveInjuryOutput{
		Injury: injury,
	}, nil
}

// ListInjuries returns a season's injuries in the order they were recorded
func (s *service) ListInjuries(ctx context.Context, input *ListInjuriesInput) (*ListInjuriesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.injuryRepo.ListInjuries(ctx, &injuryRepo.ListInjuriesInput{
		Season:   s.seasonOrDefault(input.Season),
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &ListInjuriesOutput{
		Injuries: out.Injuries,
	}, nil
}

// ListInjuredPlayers returns the team's players on the injured list, read
// from the return date kept on each player record
func (s *service) ListInjuredPlayers(ctx context.Context, input *ListInjuredPlayersInput) (*ListInjuredPlayersOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	out, err := s.playerRepo.GetPlayersOnTeam(ctx, &playerRepo.GetPlayersOnTeamInput{
		TeamID: input.TeamID,
	})
	if err != nil {
		return nil, err
	}

	type injured struct {
		player *models.Player
		back   models.CalendarPosition
	}
	var list []injured
	for _, p := range out.Players {
		if p.ILReturn == "" {
			continue
		}
		back, err := calendar.Parse(p.ILReturn)
		if err != nil {
			return nil, fmt.Errorf("player %s has a malformed return date: %w", p.ID, err)
		}
		list = append(list, injured{player: p, back: back})
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].back == list[j].back {
			return list[i].player.Name < list[j].player.Name
		}
		return list[i].back.Before(list[j].back)
	})

	players := make([]*models.Player, 0, len(list))
	for _, item := range list {
		players = append(players, item.player)
	}

	return &ListInjuredPlayersOutput{
		Players: players,
	}, nil
}

// BeginClear opens a clearance session for the player's active injury. Only
// one session may be open per injury.
func (s *service) BeginClear(ctx context.Context, input *BeginClearInput) (*BeginClearOutput, error) {
	if input == nil || input.PlayerID == "" || input.RequestedBy == "" {
		return nil, errors.New("input, player ID and requester cannot be empty")
	}

	active, err := s.GetActiveInjury(ctx, &GetActiveInjuryInput{
		PlayerID: input.PlayerID,
		Season:   input.Season,
	})
	if err != nil {
		return nil, err
	}

	if !s.authorize(ctx, input.RequestedBy, active.Injury) {
		return nil, ErrNotAuthorized
	}

	sess := newClearanceSession(
		s.uuid.NewUUID(),
		active.Injury,
		input.RequestedBy,
		s.clock.Now().Add(s.clearTimeout),
	)
	if err := s.registerSession(sess); err != nil {
		return nil, err
	}

	go s.runSession(sess, s.clock.After(s.clearTimeout))

	return &BeginClearOutput{
		Session: sess,
	}, nil
}

// RespondToClear hands a decision to an open session. Actors other than the
// requester and those the authorization check accepts are turned away
// without touching the session.
func (s *service) RespondToClear(ctx context.Context, input *RespondToClearInput) (*RespondToClearOutput, error) {
	if input == nil || input.SessionID == "" || input.ActorID == "" {
		return nil, errors.New("input, session ID and actor cannot be empty")
	}
	if input.Decision != ClearDecisionConfirm && input.Decision != ClearDecisionCancel {
		return nil, ErrInvalidDecision
	}

	sess, ok := s.lookupSession(input.SessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	injury := sess.Injury()
	if !sess.responders.Contains(input.ActorID) && !s.authorize(ctx, input.ActorID, &injury) {
		return nil, ErrNotAuthorized
	}

	result, err := sess.deliver(decisionRequest{
		ctx:      ctx,
		actorID:  input.ActorID,
		decision: input.Decision,
		reply:    make(chan decisionReply, 1),
	})
	if err != nil {
		return nil, err
	}

	return &RespondToClearOutput{
		Result: result,
	}, nil
}
