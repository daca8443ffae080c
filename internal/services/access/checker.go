// Package access decides which Discord users may act on a player's injury.
package access

import (
	"context"
	"errors"

	"github.com/KirkDiggler/injurybot/internal/models"
	playerRepo "github.com/KirkDiggler/injurybot/internal/repositories/player"
	teamRepo "github.com/KirkDiggler/injurybot/internal/repositories/team"
	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"
)

// Config holds configuration for the access checker
type Config struct {
	PlayerRepo playerRepo.Repository
	TeamRepo   teamRepo.Repository

	// AdminIDs are league admins allowed to act on any team's injuries
	AdminIDs []string

	// Optional, defaults to a no-op logger
	Logger *zap.Logger
}

// Checker grants access to the GM and co-GMs of the injured player's team and
// to league admins
type Checker struct {
	playerRepo playerRepo.Repository
	teamRepo   teamRepo.Repository
	admins     mapset.Set[string]
	logger     *zap.Logger
}

// New creates a new access checker
func New(cfg *Config) (*Checker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}
	if cfg.TeamRepo == nil {
		return nil, errors.New("team repository cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Checker{
		playerRepo: cfg.PlayerRepo,
		teamRepo:   cfg.TeamRepo,
		admins:     mapset.NewSet(cfg.AdminIDs...),
		logger:     logger,
	}, nil
}

// IsAuthorized reports whether actorID may clear, confirm or cancel the
// clearance of injury. Lookup failures deny.
func (c *Checker) IsAuthorized(ctx context.Context, actorID string, injury *models.Injury) bool {
	if actorID == "" || injury == nil {
		return false
	}
	if c.admins.Contains(actorID) {
		return true
	}

	owners, err := c.Owners(ctx, injury.PlayerID)
	if err != nil {
		c.logger.Warn("access lookup failed",
			zap.String("actor_id", actorID),
			zap.String("player_id", injury.PlayerID),
			zap.Error(err),
		)
		return false
	}

	return owners.Contains(actorID)
}

// Owners returns the Discord users who run the player's team
func (c *Checker) Owners(ctx context.Context, playerID string) (mapset.Set[string], error) {
	player, err := c.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		return nil, err
	}
	if player.TeamID == "" {
		return mapset.NewSet[string](), nil
	}

	team, err := c.teamRepo.GetTeam(ctx, &teamRepo.GetTeamInput{
		TeamID: player.TeamID,
	})
	if err != nil {
		return nil, err
	}

	return mapset.NewSet(team.OwnerIDs...), nil
}
