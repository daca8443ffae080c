package team

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/injurybot/internal/repositories/team Repository

import (
	"context"

	"github.com/KirkDiggler/injurybot/internal/models"
)

// Repository defines the interface for team data persistence
type Repository interface {
	// SaveTeam persists a team
	SaveTeam(ctx context.Context, input *SaveTeamInput) error

	// GetTeam retrieves a team by ID
	GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error)

	// GetTeamsByOwner retrieves every team a Discord user runs
	GetTeamsByOwner(ctx context.Context, input *GetTeamsByOwnerInput) ([]*models.Team, error)
}
