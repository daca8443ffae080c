package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/injurybot/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/injurybot/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayersOnTeam retrieves all players rostered on a team
	GetPlayersOnTeam(ctx context.Context, input *GetPlayersOnTeamInput) (*GetPlayersOnTeamOutput, error)
}
