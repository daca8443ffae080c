package player

import "github.com/KirkDiggler/injurybot/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayersOnTeamInput contains parameters for retrieving a team's players
type GetPlayersOnTeamInput struct {
	TeamID string
}

// GetPlayersOnTeamOutput contains the players rostered on a team
type GetPlayersOnTeamOutput struct {
	Players []*models.Player
}
