package team

import "github.com/KirkDiggler/injurybot/internal/models"

type SaveTeamInput struct {
	Team *models.Team
}

type GetTeamInput struct {
	TeamID string
}

type GetTeamsByOwnerInput struct {
	OwnerID string
}
