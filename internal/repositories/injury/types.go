package injury

import (
	"time"

	"github.com/KirkDiggler/injurybot/internal/models"
)

type CreateInjuryInput struct {
	Injury *models.Injury
}

type GetActiveInjuryInput struct {
	Season   int
	PlayerID string
}

type DeactivateInjuryInput struct {
	InjuryID  string
	ClearedAt time.Time
}

type ListInjuriesInput struct {
	Season int

	// Optional, limits the list to one player
	PlayerID string
}

type ListInjuriesOutput struct {
	Injuries []*models.Injury
}

// record is the stored form of an injury, one field per column of the
// league's injury table
type record struct {
	ID         string    `json:"id"`
	Season     int       `json:"season"`
	PlayerID   string    `json:"player_id"`
	TotalGames int       `json:"total_games"`
	StartWeek  int       `json:"start_week"`
	StartGame  int       `json:"start_game"`
	EndWeek    int       `json:"end_week"`
	EndGame    int       `json:"end_game"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	ClearedAt  time.Time `json:"cleared_at,omitzero"`
}

func toRecord(i *models.Injury) *record {
	return &record{
		ID:         i.ID,
		Season:     i.Season,
		PlayerID:   i.PlayerID,
		TotalGames: i.TotalGames,
		StartWeek:  i.Start.Week,
		StartGame:  i.Start.Game,
		EndWeek:    i.End.Week,
		EndGame:    i.End.Game,
		IsActive:   i.IsActive,
		CreatedAt:  i.CreatedAt,
		ClearedAt:  i.ClearedAt,
	}
}

func (r *record) toModel() *models.Injury {
	return &models.Injury{
		ID:         r.ID,
		Season:     r.Season,
		PlayerID:   r.PlayerID,
		TotalGames: r.TotalGames,
		Start:      models.CalendarPosition{Week: r.StartWeek, Game: r.StartGame},
		End:        models.CalendarPosition{Week: r.EndWeek, Game: r.EndGame},
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt,
		ClearedAt:  r.ClearedAt,
	}
}
