package models

import (
	"time"
)

// Injury is a player's stint on the injured list
type Injury struct {
	// ID is the unique identifier for the injury
	ID string

	// Season is the season the injury happened in
	Season int

	// PlayerID is the ID of the injured player
	PlayerID string

	// TotalGames is the number of games the player misses
	TotalGames int

	// Start is the first calendar slot of the injury
	Start CalendarPosition

	// End is the slot the player is eligible to return
	End CalendarPosition

	// IsActive is true until the injury is cleared
	IsActive bool

	// CreatedAt is when the injury was recorded
	CreatedAt time.Time

	// ClearedAt is when the injury was cleared, zero while active
	ClearedAt time.Time
}
