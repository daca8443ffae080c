package models

// Player is a rostered player as the injury engine sees it
type Player struct {
	// ID is the league's player identifier
	ID string

	// Name is the display name of the player
	Name string

	// TeamID is the ID of the team the player is rostered on
	TeamID string

	// InjuryRating is the raw rating code, e.g. "4p50"
	InjuryRating string

	// ILReturn is the w##g# slot the player returns from the injured list, empty when healthy
	ILReturn string
}
