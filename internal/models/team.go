package models

// Team is a league team and the Discord users who run it
type Team struct {
	// ID is the league's team identifier
	ID string

	// Abbrev is the short team code shown in embeds
	Abbrev string

	// Name is the full team name
	Name string

	// OwnerIDs are the Discord user IDs of the GM and any co-GMs
	OwnerIDs []string
}
