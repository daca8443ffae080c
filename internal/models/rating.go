package models

import "fmt"

// Tier is an injury-susceptibility rating. Higher tiers are more durable.
type Tier int

const (
	Tier70 Tier = 70
	Tier65 Tier = 65
	Tier60 Tier = 60
	Tier50 Tier = 50
	Tier40 Tier = 40
	Tier30 Tier = 30
	Tier20 Tier = 20
)

// Tiers lists every known tier from most to least durable
var Tiers = []Tier{Tier70, Tier65, Tier60, Tier50, Tier40, Tier30, Tier20}

// IsValid reports whether the tier is one of the known tiers
func (t Tier) IsValid() bool {
	for _, known := range Tiers {
		if t == known {
			return true
		}
	}
	return false
}

// String returns the rating token for the tier, e.g. "p50"
func (t Tier) String() string {
	return fmt.Sprintf("p%d", int(t))
}

const (
	// MinGamesPlayed is the lowest games-played value a rating may carry
	MinGamesPlayed = 1

	// MaxGamesPlayed is the highest games-played value a rating may carry
	MaxGamesPlayed = 6
)

// InjuryRating is a player's decoded injury rating
type InjuryRating struct {
	// GamesPlayed is the number of games the player has appeared in this series (1-6)
	GamesPlayed int

	// Tier is the player's injury tier
	Tier Tier
}
