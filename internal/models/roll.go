package models

import "fmt"

// DiceRoll is the result of rolling three six-sided dice
type DiceRoll struct {
	// Dice holds the individual die values in the order they were rolled
	Dice [3]int
}

// Total returns the sum of the three dice
func (r DiceRoll) Total() int {
	return r.Dice[0] + r.Dice[1] + r.Dice[2]
}

const (
	// MinRollTotal is the lowest possible 3d6 total
	MinRollTotal = 3

	// MaxRollTotal is the highest possible 3d6 total
	MaxRollTotal = 18
)

// OutcomeKind identifies what an injury roll resolved to
type OutcomeKind string

const (
	// OutcomeNoInjury indicates the player is unhurt
	OutcomeNoInjury OutcomeKind = "ok"

	// OutcomeFatigued indicates the player is out for the remainder of the current game
	OutcomeFatigued OutcomeKind = "rem"

	// OutcomeGamesOut indicates the player misses a number of games
	OutcomeGamesOut OutcomeKind = "games_out"
)

// RollOutcome is the resolved result of an injury roll
type RollOutcome struct {
	// Kind is the outcome type
	Kind OutcomeKind

	// Games is the number of games missed; only set when Kind is OutcomeGamesOut
	Games int
}

// NoInjury returns the outcome for an unhurt player
func NoInjury() RollOutcome {
	return RollOutcome{Kind: OutcomeNoInjury}
}

// Fatigued returns the outcome for a player out for the rest of the game
func Fatigued() RollOutcome {
	return RollOutcome{Kind: OutcomeFatigued}
}

// GamesOut returns the outcome for a player missing n games
func GamesOut(n int) RollOutcome {
	return RollOutcome{Kind: OutcomeGamesOut, Games: n}
}

// IsInjury reports whether the outcome keeps the player out of future games
func (o RollOutcome) IsInjury() bool {
	return o.Kind == OutcomeGamesOut
}

// String renders the outcome the way the injury charts print it
func (o RollOutcome) String() string {
	switch o.Kind {
	case OutcomeFatigued:
		return "REM"
	case OutcomeGamesOut:
		if o.Games == 1 {
			return "1 game"
		}
		return fmt.Sprintf("%d games", o.Games)
	default:
		return "OK"
	}
}
