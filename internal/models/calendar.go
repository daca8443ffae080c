package models

import "fmt"

const (
	// GamesPerWeek is the number of games in a league week
	GamesPerWeek = 4

	// MaxWeek is the highest week number the w##g# format can hold
	MaxWeek = 99
)

// CalendarPosition is a single game slot in the season
type CalendarPosition struct {
	// Week is the league week, starting at 1
	Week int

	// Game is the game within the week (1-4)
	Game int
}

// Compare returns -1, 0 or 1 when p is before, equal to or after other
func (p CalendarPosition) Compare(other CalendarPosition) int {
	switch {
	case p.Week < other.Week:
		return -1
	case p.Week > other.Week:
		return 1
	case p.Game < other.Game:
		return -1
	case p.Game > other.Game:
		return 1
	}
	return 0
}

// Before reports whether p comes strictly before other
func (p CalendarPosition) Before(other CalendarPosition) bool {
	return p.Compare(other) < 0
}

// After reports whether p comes strictly after other
func (p CalendarPosition) After(other CalendarPosition) bool {
	return p.Compare(other) > 0
}

// String formats the position as w##g#, e.g. w05g2
func (p CalendarPosition) String() string {
	return fmt.Sprintf("w%02dg%d", p.Week, p.Game)
}
