// Package calendar does the week-and-game date math for injuries.
package calendar

import (
	"regexp"
	"strconv"

	"github.com/KirkDiggler/injurybot/internal/models"
)

// CalendarError is a custom error type for calendar errors
type CalendarError string

// Error implements the error interface
func (e CalendarError) Error() string {
	return string(e)
}

const (
	ErrInvalidWeek     CalendarError = "week must be between 1 and 99"
	ErrInvalidGame     CalendarError = "game must be between 1 and 4"
	ErrInvalidDuration CalendarError = "injury must last at least one game"
	ErrInvalidPosition CalendarError = "calendar position must look like w##g#"
)

var positionPattern = regexp.MustCompile(`^w(\d{2})g([1-4])$`)

// Validate checks that a position is inside the season calendar
func Validate(p models.CalendarPosition) error {
	if p.Week < 1 || p.Week > models.MaxWeek {
		return ErrInvalidWeek
	}
	if p.Game < 1 || p.Game > models.GamesPerWeek {
		return ErrInvalidGame
	}
	return nil
}

// Parse reads a w##g# position such as w05g2
func Parse(s string) (models.CalendarPosition, error) {
	match := positionPattern.FindStringSubmatch(s)
	if match == nil {
		return models.CalendarPosition{}, ErrInvalidPosition
	}

	week, _ := strconv.Atoi(match[1])
	game, _ := strconv.Atoi(match[2])
	pos := models.CalendarPosition{Week: week, Game: game}
	if err := Validate(pos); err != nil {
		return models.CalendarPosition{}, ErrInvalidPosition
	}
	return pos, nil
}

// Format writes a position as w##g#
func Format(p models.CalendarPosition) string {
	return p.String()
}

// ComputeReturn works out when an injury starts and when the player may
// return, given the game the injury happened in and the games missed.
//
// An injury in the last game of a week is recorded as starting in game 1 of
// the following week, and the first game of that week counts as missed.
// The returned end is always strictly after the returned start.
func ComputeReturn(start models.CalendarPosition, totalGames int) (models.CalendarPosition, models.CalendarPosition, error) {
	if err := Validate(start); err != nil {
		return models.CalendarPosition{}, models.CalendarPosition{}, err
	}
	if totalGames < 1 {
		return models.CalendarPosition{}, models.CalendarPosition{}, ErrInvalidDuration
	}

	adjusted := start
	base := start
	if start.Game == models.GamesPerWeek {
		adjusted = models.CalendarPosition{Week: start.Week + 1, Game: 1}
		// game 0 of the next week is game 4 of this one
		base = models.CalendarPosition{Week: start.Week + 1, Game: 0}
	}

	outWeeks := totalGames / models.GamesPerWeek
	outGames := totalGames % models.GamesPerWeek

	end := models.CalendarPosition{
		Week: base.Week + outWeeks,
		Game: base.Game + 1 + outGames,
	}
	for end.Game > models.GamesPerWeek {
		end.Week++
		end.Game -= models.GamesPerWeek
	}

	return adjusted, end, nil
}
