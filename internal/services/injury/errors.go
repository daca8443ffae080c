package injury

import (
	"github.com/KirkDiggler/injurybot/internal/repositories"
	crerr "github.com/cockroachdb/errors"
)

// InjuryError is a custom error type for injury lifecycle errors
type InjuryError string

// Error implements the error interface
func (e InjuryError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrAlreadyInjured    InjuryError = "player already has an active injury"
	ErrNoActiveInjury    InjuryError = "player has no active injury"
	ErrInvalidGameNumber InjuryError = "game must be between 1 and 4"
	ErrInvalidDuration   InjuryError = "injury must last at least one game"
	ErrInvalidWeek       InjuryError = "week must be between 1 and 99"
	ErrPlayerNotFound    InjuryError = "player not found"
	ErrSessionConflict   InjuryError = "a clearance is already pending for this injury"
	ErrSessionNotFound   InjuryError = "clearance session not found"
	ErrSessionClosed     InjuryError = "clearance session already closed"
	ErrNotAuthorized     InjuryError = "not allowed to act on this injury"
	ErrInvalidDecision   InjuryError = "decision must be confirm or cancel"
	ErrNilConfig         InjuryError = "config cannot be nil"
	ErrNilInjuryRepo     InjuryError = "injury repository cannot be nil"
	ErrNilPlayerRepo     InjuryError = "player repository cannot be nil"
	ErrNilTables         InjuryError = "injury tables cannot be nil"
	ErrNilDiceRoller     InjuryError = "dice roller cannot be nil"
	ErrNilClock          InjuryError = "clock cannot be nil"
	ErrNilUUIDGenerator  InjuryError = "UUID generator cannot be nil"
	ErrNilAuthorize      InjuryError = "authorization check cannot be nil"
	ErrInvalidSeason     InjuryError = "season must be at least 1"
)

// ErrPersistenceFailure marks errors from the injury and player stores. They
// are returned to the caller as they came from the store.
var ErrPersistenceFailure = repositories.ErrPersistenceFailure

// IsPersistenceFailure reports whether err came from a store
func IsPersistenceFailure(err error) bool {
	return crerr.Is(err, ErrPersistenceFailure)
}
