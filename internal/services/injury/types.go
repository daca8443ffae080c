package injury

import (
	"time"

	"github.com/KirkDiggler/injurybot/internal/common/clock"
	"github.com/KirkDiggler/injurybot/internal/common/uuid"
	"github.com/KirkDiggler/injurybot/internal/dice"
	"github.com/KirkDiggler/injurybot/internal/models"
	injuryRepo "github.com/KirkDiggler/injurybot/internal/repositories/injury"
	playerRepo "github.com/KirkDiggler/injurybot/internal/repositories/player"
	"github.com/KirkDiggler/injurybot/internal/tables"
)

// DefaultClearTimeout is how long a clearance waits for a decision
const DefaultClearTimeout = 3 * time.Minute

// ClearStatus is how a clearance session ended
type ClearStatus string

const (
	// ClearStatusCleared means the injury was deactivated
	ClearStatusCleared ClearStatus = "cleared"

	// ClearStatusCancelled means a responder backed out, the injury is still active
	ClearStatusCancelled ClearStatus = "cancelled"

	// ClearStatusTimedOut means nobody answered in time, the injury is still active
	ClearStatusTimedOut ClearStatus = "timed_out"
)

// ClearDecision is a responder's answer to a clearance session
type ClearDecision string

const (
	ClearDecisionConfirm ClearDecision = "confirm"
	ClearDecisionCancel  ClearDecision = "cancel"
)

// Config holds configuration for the injury service
type Config struct {
	// Season used when an input leaves it unset
	Season int

	// How long a clearance session stays open, DefaultClearTimeout when zero
	ClearTimeout time.Duration

	// Repository dependencies
	InjuryRepo injuryRepo.Repository
	PlayerRepo playerRepo.Repository

	// Chart lookups
	Tables *tables.Registry

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Authorize decides who may clear an injury besides the requester
	Authorize AuthorizeFunc
}

// RollInjuryInput contains parameters for an injury roll
type RollInjuryInput struct {
	PlayerID string
}

// RollInjuryOutput contains the result of an injury roll
type RollInjuryOutput struct {
	Player *models.Player

	// Rating is the decoded injury rating of the player
	Rating models.InjuryRating

	Roll    models.DiceRoll
	Outcome models.RollOutcome

	// Charted is false when the rating and games played are exempt from the chart
	Charted bool
}

// SetNewInjuryInput contains parameters for recording an injury
type SetNewInjuryInput struct {
	PlayerID string

	// Week and Game are the calendar slot the injury happened in
	Week int
	Game int

	// TotalGames is how many games the player misses
	TotalGames int

	// Optional, defaults to the configured season
	Season int
}

// SetNewInjuryOutput contains the recorded injury
type SetNewInjuryOutput struct {
	InjuryID string

	// Start is the stored start, moved to the next week when the injury
	// happened in the last game of a week
	Start models.CalendarPosition
	End   models.CalendarPosition

	Injury *models.Injury
}

type GetActiveInjuryInput struct {
	PlayerID string
	Season   int
}

type GetActiveInjuryOutput struct {
	Injury *models.Injury
}

type ListInjuriesInput struct {
	Season int

	// Optional, limits the list to one player
	PlayerID string
}

type ListInjuriesOutput struct {
	Injuries []*models.Injury
}

type ListInjuredPlayersInput struct {
	TeamID string
}

type ListInjuredPlayersOutput struct {
	// Players are sorted by return date, soonest first
	Players []*models.Player
}

// BeginClearInput contains parameters for opening a clearance session
type BeginClearInput struct {
	PlayerID string

	// RequestedBy is the Discord user asking for the clearance
	RequestedBy string

	// Optional, defaults to the configured season
	Season int
}

// BeginClearOutput contains the opened session
type BeginClearOutput struct {
	Session *ClearanceSession
}

// RespondToClearInput contains a responder's decision
type RespondToClearInput struct {
	SessionID string
	ActorID   string
	Decision  ClearDecision
}

// RespondToClearOutput contains the outcome the decision produced
type RespondToClearOutput struct {
	Result *ClearResult
}

// ClearResult is the terminal outcome of a clearance session
type ClearResult struct {
	Status    ClearStatus
	SessionID string
	InjuryID  string
	PlayerID  string

	// PreviousEnd and TotalGames describe the injury as it was before the clearance
	PreviousEnd models.CalendarPosition
	TotalGames  int

	// ResolvedBy is the responder who confirmed or cancelled, empty on timeout
	ResolvedBy string
}
