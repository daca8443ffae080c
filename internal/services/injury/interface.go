package injury

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/injurybot/internal/services/injury Service

import (
	"context"

	"github.com/KirkDiggler/injurybot/internal/models"
)

// AuthorizeFunc reports whether an actor may clear, confirm or cancel the
// clearance of an injury
type AuthorizeFunc func(ctx context.Context, actorID string, injury *models.Injury) bool

// Service defines the interface for the injury lifecycle
type Service interface {
	// RollInjury rolls for a player against the chart for their injury rating.
	// It never creates an injury.
	RollInjury(ctx context.Context, input *RollInjuryInput) (*RollInjuryOutput, error)

	// SetNewInjury records a new active injury and the player's return date
	SetNewInjury(ctx context.Context, input *SetNewInjuryInput) (*SetNewInjuryOutput, error)

	// GetActiveInjury returns the player's active injury for a season
	GetActiveInjury(ctx context.Context, input *GetActiveInjuryInput) (*GetActiveInjuryOutput, error)

	// ListInjuries returns a season's injuries, active and cleared, oldest first
	ListInjuries(ctx context.Context, input *ListInjuriesInput) (*ListInjuriesOutput, error)

	// ListInjuredPlayers returns the players of a team who have a return date set
	ListInjuredPlayers(ctx context.Context, input *ListInjuredPlayersInput) (*ListInjuredPlayersOutput, error)

	// BeginClear opens a clearance session for the player's active injury.
	// The injury stays active until someone confirms the session.
	BeginClear(ctx context.Context, input *BeginClearInput) (*BeginClearOutput, error)

	// RespondToClear delivers a confirm or cancel decision to an open session
	RespondToClear(ctx context.Context, input *RespondToClearInput) (*RespondToClearOutput, error)
}
