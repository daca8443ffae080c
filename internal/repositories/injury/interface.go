package injury

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/injurybot/internal/repositories/injury Repository

import (
	"context"

	"github.com/KirkDiggler/injurybot/internal/models"
)

// Repository defines the interface for injury persistence
type Repository interface {
	// CreateInjury commits a new active injury and updates the player's return
	// date to the newest season with an active injury.
	// Fails with ErrActiveInjuryExists if the player already has an active injury
	// for the season at commit time.
	CreateInjury(ctx context.Context, input *CreateInjuryInput) error

	// GetActiveInjury retrieves the player's active injury for a season
	GetActiveInjury(ctx context.Context, input *GetActiveInjuryInput) (*models.Injury, error)

	// DeactivateInjury clears an active injury. The player's return date falls
	// back to the newest season still active, or is removed.
	DeactivateInjury(ctx context.Context, input *DeactivateInjuryInput) (*models.Injury, error)

	// ListInjuries retrieves a season's injuries in the order they were created
	ListInjuries(ctx context.Context, input *ListInjuriesInput) (*ListInjuriesOutput, error)
}
