package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/injurybot/internal/common/uuid UUID

// UUID generates identifiers for injuries and clearance sessions
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random v4 UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
