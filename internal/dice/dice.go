package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/injurybot/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/injurybot/internal/models"
)

// Roller rolls the dice used for injury checks
type Roller interface {
	// RollInjury rolls three six-sided dice
	RollInjury() models.DiceRoll
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible rolls, nil seeds from the clock
	Seed *int64

	// Optional random source, takes precedence over Seed
	Source rand.Source
}

// roller rolls dice from a shared random source
type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var source rand.Source
	switch {
	case cfg != nil && cfg.Source != nil:
		source = cfg.Source
	case cfg != nil && cfg.Seed != nil:
		source = rand.NewSource(*cfg.Seed)
	default:
		source = rand.NewSource(time.Now().UnixNano())
	}

	return &roller{
		random: rand.New(source),
	}
}

// RollInjury rolls 3d6, keeping each die
func (r *roller) RollInjury() models.DiceRoll {
	r.mu.Lock()
	defer r.mu.Unlock()

	var roll models.DiceRoll
	for i := range roll.Dice {
		roll.Dice[i] = r.random.Intn(6) + 1
	}
	return roll
}
