package dice

import (
	"testing"

	"github.com/KirkDiggler/injurybot/internal/models"
	"github.com/stretchr/testify/assert"
)

func seed(v int64) *int64 {
	return &v
}

func TestRollInjury_Range(t *testing.T) {
	roller := New(&Config{Seed: seed(42)})

	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		roll := roller.RollInjury()
		for _, die := range roll.Dice {
			assert.GreaterOrEqual(t, die, 1)
			assert.LessOrEqual(t, die, 6)
			seen[die] = true
		}
		assert.GreaterOrEqual(t, roll.Total(), models.MinRollTotal)
		assert.LessOrEqual(t, roll.Total(), models.MaxRollTotal)
	}

	assert.Len(t, seen, 6)
}

func TestRollInjury_SeedIsDeterministic(t *testing.T) {
	a := New(&Config{Seed: seed(7)})
	b := New(&Config{Seed: seed(7)})

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.RollInjury(), b.RollInjury())
	}
}

func TestRollInjury_NilConfig(t *testing.T) {
	roll := New(nil).RollInjury()
	assert.GreaterOrEqual(t, roll.Total(), models.MinRollTotal)
}

func TestRollInjury_ZeroSeedIsDeterministic(t *testing.T) {
	a := New(&Config{Seed: seed(0)})
	b := New(&Config{Seed: seed(0)})

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.RollInjury(), b.RollInjury())
	}
}
