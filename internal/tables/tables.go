// Package tables holds the official injury charts and resolves a 3d6 roll
// against them.
//
// The charts ship as an embedded YAML artifact, injury_tables.yaml, keyed by
// tier and games played. Each row has exactly 16 entries, one per roll total
// from 3 to 18. A (tier, games played) pair is either charted or exempt;
// exempt pairs have no row and always resolve to no injury.
package tables

import (
	_ "embed"
	"fmt"
	"strconv"
	"sync"

	"github.com/KirkDiggler/injurybot/internal/models"
	"github.com/KirkDiggler/injurybot/internal/rating"
	"gopkg.in/yaml.v3"
)

//go:embed injury_tables.yaml
var chartData []byte

// rowLength is the number of roll totals a chart row covers (3 through 18)
const rowLength = models.MaxRollTotal - models.MinRollTotal + 1

// TableError is a custom error type for table errors
type TableError string

// Error implements the error interface
func (e TableError) Error() string {
	return string(e)
}

const (
	ErrInvalidTier        TableError = "unknown injury tier"
	ErrInvalidGamesPlayed TableError = "games played out of range"
	ErrInvalidRollTotal   TableError = "roll total out of range"
	ErrMalformedChart     TableError = "malformed injury chart"
)

// chartFile mirrors the YAML layout: tier token -> games played -> entries
type chartFile struct {
	Version string                      `yaml:"version"`
	Tiers   map[string]map[int][]string `yaml:"tiers"`
}

type rowKey struct {
	tier  models.Tier
	games int
}

// Registry is an immutable, loaded set of injury charts
type Registry struct {
	version string
	rows    map[rowKey][rowLength]models.RollOutcome
}

var loadDefault = sync.OnceValues(func() (*Registry, error) {
	return Load(chartData)
})

// Default returns the registry built from the embedded charts. The charts are
// parsed once; every call returns the same registry.
func Default() (*Registry, error) {
	return loadDefault()
}

// IsExempt reports whether a tier is exempt from injury at the given games
// played. Three games exempts p70, four or five exempt p70 and p65, and six
// leaves only p40, p30 and p20 charted.
func IsExempt(tier models.Tier, gamesPlayed int) bool {
	switch gamesPlayed {
	case 3:
		return tier == models.Tier70
	case 4, 5:
		return tier >= models.Tier65
	case 6:
		return tier >= models.Tier50
	}
	return false
}

// Load parses and validates a chart artifact
func Load(data []byte) (*Registry, error) {
	var file chartFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedChart, err)
	}

	registry := &Registry{
		version: file.Version,
		rows:    make(map[rowKey][rowLength]models.RollOutcome),
	}

	for token, byGames := range file.Tiers {
		tier, err := rating.ParseTier(token)
		if err != nil {
			return nil, fmt.Errorf("%w: tier %q", ErrMalformedChart, token)
		}

		for games, entries := range byGames {
			if games < models.MinGamesPlayed || games > models.MaxGamesPlayed {
				return nil, fmt.Errorf("%w: %s games played %d", ErrMalformedChart, tier, games)
			}
			if IsExempt(tier, games) {
				return nil, fmt.Errorf("%w: %s at %d games played is exempt but charted", ErrMalformedChart, tier, games)
			}
			if len(entries) != rowLength {
				return nil, fmt.Errorf("%w: %s at %d games played has %d entries, want %d",
					ErrMalformedChart, tier, games, len(entries), rowLength)
			}

			var row [rowLength]models.RollOutcome
			for i, entry := range entries {
				outcome, err := parseEntry(entry)
				if err != nil {
					return nil, fmt.Errorf("%w: %s at %d games played, roll %d: %v",
						ErrMalformedChart, tier, games, i+models.MinRollTotal, err)
				}
				row[i] = outcome
			}
			registry.rows[rowKey{tier: tier, games: games}] = row
		}
	}

	// every non-exempt pair needs a row
	for _, tier := range models.Tiers {
		for games := models.MinGamesPlayed; games <= models.MaxGamesPlayed; games++ {
			if IsExempt(tier, games) {
				continue
			}
			if _, ok := registry.rows[rowKey{tier: tier, games: games}]; !ok {
				return nil, fmt.Errorf("%w: missing %s at %d games played", ErrMalformedChart, tier, games)
			}
		}
	}

	return registry, nil
}

func parseEntry(entry string) (models.RollOutcome, error) {
	switch entry {
	case "OK":
		return models.NoInjury(), nil
	case "REM":
		return models.Fatigued(), nil
	}

	games, err := strconv.Atoi(entry)
	if err != nil || games < 1 || games > 24 {
		return models.RollOutcome{}, fmt.Errorf("bad entry %q", entry)
	}
	return models.GamesOut(games), nil
}

// Version returns the chart artifact version
func (r *Registry) Version() string {
	return r.version
}

// Resolve looks up the outcome of a roll total for a tier and games played.
// Exempt combinations resolve to no injury for every total.
func (r *Registry) Resolve(tier models.Tier, gamesPlayed, total int) (models.RollOutcome, error) {
	if !tier.IsValid() {
		return models.RollOutcome{}, ErrInvalidTier
	}
	if gamesPlayed < models.MinGamesPlayed || gamesPlayed > models.MaxGamesPlayed {
		return models.RollOutcome{}, ErrInvalidGamesPlayed
	}
	if total < models.MinRollTotal || total > models.MaxRollTotal {
		return models.RollOutcome{}, ErrInvalidRollTotal
	}

	if IsExempt(tier, gamesPlayed) {
		return models.NoInjury(), nil
	}

	row := r.rows[rowKey{tier: tier, games: gamesPlayed}]
	return row[total-models.MinRollTotal], nil
}

// Row returns the full chart row for a tier and games played, indexed from a
// roll total of 3. ok is false for exempt or unknown combinations.
func (r *Registry) Row(tier models.Tier, gamesPlayed int) ([]models.RollOutcome, bool) {
	row, ok := r.rows[rowKey{tier: tier, games: gamesPlayed}]
	if !ok {
		return nil, false
	}
	out := make([]models.RollOutcome, rowLength)
	copy(out, row[:])
	return out, true
}
