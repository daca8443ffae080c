package tables

import (
	"testing"

	"github.com/KirkDiggler/injurybot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TablesTestSuite struct {
	suite.Suite
	registry *Registry
}

func (s *TablesTestSuite) SetupTest() {
	registry, err := Default()
	s.Require().NoError(err)
	s.registry = registry
}

func TestTablesTestSuite(t *testing.T) {
	suite.Run(t, new(TablesTestSuite))
}

func (s *TablesTestSuite) TestDefaultIsLoadedOnce() {
	again, err := Default()
	s.Require().NoError(err)
	s.Same(s.registry, again)
	s.NotEmpty(s.registry.Version())
}

func (s *TablesTestSuite) TestExemptCombinationsNeverInjure() {
	exempt := map[models.Tier][]int{
		models.Tier70: {3, 4, 5, 6},
		models.Tier65: {4, 5, 6},
		models.Tier60: {6},
		models.Tier50: {6},
	}

	for tier, games := range exempt {
		for _, g := range games {
			s.True(IsExempt(tier, g), "%s at %d", tier, g)

			_, charted := s.registry.Row(tier, g)
			s.False(charted, "%s at %d should have no row", tier, g)

			for total := models.MinRollTotal; total <= models.MaxRollTotal; total++ {
				outcome, err := s.registry.Resolve(tier, g, total)
				s.Require().NoError(err)
				s.Equal(models.NoInjury(), outcome, "%s at %d rolling %d", tier, g, total)
			}
		}
	}
}

func (s *TablesTestSuite) TestChartIsCompleteAndMonotonic() {
	charted := 0
	for _, tier := range models.Tiers {
		for games := models.MinGamesPlayed; games <= models.MaxGamesPlayed; games++ {
			if IsExempt(tier, games) {
				continue
			}
			charted++

			row, ok := s.registry.Row(tier, games)
			s.Require().True(ok, "%s at %d", tier, games)
			s.Len(row, 16)

			lastGames := 0
			for i, outcome := range row {
				resolved, err := s.registry.Resolve(tier, games, i+models.MinRollTotal)
				s.Require().NoError(err)
				s.Equal(outcome, resolved)

				if outcome.Kind != models.OutcomeGamesOut {
					continue
				}
				s.GreaterOrEqual(outcome.Games, 1)
				s.LessOrEqual(outcome.Games, 24)
				s.GreaterOrEqual(outcome.Games, lastGames, "%s at %d roll %d", tier, games, i+models.MinRollTotal)
				lastGames = outcome.Games
			}
		}
	}

	// 7 tiers x 6 games, minus 4+3+1+1 exempt pairs
	s.Equal(33, charted)
}

func (s *TablesTestSuite) TestResolveIsPure() {
	first, err := s.registry.Resolve(models.Tier20, 6, 18)
	s.Require().NoError(err)
	for i := 0; i < 10; i++ {
		again, err := s.registry.Resolve(models.Tier20, 6, 18)
		s.Require().NoError(err)
		s.Equal(first, again)
	}
	s.Equal(models.GamesOut(24), first)
}

func (s *TablesTestSuite) TestKnownEntries() {
	outcome, err := s.registry.Resolve(models.Tier70, 1, 17)
	s.Require().NoError(err)
	s.Equal(models.Fatigued(), outcome)

	outcome, err = s.registry.Resolve(models.Tier70, 1, 3)
	s.Require().NoError(err)
	s.Equal(models.NoInjury(), outcome)

	outcome, err = s.registry.Resolve(models.Tier50, 4, 16)
	s.Require().NoError(err)
	s.Equal(models.GamesOut(7), outcome)
}

func (s *TablesTestSuite) TestResolveRejectsOutOfRangeInputs() {
	_, err := s.registry.Resolve(models.Tier(55), 1, 10)
	s.ErrorIs(err, ErrInvalidTier)

	_, err = s.registry.Resolve(models.Tier50, 0, 10)
	s.ErrorIs(err, ErrInvalidGamesPlayed)

	_, err = s.registry.Resolve(models.Tier50, 7, 10)
	s.ErrorIs(err, ErrInvalidGamesPlayed)

	_, err = s.registry.Resolve(models.Tier50, 1, 2)
	s.ErrorIs(err, ErrInvalidRollTotal)

	_, err = s.registry.Resolve(models.Tier50, 1, 19)
	s.ErrorIs(err, ErrInvalidRollTotal)
}

func TestLoad_RejectsBadCharts(t *testing.T) {
	cases := map[string]string{
		"short row": `
tiers:
  p70:
    1: [OK, OK]
`,
		"exempt row charted": `
tiers:
  p70:
    3: [OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, REM, 1]
`,
		"unknown tier": `
tiers:
  p55:
    1: [OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, REM, 1]
`,
		"bad entry": `
tiers:
  p70:
    1: [OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, OK, REM, X]
`,
		"not yaml": `:::`,
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedChart)
		})
	}
}

func TestLoad_RequiresEveryChartedPair(t *testing.T) {
	_, err := Load([]byte(`version: "x"
tiers: {}
`))
	require.ErrorIs(t, err, ErrMalformedChart)
	assert.Contains(t, err.Error(), "missing")
}
