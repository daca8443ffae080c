package rating

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/injurybot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("4p50")
	require.NoError(t, err)
	assert.Equal(t, models.InjuryRating{GamesPlayed: 4, Tier: models.Tier50}, got)
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"",
		"p50",
		"4p55",
		"0p50",
		"7p50",
		"4p5",
		"4p500",
		"4P50",
		" 4p50",
		"4p50 ",
		"4p50x",
		"4q50",
		"4p+5",
		"4p-2",
		"44p50",
	}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRatingFormat))

			var formatErr *InvalidFormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, raw, formatErr.Raw)
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for games := models.MinGamesPlayed; games <= models.MaxGamesPlayed; games++ {
		for _, tier := range models.Tiers {
			raw := Format(models.InjuryRating{GamesPlayed: games, Tier: tier})

			parsed, err := Parse(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, Format(parsed))
			assert.Equal(t, games, parsed.GamesPlayed)
			assert.Equal(t, tier, parsed.Tier)
		}
	}
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("p20")
	require.NoError(t, err)
	assert.Equal(t, models.Tier20, tier)

	_, err = ParseTier("p25")
	assert.ErrorIs(t, err, ErrInvalidRatingFormat)
}
