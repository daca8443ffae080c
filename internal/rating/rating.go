// Package rating decodes the combined games-played/tier injury rating code
// stored on player records, e.g. "4p50".
package rating

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/injurybot/internal/models"
)

// RatingError is a custom error type for rating errors
type RatingError string

// Error implements the error interface
func (e RatingError) Error() string {
	return string(e)
}

// ErrInvalidRatingFormat matches every rating that does not decode
const ErrInvalidRatingFormat RatingError = "invalid injury rating format"

// InvalidFormatError carries the rating string that failed to decode
type InvalidFormatError struct {
	Raw string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidRatingFormat, e.Raw)
}

// Is lets errors.Is match ErrInvalidRatingFormat
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidRatingFormat
}

// Parse decodes a rating code of the form <gamesPlayed><tier>, e.g. "4p50".
// The match is exact: no trimming or case folding is done.
func Parse(raw string) (models.InjuryRating, error) {
	if len(raw) < 2 {
		return models.InjuryRating{}, &InvalidFormatError{Raw: raw}
	}

	games := int(raw[0] - '0')
	if games < models.MinGamesPlayed || games > models.MaxGamesPlayed {
		return models.InjuryRating{}, &InvalidFormatError{Raw: raw}
	}

	tier, err := ParseTier(raw[1:])
	if err != nil {
		return models.InjuryRating{}, &InvalidFormatError{Raw: raw}
	}

	return models.InjuryRating{
		GamesPlayed: games,
		Tier:        tier,
	}, nil
}

// ParseTier decodes a tier token such as "p65"
func ParseTier(token string) (models.Tier, error) {
	if len(token) != 3 || token[0] != 'p' {
		return 0, &InvalidFormatError{Raw: token}
	}

	// Atoi accepts a sign, the tier digits may not carry one
	if token[1] < '0' || token[1] > '9' || token[2] < '0' || token[2] > '9' {
		return 0, &InvalidFormatError{Raw: token}
	}

	value, err := strconv.Atoi(token[1:])
	if err != nil {
		return 0, &InvalidFormatError{Raw: token}
	}

	tier := models.Tier(value)
	if !tier.IsValid() {
		return 0, &InvalidFormatError{Raw: token}
	}

	return tier, nil
}

// Format encodes a rating back to its code form
func Format(r models.InjuryRating) string {
	return fmt.Sprintf("%d%s", r.GamesPlayed, r.Tier)
}
