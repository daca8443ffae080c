package discord

import (
	"fmt"
	"strings"
	"testing"

	"github.com/KirkDiggler/injurybot/internal/models"
	"github.com/KirkDiggler/injurybot/internal/rating"
	"github.com/KirkDiggler/injurybot/internal/services/injury"
	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearButtonRoundTrip(t *testing.T) {
	for _, decision := range []injury.ClearDecision{injury.ClearDecisionConfirm, injury.ClearDecisionCancel} {
		id := clearButtonID(decision, "session-1")

		got, sessionID, ok := parseClearButton(id)
		require.True(t, ok, id)
		assert.Equal(t, decision, got)
		assert.Equal(t, "session-1", sessionID)
	}
}

func TestParseClearButton_Rejects(t *testing.T) {
	for _, id := range []string{"", "join_game", "injury_clear_confirm", "injury_clear_confirm:", "other:session-1"} {
		_, _, ok := parseClearButton(id)
		assert.False(t, ok, id)
	}
}

func TestRenderRoll(t *testing.T) {
	embed := renderRoll(&injury.RollInjuryOutput{
		Player:  &models.Player{ID: "player-1", Name: "Test Player"},
		Rating:  models.InjuryRating{GamesPlayed: 4, Tier: models.Tier50},
		Roll:    models.DiceRoll{Dice: [3]int{6, 5, 5}},
		Outcome: models.GamesOut(7),
		Charted: true,
	})

	assert.Equal(t, "Injury roll: Test Player", embed.Title)
	assert.Contains(t, embed.Description, "6 + 5 + 5 = **16**")
	assert.Equal(t, colorInjured, embed.Color)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "4p50", embed.Fields[0].Value)
	assert.Equal(t, "4", embed.Fields[1].Value)
	assert.Equal(t, "7 games", embed.Fields[2].Value)
}

func TestRenderRoll_Exempt(t *testing.T) {
	embed := renderRoll(&injury.RollInjuryOutput{
		Player:  &models.Player{ID: "player-1", Name: "Test Player"},
		Rating:  models.InjuryRating{GamesPlayed: 6, Tier: models.Tier70},
		Roll:    models.DiceRoll{Dice: [3]int{6, 6, 6}},
		Outcome: models.NoInjury(),
	})

	assert.Equal(t, colorHealthy, embed.Color)
	assert.Contains(t, embed.Description, "exempt")
	assert.Equal(t, "OK", embed.Fields[2].Value)
}

func TestRenderHistory(t *testing.T) {
	var injuries []*models.Injury
	for n := 1; n <= historyLimit+2; n++ {
		injuries = append(injuries, &models.Injury{
			PlayerID:   fmt.Sprintf("player-%d", n),
			TotalGames: 1,
			Start:      models.CalendarPosition{Week: n, Game: 1},
			End:        models.CalendarPosition{Week: n, Game: 2},
			IsActive:   n == historyLimit+2,
		})
	}

	embed := renderHistory(12, "", injuries)
	lines := strings.Split(strings.TrimSpace(embed.Description), "\n")

	require.Len(t, lines, historyLimit+1)
	assert.Contains(t, lines[0], "player-22")
	assert.Contains(t, lines[0], "**active**")
	assert.Contains(t, lines[0], "w22g1 → w22g2, 1 game")
	assert.Equal(t, "…and 2 more", lines[historyLimit])

	empty := renderHistory(12, "player-1", nil)
	assert.Equal(t, "Season 12 injuries: player-1", empty.Title)
	assert.Equal(t, "No injuries recorded.", empty.Description)
}

func TestRenderClearResult(t *testing.T) {
	cleared := renderClearResult(&injury.ClearResult{
		Status:      injury.ClearStatusCleared,
		PlayerID:    "player-1",
		PreviousEnd: models.CalendarPosition{Week: 6, Game: 3},
		TotalGames:  3,
		ResolvedBy:  "gm-1",
	})
	assert.Equal(t, "Injury cleared", cleared.Title)
	assert.Contains(t, cleared.Description, "<@gm-1>")
	assert.Equal(t, "w06g3", cleared.Fields[0].Value)

	assert.Equal(t, "Clearance cancelled", renderClearResult(&injury.ClearResult{Status: injury.ClearStatusCancelled}).Title)
	assert.Equal(t, "Clearance timed out", renderClearResult(&injury.ClearResult{Status: injury.ClearStatusTimedOut}).Title)
}

func TestErrorMessage(t *testing.T) {
	_, parseErr := rating.Parse("4p55")

	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "bad rating",
			err:  parseErr,
			want: "Injury rating `4p55` is not valid. Expected games played and a tier, like `4p50`.",
		},
		{
			name: "already injured",
			err:  injury.ErrAlreadyInjured,
			want: "That player already has an active injury. Clear it first.",
		},
		{
			name: "plain service error",
			err:  injury.ErrInvalidGameNumber,
			want: "Game must be between 1 and 4.",
		},
		{
			name: "store failure",
			err:  crerr.Mark(crerr.New("dial tcp: refused"), injury.ErrPersistenceFailure),
			want: "The injury records are unavailable right now, try again in a moment.",
		},
		{
			name: "unknown",
			err:  crerr.New("boom"),
			want: "Something went wrong: boom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errorMessage(tc.err))
		})
	}
}

func TestRenderTeamReport(t *testing.T) {
	team := &models.Team{ID: "team-1", Abbrev: "WV", Name: "West Virginia Black Bears"}

	embed := renderTeamReport(team, []*models.Player{
		{ID: "p1", Name: "Sooner", ILReturn: "w06g4"},
		{ID: "p2", Name: "Later", ILReturn: "w07g1"},
	})
	assert.Equal(t, "West Virginia Black Bears (WV) injured list", embed.Title)
	assert.Equal(t, "**Sooner** back w06g4\n**Later** back w07g1\n", embed.Description)

	healthy := renderTeamReport(team, nil)
	assert.Equal(t, "Everyone is healthy.", healthy.Description)
	assert.Equal(t, colorHealthy, healthy.Color)
}
