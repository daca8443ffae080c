package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/injurybot/internal/calendar"
	"github.com/KirkDiggler/injurybot/internal/models"
	"github.com/KirkDiggler/injurybot/internal/rating"
	"github.com/KirkDiggler/injurybot/internal/services/injury"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorHealthy = 0x00ff00
	colorInjured = 0xff9900
	colorPending = 0xffcc00
	colorError   = 0xff0000
)

// historyLimit caps the rows shown by /injury history
const historyLimit = 20

// renderRoll builds the embed for an injury roll
func renderRoll(output *injury.RollInjuryOutput) *discordgo.MessageEmbed {
	d := output.Roll.Dice

	color := colorHealthy
	if output.Outcome.IsInjury() {
		color = colorInjured
	}

	description := fmt.Sprintf("🎲 %d + %d + %d = **%d**", d[0], d[1], d[2], output.Roll.Total())
	if !output.Charted {
		description += "\nThis rating is exempt from the injury chart at this many games played."
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Injury roll: %s", output.Player.Name),
		Description: description,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Rating",
				Value:  rating.Format(output.Rating),
				Inline: true,
			},
			{
				Name:   "Games Played",
				Value:  fmt.Sprintf("%d", output.Rating.GamesPlayed),
				Inline: true,
			},
			{
				Name:   "Result",
				Value:  output.Outcome.String(),
				Inline: true,
			},
		},
	}
}

// renderSetNew builds the embed for a newly recorded injury
func renderSetNew(output *injury.SetNewInjuryOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Injury recorded",
		Description: fmt.Sprintf("Player `%s` is out for %s.", output.Injury.PlayerID, gamesText(output.Injury.TotalGames)),
		Color:       colorInjured,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Start",
				Value:  calendar.Format(output.Start),
				Inline: true,
			},
			{
				Name:   "Return",
				Value:  calendar.Format(output.End),
				Inline: true,
			},
		},
	}
}

// renderStatus builds the embed for a player's current injury, nil meaning healthy
func renderStatus(playerID string, active *models.Injury) *discordgo.MessageEmbed {
	if active == nil {
		return &discordgo.MessageEmbed{
			Title:       "Injury status",
			Description: fmt.Sprintf("Player `%s` has no active injury.", playerID),
			Color:       colorHealthy,
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "Injury status",
		Description: fmt.Sprintf("Player `%s` is out for %s.", playerID, gamesText(active.TotalGames)),
		Color:       colorInjured,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Start",
				Value:  calendar.Format(active.Start),
				Inline: true,
			},
			{
				Name:   "Return",
				Value:  calendar.Format(active.End),
				Inline: true,
			},
		},
	}
}

// renderHistory builds the embed listing a season's injuries, newest first
func renderHistory(season int, playerID string, injuries []*models.Injury) *discordgo.MessageEmbed {
	title := fmt.Sprintf("Season %d injuries", season)
	if playerID != "" {
		title = fmt.Sprintf("Season %d injuries: %s", season, playerID)
	}

	if len(injuries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "No injuries recorded.",
			Color:       colorHealthy,
		}
	}

	var sb strings.Builder
	shown := 0
	for i := len(injuries) - 1; i >= 0 && shown < historyLimit; i-- {
		inj := injuries[i]
		state := "cleared"
		if inj.IsActive {
			state = "**active**"
		}
		fmt.Fprintf(&sb, "`%s` %s → %s, %s (%s)\n", inj.PlayerID, inj.Start, inj.End, gamesText(inj.TotalGames), state)
		shown++
	}
	if len(injuries) > historyLimit {
		fmt.Fprintf(&sb, "…and %d more", len(injuries)-historyLimit)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       colorInjured,
	}
}

// renderTeamReport builds the injured list of one team
func renderTeamReport(team *models.Team, players []*models.Player) *discordgo.MessageEmbed {
	title := fmt.Sprintf("%s injured list", team.Name)
	if team.Abbrev != "" {
		title = fmt.Sprintf("%s (%s) injured list", team.Name, team.Abbrev)
	}

	if len(players) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "Everyone is healthy.",
			Color:       colorHealthy,
		}
	}

	var sb strings.Builder
	for _, p := range players {
		fmt.Fprintf(&sb, "**%s** back %s\n", p.Name, p.ILReturn)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       colorInjured,
	}
}

// renderClearPrompt builds the confirmation message for a clearance session
func renderClearPrompt(sess *injury.ClearanceSession) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	inj := sess.Injury()

	embed := &discordgo.MessageEmbed{
		Title: "Clear injury?",
		Description: fmt.Sprintf("<@%s> wants to clear the injury of player `%s`.\nExpires <t:%d:R>.",
			sess.RequestedBy(), inj.PlayerID, sess.ExpiresAt().Unix()),
		Color: colorPending,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Return",
				Value:  calendar.Format(inj.End),
				Inline: true,
			},
			{
				Name:   "Games",
				Value:  fmt.Sprintf("%d", inj.TotalGames),
				Inline: true,
			},
		},
	}

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Confirm",
			Style:    discordgo.SuccessButton,
			CustomID: clearButtonID(injury.ClearDecisionConfirm, sess.ID()),
		},
		discordgo.Button{
			Label:    "Cancel",
			Style:    discordgo.DangerButton,
			CustomID: clearButtonID(injury.ClearDecisionCancel, sess.ID()),
		},
	}

	return embed, buttons
}

// renderClearResult builds the embed that replaces the prompt once a session ends
func renderClearResult(result *injury.ClearResult) *discordgo.MessageEmbed {
	switch result.Status {
	case injury.ClearStatusCleared:
		return &discordgo.MessageEmbed{
			Title: "Injury cleared",
			Description: fmt.Sprintf("Player `%s` is off the injured list, cleared by <@%s>.",
				result.PlayerID, result.ResolvedBy),
			Color: colorHealthy,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "Was due back",
					Value:  calendar.Format(result.PreviousEnd),
					Inline: true,
				},
				{
					Name:   "Games",
					Value:  fmt.Sprintf("%d", result.TotalGames),
					Inline: true,
				},
			},
		}
	case injury.ClearStatusCancelled:
		return &discordgo.MessageEmbed{
			Title:       "Clearance cancelled",
			Description: fmt.Sprintf("The injury of player `%s` is still active.", result.PlayerID),
			Color:       colorInjured,
		}
	default:
		return &discordgo.MessageEmbed{
			Title:       "Clearance timed out",
			Description: fmt.Sprintf("Nobody confirmed in time. The injury of player `%s` is still active.", result.PlayerID),
			Color:       colorInjured,
		}
	}
}

// renderError builds an embed for an error the user can act on
func renderError(err error) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: errorMessage(err),
		Color:       colorError,
	}
}

// errorMessage turns a service error into text for the user
func errorMessage(err error) string {
	var formatErr *rating.InvalidFormatError
	if errors.As(err, &formatErr) {
		return fmt.Sprintf("Injury rating `%s` is not valid. Expected games played and a tier, like `4p50`.", formatErr.Raw)
	}

	if injury.IsPersistenceFailure(err) {
		return "The injury records are unavailable right now, try again in a moment."
	}

	var injuryErr injury.InjuryError
	if errors.As(err, &injuryErr) {
		switch injuryErr {
		case injury.ErrAlreadyInjured:
			return "That player already has an active injury. Clear it first."
		case injury.ErrNoActiveInjury:
			return "That player has no active injury."
		case injury.ErrSessionConflict:
			return "A clearance is already waiting for confirmation for that injury."
		case injury.ErrSessionNotFound, injury.ErrSessionClosed:
			return "This clearance has already ended."
		case injury.ErrNotAuthorized:
			return "Only the team's GMs can do that."
		}
		msg := injuryErr.Error()
		return strings.ToUpper(msg[:1]) + msg[1:] + "."
	}

	return fmt.Sprintf("Something went wrong: %v", err)
}

func gamesText(n int) string {
	if n == 1 {
		return "1 game"
	}
	return fmt.Sprintf("%d games", n)
}
