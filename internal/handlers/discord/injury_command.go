package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/injurybot/internal/models"
	teamRepo "github.com/KirkDiggler/injurybot/internal/repositories/team"
	"github.com/KirkDiggler/injurybot/internal/services/injury"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Subcommands and options of /injury
const (
	subcommandRoll    = "roll"
	subcommandSetNew  = "set-new"
	subcommandClear   = "clear"
	subcommandStatus  = "status"
	subcommandHistory = "history"
	subcommandTeam    = "team"

	optionPlayer = "player"
	optionWeek   = "week"
	optionGame   = "game"
	optionGames  = "games"
	optionSeason = "season"
)

// InjuryCommand handles the /injury command
type InjuryCommand struct {
	BaseCommand
	injuryService injury.Service
	teamRepo      teamRepo.Repository
	season        int
	logger        *zap.Logger
}

// NewInjuryCommand creates a new injury command handler
func NewInjuryCommand(injuryService injury.Service, teams teamRepo.Repository, season int, logger *zap.Logger) *InjuryCommand {
	minOne := 1.0
	playerOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optionPlayer,
		Description: "League player ID",
		Required:    true,
	}

	return &InjuryCommand{
		BaseCommand: BaseCommand{
			Name:        "injury",
			Description: "Roll, record and clear player injuries",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandRoll,
					Description: "Roll for injury against the player's rating",
					Options:     []*discordgo.ApplicationCommandOption{playerOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandSetNew,
					Description: "Put a player on the injured list",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption,
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionWeek,
							Description: "Week the injury happened",
							Required:    true,
							MinValue:    &minOne,
							MaxValue:    float64(models.MaxWeek),
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionGame,
							Description: "Game of the week the injury happened (1-4)",
							Required:    true,
							MinValue:    &minOne,
							MaxValue:    float64(models.GamesPerWeek),
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionGames,
							Description: "Number of games the player misses",
							Required:    true,
							MinValue:    &minOne,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandClear,
					Description: "Take a player off the injured list (asks for confirmation)",
					Options:     []*discordgo.ApplicationCommandOption{playerOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStatus,
					Description: "Show a player's active injury",
					Options:     []*discordgo.ApplicationCommandOption{playerOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandHistory,
					Description: "List the season's injuries",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionPlayer,
							Description: "Only this player",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionSeason,
							Description: "Season, defaults to the current one",
							MinValue:    &minOne,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandTeam,
					Description: "Show the injured list of the teams you run",
				},
			},
		},
		injuryService: injuryService,
		teamRepo:      teams,
		season:        season,
		logger:        logger,
	}
}

// Handle processes a Discord interaction for the injury command
func (c *InjuryCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		opts[opt.Name] = opt
	}

	ctx := context.Background()
	userID := interactionUserID(i)

	switch sub.Name {
	case subcommandRoll:
		return c.handleRoll(ctx, s, i, opts)
	case subcommandSetNew:
		return c.handleSetNew(ctx, s, i, opts)
	case subcommandClear:
		return c.handleClear(ctx, s, i, userID, opts)
	case subcommandStatus:
		return c.handleStatus(ctx, s, i, opts)
	case subcommandHistory:
		return c.handleHistory(ctx, s, i, opts)
	case subcommandTeam:
		return c.handleTeam(ctx, s, i, userID)
	default:
		return errors.New("unknown subcommand")
	}
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	if opt, ok := opts[name]; ok {
		return int(opt.IntValue())
	}
	return 0
}

// respondError shows the user what went wrong and logs store failures
func (c *InjuryCommand) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, op string, err error) error {
	if injury.IsPersistenceFailure(err) {
		c.logger.Error("injury store failure", zap.String("op", op), zap.Error(err))
	}
	return RespondWithEmbed(s, i, renderError(err))
}

func (c *InjuryCommand) handleRoll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	out, err := c.injuryService.RollInjury(ctx, &injury.RollInjuryInput{
		PlayerID: stringOption(opts, optionPlayer),
	})
	if err != nil {
		return c.respondError(s, i, subcommandRoll, err)
	}

	return RespondWithEmbed(s, i, renderRoll(out))
}

func (c *InjuryCommand) handleSetNew(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	out, err := c.injuryService.SetNewInjury(ctx, &injury.SetNewInjuryInput{
		PlayerID:   stringOption(opts, optionPlayer),
		Week:       intOption(opts, optionWeek),
		Game:       intOption(opts, optionGame),
		TotalGames: intOption(opts, optionGames),
	})
	if err != nil {
		return c.respondError(s, i, subcommandSetNew, err)
	}

	c.logger.Info("injury recorded",
		zap.String("injury_id", out.InjuryID),
		zap.String("player_id", out.Injury.PlayerID),
		zap.Stringer("start", out.Start),
		zap.Stringer("end", out.End),
	)

	return RespondWithEmbed(s, i, renderSetNew(out))
}

func (c *InjuryCommand) handleClear(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	out, err := c.injuryService.BeginClear(ctx, &injury.BeginClearInput{
		PlayerID:    stringOption(opts, optionPlayer),
		RequestedBy: userID,
	})
	if err != nil {
		return c.respondError(s, i, subcommandClear, err)
	}

	embed, buttons := renderClearPrompt(out.Session)
	if err := RespondWithEmbedAndButtons(s, i, embed, buttons); err != nil {
		return err
	}

	go c.expireClearPrompt(s, i, out.Session)

	return nil
}

// expireClearPrompt rewrites the prompt when a session times out. Confirm and
// cancel rewrite it from the button handler.
func (c *InjuryCommand) expireClearPrompt(s *discordgo.Session, i *discordgo.InteractionCreate, sess *injury.ClearanceSession) {
	<-sess.Done()

	result := sess.Result()
	if result.Status != injury.ClearStatusTimedOut {
		return
	}

	embeds := []*discordgo.MessageEmbed{renderClearResult(result)}
	components := []discordgo.MessageComponent{}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	}); err != nil {
		c.logger.Warn("failed to expire clearance prompt", zap.String("session_id", sess.ID()), zap.Error(err))
	}
}

func (c *InjuryCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	playerID := stringOption(opts, optionPlayer)

	out, err := c.injuryService.GetActiveInjury(ctx, &injury.GetActiveInjuryInput{
		PlayerID: playerID,
	})
	switch {
	case errors.Is(err, injury.ErrNoActiveInjury):
		return RespondWithEmbed(s, i, renderStatus(playerID, nil))
	case err != nil:
		return c.respondError(s, i, subcommandStatus, err)
	}

	return RespondWithEmbed(s, i, renderStatus(playerID, out.Injury))
}

func (c *InjuryCommand) handleHistory(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	season := intOption(opts, optionSeason)
	if season == 0 {
		season = c.season
	}
	playerID := stringOption(opts, optionPlayer)

	out, err := c.injuryService.ListInjuries(ctx, &injury.ListInjuriesInput{
		Season:   season,
		PlayerID: playerID,
	})
	if err != nil {
		return c.respondError(s, i, subcommandHistory, err)
	}

	return RespondWithEmbed(s, i, renderHistory(season, playerID, out.Injuries))
}

// maxEmbeds is the most embeds Discord accepts on one message
const maxEmbeds = 10

func (c *InjuryCommand) handleTeam(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	teams, err := c.teamRepo.GetTeamsByOwner(ctx, &teamRepo.GetTeamsByOwnerInput{
		OwnerID: userID,
	})
	if err != nil {
		c.logger.Error("team lookup failed", zap.String("user_id", userID), zap.Error(err))
		return RespondWithEphemeralMessage(s, i, "Could not look up your teams, try again in a moment.")
	}
	if len(teams) == 0 {
		return RespondWithEphemeralMessage(s, i, "You are not listed as a GM of any team.")
	}

	embeds := make([]*discordgo.MessageEmbed, 0, len(teams))
	for _, team := range teams {
		if len(embeds) == maxEmbeds {
			break
		}

		out, err := c.injuryService.ListInjuredPlayers(ctx, &injury.ListInjuredPlayersInput{
			TeamID: team.ID,
		})
		if err != nil {
			return c.respondError(s, i, subcommandTeam, err)
		}
		embeds = append(embeds, renderTeamReport(team, out.Players))
	}

	return RespondWithEmbeds(s, i, embeds)
}
