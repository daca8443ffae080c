package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	teamRepo "github.com/KirkDiggler/injurybot/internal/repositories/team"
	"github.com/KirkDiggler/injurybot/internal/services/injury"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot represents the Discord bot instance
type Bot struct {
	session       *discordgo.Session
	commands      map[string]CommandHandler
	commandIDs    map[string]string // Maps command name to command ID
	injuryService injury.Service
	logger        *zap.Logger
	config        *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Season shown when a command does not name one
	Season int

	// Injury service
	InjuryService injury.Service

	// Team lookups for the team report
	TeamRepo teamRepo.Repository

	// Optional, defaults to a no-op logger
	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.InjuryService == nil {
		return nil, errors.New("injury service cannot be nil")
	}

	if cfg.TeamRepo == nil {
		return nil, errors.New("team repository cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:       session,
		commands:      make(map[string]CommandHandler),
		commandIDs:    make(map[string]string),
		injuryService: cfg.InjuryService,
		logger:        logger,
		config:        cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	injuryCmd := NewInjuryCommand(b.injuryService, b.config.TeamRepo, b.config.Season, b.logger)
	if err := b.RegisterCommand(injuryCmd); err != nil {
		return fmt.Errorf("failed to register injury command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err),
			)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for the configured guild
// when there is one and globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID),
	)

	return nil
}

// Button custom ID prefixes, the session ID follows a colon
const (
	ButtonClearConfirm = "injury_clear_confirm"
	ButtonClearCancel  = "injury_clear_cancel"
)

func clearButtonID(decision injury.ClearDecision, sessionID string) string {
	prefix := ButtonClearCancel
	if decision == injury.ClearDecisionConfirm {
		prefix = ButtonClearConfirm
	}
	return prefix + ":" + sessionID
}

// parseClearButton splits a clearance button custom ID
func parseClearButton(customID string) (injury.ClearDecision, string, bool) {
	prefix, sessionID, ok := strings.Cut(customID, ":")
	if !ok || sessionID == "" {
		return "", "", false
	}

	switch prefix {
	case ButtonClearConfirm:
		return injury.ClearDecisionConfirm, sessionID, true
	case ButtonClearCancel:
		return injury.ClearDecisionCancel, sessionID, true
	default:
		return "", "", false
	}
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("command failed", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("component interaction failed",
				zap.String("custom_id", i.MessageComponentData().CustomID),
				zap.Error(err),
			)
		}
	}
}

// handleComponentInteraction handles the confirm and cancel buttons of a clearance
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	decision, sessionID, ok := parseClearButton(customID)
	if !ok {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}

	out, err := b.injuryService.RespondToClear(context.Background(), &injury.RespondToClearInput{
		SessionID: sessionID,
		ActorID:   interactionUserID(i),
		Decision:  decision,
	})
	if err != nil {
		if injury.IsPersistenceFailure(err) {
			b.logger.Error("clearance confirm failed", zap.String("session_id", sessionID), zap.Error(err))
		}
		return RespondWithEphemeralMessage(s, i, errorMessage(err))
	}

	b.logger.Info("clearance resolved",
		zap.String("session_id", sessionID),
		zap.String("status", string(out.Result.Status)),
		zap.String("resolved_by", out.Result.ResolvedBy),
	)

	return UpdateWithEmbed(s, i, renderClearResult(out.Result))
}
