package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/injurybot/internal/common/clock"
	"github.com/KirkDiggler/injurybot/internal/common/config"
	"github.com/KirkDiggler/injurybot/internal/common/logging"
	"github.com/KirkDiggler/injurybot/internal/common/uuid"
	"github.com/KirkDiggler/injurybot/internal/dice"
	"github.com/KirkDiggler/injurybot/internal/handlers/discord"
	"github.com/KirkDiggler/injurybot/internal/repositories/injury"
	"github.com/KirkDiggler/injurybot/internal/repositories/player"
	"github.com/KirkDiggler/injurybot/internal/repositories/team"
	"github.com/KirkDiggler/injurybot/internal/services/access"
	injuryService "github.com/KirkDiggler/injurybot/internal/services/injury"
	"github.com/KirkDiggler/injurybot/internal/tables"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "injurybot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Initialize repositories
	injuryRepo, err := injury.NewRedis(&injury.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create injury repository: %w", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	teamRepo, err := team.NewRedis(&team.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create team repository: %w", err)
	}

	registry, err := tables.Default()
	if err != nil {
		return fmt.Errorf("failed to load injury charts: %w", err)
	}

	checker, err := access.New(&access.Config{
		PlayerRepo: playerRepo,
		TeamRepo:   teamRepo,
		AdminIDs:   cfg.AdminIDs,
		Logger:     logger.Named("access"),
	})
	if err != nil {
		return fmt.Errorf("failed to create access checker: %w", err)
	}

	injurySvc, err := injuryService.New(&injuryService.Config{
		Season:        cfg.Season,
		ClearTimeout:  cfg.ClearTimeout,
		InjuryRepo:    injuryRepo,
		PlayerRepo:    playerRepo,
		Tables:        registry,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Authorize:     checker.IsAuthorized,
	})
	if err != nil {
		return fmt.Errorf("failed to create injury service: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Season:        cfg.Season,
		InjuryService: injurySvc,
		TeamRepo:      teamRepo,
		Logger:        logger.Named("discord"),
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	logger.Info("injury bot started",
		zap.Int("season", cfg.Season),
		zap.String("chart_version", registry.Version()),
		zap.Duration("clear_timeout", cfg.ClearTimeout),
	)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", zap.Error(err))
	}

	logger.Info("bot has been shut down")
	return nil
}
