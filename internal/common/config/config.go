// Package config loads the bot's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every setting the bot reads at start-up
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN" validate:"required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379" validate:"required,hostname_port"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`

	// League
	Season       int           `env:"SEASON" validate:"required,gte=1"`
	ClearTimeout time.Duration `env:"CLEAR_CONFIRM_TIMEOUT" envDefault:"3m" validate:"gt=0"`
	AdminIDs     []string      `env:"LEAGUE_ADMIN_IDS" envSeparator:","`

	// DiceSeed makes rolls reproducible when set, 0 included
	DiceSeed *int64 `env:"DICE_SEED"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load reads an optional .env file, then the environment
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
