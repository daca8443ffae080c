package team

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/injurybot/internal/models"
	"github.com/KirkDiggler/injurybot/internal/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	teamKeyPrefix       = "team:"
	ownerTeamsKeyPrefix = "owner_teams:"
)

// ErrTeamNotFound is returned when a team is not found
var ErrTeamNotFound = errors.New("team not found")

// Config holds configuration for the Redis team repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed team repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveTeam persists a team and refreshes the owner index
func (r *redisRepository) SaveTeam(ctx context.Context, input *SaveTeamInput) error {
	if input == nil || input.Team == nil {
		return errors.New("input and team cannot be nil")
	}
	if input.Team.ID == "" {
		return errors.New("team ID cannot be empty")
	}

	teamJSON, err := json.Marshal(input.Team)
	if err != nil {
		return fmt.Errorf("failed to marshal team: %w", err)
	}

	teamKey := teamKeyPrefix + input.Team.ID

	// Drop index entries for owners that are no longer on the team
	previous, err := r.GetTeam(ctx, &GetTeamInput{TeamID: input.Team.ID})
	if err != nil && !errors.Is(err, ErrTeamNotFound) {
		return err
	}

	pipe := r.client.TxPipeline()
	if previous != nil {
		for _, ownerID := range previous.OwnerIDs {
			pipe.SRem(ctx, ownerTeamsKeyPrefix+ownerID, input.Team.ID)
		}
	}
	pipe.Set(ctx, teamKey, teamJSON, 0)
	for _, ownerID := range input.Team.OwnerIDs {
		pipe.SAdd(ctx, ownerTeamsKeyPrefix+ownerID, input.Team.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return repositories.StoreError(err, "failed to save team")
	}

	return nil
}

// GetTeam retrieves a team by ID from Redis
func (r *redisRepository) GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	teamJSON, err := r.client.Get(ctx, teamKeyPrefix+input.TeamID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTeamNotFound
		}
		return nil, repositories.StoreError(err, "failed to get team")
	}

	var team models.Team
	if err := json.Unmarshal([]byte(teamJSON), &team); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team: %w", err)
	}

	return &team, nil
}

// GetTeamsByOwner retrieves every team the user is a GM or co-GM of
func (r *redisRepository) GetTeamsByOwner(ctx context.Context, input *GetTeamsByOwnerInput) ([]*models.Team, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	teamIDs, err := r.client.SMembers(ctx, ownerTeamsKeyPrefix+input.OwnerID).Result()
	if err != nil {
		return nil, repositories.StoreError(err, "failed to get owner teams")
	}

	teams := make([]*models.Team, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		team, err := r.GetTeam(ctx, &GetTeamInput{TeamID: teamID})
		if err != nil {
			// Skip teams removed since the index was written
			if errors.Is(err, ErrTeamNotFound) {
				continue
			}
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, nil
}
