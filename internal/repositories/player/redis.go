package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/injurybot/internal/models"
	"github.com/KirkDiggler/injurybot/internal/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix      = "player:"
	teamPlayersKeyPrefix = "team_players:"

	// Hash fields of a player record
	fieldID           = "id"
	fieldName         = "name"
	fieldTeamID       = "team_id"
	fieldInjuryRating = "injury_rating"

	// FieldILReturn holds the w##g# return date while the player is on the injured list
	FieldILReturn = "il_return"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Key returns the Redis hash key of a player record
func Key(playerID string) string {
	return playerKeyPrefix + playerID
}

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis hashes, so
// single fields such as il_return can be written without a read-modify-write
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player
	if player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	pipe := r.client.TxPipeline()

	key := Key(player.ID)
	pipe.HSet(ctx, key, map[string]interface{}{
		fieldID:           player.ID,
		fieldName:         player.Name,
		fieldTeamID:       player.TeamID,
		fieldInjuryRating: player.InjuryRating,
	})
	if player.ILReturn != "" {
		pipe.HSet(ctx, key, FieldILReturn, player.ILReturn)
	} else {
		pipe.HDel(ctx, key, FieldILReturn)
	}

	if player.TeamID != "" {
		pipe.SAdd(ctx, teamPlayersKeyPrefix+player.TeamID, player.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return repositories.StoreError(err, "failed to save player")
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, Key(input.PlayerID)).Result()
	if err != nil {
		return nil, repositories.StoreError(err, "failed to get player")
	}

	// HGETALL on a missing key is an empty map, not redis.Nil
	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	return fromHash(fields), nil
}

// GetPlayersOnTeam retrieves all players on a team from Redis
func (r *redisRepository) GetPlayersOnTeam(ctx context.Context, input *GetPlayersOnTeamInput) (*GetPlayersOnTeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	playerIDs, err := r.client.SMembers(ctx, teamPlayersKeyPrefix+input.TeamID).Result()
	if err != nil {
		return nil, repositories.StoreError(err, "failed to get player IDs for team")
	}

	if len(playerIDs) == 0 {
		return &GetPlayersOnTeamOutput{
			Players: []*models.Player{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.MapStringStringCmd, len(playerIDs))
	for _, playerID := range playerIDs {
		cmds[playerID] = pipe.HGetAll(ctx, Key(playerID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, repositories.StoreError(err, "failed to get players")
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		fields := cmds[playerID].Val()
		if len(fields) == 0 {
			// Player was deleted between getting the IDs and fetching the player
			continue
		}
		players = append(players, fromHash(fields))
	}

	return &GetPlayersOnTeamOutput{
		Players: players,
	}, nil
}

func fromHash(fields map[string]string) *models.Player {
	return &models.Player{
		ID:           fields[fieldID],
		Name:         fields[fieldName],
		TeamID:       fields[fieldTeamID],
		InjuryRating: fields[fieldInjuryRating],
		ILReturn:     fields[FieldILReturn],
	}
}
